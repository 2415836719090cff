package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/gogpu/lgl"
)

// sample returns a 3x2 surface with distinct opaque colors, plus one
// translucent pixel when translucent is set.
func sample(t *testing.T, translucent bool) *lgl.Surface {
	t.Helper()
	s, err := lgl.NewSurface(3, 2, lgl.FormatARGB8888)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	colors := []lgl.Color{lgl.Red, lgl.Green, lgl.Blue, lgl.White, lgl.Black, lgl.RGB(10, 20, 30)}
	for i, c := range colors {
		s.SetColor(i%3, i/3, c)
	}
	if translucent {
		s.SetColor(2, 1, lgl.RGBA(10, 20, 30, 128))
	}
	return s
}

func sameColors(t *testing.T, got, want *lgl.Surface) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	for y := 0; y < want.Height(); y++ {
		for x := 0; x < want.Width(); x++ {
			if g, w := got.ColorAt(x, y), want.ColorAt(x, y); g != w {
				t.Errorf("ColorAt(%d,%d) = %v, want %v", x, y, g, w)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		format      Format
		translucent bool
	}{
		{PNG, false},
		{PNG, true},
		{BMP, false},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			src := sample(t, tt.translucent)
			var buf bytes.Buffer
			if err := Encode(&buf, src, tt.format); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			got, err := DecodeBytes(buf.Bytes())
			if err != nil {
				t.Fatalf("DecodeBytes() error = %v", err)
			}
			if got.Format() != lgl.FormatABGR8888 {
				t.Errorf("Format() = %v, want ABGR8888", got.Format())
			}
			if got.HasAlpha() != tt.translucent {
				t.Errorf("HasAlpha() = %v, want %v", got.HasAlpha(), tt.translucent)
			}
			sameColors(t, got, src)
		})
	}
}

func TestJPEGDecodes(t *testing.T) {
	src := sample(t, false)
	var buf bytes.Buffer
	if err := Encode(&buf, src, JPEG); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Width() != 3 || got.Height() != 2 || got.HasAlpha() {
		t.Errorf("decoded %v, want opaque 3x2", got)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	src := sample(t, false)
	for _, name := range []string{"a.png", "b.BMP", "c.jpeg"} {
		path := filepath.Join(dir, name)
		if err := Save(path, src); err != nil {
			t.Fatalf("Save(%s) error = %v", name, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", name, err)
		}
		if got.Width() != 3 || got.Height() != 2 {
			t.Errorf("Load(%s) size = %dx%d, want 3x2", name, got.Width(), got.Height())
		}
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	src := sample(t, false)

	if err := Save(filepath.Join(dir, "x.gif"), src); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.gif) error = %v, want ErrUnsupportedFormat", err)
	}
	if err := Encode(&bytes.Buffer{}, src, Format(42)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(Format(42)) error = %v, want ErrUnsupportedFormat", err)
	}
	if err := Encode(&bytes.Buffer{}, &lgl.Surface{}, PNG); !errors.Is(err, lgl.ErrInvalidParams) {
		t.Errorf("Encode(invalid surface) error = %v, want ErrInvalidParams", err)
	}
	if _, err := DecodeBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("DecodeBytes(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := DecodeBytes([]byte("not an image")); !errors.Is(err, image.ErrFormat) {
		t.Errorf("DecodeBytes(garbage) error = %v, want image.ErrFormat", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Load(missing) should fail")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.png", PNG, true},
		{"dir/b.JPG", JPEG, true},
		{"c.jpeg", JPEG, true},
		{"d.bmp", BMP, true},
		{"e.tga", 0, false},
		{"noext", 0, false},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err == nil) != tt.ok || (tt.ok && got != tt.want) {
			t.Errorf("FormatFromPath(%q) = %v, %v; want %v, ok=%v", tt.path, got, err, tt.want, tt.ok)
		}
	}
}

func TestToNRGBA(t *testing.T) {
	// A sub-image with a non-zero origin is copied to the origin.
	base := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	base.SetNRGBA(2, 2, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	sub := base.SubImage(image.Rect(2, 2, 4, 4)).(*image.NRGBA)

	got := toNRGBA(sub)
	if got.Rect.Min != (image.Point{}) || got.Bounds().Dx() != 2 {
		t.Fatalf("toNRGBA bounds = %v, want 2x2 at origin", got.Rect)
	}
	if c := got.NRGBAAt(0, 0); c != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("NRGBAAt(0,0) = %v, want {1 2 3 4}", c)
	}

	// Already normalized images are returned as-is.
	if toNRGBA(base) != base {
		t.Error("toNRGBA copied an image already at the origin")
	}

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.Pix[0] = 200
	if c := toNRGBA(gray).NRGBAAt(0, 0); c != (color.NRGBA{R: 200, G: 200, B: 200, A: 255}) {
		t.Errorf("gray converted to %v", c)
	}
}

func TestWrap(t *testing.T) {
	buf := []byte{0x00, 0xF8, 0xE0, 0x07} // red, green in RGB565
	s, err := Wrap(2, 1, 2, 0xF800, 0x07E0, 0x001F, 0, buf)
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	if s.Format() != lgl.FormatRGB565 {
		t.Errorf("Format() = %v, want RGB565", s.Format())
	}
	if got := s.ColorAt(0, 0); got != lgl.RGB(248, 0, 0) {
		t.Errorf("ColorAt(0,0) = %v, want %v", got, lgl.RGB(248, 0, 0))
	}
	if got := s.ColorAt(1, 0); got != lgl.RGB(0, 252, 0) {
		t.Errorf("ColorAt(1,0) = %v, want %v", got, lgl.RGB(0, 252, 0))
	}

	if _, err := Wrap(2, 1, 2, 1, 2, 3, 0, buf); !errors.Is(err, lgl.ErrUnknownFormat) {
		t.Errorf("Wrap(bad masks) error = %v, want ErrUnknownFormat", err)
	}
}
