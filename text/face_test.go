package text

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/gogpu/lgl"
)

func goRegular(t *testing.T, size float64) *Face {
	t.Helper()
	f, err := GoRegular(size)
	if err != nil {
		t.Fatalf("GoRegular(%v) error = %v", size, err)
	}
	return f
}

func TestNewFaceErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		size float64
		want error
	}{
		{"empty", nil, 12, ErrEmptyFontData},
		{"zero size", []byte{1}, 0, ErrInvalidSize},
		{"negative size", []byte{1}, -3, ErrInvalidSize},
		{"NaN size", []byte{1}, math.NaN(), ErrInvalidSize},
		{"infinite size", []byte{1}, math.Inf(1), ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFace(tt.data, tt.size)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewFace() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := NewFace([]byte("not a font"), 12); err == nil {
		t.Error("NewFace(garbage) should fail")
	}
}

func TestFaceMetrics(t *testing.T) {
	small := goRegular(t, 12).Metrics()
	large := goRegular(t, 48).Metrics()

	if small.Ascent <= 0 || small.Descent <= 0 || small.LineHeight <= 0 {
		t.Fatalf("Metrics() = %+v, want positive values", small)
	}
	if small.LineHeight < small.Ascent {
		t.Errorf("LineHeight %d < Ascent %d", small.LineHeight, small.Ascent)
	}
	if large.Ascent <= small.Ascent {
		t.Errorf("48px ascent %d should exceed 12px ascent %d", large.Ascent, small.Ascent)
	}
}

func TestFaceGlyphIndex(t *testing.T) {
	f := goRegular(t, 16)
	if f.GlyphIndex('A') == 0 {
		t.Error("GlyphIndex('A') = 0, want a mapped glyph")
	}
	if f.GlyphIndex('A') == f.GlyphIndex('B') {
		t.Error("'A' and 'B' map to the same glyph")
	}
	if name := f.Name(); name == "" {
		t.Error("Name() is empty")
	}
	if got := f.Size(); got != 16 {
		t.Errorf("Size() = %v, want 16", got)
	}
}

func TestGlyphCache(t *testing.T) {
	f := goRegular(t, 16)
	a := f.glyph(f.GlyphIndex('A'))
	if a.mask == nil {
		t.Fatal("glyph('A') has no mask")
	}
	if again := f.glyph(f.GlyphIndex('A')); again != a {
		t.Error("second lookup did not hit the cache")
	}
	if st := f.glyphs.Stats(); st.Hits != 1 || st.Misses != 1 {
		t.Errorf("cache stats = %+v, want 1 hit and 1 miss", st)
	}

	if sp := f.glyph(f.GlyphIndex(' ')); sp.mask != nil {
		t.Error("space should rasterize to an empty mask")
	}
}

func TestGlyphMaskGeometry(t *testing.T) {
	f := goRegular(t, 32)
	g := f.glyph(f.GlyphIndex('H'))
	if g.mask == nil {
		t.Fatal("glyph('H') has no mask")
	}
	// 'H' sits on the baseline and rises above it.
	b := g.mask.Bounds()
	if g.dy >= 0 || g.dy+b.Dy() > 1 {
		t.Errorf("mask rows [%d, %d) not above the baseline", g.dy, g.dy+b.Dy())
	}
	var ink int
	for _, v := range g.mask.Pix {
		if v == 255 {
			ink++
		}
	}
	if ink == 0 {
		t.Error("glyph('H') has no fully covered pixels")
	}
}

func TestFaceConcurrentUse(t *testing.T) {
	f := goRegular(t, 14)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := lgl.NewSurface(64, 20, lgl.FormatRGB565)
			if err != nil {
				t.Error(err)
				return
			}
			DrawString(s, 0, 0, "concurrent", f, lgl.White)
		}()
	}
	wg.Wait()
}
