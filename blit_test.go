package lgl

import (
	"bytes"
	"testing"
)

func TestBlitTransparentSourceScenario(t *testing.T) {
	dst := Must(NewSurface(3, 2, FormatRGBA8888))
	dst.Fill(Yellow)
	before := append([]byte(nil), dst.Pixels()...)

	src := Must(NewSurface(3, 2, FormatRGBA8888))
	src.Fill(Transparent) // no-op: src stays zero, alpha 0 everywhere
	dst.Blit(src, 0, 0)

	if !bytes.Equal(before, dst.Pixels()) {
		t.Error("blitting a fully transparent source changed the destination")
	}
}

func TestBlitCases(t *testing.T) {
	tests := []struct {
		name     string
		srcFmt   *PixelFormat
		dstFmt   *PixelFormat
		srcColor Color
		want     Color
	}{
		{"same format opaque", FormatRGB565, FormatRGB565, Red, RGB(248, 0, 0)},
		{"same format alpha opaque pixel", FormatRGBA8888, FormatRGBA8888, Red, Red},
		{"same format alpha blended", FormatRGBA8888, FormatRGBA8888, RGBA(255, 0, 0, 128), Color{128, 0, 127, 255}},
		{"convert opaque", FormatRGB332, FormatABGR8888, RGB(255, 255, 0), RGB(224, 224, 0)},
		{"convert alpha opaque pixel", FormatARGB8888, FormatRGBA8888, Green, Green},
		{"convert alpha blended", FormatARGB8888, FormatBGRA8888, RGBA(255, 0, 0, 128), Color{128, 0, 127, 255}},
		{"convert alpha to 565", FormatABGR8888, FormatRGB565, RGBA(255, 0, 0, 128), RGB(128, 0, 120)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Must(NewSurface(2, 2, tt.srcFmt))
			src.SetColor(0, 0, tt.srcColor)
			src.SetColor(1, 0, tt.srcColor)
			src.SetColor(0, 1, tt.srcColor)
			src.SetColor(1, 1, tt.srcColor)

			dst := Must(NewSurface(2, 2, tt.dstFmt))
			dst.Fill(Blue)
			dst.Blit(src, 0, 0)
			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					if got := dst.ColorAt(x, y); got != tt.want {
						t.Errorf("ColorAt(%d,%d) = %v, want %v", x, y, got, tt.want)
					}
				}
			}
		})
	}
}

func TestBlitAccumulatesAlpha(t *testing.T) {
	src := Must(NewSurface(1, 1, FormatRGBA8888))
	src.SetColor(0, 0, RGBA(0, 0, 0, 100))
	dst := Must(NewSurface(1, 1, FormatRGBA8888))
	dst.SetColor(0, 0, RGBA(255, 255, 255, 100))

	dst.Blit(src, 0, 0)
	if got := dst.ColorAt(0, 0); got != (Color{155, 155, 155, 160}) {
		t.Errorf("Blit() = %v, want accumulated alpha 160", got)
	}

	dst.SetColor(0, 0, RGBA(255, 255, 255, 100))
	dst.BlitWithPolicy(src, 0, 0, AlphaOpaque)
	if got := dst.ColorAt(0, 0); got != (Color{155, 155, 155, 255}) {
		t.Errorf("BlitWithPolicy(AlphaOpaque) = %v", got)
	}
}

func TestBlitClipping(t *testing.T) {
	src := Must(NewSurface(3, 3, FormatRGB565))
	src.Fill(White)

	for _, off := range [][2]int{{-100, 0}, {100, 0}, {0, -100}, {0, 100}, {4, 4}, {-3, -3}} {
		dst := Must(NewSurface(4, 4, FormatRGB565))
		dst.Blit(src, off[0], off[1])
		for _, b := range dst.Pixels() {
			if b != 0 {
				t.Errorf("Blit at %v outside the surface changed pixels", off)
				break
			}
		}
	}

	dst := Must(NewSurface(4, 4, FormatRGB565))
	dst.Blit(src, 2, -1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint32(0)
			if x >= 2 && y <= 1 {
				want = 0xFFFF
			}
			if got := dst.PixelAt(x, y); got != want {
				t.Errorf("PixelAt(%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestBlitSourceOffset(t *testing.T) {
	src := Must(NewSurface(3, 1, FormatRGB332))
	src.SetPixel(0, 0, 1)
	src.SetPixel(1, 0, 2)
	src.SetPixel(2, 0, 3)

	dst := Must(NewSurface(2, 1, FormatRGB332))
	dst.Blit(src, -1, 0)
	if dst.PixelAt(0, 0) != 2 || dst.PixelAt(1, 0) != 3 {
		t.Errorf("clipped blit = %d %d, want 2 3", dst.PixelAt(0, 0), dst.PixelAt(1, 0))
	}
}

func TestBlitColorKey(t *testing.T) {
	for _, dstFmt := range []*PixelFormat{FormatRGB565, FormatRGBA8888} {
		src := Must(NewSurface(2, 1, FormatRGB565))
		src.SetColor(0, 0, Magenta)
		src.SetColor(1, 0, Blue)
		src.SetColorKey(Magenta)

		dst := Must(NewSurface(2, 1, dstFmt))
		dst.Fill(White)
		dst.Blit(src, 0, 0)

		if got := dst.ColorAt(0, 0); got != dstFmt.PixelToColor(dstFmt.ColorToPixel(White)) {
			t.Errorf("%v: keyed pixel = %v, want unchanged white", dstFmt, got)
		}
		if got := dst.ColorAt(1, 0); got != RGB(0, 0, 248) {
			t.Errorf("%v: unkeyed pixel = %v, want blue", dstFmt, got)
		}
	}
}

func TestBlitOntoItself(t *testing.T) {
	s := Must(NewSurface(1, 4, FormatRGB332))
	for y := 0; y < 4; y++ {
		s.SetPixel(0, y, uint32(y+1))
	}
	s.Blit(s, 0, 1)
	want := []uint32{1, 1, 2, 3}
	for y, w := range want {
		if got := s.PixelAt(0, y); got != w {
			t.Errorf("PixelAt(0,%d) = %d, want %d", y, got, w)
		}
	}
}

func TestBlitOntoItselfHorizontal(t *testing.T) {
	tests := []struct {
		name string
		dx   int
		want []uint8
	}{
		{"right", 1, []uint8{10, 10, 20, 30}},
		{"left", -1, []uint8{20, 30, 40, 40}},
		{"right by two", 2, []uint8{10, 20, 10, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Must(NewSurface(4, 1, FormatRGBA8888))
			for x := 0; x < 4; x++ {
				s.SetColor(x, 0, RGB(uint8(10*(x+1)), 0, 0))
			}
			s.Blit(s, tt.dx, 0)
			for x, w := range tt.want {
				if got := s.ColorAt(x, 0); got != RGB(w, 0, 0) {
					t.Errorf("ColorAt(%d,0) = %v, want R=%d", x, got, w)
				}
			}
		})
	}
}

func TestBlitOverlappingViews(t *testing.T) {
	parent := Must(NewSurface(4, 2, FormatRGBA8888))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			parent.SetColor(x, y, RGB(uint8(10*(x+1)), uint8(y), 0))
		}
	}
	left := Must(parent.SubSurface(R(0, 0, 3, 2)))
	right := Must(parent.SubSurface(R(1, 0, 3, 2)))

	right.Blit(left, 0, 0)
	want := []uint8{10, 10, 20, 30}
	for y := 0; y < 2; y++ {
		for x, w := range want {
			if got := parent.ColorAt(x, y); got != RGB(w, uint8(y), 0) {
				t.Errorf("ColorAt(%d,%d) = %v, want R=%d", x, y, got, w)
			}
		}
	}
}

func TestBlendMask(t *testing.T) {
	s := Must(NewSurface(3, 2, FormatABGR8888))
	s.Fill(White)

	mask := []byte{
		255, 128, 0, 99, // stride 4, last byte unused
		0, 0, 255, 99,
	}
	s.BlendMask(0, 0, mask, 4, 3, 2, Black)

	want := [][]Color{
		{Black, RGB(127, 127, 127), White},
		{White, White, Black},
	}
	for y := range want {
		for x, w := range want[y] {
			if got := s.ColorAt(x, y); got != w {
				t.Errorf("ColorAt(%d,%d) = %v, want %v", x, y, got, w)
			}
		}
	}

	// Clipped at the left edge: only mask column 2 lands on the surface.
	s.Fill(White)
	s.BlendMask(-2, 0, mask, 4, 3, 2, Red)
	if got := s.ColorAt(0, 1); got != Red {
		t.Errorf("clipped mask pixel = %v, want red", got)
	}
	if got := s.ColorAt(1, 1); got != White {
		t.Errorf("pixel right of clipped mask = %v, want white", got)
	}

	// Half-transparent color halves the coverage.
	s.Fill(White)
	s.BlendMask(0, 0, []byte{255}, 1, 1, 1, RGBA(0, 0, 0, 128))
	if got := s.ColorAt(0, 0); got != RGB(127, 127, 127) {
		t.Errorf("half-alpha mask pixel = %v", got)
	}
}
