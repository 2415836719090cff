package lgl

import (
	"fmt"
	"image"
	"image/color"
)

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.ColorAt(x, y)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	if !s.Valid() {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return ColorModel
}

// Set implements draw.Image. The color is encoded without blending.
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetColor(x, y, FromColor(c))
}

// ToNRGBA converts the surface to an image.NRGBA.
func (s *Surface) ToNRGBA() *image.NRGBA {
	if !s.Valid() {
		return image.NewNRGBA(image.Rectangle{})
	}
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	if s.format == FormatABGR8888 {
		for y := 0; y < s.height; y++ {
			copy(img.Pix[y*img.Stride:], s.row(0, y, s.width))
		}
		return img
	}
	for y := 0; y < s.height; y++ {
		p := img.Pix[y*img.Stride:]
		for x := 0; x < s.width; x++ {
			c := s.ColorAt(x, y)
			p[4*x+0] = c.R
			p[4*x+1] = c.G
			p[4*x+2] = c.B
			p[4*x+3] = c.A
		}
	}
	return img
}

// NewSurfaceFromImage creates an owned surface in format holding a copy of
// img. FlagHasAlpha is set only if the format has alpha and some pixel of
// img is not opaque.
func NewSurfaceFromImage(img image.Image, format *PixelFormat, opts ...SurfaceOption) (*Surface, error) {
	if img == nil {
		return nil, fmt.Errorf("lgl: surface from image: nil image: %w", ErrInvalidParams)
	}
	b := img.Bounds()
	s, err := NewSurface(b.Dx(), b.Dy(), format, opts...)
	if err != nil {
		return nil, err
	}

	if n, ok := img.(*image.NRGBA); ok && format == FormatABGR8888 {
		for y := 0; y < s.height; y++ {
			off := n.PixOffset(b.Min.X, b.Min.Y+y)
			copy(s.row(0, y, s.width), n.Pix[off:off+4*s.width])
		}
	} else {
		for y := 0; y < s.height; y++ {
			for x := 0; x < s.width; x++ {
				s.SetColor(x, y, FromColor(img.At(b.Min.X+x, b.Min.Y+y)))
			}
		}
	}

	if format.HasAlpha() && !s.scanAlpha() {
		s.flags &^= FlagHasAlpha
	}
	return s, nil
}
