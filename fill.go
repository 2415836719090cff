package lgl

import "github.com/gogpu/lgl/internal/pixel"

// Fill fills the whole surface with c. See FillRect.
func (s *Surface) Fill(c Color) {
	if !s.check("fill") {
		return
	}
	s.FillRect(s.Rect(), c)
}

// FillRect fills the part of r inside the surface with c.
// Alpha 0 is a no-op, alpha 255 stores the packed color directly, and any
// other alpha blends with BlendFillRect.
func (s *Surface) FillRect(r Rect, c Color) {
	if !s.check("fill rect") || c.A == 0 {
		return
	}
	clip, ok := r.Intersect(s.Rect())
	if !ok {
		return
	}
	if c.A == 255 {
		s.fillPacked(clip, s.format.ColorToPixel(c))
		return
	}
	s.blendFill(clip, c)
}

// FillRectPixel fills the part of r inside the surface with a packed pixel
// already encoded in the surface format.
func (s *Surface) FillRectPixel(r Rect, p uint32) {
	if !s.check("fill rect pixel") {
		return
	}
	clip, ok := r.Intersect(s.Rect())
	if !ok {
		return
	}
	s.fillPacked(clip, p)
}

// BlendFillRect composites c over every pixel of r inside the surface:
// each channel becomes (c*a + d*(255-a)) / 255 and alpha becomes 255.
func (s *Surface) BlendFillRect(r Rect, c Color) {
	if !s.check("blend fill rect") || c.A == 0 {
		return
	}
	clip, ok := r.Intersect(s.Rect())
	if !ok {
		return
	}
	s.blendFill(clip, c)
}

// fillPacked writes p into every pixel of the clipped rect r.
func (s *Surface) fillPacked(r Rect, p uint32) {
	bpp := s.format.bpp
	for y := r.Y; y < r.Y+r.Height; y++ {
		pixel.FillRow(s.row(r.X, y, r.Width), bpp, p)
	}
}

// blendFill blends c into the clipped rect r. Runs of identical
// destination pixels reuse the previous result.
func (s *Surface) blendFill(r Rect, c Color) {
	f := s.format
	bpp := f.bpp

	var lastIn, lastOut uint32
	cached := false
	for y := r.Y; y < r.Y+r.Height; y++ {
		row := s.row(r.X, y, r.Width)
		for i := 0; i < len(row); i += bpp {
			in := pixel.Load(row[i:], bpp)
			if !cached || in != lastIn {
				lastIn = in
				lastOut = f.ColorToPixel(BlendColors(c, f.PixelToColor(in), FillAlphaPolicy))
				cached = true
			}
			pixel.Store(row[i:], bpp, lastOut)
		}
	}
}
