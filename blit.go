package lgl

import "github.com/gogpu/lgl/internal/pixel"

// Blit composites src onto s with its top-left corner at (x, y), using
// BlitAlphaPolicy. Only the overlap with s is touched; offsets far outside
// the surface are a no-op.
//
// The path is chosen by format equality and whether src may carry alpha
// (FlagHasAlpha or a color key):
//
//	same format, opaque        row copy
//	same format, alpha         skip a==0, raw copy a==255, blend otherwise
//	different format, opaque   decode and re-encode
//	different format, alpha    skip, re-encode or blend in the destination format
func (s *Surface) Blit(src *Surface, x, y int) {
	s.BlitWithPolicy(src, x, y, BlitAlphaPolicy)
}

// BlitWithPolicy is Blit with an explicit output alpha rule for blended
// pixels.
func (s *Surface) BlitWithPolicy(src *Surface, x, y int, policy AlphaPolicy) {
	if !s.check("blit") || !src.check("blit source") {
		return
	}
	clip, ok := s.Rect().Intersect(Rect{X: x, Y: y, Width: src.width, Height: src.height})
	if !ok {
		return
	}
	b := blitter{
		dst:  s,
		src:  src,
		clip: clip,
		sx:   clip.X - x,
		sy:   clip.Y - y,
	}
	if pixel.Overlap(s.pix, src.pix) {
		b.detach()
	}

	alpha := src.flags&(FlagHasAlpha|FlagHasColorKey) != 0
	switch {
	case s.format == src.format && !alpha:
		b.copyRows()
	case s.format == src.format:
		b.blendSame(policy)
	case !alpha:
		b.convert()
	default:
		b.blendConvert(policy)
	}
}

// blitter holds a clipped blit: clip is in destination coordinates and
// (sx, sy) is the matching source origin.
type blitter struct {
	dst, src *Surface
	clip     Rect
	sx, sy   int
}

// detach replaces the source with a private copy of the clipped source
// area. Used when source and destination share pixel memory, as a surface
// blitted onto itself or two views of one buffer.
func (b *blitter) detach() {
	src := b.src
	w, h := b.clip.Width, b.clip.Height
	stride := w * src.format.bpp
	pix := make([]byte, stride*h)
	for y := 0; y < h; y++ {
		copy(pix[y*stride:], src.row(b.sx, b.sy+y, w))
	}
	b.src = &Surface{
		width:  w,
		height: h,
		stride: stride,
		pix:    pix,
		format: src.format,
		flags:  src.flags,
		key:    src.key,
	}
	b.sx, b.sy = 0, 0
}

// rows calls fn for each clipped row pair.
func (b *blitter) rows(fn func(d, s []byte)) {
	for y := 0; y < b.clip.Height; y++ {
		fn(b.dst.row(b.clip.X, b.clip.Y+y, b.clip.Width), b.src.row(b.sx, b.sy+y, b.clip.Width))
	}
}

func (b *blitter) copyRows() {
	b.rows(func(d, s []byte) { copy(d, s) })
}

func (b *blitter) blendSame(policy AlphaPolicy) {
	src := b.src
	f := src.format
	bpp := f.bpp
	b.rows(func(d, s []byte) {
		for i := 0; i < len(s); i += bpp {
			sp := pixel.Load(s[i:], bpp)
			sc := f.PixelToColor(sp)
			if sc.A == 0 || src.isKey(sc) {
				continue
			}
			if sc.A == 255 {
				pixel.Store(d[i:], bpp, sp)
				continue
			}
			dc := f.PixelToColor(pixel.Load(d[i:], bpp))
			pixel.Store(d[i:], bpp, f.ColorToPixel(BlendColors(sc, dc, policy)))
		}
	})
}

func (b *blitter) convert() {
	sf, df := b.src.format, b.dst.format
	sbpp, dbpp := sf.bpp, df.bpp
	b.rows(func(d, s []byte) {
		for i, j := 0, 0; i < len(s); i, j = i+sbpp, j+dbpp {
			pixel.Store(d[j:], dbpp, df.ColorToPixel(sf.PixelToColor(pixel.Load(s[i:], sbpp))))
		}
	})
}

func (b *blitter) blendConvert(policy AlphaPolicy) {
	src := b.src
	sf, df := src.format, b.dst.format
	sbpp, dbpp := sf.bpp, df.bpp
	b.rows(func(d, s []byte) {
		for i, j := 0, 0; i < len(s); i, j = i+sbpp, j+dbpp {
			sc := sf.PixelToColor(pixel.Load(s[i:], sbpp))
			if sc.A == 0 || src.isKey(sc) {
				continue
			}
			if sc.A == 255 {
				pixel.Store(d[j:], dbpp, df.ColorToPixel(sc))
				continue
			}
			dc := df.PixelToColor(pixel.Load(d[j:], dbpp))
			pixel.Store(d[j:], dbpp, df.ColorToPixel(BlendColors(sc, dc, policy)))
		}
	})
}

// BlendMask composites c onto s through an 8-bit coverage mask of w×h
// values whose top-left corner lands at (x, y). The effective alpha of each
// pixel is coverage*c.A/255; blending follows BlitAlphaPolicy.
func (s *Surface) BlendMask(x, y int, mask []byte, maskStride, w, h int, c Color) {
	if !s.check("blend mask") || c.A == 0 {
		return
	}
	if w <= 0 || h <= 0 || maskStride < w || len(mask) < (h-1)*maskStride+w {
		Logger().Debug("lgl: blend mask: bad mask geometry", "w", w, "h", h, "stride", maskStride, "len", len(mask))
		return
	}
	clip, ok := s.Rect().Intersect(Rect{X: x, Y: y, Width: w, Height: h})
	if !ok {
		return
	}
	f := s.format
	bpp := f.bpp
	opaque := f.ColorToPixel(c.WithAlpha(255))
	for row := 0; row < clip.Height; row++ {
		my := clip.Y - y + row
		m := mask[my*maskStride+clip.X-x:]
		d := s.row(clip.X, clip.Y+row, clip.Width)
		for i := 0; i < clip.Width; i++ {
			a := uint32(m[i]) * uint32(c.A) / 255
			switch a {
			case 0:
			case 255:
				pixel.Store(d[i*bpp:], bpp, opaque)
			default:
				dc := f.PixelToColor(pixel.Load(d[i*bpp:], bpp))
				pixel.Store(d[i*bpp:], bpp, f.ColorToPixel(BlendColors(c.WithAlpha(uint8(a)), dc, BlitAlphaPolicy)))
			}
		}
	}
}
