package text

import (
	"image"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

type glyphKey struct {
	id   uint16
	ppem fixed.Int26_6
}

// glyphMask is a rasterized glyph. The mask's top-left corner sits at
// (dx, dy) from the pen position on the baseline, y down. A nil mask
// means the glyph has no ink.
type glyphMask struct {
	mask   *image.Alpha
	dx, dy int
}

// glyph returns the coverage mask of glyph id, rasterizing it on first use.
func (f *Face) glyph(id uint16) *glyphMask {
	return f.glyphs.GetOrCreate(glyphKey{id: id, ppem: f.ppem}, func() *glyphMask {
		return f.rasterize(id)
	})
}

func (f *Face) rasterize(id uint16) *glyphMask {
	f.mu.Lock()
	segs, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(id), f.ppem, nil)
	if err != nil || len(segs) == 0 {
		f.mu.Unlock()
		return &glyphMask{}
	}
	// The buffer owns segs until the next call.
	segs = append(sfnt.Segments(nil), segs...)
	f.mu.Unlock()

	b := segs.Bounds()
	x0, y0 := b.Min.X.Floor(), b.Min.Y.Floor()
	w, h := b.Max.X.Ceil()-x0, b.Max.Y.Ceil()-y0
	if w <= 0 || h <= 0 {
		return &glyphMask{}
	}

	ox, oy := float32(x0), float32(y0)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 - ox, float32(p.Y)/64 - oy
	}

	r := vector.NewRasterizer(w, h)
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			r.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			r.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return &glyphMask{mask: mask, dx: x0, dy: y0}
}
