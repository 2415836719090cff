package lgl

import (
	"fmt"
	"math"

	"github.com/gogpu/lgl/internal/fixed"
	"github.com/gogpu/lgl/internal/pixel"
)

// FlipX mirrors the surface horizontally in place.
func (s *Surface) FlipX() {
	if !s.check("flip x") {
		return
	}
	bpp := s.format.bpp
	for y := 0; y < s.height; y++ {
		row := s.row(0, y, s.width)
		for l, r := 0, (s.width-1)*bpp; l < r; l, r = l+bpp, r-bpp {
			pixel.SwapPixels(row[l:], row[r:], bpp)
		}
	}
}

// FlipY mirrors the surface vertically in place.
func (s *Surface) FlipY() {
	if !s.check("flip y") {
		return
	}
	tmp := make([]byte, s.width*s.format.bpp)
	for t, b := 0, s.height-1; t < b; t, b = t+1, b-1 {
		top := s.row(0, t, s.width)
		bottom := s.row(0, b, s.width)
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// Trig supplies sine and cosine of whole-degree angles in Q16.16 for
// Rotate. Implementations must return exact values (0 or ±65536) at
// multiples of 90 degrees.
type Trig interface {
	SinCos(deg int) (sin, cos int32)
}

// TableTrig looks angles up in a 360-entry fixed-point sine table and
// needs no floating point. It is the default.
type TableTrig struct{}

// SinCos implements Trig.
func (TableTrig) SinCos(deg int) (sin, cos int32) {
	return fixed.SinDeg(deg), fixed.CosDeg(deg)
}

// FloatTrig computes sine and cosine with math.Sincos and rounds to Q16.16.
type FloatTrig struct{}

// SinCos implements Trig.
func (FloatTrig) SinCos(deg int) (sin, cos int32) {
	deg = fixed.NormalizeDegrees(deg)
	switch deg {
	case 0:
		return 0, fixed.One
	case 90:
		return fixed.One, 0
	case 180:
		return 0, -fixed.One
	case 270:
		return -fixed.One, 0
	}
	sf, cf := math.Sincos(float64(deg) * math.Pi / 180)
	return int32(math.Round(sf * (1 << fixed.Shift))), int32(math.Round(cf * (1 << fixed.Shift)))
}

// bboxSlack absorbs sine table rounding so that an extent that is
// mathematically an integer does not round up to the next pixel.
const bboxSlack = 64

// Rotate returns a new surface holding s rotated by deg degrees, clockwise
// on screen for positive angles, using TableTrig. See RotateWith.
func (s *Surface) Rotate(deg int) (*Surface, error) {
	return s.RotateWith(deg, TableTrig{})
}

// RotateWith rotates s about its centre with the given trig policy.
// The result is sized to the bounding box of the rotated corners. Each
// destination pixel centre is mapped back into s and takes the nearest
// source pixel; pixels that map outside s stay zero.
func (s *Surface) RotateWith(deg int, trig Trig) (*Surface, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("lgl: rotate: %w", ErrInvalidParams)
	}
	if trig == nil {
		trig = TableTrig{}
	}
	deg = fixed.NormalizeDegrees(deg)
	sn, cs := trig.SinCos(deg)
	sin, cos := int64(sn), int64(cs)

	w, h := s.width, s.height
	hw := int64(w) << (fixed.Shift - 1)
	hh := int64(h) << (fixed.Shift - 1)

	var minX, maxX, minY, maxY int64
	for i, c := range [4][2]int64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}} {
		rx := (c[0]*cos - c[1]*sin) >> fixed.Shift
		ry := (c[0]*sin + c[1]*cos) >> fixed.Shift
		if i == 0 || rx < minX {
			minX = rx
		}
		if i == 0 || rx > maxX {
			maxX = rx
		}
		if i == 0 || ry < minY {
			minY = ry
		}
		if i == 0 || ry > maxY {
			maxY = ry
		}
	}
	newW := max(1, fixed.Ceil(maxX-minX-bboxSlack))
	newH := max(1, fixed.Ceil(maxY-minY-bboxSlack))

	dst, err := newOwned(newW, newH, s.format, s.allocator())
	if err != nil {
		return nil, err
	}
	dst.key = s.key
	dst.flags = s.flags &^ FlagPreallocated
	if deg%90 != 0 && s.format.HasAlpha() {
		// Corners outside the source stay zero, which is transparent.
		dst.flags |= FlagHasAlpha
	}

	// Source coordinates carry 32 fractional bits so stepping one
	// destination pixel adds cos and subtracts sin exactly.
	bpp := s.format.bpp
	srcCX := int64(w) << (2*fixed.Shift - 1)
	srcCY := int64(h) << (2*fixed.Shift - 1)
	for y := 0; y < newH; y++ {
		dx := int64(fixed.Half) - int64(newW)<<(fixed.Shift-1)
		dy := int64(y)<<fixed.Shift + int64(fixed.Half) - int64(newH)<<(fixed.Shift-1)
		sx := dx*cos + dy*sin + srcCX
		sy := -dx*sin + dy*cos + srcCY
		row := dst.row(0, y, newW)
		for x := 0; x < newW; x++ {
			ix := int(sx >> (2 * fixed.Shift))
			iy := int(sy >> (2 * fixed.Shift))
			if ix >= 0 && iy >= 0 && ix < w && iy < h {
				o := s.offset(ix, iy)
				copy(row[x*bpp:x*bpp+bpp], s.pix[o:o+bpp])
			}
			sx += cos << fixed.Shift
			sy -= sin << fixed.Shift
		}
	}
	return dst, nil
}

// Scale returns a new surface of w×h pixels resampled from s with the
// nearest-neighbour rule: destination index i reads source index
// i*srcSize/dstSize (Q16.16, truncated), clamped to the last row/column.
func (s *Surface) Scale(w, h int) (*Surface, error) {
	if !s.Valid() || w <= 0 || h <= 0 {
		return nil, fmt.Errorf("lgl: scale to %dx%d: %w", w, h, ErrInvalidParams)
	}
	dst, err := newOwned(w, h, s.format, s.allocator())
	if err != nil {
		return nil, err
	}
	dst.flags = s.flags &^ FlagPreallocated
	dst.key = s.key

	bpp := s.format.bpp
	fx := fixed.WideRatio(s.width, w)
	fy := fixed.WideRatio(s.height, h)

	cols := make([]int, w)
	for x := range cols {
		cols[x] = min(fixed.Floor(int64(x)*fx), s.width-1) * bpp
	}
	for y := 0; y < h; y++ {
		sy := min(fixed.Floor(int64(y)*fy), s.height-1)
		src := s.row(0, sy, s.width)
		row := dst.row(0, y, w)
		for x, sx := range cols {
			copy(row[x*bpp:x*bpp+bpp], src[sx:sx+bpp])
		}
	}
	return dst, nil
}

// Scale2x returns a surface of twice the size of s produced with the
// AdvMAME2x (EPX) rule. Neighbours past the edge clamp to the edge pixel;
// pixels are compared as raw packed values.
func (s *Surface) Scale2x() (*Surface, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("lgl: scale2x: %w", ErrInvalidParams)
	}
	dst, err := newOwned(s.width*2, s.height*2, s.format, s.allocator())
	if err != nil {
		return nil, err
	}
	dst.flags = s.flags &^ FlagPreallocated
	dst.key = s.key

	bpp := s.format.bpp
	at := func(x, y int) uint32 {
		return pixel.Load(s.pix[s.offset(x, y):], bpp)
	}
	for y := 0; y < s.height; y++ {
		up, down := max(y-1, 0), min(y+1, s.height-1)
		top := dst.row(0, 2*y, dst.width)
		bottom := dst.row(0, 2*y+1, dst.width)
		for x := 0; x < s.width; x++ {
			left, right := max(x-1, 0), min(x+1, s.width-1)
			b, d, e, f, h := at(x, up), at(left, y), at(x, y), at(right, y), at(x, down)

			e0, e1, e2, e3 := e, e, e, e
			if b != h && d != f {
				if d == b {
					e0 = d
				}
				if b == f {
					e1 = f
				}
				if d == h {
					e2 = d
				}
				if h == f {
					e3 = f
				}
			}
			o := 2 * x * bpp
			pixel.Store(top[o:], bpp, e0)
			pixel.Store(top[o+bpp:], bpp, e1)
			pixel.Store(bottom[o:], bpp, e2)
			pixel.Store(bottom[o+bpp:], bpp, e3)
		}
	}
	return dst, nil
}
