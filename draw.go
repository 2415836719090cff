package lgl

import (
	"math"
	"math/big"

	"github.com/gogpu/lgl/internal/fixed"
)

// DrawRect fills r with c, exactly as FillRect.
func (s *Surface) DrawRect(r Rect, c Color) {
	s.FillRect(r, c)
}

// DrawHLine fills the horizontal span x1..x2 (inclusive, any order) on row y.
func (s *Surface) DrawHLine(x1, x2, y int, c Color) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	s.FillRect(Rect{X: x1, Y: y, Width: x2 - x1 + 1, Height: 1}, c)
}

// DrawPixel plots one pixel, blending when 0 < c.A < 255.
func (s *Surface) DrawPixel(x, y int, c Color) {
	s.BlendPixel(x, y, c)
}

// DrawCircle fills the disc of radius r centred on (cx, cy).
// Every row of the disc is filled exactly once, so translucent circles
// blend uniformly. r <= 0 is a no-op.
//
// The disc matches the midpoint circle walk; each visible row's half-width
// is computed directly, so the cost is bounded by the surface height.
func (s *Surface) DrawCircle(cx, cy, r int, c Color) {
	if !s.check("draw circle") || r <= 0 || c.A == 0 {
		return
	}
	w, h := s.width, s.height
	if cy < -r || cy-r >= h || cx < -r || cx-r >= w {
		return
	}

	y0, y1 := max(0, cy-r), min(h-1, cy+r)
	for y := y0; y <= y1; y++ {
		dx := discHalfWidth(r, abs(y-cy))
		if cx < -dx || cx-dx >= w {
			continue
		}
		x0, x1 := max(0, cx-dx), min(w-1, cx+dx)
		s.FillRect(Rect{X: x0, Y: y, Width: x1 - x0 + 1, Height: 1}, c)
	}
}

// discHalfWidth returns the half-width of row dy (0 <= dy <= r) of the
// disc traced by the midpoint walk of radius r. Within the first octant
// the walk keeps the largest x with (2x-1)^2 < 4(r^2-dy^2); rows past the
// octant take the largest y whose x still reaches dy.
func discHalfWidth(r, dy int) int {
	if r >= 1<<30 {
		return discHalfWidthBig(r, dy)
	}
	r2, d := uint64(r)*uint64(r), uint64(dy)
	if dy < r {
		if x := (isqrt(4*(r2-d*d)-1) + 1) / 2; x >= d {
			return int(x)
		}
	}
	e := 2*d - 1
	return int(isqrt(4*r2-e*e-1) / 2)
}

// discHalfWidthBig is discHalfWidth for radii whose squares overflow
// 64 bits.
func discHalfWidthBig(r, dy int) int {
	one := big.NewInt(1)
	d := big.NewInt(int64(dy))
	r4 := big.NewInt(int64(r))
	r4.Mul(r4, r4).Lsh(r4, 2)
	if dy < r {
		x := new(big.Int).Mul(d, d)
		x.Lsh(x, 2).Sub(r4, x).Sub(x, one).Sqrt(x).Add(x, one).Rsh(x, 1)
		if x.Cmp(d) >= 0 {
			return int(x.Int64())
		}
	}
	e := new(big.Int).Lsh(d, 1)
	e.Sub(e, one).Mul(e, e)
	n := new(big.Int).Sub(r4, e)
	n.Sub(n, one).Sqrt(n).Rsh(n, 1)
	return int(n.Int64())
}

// isqrt returns floor(sqrt(n)) for n < 1<<62.
func isqrt(n uint64) uint64 {
	q := uint64(math.Sqrt(float64(n)))
	for q*q > n {
		q--
	}
	for (q+1)*(q+1) <= n {
		q++
	}
	return q
}

// DrawLine draws a one-pixel line from (x1, y1) to (x2, y2) inclusive with
// Bresenham's algorithm. Pixels outside the surface are skipped.
func (s *Surface) DrawLine(x1, y1, x2, y2 int, c Color) {
	if !s.check("draw line") || c.A == 0 {
		return
	}
	plot := s.BlendPixel
	if c.A == 255 {
		p := s.format.ColorToPixel(c)
		plot = func(x, y int, _ Color) { s.SetPixel(x, y, p) }
	}

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawTriangle fills the triangle with the given vertices. Spans include
// both edges. Coordinates must fit in 16 bits.
func (s *Surface) DrawTriangle(x1, y1, x2, y2, x3, y3 int, c Color) {
	if !s.check("draw triangle") || c.A == 0 {
		return
	}

	// Sort ascending by y.
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y2 > y3 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	switch {
	case y1 == y3:
		s.DrawHLine(min(x1, x2, x3), max(x1, x2, x3), y1, c)
	case y2 == y3:
		s.fillFlatBottom(x1, y1, x2, x3, y3, c)
	case y1 == y2:
		s.fillFlatTop(x1, x2, y1, x3, y3, c)
	default:
		// Split at the middle vertex's row; that row belongs to the
		// upper half.
		long := fixed.Ratio(x3-x1, y3-y1)
		x4 := fixed.FromInt(x1) + fixed.Q16(int64(y2-y1)*int64(x3-x1)<<fixed.Shift/int64(y3-y1))
		s.fillEdges(y1, y2, fixed.FromInt(x1), fixed.FromInt(x1),
			fixed.Ratio(x2-x1, y2-y1), long, c)

		h := fixed.Q16(y3 - y2)
		short := fixed.Ratio(x3-x2, y3-y2)
		rest := (fixed.FromInt(x3) - x4) / h
		s.fillEdges(y2+1, y3, fixed.FromInt(x2)+short, x4+rest, short, rest, c)
	}
}

// fillFlatBottom fills rows top..bottom of a triangle with apex (xt, top)
// and a horizontal bottom edge from xa to xb.
func (s *Surface) fillFlatBottom(xt, top, xa, xb, bottom int, c Color) {
	h := bottom - top
	s.fillEdges(top, bottom, fixed.FromInt(xt), fixed.FromInt(xt),
		fixed.Ratio(xa-xt, h), fixed.Ratio(xb-xt, h), c)
}

// fillFlatTop fills rows top..bottom of a triangle with a horizontal top
// edge from xa to xb and apex (xt, bottom).
func (s *Surface) fillFlatTop(xa, xb, top, xt, bottom int, c Color) {
	h := bottom - top
	s.fillEdges(top, bottom, fixed.FromInt(xa), fixed.FromInt(xb),
		fixed.Ratio(xt-xa, h), fixed.Ratio(xt-xb, h), c)
}

// fillEdges fills rows y0..y1 inclusive between two edges that start at
// ea, eb on row y0 and advance by da, db per row.
func (s *Surface) fillEdges(y0, y1 int, ea, eb, da, db fixed.Q16, c Color) {
	for y := y0; y <= y1; y++ {
		s.DrawHLine(fixed.Round(ea), fixed.Round(eb), y, c)
		ea += da
		eb += db
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
