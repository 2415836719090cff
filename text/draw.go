package text

import (
	"math"
	"strings"

	"github.com/gogpu/lgl"
)

// DrawString draws s with face. (x, y) is the top-left corner of the first
// line; the baseline sits Metrics().Ascent pixels below y. Each newline
// starts a new line LineHeight pixels further down. Glyph coverage is
// composited with Surface.BlendMask, so c's alpha scales the coverage.
func DrawString(dst *lgl.Surface, x, y int, s string, face *Face, c lgl.Color) {
	if dst == nil || !dst.Valid() || face == nil || s == "" || c.A == 0 {
		return
	}
	baseline := y + face.metrics.Ascent
	for line := range strings.SplitSeq(s, "\n") {
		for _, g := range Shape(face, line) {
			m := face.glyph(g.ID)
			if m.mask == nil {
				continue
			}
			gx := x + int(math.Round(g.X)) + m.dx
			gy := baseline - int(math.Round(g.Y)) + m.dy
			b := m.mask.Bounds()
			dst.BlendMask(gx, gy, m.mask.Pix, m.mask.Stride, b.Dx(), b.Dy(), c)
		}
		baseline += face.metrics.LineHeight
	}
}

// MeasureString returns the advance width of the widest line of s in
// pixels, rounded up.
func MeasureString(face *Face, s string) int {
	if face == nil || s == "" {
		return 0
	}
	widest := 0
	for line := range strings.SplitSeq(s, "\n") {
		var w float64
		for _, g := range Shape(face, line) {
			w += g.Advance
		}
		widest = max(widest, int(math.Ceil(w)))
	}
	return widest
}
