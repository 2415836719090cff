package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/lgl"
)

// Glyph is a positioned glyph produced by Shape.
type Glyph struct {
	// ID is the glyph index in the face's font.
	ID uint16
	// Cluster is the index of the first rune the glyph was shaped from.
	Cluster int
	// X is the horizontal pen offset from the start of the line, in pixels.
	X float64
	// Y is the vertical offset from the baseline, in pixels, y up.
	Y float64
	// Advance is the horizontal advance in pixels.
	Advance float64
}

// shaper holds the go-text view of a face. The parsed font is shared;
// font.Face and HarfbuzzShaper are not safe for concurrent use, so a face
// is created per call and shapers are pooled.
type shaper struct {
	once sync.Once
	font *font.Font
	err  error
	pool sync.Pool
}

func (s *shaper) load(data []byte) (*font.Font, error) {
	s.once.Do(func() {
		s.pool.New = func() any { return &shaping.HarfbuzzShaper{} }
		face, err := font.ParseTTF(bytes.NewReader(data))
		if err != nil {
			s.err = err
			return
		}
		s.font = face.Font
	})
	return s.font, s.err
}

// run is a maximal range of runes with one embedding direction,
// [start, end) in rune indices.
type run struct {
	start, end int
	rtl        bool
}

// Shape converts a single line of text into positioned glyphs. Bidi runs
// are shaped separately with HarfBuzz and laid out left to right in visual
// order. If the font cannot be loaded by the shaper, glyphs are mapped one
// per rune using the font's cmap and advances.
func Shape(face *Face, s string) []Glyph {
	if face == nil || s == "" {
		return nil
	}
	runes := []rune(s)
	f, err := face.shaper.load(face.data)
	if err != nil {
		lgl.Logger().Debug("text: shaper unavailable, using simple layout", "err", err)
		return shapeSimple(face, runes)
	}

	hb := face.shaper.pool.Get().(*shaping.HarfbuzzShaper)
	defer face.shaper.pool.Put(hb)

	gtFace := font.NewFace(f)
	size := fixed.Int26_6(face.size * 64)
	lang := language.NewLanguage("en")

	var (
		out []Glyph
		pen float64
	)
	for _, r := range bidiRuns(s, len(runes)) {
		dir := di.DirectionLTR
		if r.rtl {
			dir = di.DirectionRTL
		}
		output := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  r.start,
			RunEnd:    r.end,
			Direction: dir,
			Face:      gtFace,
			Size:      size,
			Script:    detectScript(runes[r.start:r.end]),
			Language:  lang,
		})
		for _, g := range output.Glyphs {
			adv := fixedToFloat(g.Advance)
			out = append(out, Glyph{
				ID:      uint16(g.GlyphID), //nolint:gosec // glyph indices fit in 16 bits
				Cluster: g.TextIndex(),
				X:       pen + fixedToFloat(g.XOffset),
				Y:       fixedToFloat(g.YOffset),
				Advance: adv,
			})
			pen += adv
		}
	}
	return out
}

// bidiRuns splits s into directional runs in visual order. The paragraph
// direction comes from the first strong character. Text the bidi package
// cannot order is treated as one left-to-right run.
func bidiRuns(s string, n int) []run {
	whole := []run{{start: 0, end: n}}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	runs := make([]run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		br := ordering.Run(i)
		// Pos reports rune indices, end inclusive.
		start, end := br.Pos()
		if start < 0 || end >= n || start > end {
			return whole
		}
		runs = append(runs, run{start: start, end: end + 1, rtl: br.Direction() == bidi.RightToLeft})
	}
	return runs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// shapeSimple maps each rune to its glyph with no kerning or ligatures.
func shapeSimple(face *Face, runes []rune) []Glyph {
	out := make([]Glyph, 0, len(runes))
	var pen float64
	for i, r := range runes {
		id := face.GlyphIndex(r)
		adv := face.advance(id)
		out = append(out, Glyph{ID: id, Cluster: i, X: pen, Advance: adv})
		pen += adv
	}
	return out
}
