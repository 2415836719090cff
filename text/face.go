package text

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/lgl/internal/cache"
)

// glyphCacheSize bounds the rasterized glyphs kept per face.
const glyphCacheSize = 512

// Metrics holds the vertical metrics of a face in whole pixels.
type Metrics struct {
	// Ascent is the distance from the top of a line to the baseline.
	Ascent int
	// Descent is the distance from the baseline to the bottom of a line.
	Descent int
	// LineHeight is the recommended distance between two baselines.
	LineHeight int
}

// Face is a scalable font at a fixed pixel size.
//
// A Face is safe for concurrent use.
type Face struct {
	data    []byte
	font    *opentype.Font
	size    float64
	ppem    fixed.Int26_6
	metrics Metrics

	// mu guards buf, which sfnt requires per call.
	mu  sync.Mutex
	buf sfnt.Buffer

	shaper shaper
	glyphs *cache.Cache[glyphKey, *glyphMask]
}

// NewFace parses TrueType or OpenType data and returns a face rendering
// at size pixels per em.
func NewFace(data []byte, size float64) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("text: size %v: %w", size, ErrInvalidSize)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	face := &Face{
		data:   data,
		font:   f,
		size:   size,
		ppem:   fixed.Int26_6(size * 64),
		glyphs: cache.New[glyphKey, *glyphMask](glyphCacheSize),
	}
	m, err := f.Metrics(&face.buf, face.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read metrics: %w", err)
	}
	face.metrics = Metrics{
		Ascent:     m.Ascent.Ceil(),
		Descent:    m.Descent.Ceil(),
		LineHeight: m.Height.Ceil(),
	}
	if face.metrics.LineHeight <= 0 {
		face.metrics.LineHeight = face.metrics.Ascent + face.metrics.Descent
	}
	return face, nil
}

// GoRegular returns the Go Regular font at the given size.
func GoRegular(size float64) (*Face, error) {
	return NewFace(goregular.TTF, size)
}

// Size returns the pixel size of the face.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the vertical metrics of the face.
func (f *Face) Metrics() Metrics { return f.metrics }

// Name returns the font family name, or "" if the font has none.
func (f *Face) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, err := f.font.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// GlyphIndex returns the glyph for r, or 0 (the missing glyph) when the
// font does not map it.
func (f *Face) GlyphIndex(r rune) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// advance returns the unhinted advance of glyph id in pixels.
func (f *Face) advance(id uint16) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	adv, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(id), f.ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
