package text

import "github.com/gogpu/lgl"

// BitmapFont is a fixed-cell 1-bit font. Each glyph is CharHeight rows of
// one byte, most significant bit leftmost, so CharWidth is at most 8.
// Glyphs cover the runes First..Last inclusive; other runes advance the
// cursor without drawing.
type BitmapFont struct {
	CharWidth  int
	CharHeight int
	First      rune
	Last       rune
	Data       []byte
}

// DefaultBitmapFont is an 8x8 font for printable ASCII ('!' to '~').
var DefaultBitmapFont = &BitmapFont{
	CharWidth:  8,
	CharHeight: 8,
	First:      '!',
	Last:       '~',
	Data:       defaultBitmapFontData,
}

// glyph returns the rows of r, or nil when the font has no glyph for it.
func (f *BitmapFont) glyph(r rune) []byte {
	if r < f.First || r > f.Last {
		return nil
	}
	off := int(r-f.First) * f.CharHeight
	if off+f.CharHeight > len(f.Data) {
		return nil
	}
	return f.Data[off : off+f.CharHeight]
}

func (f *BitmapFont) valid() bool {
	return f.CharWidth > 0 && f.CharWidth <= 8 && f.CharHeight > 0 && len(f.Data) > 0
}

// DrawBitmapText draws s at (x, y), the top-left corner of the first cell.
// A newline returns the cursor to x and moves it down one cell. Opaque
// colors are stored directly; translucent ones are blended per pixel.
// Glyphs are clipped to dst. A nil font selects DefaultBitmapFont.
func DrawBitmapText(dst *lgl.Surface, x, y int, s string, font *BitmapFont, c lgl.Color) {
	if font == nil {
		font = DefaultBitmapFont
	}
	if dst == nil || !dst.Valid() || !font.valid() || c.A == 0 {
		return
	}

	w, h := dst.Width(), dst.Height()
	plot := dst.BlendPixel
	if c.Opaque() {
		p := dst.Format().ColorToPixel(c)
		plot = func(px, py int, _ lgl.Color) { dst.SetPixel(px, py, p) }
	}

	cx, cy := x, y
	for _, r := range s {
		if r == '\n' {
			cx = x
			cy += font.CharHeight
			continue
		}
		rows := font.glyph(r)
		if rows == nil || cx+font.CharWidth <= 0 || cx >= w || cy+font.CharHeight <= 0 || cy >= h {
			cx += font.CharWidth
			continue
		}
		for gy, bits := range rows {
			if bits == 0 {
				continue
			}
			for gx := 0; gx < font.CharWidth; gx++ {
				if bits&(0x80>>gx) != 0 {
					plot(cx+gx, cy+gy, c)
				}
			}
		}
		cx += font.CharWidth
	}
}

// MeasureBitmapText returns the size of the box DrawBitmapText would
// cover: the widest line times the number of lines. A nil font selects
// DefaultBitmapFont.
func MeasureBitmapText(s string, font *BitmapFont) (width, height int) {
	if font == nil {
		font = DefaultBitmapFont
	}
	if s == "" || !font.valid() {
		return 0, 0
	}
	lines, cols := 1, 0
	for _, r := range s {
		if r == '\n' {
			width = max(width, cols*font.CharWidth)
			cols = 0
			lines++
			continue
		}
		cols++
	}
	width = max(width, cols*font.CharWidth)
	return width, lines * font.CharHeight
}

// Thick 8x8, one byte per row.
var defaultBitmapFontData = []byte{
	0xc0, 0xc0, 0xc0, 0xc0, 0xc0, 0x00, 0xc0, 0x00, // !
	0xd8, 0xd8, 0xd8, 0x00, 0x00, 0x00, 0x00, 0x00, // "
	0x6c, 0x6c, 0xfe, 0x6c, 0xfe, 0x6c, 0x6c, 0x00, // #
	0x30, 0x7c, 0xc0, 0x78, 0x0c, 0xf8, 0x30, 0x00, // $
	0xc6, 0xcc, 0x18, 0x30, 0x66, 0xc6, 0x00, 0x00, // %
	0x70, 0xd8, 0x70, 0x70, 0xdc, 0xc8, 0x7c, 0x00, // &
	0xc0, 0xc0, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, // '
	0x0c, 0x18, 0x18, 0x18, 0x18, 0x18, 0x0c, 0x00, // (
	0xc0, 0x60, 0x60, 0x60, 0x60, 0x60, 0xc0, 0x00, // )
	0x00, 0x6c, 0x38, 0xfe, 0x38, 0x6c, 0x00, 0x00, // *
	0x00, 0x30, 0x30, 0xfc, 0x30, 0x30, 0x00, 0x00, // +
	0x00, 0x00, 0x00, 0x00, 0x00, 0x60, 0x60, 0xc0, // ,
	0x00, 0x00, 0x00, 0xfc, 0x00, 0x00, 0x00, 0x00, // -
	0x00, 0x00, 0x00, 0x00, 0x00, 0xc0, 0xc0, 0x00, // .
	0x30, 0x30, 0x60, 0x60, 0x60, 0xc0, 0xc0, 0x00, // /
	0x78, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0x78, 0x00, // 0
	0x30, 0x70, 0x30, 0x30, 0x30, 0x30, 0x78, 0x00, // 1
	0x78, 0xcc, 0x0c, 0x18, 0x30, 0x60, 0xfc, 0x00, // 2
	0x78, 0xcc, 0x0c, 0x38, 0x0c, 0xcc, 0x78, 0x00, // 3
	0xcc, 0xcc, 0xcc, 0xfc, 0x0c, 0x0c, 0x0c, 0x00, // 4
	0xfc, 0xc0, 0xc0, 0x78, 0x0c, 0xcc, 0x78, 0x00, // 5
	0x78, 0xcc, 0xc0, 0xf8, 0xcc, 0xcc, 0x78, 0x00, // 6
	0xfc, 0x0c, 0x18, 0x18, 0x30, 0x30, 0x30, 0x00, // 7
	0x78, 0xcc, 0xcc, 0x78, 0xcc, 0xcc, 0x78, 0x00, // 8
	0x78, 0xcc, 0xcc, 0x7c, 0x0c, 0xcc, 0x78, 0x00, // 9
	0x00, 0xc0, 0xc0, 0x00, 0xc0, 0xc0, 0x00, 0x00, // :
	0x00, 0xc0, 0xc0, 0x00, 0xc0, 0xc0, 0xc0, 0xc0, // ;
	0x18, 0x30, 0x60, 0xc0, 0x60, 0x30, 0x18, 0x00, // <
	0x00, 0x00, 0xfc, 0x00, 0xfc, 0x00, 0x00, 0x00, // =
	0x60, 0x30, 0x18, 0x0c, 0x18, 0x30, 0x60, 0x00, // >
	0x78, 0xcc, 0x0c, 0x18, 0x30, 0x00, 0x30, 0x00, // ?
	0x78, 0xcc, 0xcc, 0xdc, 0xdc, 0xc0, 0x7c, 0x00, // @
	0x30, 0x78, 0xcc, 0xcc, 0xfc, 0xcc, 0xcc, 0x00, // A
	0xf8, 0xcc, 0xcc, 0xf8, 0xcc, 0xcc, 0xf8, 0x00, // B
	0x78, 0xcc, 0xc0, 0xc0, 0xc0, 0xcc, 0x78, 0x00, // C
	0xf8, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xf8, 0x00, // D
	0xfc, 0xc0, 0xc0, 0xf0, 0xc0, 0xc0, 0xfc, 0x00, // E
	0xfc, 0xc0, 0xc0, 0xf0, 0xc0, 0xc0, 0xc0, 0x00, // F
	0x7c, 0xc0, 0xc0, 0xc0, 0xcc, 0xcc, 0x7c, 0x00, // G
	0xcc, 0xcc, 0xcc, 0xfc, 0xcc, 0xcc, 0xcc, 0x00, // H
	0xfc, 0x30, 0x30, 0x30, 0x30, 0x30, 0xfc, 0x00, // I
	0x0c, 0x0c, 0x0c, 0x0c, 0xcc, 0xcc, 0x78, 0x00, // J
	0xcc, 0xcc, 0xd8, 0xf0, 0xd8, 0xcc, 0xcc, 0x00, // K
	0xc0, 0xc0, 0xc0, 0xc0, 0xc0, 0xc0, 0xfc, 0x00, // L
	0xc6, 0xee, 0xfe, 0xd6, 0xc6, 0xc6, 0xc6, 0x00, // M
	0xcc, 0xec, 0xfc, 0xdc, 0xcc, 0xcc, 0xcc, 0x00, // N
	0x78, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0x78, 0x00, // O
	0xf8, 0xcc, 0xcc, 0xcc, 0xf8, 0xc0, 0xc0, 0x00, // P
	0x78, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0x78, 0x1c, // Q
	0xf8, 0xcc, 0xcc, 0xf8, 0xcc, 0xcc, 0xcc, 0x00, // R
	0x7c, 0xc0, 0xc0, 0x78, 0x0c, 0x0c, 0xf8, 0x00, // S
	0xfc, 0x30, 0x30, 0x30, 0x30, 0x30, 0x30, 0x00, // T
	0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0x78, 0x00, // U
	0xcc, 0xcc, 0xcc, 0x78, 0x78, 0x30, 0x30, 0x00, // V
	0xc6, 0xc6, 0xc6, 0xd6, 0xfe, 0xee, 0xc6, 0x00, // W
	0xcc, 0xcc, 0x78, 0x30, 0x78, 0xcc, 0xcc, 0x00, // X
	0xcc, 0xcc, 0xcc, 0x78, 0x30, 0x30, 0x30, 0x00, // Y
	0xfc, 0x0c, 0x18, 0x30, 0x60, 0xc0, 0xfc, 0x00, // Z
	0x3c, 0x30, 0x30, 0x30, 0x30, 0x30, 0x3c, 0x00, // [
	0xc0, 0xc0, 0x60, 0x60, 0x60, 0x30, 0x30, 0x00, // \
	0xf0, 0x30, 0x30, 0x30, 0x30, 0x30, 0xf0, 0x00, // ]
	0x10, 0x38, 0x6c, 0xc6, 0x00, 0x00, 0x00, 0x00, // ^
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xfc, 0x00, // _
	0x30, 0x30, 0x18, 0x0c, 0x00, 0x00, 0x00, 0x00, // `
	0x00, 0x00, 0x78, 0x0c, 0x7c, 0xcc, 0x7c, 0x00, // a
	0xc0, 0xc0, 0xf8, 0xcc, 0xcc, 0xcc, 0xf8, 0x00, // b
	0x00, 0x00, 0x7c, 0xc0, 0xc0, 0xc0, 0x7c, 0x00, // c
	0x0c, 0x0c, 0x7c, 0xcc, 0xcc, 0xcc, 0x7c, 0x00, // d
	0x00, 0x00, 0x78, 0xcc, 0xfc, 0xc0, 0x7c, 0x00, // e
	0x00, 0x38, 0x60, 0xf8, 0x60, 0x60, 0x60, 0x00, // f
	0x00, 0x00, 0x7c, 0xcc, 0xcc, 0x7c, 0x0c, 0x78, // g
	0xc0, 0xc0, 0xf8, 0xcc, 0xcc, 0xcc, 0xcc, 0x00, // h
	0x18, 0x00, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00, // i
	0x18, 0x00, 0x18, 0x18, 0x18, 0x18, 0x18, 0xf0, // j
	0xc0, 0xc0, 0xcc, 0xd8, 0xf0, 0xd8, 0xcc, 0x00, // k
	0x30, 0x30, 0x30, 0x30, 0x30, 0x30, 0x30, 0x00, // l
	0x00, 0x00, 0xec, 0xfe, 0xd6, 0xc6, 0xc6, 0x00, // m
	0x00, 0x00, 0xf8, 0xcc, 0xcc, 0xcc, 0xcc, 0x00, // n
	0x00, 0x00, 0x78, 0xcc, 0xcc, 0xcc, 0x78, 0x00, // o
	0x00, 0x00, 0xf8, 0xcc, 0xcc, 0xf8, 0xc0, 0xc0, // p
	0x00, 0x00, 0x7c, 0xcc, 0xcc, 0x7c, 0x0c, 0x0c, // q
	0x00, 0x00, 0xf8, 0xcc, 0xc0, 0xc0, 0xc0, 0x00, // r
	0x00, 0x00, 0x7c, 0xc0, 0x78, 0x0c, 0xf8, 0x00, // s
	0x00, 0x30, 0xfc, 0x30, 0x30, 0x30, 0x1c, 0x00, // t
	0x00, 0x00, 0xcc, 0xcc, 0xcc, 0xcc, 0x7c, 0x00, // u
	0x00, 0x00, 0xcc, 0xcc, 0xcc, 0x78, 0x30, 0x00, // v
	0x00, 0x00, 0xc6, 0xc6, 0xd6, 0xfe, 0x6c, 0x00, // w
	0x00, 0x00, 0xcc, 0x78, 0x30, 0x78, 0xcc, 0x00, // x
	0x00, 0x00, 0xcc, 0xcc, 0xcc, 0x7c, 0x0c, 0xf8, // y
	0x00, 0x00, 0xfc, 0x18, 0x30, 0x60, 0xfc, 0x00, // z
	0x30, 0x60, 0x60, 0xc0, 0x60, 0x60, 0x30, 0x00, // {
	0x30, 0x30, 0x30, 0x30, 0x30, 0x30, 0x30, 0x30, // |
	0x30, 0x18, 0x18, 0x0c, 0x18, 0x18, 0x30, 0x00, // }
	0x00, 0x00, 0x00, 0x66, 0xdb, 0xcc, 0x00, 0x00, // ~
}
