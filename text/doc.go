// Package text draws strings onto lgl surfaces.
//
// Two kinds of font are supported:
//
//   - BitmapFont: fixed-cell 1-bit glyphs, drawn with DrawBitmapText.
//     DefaultBitmapFont is an 8x8 font covering printable ASCII.
//   - Face: a TrueType/OpenType font at a fixed pixel size. Strings are
//     shaped with HarfBuzz (go-text/typesetting), glyph outlines are
//     rasterized into coverage masks with golang.org/x/image/vector and
//     composited with Surface.BlendMask.
//
// Quick start:
//
//	face, err := text.GoRegular(16)
//	if err != nil {
//		return err
//	}
//	text.DrawString(surf, 10, 10, "Hello, world", face, lgl.Black)
//	text.DrawBitmapText(surf, 10, 40, "8x8 text", nil, lgl.White)
package text
