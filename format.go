package lgl

import "fmt"

// PixelFormat describes how the four RGBA channels are packed into a
// 1, 2 or 4 byte integer. Formats are immutable and compared by identity;
// use the predefined Format* values.
type PixelFormat struct {
	name string

	rMask, gMask, bMask, aMask     uint32
	rShift, gShift, bShift, aShift uint8
	rLoss, gLoss, bLoss, aLoss     uint8

	bpp int
}

// Predefined formats. Names give channel order from the most significant
// bit; pixels are stored little-endian, so FormatABGR8888 has the byte
// order R, G, B, A in memory (the layout of image.NRGBA).
var (
	FormatRGBA8888 = &PixelFormat{
		name:  "RGBA8888",
		rMask: 0xFF000000, gMask: 0x00FF0000, bMask: 0x0000FF00, aMask: 0x000000FF,
		rShift: 24, gShift: 16, bShift: 8, aShift: 0,
		bpp: 4,
	}
	FormatABGR8888 = &PixelFormat{
		name:  "ABGR8888",
		rMask: 0x000000FF, gMask: 0x0000FF00, bMask: 0x00FF0000, aMask: 0xFF000000,
		rShift: 0, gShift: 8, bShift: 16, aShift: 24,
		bpp: 4,
	}
	FormatARGB8888 = &PixelFormat{
		name:  "ARGB8888",
		rMask: 0x00FF0000, gMask: 0x0000FF00, bMask: 0x000000FF, aMask: 0xFF000000,
		rShift: 16, gShift: 8, bShift: 0, aShift: 24,
		bpp: 4,
	}
	FormatBGRA8888 = &PixelFormat{
		name:  "BGRA8888",
		rMask: 0x0000FF00, gMask: 0x00FF0000, bMask: 0xFF000000, aMask: 0x000000FF,
		rShift: 8, gShift: 16, bShift: 24, aShift: 0,
		bpp: 4,
	}
	FormatXRGB8888 = &PixelFormat{
		name:  "XRGB8888",
		rMask: 0x00FF0000, gMask: 0x0000FF00, bMask: 0x000000FF,
		rShift: 16, gShift: 8, bShift: 0,
		aLoss: 8,
		bpp:   4,
	}
	FormatRGB565 = &PixelFormat{
		name:  "RGB565",
		rMask: 0xF800, gMask: 0x07E0, bMask: 0x001F,
		rShift: 11, gShift: 5, bShift: 0,
		rLoss: 3, gLoss: 2, bLoss: 3, aLoss: 8,
		bpp: 2,
	}
	FormatBGR565 = &PixelFormat{
		name:  "BGR565",
		rMask: 0x001F, gMask: 0x07E0, bMask: 0xF800,
		rShift: 0, gShift: 5, bShift: 11,
		rLoss: 3, gLoss: 2, bLoss: 3, aLoss: 8,
		bpp: 2,
	}
	FormatRGB332 = &PixelFormat{
		name:  "RGB332",
		rMask: 0xE0, gMask: 0x1C, bMask: 0x03,
		rShift: 5, gShift: 2, bShift: 0,
		rLoss: 5, gLoss: 5, bLoss: 6, aLoss: 8,
		bpp: 1,
	}
	FormatBGR233 = &PixelFormat{
		name:  "BGR233",
		rMask: 0x07, gMask: 0x38, bMask: 0xC0,
		rShift: 0, gShift: 3, bShift: 6,
		rLoss: 5, gLoss: 5, bLoss: 6, aLoss: 8,
		bpp: 1,
	}
)

var formatTable = []*PixelFormat{
	FormatRGBA8888,
	FormatABGR8888,
	FormatARGB8888,
	FormatBGRA8888,
	FormatXRGB8888,
	FormatRGB565,
	FormatBGR565,
	FormatRGB332,
	FormatBGR233,
}

// Formats returns the predefined formats.
func Formats() []*PixelFormat {
	return append([]*PixelFormat(nil), formatTable...)
}

// LookupFormat returns the predefined format with the given byte width and
// channel masks, or ErrUnknownFormat.
func LookupFormat(bytesPerPixel int, rMask, gMask, bMask, aMask uint32) (*PixelFormat, error) {
	for _, f := range formatTable {
		if f.bpp == bytesPerPixel &&
			f.rMask == rMask && f.gMask == gMask && f.bMask == bMask && f.aMask == aMask {
			return f, nil
		}
	}
	return nil, fmt.Errorf("lgl: lookup format bpp=%d masks=%#x/%#x/%#x/%#x: %w",
		bytesPerPixel, rMask, gMask, bMask, aMask, ErrUnknownFormat)
}

// FormatByName returns the predefined format with the given name
// (for example "RGB565"), or ErrUnknownFormat.
func FormatByName(name string) (*PixelFormat, error) {
	for _, f := range formatTable {
		if f.name == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("lgl: format %q: %w", name, ErrUnknownFormat)
}

// BytesPerPixel returns the storage width of one pixel: 1, 2 or 4.
func (f *PixelFormat) BytesPerPixel() int { return f.bpp }

// HasAlpha reports whether the format stores an alpha channel.
func (f *PixelFormat) HasAlpha() bool { return f.aMask != 0 }

// Masks returns the R, G, B, A channel masks.
func (f *PixelFormat) Masks() (r, g, b, a uint32) {
	return f.rMask, f.gMask, f.bMask, f.aMask
}

// Shifts returns the R, G, B, A channel shifts.
func (f *PixelFormat) Shifts() (r, g, b, a uint8) {
	return f.rShift, f.gShift, f.bShift, f.aShift
}

// Losses returns the number of low bits each 8-bit channel loses.
func (f *PixelFormat) Losses() (r, g, b, a uint8) {
	return f.rLoss, f.gLoss, f.bLoss, f.aLoss
}

func (f *PixelFormat) String() string {
	if f == nil {
		return "<nil>"
	}
	return f.name
}

// ColorToPixel packs c into f's layout. Bits a channel cannot represent
// are discarded; the alpha term vanishes for formats without alpha.
func (f *PixelFormat) ColorToPixel(c Color) uint32 {
	return (uint32(c.R>>f.rLoss)<<f.rShift)&f.rMask |
		(uint32(c.G>>f.gLoss)<<f.gShift)&f.gMask |
		(uint32(c.B>>f.bLoss)<<f.bShift)&f.bMask |
		(uint32(c.A>>f.aLoss)<<f.aShift)&f.aMask
}

// PixelToColor unpacks p. Narrow channels are shifted back up without
// bit replication. Alpha is 255 for formats without alpha.
func (f *PixelFormat) PixelToColor(p uint32) Color {
	c := Color{
		R: uint8(((p & f.rMask) >> f.rShift) << f.rLoss),
		G: uint8(((p & f.gMask) >> f.gShift) << f.gLoss),
		B: uint8(((p & f.bMask) >> f.bShift) << f.bLoss),
		A: 255,
	}
	if f.aMask != 0 {
		c.A = uint8(((p & f.aMask) >> f.aShift) << f.aLoss)
	}
	return c
}

// ColorToPixel packs c in format f. A nil format yields 0.
func ColorToPixel(f *PixelFormat, c Color) uint32 {
	if f == nil {
		return 0
	}
	return f.ColorToPixel(c)
}

// PixelToColor unpacks p in format f. A nil format yields the zero Color.
func PixelToColor(f *PixelFormat, p uint32) Color {
	if f == nil {
		return Color{}
	}
	return f.PixelToColor(p)
}
