package lgl

import (
	"fmt"

	"github.com/gogpu/lgl/internal/pixel"
)

// SurfaceFlags describe properties of a surface's pixel buffer.
type SurfaceFlags uint8

const (
	// FlagHasAlpha marks a surface whose pixels may have alpha < 255.
	// It is set at creation and not maintained by later writes; it only
	// selects the blit path.
	FlagHasAlpha SurfaceFlags = 1 << iota

	// FlagHasColorKey marks a surface with a transparent color key.
	FlagHasColorKey

	// FlagPreallocated marks a borrowed buffer the surface must not release.
	FlagPreallocated
)

func (f SurfaceFlags) String() string {
	if f == 0 {
		return "none"
	}
	s := ""
	add := func(name string) {
		if s != "" {
			s += "|"
		}
		s += name
	}
	if f&FlagHasAlpha != 0 {
		add("alpha")
	}
	if f&FlagHasColorKey != 0 {
		add("colorkey")
	}
	if f&FlagPreallocated != 0 {
		add("preallocated")
	}
	return s
}

// Surface is a rectangular buffer of packed pixels in one PixelFormat.
//
// A surface either owns its buffer (NewSurface) or borrows one from the
// caller (NewSurfaceFromBuffer, SubSurface). The zero Surface, and any
// surface after Destroy, is invalid: drawing on it is a no-op and
// constructors given it return ErrInvalidParams.
//
// Surfaces are not safe for concurrent mutation.
type Surface struct {
	width  int
	height int
	stride int
	pix    []byte
	format *PixelFormat
	flags  SurfaceFlags
	key    Color
	alloc  Allocator
}

// NewSurface creates a zero-filled surface that owns its buffer.
// FlagHasAlpha is set iff the format has an alpha channel.
func NewSurface(width, height int, format *PixelFormat, opts ...SurfaceOption) (*Surface, error) {
	if width <= 0 || height <= 0 || format == nil {
		return nil, fmt.Errorf("lgl: new surface %dx%d %v: %w", width, height, format, ErrInvalidParams)
	}
	o := applySurfaceOptions(opts)
	return newOwned(width, height, format, o.allocator)
}

func newOwned(width, height int, format *PixelFormat, alloc Allocator) (*Surface, error) {
	stride := width * format.bpp
	size := stride * height
	if size/height != stride {
		return nil, fmt.Errorf("lgl: new surface %dx%d: %w", width, height, ErrOutOfMemory)
	}
	pix, err := alloc.Allocate(size)
	if err != nil {
		Logger().Warn("lgl: surface allocation failed", "width", width, "height", height, "format", format, "err", err)
		return nil, fmt.Errorf("lgl: new surface %dx%d: %w", width, height, err)
	}
	if len(pix) < size {
		alloc.Release(pix)
		return nil, fmt.Errorf("lgl: allocator returned %d of %d bytes: %w", len(pix), size, ErrInternal)
	}
	pix = pix[:size]
	clear(pix)

	s := &Surface{
		width:  width,
		height: height,
		stride: stride,
		pix:    pix,
		format: format,
		alloc:  alloc,
	}
	if format.HasAlpha() {
		s.flags |= FlagHasAlpha
	}
	return s, nil
}

// NewSurfaceFromBuffer wraps a caller-owned buffer. The surface never
// releases buf. Use WithStride when rows are padded.
//
// For formats with alpha, the buffer is scanned once and FlagHasAlpha is
// set only if some pixel is not fully opaque.
func NewSurfaceFromBuffer(width, height int, format *PixelFormat, buf []byte, opts ...SurfaceOption) (*Surface, error) {
	if width <= 0 || height <= 0 || format == nil || buf == nil {
		return nil, fmt.Errorf("lgl: surface from buffer %dx%d %v: %w", width, height, format, ErrInvalidParams)
	}
	o := applySurfaceOptions(opts)
	rowBytes := width * format.bpp
	stride := o.stride
	if stride == 0 {
		stride = rowBytes
	}
	if stride < rowBytes {
		return nil, fmt.Errorf("lgl: surface from buffer: stride %d < %d: %w", stride, rowBytes, ErrInvalidParams)
	}
	need := (height-1)*stride + rowBytes
	if len(buf) < need {
		return nil, fmt.Errorf("lgl: surface from buffer: %d bytes, need %d: %w", len(buf), need, ErrInvalidParams)
	}

	s := &Surface{
		width:  width,
		height: height,
		stride: stride,
		pix:    buf[:need],
		format: format,
		flags:  FlagPreallocated,
		alloc:  o.allocator,
	}
	if format.HasAlpha() && s.scanAlpha() {
		s.flags |= FlagHasAlpha
	}
	return s, nil
}

// scanAlpha reports whether any pixel has alpha < 255.
func (s *Surface) scanAlpha() bool {
	bpp := s.format.bpp
	for y := 0; y < s.height; y++ {
		row := s.row(0, y, s.width)
		for i := 0; i < len(row); i += bpp {
			if s.format.PixelToColor(pixel.Load(row[i:], bpp)).A < 255 {
				return true
			}
		}
	}
	return false
}

// Destroy releases an owned buffer through its allocator and resets s to
// the invalid zero Surface. Borrowed buffers are left alone.
func (s *Surface) Destroy() {
	if s == nil {
		return
	}
	if s.flags&FlagPreallocated == 0 && s.pix != nil && s.alloc != nil {
		s.alloc.Release(s.pix)
	}
	*s = Surface{}
}

// Valid reports whether s refers to a live pixel buffer.
func (s *Surface) Valid() bool {
	return s != nil && s.width > 0 && s.height > 0 && s.format != nil && len(s.pix) > 0
}

// check reports whether s is valid, logging rejected calls.
func (s *Surface) check(op string) bool {
	if s.Valid() {
		return true
	}
	Logger().Debug("lgl: invalid surface", "op", op)
	return false
}

// Copy returns a new owned surface with the same size, format, pixels,
// flags and color key.
func (s *Surface) Copy() (*Surface, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("lgl: copy: %w", ErrInvalidParams)
	}
	dst, err := newOwned(s.width, s.height, s.format, s.allocator())
	if err != nil {
		return nil, err
	}
	rowBytes := s.width * s.format.bpp
	for y := 0; y < s.height; y++ {
		copy(dst.pix[y*dst.stride:y*dst.stride+rowBytes], s.pix[y*s.stride:])
	}
	dst.flags = s.flags &^ FlagPreallocated
	dst.key = s.key
	return dst, nil
}

// Convert returns a new owned surface holding s translated into format.
// The same format behaves as Copy. Otherwise pixels go through Blit onto
// a zeroed destination, so semi-transparent pixels composite over
// transparent black and color-keyed pixels stay zero.
func (s *Surface) Convert(format *PixelFormat) (*Surface, error) {
	if !s.Valid() || format == nil {
		return nil, fmt.Errorf("lgl: convert to %v: %w", format, ErrInvalidParams)
	}
	if format == s.format {
		return s.Copy()
	}
	dst, err := newOwned(s.width, s.height, format, s.allocator())
	if err != nil {
		return nil, err
	}
	if !format.HasAlpha() || !s.HasAlpha() {
		dst.flags &^= FlagHasAlpha
	}
	dst.Blit(s, 0, 0)
	return dst, nil
}

// SubSurface returns a borrowed view of the part of s inside r. The view
// shares pixels with s and keeps its stride; it is invalidated when s is
// destroyed.
func (s *Surface) SubSurface(r Rect) (*Surface, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("lgl: sub surface: %w", ErrInvalidParams)
	}
	clip, ok := r.Intersect(s.Rect())
	if !ok || clip != r {
		return nil, fmt.Errorf("lgl: sub surface %v outside %v: %w", r, s.Rect(), ErrInvalidParams)
	}
	bpp := s.format.bpp
	start := r.Y*s.stride + r.X*bpp
	end := (r.Y+r.Height-1)*s.stride + (r.X+r.Width)*bpp
	return &Surface{
		width:  r.Width,
		height: r.Height,
		stride: s.stride,
		pix:    s.pix[start:end:end],
		format: s.format,
		flags:  s.flags | FlagPreallocated,
		key:    s.key,
		alloc:  s.alloc,
	}, nil
}

func (s *Surface) allocator() Allocator {
	if s.alloc == nil {
		return DefaultAllocator
	}
	return s.alloc
}

// SetColorKey makes pixels whose RGB equals c transparent when s is used
// as a blit source. The key is quantized to the surface format.
// Setting a key also sets FlagHasAlpha.
func (s *Surface) SetColorKey(c Color) {
	if !s.check("set color key") {
		return
	}
	k := s.format.PixelToColor(s.format.ColorToPixel(c))
	k.A = 0
	s.key = k
	s.flags |= FlagHasColorKey | FlagHasAlpha
}

// ColorKey returns the color key and whether one is set.
func (s *Surface) ColorKey() (Color, bool) {
	if s == nil || s.flags&FlagHasColorKey == 0 {
		return Color{}, false
	}
	return s.key, true
}

// UnsetColorKey removes the color key. FlagHasAlpha is left as is.
func (s *Surface) UnsetColorKey() {
	if s == nil {
		return
	}
	s.flags &^= FlagHasColorKey
	s.key = Color{}
}

// isKey reports whether c matches the color key of s.
func (s *Surface) isKey(c Color) bool {
	return s.flags&FlagHasColorKey != 0 && c.R == s.key.R && c.G == s.key.G && c.B == s.key.B
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the number of bytes between the starts of adjacent rows.
func (s *Surface) Stride() int { return s.stride }

// Format returns the pixel format.
func (s *Surface) Format() *PixelFormat { return s.format }

// Pixels returns the underlying buffer. Row y starts at y*Stride().
func (s *Surface) Pixels() []byte { return s.pix }

// Flags returns the surface flags.
func (s *Surface) Flags() SurfaceFlags { return s.flags }

// HasAlpha reports whether FlagHasAlpha is set.
func (s *Surface) HasAlpha() bool { return s.flags&FlagHasAlpha != 0 }

// Rect returns {0, 0, Width, Height}.
func (s *Surface) Rect() Rect {
	if s == nil {
		return Rect{}
	}
	return Rect{Width: s.width, Height: s.height}
}

func (s *Surface) String() string {
	if !s.Valid() {
		return "Surface(invalid)"
	}
	return fmt.Sprintf("Surface(%dx%d %v stride=%d %v)", s.width, s.height, s.format, s.stride, s.flags)
}

// row returns the bytes of n pixels of row y starting at column x.
func (s *Surface) row(x, y, n int) []byte {
	bpp := s.format.bpp
	off := y*s.stride + x*bpp
	return s.pix[off : off+n*bpp]
}

// offset returns the byte offset of pixel (x, y).
func (s *Surface) offset(x, y int) int {
	return y*s.stride + x*s.format.bpp
}

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// PixelAt returns the packed pixel at (x, y), or 0 outside the surface.
func (s *Surface) PixelAt(x, y int) uint32 {
	if !s.Valid() || !s.inBounds(x, y) {
		return 0
	}
	return pixel.Load(s.pix[s.offset(x, y):], s.format.bpp)
}

// SetPixel stores a packed pixel at (x, y). Out-of-bounds writes are ignored.
func (s *Surface) SetPixel(x, y int, p uint32) {
	if !s.Valid() || !s.inBounds(x, y) {
		return
	}
	pixel.Store(s.pix[s.offset(x, y):], s.format.bpp, p)
}

// ColorAt returns the decoded color at (x, y), or the zero Color outside
// the surface.
func (s *Surface) ColorAt(x, y int) Color {
	if !s.Valid() || !s.inBounds(x, y) {
		return Color{}
	}
	return s.format.PixelToColor(pixel.Load(s.pix[s.offset(x, y):], s.format.bpp))
}

// SetColor encodes c and stores it at (x, y) without blending.
func (s *Surface) SetColor(x, y int, c Color) {
	if !s.Valid() || !s.inBounds(x, y) {
		return
	}
	pixel.Store(s.pix[s.offset(x, y):], s.format.bpp, s.format.ColorToPixel(c))
}

// BlendPixel composites c over the pixel at (x, y) with the fill alpha
// rule: alpha 0 is a no-op, alpha 255 a plain store.
func (s *Surface) BlendPixel(x, y int, c Color) {
	if c.A == 0 || !s.Valid() || !s.inBounds(x, y) {
		return
	}
	b := s.pix[s.offset(x, y):]
	bpp := s.format.bpp
	if c.A == 255 {
		pixel.Store(b, bpp, s.format.ColorToPixel(c))
		return
	}
	dc := s.format.PixelToColor(pixel.Load(b, bpp))
	pixel.Store(b, bpp, s.format.ColorToPixel(BlendColors(c, dc, FillAlphaPolicy)))
}
