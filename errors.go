package lgl

import "errors"

// Sentinel errors returned by surface construction and transforms.
// Use errors.Is to test for them; returned errors wrap these with context.
var (
	// ErrInvalidParams is returned for a nil format, non-positive
	// dimensions, a missing or short buffer, or an invalid surface.
	ErrInvalidParams = errors.New("lgl: invalid parameters")

	// ErrOutOfMemory is returned when an allocator cannot satisfy a request.
	ErrOutOfMemory = errors.New("lgl: out of memory")

	// ErrUnknownFormat is returned when a mask combination matches no
	// predefined pixel format.
	ErrUnknownFormat = errors.New("lgl: unknown pixel format")

	// ErrInternal is returned when an internal invariant does not hold.
	ErrInternal = errors.New("lgl: internal error")
)

// Must panics if err is non-nil and returns s otherwise.
//
//	fb := lgl.Must(lgl.NewSurface(320, 240, lgl.FormatRGBA8888))
func Must(s *Surface, err error) *Surface {
	if err != nil {
		panic(err)
	}
	return s
}
