package lgl

// SurfaceOption configures surface construction.
//
// Example:
//
//	arena := lgl.NewArena(1 << 20)
//	s, err := lgl.NewSurface(64, 64, lgl.FormatRGB565, lgl.WithAllocator(arena))
type SurfaceOption func(*surfaceOptions)

type surfaceOptions struct {
	allocator Allocator
	stride    int
}

func defaultSurfaceOptions() surfaceOptions {
	return surfaceOptions{allocator: DefaultAllocator}
}

func applySurfaceOptions(opts []SurfaceOption) surfaceOptions {
	o := defaultSurfaceOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithAllocator sets the allocator that owns the surface's pixel buffer.
// Surfaces derived from it (Copy, Convert, Rotate, Scale, Scale2x) use the
// same allocator. A nil allocator selects DefaultAllocator.
func WithAllocator(a Allocator) SurfaceOption {
	return func(o *surfaceOptions) {
		if a == nil {
			a = DefaultAllocator
		}
		o.allocator = a
	}
}

// WithStride sets the row pitch in bytes of a borrowed buffer passed to
// NewSurfaceFromBuffer. It must be at least width*BytesPerPixel.
// Owned surfaces ignore it and are always tightly packed.
func WithStride(stride int) SurfaceOption {
	return func(o *surfaceOptions) {
		o.stride = stride
	}
}
