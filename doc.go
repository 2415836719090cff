// Package lgl is a software 2D raster core: packed pixel formats, surfaces,
// solid and blended fills, blits between formats, scanline primitives and
// fixed-point transforms.
//
// # Quick Start
//
//	s, err := lgl.NewSurface(320, 240, lgl.FormatRGB565)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Destroy()
//
//	s.Fill(lgl.Black)
//	s.DrawCircle(160, 120, 50, lgl.RGBA(255, 0, 0, 128))
//	s.DrawTriangle(10, 10, 100, 10, 10, 100, lgl.Yellow)
//
// # Pixel formats
//
// A PixelFormat packs the four 8-bit channels of a Color into 1, 2 or 4
// bytes through per-channel masks, shifts and precision losses. Formats are
// immutable and compared by pointer; the predefined values (FormatRGBA8888,
// FormatRGB565, FormatRGB332 and so on) form a closed table. Pixels are
// stored little-endian.
//
// # Surfaces
//
// A Surface owns its buffer (NewSurface, allocated through an Allocator
// passed with WithAllocator) or borrows one (NewSurfaceFromBuffer,
// SubSurface). Destroy releases an owned buffer and leaves an inert zero
// Surface behind. Construction and transforms return errors wrapping
// ErrInvalidParams or ErrOutOfMemory; fills, blits, drawing and flips have
// no failure mode and ignore invalid surfaces.
//
// # Alpha
//
// Blending uses the source-over rule with truncating division,
// out = (s*a + d*(255-a)) / 255. Fills treat the destination as opaque
// (FillAlphaPolicy); blits accumulate alpha (BlitAlphaPolicy).
// FlagHasAlpha is a hint chosen at creation that selects the blit path.
//
// # Transforms
//
// Rotate, Scale and the AdvMAME2x Scale2x produce new surfaces and use
// Q16.16 fixed-point arithmetic; Rotate takes angles in whole degrees and
// looks them up in a sine table unless another Trig is supplied.
//
// # Logging
//
// lgl is silent by default. Call SetLogger with a *slog.Logger to receive
// diagnostics from this package and its text, imageio and window
// sub-packages.
package lgl
