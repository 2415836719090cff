package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/gogpu/lgl"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Format is an image file format.
type Format int

// Supported file formats.
const (
	PNG Format = iota
	JPEG
	BMP
)

// JPEGQuality is the quality used when encoding JPEG.
const JPEGQuality = 90

// String returns the format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	default:
		return 0, fmt.Errorf("imageio: %q: %w", filepath.Ext(path), ErrUnsupportedFormat)
	}
}

// Load decodes the image file at path, detecting the format from its
// content.
func Load(path string) (*lgl.Surface, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (*lgl.Surface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes a PNG, JPEG or BMP image into a FormatABGR8888 surface.
// FlagHasAlpha is set only if some pixel is translucent.
func Decode(r io.Reader) (*lgl.Surface, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	n := toNRGBA(img)
	b := n.Bounds()
	s, err := lgl.NewSurfaceFromBuffer(b.Dx(), b.Dy(), lgl.FormatABGR8888, n.Pix, lgl.WithStride(n.Stride))
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return s, nil
}

// toNRGBA returns img as an NRGBA image whose bounds start at the origin.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return n
}

// Encode writes s to w in format f.
func Encode(w io.Writer, s *lgl.Surface, f Format) error {
	if s == nil || !s.Valid() {
		return fmt.Errorf("imageio: encode: %w", lgl.ErrInvalidParams)
	}
	img := s.ToNRGBA()

	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case BMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("imageio: encode %v: %w", f, ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %v: %w", f, err)
	}
	return nil
}

// Save writes s to path, choosing the format from the extension
// (.png, .jpg, .jpeg or .bmp).
func Save(path string, s *lgl.Surface) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, s, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Wrap describes a raw pixel buffer by its byte width and channel masks and
// wraps it as a surface without copying. The masks must match one of the
// predefined formats, otherwise the error wraps lgl.ErrUnknownFormat.
func Wrap(width, height, bytesPerPixel int, rMask, gMask, bMask, aMask uint32, buf []byte) (*lgl.Surface, error) {
	format, err := lgl.LookupFormat(bytesPerPixel, rMask, gMask, bMask, aMask)
	if err != nil {
		return nil, err
	}
	return lgl.NewSurfaceFromBuffer(width, height, format, buf)
}
