// Package image decodes and resamples still images for sprite loading.
//
// Decoded images are always returned as *image.NRGBA anchored at the
// origin, so callers can index Pix directly with straight (non-premultiplied)
// alpha.
package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not recognized.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrInvalidDimensions is returned when a width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")
)

// Load decodes the image file at path, auto-detecting the format.
// It returns the decoded pixels and the format name ("png", "jpeg", ...).
func Load(path string) (*image.NRGBA, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*image.NRGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}
	return ToNRGBA(img), format, nil
}

// ToNRGBA converts img to a non-premultiplied RGBA image whose bounds start
// at the origin. An *image.NRGBA already anchored at the origin is returned
// as is.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// Scale resamples src to width×height with Catmull-Rom interpolation.
func Scale(src image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
