package pulse

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrImageLoad is returned if an image file could not be read or decoded.
var ErrImageLoad = errors.New("unable to load image")

// LoadImageFile reads and decodes the image at path into straight alpha rgba.
func LoadImageFile(path string) (*image.NRGBA, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrImageLoad, path, err)
	}

	img, err := DecodeImage(buf)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrImageLoad, path, err)
	}

	if w, h := img.Rect.Dx(), img.Rect.Dy(); w%16 != 0 || h%16 != 0 {
		slog.Warn("Image size is not a multiple of 16",
			slog.String("path", path),
			slog.Int("width", w),
			slog.Int("height", h),
		)
	}

	return img, nil
}

// DecodeImage decodes an image in any registered format from memory.
func DecodeImage(buf []byte) (*image.NRGBA, error) {
	src, format, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if src.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s image: image is empty", format)
	}

	return ToNRGBA(src), nil
}

// ToNRGBA converts the image into an *image.NRGBA with its origin at 0,0.
// The pixels keep straight (non premultiplied) alpha.
func ToNRGBA(src image.Image) *image.NRGBA {
	if nrgba, ok := src.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) && nrgba.Stride == 4*nrgba.Rect.Dx() {
		return nrgba
	}

	bounds := src.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	return nrgba
}
