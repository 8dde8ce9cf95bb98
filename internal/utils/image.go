package utils

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/nfnt/resize"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

type ImageDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FitDimensions scales width x height down to fit inside maxWidth x maxHeight
// while keeping the aspect ratio. Images that already fit are returned as is.
func FitDimensions(width, height, maxWidth, maxHeight uint) (uint, uint) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	widthRatio := float64(maxWidth) / float64(width)
	heightRatio := float64(maxHeight) / float64(height)

	if widthRatio < heightRatio {
		return maxWidth, uint(float64(height) * widthRatio)
	}
	return uint(float64(width) * heightRatio), maxHeight
}

func ResizeImage(r io.Reader, maxWidth, maxHeight uint) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Join(ErrUnsupportedImage, err)
	}

	bounds := img.Bounds()
	width, height := uint(bounds.Dx()), uint(bounds.Dy())

	newWidth, newHeight := FitDimensions(width, height, maxWidth, maxHeight)
	if newWidth == width && newHeight == height {
		return img, nil
	}

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3), nil
}

// CompressImage decodes a jpeg or png, shrinks it to the bounds and
// re-encodes it as jpeg at the given quality.
func CompressImage(r io.Reader, maxWidth, maxHeight uint, quality int) ([]byte, ImageDimensions, error) {
	img, err := ResizeImage(r, maxWidth, maxHeight)
	if err != nil {
		return nil, ImageDimensions{}, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, ImageDimensions{}, err
	}

	bounds := img.Bounds()
	return buf.Bytes(), ImageDimensions{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}
