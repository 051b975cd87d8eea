package imaging

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ErrInvalidRatio is returned for an aspect ratio outside (0, 1].
var ErrInvalidRatio = errors.New("aspect ratio must be in (0, 1]")

// GoldenCrop crops img to the height-to-width ratio, centred.
//
// An image taller than width*ratio loses rows evenly from the top and bottom;
// a wider one loses columns evenly from the left and right. Crop offsets are
// rounded half-to-even. An image already at the ratio is returned unchanged.
func GoldenCrop(img image.Image, ratio float64) (image.Image, error) {
	if !(ratio > 0 && ratio <= 1) {
		return nil, fmt.Errorf("crop to ratio %g: %w", ratio, ErrInvalidRatio)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("crop to ratio %g: image is empty", ratio)
	}
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	var r image.Rectangle
	switch {
	case h == w*ratio:
		return img, nil
	case h > w*ratio:
		top := int(math.RoundToEven((h - w*ratio) / 2))
		bottom := int(math.RoundToEven((h + w*ratio) / 2))
		r = image.Rect(0, top, bounds.Dx(), bottom)
	default:
		left := int(math.RoundToEven((w - h/ratio) / 2))
		right := int(math.RoundToEven((w + h/ratio) / 2))
		r = image.Rect(left, 0, right, bounds.Dy())
	}

	// imaging.Crop takes coordinates in img's own space.
	return imaging.Crop(img, r.Add(bounds.Min)), nil
}

// ResizeToWidth scales img to width pixels wide, keeping its aspect ratio.
// The new height is rounded half-to-even. Lanczos resampling is used.
func ResizeToWidth(img image.Image, width int) (image.Image, error) {
	bounds := img.Bounds()
	if width <= 0 {
		return nil, fmt.Errorf("resize to width %d: width must be positive", width)
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("resize to width %d: image is empty", width)
	}

	scale := float64(width) / float64(bounds.Dx())
	height := int(math.RoundToEven(float64(bounds.Dy()) * scale))
	if height < 1 {
		height = 1
	}
	return imaging.Resize(img, width, height, imaging.Lanczos), nil
}

// Prepare crops img to ratio and resizes it to width, the input Generate
// expects.
func Prepare(img image.Image, width int, ratio float64) (image.Image, error) {
	cropped, err := GoldenCrop(img, ratio)
	if err != nil {
		return nil, err
	}
	return ResizeToWidth(cropped, width)
}
