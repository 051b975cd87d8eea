package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/genome-mosaic/internal/mosaic"
)

// Rasterize draws ill onto a new image of its output size. Brick bounds are
// rounded to whole pixels the same way bricks are sampled.
func Rasterize(ill *mosaic.Illustration, opts Options) *image.RGBA {
	height := int(math.Round(ill.Height()))
	dst := image.NewRGBA(image.Rect(0, 0, ill.Width(), height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(toRGBA(opts.Background.Normalized())), image.Point{}, draw.Src)

	ill.ForEachRectangle(func(b mosaic.Rect, fill colorful.Color) {
		r := b.Pixels().Intersect(dst.Bounds())
		draw.Draw(dst, r, image.NewUniform(toRGBA(fill)), image.Point{}, draw.Src)
	})
	return dst
}

// WriteRaster rasterizes ill and encodes it as PNG or JPEG.
func WriteRaster(w io.Writer, ill *mosaic.Illustration, format Format, opts Options) error {
	var enc imgio.Encoder
	switch format {
	case FormatPNG:
		enc = imgio.PNGEncoder()
	case FormatJPEG:
		enc = imgio.JPEGEncoder(opts.JPEGQuality)
	default:
		return fmt.Errorf("format %s is not a raster format", format)
	}

	if err := enc(w, Rasterize(ill, opts)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
