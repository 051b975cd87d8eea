package mosaic

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
)

// Raster is a flattened RGBA copy of a prepared image with brick-local pixel
// access. Coordinates are relative to the image's top-left corner, whatever
// the source image's bounds origin is.
//
// Alpha is dropped. Translucent pixels contribute their premultiplied RGB.
type Raster struct {
	img *image.RGBA
}

// NewRaster copies img into a Raster.
func NewRaster(img image.Image) *Raster {
	return &Raster{img: clone.AsRGBA(img)}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.img.Bounds().Dx() }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.img.Bounds().Dy() }

// Colors returns every pixel in row-major order.
func (r *Raster) Colors() []Color {
	return r.region(image.Rect(0, 0, r.Width(), r.Height()))
}

// Brick returns the pixels inside rect in row-major order. The bounds are
// rounded to whole pixels. Pixels beyond the raster edge read as black, so a
// brick whose rounded bottom lands one row below the image still counts that
// row.
func (r *Raster) Brick(rect Rect) []Color {
	px := rect.Pixels()
	if px.Empty() {
		return nil
	}
	if px.In(image.Rect(0, 0, r.Width(), r.Height())) {
		return r.region(px)
	}

	out := make([]Color, 0, px.Dx()*px.Dy())
	for y := px.Min.Y; y < px.Max.Y; y++ {
		for x := px.Min.X; x < px.Max.X; x++ {
			out = append(out, r.at(x, y))
		}
	}
	return out
}

// at returns the pixel at (x, y), or black outside the raster.
func (r *Raster) at(x, y int) Color {
	if x < 0 || y < 0 || x >= r.Width() || y >= r.Height() {
		return Color{}
	}
	min := r.img.Bounds().Min
	off := r.img.PixOffset(min.X+x, min.Y+y)
	p := r.img.Pix[off : off+3 : off+3]
	return Color{R: p[0], G: p[1], B: p[2]}
}

func (r *Raster) region(px image.Rectangle) []Color {
	px = px.Intersect(image.Rect(0, 0, r.Width(), r.Height()))
	if px.Empty() {
		return nil
	}

	min := r.img.Bounds().Min
	out := make([]Color, 0, px.Dx()*px.Dy())
	for y := px.Min.Y; y < px.Max.Y; y++ {
		off := r.img.PixOffset(min.X+px.Min.X, min.Y+y)
		for x := px.Min.X; x < px.Max.X; x++ {
			p := r.img.Pix[off : off+3 : off+3]
			out = append(out, Color{R: p[0], G: p[1], B: p[2]})
			off += 4
		}
	}
	return out
}
