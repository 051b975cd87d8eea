package mosaic

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"
)

// GoldenRatio is the height-to-width ratio of every illustration.
const GoldenRatio = 0.618

// Options controls Generate. Zero values select the defaults.
type Options struct {
	// Width is the output width in pixels. Zero uses the image width.
	Width int
	// Height is the output height. Zero uses Width*Ratio.
	Height float64
	// Ratio is the height-to-width ratio used when Height is zero.
	// Zero uses GoldenRatio.
	Ratio float64
	// Stride is the pixel sampling stride. Zero uses DefaultStride.
	Stride int
}

func (o Options) withDefaults(img image.Image) Options {
	if o.Width == 0 {
		o.Width = img.Bounds().Dx()
	}
	if o.Ratio == 0 {
		o.Ratio = GoldenRatio
	}
	if o.Height == 0 {
		o.Height = float64(o.Width) * o.Ratio
	}
	if o.Stride == 0 {
		o.Stride = DefaultStride
	}
	return o
}

// Illustration is a finished brick layout with one fill colour per brick.
type Illustration struct {
	Grid *Grid
	// Fills is parallel to Grid.Bricks.
	Fills []Color
	// Reasons is parallel to Grid.Bricks.
	Reasons []Reason

	// Signal is the image's least frequent (signal) colour.
	Signal Color
	// Dominant is the image's most frequent colour.
	Dominant Color
	// Distinct is the number of distinct colours sampled from the image.
	Distinct int
	// Sampled is the number of pixels sampled from the image.
	Sampled int
}

// Generate builds the illustration of img, which should already be cropped
// and resized to the output size.
//
// # Errors
//
//   - ErrInvalidWidth / ErrInvalidHeight when the output size is rejected.
//   - ErrEmptyColorSet when img has no pixels.
//
// Either the whole illustration is produced or an error is returned.
func Generate(img image.Image, opts Options) (*Illustration, error) {
	opts = opts.withDefaults(img)

	grid, err := Plan(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	raster := NewRaster(img)
	global := Sample(raster.Colors(), opts.Stride)
	dominant, _, err := global.MostFrequent()
	if err != nil {
		return nil, fmt.Errorf("analyze %dx%d image: %w", raster.Width(), raster.Height(), err)
	}
	signal, err := LeastFrequent(global)
	if err != nil {
		return nil, fmt.Errorf("analyze %dx%d image: %w", raster.Width(), raster.Height(), err)
	}

	log.WithFields(log.Fields{
		"distinct": global.Len(),
		"sampled":  global.Total(),
		"dominant": dominant,
		"signal":   signal,
	}).Debug("Sampled image colors")

	resolver := NewResolver(global, signal, opts.Stride)
	ill := &Illustration{
		Grid:     grid,
		Fills:    make([]Color, len(grid.Bricks)),
		Reasons:  make([]Reason, len(grid.Bricks)),
		Signal:   signal,
		Dominant: dominant,
		Distinct: global.Len(),
		Sampled:  global.Total(),
	}
	for i, b := range grid.Bricks {
		d := resolver.Decide(raster.Brick(b))
		ill.Fills[i] = d.Color
		ill.Reasons[i] = d.Reason
	}

	log.WithFields(log.Fields{
		"bricks":   len(grid.Bricks),
		"scale":    grid.Scale,
		"signal":   ill.Count(ReasonSignal),
		"majority": ill.Count(ReasonMajority),
	}).Debug("Resolved brick colors")

	return ill, nil
}

// ForEachRectangle calls fn for every brick in grid order with the brick's
// bounds and its fill colour normalized to 0-1 per channel.
func (ill *Illustration) ForEachRectangle(fn func(bounds Rect, fill colorful.Color)) {
	for i, b := range ill.Grid.Bricks {
		fn(b, ill.Fills[i].Normalized())
	}
}

// Count returns how many bricks were decided by reason.
func (ill *Illustration) Count(reason Reason) int {
	n := 0
	for _, r := range ill.Reasons {
		if r == reason {
			n++
		}
	}
	return n
}

// Width returns the output width in pixels.
func (ill *Illustration) Width() int { return ill.Grid.Width }

// Height returns the output height in pixels.
func (ill *Illustration) Height() float64 { return ill.Grid.Height }
