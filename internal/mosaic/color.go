package mosaic

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an exact 8-bit RGB triple. Two colours are equal only when all
// three channels match; there is no distance metric.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Normalized returns the colour with each channel scaled to the 0-1 range,
// the form rendering sinks consume.
func (c Color) Normalized() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}
