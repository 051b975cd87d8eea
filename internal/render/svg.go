package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/genome-mosaic/internal/mosaic"
)

// svgPrecision is the number of viewBox units per output pixel. svgo only
// takes integer coordinates, so brick bounds are scaled up to keep fractional
// positions and adjacent bricks meeting exactly.
const svgPrecision = 100

// WriteSVG writes ill as an SVG document. The document is width x height
// pixels; each brick is a filled rectangle with no stroke, drawn over a
// background rectangle.
func WriteSVG(w io.Writer, ill *mosaic.Illustration, opts Options) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	width := ill.Width()
	height := int(math.Round(ill.Height()))
	canvas.Startview(width, height, 0, 0, width*svgPrecision, scaled(ill.Height()))
	canvas.Title("genome mosaic")
	canvas.Rect(0, 0, width*svgPrecision, scaled(ill.Height()), fillStyle(opts.Background.Normalized()))

	ill.ForEachRectangle(func(b mosaic.Rect, fill colorful.Color) {
		x, y := scaled(b.Left), scaled(b.Top)
		canvas.Rect(x, y, scaled(b.Right)-x, scaled(b.Bottom)-y, fillStyle(fill))
	})
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("failed to write svg: %w", ew.err)
	}
	return nil
}

func scaled(v float64) int {
	return int(math.Round(v * svgPrecision))
}

func fillStyle(c colorful.Color) string {
	return "fill:" + c.Clamped().Hex() + ";stroke:none"
}

// errWriter remembers the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
