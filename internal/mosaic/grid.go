package mosaic

import (
	"fmt"
	"image"
	"math"
)

// Grid density constants. Density is quantized in units of scaleUnit pixels
// of output width; each unit adds linesPerScale columns and rowsPerScale rows.
const (
	scaleUnit     = 1000
	linesPerScale = 51
	rowsPerScale  = 3
)

// MaxWidth is the widest output Plan accepts. A prepared image of this width
// at the golden ratio already takes a few hundred megabytes as RGBA.
const MaxWidth = 12 * scaleUnit

// Rect is a brick's bounds in output pixel coordinates.
// Left and Top are inclusive, Right and Bottom exclusive.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Pixels returns the whole-pixel rectangle covered by r. Bounds are rounded
// half-to-even, the same way an image crop box is rounded.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.RoundToEven(r.Left)),
		int(math.RoundToEven(r.Top)),
		int(math.RoundToEven(r.Right)),
		int(math.RoundToEven(r.Bottom)),
	)
}

// Grid is the offset brick layout for one output size.
type Grid struct {
	Width  int     `json:"width"`
	Height float64 `json:"height"`
	Scale  int     `json:"scale"`
	Lines  int     `json:"lines"` // columns
	Rows   int     `json:"rows"`
	DeltaX float64 `json:"delta_x"`
	DeltaY float64 `json:"delta_y"`

	// Bricks are ordered row by row, left to right. Fill colours are matched
	// to bricks by index.
	Bricks []Rect `json:"-"`
}

// Plan lays out the brick grid for an output of the given size.
//
// The width is divided into scale = width/1000 density units. An odd scale
// uses 51*scale columns and 3*scale rows, an even scale one more of each so
// the alternating row offset stays symmetric. Even rows hold bricks in the
// odd columns and odd rows hold bricks in the even columns; the skipped cells
// are left empty, which produces the brick wall pattern.
//
// # Errors
//
//   - ErrInvalidWidth if width is below 1000 or above MaxWidth. Widths are
//     rejected, not clamped.
//   - ErrInvalidHeight if height is not positive.
func Plan(width int, height float64) (*Grid, error) {
	scale := width / scaleUnit
	if width <= 0 || scale < 1 || width > MaxWidth {
		return nil, fmt.Errorf("plan grid for width %d: %w", width, ErrInvalidWidth)
	}
	if !(height > 0) {
		return nil, fmt.Errorf("plan grid for height %g: %w", height, ErrInvalidHeight)
	}

	lines := linesPerScale * scale
	rows := rowsPerScale * scale
	if scale%2 == 0 {
		lines++
		rows++
	}

	g := &Grid{
		Width:  width,
		Height: height,
		Scale:  scale,
		Lines:  lines,
		Rows:   rows,
		DeltaX: float64(width) / float64(lines),
		DeltaY: height / float64(rows),
	}
	g.Bricks = make([]Rect, 0, brickCount(lines, rows))

	for i := 0; i < rows; i++ {
		start := 1
		if i%2 == 1 {
			start = 0
		}
		for j := start; j < lines; j += 2 {
			g.Bricks = append(g.Bricks, g.cell(i, j))
		}
	}
	return g, nil
}

func (g *Grid) cell(row, col int) Rect {
	return Rect{
		Left:   float64(col) * g.DeltaX,
		Top:    float64(row) * g.DeltaY,
		Right:  float64(col+1) * g.DeltaX,
		Bottom: float64(row+1) * g.DeltaY,
	}
}

// brickCount is the number of bricks Plan emits: even rows take the odd
// columns (lines/2), odd rows take the even columns ((lines+1)/2).
func brickCount(lines, rows int) int {
	evenRows := (rows + 1) / 2
	oddRows := rows / 2
	return evenRows*(lines/2) + oddRows*((lines+1)/2)
}
