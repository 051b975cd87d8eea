package mosaic

import "errors"

var (
	// ErrInvalidWidth is returned when the output width is below one grid
	// scale unit (1000 pixels) or above MaxWidth.
	ErrInvalidWidth = errors.New("width must be between 1000 and 12000 pixels")

	// ErrInvalidHeight is returned when the output height is not positive.
	ErrInvalidHeight = errors.New("height must be positive")

	// ErrEmptyColorSet is returned when a colour is requested from a table
	// that holds no colours.
	ErrEmptyColorSet = errors.New("no colors sampled")
)
