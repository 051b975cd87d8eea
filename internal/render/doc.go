// Package render draws a mosaic illustration and exports it to a file.
//
// Two sinks consume an illustration through mosaic.Illustration.ForEachRectangle:
//   - WriteSVG emits a vector document, one <rect> per brick.
//   - WriteRaster fills the bricks into an RGBA image and encodes it as PNG or
//     JPEG.
//
// Export picks the sink from a Format and writes to a timestamped file such as
// "mosaic-20181019-153000.svg". The format is always passed in; nothing in
// this package prompts or reads from the terminal.
//
// Bricks are drawn with no stroke. Cells the brick pattern skips show
// Options.Background.
package render
