// Package mosaic turns a prepared image into a "genome" brick illustration.
//
// The pipeline has four steps:
//
//  1. Sample: count pixel colours at a fixed stride into a FrequencyTable.
//  2. LeastFrequent: derive the signal colour, the second most frequent
//     colour of the whole image.
//  3. Plan: lay out the offset brick grid for the output width and height.
//  4. Resolve: pick one colour per brick, overriding the brick's majority
//     colour with the signal colour when the signal colour is strongly
//     present in that brick.
//
// # Coordinate System
//
// Brick bounds are floating point pixel coordinates with (0,0) at the top-left
// corner. A brick covers [Left, Right) x [Top, Bottom). When bricks are sampled
// from an image the bounds are rounded half-to-even to whole pixels.
//
// # Determinism
//
// FrequencyTable remembers the order in which colours were first sampled and
// every argmax in this package resolves ties to the colour seen first. Two runs
// over the same pixels always produce the same illustration.
//
// # Thread Safety
//
// Values produced by this package are not mutated after construction and may
// be read from several goroutines. Generation itself runs on the calling
// goroutine.
package mosaic
