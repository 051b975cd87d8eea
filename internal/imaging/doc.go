// Package imaging loads source photographs and prepares them for the mosaic
// generator.
//
// Preparation is a centred crop to the illustration's aspect ratio followed by
// a Lanczos resize to the output width. The result is handed to
// mosaic.Generate unchanged.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner. Images with
// a non-zero bounds origin (for example sub-images) are cropped in their own
// coordinate space; cropped and resized images start at (0,0).
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. GoldenCrop, ResizeToWidth and Prepare
// never modify their input and may be called concurrently.
//
// # Error Handling
//
// Functions return errors for:
//   - missing or unreadable files
//   - files that are not PNG, JPEG, or GIF images
//   - empty images
//   - aspect ratios outside (0, 1] (ErrInvalidRatio)
package imaging
