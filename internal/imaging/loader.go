package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	"github.com/disintegration/imaging"
	homedir "github.com/mitchellh/go-homedir"
)

// ImageCache provides thread-safe caching of decoded source photographs.
//
// Images are keyed by their expanded path, so "~/photo.jpg" and the absolute
// path it expands to share one entry. ImageCache is safe for concurrent use.
//
// Cached images remain in memory until Evict is called.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the decoded image at path, reading it from disk on first use.
//
// A leading "~" in path is expanded to the user's home directory. JPEG images
// are rotated according to their EXIF orientation tag so the photograph is
// cropped the way it is viewed.
//
// # Errors
//
//   - the path cannot be expanded
//   - the file does not exist or cannot be read
//   - the file is not a PNG, JPEG, or GIF image
func (c *ImageCache) Load(path string) (image.Image, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand path %q: %w", path, err)
	}

	c.mu.RLock()
	if img, ok := c.images[expanded]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[expanded] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes the image loaded from path. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of the image at path, loading it into
// the cache if needed.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
