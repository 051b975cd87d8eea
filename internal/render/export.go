package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"

	"github.com/ironsheep/genome-mosaic/internal/mosaic"
)

// Options controls how an illustration is drawn.
type Options struct {
	// Background fills the cells the brick pattern leaves empty.
	Background mosaic.Color
	// JPEGQuality is the JPEG encoder quality, 1-100.
	JPEGQuality int
}

// DefaultOptions returns a white background and JPEG quality 90.
func DefaultOptions() Options {
	return Options{
		Background:  mosaic.Color{R: 255, G: 255, B: 255},
		JPEGQuality: 90,
	}
}

// Write renders ill to w in the given format. FormatNone writes nothing.
func Write(w io.Writer, ill *mosaic.Illustration, format Format, opts Options) error {
	switch format {
	case FormatNone:
		return nil
	case FormatSVG:
		return WriteSVG(w, ill, opts)
	case FormatPNG, FormatJPEG:
		return WriteRaster(w, ill, format, opts)
	default:
		return fmt.Errorf("unknown format %s", format)
	}
}

// FileName returns the timestamped name an export written at now gets.
func FileName(format Format, now time.Time) string {
	return "mosaic-" + now.Format("20060102-150405") + format.Ext()
}

// Export writes ill into dir under a timestamped name and returns the path.
// dir may start with "~" and is created if missing. FormatNone writes no file
// and returns an empty path.
//
// A partially written file is removed on error.
func Export(ill *mosaic.Illustration, format Format, dir string, now time.Time, opts Options) (string, error) {
	if format == FormatNone {
		log.Info("Export skipped")
		return "", nil
	}

	dir, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("failed to expand output dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	path := filepath.Join(dir, FileName(format, now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Write(f, ill, format, opts); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close output file: %w", err)
	}

	log.WithFields(log.Fields{
		"path":   path,
		"format": format,
		"bricks": len(ill.Fills),
	}).Info("Illustration exported")
	return path, nil
}
