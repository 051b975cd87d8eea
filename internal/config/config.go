// Package config holds the settings of one illustration run.
//
// Settings start from Default, are overridden by MOSAIC_* environment
// variables (FromEnv), and finally by command-line flags in cmd/mosaic.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ironsheep/genome-mosaic/internal/mosaic"
	"github.com/ironsheep/genome-mosaic/internal/render"
)

// Environment variables read by FromEnv.
const (
	EnvInput      = "MOSAIC_INPUT"
	EnvWidth      = "MOSAIC_WIDTH"
	EnvRatio      = "MOSAIC_RATIO"
	EnvStride     = "MOSAIC_STRIDE"
	EnvFormat     = "MOSAIC_FORMAT"
	EnvOutputDir  = "MOSAIC_OUTPUT_DIR"
	EnvBackground = "MOSAIC_BACKGROUND"
	EnvQuality    = "MOSAIC_JPEG_QUALITY"
	EnvLogLevel   = "MOSAIC_LOG_LEVEL"
)

// Config is the full set of settings for one run.
type Config struct {
	// Input is the source photograph.
	Input string
	// Width is the output width in pixels, 1000 to mosaic.MaxWidth. Grid
	// density grows with every further 1000 pixels.
	Width int
	// Ratio is the height-to-width ratio the photograph is cropped to.
	Ratio float64
	// Stride is the pixel sampling stride.
	Stride int
	// Format selects the export format.
	Format render.Format
	// OutputDir receives the exported file.
	OutputDir string
	// Background fills the cells between bricks.
	Background mosaic.Color
	// JPEGQuality is used for JPEG exports, 1-100.
	JPEGQuality int
	// LogLevel is a logrus level name.
	LogLevel string
}

// Default returns the stock settings: a 6000 pixel wide golden-ratio SVG on a
// white background.
func Default() Config {
	opts := render.DefaultOptions()
	return Config{
		Width:       6000,
		Ratio:       mosaic.GoldenRatio,
		Stride:      mosaic.DefaultStride,
		Format:      render.FormatSVG,
		OutputDir:   ".",
		Background:  opts.Background,
		JPEGQuality: opts.JPEGQuality,
		LogLevel:    "info",
	}
}

// FromEnv returns base with every MOSAIC_* variable that is set applied.
func FromEnv(base Config) (Config, error) {
	return fromLookup(base, os.LookupEnv)
}

func fromLookup(c Config, lookup func(string) (string, bool)) (Config, error) {
	var err error
	if v, ok := lookup(EnvInput); ok {
		c.Input = v
	}
	if v, ok := lookup(EnvWidth); ok {
		if c.Width, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("%s: %w", EnvWidth, err)
		}
	}
	if v, ok := lookup(EnvRatio); ok {
		if c.Ratio, err = strconv.ParseFloat(v, 64); err != nil {
			return c, fmt.Errorf("%s: %w", EnvRatio, err)
		}
	}
	if v, ok := lookup(EnvStride); ok {
		if c.Stride, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("%s: %w", EnvStride, err)
		}
	}
	if v, ok := lookup(EnvFormat); ok {
		if c.Format, err = render.ParseFormat(v); err != nil {
			return c, fmt.Errorf("%s: %w", EnvFormat, err)
		}
	}
	if v, ok := lookup(EnvOutputDir); ok {
		c.OutputDir = v
	}
	if v, ok := lookup(EnvBackground); ok {
		if c.Background, err = ParseColor(v); err != nil {
			return c, fmt.Errorf("%s: %w", EnvBackground, err)
		}
	}
	if v, ok := lookup(EnvQuality); ok {
		if c.JPEGQuality, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("%s: %w", EnvQuality, err)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	return c, nil
}

// Validate reports the first setting that would make a run fail.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return errors.New("no input image")
	case c.Width < 1000 || c.Width > mosaic.MaxWidth:
		return fmt.Errorf("width %d: %w", c.Width, mosaic.ErrInvalidWidth)
	case !(c.Ratio > 0 && c.Ratio <= 1):
		return fmt.Errorf("ratio %g must be in (0, 1]", c.Ratio)
	case c.Stride < 1:
		return fmt.Errorf("stride %d must be at least 1", c.Stride)
	case c.JPEGQuality < 1 || c.JPEGQuality > 100:
		return fmt.Errorf("jpeg quality %d must be in 1-100", c.JPEGQuality)
	case c.Format < render.FormatNone || c.Format > render.FormatJPEG:
		return fmt.Errorf("unknown format %s", c.Format)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// RenderOptions returns the render settings of c.
func (c Config) RenderOptions() render.Options {
	return render.Options{Background: c.Background, JPEGQuality: c.JPEGQuality}
}

// MosaicOptions returns the generator settings of c.
func (c Config) MosaicOptions() mosaic.Options {
	return mosaic.Options{Width: c.Width, Ratio: c.Ratio, Stride: c.Stride}
}

// ParseColor parses "#rrggbb" or "rrggbb".
func ParseColor(s string) (mosaic.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return mosaic.Color{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return mosaic.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return mosaic.Color{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val)}, nil
}

// SetupLogging configures the standard logrus logger: text output on stderr
// at the configured level.
func SetupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(lvl)
	return nil
}
