package render

import (
	"fmt"
	"strings"
)

// Format selects how an illustration is exported.
type Format int

const (
	// FormatNone renders nothing.
	FormatNone Format = iota
	// FormatSVG is the vector format.
	FormatSVG
	// FormatPNG is lossless raster.
	FormatPNG
	// FormatJPEG is lossy raster.
	FormatJPEG
)

// ParseFormat parses a format name, ignoring case. The single letters e, p and
// j select the vector, PNG and JPEG formats respectively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "svg", "vector", "e":
		return FormatSVG, nil
	case "png", "p":
		return FormatPNG, nil
	case "jpg", "jpeg", "j":
		return FormatJPEG, nil
	case "none", "":
		return FormatNone, nil
	default:
		return FormatNone, fmt.Errorf("unknown format %q (want svg, png, jpeg or none)", s)
	}
}

func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatSVG:
		return "svg"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file extension for f including the dot, or "" for
// FormatNone.
func (f Format) Ext() string {
	switch f {
	case FormatSVG:
		return ".svg"
	case FormatPNG:
		return ".png"
	case FormatJPEG:
		return ".jpg"
	default:
		return ""
	}
}

// MimeType returns the media type of f.
func (f Format) MimeType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	default:
		return ""
	}
}
