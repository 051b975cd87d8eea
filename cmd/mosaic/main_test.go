package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ironsheep/genome-mosaic/internal/config"
	"github.com/ironsheep/genome-mosaic/internal/mosaic"
	"github.com/ironsheep/genome-mosaic/internal/render"
)

func TestParseFlags(t *testing.T) {
	cfg := config.Default()
	err := parseFlags(&cfg, []string{
		"-input", "photo.jpg",
		"-width", "2000",
		"-format", "png",
		"-out", "/tmp/out",
		"-background", "#102030",
		"-quality", "75",
	})
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}

	if cfg.Input != "photo.jpg" || cfg.Width != 2000 || cfg.OutputDir != "/tmp/out" || cfg.JPEGQuality != 75 {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Format != render.FormatPNG {
		t.Errorf("format: got %v, want png", cfg.Format)
	}
	if want := (mosaic.Color{R: 0x10, G: 0x20, B: 0x30}); cfg.Background != want {
		t.Errorf("background: got %v, want %v", cfg.Background, want)
	}
	// Untouched settings keep their defaults.
	if cfg.Ratio != mosaic.GoldenRatio || cfg.Stride != mosaic.DefaultStride {
		t.Errorf("defaults changed: ratio %v stride %d", cfg.Ratio, cfg.Stride)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-colour", "red"}},
		{"bad format", []string{"-format", "eps2"}},
		{"bad background", []string{"-background", "white"}},
		{"stray argument", []string{"-input", "a.png", "b.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			if err := parseFlags(&cfg, tt.args); err == nil {
				t.Error("parseFlags should fail")
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 320, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 320; x++ {
			c := color.RGBA{30, 60, 90, 255}
			if (x/20+y/20)%2 == 0 {
				c = color.RGBA{240, 220, 10, 255}
			}
			img.Set(x, y, c)
		}
	}
	input := filepath.Join(t.TempDir(), "photo.png")
	f, err := os.Create(input)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg := config.Default()
	cfg.Input = input
	cfg.Width = 1000
	cfg.OutputDir = t.TempDir()

	now := time.Date(2018, 10, 19, 9, 5, 7, 0, time.UTC)
	path, err := generate(cfg, now)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if want := filepath.Join(cfg.OutputDir, "mosaic-20181019-090507.svg"); path != want {
		t.Errorf("path: got %s, want %s", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file: %v", err)
	}
}

func TestGenerate_MissingInput(t *testing.T) {
	cfg := config.Default()
	cfg.Input = filepath.Join(t.TempDir(), "missing.png")
	cfg.Width = 1000
	cfg.OutputDir = t.TempDir()

	if _, err := generate(cfg, time.Now()); err == nil {
		t.Error("generate should fail for a missing input")
	}
}
