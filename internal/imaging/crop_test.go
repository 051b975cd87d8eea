package imaging

import (
	"errors"
	"image"
	"image/color"
	"math"
	"os"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func rgb8(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestGoldenCrop_Dimensions(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		ratio        float64
		wantW, wantH int
	}{
		{"tall image loses rows", 1000, 1000, 0.618, 1000, 618},
		{"wide image loses columns", 3000, 1000, 0.5, 2000, 1000},
		{"portrait photo", 600, 800, 0.618, 600, 370},
		{"square ratio", 400, 300, 1, 300, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(tt.w, tt.h, color.RGBA{255, 0, 0, 255})

			cropped, err := GoldenCrop(img, tt.ratio)
			if err != nil {
				t.Fatalf("GoldenCrop failed: %v", err)
			}

			b := cropped.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestGoldenCrop_AlreadyAtRatio(t *testing.T) {
	img := createInMemoryImage(200, 100, color.RGBA{0, 255, 0, 255})

	cropped, err := GoldenCrop(img, 0.5)
	if err != nil {
		t.Fatalf("GoldenCrop failed: %v", err)
	}
	if cropped != img {
		t.Error("GoldenCrop should return an image already at the ratio unchanged")
	}
}

func TestGoldenCrop_KeepsCentre(t *testing.T) {
	// 100x200 at ratio 0.5 keeps rows 75..124.
	img := createPatternImage(100, 200)

	cropped, err := GoldenCrop(img, 0.5)
	if err != nil {
		t.Fatalf("GoldenCrop failed: %v", err)
	}

	tests := []struct {
		name    string
		x, y    int
		r, g, b uint8
	}{
		{"upper left is red", 25, 10, 255, 0, 0},
		{"upper right is green", 75, 10, 0, 255, 0},
		{"lower left is blue", 25, 40, 0, 0, 255},
		{"lower right is white", 75, 40, 255, 255, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := rgb8(cropped.At(tt.x, tt.y))
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("color at (%d,%d): got (%d,%d,%d), want (%d,%d,%d)",
					tt.x, tt.y, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestGoldenCrop_SubImage(t *testing.T) {
	img := createPatternImage(200, 200)
	// The bottom-right quadrant is white.
	sub := img.SubImage(image.Rect(100, 100, 200, 200))

	cropped, err := GoldenCrop(sub, 0.5)
	if err != nil {
		t.Fatalf("GoldenCrop failed: %v", err)
	}
	b := cropped.Bounds()
	if b.Min != (image.Point{}) || b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("bounds: got %v, want (0,0)-(100,50)", b)
	}
	if r, g, bl := rgb8(cropped.At(50, 25)); r != 255 || g != 255 || bl != 255 {
		t.Errorf("centre: got (%d,%d,%d), want white", r, g, bl)
	}
}

func TestGoldenCrop_InvalidRatio(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	for _, ratio := range []float64{0, -0.5, 1.5, math.NaN()} {
		_, err := GoldenCrop(img, ratio)
		if !errors.Is(err, ErrInvalidRatio) {
			t.Errorf("ratio %v: got %v, want ErrInvalidRatio", ratio, err)
		}
	}
}

func TestGoldenCrop_EmptyImage(t *testing.T) {
	if _, err := GoldenCrop(image.NewRGBA(image.Rect(0, 0, 0, 0)), 0.618); err == nil {
		t.Error("GoldenCrop should fail for an empty image")
	}
}

func TestResizeToWidth(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		width        int
		wantW, wantH int
	}{
		{"scale down", 2000, 1236, 1000, 1000, 618},
		{"scale up", 500, 309, 1000, 1000, 618},
		{"same size", 1000, 618, 1000, 1000, 618},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(tt.w, tt.h, color.RGBA{0, 0, 255, 255})

			resized, err := ResizeToWidth(img, tt.width)
			if err != nil {
				t.Fatalf("ResizeToWidth failed: %v", err)
			}

			b := resized.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResizeToWidth_Invalid(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{0, 0, 255, 255})
	if _, err := ResizeToWidth(img, 0); err == nil {
		t.Error("ResizeToWidth should fail for width 0")
	}
	if _, err := ResizeToWidth(image.NewRGBA(image.Rect(0, 0, 0, 0)), 100); err == nil {
		t.Error("ResizeToWidth should fail for an empty image")
	}
}

func TestPrepare_FromFile(t *testing.T) {
	imgPath := createTestImageWithPattern(t, 800, 800)
	defer os.Remove(imgPath)

	cache := NewImageCache()
	img, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	prepared, err := Prepare(img, 1000, 0.618)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	b := prepared.Bounds()
	if b.Dx() != 1000 || b.Dy() != 618 {
		t.Errorf("dimensions: got %dx%d, want 1000x618", b.Dx(), b.Dy())
	}

	// Quadrant colours survive away from the seams.
	if r, g, bl := rgb8(prepared.At(100, 100)); r != 255 || g != 0 || bl != 0 {
		t.Errorf("top-left: got (%d,%d,%d), want red", r, g, bl)
	}
	if r, g, bl := rgb8(prepared.At(900, 500)); r != 255 || g != 255 || bl != 255 {
		t.Errorf("bottom-right: got (%d,%d,%d), want white", r, g, bl)
	}
}

func TestPrepare_InvalidRatio(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})
	if _, err := Prepare(img, 1000, 2); !errors.Is(err, ErrInvalidRatio) {
		t.Errorf("got %v, want ErrInvalidRatio", err)
	}
}
