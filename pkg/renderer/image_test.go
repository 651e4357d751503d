package renderer

import (
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

func TestToImage(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Add(0, 0, core.NewVec3(4, 1, 0))       // average (1, 0.25, 0)
	fb.Add(1, 0, core.NewVec3(16, 0.04, -1)) // average (4, 0.01, -0.25)
	fb.Add(0, 1, core.NewVec3(math.NaN(), 0, 0))

	img := ToImage(fb, 4)

	tests := []struct {
		name     string
		x, y     int
		expected color.RGBA
	}{
		// sqrt(1) clamps to 0.999, sqrt(0.25) = 0.5 -> 128
		{"clamped and gamma corrected", 0, 0, color.RGBA{255, 128, 0, 255}},
		// sqrt(0.01) = 0.1 -> 25, negative -> 0
		{"overbright and negative", 1, 0, color.RGBA{255, 25, 0, 255}},
		{"NaN is black", 0, 1, color.RGBA{0, 0, 0, 255}},
		{"empty pixel", 1, 1, color.RGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, tt.y); got != tt.expected {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.expected, got)
			}
		})
	}
}

func TestToImage_TopRowFirst(t *testing.T) {
	fb := NewFramebuffer(1, 2)
	fb.Add(0, 0, core.NewVec3(1, 1, 1))

	img := ToImage(fb, 1)
	if img.RGBAAt(0, 0).R != 255 || img.RGBAAt(0, 1).R != 0 {
		t.Errorf("Framebuffer row 0 should map to image row 0")
	}
}

func TestToImage_ZeroSamples(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.Add(0, 0, core.NewVec3(1, 1, 1))

	if got := ToImage(fb, 0).RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected black with zero samples, got %v", got)
	}
}
