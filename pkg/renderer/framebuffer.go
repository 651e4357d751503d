package renderer

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// Framebuffer accumulates per-pixel radiance sums.
// Pixels is row-major with the top row first, three float64 channels per pixel.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []float64
}

// NewFramebuffer creates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]float64, width*height*3),
	}
}

func (fb *Framebuffer) index(x, y int) int {
	return (y*fb.Width + x) * 3
}

// Add accumulates color into pixel (x, y), where y = 0 is the top row
func (fb *Framebuffer) Add(x, y int, color core.Vec3) {
	i := fb.index(x, y)
	fb.Pixels[i] += color.X
	fb.Pixels[i+1] += color.Y
	fb.Pixels[i+2] += color.Z
}

// Pixel returns the accumulated sum at (x, y)
func (fb *Framebuffer) Pixel(x, y int) core.Vec3 {
	i := fb.index(x, y)
	return core.NewVec3(fb.Pixels[i], fb.Pixels[i+1], fb.Pixels[i+2])
}

// Merge adds other into fb element-wise
func (fb *Framebuffer) Merge(other *Framebuffer) error {
	if other.Width != fb.Width || other.Height != fb.Height {
		return fmt.Errorf("framebuffer size mismatch: %dx%d vs %dx%d", fb.Width, fb.Height, other.Width, other.Height)
	}
	floats.Add(fb.Pixels, other.Pixels)
	return nil
}
