package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// ToImage converts accumulated sums into an 8-bit image.
// Each channel is averaged over samples, gamma corrected with a square root,
// clamped to [0, 0.999] and quantized by 256.
func ToImage(fb *Framebuffer, samples int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	scale := 0.0
	if samples > 0 {
		scale = 1.0 / float64(samples)
	}

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(fb.Pixel(x, y).Multiply(scale)))
		}
	}
	return img
}

// vec3ToColor converts an averaged linear color to RGBA with gamma 2
func vec3ToColor(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: quantize(c.X),
		G: quantize(c.Y),
		B: quantize(c.Z),
		A: 255,
	}
}

func quantize(v float64) uint8 {
	// NaN and negatives collapse to black
	if !(v > 0) {
		return 0
	}
	return uint8(256 * math.Min(math.Sqrt(v), 0.999))
}
