package lights

import "github.com/df07/go-parallel-pathtracer/pkg/core"

// GradientInfiniteLight blends between two colors by ray elevation
type GradientInfiniteLight struct {
	topColor    core.Vec3 // Color straight up
	bottomColor core.Vec3 // Color straight down
}

// NewGradientInfiniteLight creates a new gradient infinite light
func NewGradientInfiniteLight(topColor, bottomColor core.Vec3) *GradientInfiniteLight {
	return &GradientInfiniteLight{
		topColor:    topColor,
		bottomColor: bottomColor,
	}
}

// NewSkyLight returns the white-to-blue daylight gradient
func NewSkyLight() *GradientInfiniteLight {
	return NewGradientInfiniteLight(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

func (gil *GradientInfiniteLight) Type() LightType {
	return LightTypeInfinite
}

// Emit implements the Light interface with gradient emission based on ray direction
func (gil *GradientInfiniteLight) Emit(ray core.Ray) core.Vec3 {
	direction := ray.Direction.Normalize()
	t := 0.5 * (direction.Y + 1.0) // Map Y from [-1,1] to [0,1]
	return gil.bottomColor.Lerp(gil.topColor, t)
}
