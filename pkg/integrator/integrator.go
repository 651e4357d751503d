package integrator

import (
	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray from the given world.
	// Implementations must only read world, which is shared by all workers.
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3
}
