package integrator

import (
	"math"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
	"github.com/df07/go-parallel-pathtracer/pkg/lights"
	"github.com/df07/go-parallel-pathtracer/pkg/scene"
)

// shadowAcneEpsilon keeps scattered rays from re-hitting the surface they left
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	config     scene.SamplingConfig
	background lights.Light // Radiance for rays that escape the scene
}

// NewPathTracingIntegrator creates a new path tracing integrator lit by the daylight sky
func NewPathTracingIntegrator(config scene.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config:     config,
		background: lights.NewSkyLight(),
	}
}

// WithBackground replaces the sky; a nil light keeps the current one
func (pt *PathTracingIntegrator) WithBackground(background lights.Light) *PathTracingIntegrator {
	if background != nil {
		pt.background = background
	}
	return pt
}

// RayColor computes the color for a single ray using unidirectional path tracing.
// The bounce recursion is unrolled into a loop carrying the product of attenuations.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := pt.config.MaxDepth; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, shadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.background.Emit(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce limit exceeded, no more light is gathered
	return core.Vec3{X: 0, Y: 0, Z: 0}
}
