package scene

import (
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
	"github.com/df07/go-parallel-pathtracer/pkg/material"
)

// gridExtent is the half-width of the small sphere grid; cells run from -gridExtent to gridExtent-1
const gridExtent = 11

// smallSphereRadius is the radius of every sphere placed on the grid
const smallSphereRadius = 0.2

// sphereGridCameraConfig frames the grid from a low corner, focused on the origin
func sphereGridCameraConfig(cameraOverrides ...geometry.CameraConfig) geometry.CameraConfig {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         1200,
		AspectRatio:   3.0 / 2.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	if len(cameraOverrides) > 0 {
		return geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}
	return defaultCameraConfig
}

// NewRandomSpheresScene creates the classic field of small random spheres around three
// large feature spheres. The same seed always yields the same scene.
func NewRandomSpheresScene(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene {
	return newSphereGridScene(seed, false, sphereGridCameraConfig(cameraOverrides...))
}

// NewBouncingSpheresScene is NewRandomSpheresScene with every diffuse grid sphere rising
// during a one unit shutter interval, producing motion blur.
func NewBouncingSpheresScene(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := sphereGridCameraConfig(cameraOverrides...)
	if cameraConfig.Time0 == 0 && cameraConfig.Time1 == 0 {
		cameraConfig.Time1 = 1.0
	}
	return newSphereGridScene(seed, true, cameraConfig)
}

func newSphereGridScene(seed int64, bouncing bool, cameraConfig geometry.CameraConfig) *Scene {
	random := rand.New(rand.NewSource(seed))
	s := NewScene(cameraConfig, SamplingConfig{
		SamplesPerPixel: 4,
		MaxDepth:        50,
	})

	groundMaterial := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMaterial))

	// Keep the grid clear of the large metal sphere
	clearing := core.NewVec3(4, smallSphereRadius, 0)

	for a := -gridExtent; a < gridExtent; a++ {
		for b := -gridExtent; b < gridExtent; b++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				smallSphereRadius,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				diffuse := material.NewLambertian(albedo)
				if bouncing {
					center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
					s.Add(geometry.NewMovingSphere(center, center1, cameraConfig.Time0, cameraConfig.Time1, smallSphereRadius, diffuse))
				} else {
					s.Add(geometry.NewSphere(center, smallSphereRadius, diffuse))
				}
			case chooseMaterial < 0.95:
				albedo := randomColorRange(random, 0.5, 1.0)
				fuzz := 0.5 * random.Float64()
				s.Add(geometry.NewSphere(center, smallSphereRadius, material.NewMetal(albedo, fuzz)))
			default:
				s.Add(geometry.NewSphere(center, smallSphereRadius, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0.1), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0.1), 1.0, material.NewLambertian(core.NewVec3(0.0, 0.5, 1.0))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}

func randomColorRange(random *rand.Rand, lo, hi float64) core.Vec3 {
	return core.NewVec3(
		lo+(hi-lo)*random.Float64(),
		lo+(hi-lo)*random.Float64(),
		lo+(hi-lo)*random.Float64(),
	)
}
