package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
	"github.com/df07/go-parallel-pathtracer/pkg/lights"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	Shapes         []geometry.Shape // Objects in the scene, in insertion order
	SamplingConfig SamplingConfig
	World          geometry.Shape // Top-level acceleration structure, built by Preprocess
	Background     lights.Light   // Radiance for escaping rays (nil = daylight sky)
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns the sampling settings used when a scene does not override them
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 4,
		MaxDepth:        50,
	}
}

// NewScene creates an empty scene viewed through a camera built from cameraConfig
func NewScene(cameraConfig geometry.CameraConfig, samplingConfig SamplingConfig) *Scene {
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		Shapes:         make([]geometry.Shape, 0),
		SamplingConfig: samplingConfig,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Preprocess builds the BVH over the camera's shutter interval. It must be called
// once after all shapes are added and before the scene is rendered.
func (s *Scene) Preprocess(random *rand.Rand) error {
	if len(s.Shapes) == 0 {
		s.World = geometry.NewShapeList()
		return nil
	}

	time0, time1 := s.CameraConfig.Time0, s.CameraConfig.Time1
	if s.Camera != nil {
		time0, time1 = s.Camera.ShutterInterval()
	}

	bvh, err := geometry.NewBVH(s.Shapes, time0, time1, random)
	if err != nil {
		return fmt.Errorf("failed to build BVH: %w", err)
	}
	s.World = bvh
	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, descending into lists
func countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.ShapeList:
		count := 0
		for _, child := range obj.Shapes {
			count += countPrimitivesInShape(child)
		}
		return count
	default:
		return 1
	}
}
