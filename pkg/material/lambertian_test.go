package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// sequenceSampler replays a fixed list of 3D samples
type sequenceSampler struct {
	samples []core.Vec3
	next    int
}

func (s *sequenceSampler) Get1D() float64   { return s.Get3D().X }
func (s *sequenceSampler) Get2D() core.Vec2 { v := s.Get3D(); return core.NewVec2(v.X, v.Y) }
func (s *sequenceSampler) Get3D() core.Vec3 {
	v := s.samples[s.next%len(s.samples)]
	s.next++
	return v
}

func TestLambertian_AlwaysScattersIntoHemisphere(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.3, 0.3)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}
	rayIn := core.NewRayAtTime(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0.75)

	for i := 0; i < 1000; i++ {
		result, ok := lambertian.Scatter(rayIn, hit, sampler)
		if !ok {
			t.Fatal("Lambertian should always scatter")
		}
		if result.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, result.Attenuation)
		}
		// normal + unit vector never points below the tangent plane
		if result.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Fatalf("Scatter direction %v below surface", result.Scattered.Direction)
		}
		if result.Scattered.Time != rayIn.Time {
			t.Fatalf("Expected scattered time %f, got %f", rayIn.Time, result.Scattered.Time)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	normal := core.NewVec3(0, 0, 1)

	// Maps to p = (0, 0, -0.9999998), which normalizes to exactly -normal
	sampler := &sequenceSampler{samples: []core.Vec3{core.NewVec3(0.5, 0.5, 0.0000001)}}

	hit := HitRecord{Point: core.NewVec3(1, 2, 3), Normal: normal, FrontFace: true}
	result, ok := lambertian.Scatter(core.NewRay(core.NewVec3(1, 2, 4), core.NewVec3(0, 0, -1)), hit, sampler)
	if !ok {
		t.Fatal("Lambertian should always scatter")
	}
	if result.Scattered.Direction != normal {
		t.Errorf("Expected degenerate direction replaced with normal %v, got %v", normal, result.Scattered.Direction)
	}
}
