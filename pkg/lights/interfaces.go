package lights

import "github.com/df07/go-parallel-pathtracer/pkg/core"

type LightType string

const (
	LightTypeInfinite LightType = "infinite"
)

// Light is a source of radiance for rays that leave the scene
type Light interface {
	Type() LightType

	// Emit evaluates emission in the direction of the given ray
	Emit(ray core.Ray) core.Vec3
}
