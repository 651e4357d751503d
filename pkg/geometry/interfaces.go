package geometry

import (
	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Implementations are immutable once built and safe for concurrent use.
type Shape interface {
	// Hit returns the closest intersection with t in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	// BoundingBox returns a box enclosing the shape over the time interval [time0, time1],
	// or false if the shape has no finite bounds
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
