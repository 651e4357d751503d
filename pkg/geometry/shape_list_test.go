package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

func TestShapeList_ClosestHitWins(t *testing.T) {
	far := NewSphere(core.NewVec3(0, 0, -10), 1, testMaterial)
	near := NewSphere(core.NewVec3(0, 0, -4), 1, testMaterial)
	list := NewShapeList(far, near)

	hit, ok := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("Expected closest hit at t=3, got %f", hit.T)
	}
}

func TestShapeList_Empty(t *testing.T) {
	list := NewShapeList()
	if _, ok := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), 0.001, math.Inf(1)); ok {
		t.Error("Empty list should never be hit")
	}
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Error("Empty list should have no bounding box")
	}
}

func TestShapeList_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	moving := NewMovingSphere(core.NewVec3(5, 0, 0), core.NewVec3(5, 3, 0), 0, 1, 1, testMaterial)
	list := NewShapeList(sphere, moving)

	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	if !box.Min.Equals(core.NewVec3(-1, -1, -1)) || !box.Max.Equals(core.NewVec3(6, 4, 1)) {
		t.Errorf("Unexpected box %v", box)
	}

	unbounded := NewShapeList(sphere, moving, &MockShape{hasBox: false})
	if _, ok := unbounded.BoundingBox(0, 1); ok {
		t.Error("List with an unbounded member should have no box")
	}
}
