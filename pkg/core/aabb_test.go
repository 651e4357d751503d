package core

import (
	"math"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		tMin     float64
		tMax     float64
		expected bool
	}{
		{"Straight through center", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), 0, math.Inf(1), true},
		{"Pointing away", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)), 0, math.Inf(1), false},
		{"Diagonal hit", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), 0, math.Inf(1), true},
		{"Diagonal miss", NewRay(NewVec3(-5, 5, -5), NewVec3(1, 1, 1)), 0, math.Inf(1), false},
		{"Box beyond tMax", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), 0, 3, false},
		{"Box before tMin", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), 7, 10, false},
		{"Origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 2, 3)), 0, math.Inf(1), true},
		{"Negative direction hit", NewRay(NewVec3(5, 0, 0), NewVec3(-1, 0, 0)), 0, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.tMin, tt.tMax); got != tt.expected {
				t.Errorf("Hit() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestAABB_HitAxisParallelRays(t *testing.T) {
	// Zero direction components produce infinite inverse directions
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		origin   Vec3
		expected bool
	}{
		{"Y origin inside slab", NewVec3(-2, 0.5, 0.5), true},
		{"Y origin below slab", NewVec3(-2, -0.5, 0.5), false},
		{"Y origin above slab", NewVec3(-2, 1.5, 0.5), false},
		{"Z origin outside slab", NewVec3(-2, 0.5, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(tt.origin, NewVec3(1, 0, 0))
			if got := box.Hit(ray, 0.001, math.Inf(1)); got != tt.expected {
				t.Errorf("Hit() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestAABB_EmptyIntervalIsMiss(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, 1))
	// Interval collapses to a single point: treated as a miss
	if box.Hit(ray, 1, 1) {
		t.Error("Expected miss for an empty t interval")
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, 0.5, 2), NewVec3(0.5, 3, 4))

	u := a.Union(b)
	if !u.Min.Equals(NewVec3(-1, 0, 0)) || !u.Max.Equals(NewVec3(1, 3, 4)) {
		t.Errorf("Unexpected union %v", u)
	}
	if !u.IsValid() {
		t.Error("Union of valid boxes should be valid")
	}

	// Operands are untouched
	if !a.Max.Equals(NewVec3(1, 1, 1)) {
		t.Errorf("Union mutated its receiver: %v", a)
	}
}

func TestAABB_FromPointsAndFinite(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, -2, 3), NewVec3(-1, 2, 0), NewVec3(0, 0, 5))
	if !box.Min.Equals(NewVec3(-1, -2, 0)) || !box.Max.Equals(NewVec3(1, 2, 5)) {
		t.Errorf("Unexpected box %v", box)
	}
	if !box.IsFinite() {
		t.Error("Expected finite box")
	}

	infinite := NewAABB(NewVec3(math.Inf(-1), 0, 0), NewVec3(1, 1, 1))
	if infinite.IsFinite() {
		t.Error("Expected infinite box to be reported as non-finite")
	}
}
