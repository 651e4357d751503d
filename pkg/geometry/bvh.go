package geometry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/material"
)

var (
	// ErrEmptyBVH is returned when a BVH is requested over no shapes
	ErrEmptyBVH = errors.New("cannot build BVH from zero shapes")
	// ErrNoBoundingBox is returned when a shape cannot report finite bounds
	ErrNoBoundingBox = errors.New("shape has no finite bounding box")
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// A node built over a single shape stores that shape as both children.
type BVHNode struct {
	Box   core.AABB // Covers both children over the build's time interval
	Left  Shape
	Right Shape
}

// NewBVH constructs a BVH over shapes whose boxes are evaluated over [time0, time1].
// The split axis at every node is drawn from random, so a fixed seed yields a fixed tree.
func NewBVH(shapes []Shape, time0, time1 float64, random *rand.Rand) (*BVHNode, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyBVH
	}

	// Sorting happens in place; work on a copy so the caller's order survives
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	// Box minimums drive the sort, so every shape must have finite bounds up front
	for i, shape := range shapesCopy {
		if _, ok := shape.BoundingBox(time0, time1); !ok {
			return nil, fmt.Errorf("shape %d (%T): %w", i, shape, ErrNoBoundingBox)
		}
	}

	return buildBVH(shapesCopy, time0, time1, random)
}

// buildBVH recursively builds a node over shapes
func buildBVH(shapes []Shape, time0, time1 float64, random *rand.Rand) (*BVHNode, error) {
	axis := random.Intn(3)

	var left, right Shape
	switch len(shapes) {
	case 1:
		left, right = shapes[0], shapes[0]
	case 2:
		if boxMin(shapes[0], axis, time0, time1) < boxMin(shapes[1], axis, time0, time1) {
			left, right = shapes[0], shapes[1]
		} else {
			left, right = shapes[1], shapes[0]
		}
	default:
		sortShapesByAxis(shapes, axis, time0, time1)

		mid := len(shapes) / 2
		leftNode, err := buildBVH(shapes[:mid], time0, time1, random)
		if err != nil {
			return nil, err
		}
		rightNode, err := buildBVH(shapes[mid:], time0, time1, random)
		if err != nil {
			return nil, err
		}
		left, right = leftNode, rightNode
	}

	boxLeft, okLeft := left.BoundingBox(time0, time1)
	boxRight, okRight := right.BoundingBox(time0, time1)
	if !okLeft || !okRight {
		return nil, ErrNoBoundingBox
	}

	return &BVHNode{
		Box:   boxLeft.Union(boxRight),
		Left:  left,
		Right: right,
	}, nil
}

// boxMin returns the minimum corner of a shape's box along axis
func boxMin(shape Shape, axis int, time0, time1 float64) float64 {
	box, _ := shape.BoundingBox(time0, time1)
	return box.Min.Component(axis)
}

// sortShapesByAxis sorts shapes by their bounding box minimum along the specified axis
func sortShapesByAxis(shapes []Shape, axis int, time0, time1 float64) {
	sort.Slice(shapes, func(i, j int) bool {
		return boxMin(shapes[i], axis, time0, time1) < boxMin(shapes[j], axis, time0, time1)
	})
}

// Hit tests the ray against both children, keeping the closer hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	hitLeft, isHitLeft := n.Left.Hit(ray, tMin, tMax)
	if isHitLeft {
		tMax = hitLeft.T
	}

	// Anything the right child reports now lies no farther than the left hit
	if hitRight, isHitRight := n.Right.Hit(ray, tMin, tMax); isHitRight {
		return hitRight, true
	}

	return hitLeft, isHitLeft
}

// BoundingBox returns the precomputed box of the node
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes  int
	aliasLeaves int // nodes whose children are the same shape
	maxDepth    int
	totalShapes int
}

// getStats returns statistics about the BVH structure
func (n *BVHNode) getStats() bvhStats {
	stats := bvhStats{}
	n.collectStats(0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *bvhStats) {
	stats.totalNodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	if n.Left == n.Right {
		stats.aliasLeaves++
	}

	for i, child := range []Shape{n.Left, n.Right} {
		if i == 1 && n.Left == n.Right {
			break
		}
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.totalShapes++
		}
	}
}
