package types

import "github.com/golang/geo/r3"

// AABB represents an axis-aligned bounding box in 3D space.
//
// The bounds are inclusive on all sides. An AABB is valid when
// Min.X <= Max.X, Min.Y <= Max.Y and Min.Z <= Max.Z. Empty or inverted
// AABBs should be handled explicitly by the caller.
//
// Example:
//
//	box := types.AABB{
//	    Min: r3.Vector{X: 0, Y: 0, Z: 0},
//	    Max: r3.Vector{X: 10, Y: 10, Z: 10},
//	}
type AABB struct {
	Min r3.Vector // Minimum corner, inclusive
	Max r3.Vector // Maximum corner, inclusive
}

// NewAABB computes the bounding box of the given points.
//
// With no points the zero (degenerate) box is returned.
func NewAABB(points ...r3.Vector) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Extend(p)
	}
	return box
}

// Extend returns the box grown to contain p.
func (b AABB) Extend(p r3.Vector) AABB {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
	return b
}

// Union returns the smallest box containing both operands.
func (b AABB) Union(o AABB) AABB {
	return b.Extend(o.Min).Extend(o.Max)
}

// Size returns the edge lengths of the box.
func (b AABB) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

// LongestAxis returns 0, 1 or 2 for the axis along which the box extends
// the furthest.
func (b AABB) LongestAxis() int {
	s := b.Size()
	axis := 0
	if s.Y > s.X {
		axis = 1
	}
	if s.Z > s.X && s.Z > s.Y {
		axis = 2
	}
	return axis
}

// Center returns the midpoint of the box.
func (b AABB) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Intersects reports whether the two boxes overlap once each side has been
// expanded by tol.
func (b AABB) Intersects(o AABB, tol float64) bool {
	if b.Min.X-tol > o.Max.X || o.Min.X-tol > b.Max.X {
		return false
	}
	if b.Min.Y-tol > o.Max.Y || o.Min.Y-tol > b.Max.Y {
		return false
	}
	if b.Min.Z-tol > o.Max.Z || o.Min.Z-tol > b.Max.Z {
		return false
	}
	return true
}
