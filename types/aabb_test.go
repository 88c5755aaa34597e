package types

import (
	"testing"

	"github.com/golang/geo/r3"
)

func TestAABBZeroValue(t *testing.T) {
	var box AABB
	if box.Min != (r3.Vector{}) || box.Max != (r3.Vector{}) {
		t.Fatalf("zero value AABB should have zero corners, got %+v", box)
	}
}

func TestNewAABB(t *testing.T) {
	box := NewAABB(
		r3.Vector{X: 1, Y: -2, Z: 3},
		r3.Vector{X: -1, Y: 2, Z: 0},
		r3.Vector{X: 0, Y: 0, Z: 5},
	)
	if box.Min != (r3.Vector{X: -1, Y: -2, Z: 0}) {
		t.Fatalf("unexpected min corner: %+v", box.Min)
	}
	if box.Max != (r3.Vector{X: 1, Y: 2, Z: 5}) {
		t.Fatalf("unexpected max corner: %+v", box.Max)
	}
}

func TestAABBIntersects(t *testing.T) {
	a := NewAABB(r3.Vector{}, r3.Vector{X: 1, Y: 1, Z: 1})
	b := NewAABB(r3.Vector{X: 2, Y: 0, Z: 0}, r3.Vector{X: 3, Y: 1, Z: 1})

	if a.Intersects(b, 0) {
		t.Fatalf("disjoint boxes should not intersect at tol 0")
	}
	if !a.Intersects(b, 1.5) {
		t.Fatalf("boxes should intersect once expanded by tolerance")
	}
	if !a.Intersects(a, 0) {
		t.Fatalf("a box should intersect itself")
	}
}

func TestAABBIntersectsTouching(t *testing.T) {
	a := NewAABB(r3.Vector{}, r3.Vector{X: 1, Y: 1, Z: 1})
	b := NewAABB(r3.Vector{X: 1, Y: 0, Z: 0}, r3.Vector{X: 2, Y: 1, Z: 1})
	if !a.Intersects(b, 0) {
		t.Fatalf("face-touching boxes should intersect at tol 0")
	}
}

func TestAABBLongestAxis(t *testing.T) {
	box := NewAABB(r3.Vector{}, r3.Vector{X: 1, Y: 5, Z: 2})
	if axis := box.LongestAxis(); axis != 1 {
		t.Fatalf("expected axis 1, got %d", axis)
	}
}

func TestAABBUnion(t *testing.T) {
	a := NewAABB(r3.Vector{}, r3.Vector{X: 1, Y: 1, Z: 1})
	b := NewAABB(r3.Vector{X: -1, Y: 2, Z: 0}, r3.Vector{X: 0, Y: 3, Z: 4})
	u := a.Union(b)
	if u.Min != (r3.Vector{X: -1, Y: 0, Z: 0}) || u.Max != (r3.Vector{X: 1, Y: 3, Z: 4}) {
		t.Fatalf("unexpected union: %+v", u)
	}
}
