package spatial

import (
	"github.com/iceisfun/gonurbs/eval"
	"github.com/iceisfun/gonurbs/types"
)

// LazySurfaceTree is a bounding-box tree over a NURBS surface patch.
// Splits alternate between the u and v directions at the domain midpoint;
// a direction whose span has already reached leaf size is skipped.
type LazySurfaceTree struct {
	surface  types.SurfaceData
	minSpanU float64
	minSpanV float64
	splitV   bool
}

// NewLazySurfaceTree builds a tree over the whole surface.
func NewLazySurfaceTree(s types.SurfaceData) *LazySurfaceTree {
	minU, maxU := s.DomainU()
	minV, maxV := s.DomainV()
	return &LazySurfaceTree{
		surface:  s,
		minSpanU: (maxU - minU) / domainDivisions,
		minSpanV: (maxV - minV) / domainDivisions,
	}
}

// Empty reports whether the surface has no control net.
func (t *LazySurfaceTree) Empty() bool {
	return len(t.surface.Points) == 0
}

// Bounds returns the control net's bounding box.
func (t *LazySurfaceTree) Bounds() types.AABB {
	return t.surface.ControlBounds()
}

// Indivisible reports whether both parametric spans have reached leaf size.
func (t *LazySurfaceTree) Indivisible(tol float64) bool {
	minU, maxU := t.surface.DomainU()
	minV, maxV := t.surface.DomainV()
	return maxU-minU <= t.minSpanU && maxV-minV <= t.minSpanV
}

// Split cuts the patch at the midpoint of the next split direction.
func (t *LazySurfaceTree) Split() (Tree[types.SurfaceData], Tree[types.SurfaceData]) {
	minU, maxU := t.surface.DomainU()
	minV, maxV := t.surface.DomainV()

	splitV := t.splitV
	// skip a direction that is already at leaf size
	if splitV && maxV-minV <= t.minSpanV {
		splitV = false
	} else if !splitV && maxU-minU <= t.minSpanU {
		splitV = true
	}

	var left, right types.SurfaceData
	if splitV {
		left, right = eval.SplitSurfaceV(t.surface, (minV+maxV)/2)
	} else {
		left, right = eval.SplitSurfaceU(t.surface, (minU+maxU)/2)
	}
	return &LazySurfaceTree{surface: left, minSpanU: t.minSpanU, minSpanV: t.minSpanV, splitV: !splitV},
		&LazySurfaceTree{surface: right, minSpanU: t.minSpanU, minSpanV: t.minSpanV, splitV: !splitV}
}

// Yield hands out the remaining sub-surface.
func (t *LazySurfaceTree) Yield() types.SurfaceData {
	return t.surface
}
