package spatial

import (
	"github.com/iceisfun/gonurbs/eval"
	"github.com/iceisfun/gonurbs/types"
)

// domainDivisions fixes how far the parametric trees subdivide: a leaf
// spans at most 1/64 of the original knot domain, which bounds the
// recursion depth independently of the caller's tolerance.
const domainDivisions = 64

// LazyCurveTree is a bounding-box tree over a NURBS curve. The box is the
// control polygon's box (the convex hull property makes that a cover);
// splitting cuts the curve at the middle of its knot domain, preserving
// the parent's parameterization on both halves.
type LazyCurveTree struct {
	curve   types.CurveData
	minSpan float64
}

// NewLazyCurveTree builds a tree over the whole curve.
func NewLazyCurveTree(c types.CurveData) *LazyCurveTree {
	min, max := c.Domain()
	return &LazyCurveTree{curve: c, minSpan: (max - min) / domainDivisions}
}

// Empty reports whether the curve has no control points.
func (t *LazyCurveTree) Empty() bool {
	return len(t.curve.Points) == 0
}

// Bounds returns the control polygon's bounding box.
func (t *LazyCurveTree) Bounds() types.AABB {
	return types.NewAABB(t.curve.Points...)
}

// Indivisible reports whether the knot span has shrunk to the leaf size.
func (t *LazyCurveTree) Indivisible(tol float64) bool {
	min, max := t.curve.Domain()
	return max-min <= t.minSpan
}

// Split cuts the curve at its domain midpoint.
func (t *LazyCurveTree) Split() (Tree[types.CurveData], Tree[types.CurveData]) {
	min, max := t.curve.Domain()
	left, right := eval.SplitCurve(t.curve, (min+max)/2)
	return &LazyCurveTree{curve: left, minSpan: t.minSpan},
		&LazyCurveTree{curve: right, minSpan: t.minSpan}
}

// Yield hands out the remaining sub-curve.
func (t *LazyCurveTree) Yield() types.CurveData {
	return t.curve
}
