package types

import "github.com/golang/geo/r3"

// CurveData holds a NURBS curve: a degree, a clamped knot vector and a
// row of control points with optional weights.
//
// A nil Weights slice denotes a non-rational (polynomial) curve; otherwise
// Weights must have one entry per control point. The knot vector must be
// non-decreasing with len(Knots) == len(Points) + Degree + 1. Validity is
// not enforced here; see the validation package.
type CurveData struct {
	Degree  int
	Knots   []float64
	Points  []r3.Vector
	Weights []float64
}

// Domain returns the parametric range [min, max] over which the curve is
// defined.
func (c CurveData) Domain() (float64, float64) {
	return c.Knots[c.Degree], c.Knots[len(c.Knots)-c.Degree-1]
}

// IsRational reports whether the curve carries weights.
func (c CurveData) IsRational() bool {
	return len(c.Weights) > 0
}

// Weight returns the weight of control point i, defaulting to 1 for
// non-rational curves.
func (c CurveData) Weight(i int) float64 {
	if len(c.Weights) == 0 {
		return 1
	}
	return c.Weights[i]
}

// PolylineData holds an ordered chain of points together with the global
// parameter value at each point.
//
// Params must be strictly increasing and len(Params) == len(Points).
// Segment i runs from Points[i] to Points[i+1].
type PolylineData struct {
	Points []r3.Vector
	Params []float64
}

// SegmentCount returns the number of line segments in the chain.
func (p PolylineData) SegmentCount() int {
	if len(p.Points) < 2 {
		return 0
	}
	return len(p.Points) - 1
}
