package validation

import (
	"errors"
	"fmt"

	"github.com/iceisfun/gonurbs/types"
)

var (
	// ErrInvalidDegree indicates a degree below 1.
	ErrInvalidDegree = errors.New("validation: degree must be at least 1")

	// ErrKnotCount indicates the knot vector does not match the control
	// point count and degree.
	ErrKnotCount = errors.New("validation: knot count must equal control count + degree + 1")

	// ErrKnotOrder indicates a decreasing knot vector.
	ErrKnotOrder = errors.New("validation: knot vector must be non-decreasing")

	// ErrWeightCount indicates a weight row that does not match its
	// control point row.
	ErrWeightCount = errors.New("validation: weight count must match control count")

	// ErrWeightSign indicates a non-positive weight.
	ErrWeightSign = errors.New("validation: weights must be positive")

	// ErrRaggedNet indicates control net rows of unequal length.
	ErrRaggedNet = errors.New("validation: control net rows must have equal length")

	// ErrFaceIndex indicates a face referencing a vertex out of range.
	ErrFaceIndex = errors.New("validation: face vertex index out of range")

	// ErrUVCount indicates a UV array that does not cover every vertex.
	ErrUVCount = errors.New("validation: uv count must match point count")

	// ErrPolylineShape indicates too few points or mismatched parameters.
	ErrPolylineShape = errors.New("validation: polyline needs matching points and increasing params")
)

// Curve checks that a curve's degree, knot vector and weights are
// mutually consistent.
func Curve(c types.CurveData) error {
	if err := direction(c.Degree, c.Knots, len(c.Points)); err != nil {
		return err
	}
	if len(c.Weights) > 0 {
		if len(c.Weights) != len(c.Points) {
			return ErrWeightCount
		}
		for _, w := range c.Weights {
			if w <= 0 {
				return ErrWeightSign
			}
		}
	}
	return nil
}

// Surface checks both parametric directions of a surface's control net.
func Surface(s types.SurfaceData) error {
	if len(s.Points) == 0 {
		return fmt.Errorf("%w: empty control net", ErrKnotCount)
	}
	cols := len(s.Points[0])
	for _, row := range s.Points {
		if len(row) != cols {
			return ErrRaggedNet
		}
	}
	if err := direction(s.DegreeU, s.KnotsU, len(s.Points)); err != nil {
		return err
	}
	if err := direction(s.DegreeV, s.KnotsV, cols); err != nil {
		return err
	}
	if len(s.Weights) > 0 {
		if len(s.Weights) != len(s.Points) {
			return ErrWeightCount
		}
		for _, row := range s.Weights {
			if len(row) != cols {
				return ErrWeightCount
			}
			for _, w := range row {
				if w <= 0 {
					return ErrWeightSign
				}
			}
		}
	}
	return nil
}

// Mesh checks face indices and per-vertex attribute coverage.
func Mesh(m types.MeshData) error {
	for _, face := range m.Faces {
		for _, vi := range face {
			if vi < 0 || vi >= len(m.Points) {
				return ErrFaceIndex
			}
		}
	}
	if len(m.UVs) > 0 && len(m.UVs) != len(m.Points) {
		return ErrUVCount
	}
	return nil
}

// Polyline checks the point/parameter pairing of a polyline.
func Polyline(p types.PolylineData) error {
	if len(p.Points) < 2 || len(p.Params) != len(p.Points) {
		return ErrPolylineShape
	}
	for i := 1; i < len(p.Params); i++ {
		if p.Params[i] <= p.Params[i-1] {
			return ErrPolylineShape
		}
	}
	return nil
}

func direction(degree int, knots []float64, control int) error {
	if degree < 1 {
		return ErrInvalidDegree
	}
	if len(knots) != control+degree+1 {
		return ErrKnotCount
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return ErrKnotOrder
		}
	}
	return nil
}
