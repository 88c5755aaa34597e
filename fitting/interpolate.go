package fitting

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/iceisfun/gonurbs/eval"
	"github.com/iceisfun/gonurbs/types"
)

var (
	// ErrTooFewPoints indicates interpolation needs at least degree+1 points.
	ErrTooFewPoints = errors.New("gonurbs: too few points to interpolate")

	// ErrSingularSystem indicates the collocation system could not be solved,
	// typically because consecutive data points coincide.
	ErrSingularSystem = errors.New("gonurbs: singular interpolation system")
)

// InterpolatedCurve fits a clamped NURBS curve of the given degree that
// passes through every data point, in order.
//
// Parameters are assigned by normalized chord length and the interior
// knots by knot averaging, then the control points fall out of a dense
// collocation solve. The result is non-rational.
func InterpolatedCurve(points []r3.Vector, degree int) (types.CurveData, error) {
	n := len(points)
	if n < degree+1 {
		return types.CurveData{}, ErrTooFewPoints
	}

	params := chordLengthParams(points)
	knots := averagedKnots(params, degree)

	// collocation matrix: row i holds the basis functions at params[i]
	a := mat.NewDense(n, n, nil)
	for i, u := range params {
		span := eval.KnotSpan(degree, u, knots)
		basis := eval.BasisFunctions(span, u, degree, knots)
		for k, val := range basis {
			a.Set(i, span-degree+k, val)
		}
	}

	rhs := mat.NewDense(n, 3, nil)
	for i, p := range points {
		rhs.Set(i, 0, p.X)
		rhs.Set(i, 1, p.Y)
		rhs.Set(i, 2, p.Z)
	}

	var sol mat.Dense
	if err := sol.Solve(a, rhs); err != nil {
		return types.CurveData{}, ErrSingularSystem
	}

	ctrl := make([]r3.Vector, n)
	for i := range ctrl {
		ctrl[i] = r3.Vector{X: sol.At(i, 0), Y: sol.At(i, 1), Z: sol.At(i, 2)}
	}
	return types.CurveData{Degree: degree, Knots: knots, Points: ctrl}, nil
}

// chordLengthParams assigns a parameter in [0, 1] to every data point,
// proportional to accumulated chord length. Coincident consecutive points
// collapse to equal parameters.
func chordLengthParams(points []r3.Vector) []float64 {
	params := make([]float64, len(points))
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i].Distance(points[i-1])
		params[i] = total
	}
	if total > 0 {
		for i := range params {
			params[i] /= total
		}
	} else {
		// all points coincide; spread parameters uniformly
		for i := range params {
			params[i] = float64(i) / math.Max(1, float64(len(points)-1))
		}
	}
	params[len(params)-1] = 1
	return params
}

// averagedKnots builds a clamped knot vector whose interior knots average
// runs of degree consecutive parameters.
func averagedKnots(params []float64, degree int) []float64 {
	n := len(params)
	knots := make([]float64, n+degree+1)
	for i := 0; i <= degree; i++ {
		knots[i] = 0
		knots[n+degree-i] = 1
	}
	for j := 1; j < n-degree; j++ {
		sum := 0.0
		for i := j; i < j+degree; i++ {
			sum += params[i]
		}
		knots[j+degree] = sum / float64(degree)
	}
	return knots
}
