package intersections

import (
	"gonum.org/v1/gonum/optimize"

	"github.com/iceisfun/gonurbs/eval"
	"github.com/iceisfun/gonurbs/spatial"
	"github.com/iceisfun/gonurbs/types"
	"github.com/iceisfun/gonurbs/validation"
)

// CurveAndSurface intersects a NURBS curve with a NURBS surface.
//
// Candidate parameter regions come from pruning the two lazy trees
// against each other; each candidate is seeded at the midpoint of its
// parametric interval and polished by minimizing the squared distance
// between the curve and surface evaluations. Only candidates that
// converge to within tol are reported, and solutions that land on the
// same world point are collapsed.
func CurveAndSurface(c types.CurveData, s types.SurfaceData, tol float64) ([]types.CurveSurfaceIntersection, error) {
	if err := validation.Curve(c); err != nil {
		return nil, err
	}
	if err := validation.Surface(s); err != nil {
		return nil, err
	}

	pairs := spatial.TreePairs[types.CurveData, types.SurfaceData](
		spatial.NewLazyCurveTree(c), spatial.NewLazySurfaceTree(s), 0)

	objective := func(x []float64) float64 {
		diff := eval.RationalCurvePoint(c, x[0]).Sub(eval.RationalSurfacePoint(s, x[1], x[2]))
		return diff.Norm2()
	}

	var out []types.CurveSurfaceIntersection
	for _, pair := range pairs {
		cMin, cMax := pair.A.Domain()
		uMin, uMax := pair.B.DomainU()
		vMin, vMax := pair.B.DomainV()
		seed := []float64{(cMin + cMax) / 2, (uMin + uMax) / 2, (vMin + vMax) / 2}

		x, ok := minimize(objective, seed, tol)
		if !ok {
			continue
		}
		pt := eval.RationalCurvePoint(c, x[0])
		if pt.Sub(eval.RationalSurfacePoint(s, x[1], x[2])).Norm() >= tol {
			continue
		}

		hit := types.CurveSurfaceIntersection{
			U:     x[0],
			UV:    types.UV{U: x[1], V: x[2]},
			Point: pt,
		}
		if !containsPoint(out, hit, tol) {
			out = append(out, hit)
		}
	}
	return out, nil
}

// Curves intersects two NURBS curves.
//
// Candidates come from pruning the two lazy curve trees against each
// other, seeded at the first knot of each candidate sub-curve. The same
// squared-distance minimization and filtering as CurveAndSurface applies.
func Curves(c0, c1 types.CurveData, tol float64) ([]types.CurveCurveIntersection, error) {
	if err := validation.Curve(c0); err != nil {
		return nil, err
	}
	if err := validation.Curve(c1); err != nil {
		return nil, err
	}

	pairs := spatial.TreePairs[types.CurveData, types.CurveData](
		spatial.NewLazyCurveTree(c0), spatial.NewLazyCurveTree(c1), 0)

	objective := func(x []float64) float64 {
		diff := eval.RationalCurvePoint(c0, x[0]).Sub(eval.RationalCurvePoint(c1, x[1]))
		return diff.Norm2()
	}

	var out []types.CurveCurveIntersection
	for _, pair := range pairs {
		a0, _ := pair.A.Domain()
		b0, _ := pair.B.Domain()
		x, ok := minimize(objective, []float64{a0, b0}, tol)
		if !ok {
			continue
		}

		p0 := eval.RationalCurvePoint(c0, x[0])
		p1 := eval.RationalCurvePoint(c1, x[1])
		if p0.Sub(p1).Norm() >= tol {
			continue
		}

		hit := types.CurveCurveIntersection{Point0: p0, Point1: p1, U0: x[0], U1: x[1]}
		dup := false
		for _, existing := range out {
			if existing.Point0.Sub(p0).Norm() < tol {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, hit)
		}
	}
	return out, nil
}

// minimize runs an unconstrained local minimization of f from x0. The
// converger is tightened well below tol^2 so that accepted solutions pass
// the caller's world-space distance check.
func minimize(f func([]float64) float64, x0 []float64, tol float64) ([]float64, bool) {
	problem := optimize.Problem{Func: f}
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   tol * tol * 1e-4,
			Iterations: 30,
		},
	}
	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil || result == nil {
		return nil, false
	}
	return result.X, true
}

func containsPoint(hits []types.CurveSurfaceIntersection, hit types.CurveSurfaceIntersection, tol float64) bool {
	for _, existing := range hits {
		if existing.Point.Sub(hit.Point).Norm() < tol {
			return true
		}
	}
	return false
}
