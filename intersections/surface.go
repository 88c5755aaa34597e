package intersections

import (
	"github.com/golang/geo/r3"

	"github.com/iceisfun/gonurbs/eval"
	"github.com/iceisfun/gonurbs/fitting"
	"github.com/iceisfun/gonurbs/tessellate"
	"github.com/iceisfun/gonurbs/types"
	"github.com/iceisfun/gonurbs/validation"
)

// refineIterations caps the Newton-like surface refinement loop.
const refineIterations = 10

// RefineSurfacePoint drives an approximate surface/surface incidence to
// an exact one.
//
// Each iteration evaluates both tangent frames, builds the auxiliary
// plane through the first evaluation perpendicular to both tangent
// planes, intersects the three planes, and expresses the step back in
// each surface's tangent basis. There is no line search; the update is
// tuned for NURBS tangent frames and runs at most ten iterations,
// returning the last evaluation and remaining gap when it stops short of
// tol. ErrDegenerateFrame is returned when the three-plane configuration
// collapses, which means the seed did not identify a transversal
// intersection.
func RefineSurfacePoint(s0, s1 types.SurfaceData, uv0, uv1 types.UV, tol float64) (types.SurfaceSurfacePoint, error) {
	var p, q r3.Vector
	for i := 0; ; i++ {
		f0, ok0 := eval.SurfaceFrame(s0, uv0.U, uv0.V)
		f1, ok1 := eval.SurfaceFrame(s1, uv1.U, uv1.V)
		if !ok0 || !ok1 {
			return types.SurfaceSurfacePoint{}, ErrDegenerateFrame
		}
		p, q = f0.Point, f1.Point

		// the returned parameters always reproduce the returned point,
		// whether the loop converged or ran out of iterations
		if p.Sub(q).Norm() < tol || i == refineIterations {
			break
		}

		// auxiliary plane through p perpendicular to both tangent planes
		fn := f0.Normal.Cross(f1.Normal)
		if fn.Norm() < Epsilon {
			return types.SurfaceSurfacePoint{}, ErrDegenerateFrame
		}
		fn = fn.Normalize()
		fd := fn.Dot(p)

		x, ok := ThreePlanes(f0.Normal, f0.Offset, f1.Normal, f1.Offset, fn, fd)
		if !ok {
			return types.SurfaceSurfacePoint{}, ErrDegenerateFrame
		}

		// express the step in each surface's tangent basis
		rw := f0.DerU.Cross(f0.Normal)
		rt := f0.DerV.Cross(f0.Normal)
		su := f1.DerU.Cross(f1.Normal)
		sv := f1.DerV.Cross(f1.Normal)

		dp := x.Sub(p)
		dq := x.Sub(q)
		uv0 = uv0.Add(types.UV{
			U: rt.Dot(dp) / rt.Dot(f0.DerU),
			V: rw.Dot(dp) / rw.Dot(f0.DerV),
		})
		uv1 = uv1.Add(types.UV{
			U: sv.Dot(dq) / sv.Dot(f1.DerU),
			V: su.Dot(dq) / su.Dot(f1.DerV),
		})
	}

	return types.SurfaceSurfacePoint{
		UV0:   uv0,
		UV1:   uv1,
		Point: p,
		Dist:  p.Sub(q).Norm(),
	}, nil
}

// Surfaces intersects two NURBS surfaces and returns the intersection as
// interpolated curves.
//
// Both surfaces are tessellated adaptively, the meshes are intersected
// and stitched into polylines, every polyline point is refined back onto
// the exact surfaces from its parameter labels, and each refined chain is
// fit with a curve. Chains too short to fit are dropped.
func Surfaces(s0, s1 types.SurfaceData, tol float64) ([]types.CurveData, error) {
	if err := validation.Surface(s0); err != nil {
		return nil, err
	}
	if err := validation.Surface(s1); err != nil {
		return nil, err
	}

	m0 := tessellate.RationalSurfaceAdaptive(s0)
	m1 := tessellate.RationalSurfaceAdaptive(s1)

	polylines, err := Meshes(m0, m1)
	if err != nil {
		return nil, err
	}

	var curves []types.CurveData
	for _, pl := range polylines {
		refined := make([]r3.Vector, 0, len(pl))
		for _, mp := range pl {
			pt, err := RefineSurfacePoint(s0, s1, mp.UV0, mp.UV1, tol)
			if err != nil {
				return nil, err
			}
			refined = append(refined, pt.Point)
		}
		if len(refined) < 2 {
			continue
		}
		degree := 3
		if len(refined) <= degree {
			degree = len(refined) - 1
		}
		curve, err := fitting.InterpolatedCurve(refined, degree)
		if err != nil {
			return nil, err
		}
		curves = append(curves, curve)
	}
	return curves, nil
}
