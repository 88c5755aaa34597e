package intersections

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iceisfun/gonurbs/eval"
	"github.com/iceisfun/gonurbs/types"
)

func planarPatch(origin, du, dv r3.Vector) types.SurfaceData {
	return types.SurfaceData{
		DegreeU: 1,
		DegreeV: 1,
		KnotsU:  []float64{0, 0, 1, 1},
		KnotsV:  []float64{0, 0, 1, 1},
		Points: [][]r3.Vector{
			{origin, origin.Add(dv)},
			{origin.Add(du), origin.Add(du).Add(dv)},
		},
	}
}

func TestRefineSurfacePointOrthogonalPlanes(t *testing.T) {
	// z = 0 meets y = 0.5 in the line (t, 0.5, 0)
	s0 := planarPatch(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1})
	s1 := planarPatch(r3.Vector{Y: 0.5, Z: -0.5}, r3.Vector{X: 1}, r3.Vector{Z: 1})

	pt, err := RefineSurfacePoint(s0, s1,
		types.UV{U: 0.3, V: 0.3}, types.UV{U: 0.3, V: 0.3}, 1e-10)
	require.NoError(t, err)

	assert.Less(t, pt.Dist, 1e-10)
	assert.InDelta(t, 0.5, pt.Point.Y, 1e-9)
	assert.InDelta(t, 0, pt.Point.Z, 1e-9)

	// the returned parameters reproduce the returned point
	p0 := eval.RationalSurfacePoint(s0, pt.UV0.U, pt.UV0.V)
	p1 := eval.RationalSurfacePoint(s1, pt.UV1.U, pt.UV1.V)
	assert.InDelta(t, 0, p0.Sub(pt.Point).Norm(), 1e-9)
	assert.InDelta(t, pt.Dist, p0.Sub(p1).Norm(), 1e-9)
}

func TestRefineSurfacePointCurved(t *testing.T) {
	// parabolic sheet z = x(1-x) against the plane z = 0.1875, whose
	// section passes through x = 0.25
	curved := types.SurfaceData{
		DegreeU: 2,
		DegreeV: 1,
		KnotsU:  []float64{0, 0, 0, 1, 1, 1},
		KnotsV:  []float64{0, 0, 1, 1},
		Points: [][]r3.Vector{
			{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
			{{X: 0.5, Y: 0, Z: 0.5}, {X: 0.5, Y: 1, Z: 0.5}},
			{{X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}},
		},
	}
	flat := planarPatch(r3.Vector{Z: 0.1875}, r3.Vector{X: 1}, r3.Vector{Y: 1})

	pt, err := RefineSurfacePoint(curved, flat,
		types.UV{U: 0.2, V: 0.5}, types.UV{U: 0.2, V: 0.5}, 1e-9)
	require.NoError(t, err)
	assert.Less(t, pt.Dist, 1e-9)
	assert.InDelta(t, 0.1875, pt.Point.Z, 1e-8)
	assert.InDelta(t, 0.25, pt.Point.X, 1e-6)
}

func TestRefineSurfacePointParallelPlanes(t *testing.T) {
	s0 := planarPatch(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1})
	s1 := planarPatch(r3.Vector{Z: 1}, r3.Vector{X: 1}, r3.Vector{Y: 1})

	_, err := RefineSurfacePoint(s0, s1,
		types.UV{U: 0.5, V: 0.5}, types.UV{U: 0.5, V: 0.5}, 1e-10)
	assert.ErrorIs(t, err, ErrDegenerateFrame)
}

func TestSurfacesOrthogonalPatches(t *testing.T) {
	s0 := planarPatch(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1})
	s1 := planarPatch(r3.Vector{Y: 0.5, Z: -0.5}, r3.Vector{X: 1}, r3.Vector{Z: 1})

	curves, err := Surfaces(s0, s1, 1e-7)
	require.NoError(t, err)
	require.Len(t, curves, 1)

	// the fitted curve lies on both planes
	c := curves[0]
	for _, u := range []float64{0, 0.25, 0.5, 0.75, 1} {
		p := eval.RationalCurvePoint(c, u)
		assert.InDelta(t, 0.5, p.Y, 1e-6)
		assert.InDelta(t, 0, p.Z, 1e-6)
		assert.GreaterOrEqual(t, p.X, -1e-6)
		assert.LessOrEqual(t, p.X, 1+1e-6)
	}
}

func TestSurfacesInvalidInput(t *testing.T) {
	s0 := planarPatch(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1})
	bad := s0
	bad.KnotsU = []float64{0, 0, 1}
	_, err := Surfaces(bad, s0, 1e-7)
	assert.Error(t, err)
}

func TestRefineReducesDistance(t *testing.T) {
	// a single Newton step on transversal planes lands on the line, so
	// the reported distance is far below the seed separation
	s0 := planarPatch(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1})
	s1 := planarPatch(r3.Vector{Y: 0.5, Z: -0.5}, r3.Vector{X: 1}, r3.Vector{Z: 1})

	seed0 := types.UV{U: 0.9, V: 0.1}
	seed1 := types.UV{U: 0.1, V: 0.9}
	start := eval.RationalSurfacePoint(s0, seed0.U, seed0.V).
		Sub(eval.RationalSurfacePoint(s1, seed1.U, seed1.V)).Norm()
	require.Greater(t, start, 0.1)

	pt, err := RefineSurfacePoint(s0, s1, seed0, seed1, 1e-12)
	require.NoError(t, err)
	assert.Less(t, pt.Dist, math.Min(start, 1e-9))
}
