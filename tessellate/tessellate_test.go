package tessellate

import (
	"testing"

	"github.com/golang/geo/r3"

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

func TestRationalSurfaceAdaptivePlanar(t *testing.T) {
	s := planarPatch(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1})
	m := RationalSurfaceAdaptive(s)

	if len(m.Faces) == 0 {
		t.Fatalf("expected faces")
	}
	if len(m.UVs) != len(m.Points) || len(m.Normals) != len(m.Points) {
		t.Fatalf("per-vertex attributes must cover every vertex")
	}

	// a flat patch should not be refined past the initial grid
	if len(m.Faces) != 2 {
		t.Fatalf("flat 2x2-control patch should emit one quad, got %d faces", len(m.Faces))
	}

	// every vertex must re-evaluate to its own position
	for vi, uv := range m.UVs {
		p := eval.RationalSurfacePoint(s, uv.U, uv.V)
		if p.Sub(m.Points[vi]).Norm() > 1e-12 {
			t.Fatalf("vertex %d disagrees with its parameter pair", vi)
		}
	}
}

func TestRationalSurfaceAdaptiveRefines(t *testing.T) {
	// a curved patch must refine beyond a flat one
	curved := types.SurfaceData{
		DegreeU: 2,
		DegreeV: 1,
		KnotsU:  []float64{0, 0, 0, 1, 1, 1},
		KnotsV:  []float64{0, 0, 1, 1},
		Points: [][]r3.Vector{
			{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
			{{X: 0.5, Y: 0, Z: 1}, {X: 0.5, Y: 1, Z: 1}},
			{{X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}},
		},
	}
	m := RationalSurfaceAdaptive(curved)
	if len(m.Faces) <= 4 {
		t.Fatalf("curved patch should refine, got only %d faces", len(m.Faces))
	}
}

func TestTriangleUVFromPoint(t *testing.T) {
	m := types.MeshData{
		Points: []r3.Vector{{X: 0}, {X: 1}, {Y: 1}},
		Faces:  [][3]int{{0, 1, 2}},
		UVs:    []types.UV{{U: 0, V: 0}, {U: 1, V: 0}, {U: 0, V: 1}},
	}
	uv := TriangleUVFromPoint(m, 0, r3.Vector{X: 0.25, Y: 0.25})
	if uv.DistanceSq(types.UV{U: 0.25, V: 0.25}) > 1e-20 {
		t.Fatalf("unexpected uv: %+v", uv)
	}

	// vertices lift to their own parameters
	for vi, want := range m.UVs {
		got := TriangleUVFromPoint(m, 0, m.Points[vi])
		if got.DistanceSq(want) > 1e-20 {
			t.Fatalf("vertex %d lifted to %+v", vi, got)
		}
	}
}
