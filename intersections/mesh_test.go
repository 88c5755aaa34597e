package intersections

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iceisfun/gonurbs/types"
)

// quadMesh builds a two-triangle rectangle origin + s*du + t*dv for
// s, t in [0,1], with uvs equal to (s, t).
func quadMesh(origin, du, dv r3.Vector) types.MeshData {
	return types.MeshData{
		Points: []r3.Vector{
			origin,
			origin.Add(du),
			origin.Add(du).Add(dv),
			origin.Add(dv),
		},
		Faces: [][3]int{{0, 1, 2}, {0, 2, 3}},
		UVs:   []types.UV{{U: 0, V: 0}, {U: 1, V: 0}, {U: 1, V: 1}, {U: 0, V: 1}},
	}
}

func TestMeshesCrossingPatches(t *testing.T) {
	flat := quadMesh(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1})
	upright := quadMesh(r3.Vector{Y: 0.5, Z: -0.5}, r3.Vector{X: 1}, r3.Vector{Z: 1})

	polylines, err := Meshes(flat, upright)
	require.NoError(t, err)
	require.Len(t, polylines, 1)

	pl := polylines[0]
	require.GreaterOrEqual(t, len(pl), 3)

	// the chain runs along y = 0.5, z = 0 from x = 0 to x = 1
	for _, mp := range pl {
		assert.InDelta(t, 0.5, mp.Point.Y, 1e-9)
		assert.InDelta(t, 0, mp.Point.Z, 1e-9)
	}
	first := pl[0].Point.X
	last := pl[len(pl)-1].Point.X
	lo, hi := math.Min(first, last), math.Max(first, last)
	assert.InDelta(t, 0, lo, 1e-9)
	assert.InDelta(t, 1, hi, 1e-9)

	// chain x-coordinates are monotone
	for i := 1; i < len(pl); i++ {
		if first < last {
			assert.Less(t, pl[i-1].Point.X, pl[i].Point.X+1e-12)
		} else {
			assert.Greater(t, pl[i-1].Point.X+1e-12, pl[i].Point.X)
		}
	}
}

func TestMeshesLinkInvariants(t *testing.T) {
	flat := quadMesh(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1})
	upright := quadMesh(r3.Vector{Y: 0.5, Z: -0.5}, r3.Vector{X: 1}, r3.Vector{Z: 1})

	polylines, err := Meshes(flat, upright)
	require.NoError(t, err)

	for _, pl := range polylines {
		for _, mp := range pl {
			require.NotNil(t, mp.Opp)
			assert.Same(t, mp, mp.Opp.Opp, "opp must be an involution")
			if mp.Adj != nil {
				assert.Same(t, mp, mp.Adj.Adj, "adj must be symmetric")
				assert.Less(t, mp.Point.Sub(mp.Adj.Point).Norm(), 1e-6)
			}
			assert.True(t, mp.Visited, "assembled endpoints are consumed")
		}
	}
}

func TestMeshesSharedEdgeDedup(t *testing.T) {
	// a flat strip whose interior edge lies exactly on the intersection
	// line: both bordering faces emit the same segment and dedup must
	// keep a single copy
	flat := types.MeshData{
		Points: []r3.Vector{
			{X: 0, Y: 0}, {X: 1, Y: 0},
			{X: 0, Y: 0.5}, {X: 1, Y: 0.5},
			{X: 0, Y: 1}, {X: 1, Y: 1},
		},
		Faces: [][3]int{{0, 1, 3}, {0, 3, 2}, {2, 3, 5}, {2, 5, 4}},
		UVs: []types.UV{
			{U: 0, V: 0}, {U: 1, V: 0},
			{U: 0, V: 0.5}, {U: 1, V: 0.5},
			{U: 0, V: 1}, {U: 1, V: 1},
		},
	}
	upright := quadMesh(r3.Vector{Y: 0.5, Z: -0.5}, r3.Vector{X: 1}, r3.Vector{Z: 1})

	polylines, err := Meshes(flat, upright)
	require.NoError(t, err)
	require.Len(t, polylines, 1, "duplicate segments must collapse to one chain")

	pl := polylines[0]
	for _, mp := range pl {
		assert.InDelta(t, 0.5, mp.Point.Y, 1e-9)
		assert.InDelta(t, 0, mp.Point.Z, 1e-9)
	}
	lo := math.Min(pl[0].Point.X, pl[len(pl)-1].Point.X)
	hi := math.Max(pl[0].Point.X, pl[len(pl)-1].Point.X)
	assert.InDelta(t, 0, lo, 1e-9)
	assert.InDelta(t, 1, hi, 1e-9)
}

func TestMeshesClosedLoop(t *testing.T) {
	// a cube pierced by a large plane: the section is a closed ring
	plane := quadMesh(r3.Vector{X: -2, Y: -2}, r3.Vector{X: 4}, r3.Vector{Y: 4})
	cube := cubeMesh(0.5)

	polylines, err := Meshes(plane, cube)
	require.NoError(t, err)
	require.Len(t, polylines, 1, "the section of a cube by a plane is one loop")

	pl := polylines[0]
	require.Greater(t, len(pl), 4)

	// closed: the walk re-appends the starting position
	assert.Less(t, pl[0].Point.Sub(pl[len(pl)-1].Point).Norm(), 1e-9)

	for _, mp := range pl {
		assert.InDelta(t, 0, mp.Point.Z, 1e-9)
		maxAbs := math.Max(math.Abs(mp.Point.X), math.Abs(mp.Point.Y))
		assert.InDelta(t, 0.5, maxAbs, 1e-9, "loop points lie on the cube boundary")
	}
}

func TestMeshesDisjoint(t *testing.T) {
	a := quadMesh(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1})
	b := quadMesh(r3.Vector{Z: 5}, r3.Vector{X: 1}, r3.Vector{Y: 1})
	polylines, err := Meshes(a, b)
	require.NoError(t, err)
	assert.Empty(t, polylines)
}

// cubeMesh builds the twelve-triangle surface of the axis-aligned cube
// with the given half extent. UVs are synthetic but unique per vertex.
func cubeMesh(h float64) types.MeshData {
	var m types.MeshData
	corners := []r3.Vector{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h},
		{X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h},
		{X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}
	m.Points = corners
	for i := range corners {
		fi := float64(i)
		m.UVs = append(m.UVs, types.UV{U: fi, V: fi * fi})
	}
	quads := [][4]int{
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // front
		{2, 3, 7, 6}, // back
		{1, 2, 6, 5}, // right
		{3, 0, 4, 7}, // left
	}
	for _, q := range quads {
		m.Faces = append(m.Faces, [3]int{q[0], q[1], q[2]}, [3]int{q[0], q[2], q[3]})
	}
	return m
}
