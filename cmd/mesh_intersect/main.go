// Command mesh_intersect intersects two tessellated patches and prints
// the reconstructed polylines.
package main

import (
	"fmt"
	"os"

	"github.com/golang/geo/r3"

	"github.com/iceisfun/gonurbs/formatting"
	"github.com/iceisfun/gonurbs/intersections"
	"github.com/iceisfun/gonurbs/tessellate"
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

func main() {
	m0 := tessellate.RationalSurfaceAdaptive(planarPatch(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1}))
	m1 := tessellate.RationalSurfaceAdaptive(planarPatch(r3.Vector{X: 0.5, Y: 0.5, Z: -0.5}, r3.Vector{X: 1}, r3.Vector{Z: 1}))

	polylines, err := intersections.Meshes(m0, m1)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mesh_intersect:", err)
		os.Exit(1)
	}

	fmt.Printf("%d polyline(s)\n", len(polylines))
	for _, pl := range polylines {
		fmt.Println(formatting.PolylineString(pl))
	}
}
