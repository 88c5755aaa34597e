// Command surface_intersect intersects two bilinear NURBS patches and
// prints the fitted intersection curves.
package main

import (
	"fmt"
	"os"

	"github.com/golang/geo/r3"

	"github.com/iceisfun/gonurbs/formatting"
	"github.com/iceisfun/gonurbs/intersections"
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
	// a horizontal and a vertical patch crossing at z = 0, y = 0.5
	s0 := planarPatch(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1})
	s1 := planarPatch(r3.Vector{Y: 0.5, Z: -0.5}, r3.Vector{X: 1}, r3.Vector{Z: 1})

	curves, err := intersections.Surfaces(s0, s1, 1e-6)
	if err != nil {
		fmt.Fprintln(os.Stderr, "surface_intersect:", err)
		os.Exit(1)
	}

	fmt.Printf("%d intersection curve(s)\n", len(curves))
	for i, c := range curves {
		fmt.Printf("curve %d: degree %d, %d control points\n", i, c.Degree, len(c.Points))
		for _, p := range c.Points {
			fmt.Println("  ", formatting.PointString(p))
		}
	}
}
