package types

import "github.com/golang/geo/r3"

// SurfaceData holds a NURBS surface: degrees and clamped knot vectors in
// both parametric directions and a rectangular control net with optional
// weights.
//
// Points is indexed [i][j] where i varies with u and j with v. A nil
// Weights slice denotes a non-rational surface; otherwise Weights must
// mirror the shape of Points. Validity is not enforced here; see the
// validation package.
type SurfaceData struct {
	DegreeU int
	DegreeV int
	KnotsU  []float64
	KnotsV  []float64
	Points  [][]r3.Vector
	Weights [][]float64
}

// DomainU returns the parametric range of the u direction.
func (s SurfaceData) DomainU() (float64, float64) {
	return s.KnotsU[s.DegreeU], s.KnotsU[len(s.KnotsU)-s.DegreeU-1]
}

// DomainV returns the parametric range of the v direction.
func (s SurfaceData) DomainV() (float64, float64) {
	return s.KnotsV[s.DegreeV], s.KnotsV[len(s.KnotsV)-s.DegreeV-1]
}

// IsRational reports whether the surface carries weights.
func (s SurfaceData) IsRational() bool {
	return len(s.Weights) > 0
}

// Weight returns the weight of control point (i, j), defaulting to 1 for
// non-rational surfaces.
func (s SurfaceData) Weight(i, j int) float64 {
	if len(s.Weights) == 0 {
		return 1
	}
	return s.Weights[i][j]
}

// ControlBounds returns the bounding box of the control net. By the convex
// hull property this box contains the surface itself.
func (s SurfaceData) ControlBounds() AABB {
	var box AABB
	first := true
	for _, row := range s.Points {
		for _, p := range row {
			if first {
				box = AABB{Min: p, Max: p}
				first = false
				continue
			}
			box = box.Extend(p)
		}
	}
	return box
}
