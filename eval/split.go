package eval

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/iceisfun/gonurbs/types"
)

// knotRefine inserts the non-decreasing knots in insert into the curve
// defined by (degree, knots, pts), returning the refined knot vector and
// control points. Boehm/Piegl knot refinement over homogeneous points.
func knotRefine(degree int, knots []float64, pts []hpoint, insert []float64) ([]float64, []hpoint) {
	n := len(pts) - 1
	r := len(insert) - 1
	a := KnotSpan(degree, insert[0], knots)
	b := KnotSpan(degree, insert[r], knots) + 1

	refined := make([]hpoint, n+r+2)
	refinedKnots := make([]float64, len(knots)+r+1)

	for j := 0; j <= a-degree; j++ {
		refined[j] = pts[j]
	}
	for j := b - 1; j <= n; j++ {
		refined[j+r+1] = pts[j]
	}
	for j := 0; j <= a; j++ {
		refinedKnots[j] = knots[j]
	}
	for j := b + degree; j < len(knots); j++ {
		refinedKnots[j+r+1] = knots[j]
	}

	i := b + degree - 1
	k := b + degree + r
	for j := r; j >= 0; j-- {
		for insert[j] <= knots[i] && i > a {
			refined[k-degree-1] = pts[i-degree-1]
			refinedKnots[k] = knots[i]
			k--
			i--
		}
		refined[k-degree-1] = refined[k-degree]
		for l := 1; l <= degree; l++ {
			ind := k - degree + l
			alpha := refinedKnots[k+l] - insert[j]
			if math.Abs(alpha) < 1e-12 {
				refined[ind-1] = refined[ind]
				continue
			}
			alpha /= refinedKnots[k+l] - knots[i-degree+l]
			refined[ind-1] = refined[ind-1].scale(alpha).add(refined[ind].scale(1 - alpha))
		}
		refinedKnots[k] = insert[j]
		k--
	}
	return refinedKnots, refined
}

// SplitCurve cuts the curve at parameter u into two clamped curves that
// together reproduce the original. Knot values are preserved, so both
// halves evaluate with the parent's parameterization.
func SplitCurve(c types.CurveData, u float64) (types.CurveData, types.CurveData) {
	insert := make([]float64, c.Degree+1)
	for i := range insert {
		insert[i] = u
	}
	refinedKnots, refined := knotRefine(c.Degree, c.Knots, curveHomogeneous(c), insert)

	s := KnotSpan(c.Degree, u, c.Knots)
	left := dehomogenizeCurve(c.Degree, refinedKnots[:s+c.Degree+2], refined[:s+1])
	right := dehomogenizeCurve(c.Degree, refinedKnots[s+1:], refined[s+1:])
	return left, right
}

// SplitSurfaceU cuts the surface at u-parameter t into two surfaces.
func SplitSurfaceU(s types.SurfaceData, t float64) (types.SurfaceData, types.SurfaceData) {
	insert := make([]float64, s.DegreeU+1)
	for i := range insert {
		insert[i] = t
	}
	span := KnotSpan(s.DegreeU, t, s.KnotsU)

	cols := len(s.Points[0])
	net := surfaceHomogeneous(s)

	var refinedKnots []float64
	var refined [][]hpoint
	for j := 0; j < cols; j++ {
		column := make([]hpoint, len(net))
		for i := range net {
			column[i] = net[i][j]
		}
		rk, rp := knotRefine(s.DegreeU, s.KnotsU, column, insert)
		refinedKnots = rk
		if j == 0 {
			refined = make([][]hpoint, len(rp))
			for i := range refined {
				refined[i] = make([]hpoint, cols)
			}
		}
		for i, h := range rp {
			refined[i][j] = h
		}
	}

	left := dehomogenizeSurface(s, refinedKnots[:span+s.DegreeU+2], s.KnotsV, refined[:span+1])
	right := dehomogenizeSurface(s, refinedKnots[span+1:], s.KnotsV, refined[span+1:])
	return left, right
}

// SplitSurfaceV cuts the surface at v-parameter t into two surfaces.
func SplitSurfaceV(s types.SurfaceData, t float64) (types.SurfaceData, types.SurfaceData) {
	insert := make([]float64, s.DegreeV+1)
	for i := range insert {
		insert[i] = t
	}
	span := KnotSpan(s.DegreeV, t, s.KnotsV)

	net := surfaceHomogeneous(s)

	var refinedKnots []float64
	var rowsRefined [][]hpoint
	for i := range net {
		rk, rp := knotRefine(s.DegreeV, s.KnotsV, net[i], insert)
		refinedKnots = rk
		rowsRefined = append(rowsRefined, rp)
	}

	leftNet := make([][]hpoint, len(rowsRefined))
	rightNet := make([][]hpoint, len(rowsRefined))
	for i, row := range rowsRefined {
		leftNet[i] = row[:span+1]
		rightNet[i] = row[span+1:]
	}

	left := dehomogenizeSurface(s, s.KnotsU, refinedKnots[:span+s.DegreeV+2], leftNet)
	right := dehomogenizeSurface(s, s.KnotsU, refinedKnots[span+1:], rightNet)
	return left, right
}

func dehomogenizeSurface(src types.SurfaceData, knotsU, knotsV []float64, net [][]hpoint) types.SurfaceData {
	out := types.SurfaceData{
		DegreeU: src.DegreeU,
		DegreeV: src.DegreeV,
		KnotsU:  knotsU,
		KnotsV:  knotsV,
		Points:  make([][]r3.Vector, len(net)),
		Weights: make([][]float64, len(net)),
	}
	for i, row := range net {
		out.Points[i] = make([]r3.Vector, len(row))
		out.Weights[i] = make([]float64, len(row))
		for j, h := range row {
			out.Points[i][j] = h.dehomogenize()
			out.Weights[i][j] = h.w
		}
	}
	return out
}
