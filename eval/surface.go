package eval

import (
	"github.com/golang/geo/r3"

	"github.com/iceisfun/gonurbs/types"
)

// RationalSurfacePoint evaluates the surface position at (u, v).
func RationalSurfacePoint(s types.SurfaceData, u, v float64) r3.Vector {
	spanU := KnotSpan(s.DegreeU, u, s.KnotsU)
	spanV := KnotSpan(s.DegreeV, v, s.KnotsV)
	basisU := BasisFunctions(spanU, u, s.DegreeU, s.KnotsU)
	basisV := BasisFunctions(spanV, v, s.DegreeV, s.KnotsV)

	var acc hpoint
	for i := 0; i <= s.DegreeU; i++ {
		var row hpoint
		iu := spanU - s.DegreeU + i
		for j := 0; j <= s.DegreeV; j++ {
			jv := spanV - s.DegreeV + j
			row = row.add(homogenize(s.Points[iu][jv], s.Weight(iu, jv)).scale(basisV[j]))
		}
		acc = acc.add(row.scale(basisU[i]))
	}
	return acc.dehomogenize()
}

// RationalSurfaceDerivatives evaluates the surface and its partial
// derivatives up to total order d at (u, v). The result grid is indexed
// [k][l] = d^(k+l) S / du^k dv^l; [0][0] is the position.
func RationalSurfaceDerivatives(s types.SurfaceData, d int, u, v float64) [][]r3.Vector {
	aders, wders := surfaceHomogeneousDerivatives(s, d, u, v)

	bin := binomials(d)
	ders := make([][]r3.Vector, d+1)
	for k := range ders {
		ders[k] = make([]r3.Vector, d+1)
	}
	for k := 0; k <= d; k++ {
		for l := 0; l <= d-k; l++ {
			vec := aders[k][l]
			for j := 1; j <= l; j++ {
				vec = vec.Sub(ders[k][l-j].Mul(bin[l][j] * wders[0][j]))
			}
			for i := 1; i <= k; i++ {
				vec = vec.Sub(ders[k-i][l].Mul(bin[k][i] * wders[i][0]))
				var tail r3.Vector
				for j := 1; j <= l; j++ {
					tail = tail.Add(ders[k-i][l-j].Mul(bin[l][j] * wders[i][j]))
				}
				vec = vec.Sub(tail.Mul(bin[k][i]))
			}
			ders[k][l] = vec.Mul(1 / wders[0][0])
		}
	}
	return ders
}

// surfaceHomogeneousDerivatives computes the weighted-coordinate and
// weight derivative grids that feed the rational correction.
func surfaceHomogeneousDerivatives(s types.SurfaceData, d int, u, v float64) ([][]r3.Vector, [][]float64) {
	du := d
	if du > s.DegreeU {
		du = s.DegreeU
	}
	dv := d
	if dv > s.DegreeV {
		dv = s.DegreeV
	}

	spanU := KnotSpan(s.DegreeU, u, s.KnotsU)
	spanV := KnotSpan(s.DegreeV, v, s.KnotsV)
	ndu := DerivativeBasisFunctions(spanU, u, s.DegreeU, du, s.KnotsU)
	ndv := DerivativeBasisFunctions(spanV, v, s.DegreeV, dv, s.KnotsV)

	aders := make([][]r3.Vector, d+1)
	wders := make([][]float64, d+1)
	for k := range aders {
		aders[k] = make([]r3.Vector, d+1)
		wders[k] = make([]float64, d+1)
	}

	temp := make([]hpoint, s.DegreeV+1)
	for k := 0; k <= du; k++ {
		for j := 0; j <= s.DegreeV; j++ {
			temp[j] = hpoint{}
			jv := spanV - s.DegreeV + j
			for i := 0; i <= s.DegreeU; i++ {
				iu := spanU - s.DegreeU + i
				temp[j] = temp[j].add(homogenize(s.Points[iu][jv], s.Weight(iu, jv)).scale(ndu[k][i]))
			}
		}
		dd := d - k
		if dd > dv {
			dd = dv
		}
		for l := 0; l <= dd; l++ {
			var acc hpoint
			for j := 0; j <= s.DegreeV; j++ {
				acc = acc.add(temp[j].scale(ndv[l][j]))
			}
			aders[k][l] = acc.vector()
			wders[k][l] = acc.w
		}
	}
	return aders, wders
}

// Frame is a first-order evaluation of a surface at a parameter pair: the
// position, both partial derivative vectors, the unit normal and the
// offset of the tangent plane from the origin.
type Frame struct {
	Point  r3.Vector
	DerU   r3.Vector
	DerV   r3.Vector
	Normal r3.Vector
	Offset float64
}

// SurfaceFrame evaluates the tangent frame of the surface at (u, v).
// ok is false when the partials are parallel and no normal exists.
func SurfaceFrame(s types.SurfaceData, u, v float64) (Frame, bool) {
	ders := RationalSurfaceDerivatives(s, 1, u, v)
	n := ders[1][0].Cross(ders[0][1])
	if n.Norm() == 0 {
		return Frame{}, false
	}
	n = n.Normalize()
	f := Frame{
		Point:  ders[0][0],
		DerU:   ders[1][0],
		DerV:   ders[0][1],
		Normal: n,
		Offset: n.Dot(ders[0][0]),
	}
	return f, true
}
