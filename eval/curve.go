package eval

import (
	"github.com/golang/geo/r3"

	"github.com/iceisfun/gonurbs/types"
)

// RationalCurvePoint evaluates the curve position at parameter u.
//
// The knot span lookup clamps the span index to the first or last span, so
// evaluating slightly outside the domain (as refinement loops do) stays
// well defined: the parameter itself is not clamped, and the end
// polynomial piece is extended past the domain boundary.
func RationalCurvePoint(c types.CurveData, u float64) r3.Vector {
	span := KnotSpan(c.Degree, u, c.Knots)
	basis := BasisFunctions(span, u, c.Degree, c.Knots)

	var acc hpoint
	for i := 0; i <= c.Degree; i++ {
		idx := span - c.Degree + i
		acc = acc.add(homogenize(c.Points[idx], c.Weight(idx)).scale(basis[i]))
	}
	return acc.dehomogenize()
}

// CurveDerivatives evaluates the curve position and its derivatives up to
// order d at parameter u. Entry k of the result is the k-th derivative;
// entry 0 is the position.
func CurveDerivatives(c types.CurveData, d int, u float64) []r3.Vector {
	du := d
	if du > c.Degree {
		du = c.Degree
	}
	span := KnotSpan(c.Degree, u, c.Knots)
	nders := DerivativeBasisFunctions(span, u, c.Degree, du, c.Knots)

	// homogeneous derivatives
	aders := make([]hpoint, d+1)
	for k := 0; k <= du; k++ {
		for i := 0; i <= c.Degree; i++ {
			idx := span - c.Degree + i
			aders[k] = aders[k].add(homogenize(c.Points[idx], c.Weight(idx)).scale(nders[k][i]))
		}
	}

	// rational correction
	bin := binomials(d)
	ders := make([]r3.Vector, d+1)
	for k := 0; k <= d; k++ {
		v := aders[k].vector()
		for i := 1; i <= k; i++ {
			v = v.Sub(ders[k-i].Mul(bin[k][i] * aders[i].w))
		}
		ders[k] = v.Mul(1 / aders[0].w)
	}
	return ders
}
