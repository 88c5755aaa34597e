package types

import "github.com/golang/geo/r3"

// Ray represents an infinite parametric line with a preferred origin and
// direction.
//
// Dir is expected to have unit norm; routines producing rays normalize it
// and routines consuming rays rely on that.
type Ray struct {
	Origin r3.Vector
	Dir    r3.Vector
}

// At evaluates the ray at parameter t.
func (r Ray) At(t float64) r3.Vector {
	return r.Origin.Add(r.Dir.Mul(t))
}
