package intersections

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/iceisfun/gonurbs/types"
)

// Planes intersects two planes given by origin and normal. The result is
// the shared parametric line; ok is false when the planes are parallel.
//
// The direction is the normalized cross product of the normals. A point on
// the line comes from dropping the coordinate axis where that direction is
// largest and solving the remaining 2x2 system with the dropped coordinate
// pinned to zero.
func Planes(o0, n0, o1, n1 r3.Vector) (types.Ray, bool) {
	d := n0.Cross(n1)
	if d.Norm() < Epsilon {
		return types.Ray{}, false
	}

	w0 := n0.Dot(o0)
	w1 := n1.Dot(o1)

	var origin r3.Vector
	ax, ay, az := math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z)
	switch {
	case az >= ax && az >= ay:
		den := n0.X*n1.Y - n0.Y*n1.X
		origin = r3.Vector{
			X: (w0*n1.Y - w1*n0.Y) / den,
			Y: (w1*n0.X - w0*n1.X) / den,
		}
	case ay >= ax:
		den := n0.Z*n1.X - n0.X*n1.Z
		origin = r3.Vector{
			Z: (w0*n1.X - w1*n0.X) / den,
			X: (w1*n0.Z - w0*n1.Z) / den,
		}
	default:
		den := n0.Y*n1.Z - n0.Z*n1.Y
		origin = r3.Vector{
			Y: (w0*n1.Z - w1*n0.Z) / den,
			Z: (w1*n0.Y - w0*n1.Y) / den,
		}
	}

	return types.Ray{Origin: origin, Dir: d.Normalize()}, true
}

// ThreePlanes intersects three planes given in implicit form n.p = d.
// ok is false when the configuration admits no single point.
func ThreePlanes(n0 r3.Vector, d0 float64, n1 r3.Vector, d1 float64, n2 r3.Vector, d2 float64) (r3.Vector, bool) {
	u := n1.Cross(n2)
	den := n0.Dot(u)
	if math.Abs(den) < Epsilon {
		return r3.Vector{}, false
	}

	num := u.Mul(d0).Add(n0.Cross(n1.Mul(d2).Sub(n2.Mul(d1))))
	return num.Mul(1 / den), true
}

// Rays computes the closest-approach parameters and points between two
// parametric lines with unit directions a and b. ok is false when the
// lines are parallel.
//
// Swapping the operand order swaps U0 with U1 and Point0 with Point1.
// Parameters may lie anywhere on the infinite lines; segment callers clamp
// and verify distance themselves.
func Rays(a0, a, b0, b r3.Vector) (types.CurveCurveIntersection, bool) {
	daa := a.Dot(a)
	dbb := b.Dot(b)
	dab := a.Dot(b)
	den := daa*dbb - dab*dab
	if math.Abs(den) < Epsilon {
		return types.CurveCurveIntersection{}, false
	}

	diff := a0.Sub(b0)
	da := a.Dot(diff)
	db := b.Dot(diff)
	u0 := (dab*db - dbb*da) / den
	u1 := (daa*db - dab*da) / den

	return types.CurveCurveIntersection{
		U0:     u0,
		U1:     u1,
		Point0: a0.Add(a.Mul(u0)),
		Point1: b0.Add(b.Mul(u1)),
	}, true
}

// Segments intersects two line segments. Parameters in the result are
// normalized to [0, 1] along each segment. ok is false for parallel
// segments and for closest-approach pairs further apart than tol.
func Segments(a0, a1, b0, b1 r3.Vector, tol float64) (types.CurveCurveIntersection, bool) {
	aLen := a1.Sub(a0).Norm()
	bLen := b1.Sub(b0).Norm()
	if aLen < Epsilon || bLen < Epsilon {
		return types.CurveCurveIntersection{}, false
	}
	aDir := a1.Sub(a0).Mul(1 / aLen)
	bDir := b1.Sub(b0).Mul(1 / bLen)

	res, ok := Rays(a0, aDir, b0, bDir)
	if !ok {
		return types.CurveCurveIntersection{}, false
	}

	u0 := math.Min(math.Max(res.U0, 0), aLen)
	u1 := math.Min(math.Max(res.U1, 0), bLen)
	p0 := a0.Add(aDir.Mul(u0))
	p1 := b0.Add(bDir.Mul(u1))
	if p0.Sub(p1).Norm2() >= tol*tol {
		return types.CurveCurveIntersection{}, false
	}

	return types.CurveCurveIntersection{
		U0:     u0 / aLen,
		U1:     u1 / bLen,
		Point0: p0,
		Point1: p1,
	}, true
}

// SegmentWithTriangle clips the segment p0-p1 against the triangle tri
// over the given vertex array. The result carries the segment fraction R
// and the triangle barycentrics S (toward the second vertex) and T
// (toward the third). ok is false when the segment is parallel to the
// triangle plane, crosses it outside [0, 1], or misses the triangle.
func SegmentWithTriangle(p0, p1 r3.Vector, points []r3.Vector, tri [3]int) (types.TriSegmentIntersection, bool) {
	v0 := points[tri[0]]
	v1 := points[tri[1]]
	v2 := points[tri[2]]

	u := v1.Sub(v0)
	v := v2.Sub(v0)
	n := u.Cross(v)
	if n.Norm() < Epsilon {
		return types.TriSegmentIntersection{}, false
	}

	dir := p1.Sub(p0)
	w0 := p0.Sub(v0)
	b := n.Dot(dir)
	if math.Abs(b) < Epsilon {
		return types.TriSegmentIntersection{}, false
	}
	r := -n.Dot(w0) / b
	if r < 0 || r > 1 {
		return types.TriSegmentIntersection{}, false
	}

	p := p0.Add(dir.Mul(r))

	uu := u.Dot(u)
	uv := u.Dot(v)
	vv := v.Dot(v)
	w := p.Sub(v0)
	wu := w.Dot(u)
	wv := w.Dot(v)
	denom := uv*uv - uu*vv

	s := (uv*wv - vv*wu) / denom
	if s < -Epsilon || s > 1+Epsilon {
		return types.TriSegmentIntersection{}, false
	}
	t := (uv*wu - uu*wv) / denom
	if t < -Epsilon || s+t > 1+Epsilon {
		return types.TriSegmentIntersection{}, false
	}

	return types.TriSegmentIntersection{Point: p, S: s, T: t, R: r}, true
}

// SegmentWithPlane computes the fraction along p0-p1 at which the segment
// crosses the plane through v0 with normal n. The caller checks the
// [0, 1] range. ok is false when segment and plane are parallel.
func SegmentWithPlane(p0, p1, v0, n r3.Vector) (float64, bool) {
	den := n.Dot(p1.Sub(p0))
	if math.Abs(den) < Epsilon {
		return 0, false
	}
	return n.Dot(v0.Sub(p0)) / den, true
}
