package intersections

import (
	"github.com/golang/geo/r3"

	"github.com/iceisfun/gonurbs/tessellate"
	"github.com/iceisfun/gonurbs/types"
)

// TriangleTriangle intersects face f0 of m0 with face f1 of m1. The
// result is the clipped portion of the two planes' shared line, labeled
// with both surfaces' parameters and face indices on both endpoints,
// ordered by ray parameter. ok is false when the faces are coplanar,
// parallel, or the clipped intervals do not overlap.
func TriangleTriangle(m0 types.MeshData, f0 int, m1 types.MeshData, f1 int) (types.Interval[types.MeshIntersectionPoint], bool) {
	a0, _, _ := m0.FacePoints(f0)
	a1, _, _ := m1.FacePoints(f1)
	n0 := m0.FaceNormal(f0)
	n1 := m1.FaceNormal(f1)

	ray, ok := Planes(a0, n0, a1, n1)
	if !ok {
		return types.Interval[types.MeshIntersectionPoint]{}, false
	}

	clip0, ok := clipRayInCoplanarTriangle(ray, m0, f0)
	if !ok {
		return types.Interval[types.MeshIntersectionPoint]{}, false
	}
	clip1, ok := clipRayInCoplanarTriangle(ray, m1, f1)
	if !ok {
		return types.Interval[types.MeshIntersectionPoint]{}, false
	}

	return mergeTriangleClipIntervals(clip0, clip1, m0, f0, m1, f1)
}

// clipRayInCoplanarTriangle clips a line lying in the triangle's plane
// against the triangle's three edges, tracking the extreme ray parameters
// and the interpolated edge parameters at each extremum.
func clipRayInCoplanarTriangle(ray types.Ray, m types.MeshData, face int) (types.Interval[types.CurveTriPoint], bool) {
	var pts [3]r3.Vector
	pts[0], pts[1], pts[2] = m.FacePoints(face)
	uva, uvb, uvc := m.FaceUVs(face)
	uvs := [3]types.UV{uva, uvb, uvc}

	var interval types.Interval[types.CurveTriPoint]
	found := false
	for i := 0; i < 3; i++ {
		o := pts[i]
		e := pts[(i+1)%3]
		edge := e.Sub(o)
		length := edge.Norm()
		if length < Epsilon {
			continue
		}
		dir := edge.Mul(1 / length)

		res, ok := Rays(o, dir, ray.Origin, ray.Dir)
		if !ok {
			continue
		}
		if res.U0 < -Epsilon || res.U0 > length+Epsilon {
			continue
		}

		cp := types.CurveTriPoint{
			U:     res.U1,
			Point: ray.At(res.U1),
			UV:    uvs[i].Lerp(uvs[(i+1)%3], res.U0/length),
		}
		if !found {
			interval.Min = cp
			interval.Max = cp
			found = true
			continue
		}
		if cp.U < interval.Min.U {
			interval.Min = cp
		}
		if cp.U > interval.Max.U {
			interval.Max = cp
		}
	}
	return interval, found
}

// mergeTriangleClipIntervals intersects the two clipped ranges along the
// shared line. The side that contributed each extremum supplies its
// parameter pair directly; the opposite side's pair is reconstructed from
// the world point.
func mergeTriangleClipIntervals(clip0, clip1 types.Interval[types.CurveTriPoint], m0 types.MeshData, f0 int, m1 types.MeshData, f1 int) (types.Interval[types.MeshIntersectionPoint], bool) {
	lo, loFrom0 := clip0.Min, true
	if clip1.Min.U > lo.U {
		lo, loFrom0 = clip1.Min, false
	}
	hi, hiFrom0 := clip0.Max, true
	if clip1.Max.U < hi.U {
		hi, hiFrom0 = clip1.Max, false
	}
	if lo.U > hi.U+Epsilon {
		return types.Interval[types.MeshIntersectionPoint]{}, false
	}

	return types.Interval[types.MeshIntersectionPoint]{
		Min: labelEndpoint(lo, loFrom0, m0, f0, m1, f1),
		Max: labelEndpoint(hi, hiFrom0, m0, f0, m1, f1),
	}, true
}

func labelEndpoint(cp types.CurveTriPoint, from0 bool, m0 types.MeshData, f0 int, m1 types.MeshData, f1 int) types.MeshIntersectionPoint {
	p := types.MeshIntersectionPoint{Point: cp.Point, Face0: f0, Face1: f1}
	if from0 {
		p.UV0 = cp.UV
		p.UV1 = tessellate.TriangleUVFromPoint(m1, f1, cp.Point)
	} else {
		p.UV1 = cp.UV
		p.UV0 = tessellate.TriangleUVFromPoint(m0, f0, cp.Point)
	}
	return p
}
