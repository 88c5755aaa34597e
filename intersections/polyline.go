package intersections

import (
	"github.com/iceisfun/gonurbs/spatial"
	"github.com/iceisfun/gonurbs/tessellate"
	"github.com/iceisfun/gonurbs/types"
	"github.com/iceisfun/gonurbs/validation"
)

// PolylineAndMesh intersects a polyline with a triangle mesh.
//
// Candidate (segment, face) pairs come from the lazy trees; each runs the
// segment/triangle clip. Hits carry the polyline's global parameter,
// interpolated from the segment's parameter range, and the face's surface
// parameter lifted from the world point.
func PolylineAndMesh(p types.PolylineData, m types.MeshData, tol float64) ([]types.PolylineMeshIntersection, error) {
	if err := validation.Polyline(p); err != nil {
		return nil, err
	}
	if err := validation.Mesh(m); err != nil {
		return nil, err
	}

	pairs := spatial.TreePairs[int, int](
		spatial.NewLazyPolylineTree(&p), spatial.NewLazyMeshTree(&m), tol)

	var out []types.PolylineMeshIntersection
	for _, pair := range pairs {
		si, fi := pair.A, pair.B
		hit, ok := SegmentWithTriangle(p.Points[si], p.Points[si+1], m.Points, m.Faces[fi])
		if !ok {
			continue
		}
		u := p.Params[si] + hit.R*(p.Params[si+1]-p.Params[si])
		out = append(out, types.PolylineMeshIntersection{
			Point:        hit.Point,
			U:            u,
			UV:           tessellate.TriangleUVFromPoint(m, fi, hit.Point),
			SegmentIndex: si,
			FaceIndex:    fi,
		})
	}
	return out, nil
}

// Polylines intersects two polylines. Parameters in the results are the
// polylines' global parameters, interpolated from each segment's range.
func Polylines(p0, p1 types.PolylineData, tol float64) ([]types.CurveCurveIntersection, error) {
	if err := validation.Polyline(p0); err != nil {
		return nil, err
	}
	if err := validation.Polyline(p1); err != nil {
		return nil, err
	}

	pairs := spatial.TreePairs[int, int](
		spatial.NewLazyPolylineTree(&p0), spatial.NewLazyPolylineTree(&p1), tol)

	var out []types.CurveCurveIntersection
	for _, pair := range pairs {
		i, j := pair.A, pair.B
		hit, ok := Segments(p0.Points[i], p0.Points[i+1], p1.Points[j], p1.Points[j+1], tol)
		if !ok {
			continue
		}
		hit.U0 = p0.Params[i] + hit.U0*(p0.Params[i+1]-p0.Params[i])
		hit.U1 = p1.Params[j] + hit.U1*(p1.Params[j+1]-p1.Params[j])
		out = append(out, hit)
	}
	return out, nil
}
