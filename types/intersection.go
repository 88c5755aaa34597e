package types

import "github.com/golang/geo/r3"

// CurveCurveIntersection reports the closest-approach pair between two
// parametric lines, segments or curves. When the operands truly cross,
// Point0 and Point1 coincide to within the query tolerance.
type CurveCurveIntersection struct {
	Point0 r3.Vector
	Point1 r3.Vector
	U0     float64
	U1     float64
}

// CurveSurfaceIntersection is a single curve/surface incidence: the curve
// parameter, the surface parameter pair and the world-space point.
type CurveSurfaceIntersection struct {
	U     float64
	UV    UV
	Point r3.Vector
}

// SurfaceSurfacePoint is one refined point on the intersection of two
// surfaces. Dist is the remaining gap between the two surface evaluations
// when refinement stopped.
type SurfaceSurfacePoint struct {
	UV0   UV
	UV1   UV
	Point r3.Vector
	Dist  float64
}

// PolylineMeshIntersection records where a polyline segment pierces a mesh
// face. U is the polyline's global parameter at the hit.
type PolylineMeshIntersection struct {
	Point        r3.Vector
	U            float64
	UV           UV
	SegmentIndex int
	FaceIndex    int
}

// TriSegmentIntersection is the result of clipping a segment against a
// triangle: the world point, the triangle barycentrics (S toward the
// second vertex, T toward the third) and the segment fraction R in [0,1].
type TriSegmentIntersection struct {
	Point r3.Vector
	S     float64
	T     float64
	R     float64
}

// CurveTriPoint is a point on a ray clipped to a coplanar triangle: the
// ray parameter, the world position and the triangle's interpolated
// surface parameter at that position.
type CurveTriPoint struct {
	U     float64
	Point r3.Vector
	UV    UV
}

// MeshIntersectionPoint is one endpoint of a mesh/mesh intersection
// segment, labeled with both surfaces' parameters and both face indices.
//
// Opp, Adj and Visited are topological scratch used while stitching
// segments into polylines. Opp is the other endpoint of the same segment.
// Adj is the spatially coincident endpoint of a different segment, nil at
// a polyline terminus or a branching location. Links are set once during
// reconstruction and frozen afterward; Visited only ever moves from false
// to true within a single reconstruction pass.
type MeshIntersectionPoint struct {
	UV0     UV
	UV1     UV
	Point   r3.Vector
	Face0   int
	Face1   int
	Opp     *MeshIntersectionPoint
	Adj     *MeshIntersectionPoint
	Visited bool
}

// Polyline is an ordered chain of linked mesh intersection endpoints as
// produced by polyline reconstruction. Closed loops repeat the starting
// position in the final entry.
type Polyline []*MeshIntersectionPoint

// Points flattens the chain to bare world positions.
func (p Polyline) Points() []r3.Vector {
	out := make([]r3.Vector, len(p))
	for i, mp := range p {
		out[i] = mp.Point
	}
	return out
}
