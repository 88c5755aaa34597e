package intersections

import (
	"github.com/iceisfun/gonurbs/spatial"
	"github.com/iceisfun/gonurbs/types"
	"github.com/iceisfun/gonurbs/validation"
)

// Meshes intersects two triangle meshes and stitches the resulting
// segments into polylines.
//
// Face pairs are pruned through lazy bounding-box trees, each surviving
// pair runs the triangle/triangle clip, degenerate and duplicate segments
// are discarded, and the remaining segment soup is reconstructed into
// chains by linking spatially coincident endpoints. ErrSegmentGraph is
// returned when reconstruction revisits an endpoint, which indicates the
// segment soup broke the pairing invariants.
func Meshes(m0, m1 types.MeshData) ([]types.Polyline, error) {
	if err := validation.Mesh(m0); err != nil {
		return nil, err
	}
	if err := validation.Mesh(m1); err != nil {
		return nil, err
	}

	pairs := spatial.TreePairs[int, int](spatial.NewLazyMeshTree(&m0), spatial.NewLazyMeshTree(&m1), 0)

	var segments []types.Interval[*types.MeshIntersectionPoint]
	for _, pair := range pairs {
		seg, ok := TriangleTriangle(m0, pair.A, m1, pair.B)
		if !ok {
			continue
		}
		if seg.Min.Point.Sub(seg.Max.Point).Norm2() < Epsilon {
			continue
		}
		min, max := seg.Min, seg.Max
		segments = append(segments, types.Interval[*types.MeshIntersectionPoint]{Min: &min, Max: &max})
	}

	segments = dedupSegments(segments)
	return reconstructPolylines(segments)
}

// dedupSegments drops segments that retrace another segment in the first
// surface's parameter space. Segments are produced twice when the true
// intersection lies on an edge shared by two faces of one mesh.
func dedupSegments(segments []types.Interval[*types.MeshIntersectionPoint]) []types.Interval[*types.MeshIntersectionPoint] {
	var kept []types.Interval[*types.MeshIntersectionPoint]
	for _, seg := range segments {
		dup := false
		for _, k := range kept {
			straight := seg.Min.UV0.DistanceSq(k.Min.UV0) < Epsilon &&
				seg.Max.UV0.DistanceSq(k.Max.UV0) < Epsilon
			crossed := seg.Min.UV0.DistanceSq(k.Max.UV0) < Epsilon &&
				seg.Max.UV0.DistanceSq(k.Min.UV0) < Epsilon
			if straight || crossed {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, seg)
		}
	}
	return kept
}

// reconstructPolylines links segment endpoints into chains and walks them.
func reconstructPolylines(segments []types.Interval[*types.MeshIntersectionPoint]) ([]types.Polyline, error) {
	if len(segments) == 0 {
		return nil, nil
	}

	endpoints := make([]*types.MeshIntersectionPoint, 0, 2*len(segments))
	for _, seg := range segments {
		seg.Min.Opp = seg.Max
		seg.Max.Opp = seg.Min
		endpoints = append(endpoints, seg.Min, seg.Max)
	}

	index := spatial.NewEndpointIndex(endpoints)
	k := len(segments)
	if k < 3 {
		k = 3
	}
	// endpoint snapping uses the magnitude-aware merge tolerance so
	// large models do not lose coincidences to representation error
	mergeEps := types.DefaultEpsilon()
	for _, ep := range endpoints {
		if ep.Adj != nil {
			continue
		}
		radius := mergeEps.TolForPoints(ep.Point)
		var candidates []*types.MeshIntersectionPoint
		for _, hit := range index.Nearest(ep.Point, k, radius*radius) {
			if hit.Rec == ep {
				continue
			}
			candidates = append(candidates, hit.Rec)
		}
		// two or more coincident candidates mean a branching edge;
		// those stay unlinked so every walk stays unambiguous
		if len(candidates) == 1 && candidates[0].Adj == nil {
			ep.Adj = candidates[0]
			candidates[0].Adj = ep
		}
	}

	roots := make([]*types.MeshIntersectionPoint, 0, len(endpoints))
	for _, ep := range endpoints {
		if ep.Adj == nil {
			roots = append(roots, ep)
		}
	}
	// pure loop topology has no free endpoint; every endpoint then
	// becomes a potential root so each loop is walked at least once
	if len(roots) == 0 {
		roots = endpoints
	}

	var polylines []types.Polyline
	for _, root := range roots {
		if root.Visited {
			continue
		}
		pl, err := walkPolyline(root)
		if err != nil {
			return nil, err
		}
		polylines = append(polylines, pl)
	}
	return polylines, nil
}

// walkPolyline chases cur -> cur.Opp.Adj from a root until the chain ends
// or cycles back, consuming one segment per step.
func walkPolyline(root *types.MeshIntersectionPoint) (types.Polyline, error) {
	var pl types.Polyline
	cur := root
	for {
		if cur.Visited || cur.Opp.Visited {
			return nil, ErrSegmentGraph
		}
		cur.Visited = true
		cur.Opp.Visited = true
		pl = append(pl, cur)

		next := cur.Opp.Adj
		if next == nil || next == root {
			pl = append(pl, cur.Opp)
			return pl, nil
		}
		cur = next
	}
}
