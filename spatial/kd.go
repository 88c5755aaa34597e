package spatial

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/iceisfun/gonurbs/types"
)

// endpointEntry adapts a mesh intersection endpoint to the kdtree
// Comparable contract, keyed on its world position with a squared
// Euclidean metric.
type endpointEntry struct {
	pos r3.Vector
	rec *types.MeshIntersectionPoint
}

func (e endpointEntry) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(endpointEntry)
	switch d {
	case 0:
		return e.pos.X - q.pos.X
	case 1:
		return e.pos.Y - q.pos.Y
	default:
		return e.pos.Z - q.pos.Z
	}
}

func (e endpointEntry) Dims() int { return 3 }

func (e endpointEntry) Distance(c kdtree.Comparable) float64 {
	q := c.(endpointEntry)
	return e.pos.Sub(q.pos).Norm2()
}

// endpointList implements kdtree.Interface for tree construction.
type endpointList []endpointEntry

func (p endpointList) Index(i int) kdtree.Comparable { return p[i] }
func (p endpointList) Len() int                      { return len(p) }
func (p endpointList) Pivot(d kdtree.Dim) int {
	return endpointPlane{Dim: d, endpointList: p}.Pivot()
}
func (p endpointList) Slice(start, end int) kdtree.Interface { return p[start:end] }

// endpointPlane is the sort plane helper kdtree uses while partitioning.
type endpointPlane struct {
	kdtree.Dim
	endpointList
}

func (p endpointPlane) Less(i, j int) bool {
	return p.endpointList[i].Compare(p.endpointList[j], p.Dim) < 0
}
func (p endpointPlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}
func (p endpointPlane) Slice(start, end int) kdtree.SortSlicer {
	p.endpointList = p.endpointList[start:end]
	return p
}
func (p endpointPlane) Swap(i, j int) {
	p.endpointList[i], p.endpointList[j] = p.endpointList[j], p.endpointList[i]
}

// Neighbor is one k-nearest query hit: the endpoint record and its squared
// distance to the query point.
type Neighbor struct {
	Rec    *types.MeshIntersectionPoint
	DistSq float64
}

// EndpointIndex answers k-nearest queries over the world positions of
// mesh intersection endpoints.
type EndpointIndex struct {
	tree *kdtree.Tree
}

// NewEndpointIndex indexes the given endpoint records by world position.
func NewEndpointIndex(recs []*types.MeshIntersectionPoint) *EndpointIndex {
	entries := make(endpointList, len(recs))
	for i, r := range recs {
		entries[i] = endpointEntry{pos: r.Point, rec: r}
	}
	return &EndpointIndex{tree: kdtree.New(entries, false)}
}

// Nearest returns up to k endpoints whose squared distance to p is at most
// maxSq, unordered.
func (x *EndpointIndex) Nearest(p r3.Vector, k int, maxSq float64) []Neighbor {
	if x.tree == nil || k <= 0 {
		return nil
	}
	keep := kdtree.NewNKeeper(k)
	x.tree.NearestSet(keep, endpointEntry{pos: p})

	var out []Neighbor
	for _, c := range keep.Heap {
		if c.Comparable == nil || c.Dist > maxSq {
			continue
		}
		out = append(out, Neighbor{Rec: c.Comparable.(endpointEntry).rec, DistSq: c.Dist})
	}
	return out
}
