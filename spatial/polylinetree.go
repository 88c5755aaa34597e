package spatial

import "github.com/iceisfun/gonurbs/types"

// LazyPolylineTree is a bounding-box tree over the segments of a
// polyline. Leaves yield segment indices. Splitting halves the contiguous
// segment range, so siblings share exactly one interior point.
type LazyPolylineTree struct {
	polyline *types.PolylineData
	start    int // first segment index, inclusive
	end      int // last segment index, exclusive
}

// NewLazyPolylineTree builds a tree over every segment of p.
func NewLazyPolylineTree(p *types.PolylineData) *LazyPolylineTree {
	return &LazyPolylineTree{polyline: p, end: p.SegmentCount()}
}

// Empty reports whether the range covers no segments.
func (t *LazyPolylineTree) Empty() bool {
	return t.end <= t.start
}

// Bounds returns the box covering every point touched by the range.
func (t *LazyPolylineTree) Bounds() types.AABB {
	return types.NewAABB(t.polyline.Points[t.start : t.end+1]...)
}

// Indivisible reports whether a single segment remains.
func (t *LazyPolylineTree) Indivisible(tol float64) bool {
	return t.end-t.start <= 1
}

// Split halves the segment range.
func (t *LazyPolylineTree) Split() (Tree[int], Tree[int]) {
	mid := (t.start + t.end) / 2
	return &LazyPolylineTree{polyline: t.polyline, start: t.start, end: mid},
		&LazyPolylineTree{polyline: t.polyline, start: mid, end: t.end}
}

// Yield returns the single remaining segment index.
func (t *LazyPolylineTree) Yield() int {
	return t.start
}
