package spatial

import (
	"sort"

	"github.com/iceisfun/gonurbs/types"
)

// LazyMeshTree is a bounding-box tree over the faces of a mesh. Leaves
// yield face indices. Splitting partitions faces by the center of each
// face's bounding box across the median of the longest box axis.
type LazyMeshTree struct {
	mesh      *types.MeshData
	faces     []int
	bounds    types.AABB
	hasBounds bool
}

// NewLazyMeshTree builds a tree over all faces of m. The mesh itself is
// never copied or mutated.
func NewLazyMeshTree(m *types.MeshData) *LazyMeshTree {
	faces := make([]int, len(m.Faces))
	for i := range faces {
		faces[i] = i
	}
	return &LazyMeshTree{mesh: m, faces: faces}
}

// Empty reports whether the tree covers no faces.
func (t *LazyMeshTree) Empty() bool {
	return len(t.faces) == 0
}

// Bounds returns the box covering all faces, computed once on demand.
func (t *LazyMeshTree) Bounds() types.AABB {
	if !t.hasBounds {
		for i, f := range t.faces {
			fb := t.mesh.FaceBounds(f)
			if i == 0 {
				t.bounds = fb
				continue
			}
			t.bounds = t.bounds.Union(fb)
		}
		t.hasBounds = true
	}
	return t.bounds
}

// Indivisible reports whether the tree is down to a single face.
func (t *LazyMeshTree) Indivisible(tol float64) bool {
	return len(t.faces) <= 1
}

// Split partitions the faces across the median face box center along the
// longest bounding box axis.
func (t *LazyMeshTree) Split() (Tree[int], Tree[int]) {
	axis := t.Bounds().LongestAxis()
	sorted := make([]int, len(t.faces))
	copy(sorted, t.faces)
	sort.Slice(sorted, func(i, j int) bool {
		ci := t.mesh.FaceBounds(sorted[i]).Center()
		cj := t.mesh.FaceBounds(sorted[j]).Center()
		switch axis {
		case 0:
			return ci.X < cj.X
		case 1:
			return ci.Y < cj.Y
		default:
			return ci.Z < cj.Z
		}
	})
	half := len(sorted) / 2
	return &LazyMeshTree{mesh: t.mesh, faces: sorted[:half]},
		&LazyMeshTree{mesh: t.mesh, faces: sorted[half:]}
}

// Yield returns the single remaining face index.
func (t *LazyMeshTree) Yield() int {
	return t.faces[0]
}
