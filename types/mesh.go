package types

import "github.com/golang/geo/r3"

// MeshData is a read-only triangle mesh with optional per-vertex normals
// and surface parameters.
//
// Faces index into Points (and UVs/Normals when present). Meshes consumed
// by the intersection engine typically come from tessellating a parametric
// surface, in which case UVs[vi] is the surface parameter of vertex vi.
type MeshData struct {
	Points  []r3.Vector
	Normals []r3.Vector
	Faces   [][3]int
	UVs     []UV
}

// FacePoints returns the three vertex positions of face f in winding order.
func (m MeshData) FacePoints(f int) (r3.Vector, r3.Vector, r3.Vector) {
	face := m.Faces[f]
	return m.Points[face[0]], m.Points[face[1]], m.Points[face[2]]
}

// FaceUVs returns the three vertex parameters of face f in winding order.
func (m MeshData) FaceUVs(f int) (UV, UV, UV) {
	face := m.Faces[f]
	return m.UVs[face[0]], m.UVs[face[1]], m.UVs[face[2]]
}

// FaceBounds returns the bounding box of face f.
func (m MeshData) FaceBounds(f int) AABB {
	a, b, c := m.FacePoints(f)
	return NewAABB(a, b, c)
}

// FaceNormal computes the right-hand-rule unit normal of face f from its
// vertex ring.
func (m MeshData) FaceNormal(f int) r3.Vector {
	a, b, c := m.FacePoints(f)
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
