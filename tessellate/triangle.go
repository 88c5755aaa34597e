package tessellate

import (
	"github.com/golang/geo/r3"

	"github.com/iceisfun/gonurbs/types"
)

// TriangleUVFromPoint lifts a world-space point lying on (or near) a mesh
// face back to the surface parameter domain by barycentric interpolation
// of the face's vertex parameters.
//
// The point is projected onto the face plane implicitly; callers are
// expected to pass points within tolerance of the face.
func TriangleUVFromPoint(m types.MeshData, face int, p r3.Vector) types.UV {
	a, b, c := m.FacePoints(face)
	uva, uvb, uvc := m.FaceUVs(face)

	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		// degenerate face: the corner parameter is the best answer
		return uva
	}
	s := (d11*d20 - d01*d21) / denom
	t := (d00*d21 - d01*d20) / denom

	return uva.Add(uvb.Sub(uva).Scale(s)).Add(uvc.Sub(uva).Scale(t))
}
