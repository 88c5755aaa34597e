package tessellate

import (
	"github.com/iceisfun/gonurbs/eval"
	"github.com/iceisfun/gonurbs/types"
)

// RationalSurfaceAdaptive triangulates a NURBS surface, refining where the
// surface curves and leaving flat regions coarse.
//
// The initial grid has at least minDivs quads per direction, with defaults
// derived from the control net so every knot interval receives geometry.
// A quad whose corner normals deviate more than the normal tolerance is
// split in four, up to the depth bound. Each leaf quad emits two
// triangles. Vertices are shared between quads that agree on a parameter
// pair, so the result is connected across sibling quads; hanging vertices
// on refinement boundaries are retained.
//
// The returned mesh carries a parameter pair per vertex, which is what
// ties mesh intersection results back to the surface.
func RationalSurfaceAdaptive(s types.SurfaceData, opts ...Option) types.MeshData {
	cfg := newDefaultConfig()
	// one quad per control span keeps the initial grid from missing
	// geometry between knots
	if n := len(s.Points) - 1; n > cfg.minDivsU {
		cfg.minDivsU = n
	}
	if n := len(s.Points[0]) - 1; n > cfg.minDivsV {
		cfg.minDivsV = n
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &builder{surface: s, cfg: cfg, vertices: map[types.UV]int{}}

	minU, maxU := s.DomainU()
	minV, maxV := s.DomainV()
	du := (maxU - minU) / float64(cfg.minDivsU)
	dv := (maxV - minV) / float64(cfg.minDivsV)
	for i := 0; i < cfg.minDivsU; i++ {
		for j := 0; j < cfg.minDivsV; j++ {
			u0 := minU + float64(i)*du
			v0 := minV + float64(j)*dv
			b.divide(u0, u0+du, v0, v0+dv, 0)
		}
	}
	return b.mesh
}

type builder struct {
	surface  types.SurfaceData
	cfg      config
	mesh     types.MeshData
	vertices map[types.UV]int
}

// divide refines the quad [u0,u1]x[v0,v1] until it is flat enough, then
// emits two triangles.
func (b *builder) divide(u0, u1, v0, v1 float64, depth int) {
	if depth < b.cfg.maxDepth && !b.flat(u0, u1, v0, v1) {
		um := (u0 + u1) / 2
		vm := (v0 + v1) / 2
		b.divide(u0, um, v0, vm, depth+1)
		b.divide(um, u1, v0, vm, depth+1)
		b.divide(u0, um, vm, v1, depth+1)
		b.divide(um, u1, vm, v1, depth+1)
		return
	}

	i00 := b.vertex(u0, v0)
	i10 := b.vertex(u1, v0)
	i11 := b.vertex(u1, v1)
	i01 := b.vertex(u0, v1)
	b.mesh.Faces = append(b.mesh.Faces, [3]int{i00, i10, i11}, [3]int{i00, i11, i01})
}

// flat reports whether the quad's corner normals agree within the normal
// tolerance.
func (b *builder) flat(u0, u1, v0, v1 float64) bool {
	corners := [4][2]float64{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}
	var frames [4]eval.Frame
	for i, c := range corners {
		f, ok := eval.SurfaceFrame(b.surface, c[0], c[1])
		if !ok {
			// a degenerate corner cannot certify flatness
			return false
		}
		frames[i] = f
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if frames[i].Normal.Dot(frames[j].Normal) < 1-b.cfg.normTol {
				return false
			}
		}
	}
	return true
}

// vertex interns the mesh vertex at the given parameter pair.
func (b *builder) vertex(u, v float64) int {
	uv := types.UV{U: u, V: v}
	if idx, ok := b.vertices[uv]; ok {
		return idx
	}
	f, ok := eval.SurfaceFrame(b.surface, u, v)
	if !ok {
		f.Point = eval.RationalSurfacePoint(b.surface, u, v)
	}
	idx := len(b.mesh.Points)
	b.mesh.Points = append(b.mesh.Points, f.Point)
	b.mesh.Normals = append(b.mesh.Normals, f.Normal)
	b.mesh.UVs = append(b.mesh.UVs, uv)
	b.vertices[uv] = idx
	return idx
}
