package eval

import (
	"github.com/golang/geo/r3"

	"github.com/iceisfun/gonurbs/types"
)

// hpoint is a control point lifted to homogeneous coordinates: the
// weighted position (w*x, w*y, w*z) plus the weight itself.
type hpoint struct {
	x, y, z, w float64
}

func homogenize(p r3.Vector, w float64) hpoint {
	return hpoint{x: p.X * w, y: p.Y * w, z: p.Z * w, w: w}
}

func (h hpoint) dehomogenize() r3.Vector {
	return r3.Vector{X: h.x / h.w, Y: h.y / h.w, Z: h.z / h.w}
}

func (h hpoint) vector() r3.Vector {
	return r3.Vector{X: h.x, Y: h.y, Z: h.z}
}

func (h hpoint) add(o hpoint) hpoint {
	return hpoint{x: h.x + o.x, y: h.y + o.y, z: h.z + o.z, w: h.w + o.w}
}

func (h hpoint) scale(s float64) hpoint {
	return hpoint{x: h.x * s, y: h.y * s, z: h.z * s, w: h.w * s}
}

func curveHomogeneous(c types.CurveData) []hpoint {
	pts := make([]hpoint, len(c.Points))
	for i, p := range c.Points {
		pts[i] = homogenize(p, c.Weight(i))
	}
	return pts
}

func surfaceHomogeneous(s types.SurfaceData) [][]hpoint {
	pts := make([][]hpoint, len(s.Points))
	for i, row := range s.Points {
		pts[i] = make([]hpoint, len(row))
		for j, p := range row {
			pts[i][j] = homogenize(p, s.Weight(i, j))
		}
	}
	return pts
}

// dehomogenizeCurve converts homogeneous control points back to a weighted
// CurveData sharing the given degree and knots.
func dehomogenizeCurve(degree int, knots []float64, pts []hpoint) types.CurveData {
	c := types.CurveData{
		Degree:  degree,
		Knots:   knots,
		Points:  make([]r3.Vector, len(pts)),
		Weights: make([]float64, len(pts)),
	}
	for i, h := range pts {
		c.Points[i] = h.dehomogenize()
		c.Weights[i] = h.w
	}
	return c
}
