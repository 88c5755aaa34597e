package formatting

import (
	"fmt"
	"strings"

	"github.com/iceisfun/gonurbs/types"
)

// PolylineString summarizes a reconstructed mesh intersection polyline.
func PolylineString(pl types.Polyline) string {
	var b strings.Builder
	fmt.Fprintf(&b, "polyline[%d]", len(pl))
	for _, mp := range pl {
		b.WriteString(" ")
		b.WriteString(PointString(mp.Point))
	}
	return b.String()
}

// SurfacePointString summarizes a refined surface/surface point.
func SurfacePointString(p types.SurfaceSurfacePoint) string {
	return fmt.Sprintf("%s uv0=%s uv1=%s dist=%.3g",
		PointString(p.Point), UVString(p.UV0), UVString(p.UV1), p.Dist)
}
