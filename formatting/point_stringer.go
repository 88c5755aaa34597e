package formatting

import (
	"fmt"
	"io"

	"github.com/golang/geo/r3"
)

// PointString returns a concise string representation of a point.
func PointString(p r3.Vector) string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", p.X, p.Y, p.Z)
}

// WritePoint writes a verbose representation of a point to a writer.
func WritePoint(w io.Writer, p r3.Vector) error {
	_, err := fmt.Fprintf(w, "Point{X: %v, Y: %v, Z: %v}", p.X, p.Y, p.Z)
	return err
}
