package formatting

import (
	"fmt"
	"io"

	"github.com/iceisfun/gonurbs/types"
)

// AABBString returns a concise string for an AABB.
func AABBString(box types.AABB) string {
	return fmt.Sprintf("[%s-%s]", PointString(box.Min), PointString(box.Max))
}

// WriteAABB writes a verbose representation of an AABB to a writer.
func WriteAABB(w io.Writer, box types.AABB) error {
	_, err := fmt.Fprintf(w, "AABB{Min: %s, Max: %s}", PointString(box.Min), PointString(box.Max))
	return err
}
