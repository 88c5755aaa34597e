package formatting

import (
	"fmt"

	"github.com/iceisfun/gonurbs/types"
)

// UVString returns a concise string for a parameter pair.
func UVString(uv types.UV) string {
	return fmt.Sprintf("(%.6g, %.6g)", uv.U, uv.V)
}
