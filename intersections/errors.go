package intersections

import "errors"

var (
	// ErrDegenerateFrame indicates the surface refinement step hit a
	// configuration whose tangent planes admit no single intersection
	// point. The caller supplied an estimate that was supposed to be
	// valid, so this is an invariant violation rather than an absence.
	ErrDegenerateFrame = errors.New("gonurbs: degenerate tangent frame during refinement")

	// ErrSegmentGraph indicates polyline reconstruction revisited an
	// endpoint, which means the segment graph broke its pairing
	// invariants (a dedup or linkage bug upstream).
	ErrSegmentGraph = errors.New("gonurbs: segment graph invariant violated")
)
