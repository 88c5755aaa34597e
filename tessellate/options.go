package tessellate

type config struct {
	normTol  float64
	minDivsU int
	minDivsV int
	maxDepth int
}

// DefaultNormTol is the default allowed deviation between corner normals
// of a quad before it is refined, measured as 1 - dot.
const DefaultNormTol = 2.5e-2

func newDefaultConfig() config {
	return config{
		normTol:  DefaultNormTol,
		minDivsU: 1,
		minDivsV: 1,
		maxDepth: 8,
	}
}

// Option configures adaptive tessellation.
type Option func(*config)

// WithNormTol sets the allowed normal deviation before a quad is refined.
func WithNormTol(tol float64) Option {
	return func(c *config) {
		if tol > 0 {
			c.normTol = tol
		}
	}
}

// WithMinDivs sets the minimum number of quads of the initial grid in each
// parametric direction.
func WithMinDivs(u, v int) Option {
	return func(c *config) {
		if u > 0 {
			c.minDivsU = u
		}
		if v > 0 {
			c.minDivsV = v
		}
	}
}

// WithMaxDepth bounds how many times an initial quad may be refined.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth >= 0 {
			c.maxDepth = depth
		}
	}
}
