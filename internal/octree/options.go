package octree

const (
	// Number of points a node may hold before it becomes eligible to subdivide
	DefaultMaxPointsPerNode = 10000
	// Hard ceiling on tree depth, root being level zero
	DefaultMaxDepth = 8
	// Half width, in cloud coordinate units, below which nodes refuse to subdivide
	DefaultMinNodeSize = 0.01
)

// Contains the options driving tree construction
type BuildOptions struct {
	MaxPointsPerNode int     // capacity before a node is eligible to subdivide
	MaxDepth         int     // hard recursion ceiling
	MinNodeSize      float64 // refuse subdivision once a child half width would shrink below this
	InitialSpacing   float64 // root spacing override; zero derives it from the cloud density
}

// Replaces unset options with their defaults. InitialSpacing is left as is:
// zero means derive from the root size and point count at build time.
func (o *BuildOptions) applyDefaults() {
	if o.MaxPointsPerNode <= 0 {
		o.MaxPointsPerNode = DefaultMaxPointsPerNode
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MinNodeSize <= 0 {
		o.MinNodeSize = DefaultMinNodeSize
	}
}
