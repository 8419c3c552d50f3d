package octree

import (
	"errors"
	"math"
	"time"

	"github.com/golang/glog"

	"github.com/orbitview/pointlod/internal/data"
	"github.com/orbitview/pointlod/internal/geometry"
)

// Represents a built octree over a point cloud. The tree is immutable after
// Build returns: selection and merging only read node fields.
type Tree struct {
	root *Node
	opts BuildOptions
}

// Summarizes the shape of a built tree
type TreeStats struct {
	Nodes    int `json:"nodes"`
	Leaves   int `json:"leaves"`
	Points   int `json:"points"`
	MaxDepth int `json:"max_depth"`
}

// Builds an octree over the given cloud by inserting every point one at a
// time. The root region is the cube centered on the cloud bounding box and
// wide enough to cover its largest extent. Construction is synchronous and
// blocks for its whole duration.
func Build(cloud *data.PointCloud, opts BuildOptions) (*Tree, error) {
	opts.applyDefaults()

	if err := cloud.Validate(); err != nil {
		return nil, err
	}
	if cloud.NumPoints() == 0 {
		return nil, errors.New("cannot build an octree over an empty cloud")
	}

	box, err := geometry.NewBoundingBoxFromPositions(cloud.Positions)
	if err != nil {
		return nil, err
	}

	extent := box.Extent()
	halfSize := math.Max(extent.X, math.Max(extent.Y, extent.Z)) / 2

	spacing := opts.InitialSpacing
	if spacing <= 0 {
		// estimate of the nominal inter point distance assuming uniform
		// density over the bounding cube
		spacing = math.Sqrt(2 * halfSize * halfSize / float64(cloud.NumPoints()))
	}

	root := newNode(box.Center(), halfSize, 0, spacing)

	start := time.Now()
	glog.Infof("building octree over %d points", cloud.NumPoints())
	for i := 0; i < cloud.NumPoints(); i++ {
		root.insert(cloud, i, &opts)
	}
	glog.Infof("octree built in %s", time.Since(start))

	return &Tree{root: root, opts: opts}, nil
}

// Returns the root node of the tree
func (t *Tree) Root() *Node {
	return t.root
}

// Returns the build options the tree was constructed with, defaults applied
func (t *Tree) Options() BuildOptions {
	return t.opts
}

// Walks the whole tree collecting shape statistics
func (t *Tree) Stats() TreeStats {
	stats := TreeStats{}
	t.root.walk(func(n *Node) {
		stats.Nodes++
		if n.leaf {
			stats.Leaves++
		}
		stats.Points += n.numPoints
		if n.level > stats.MaxDepth {
			stats.MaxDepth = n.level
		}
	})
	return stats
}
