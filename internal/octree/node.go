package octree

import (
	"github.com/golang/geo/r3"

	"github.com/orbitview/pointlod/internal/data"
	"github.com/orbitview/pointlod/internal/geometry"
)

// Models a node of the octree, covering one axis aligned cubic region of
// space. A node is a leaf until its point count exceeds the configured
// capacity, at which moment it subdivides and redistributes all of its
// points into up to eight lazily allocated children. Once subdivided a node
// owns no point data of its own.
type Node struct {
	boundingBox *geometry.BoundingBox
	center      r3.Vector
	size        float64 // half width of the cubic region
	level       int     // depth from the root, root being 0
	spacing     float64 // nominal point separation at this level, halves per subdivision
	points      data.PointCloud
	numPoints   int
	children    [8]*Node
	leaf        bool
}

func newNode(center r3.Vector, size float64, level int, spacing float64) *Node {
	return &Node{
		boundingBox: geometry.NewBoundingBoxFromCenter(center, size),
		center:      center,
		size:        size,
		level:       level,
		spacing:     spacing,
		leaf:        true,
	}
}

func (n *Node) BoundingBox() *geometry.BoundingBox {
	return n.boundingBox
}

func (n *Node) Center() r3.Vector {
	return n.center
}

// Returns the half width of the node region
func (n *Node) Size() float64 {
	return n.size
}

func (n *Node) Level() int {
	return n.level
}

// Returns the nominal separation between points at this node level, used as
// the error metric during LOD selection
func (n *Node) Spacing() float64 {
	return n.spacing
}

// Returns the number of points owned directly by this node. Zero for any
// node that has subdivided.
func (n *Node) NumPoints() int {
	return n.numPoints
}

// Returns the point buffers owned directly by this node
func (n *Node) Points() *data.PointCloud {
	return &n.points
}

func (n *Node) Children() [8]*Node {
	return n.children
}

func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Adds one point of the given cloud to the subtree rooted at this node.
// Points falling outside the node region are dropped: the check always
// passes at the root by construction but guards the disjoint child regions
// at every recursive step, and silently discards non finite coordinates.
func (n *Node) insert(cloud *data.PointCloud, i int, opts *BuildOptions) {
	if !n.boundingBox.Contains(cloud.Position(i)) {
		return
	}

	if n.leaf {
		n.points.AppendPointFrom(cloud, i)
		n.numPoints++
		if n.numPoints > opts.MaxPointsPerNode && n.level < opts.MaxDepth && n.size > opts.MinNodeSize {
			n.subdivide(opts)
		}
		return
	}

	octant := octantIndex(cloud.Position(i), n.center)
	child := n.children[octant]
	if child == nil {
		child = n.newChild(octant)
		n.children[octant] = child
	}
	child.insert(cloud, i, opts)
}

// Turns the node into an internal node: its point buffers are snapshotted,
// the node is reset, and every snapshotted point is pushed back through the
// normal insert path so it lands in a freshly created child.
func (n *Node) subdivide(opts *BuildOptions) {
	snapshot := n.points
	n.points = data.PointCloud{}
	n.numPoints = 0
	n.leaf = false

	for i := 0; i < snapshot.NumPoints(); i++ {
		n.insert(&snapshot, i, opts)
	}
}

func (n *Node) newChild(octant uint8) *Node {
	box := geometry.NewBoundingBoxFromParent(n.boundingBox, octant)
	return &Node{
		boundingBox: box,
		center:      box.Center(),
		size:        n.size / 2,
		level:       n.level + 1,
		spacing:     n.spacing / 2,
		leaf:        true,
	}
}

// Returns the index of the octant of the given center that contains the
// point: bit 0 set for x >= center.x, bit 1 for y, bit 2 for z.
func octantIndex(p r3.Vector, center r3.Vector) uint8 {
	var octant uint8
	if p.X >= center.X {
		octant |= 1
	}
	if p.Y >= center.Y {
		octant |= 2
	}
	if p.Z >= center.Z {
		octant |= 4
	}
	return octant
}

// Collects every leaf of the subtree rooted at this node, in child index order
func (n *Node) LeafNodes() []*Node {
	var leaves []*Node
	n.walk(func(node *Node) {
		if node.leaf {
			leaves = append(leaves, node)
		}
	})
	return leaves
}

// Returns the total number of points stored in the subtree rooted at this node
func (n *Node) TotalPoints() int {
	total := 0
	n.walk(func(node *Node) {
		total += node.numPoints
	})
	return total
}

// Returns the deepest level found in the subtree rooted at this node
func (n *Node) MaxDepth() int {
	deepest := n.level
	n.walk(func(node *Node) {
		if node.level > deepest {
			deepest = node.level
		}
	})
	return deepest
}

func (n *Node) walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.children {
		if child != nil {
			child.walk(visit)
		}
	}
}
