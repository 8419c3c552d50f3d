package lod

import (
	"container/heap"
	"math"

	"github.com/golang/geo/r3"

	"github.com/orbitview/pointlod/internal/geometry"
	"github.com/orbitview/pointlod/internal/octree"
)

const (
	DefaultPointBudget         = 1000000
	DefaultLODMultiplier       = 1.0
	DefaultMinScreenSpaceError = 1.0

	// fixed scale applied to the spacing/distance ratio; consumers tune
	// LODMultiplier against this exact constant
	screenSpaceErrorScale = 1000.0
)

// Contains the options driving one LOD selection pass
type SelectOptions struct {
	// Ceiling on the total point count across selected nodes. Honored at
	// node granularity: the node crossing the ceiling is still included in
	// full, and since accepted nodes are counted before the stop check a
	// budget of zero still admits the first accepted node that owns points.
	PointBudget int
	// Supplies the viewpoint. If it also implements ViewProjector its
	// frustum culls invisible subtrees; otherwise culling silently
	// degrades to a no-op and every node is treated as visible.
	Camera Camera
	// Scales the computed screen space error, biasing towards coarser
	// (higher) or finer (lower) detail. Zero or negative falls back to 1.
	LODMultiplier float64
	// Threshold below which a node is detailed enough to render as is.
	// Zero or negative falls back to 1.
	MinScreenSpaceError float64
}

// Returns a SelectOptions with every option at its default
func NewSelectOptions(camera Camera) SelectOptions {
	return SelectOptions{
		PointBudget:         DefaultPointBudget,
		Camera:              camera,
		LODMultiplier:       DefaultLODMultiplier,
		MinScreenSpaceError: DefaultMinScreenSpaceError,
	}
}

// Chooses the set of nodes to render for the current viewpoint. Traversal
// is best first over screen space error: the subtree whose coarse rendering
// would show the most visible error is examined, and potentially descended
// into, soonest. Returned nodes are references into the tree, never copies.
func SelectNodes(root *octree.Node, opts SelectOptions) []*octree.Node {
	if root == nil {
		return nil
	}

	multiplier := opts.LODMultiplier
	if multiplier <= 0 {
		multiplier = DefaultLODMultiplier
	}
	minError := opts.MinScreenSpaceError
	if minError <= 0 {
		minError = DefaultMinScreenSpaceError
	}

	var cameraPosition r3.Vector
	var frustum *geometry.Frustum
	if opts.Camera != nil {
		cameraPosition = opts.Camera.WorldPosition()
		if projector, ok := opts.Camera.(ViewProjector); ok {
			frustum = geometry.NewFrustumFromMatrix(projector.ViewProjection())
		}
	}

	queue := newSelectionQueue()
	queue.push(root, math.MaxFloat64)

	var selected []*octree.Node
	totalPoints := 0

	for queue.Len() > 0 {
		node := queue.pop()

		if frustum != nil && !frustum.IntersectsBox(node.BoundingBox()) {
			// invisible: the node and its whole subtree are skipped
			continue
		}

		err := screenSpaceError(node, cameraPosition, multiplier)
		if err < minError || node.IsLeaf() {
			if node.NumPoints() > 0 {
				selected = append(selected, node)
				totalPoints += node.NumPoints()
				if totalPoints >= opts.PointBudget {
					break
				}
			}
			continue
		}

		for _, child := range node.Children() {
			if child != nil {
				queue.push(child, screenSpaceError(child, cameraPosition, multiplier))
			}
		}
	}

	return selected
}

// A cheap proxy for the on screen size of the node spacing, not a true
// projected pixel size computation. The formula, scale constant included,
// is part of the selector contract: LODMultiplier values are tuned against
// it.
func screenSpaceError(n *octree.Node, cameraPosition r3.Vector, multiplier float64) float64 {
	distance := n.Center().Sub(cameraPosition).Norm()
	return n.Spacing() / distance * screenSpaceErrorScale * multiplier
}

type queueEntry struct {
	node     *octree.Node
	priority float64
	seq      int
}

// A max heap over screen space error. Equal priorities pop in insertion
// order so tie handling stays deterministic.
type selectionQueue struct {
	entries []*queueEntry
	nextSeq int
}

func newSelectionQueue() *selectionQueue {
	return &selectionQueue{}
}

func (q *selectionQueue) push(node *octree.Node, priority float64) {
	heap.Push(q, &queueEntry{node: node, priority: priority, seq: q.nextSeq})
	q.nextSeq++
}

func (q *selectionQueue) pop() *octree.Node {
	return heap.Pop(q).(*queueEntry).node
}

func (q *selectionQueue) Len() int { return len(q.entries) }

func (q *selectionQueue) Less(i, j int) bool {
	if q.entries[i].priority != q.entries[j].priority {
		return q.entries[i].priority > q.entries[j].priority
	}
	return q.entries[i].seq < q.entries[j].seq
}

func (q *selectionQueue) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
}

func (q *selectionQueue) Push(x interface{}) {
	q.entries = append(q.entries, x.(*queueEntry))
}

func (q *selectionQueue) Pop() interface{} {
	old := q.entries
	entry := old[len(old)-1]
	old[len(old)-1] = nil
	q.entries = old[:len(old)-1]
	return entry
}
