package lod

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/orbitview/pointlod/internal/data"
	"github.com/orbitview/pointlod/internal/octree"
)

func buildUniformTree(t *testing.T, numPoints, maxPointsPerNode int) *octree.Tree {
	t.Helper()
	r := rand.New(rand.NewSource(99))
	cloud := &data.PointCloud{Positions: make([]float64, 0, 3*numPoints)}
	for i := 0; i < numPoints; i++ {
		cloud.Positions = append(cloud.Positions, r.Float64()*10, r.Float64()*10, r.Float64()*10)
	}
	tree, err := octree.Build(cloud, octree.BuildOptions{MaxPointsPerNode: maxPointsPerNode})
	test.That(t, err, test.ShouldBeNil)
	return tree
}

func insideCamera() *PerspectiveCamera {
	// close to the cloud and looking through it, so fine detail is wanted
	return &PerspectiveCamera{
		Position: r3.Vector{X: 5, Y: 5, Z: -2},
		Target:   r3.Vector{X: 5, Y: 5, Z: 5},
		FovY:     60,
		Aspect:   1,
		Near:     0.1,
		Far:      1000,
	}
}

func TestSelectNodesBudgetBound(t *testing.T) {
	tree := buildUniformTree(t, 20000, 500)

	opts := NewSelectOptions(insideCamera())
	opts.PointBudget = 2500

	selected := SelectNodes(tree.Root(), opts)
	test.That(t, len(selected), test.ShouldBeGreaterThan, 0)

	total := 0
	for _, n := range selected {
		test.That(t, n.NumPoints(), test.ShouldBeGreaterThan, 0)
		total += n.NumPoints()
	}
	// the ceiling may only be crossed by the final node, never by an
	// earlier one and never partially
	last := selected[len(selected)-1]
	test.That(t, total-last.NumPoints(), test.ShouldBeLessThan, opts.PointBudget)
}

func TestSelectNodesZeroBudgetAdmitsOneNode(t *testing.T) {
	// accepted nodes are counted before the stop check, so a zero budget
	// still admits exactly the first accepted node that owns points
	tree := buildUniformTree(t, 100, 1000)
	test.That(t, tree.Root().IsLeaf(), test.ShouldBeTrue)

	opts := NewSelectOptions(insideCamera())
	opts.PointBudget = 0

	selected := SelectNodes(tree.Root(), opts)
	test.That(t, len(selected), test.ShouldEqual, 1)
	test.That(t, selected[0].NumPoints(), test.ShouldEqual, 100)
}

func TestSelectNodesFrustumExcludesEverything(t *testing.T) {
	tree := buildUniformTree(t, 2000, 100)

	// camera past the cloud, looking away from it
	camera := &PerspectiveCamera{
		Position: r3.Vector{X: 5, Y: 5, Z: 100},
		Target:   r3.Vector{X: 5, Y: 5, Z: 200},
		FovY:     60,
		Aspect:   1,
		Near:     0.1,
		Far:      1000,
	}

	opts := NewSelectOptions(camera)
	selected := SelectNodes(tree.Root(), opts)
	test.That(t, selected, test.ShouldBeEmpty)
}

func TestSelectNodesPositionCameraDisablesCulling(t *testing.T) {
	tree := buildUniformTree(t, 2000, 100)

	// same viewpoint as the culling test, but with no projection to build
	// a frustum from the whole tree stays visible
	opts := NewSelectOptions(&PositionCamera{Position: r3.Vector{X: 5, Y: 5, Z: 100}})
	selected := SelectNodes(tree.Root(), opts)
	test.That(t, len(selected), test.ShouldBeGreaterThan, 0)
}

func TestSelectNodesCoarseViewpointAcceptsWithoutDescending(t *testing.T) {
	tree := buildUniformTree(t, 20000, 500)
	test.That(t, tree.Root().IsLeaf(), test.ShouldBeFalse)

	// so far away that the root error falls under the threshold: the root
	// is accepted as is, and since subdivided nodes own no points the
	// selection is empty
	opts := NewSelectOptions(&PositionCamera{Position: r3.Vector{X: 1e7, Y: 1e7, Z: 1e7}})
	selected := SelectNodes(tree.Root(), opts)
	test.That(t, selected, test.ShouldBeEmpty)
}

func TestSelectNodesLeafAlwaysAccepted(t *testing.T) {
	tree := buildUniformTree(t, 100, 1000)
	test.That(t, tree.Root().IsLeaf(), test.ShouldBeTrue)

	// far viewpoint, no culling: a leaf is rendered as is no matter how
	// small its error
	opts := NewSelectOptions(&PositionCamera{Position: r3.Vector{X: 1e7, Y: 0, Z: 0}})
	selected := SelectNodes(tree.Root(), opts)
	test.That(t, len(selected), test.ShouldEqual, 1)
}

func TestSelectNodesLODMultiplierBiasesDetail(t *testing.T) {
	tree := buildUniformTree(t, 20000, 500)

	camera := &PositionCamera{Position: r3.Vector{X: 5, Y: 5, Z: -20}}

	fine := NewSelectOptions(camera)
	fine.LODMultiplier = 10

	coarse := NewSelectOptions(camera)
	coarse.LODMultiplier = 0.001

	fineNodes := SelectNodes(tree.Root(), fine)
	coarseNodes := SelectNodes(tree.Root(), coarse)

	finePoints, coarsePoints := 0, 0
	for _, n := range fineNodes {
		finePoints += n.NumPoints()
	}
	for _, n := range coarseNodes {
		coarsePoints += n.NumPoints()
	}
	test.That(t, finePoints, test.ShouldBeGreaterThanOrEqualTo, coarsePoints)
}

func TestSelectNodesNilRoot(t *testing.T) {
	selected := SelectNodes(nil, NewSelectOptions(nil))
	test.That(t, selected, test.ShouldBeEmpty)
}

func TestSelectionQueueOrdering(t *testing.T) {
	tree := buildUniformTree(t, 10, 1000)
	n := tree.Root()

	q := newSelectionQueue()
	q.push(n, 1)
	q.push(n, 5)
	q.push(n, 3)
	test.That(t, q.Len(), test.ShouldEqual, 3)

	// highest priority first
	first := q.entries[0]
	test.That(t, first.priority, test.ShouldEqual, 5.0)

	q.pop()
	q.pop()
	q.pop()
	test.That(t, q.Len(), test.ShouldEqual, 0)
}
