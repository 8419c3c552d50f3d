package octree

import (
	"testing"

	"go.viam.com/test"

	"github.com/orbitview/pointlod/internal/data"
)

func leafTree(t *testing.T, cloud *data.PointCloud) *Node {
	t.Helper()
	tree, err := Build(cloud, BuildOptions{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tree.Root().IsLeaf(), test.ShouldBeTrue)
	return tree.Root()
}

func TestMergeNodeData(t *testing.T) {
	a := leafTree(t, &data.PointCloud{
		Positions: []float64{0, 0, 0, 1, 1, 1},
		Colors:    []uint8{10, 20, 30, 40, 50, 60},
	})
	b := leafTree(t, &data.PointCloud{
		Positions: []float64{2, 2, 2},
		Colors:    []uint8{70, 80, 90},
	})

	merged := MergeNodeData([]*Node{a, b})
	test.That(t, merged.NumPoints(), test.ShouldEqual, 3)
	test.That(t, merged.Positions, test.ShouldResemble, []float64{0, 0, 0, 1, 1, 1, 2, 2, 2})
	test.That(t, merged.Colors, test.ShouldResemble, []uint8{10, 20, 30, 40, 50, 60, 70, 80, 90})
	test.That(t, merged.HasIntensities(), test.ShouldBeFalse)
	test.That(t, merged.HasClassifications(), test.ShouldBeFalse)

	// concatenation follows the input node order exactly
	reversed := MergeNodeData([]*Node{b, a})
	test.That(t, reversed.Positions, test.ShouldResemble, []float64{2, 2, 2, 0, 0, 0, 1, 1, 1})
}

func TestMergeNodeDataZeroFillsMissingAttributes(t *testing.T) {
	withIntensity := leafTree(t, &data.PointCloud{
		Positions:   []float64{0, 0, 0, 1, 0, 0},
		Intensities: []float64{7, 9},
	})
	withoutIntensity := leafTree(t, &data.PointCloud{
		Positions: []float64{5, 5, 5},
	})

	merged := MergeNodeData([]*Node{withIntensity, withoutIntensity})
	test.That(t, merged.NumPoints(), test.ShouldEqual, 3)
	test.That(t, merged.Intensities, test.ShouldResemble, []float64{7, 9, 0})
}

func TestMergeNodeDataIdempotent(t *testing.T) {
	a := leafTree(t, &data.PointCloud{
		Positions:       []float64{0, 0, 0, 1, 2, 3},
		Colors:          []uint8{1, 2, 3, 4, 5, 6},
		Intensities:     []float64{0.5, 0.75},
		Classifications: []uint8{2, 6},
	})

	first := MergeNodeData([]*Node{a})
	second := MergeNodeData([]*Node{a})
	test.That(t, second, test.ShouldResemble, first)
}

func TestMergeNodeDataEmpty(t *testing.T) {
	merged := MergeNodeData(nil)
	test.That(t, merged.NumPoints(), test.ShouldEqual, 0)
	test.That(t, merged.HasColors(), test.ShouldBeFalse)
}
