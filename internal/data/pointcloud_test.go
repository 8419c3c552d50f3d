package data

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestPointCloudAccessors(t *testing.T) {
	pc := &PointCloud{
		Positions:   []float64{1, 2, 3, 4, 5, 6},
		Intensities: []float64{10, 20},
	}

	test.That(t, pc.NumPoints(), test.ShouldEqual, 2)
	test.That(t, pc.Position(0), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, pc.Position(1), test.ShouldResemble, r3.Vector{X: 4, Y: 5, Z: 6})
	test.That(t, pc.HasColors(), test.ShouldBeFalse)
	test.That(t, pc.HasIntensities(), test.ShouldBeTrue)
	test.That(t, pc.HasClassifications(), test.ShouldBeFalse)
}

func TestPointCloudValidate(t *testing.T) {
	ok := &PointCloud{
		Positions:       []float64{1, 2, 3, 4, 5, 6},
		Colors:          []uint8{255, 0, 0, 0, 255, 0},
		Intensities:     []float64{1, 2},
		Classifications: []uint8{2, 6},
	}
	test.That(t, ok.Validate(), test.ShouldBeNil)

	test.That(t, (&PointCloud{Positions: []float64{1, 2}}).Validate(), test.ShouldNotBeNil)
	test.That(t, (&PointCloud{
		Positions: []float64{1, 2, 3},
		Colors:    []uint8{255},
	}).Validate(), test.ShouldNotBeNil)
	test.That(t, (&PointCloud{
		Positions:   []float64{1, 2, 3},
		Intensities: []float64{1, 2},
	}).Validate(), test.ShouldNotBeNil)
	test.That(t, (&PointCloud{
		Positions:       []float64{1, 2, 3},
		Classifications: []uint8{1, 2},
	}).Validate(), test.ShouldNotBeNil)
}

func TestAppendPointFrom(t *testing.T) {
	src := &PointCloud{
		Positions:       []float64{1, 2, 3, 4, 5, 6},
		Colors:          []uint8{255, 0, 0, 0, 255, 0},
		Intensities:     []float64{7, 8},
		Classifications: []uint8{2, 6},
	}

	dst := &PointCloud{}
	dst.AppendPointFrom(src, 1)
	test.That(t, dst.NumPoints(), test.ShouldEqual, 1)
	test.That(t, dst.Positions, test.ShouldResemble, []float64{4, 5, 6})
	test.That(t, dst.Colors, test.ShouldResemble, []uint8{0, 255, 0})
	test.That(t, dst.Intensities, test.ShouldResemble, []float64{8})
	test.That(t, dst.Classifications, test.ShouldResemble, []uint8{6})
	test.That(t, dst.Validate(), test.ShouldBeNil)

	// attributes absent from the source stay absent in the destination
	bare := &PointCloud{Positions: []float64{9, 9, 9}}
	dst2 := &PointCloud{}
	dst2.AppendPointFrom(bare, 0)
	test.That(t, dst2.HasColors(), test.ShouldBeFalse)
	test.That(t, dst2.HasIntensities(), test.ShouldBeFalse)
}
