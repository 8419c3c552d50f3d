package geometry

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestNewBoundingBoxFromPositions(t *testing.T) {
	_, err := NewBoundingBoxFromPositions(nil)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewBoundingBoxFromPositions([]float64{1, 2})
	test.That(t, err, test.ShouldNotBeNil)

	box, err := NewBoundingBoxFromPositions([]float64{
		1, 2, 3,
		-4, 8, 0,
		5, -6, 7,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, box.Xmin, test.ShouldEqual, -4.0)
	test.That(t, box.Xmax, test.ShouldEqual, 5.0)
	test.That(t, box.Ymin, test.ShouldEqual, -6.0)
	test.That(t, box.Ymax, test.ShouldEqual, 8.0)
	test.That(t, box.Zmin, test.ShouldEqual, 0.0)
	test.That(t, box.Zmax, test.ShouldEqual, 7.0)
	test.That(t, box.Xmid, test.ShouldAlmostEqual, 0.5)
	test.That(t, box.Center(), test.ShouldResemble, r3.Vector{X: 0.5, Y: 1, Z: 3.5})
	test.That(t, box.Extent(), test.ShouldResemble, r3.Vector{X: 9, Y: 14, Z: 7})
}

func TestNewBoundingBoxFromPositionsIgnoresNonFinite(t *testing.T) {
	box, err := NewBoundingBoxFromPositions([]float64{
		0, 0, 0,
		math.NaN(), 50, 50,
		50, math.Inf(1), 50,
		1, 2, 3,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, box.Xmax, test.ShouldEqual, 1.0)
	test.That(t, box.Ymax, test.ShouldEqual, 2.0)
	test.That(t, box.Zmax, test.ShouldEqual, 3.0)

	_, err = NewBoundingBoxFromPositions([]float64{math.NaN(), 0, 0})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestBoundingBoxContains(t *testing.T) {
	box := NewBoundingBoxFromCenter(r3.Vector{X: 1, Y: 1, Z: 1}, 1)

	test.That(t, box.Contains(r3.Vector{X: 1, Y: 1, Z: 1}), test.ShouldBeTrue)
	test.That(t, box.Contains(r3.Vector{X: 0, Y: 0, Z: 0}), test.ShouldBeTrue)
	test.That(t, box.Contains(r3.Vector{X: 2, Y: 2, Z: 2}), test.ShouldBeTrue)
	test.That(t, box.Contains(r3.Vector{X: 2.001, Y: 1, Z: 1}), test.ShouldBeFalse)
	test.That(t, box.Contains(r3.Vector{X: 1, Y: -0.5, Z: 1}), test.ShouldBeFalse)
}

func TestNewBoundingBoxFromParent(t *testing.T) {
	parent := NewBoundingBox(0, 2, 0, 2, 0, 2)

	low := NewBoundingBoxFromParent(parent, 0)
	test.That(t, low.Xmax, test.ShouldEqual, 1.0)
	test.That(t, low.Ymax, test.ShouldEqual, 1.0)
	test.That(t, low.Zmax, test.ShouldEqual, 1.0)

	high := NewBoundingBoxFromParent(parent, 7)
	test.That(t, high.Xmin, test.ShouldEqual, 1.0)
	test.That(t, high.Ymin, test.ShouldEqual, 1.0)
	test.That(t, high.Zmin, test.ShouldEqual, 1.0)

	xOnly := NewBoundingBoxFromParent(parent, 1)
	test.That(t, xOnly.Xmin, test.ShouldEqual, 1.0)
	test.That(t, xOnly.Ymax, test.ShouldEqual, 1.0)
	test.That(t, xOnly.Zmax, test.ShouldEqual, 1.0)

	// the eight octants tile the parent box
	for octant := uint8(0); octant < 8; octant++ {
		child := NewBoundingBoxFromParent(parent, octant)
		test.That(t, child.Xmax-child.Xmin, test.ShouldAlmostEqual, 1)
		test.That(t, child.Ymax-child.Ymin, test.ShouldAlmostEqual, 1)
		test.That(t, child.Zmax-child.Zmin, test.ShouldAlmostEqual, 1)
		test.That(t, parent.Contains(child.Center()), test.ShouldBeTrue)
	}
}
