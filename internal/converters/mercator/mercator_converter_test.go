package mercator

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestConvertCoordinateSrid(t *testing.T) {
	c := NewMercatorConverter()

	// identity when the srids match
	coord := r3.Vector{X: 12, Y: 34, Z: 56}
	out, err := c.ConvertCoordinateSrid(SridWGS84, SridWGS84, coord)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldResemble, coord)

	// origin maps to origin
	out, err = c.ConvertCoordinateSrid(SridWGS84, SridWebMercator, r3.Vector{X: 0, Y: 0, Z: 5})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out.X, test.ShouldAlmostEqual, 0, 1e-6)
	test.That(t, out.Y, test.ShouldAlmostEqual, 0, 1e-6)
	test.That(t, out.Z, test.ShouldEqual, 5.0)

	// a quarter turn of longitude maps to a quarter of the equator
	out, err = c.ConvertCoordinateSrid(SridWGS84, SridWebMercator, r3.Vector{X: 90, Y: 0, Z: 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out.X, test.ShouldAlmostEqual, 10018754.171394622, 1)

	// roundtrip
	original := r3.Vector{X: 11.25, Y: 43.77, Z: 120}
	projected, err := c.ConvertCoordinateSrid(SridWGS84, SridWebMercator, original)
	test.That(t, err, test.ShouldBeNil)
	back, err := c.ConvertCoordinateSrid(SridWebMercator, SridWGS84, projected)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back.X, test.ShouldAlmostEqual, original.X, 1e-6)
	test.That(t, back.Y, test.ShouldAlmostEqual, original.Y, 1e-6)
	test.That(t, back.Z, test.ShouldEqual, original.Z)

	// unsupported pairs surface an error
	_, err = c.ConvertCoordinateSrid(SridWGS84, 32633, coord)
	test.That(t, err, test.ShouldNotBeNil)
}
