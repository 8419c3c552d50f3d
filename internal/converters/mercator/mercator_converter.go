package mercator

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"

	"github.com/orbitview/pointlod/internal/converters"
)

const (
	SridWGS84       = 4326
	SridWebMercator = 3857

	// half the equatorial circumference of the WGS84 ellipsoid, in meters;
	// makes projected x span [-20037508.34, 20037508.34] like EPSG 3857
	maxLambda = 20037508.342789244
)

// A CoordinateConverter between geodetic lon/lat degrees (EPSG 4326) and
// Web Mercator meters (EPSG 3857). Elevation passes through untouched.
type MercatorConverter struct {
	projection s2.Projection
}

func NewMercatorConverter() converters.CoordinateConverter {
	return &MercatorConverter{
		projection: s2.NewMercatorProjection(maxLambda),
	}
}

func (c *MercatorConverter) ConvertCoordinateSrid(sourceSrid int, targetSrid int, coord r3.Vector) (r3.Vector, error) {
	if sourceSrid == targetSrid {
		return coord, nil
	}

	switch {
	case sourceSrid == SridWGS84 && targetSrid == SridWebMercator:
		p := c.projection.FromLatLng(s2.LatLngFromDegrees(coord.Y, coord.X))
		return r3.Vector{X: p.X, Y: p.Y, Z: coord.Z}, nil
	case sourceSrid == SridWebMercator && targetSrid == SridWGS84:
		ll := c.projection.ToLatLng(r2.Point{X: coord.X, Y: coord.Y})
		return r3.Vector{X: ll.Lng.Degrees(), Y: ll.Lat.Degrees(), Z: coord.Z}, nil
	}

	return r3.Vector{}, fmt.Errorf("unsupported srid conversion %d -> %d", sourceSrid, targetSrid)
}

func (c *MercatorConverter) Cleanup() {}
