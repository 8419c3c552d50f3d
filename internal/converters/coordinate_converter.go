package converters

import (
	"github.com/golang/geo/r3"
)

// Converts point coordinates between spatial reference systems at the cloud
// ingestion boundary. The tree itself is agnostic to the reference system:
// it indexes whatever cartesian coordinates it is handed.
type CoordinateConverter interface {
	ConvertCoordinateSrid(sourceSrid int, targetSrid int, coord r3.Vector) (r3.Vector, error)
	Cleanup()
}

// Corrects the elevation of points during ingestion
type ElevationCorrector interface {
	CorrectElevation(lon, lat, z float64) float64
}
