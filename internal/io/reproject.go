package io

import (
	"github.com/golang/geo/r3"

	"github.com/orbitview/pointlod/internal/converters"
	"github.com/orbitview/pointlod/internal/data"
)

// Reprojects every position of the cloud from sourceSrid to targetSrid in
// place, applying the elevation corrector before projection. A nil converter
// or matching srids leave coordinates untouched apart from the correction.
func ReprojectCloud(
	cloud *data.PointCloud,
	sourceSrid int,
	targetSrid int,
	converter converters.CoordinateConverter,
	corrector converters.ElevationCorrector,
) error {
	for i := 0; i < cloud.NumPoints(); i++ {
		coord := cloud.Position(i)
		if corrector != nil {
			coord.Z = corrector.CorrectElevation(coord.X, coord.Y, coord.Z)
		}
		if converter != nil && sourceSrid != targetSrid {
			converted, err := converter.ConvertCoordinateSrid(sourceSrid, targetSrid, coord)
			if err != nil {
				return err
			}
			coord = converted
		}
		setPosition(cloud, i, coord)
	}
	return nil
}

func setPosition(cloud *data.PointCloud, i int, p r3.Vector) {
	cloud.Positions[3*i] = p.X
	cloud.Positions[3*i+1] = p.Y
	cloud.Positions[3*i+2] = p.Z
}
