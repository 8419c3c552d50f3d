package io

import (
	"github.com/edaniels/lidario"

	"github.com/orbitview/pointlod/internal/data"
)

// Reads the given LAS file into flat point buffers. Colors are emitted only
// for point formats that carry RGB; LAS stores them with 16 bit depth unless
// eightBitColors says otherwise.
func ReadLasFile(filePath string, eightBitColors bool) (*data.PointCloud, error) {
	lf, err := lidario.NewLasFile(filePath, "r")
	if err != nil {
		return nil, err
	}
	defer func() { _ = lf.Close() }()

	numPoints := lf.Header.NumberPoints
	hasColors := lf.Header.PointFormatID == 2 || lf.Header.PointFormatID == 3

	cloud := &data.PointCloud{
		Positions:       make([]float64, 0, 3*numPoints),
		Intensities:     make([]float64, 0, numPoints),
		Classifications: make([]uint8, 0, numPoints),
	}
	if hasColors {
		cloud.Colors = make([]uint8, 0, 3*numPoints)
	}

	for i := 0; i < numPoints; i++ {
		p, err := lf.LasPoint(i)
		if err != nil {
			return nil, err
		}
		pointData := p.PointData()

		cloud.Positions = append(cloud.Positions, pointData.X, pointData.Y, pointData.Z)
		cloud.Intensities = append(cloud.Intensities, float64(pointData.Intensity))
		cloud.Classifications = append(cloud.Classifications, pointData.ClassBitField.Value)

		if hasColors && p.RgbData() != nil {
			rgb := p.RgbData()
			if eightBitColors {
				cloud.Colors = append(cloud.Colors, uint8(rgb.Red), uint8(rgb.Green), uint8(rgb.Blue))
			} else {
				cloud.Colors = append(cloud.Colors, uint8(rgb.Red/256), uint8(rgb.Green/256), uint8(rgb.Blue/256))
			}
		} else if hasColors {
			cloud.Colors = append(cloud.Colors, 0, 0, 0)
		}
	}

	if err := cloud.Validate(); err != nil {
		return nil, err
	}

	return cloud, nil
}
