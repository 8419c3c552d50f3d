package data

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Contains the data of a point cloud as flat parallel buffers: three
// position components per point plus the optional per point attributes
// carried by typical LIDAR sources, namely RGB color, intensity and
// classification. An attribute buffer is either empty or sized to the
// full point count.
type PointCloud struct {
	Positions       []float64 // 3 entries per point, required
	Colors          []uint8   // 3 entries per point, optional
	Intensities     []float64 // 1 entry per point, optional
	Classifications []uint8   // 1 entry per point, optional
}

// Returns the number of points held by the cloud
func (pc *PointCloud) NumPoints() int {
	return len(pc.Positions) / 3
}

// Returns the position of the i-th point
func (pc *PointCloud) Position(i int) r3.Vector {
	return r3.Vector{
		X: pc.Positions[3*i],
		Y: pc.Positions[3*i+1],
		Z: pc.Positions[3*i+2],
	}
}

func (pc *PointCloud) HasColors() bool {
	return len(pc.Colors) > 0
}

func (pc *PointCloud) HasIntensities() bool {
	return len(pc.Intensities) > 0
}

func (pc *PointCloud) HasClassifications() bool {
	return len(pc.Classifications) > 0
}

// Checks that the position buffer has triplet stride and that every
// attribute buffer present agrees with the point count. Meant to be called
// at the ingestion boundary: the tree itself does not re-validate.
func (pc *PointCloud) Validate() error {
	if len(pc.Positions)%3 != 0 {
		return fmt.Errorf("position buffer length %d is not a multiple of three", len(pc.Positions))
	}
	n := pc.NumPoints()
	if pc.HasColors() && len(pc.Colors) != 3*n {
		return fmt.Errorf("color buffer holds %d entries, expected %d", len(pc.Colors), 3*n)
	}
	if pc.HasIntensities() && len(pc.Intensities) != n {
		return fmt.Errorf("intensity buffer holds %d entries, expected %d", len(pc.Intensities), n)
	}
	if pc.HasClassifications() && len(pc.Classifications) != n {
		return fmt.Errorf("classification buffer holds %d entries, expected %d", len(pc.Classifications), n)
	}
	return nil
}

// Copies the i-th point of src onto the end of the cloud. Attributes are
// copied only for the buffers src actually carries.
func (pc *PointCloud) AppendPointFrom(src *PointCloud, i int) {
	pc.Positions = append(pc.Positions, src.Positions[3*i], src.Positions[3*i+1], src.Positions[3*i+2])
	if src.HasColors() {
		pc.Colors = append(pc.Colors, src.Colors[3*i], src.Colors[3*i+1], src.Colors[3*i+2])
	}
	if src.HasIntensities() {
		pc.Intensities = append(pc.Intensities, src.Intensities[i])
	}
	if src.HasClassifications() {
		pc.Classifications = append(pc.Classifications, src.Classifications[i])
	}
}
