package octree

import (
	"github.com/orbitview/pointlod/internal/data"
)

// Concatenates the point buffers of the given nodes into a single cloud
// suitable for one draw call. Concatenation follows the input order exactly.
// An optional attribute array is allocated as soon as at least one node
// carries it; nodes lacking the attribute contribute zero filled gaps.
func MergeNodeData(nodes []*Node) *data.PointCloud {
	total := 0
	hasColors, hasIntensities, hasClassifications := false, false, false
	for _, n := range nodes {
		total += n.numPoints
		hasColors = hasColors || n.points.HasColors()
		hasIntensities = hasIntensities || n.points.HasIntensities()
		hasClassifications = hasClassifications || n.points.HasClassifications()
	}

	merged := &data.PointCloud{
		Positions: make([]float64, 3*total),
	}
	if hasColors {
		merged.Colors = make([]uint8, 3*total)
	}
	if hasIntensities {
		merged.Intensities = make([]float64, total)
	}
	if hasClassifications {
		merged.Classifications = make([]uint8, total)
	}

	offset := 0
	for _, n := range nodes {
		copy(merged.Positions[3*offset:], n.points.Positions)
		if hasColors {
			copy(merged.Colors[3*offset:], n.points.Colors)
		}
		if hasIntensities {
			copy(merged.Intensities[offset:], n.points.Intensities)
		}
		if hasClassifications {
			copy(merged.Classifications[offset:], n.points.Classifications)
		}
		offset += n.numPoints
	}

	return merged
}
