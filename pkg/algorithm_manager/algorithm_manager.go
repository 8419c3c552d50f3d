package algorithm_manager

import (
	"github.com/orbitview/pointlod/internal/converters"
	"github.com/orbitview/pointlod/internal/octree"
)

type AlgorithmManager interface {
	GetCoordinateConverterAlgorithm() converters.CoordinateConverter
	GetElevationCorrectorAlgorithm() converters.ElevationCorrector
	GetBuildOptions() octree.BuildOptions
}
