package std_algorithm_manager

import (
	"github.com/orbitview/pointlod/internal/converters"
	"github.com/orbitview/pointlod/internal/converters/elevation/offset_elevation_corrector"
	"github.com/orbitview/pointlod/internal/converters/mercator"
	"github.com/orbitview/pointlod/internal/octree"
	"github.com/orbitview/pointlod/internal/pipeline"
	"github.com/orbitview/pointlod/pkg/algorithm_manager"
)

// Wires the concrete ingestion and construction algorithms chosen by the
// pipeline options
type StandardAlgorithmManager struct {
	options             *pipeline.Options
	coordinateConverter converters.CoordinateConverter
	elevationCorrector  converters.ElevationCorrector
}

func NewAlgorithmManager(opts *pipeline.Options) algorithm_manager.AlgorithmManager {
	return &StandardAlgorithmManager{
		options:             opts,
		coordinateConverter: mercator.NewMercatorConverter(),
		elevationCorrector:  offset_elevation_corrector.NewOffsetElevationCorrector(opts.ZOffset),
	}
}

func (am *StandardAlgorithmManager) GetCoordinateConverterAlgorithm() converters.CoordinateConverter {
	return am.coordinateConverter
}

func (am *StandardAlgorithmManager) GetElevationCorrectorAlgorithm() converters.ElevationCorrector {
	return am.elevationCorrector
}

func (am *StandardAlgorithmManager) GetBuildOptions() octree.BuildOptions {
	return octree.BuildOptions{
		MaxPointsPerNode: am.options.MaxPointsPerNode,
		MaxDepth:         am.options.MaxDepth,
		MinNodeSize:      am.options.MinNodeSize,
		InitialSpacing:   am.options.InitialSpacing,
	}
}
