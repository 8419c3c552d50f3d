package pkg

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang/glog"

	"github.com/orbitview/pointlod/internal/data"
	"github.com/orbitview/pointlod/internal/io"
	"github.com/orbitview/pointlod/internal/octree"
	"github.com/orbitview/pointlod/internal/pipeline"
	"github.com/orbitview/pointlod/pkg/algorithm_manager"
)

// A pipeline entry point driven by command line options
type Runner interface {
	Run(opts *pipeline.Options) error
}

// Reads the given input file into flat point buffers, dispatching on its
// extension, and applies the ingestion boundary corrections: elevation
// offset and, when a source srid is configured, reprojection.
func loadCloud(filePath string, opts *pipeline.Options, manager algorithm_manager.AlgorithmManager) (*data.PointCloud, error) {
	var cloud *data.PointCloud
	var err error

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".las":
		cloud, err = io.ReadLasFile(filePath, opts.EightBitColors)
	case ".xyz", ".txt":
		cloud, err = io.ReadXYZFile(filePath)
	default:
		return nil, fmt.Errorf("do not know how to read file %q", filePath)
	}
	if err != nil {
		return nil, err
	}

	glog.Infof("loaded %d points from %s", cloud.NumPoints(), filepath.Base(filePath))

	var converter = manager.GetCoordinateConverterAlgorithm()
	if opts.Srid == 0 {
		converter = nil
	}
	if err := io.ReprojectCloud(cloud, opts.Srid, opts.TargetSrid, converter, manager.GetElevationCorrectorAlgorithm()); err != nil {
		return nil, err
	}

	return cloud, nil
}

// Builds the octree over the given cloud and logs its shape
func buildTree(cloud *data.PointCloud, manager algorithm_manager.AlgorithmManager) (*octree.Tree, error) {
	glog.Infoln("> building data structure...")
	tree, err := octree.Build(cloud, manager.GetBuildOptions())
	if err != nil {
		return nil, err
	}

	stats := tree.Stats()
	glog.Infof("tree stats: nodes:[%d] leaves:[%d] points:[%d] max_depth:[%d]",
		stats.Nodes, stats.Leaves, stats.Points, stats.MaxDepth)

	return tree, nil
}

func getFilenameWithoutExtension(filePath string) string {
	nameWext := filepath.Base(filePath)
	extension := filepath.Ext(nameWext)
	return nameWext[0 : len(nameWext)-len(extension)]
}
