package pkg

import (
	"strconv"

	"github.com/golang/glog"

	"github.com/orbitview/pointlod/internal/pipeline"
	"github.com/orbitview/pointlod/pkg/algorithm_manager"
	"github.com/orbitview/pointlod/tools"
)

// Builds the spatial index for every input file and reports its shape.
// Useful to tune construction options before running LOD selection.
type Indexer struct {
	fileFinder       tools.FileFinder
	algorithmManager algorithm_manager.AlgorithmManager
}

func NewIndexer(fileFinder tools.FileFinder, algorithmManager algorithm_manager.AlgorithmManager) Runner {
	return &Indexer{
		fileFinder:       fileFinder,
		algorithmManager: algorithmManager,
	}
}

func (ix *Indexer) Run(opts *pipeline.Options) error {
	glog.Infoln("Preparing list of files to process...")

	files := ix.fileFinder.GetFilesToProcess(opts)
	for i, filePath := range files {
		glog.Infof("input file %d [%s]", i+1, filePath)
	}

	for i, filePath := range files {
		glog.Infoln("Processing file " + strconv.Itoa(i+1) + "/" + strconv.Itoa(len(files)))

		cloud, err := loadCloud(filePath, opts, ix.algorithmManager)
		if err != nil {
			return err
		}

		if _, err := buildTree(cloud, ix.algorithmManager); err != nil {
			return err
		}
	}

	ix.algorithmManager.GetCoordinateConverterAlgorithm().Cleanup()

	return nil
}
