package pkg

import (
	"errors"
	"path"
	"runtime"
	"strconv"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/golang/glog"

	"github.com/orbitview/pointlod/internal/io"
	"github.com/orbitview/pointlod/internal/lod"
	"github.com/orbitview/pointlod/internal/octree"
	"github.com/orbitview/pointlod/internal/pipeline"
	"github.com/orbitview/pointlod/pkg/algorithm_manager"
	"github.com/orbitview/pointlod/tools"
)

// Runs the full LOD pipeline for every input file: ingest, build the tree,
// select the node set visible from the configured camera under the point
// budget, then export the selection either as one merged XYZ file or as one
// file per node.
type LODRunner struct {
	fileFinder       tools.FileFinder
	algorithmManager algorithm_manager.AlgorithmManager
}

func NewLODRunner(fileFinder tools.FileFinder, algorithmManager algorithm_manager.AlgorithmManager) Runner {
	return &LODRunner{
		fileFinder:       fileFinder,
		algorithmManager: algorithmManager,
	}
}

func (lr *LODRunner) Run(opts *pipeline.Options) error {
	if opts.LODOptions == nil {
		return errors.New("lod options not set")
	}

	files := lr.fileFinder.GetFilesToProcess(opts)
	for i, filePath := range files {
		glog.Infoln("Processing file " + strconv.Itoa(i+1) + "/" + strconv.Itoa(len(files)))

		if err := lr.processFile(filePath, opts, len(files) > 1); err != nil {
			return err
		}
	}

	lr.algorithmManager.GetCoordinateConverterAlgorithm().Cleanup()

	return nil
}

func (lr *LODRunner) processFile(filePath string, opts *pipeline.Options, outputPerInput bool) error {
	cloud, err := loadCloud(filePath, opts, lr.algorithmManager)
	if err != nil {
		return err
	}

	tree, err := buildTree(cloud, lr.algorithmManager)
	if err != nil {
		return err
	}

	selected := lod.SelectNodes(tree.Root(), lr.selectOptions(opts))

	totalPoints := 0
	for _, node := range selected {
		totalPoints += node.NumPoints()
	}
	glog.Infof("selected %d nodes holding %d points", len(selected), totalPoints)

	lodOpts := opts.LODOptions
	if lodOpts.SplitNodes {
		outputFolder := lodOpts.Output
		if outputPerInput {
			outputFolder = path.Join(outputFolder, getFilenameWithoutExtension(filePath))
		}
		return lr.exportNodes(selected, outputFolder, opts)
	}

	outputFile := lodOpts.Output
	if outputPerInput {
		outputFile = path.Join(outputFile, getFilenameWithoutExtension(filePath)+"_lod.xyz")
	}
	merged := octree.MergeNodeData(selected)
	glog.Infof("writing %d merged points to %s", merged.NumPoints(), outputFile)
	return io.WriteXYZFile(outputFile, merged, lodOpts.XYZPrecision)
}

func (lr *LODRunner) selectOptions(opts *pipeline.Options) lod.SelectOptions {
	position := r3.Vector{X: opts.CameraX, Y: opts.CameraY, Z: opts.CameraZ}

	var camera lod.Camera
	if opts.NoCulling {
		camera = &lod.PositionCamera{Position: position}
	} else {
		camera = &lod.PerspectiveCamera{
			Position: position,
			Target:   r3.Vector{X: opts.TargetX, Y: opts.TargetY, Z: opts.TargetZ},
			FovY:     opts.FovY,
			Aspect:   opts.Aspect,
			Near:     opts.Near,
			Far:      opts.Far,
		}
	}

	return lod.SelectOptions{
		PointBudget:         opts.PointBudget,
		Camera:              camera,
		LODMultiplier:       opts.LODMultiplier,
		MinScreenSpaceError: opts.MinScreenSpaceError,
	}
}

// Writes one XYZ file per selected node through a producer/consumer worker
// pool, one consumer goroutine per CPU
func (lr *LODRunner) exportNodes(nodes []*octree.Node, outputFolder string, opts *pipeline.Options) error {
	if err := tools.CreateDirectoryIfDoesNotExist(outputFolder); err != nil {
		return err
	}

	numConsumers := runtime.NumCPU()
	workChannel := make(chan *io.WorkUnit, numConsumers*5)
	errorChannel := make(chan error, numConsumers)

	var waitGroup sync.WaitGroup

	waitGroup.Add(1)
	producer := io.NewStandardProducer(outputFolder, opts)
	go producer.Produce(workChannel, &waitGroup, nodes)

	for i := 0; i < numConsumers; i++ {
		waitGroup.Add(1)
		consumer := io.NewStandardConsumer()
		go consumer.Consume(workChannel, errorChannel, &waitGroup)
	}

	waitGroup.Wait()
	close(errorChannel)

	withErrors := false
	for err := range errorChannel {
		glog.Infoln(err)
		withErrors = true
	}
	if withErrors {
		return errors.New("errors raised during node export. Check console output for details")
	}

	return nil
}
