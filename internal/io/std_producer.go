package io

import (
	"sync"

	"github.com/orbitview/pointlod/internal/octree"
	"github.com/orbitview/pointlod/internal/pipeline"
)

type StandardProducer struct {
	basePath string
	options  *pipeline.Options
}

func NewStandardProducer(basePath string, options *pipeline.Options) *StandardProducer {
	return &StandardProducer{
		basePath: basePath,
		options:  options,
	}
}

// Walks the selected node list and submits WorkUnits to the provided work
// channel, preserving selection order in the unit index. Closes the channel
// when all work is submitted.
func (p *StandardProducer) Produce(work chan *WorkUnit, wg *sync.WaitGroup, nodes []*octree.Node) {
	for i, node := range nodes {
		// selection only returns nodes owning points, but guard anyway
		if node.NumPoints() == 0 {
			continue
		}
		work <- &WorkUnit{
			Node:     node,
			Index:    i,
			BasePath: p.basePath,
			Opts:     p.options,
		}
	}
	close(work)
	wg.Done()
}
