package io

import (
	"github.com/orbitview/pointlod/internal/octree"
	"github.com/orbitview/pointlod/internal/pipeline"
)

// Contains the minimal data needed to export one selected node, i.e. a
// single per node output file
type WorkUnit struct {
	Node     *octree.Node
	Index    int // position of the node in the selection order
	BasePath string
	Opts     *pipeline.Options
}
