package io

import (
	"sync"

	"github.com/orbitview/pointlod/internal/octree"
)

type Producer interface {
	Produce(work chan *WorkUnit, wg *sync.WaitGroup, nodes []*octree.Node)
}

type Consumer interface {
	Consume(workchan chan *WorkUnit, errchan chan error, waitGroup *sync.WaitGroup)
}
