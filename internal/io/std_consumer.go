package io

import (
	"fmt"
	"path"
	"sync"
)

type StandardConsumer struct{}

func NewStandardConsumer() *StandardConsumer {
	return &StandardConsumer{}
}

// Continually consumes WorkUnits submitted to the work channel, writing one
// XYZ file per selected node. Works until the channel is closed by the
// producer or an error is raised; in this last case the error is submitted
// to the error channel before quitting.
func (c *StandardConsumer) Consume(workchan chan *WorkUnit, errchan chan error, waitGroup *sync.WaitGroup) {
	for {
		work, ok := <-workchan
		if !ok {
			// channel was closed by producer, quit infinite loop
			break
		}

		if err := c.doWork(work); err != nil {
			errchan <- err
			break
		}
	}

	waitGroup.Done()
}

func (c *StandardConsumer) doWork(workUnit *WorkUnit) error {
	precision := DefaultXYZPrecision
	if workUnit.Opts != nil && workUnit.Opts.LODOptions != nil {
		precision = workUnit.Opts.LODOptions.XYZPrecision
	}
	filePath := path.Join(workUnit.BasePath, fmt.Sprintf("node_%d.xyz", workUnit.Index))
	return WriteXYZFile(filePath, workUnit.Node.Points(), precision)
}
