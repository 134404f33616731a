package renderer

import (
	"runtime"
	"sync"
)

// RowTask represents a horizontal band of the framebuffer to render
type RowTask struct {
	MinY int // Inclusive
	MaxY int // Exclusive
}

// rowsPerTask is the band height per task. Small bands balance load when
// some image regions are much more expensive than others.
const rowsPerTask = 8

// WorkerPool renders a framebuffer in parallel. Each worker pulls row
// bands from a shared queue; bands are disjoint so workers never write
// the same pixel.
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// numWorkers <= 0 means one worker per CPU.
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		raytracer:  raytracer,
		numWorkers: numWorkers,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Render traces every pixel of fb in parallel and blocks until the frame
// is complete.
func (wp *WorkerPool) Render(fb *Framebuffer, sc Scene) {
	taskQueue := make(chan RowTask, fb.Height()/rowsPerTask+1)

	var wg sync.WaitGroup
	for i := 0; i < wp.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskQueue {
				wp.raytracer.renderRows(fb, sc, task.MinY, task.MaxY)
			}
		}()
	}

	for y := 0; y < fb.Height(); y += rowsPerTask {
		maxY := y + rowsPerTask
		if maxY > fb.Height() {
			maxY = fb.Height()
		}
		taskQueue <- RowTask{MinY: y, MaxY: maxY}
	}
	close(taskQueue)

	wg.Wait()
}
