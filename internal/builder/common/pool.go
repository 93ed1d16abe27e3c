package common

import (
	"context"
	"sync"
)

// WorkerPool runs a bounded number of goroutines over submitted jobs.
// The handler is called for every submitted job, including after the run
// context closes; it is responsible for observing cancellation itself.
type WorkerPool[T any] struct {
	handler     func(ctx context.Context, job T)
	workerCount int
	workersWg   *sync.WaitGroup
	jobs        chan T
}

// NewWorkerPool creates a new WorkerPool with the specified number of workers.
func NewWorkerPool[T any](handler func(ctx context.Context, job T), workerCount int) *WorkerPool[T] {
	if workerCount < 1 {
		workerCount = 1
	}

	return &WorkerPool[T]{
		handler:     handler,
		workerCount: workerCount,
		workersWg:   &sync.WaitGroup{},
		jobs:        make(chan T),
	}
}

// Start initializes the worker pool and starts processing jobs.
func (wp *WorkerPool[T]) Start(ctx context.Context) {
	for range wp.workerCount {
		wp.workersWg.Add(1)

		go func() {
			defer wp.workersWg.Done()

			for job := range wp.jobs {
				wp.handler(ctx, job)
			}
		}()
	}
}

// Submit adds a new job to the pool. Blocks until a worker is free to queue it.
func (wp *WorkerPool[T]) Submit(job T) {
	wp.jobs <- job
}

// Stop closes the job channel and waits for all workers to finish.
func (wp *WorkerPool[T]) Stop() {
	close(wp.jobs)
	wp.workersWg.Wait()
}
