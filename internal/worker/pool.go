// Package worker provides a bounded pool for per-item work within a
// batch.
package worker

import (
	"context"
	"sync"
)

// Job is one unit of work executed by the pool.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one job.
type Result interface {
	Err() error
}

// Pool runs jobs across a fixed number of goroutines. Keyword matching
// is embarrassingly parallel across items, so the pool imposes no
// ordering; callers that need order sort results afterwards.
type Pool struct {
	workers int
	jobs    chan Job
	results chan Result
	wg      sync.WaitGroup
}

// NewPool creates a pool with the given number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		jobs:    make(chan Job, workers*2),
		results: make(chan Result, workers*2),
	}
}

// Start launches the workers. They exit when the job channel is closed
// by Wait or when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					select {
					case p.results <- job.Execute(ctx):
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}
}

// Submit queues a job. It blocks when the queue is full and gives up on
// cancellation.
func (p *Pool) Submit(ctx context.Context, job Job) {
	select {
	case <-ctx.Done():
	case p.jobs <- job:
	}
}

// Wait closes the queue, waits for the workers to drain it, and returns
// every result.
func (p *Pool) Wait() []Result {
	close(p.jobs)
	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	var out []Result
	for r := range p.results {
		out = append(out, r)
	}
	return out
}
