// Package worker provides the bounded task pool behind batch resolution.
package worker

import (
	"context"
	"sync"
)

// Task is one unit of batch work. Tasks report failure through their return
// value; a failed task never stops the pool.
type Task func(ctx context.Context) error

// Pool runs tasks with bounded concurrency and collects their errors in
// submission order.
type Pool struct {
	workers int

	mu   sync.Mutex
	errs []error
}

// NewPool creates a pool with the given worker count (minimum 1).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Run executes all tasks and returns one error slot per task, aligned with
// the input order. It stops early when ctx is cancelled; unstarted tasks
// report the context error.
func (p *Pool) Run(ctx context.Context, tasks []Task) []error {
	p.mu.Lock()
	p.errs = make([]error, len(tasks))
	p.mu.Unlock()

	queue := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				p.record(idx, tasks[idx](ctx))
			}
		}()
	}

feed:
	for i := range tasks {
		select {
		case <-ctx.Done():
			for j := i; j < len(tasks); j++ {
				p.record(j, ctx.Err())
			}
			break feed
		case queue <- i:
		}
	}
	close(queue)
	wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errs
}

func (p *Pool) record(idx int, err error) {
	p.mu.Lock()
	p.errs[idx] = err
	p.mu.Unlock()
}
