package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewPool_MinimumWorkers(t *testing.T) {
	for _, n := range []int{0, -1} {
		if p := NewPool(n); p.workers != 1 {
			t.Errorf("NewPool(%d).workers = %d, want 1", n, p.workers)
		}
	}
	if p := NewPool(5); p.workers != 5 {
		t.Errorf("NewPool(5).workers = %d", p.workers)
	}
}

func TestRun_AllTasksExecute(t *testing.T) {
	var executed int32
	tasks := make([]Task, 20)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) error {
			atomic.AddInt32(&executed, 1)
			return nil
		}
	}

	errs := NewPool(4).Run(context.Background(), tasks)

	if got := atomic.LoadInt32(&executed); got != 20 {
		t.Errorf("executed = %d, want 20", got)
	}
	for i, err := range errs {
		if err != nil {
			t.Errorf("task %d: %v", i, err)
		}
	}
}

func TestRun_ErrorsAlignWithTasks(t *testing.T) {
	boom := errors.New("boom")
	tasks := []Task{
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error { return boom },
		func(ctx context.Context) error { return nil },
	}

	errs := NewPool(2).Run(context.Background(), tasks)

	if errs[0] != nil || errs[2] != nil {
		t.Errorf("unexpected errors: %v", errs)
	}
	if !errors.Is(errs[1], boom) {
		t.Errorf("errs[1] = %v, want boom", errs[1])
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var started int32
	tasks := make([]Task, 50)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) error {
			atomic.AddInt32(&started, 1)
			select {
			case <-time.After(50 * time.Millisecond):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	errs := NewPool(2).Run(ctx, tasks)

	cancelled := 0
	for _, err := range errs {
		if errors.Is(err, context.Canceled) {
			cancelled++
		}
	}
	if cancelled == 0 {
		t.Error("expected some tasks to report cancellation")
	}
	if atomic.LoadInt32(&started) == 50 {
		t.Error("expected cancellation to stop the feed before all tasks started")
	}
}
