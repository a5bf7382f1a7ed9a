package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d", n, got, want)
		}
		pool.Close()
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var mu sync.Mutex
	seen := make(map[int]bool)

	const numTasks = 100
	work := make([]func(), numTasks)
	for i := range work {
		work[i] = func() {
			mu.Lock()
			seen[i] = true
			mu.Unlock()
		}
	}

	if err := pool.ExecuteAll(context.Background(), work); err != nil {
		t.Fatalf("ExecuteAll() error = %v", err)
	}
	if len(seen) != numTasks {
		t.Errorf("executed %d distinct tasks, want %d", len(seen), numTasks)
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if err := pool.ExecuteAll(context.Background(), nil); err != nil {
		t.Errorf("ExecuteAll(nil) error = %v", err)
	}
	if err := pool.ExecuteAll(context.Background(), []func(){}); err != nil {
		t.Errorf("ExecuteAll(empty) error = %v", err)
	}
}

func TestWorkerPool_ExecuteAll_MoreTasksThanQueue(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 500)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	if err := pool.ExecuteAll(context.Background(), work); err != nil {
		t.Fatalf("ExecuteAll() error = %v", err)
	}
	if counter.Load() != 500 {
		t.Errorf("counter = %d, want 500", counter.Load())
	}
}

func TestWorkerPool_ExecuteAll_Cancelled(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var counter atomic.Int64
	work := make([]func(), 50)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	err := pool.ExecuteAll(ctx, work)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ExecuteAll() error = %v, want context.Canceled", err)
	}
	if counter.Load() != 0 {
		t.Errorf("%d tasks ran after cancellation", counter.Load())
	}
}

func TestWorkerPool_ExecuteAll_CancelMidway(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var counter atomic.Int64
	work := make([]func(), 20)
	for i := range work {
		work[i] = func() {
			if counter.Add(1) == 5 {
				cancel()
			}
		}
	}

	done := make(chan error, 1)
	go func() { done <- pool.ExecuteAll(ctx, work) }()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("ExecuteAll() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ExecuteAll did not return after cancellation")
	}
	if n := counter.Load(); n >= 20 {
		t.Errorf("all %d tasks ran despite cancellation", n)
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	var executed atomic.Bool
	_ = pool.ExecuteAll(context.Background(), []func(){func() { executed.Store(true) }})
	if executed.Load() {
		t.Error("pool ran work after a second Close")
	}
}

func TestWorkerPool_AfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	var executed atomic.Bool
	if err := pool.ExecuteAll(context.Background(), []func(){func() { executed.Store(true) }}); err != nil {
		t.Errorf("ExecuteAll() on closed pool error = %v", err)
	}

	if executed.Load() {
		t.Error("closed pool ran work")
	}
}

func TestWorkerPool_ConcurrentExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work := make([]func(), 25)
			for i := range work {
				work[i] = func() { counter.Add(1) }
			}
			if err := pool.ExecuteAll(context.Background(), work); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if counter.Load() != 200 {
		t.Errorf("counter = %d, want 200", counter.Load())
	}
}

func BenchmarkWorkerPool_ExecuteAll(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	work := make([]func(), 64)
	for i := range work {
		work[i] = func() {}
	}

	ctx := context.Background()
	for b.Loop() {
		_ = pool.ExecuteAll(ctx, work)
	}
}
