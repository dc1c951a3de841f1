package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -3} {
		pool := NewWorkerPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, got, want)
		}
		pool.Close()
	}
}

// =============================================================================
// ExecuteAll Tests
// =============================================================================

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	tasks := make([]func(), 100)
	for i := range tasks {
		tasks[i] = func() { counter.Add(1) }
	}

	pool.ExecuteAll(tasks)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_ExecuteAll_EachTaskOnce(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	hits := make([]atomic.Int32, 50)
	tasks := make([]func(), len(hits))
	for i := range tasks {
		tasks[i] = func() { hits[i].Add(1) }
	}

	pool.ExecuteAll(tasks)

	for i := range hits {
		if n := hits[i].Load(); n != 1 {
			t.Errorf("task %d ran %d times, want 1", i, n)
		}
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Should not panic or block.
	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
}

func TestWorkerPool_ExecuteAll_AfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	var counter atomic.Int64
	tasks := []func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	}
	pool.ExecuteAll(tasks)

	if counter.Load() != 2 {
		t.Errorf("counter = %d, want 2 (closed pool runs inline)", counter.Load())
	}
}

func TestWorkerPool_CloseDuringExecuteAll(t *testing.T) {
	for range 20 {
		pool := NewWorkerPool(2)

		var counter atomic.Int64
		tasks := make([]func(), 500)
		for i := range tasks {
			tasks[i] = func() { counter.Add(1) }
		}

		done := make(chan struct{})
		go func() {
			pool.ExecuteAll(tasks)
			close(done)
		}()
		pool.Close()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("ExecuteAll did not return after Close")
		}
		if counter.Load() != 500 {
			t.Fatalf("counter = %d, want 500", counter.Load())
		}
	}
}

func TestWorkerPool_ExecuteAll_Concurrent(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tasks := make([]func(), 25)
			for i := range tasks {
				tasks[i] = func() { counter.Add(1) }
			}
			pool.ExecuteAll(tasks)
		}()
	}
	wg.Wait()

	if counter.Load() != 200 {
		t.Errorf("counter = %d, want 200", counter.Load())
	}
}

func TestWorkerPool_WorkStealing(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Every slow task lands on worker 0's queue; the others must steal to
	// finish in time.
	tasks := make([]func(), 16)
	for i := range tasks {
		if i%4 == 0 {
			tasks[i] = func() { time.Sleep(20 * time.Millisecond) }
		} else {
			tasks[i] = func() {}
		}
	}

	start := time.Now()
	pool.ExecuteAll(tasks)
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("ExecuteAll took %v", elapsed)
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool should not be running after Close")
	}
}

func TestWorkerPool_NoGoroutineLeak(t *testing.T) {
	before := runtime.NumGoroutine()

	for range 10 {
		pool := NewWorkerPool(4)
		pool.ExecuteAll([]func(){func() {}})
		pool.Close()
	}

	// Give the scheduler a moment to reap exited goroutines.
	time.Sleep(50 * time.Millisecond)

	if after := runtime.NumGoroutine(); after > before+2 {
		t.Errorf("goroutines: before=%d after=%d", before, after)
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkWorkerPool_ExecuteAll(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	tasks := make([]func(), 64)
	for i := range tasks {
		tasks[i] = func() {}
	}

	b.ReportAllocs()
	for b.Loop() {
		pool.ExecuteAll(tasks)
	}
}
