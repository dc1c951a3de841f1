// Package parallel runs the per-pixel phases of the pipeline on a fixed set
// of worker goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines that executes batches of tasks.
//
// Each worker owns a queue. A worker whose queue is empty steals from the
// others, so a batch of unevenly sized row bands still finishes together.
//
// Thread safety: WorkerPool is safe for concurrent use. Several goroutines
// may call ExecuteAll at the same time; their batches share the workers.
type WorkerPool struct {
	workers int

	// queues holds one queue per worker.
	queues []chan func()

	// done is closed by Close to stop the workers.
	done chan struct{}

	wg sync.WaitGroup

	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers. If workers
// is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case task := <-own:
			task()
			continue
		case <-p.done:
			p.drain(own)
			return
		default:
		}

		if task := p.steal(id); task != nil {
			task()
			continue
		}

		select {
		case task := <-own:
			task()
		case <-p.done:
			p.drain(own)
			return
		}
	}
}

// drain runs whatever is left in queue.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			task()
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case task := <-p.queues[(id+i)%p.workers]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll runs every task and returns once all of them finished.
//
// Tasks are dealt round-robin to the worker queues. On a closed pool, or
// when the pool closes while the batch is being queued, the remaining tasks
// run on the calling goroutine, so every task always runs exactly once.
func (p *WorkerPool) ExecuteAll(tasks []func()) {
	if len(tasks) == 0 {
		return
	}
	if !p.running.Load() {
		for _, task := range tasks {
			task()
		}
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(tasks))

	for i, task := range tasks {
		wrapped := func() {
			defer pending.Done()
			task()
		}

		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		}
	}

	// A send can win over a closed done channel after the receiving worker
	// already drained its queue and exited.
	select {
	case <-p.done:
		for _, q := range p.queues {
			p.drain(q)
		}
	default:
	}

	pending.Wait()
}

// Close stops the workers after the queued tasks ran. It is safe to call
// more than once.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still hands tasks to its workers.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
