// Package parallel runs batches of independent jobs on a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed from one shared queue.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queue   chan func()
	wg      sync.WaitGroup
	running atomic.Bool
	closeMu sync.RWMutex
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		queue:   make(chan func(), max(workers*4, 8)),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.queue {
		job()
	}
}

// ForEach calls fn(i) for every i in [0, n) and waits for all calls to
// return. Calls run concurrently and in no particular order. After Close,
// ForEach runs the calls on the calling goroutine.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	p.closeMu.RLock()
	defer p.closeMu.RUnlock()
	if !p.running.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var done sync.WaitGroup
	done.Add(n)
	for i := range n {
		p.queue <- func() {
			defer done.Done()
			fn(i)
		}
	}
	done.Wait()
}

// Close waits for queued jobs and stops the workers.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.queue)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
