package main

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// workerPool is a fixed-size pool of persistent goroutines. Both parallel
// regions of a run (decoding the sweep, scoring the candidates) push their
// work through the same kind of pool instead of spawning one goroutine per
// unit, which keeps the number of runnable goroutines bounded by the worker
// count for the whole batch.
type workerPool struct {
	workers   int
	workC     chan poolTask
	closeOnce sync.Once
	closed    atomic.Bool
}

type poolTask struct {
	fn      func()
	barrier *sync.WaitGroup
}

// newWorkerPool spawns the workers immediately; they persist until Close.
// size <= 0 means one worker per logical CPU.
func newWorkerPool(size int) *workerPool {
	if size <= 0 {
		size = runtime.NumCPU()
	}

	p := &workerPool{
		workers: size,
		workC:   make(chan poolTask, size),
	}
	for i := 0; i < size; i++ {
		go p.run()
	}
	return p
}

func (p *workerPool) run() {
	for task := range p.workC {
		task.fn()
		task.barrier.Done()
	}
}

func (p *workerPool) Size() int {
	return p.workers
}

// Close shuts the pool down; pending work still completes. Safe to call
// more than once.
func (p *workerPool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ForEach runs fn(i) for every i in [0, n), distributing indices over the
// workers with an atomic cursor. Work stealing keeps the load even when the
// cost per unit varies, which it does badly across a sweep (a k=0 decode is
// a copy, a k=100 decode is a hundred full passes). Blocks until all units
// are done.
func (p *workerPool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.workers, n)
	if workers == 1 || p.closed.Load() {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var cursor atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		p.workC <- poolTask{
			fn: func() {
				for {
					i := int(cursor.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
