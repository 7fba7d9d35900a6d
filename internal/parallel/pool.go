// Package parallel runs closures on a fixed set of worker goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Pool runs submitted work on its workers. With a single worker, work runs
// inline on the submitting goroutine.
type Pool struct {
	wg      sync.WaitGroup
	work    chan func()
	close   func()
	workers int
}

// Start launches a pool. A worker count below 1 means GOMAXPROCS.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{workers: numWorkers, close: func() {}}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.work {
				f()
			}
		})
	}
	pool.close = sync.OnceFunc(func() { close(pool.work) })

	return pool
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// Do queues f, blocking while every worker is busy and the queue is full.
// Do must not be called after Wait.
func (p *Pool) Do(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait stops accepting work and blocks until everything queued has run.
func (p *Pool) Wait() {
	p.close()
	p.wg.Wait()
}
