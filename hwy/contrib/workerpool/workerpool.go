// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for spreading pooling
// work across cores. A Pool is created once and reused by every Pool2D call,
// so a call pays neither goroutine spawn nor channel allocation.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, layer := range layers {
//	    pool.ParallelForAtomicBatched(rows, 4, func(start, end int) {
//	        poolRows(start, end)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and live until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu orders Close after every in-flight hand-off to workC.
	mu     sync.RWMutex
	closed bool
}

// workItem is one worker's share of a parallel loop.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. Calling Close more
// than once is safe, and so is calling it while loops are running: loops
// already handed to the workers finish there, later ones run on the
// caller's goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// run hands fn to workers workers and waits for all of them. fn must keep
// claiming work until none is left, so on a closed pool a single call on
// the caller's goroutine does the whole loop.
func (p *Pool) run(workers int, fn func()) {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn()
		return
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{fn: fn, barrier: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ParallelForAtomicBatched calls fn(start, end) over [0, n) in ranges of
// batchSize indices claimed atomically by the workers. Pool2D uses it with
// output rows as indices: rows at the padded border cost more than interior
// rows, and claiming small batches keeps the workers balanced.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int32
	p.run(workers, func() {
		for {
			start := int(nextBatch.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}
