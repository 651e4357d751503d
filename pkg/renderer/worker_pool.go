package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/shirou/gopsutil/v3/cpu"
)

// ErrWorkerFailed is returned when a sampling worker panics
var ErrWorkerFailed = errors.New("render worker failed")

// DefaultWorkerCount returns the number of logical cores
func DefaultWorkerCount() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// splitSamples divides the per-pixel sample budget among workers.
// The first total%workers workers take one extra sample, so the shares always sum to total.
func splitSamples(total, workers int) []int {
	shares := make([]int, workers)
	base, extra := total/workers, total%workers
	for i := range shares {
		shares[i] = base
		if i < extra {
			shares[i]++
		}
	}
	return shares
}

// WorkerPool runs one goroutine per worker and collects their failures
type WorkerPool struct {
	numWorkers int
	aborted    atomic.Bool
	wg         sync.WaitGroup
	errs       []error
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkerCount()
	}
	return &WorkerPool{
		numWorkers: numWorkers,
		errs:       make([]error, numWorkers),
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Aborted reports whether any worker has failed. Workers poll it to stop early.
func (wp *WorkerPool) Aborted() bool {
	return wp.aborted.Load()
}

// Run calls work once per worker ID concurrently and blocks until all return.
// A panic inside work is recovered, marks the pool aborted, and is reported as an error.
func (wp *WorkerPool) Run(work func(workerID int)) error {
	for id := 0; id < wp.numWorkers; id++ {
		wp.wg.Add(1)
		go wp.run(id, work)
	}
	wp.wg.Wait()

	// Report the lowest worker ID first so failures are stable across runs
	return errors.Join(wp.errs...)
}

func (wp *WorkerPool) run(id int, work func(workerID int)) {
	defer wp.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			wp.aborted.Store(true)
			wp.errs[id] = fmt.Errorf("%w: worker %d: %v", ErrWorkerFailed, id, r)
		}
	}()

	work(id)
}
