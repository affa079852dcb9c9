package ioglue

import "sync"

// Task is one satellite's unit of propagation work: independent of every
// other task, owning its own state, ephemeris buffer, and AuxParam copy
// (spec §5 "one satellite = one task").
type Task func() error

// Pool runs a fixed number of tasks concurrently and collects their
// errors. There is no cancellation or timeout semantics (spec §5): each
// task runs to completion.
type Pool struct {
	concurrency int
}

// NewPool returns a Pool that runs up to concurrency tasks at once.
func NewPool(concurrency int) *Pool {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Pool{concurrency: concurrency}
}

// Run executes every task, fanning out across the pool's concurrency
// limit, waits for all of them, and returns the error of the earliest task
// in the slice that failed (if any). Output
// writes are per-satellite and distinct, so no caller-side locking is
// required around them (spec §5).
func (p *Pool) Run(tasks []Task) error {
	sem := make(chan struct{}, p.concurrency)
	errs := make([]error, len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, task Task) {
			defer wg.Done()
			defer func() { <-sem }()
			errs[i] = task()
		}(i, task)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
