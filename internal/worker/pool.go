// Package worker replays independent command scripts on a pool of goroutines.
package worker

import (
	"sync"
	"sync/atomic"
)

// Job is one script to replay in a session of its own.
type Job struct {
	Index  int    // position on the command line, used to restore order
	Name   string // script name for diagnostics
	Script string
}

// Result is what replaying a Job produced.
type Result struct {
	Index     int
	Name      string
	SessionID string
	Payload   interface{} // rendered output; typed by the consumer
	Err       error
}

// ReplayFunc replays a single job.
type ReplayFunc func(job Job) Result

// Pool runs jobs on a fixed number of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	replay     ReplayFunc
	wg         sync.WaitGroup
	stopFlag   int32 // set once a job fails in strict mode
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the job and result channel capacity.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool that replays jobs with replay.
// Default: 1 worker, buffer size of 10.
func NewPool(replay ReplayFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		replay:     replay,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			continue // drain without replaying
		}
		p.results <- p.replay(job)
	}
}

// Submit queues a job. It blocks while the job buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Stop makes workers skip every job they have not started yet.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel and waits for the workers, then closes the
// result channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on, in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
