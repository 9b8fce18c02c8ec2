package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

type Job func() error

type Stats struct {
	Processed uint64
	Failed    uint64
}

func (s Stats) Total() uint64 {
	return s.Processed + s.Failed
}

// Pool runs jobs on a fixed number of workers. With a single worker, jobs
// run inline in the caller's goroutine.
type Pool struct {
	wg        sync.WaitGroup
	work      chan Job
	close     func()
	processed atomic.Uint64
	failed    atomic.Uint64
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{close: func() {}}
	if numWorkers > 1 {
		pool.work = make(chan Job, numWorkers)
		for range numWorkers {
			pool.wg.Go(func() {
				for job := range pool.work {
					pool.run(job)
				}
			})
		}
		pool.close = sync.OnceFunc(func() { close(pool.work) })
	}

	return pool
}

func (p *Pool) run(job Job) {
	if err := job(); err != nil {
		p.failed.Add(1)
		return
	}
	p.processed.Add(1)
}

// Do queues job, blocking while all workers are busy.
func (p *Pool) Do(job Job) {
	if p.work == nil {
		p.run(job)
		return
	}
	p.work <- job
}

// Wait stops accepting jobs and blocks until queued ones have finished.
func (p *Pool) Wait() Stats {
	p.close()
	p.wg.Wait()

	return Stats{
		Processed: p.processed.Load(),
		Failed:    p.failed.Load(),
	}
}
