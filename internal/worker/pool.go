package worker

import (
	"sync"
)

type task func()

// Pool is a fixed-size goroutine pool for fire-and-forget work.
type Pool struct {
	wg   sync.WaitGroup
	jobs chan task
}

func NewPool(n int) *Pool {
	p := &Pool{jobs: make(chan task, 1024)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

func (p *Pool) Submit(f task) { p.jobs <- f }

// Stop drains queued work and waits for the workers to exit.
func (p *Pool) Stop() { close(p.jobs); p.wg.Wait() }
