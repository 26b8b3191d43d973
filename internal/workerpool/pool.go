package workerpool

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrPoolFull   = errors.New("worker pool is full")
	ErrPoolClosed = errors.New("worker pool is closed")
)

type Job func(ctx context.Context) error

// Runner is what callers depend on; *Pool implements it.
type Runner interface {
	Do(ctx context.Context, job Job) error
}

type task struct {
	ctx  context.Context
	job  Job
	done chan error
}

type Pool struct {
	mu     sync.RWMutex
	closed bool
	queue  chan task
	wg     sync.WaitGroup
}

func New(queueSize int) *Pool {
	return &Pool{
		queue: make(chan task, queueSize),
	}
}

func (p *Pool) Start(workers int) {
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// Do enqueues job without blocking and waits for its result. The wait ends
// early if ctx is done; the job itself still sees ctx and should honor it.
func (p *Pool) Do(ctx context.Context, job Job) error {
	t := task{
		ctx:  ctx,
		job:  job,
		done: make(chan error, 1),
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrPoolClosed
	}
	select {
	case p.queue <- t:
	default:
		p.mu.RUnlock()
		return ErrPoolFull
	}
	p.mu.RUnlock()

	select {
	case err := <-t.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops accepting jobs and waits for queued ones to finish.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for t := range p.queue {
		// caller already gave up
		if err := t.ctx.Err(); err != nil {
			t.done <- err
			continue
		}
		t.done <- run(t)
	}
}

func run(t task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return t.job(t.ctx)
}
