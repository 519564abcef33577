package workerpool

import (
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/rs/zerolog"

	"github.com/onflow/flow-witness/module"
	"github.com/onflow/flow-witness/module/component"
	"github.com/onflow/flow-witness/module/irrecoverable"
)

// Pool runs submitted tasks on a bounded number of goroutines. Tasks are queued
// without limit, Submit never blocks, and nothing is returned to the submitter.
//
// Pool is a component: when its context is cancelled it stops accepting tasks
// and waits for every queued task to complete before Done closes.
type Pool struct {
	component.Component

	name    string
	log     zerolog.Logger
	metrics module.WorkerPoolMetrics

	mu      sync.RWMutex
	stopped bool
	pool    *workerpool.WorkerPool
}

// New creates a pool of the given size. Size must be positive.
func New(log zerolog.Logger, metrics module.WorkerPoolMetrics, name string, size int) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{
		name:    name,
		log:     log.With().Str("worker_pool", name).Int("size", size).Logger(),
		metrics: metrics,
		pool:    workerpool.New(size),
	}

	p.Component = component.NewComponentManagerBuilder().
		AddWorker(func(ctx irrecoverable.SignalerContext, ready component.ReadyFunc) {
			ready()
			<-ctx.Done()
			p.StopWait()
		}).
		Build()

	return p
}

// Submit queues the task for execution. It returns component.ErrComponentShutdown
// if the pool was already stopped, in which case the task is dropped.
func (p *Pool) Submit(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return component.ErrComponentShutdown
	}

	submitted := time.Now()
	p.pool.Submit(func() {
		started := time.Now()
		defer func() {
			p.metrics.TaskCompleted(p.name, started.Sub(submitted), time.Since(started))
		}()
		task()
	})
	p.metrics.TaskSubmitted(p.name)
	p.metrics.QueueSize(p.name, p.pool.WaitingQueueSize())
	return nil
}

// WaitingQueueSize returns the number of tasks waiting for a worker.
func (p *Pool) WaitingQueueSize() int {
	return p.pool.WaitingQueueSize()
}

// StopWait stops accepting tasks and blocks until every queued task completed.
// It is safe to call more than once.
func (p *Pool) StopWait() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		p.pool.StopWait()
		return
	}
	p.stopped = true
	p.mu.Unlock()

	p.log.Debug().Int("queued", p.pool.WaitingQueueSize()).Msg("waiting for queued tasks")
	p.pool.StopWait()
	p.metrics.QueueSize(p.name, 0)
}
