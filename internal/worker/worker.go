package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

type Config struct {
	Name      string
	Processor Processor
}

type Processor interface {
	ProcessMessage(ctx context.Context)
}

type Worker struct {
	name      string
	processor Processor
}

func New(cfg Config) *Worker {
	return &Worker{
		name:      cfg.Name,
		processor: cfg.Processor,
	}
}

// Run loops until ctx is cancelled. Cancellation is only observed between
// items; an in-flight item always runs to completion.
func (w *Worker) Run(ctx context.Context) {
	slog.InfoContext(ctx, "Worker started...", "worker", w.name)
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Worker stopped...", "worker", w.name)
			return
		default:
			w.processor.ProcessMessage(ctx)
		}
	}
}

// Pool runs a fixed number of workers over the same processor. The processor
// must be safe for concurrent use.
type Pool struct {
	workers []*Worker
}

func NewPool(name string, size int, processor Processor) *Pool {
	if size < 1 {
		size = 1
	}
	pool := &Pool{}
	for i := 0; i < size; i++ {
		pool.workers = append(pool.workers, New(Config{
			Name:      fmt.Sprintf("%s-%d", name, i),
			Processor: processor,
		}))
	}
	return pool
}

// Run blocks until all workers have stopped.
func (p *Pool) Run(ctx context.Context) {
	wg := sync.WaitGroup{}
	for _, w := range p.workers {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Run(ctx)
		}()
	}
	wg.Wait()
}
