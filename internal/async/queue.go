// Package async dispatches validated upload triggers to a bounded pool
// of workers. Handlers are registered at construction time; there is no
// process-wide task registry.
package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/jcordova-gis/geoingest/internal/upload"
)

// Handler processes one upload trigger. It must absorb its own
// failures; the queue only logs and moves on.
type Handler func(ctx context.Context, p upload.TriggerPayload)

// UploadQueue fans staged-upload triggers out to worker goroutines.
type UploadQueue struct {
	handler Handler
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan upload.TriggerPayload
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*UploadQueue)

func WithWorkers(n int) Option {
	return func(q *UploadQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *UploadQueue) {
		if n > 0 {
			q.ch = make(chan upload.TriggerPayload, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *UploadQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewUploadQueue(handler Handler, logger *slog.Logger, opts ...Option) *UploadQueue {
	q := &UploadQueue{
		handler: handler,
		logger:  logger,
		workers: 4,
		timeout: 30 * time.Minute,
		ch:      make(chan upload.TriggerPayload, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *UploadQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for p := range q.ch {
					start := time.Now()
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					q.handler(ctx, p)
					cancel()

					q.logger.Info("processed upload trigger",
						"worker_id", workerID,
						"job_id", p.JobID,
						"kind", p.Kind,
						"elapsed_ms", time.Since(start).Milliseconds(),
					)
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue hands a trigger to the pool. A full queue applies
// backpressure rather than dropping work.
func (q *UploadQueue) Enqueue(_ context.Context, p upload.TriggerPayload) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", p.JobID)
		return nil
	}
	select {
	case q.ch <- p:
		q.logger.Info("queued upload for processing", "job_id", p.JobID, "kind", p.Kind)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", p.JobID)
		q.ch <- p
	}
	return nil
}

// Shutdown stops intake and waits for in-flight runs to drain or the
// context to expire.
func (q *UploadQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
