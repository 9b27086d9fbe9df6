package ingest

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/avesh-singh/neet-pg-checker/constants"
)

// Job is one document waiting to be ingested.
type Job struct {
	Path        string
	Layout      constants.Layout
	SubmittedAt time.Time
}

// Queue runs document ingest on a fixed pool of workers with bounded
// backlog. Filename idempotency and the record unique index make it safe
// for the same document to be enqueued twice.
type Queue struct {
	svc     *Service
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type QueueOption func(*Queue)

func WithWorkers(n int) QueueOption {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) QueueOption {
	return func(q *Queue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) QueueOption {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewQueue(svc *Service, logger *slog.Logger, opts ...QueueOption) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue{
		svc:     svc,
		logger:  logger,
		workers: 2,
		timeout: 10 * time.Minute,
		ch:      make(chan Job, 64),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *Queue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("ingest worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					result, err := q.svc.ProcessFile(ctx, job.Path, job.Layout)
					cancel()

					if err != nil {
						q.logger.Error("ingest failed", "worker_id", workerID, "path", job.Path, "error", err)
					} else {
						q.logger.Info("ingest finished",
							"worker_id", workerID,
							"filename", result.Filename,
							"inserted", result.Inserted,
							"skipped", result.Skipped,
						)
					}
				}

				q.logger.Info("ingest worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue hands a document to the pool, blocking once the backlog fills.
func (q *Queue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "path", job.Path)
		return nil
	}
	select {
	case q.ch <- job:
	default:
		q.logger.Warn("queue full, applying backpressure", "path", job.Path)
		q.ch <- job
	}
	return nil
}

// Shutdown stops intake and waits for in-flight ingests to drain.
func (q *Queue) Shutdown(ctx context.Context) {
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
