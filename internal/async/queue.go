// Package async runs bill analyses on a bounded worker pool so uploads
// return quickly while OCR grinds in the background.
package async

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mygreenhome/greenhome-tracker/internal/common"
	"github.com/mygreenhome/greenhome-tracker/internal/core"
)

// Job is one queued analysis. The job row already exists so the client holds
// its ID; the queue owns the image file and removes it once the analysis has
// run, whatever the outcome.
type Job struct {
	JobID     uuid.UUID
	UserID    uuid.UUID
	ImagePath string
}

type AnalysisQueue struct {
	proc    *core.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	quit chan struct{}
	wg   sync.WaitGroup
	once sync.Once

	mu      sync.Mutex
	closed  bool
	senders sync.WaitGroup
}

type Option func(*AnalysisQueue)

func WithWorkers(n int) Option {
	return func(q *AnalysisQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *AnalysisQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *AnalysisQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewAnalysisQueue(proc *core.Processor, logger *slog.Logger, opts ...Option) *AnalysisQueue {
	q := &AnalysisQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
		quit:    make(chan struct{}),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *AnalysisQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					ctx = common.WithRequestID(ctx, uuid.NewString())
					_, err := q.proc.AnalyzeJob(ctx, job.JobID, job.UserID, job.ImagePath)
					cancel()
					_ = os.Remove(job.ImagePath)

					if err != nil {
						q.logger.Error("analysis failed", "worker_id", workerID, "job_id", job.JobID, "user_id", job.UserID, "error", err)
					} else {
						q.logger.Info("analyzed bill successfully", "worker_id", workerID, "job_id", job.JobID, "user_id", job.UserID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue hands the job to the worker pool. It takes ownership of the image
// file; on any refusal (shut down, ctx expired while the queue is full) the
// file is removed and an error is returned. The mutex is only held for the
// closed check so a full queue never stalls other enqueuers or Shutdown.
func (q *AnalysisQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.JobID, "user_id", job.UserID)
		_ = os.Remove(job.ImagePath)
		return fmt.Errorf("%w: analysis queue is shut down", common.ErrServiceUnavailable)
	}
	q.senders.Add(1)
	q.mu.Unlock()
	defer q.senders.Done()

	select {
	case q.ch <- job:
		q.logger.Info("queued bill for analysis", "job_id", job.JobID, "user_id", job.UserID)
		return nil
	default:
	}

	q.logger.Warn("queue full, applying backpressure", "job_id", job.JobID, "user_id", job.UserID)
	select {
	case q.ch <- job:
		return nil
	case <-ctx.Done():
		_ = os.Remove(job.ImagePath)
		return ctx.Err()
	case <-q.quit:
		_ = os.Remove(job.ImagePath)
		return fmt.Errorf("%w: analysis queue is shut down", common.ErrServiceUnavailable)
	}
}

func (q *AnalysisQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.quit)
	q.mu.Unlock()

	// No sender can register after closed is set, so once the in-flight
	// sends drain the channel close cannot race a send.
	q.senders.Wait()
	close(q.ch)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
