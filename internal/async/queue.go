// Package async fans score-task dispatches out to a fixed worker pool.
// The pool owns the per-dispatch deadline and guarantees the terminal
// hook fires exactly once per dispatch, which is what drives job
// completion rollup.
package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/entity"
)

// Handler executes one dispatch through its remaining stages and reports
// the task's terminal status.
type Handler interface {
	Run(ctx context.Context, d entity.TaskDispatch) (constants.TaskStatus, error)
}

// TerminalFunc is invoked after every dispatch once its task has reached
// a terminal status, on the worker goroutine.
type TerminalFunc func(ctx context.Context, d entity.TaskDispatch, status constants.TaskStatus)

// FailFunc force-fails a task row. The pool uses it when the handler
// errors out without having persisted a terminal status itself, so no
// dispatch can leave its task stuck in a non-terminal state.
type FailFunc func(ctx context.Context, taskID uuid.UUID, message string) error

type DispatchQueue struct {
	handler    Handler
	onTerminal TerminalFunc
	forceFail  FailFunc
	logger     *slog.Logger
	workers    int
	timeout    time.Duration

	ch   chan entity.TaskDispatch
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*DispatchQueue)

func WithWorkers(n int) Option {
	return func(q *DispatchQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *DispatchQueue) {
		if n > 0 {
			q.ch = make(chan entity.TaskDispatch, n)
		}
	}
}
func WithTaskTimeout(d time.Duration) Option {
	return func(q *DispatchQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewDispatchQueue(handler Handler, onTerminal TerminalFunc, forceFail FailFunc, logger *slog.Logger, opts ...Option) *DispatchQueue {
	q := &DispatchQueue{
		handler:    handler,
		onTerminal: onTerminal,
		forceFail:  forceFail,
		logger:     logger,
		workers:    4,
		timeout:    2 * time.Minute,
		ch:         make(chan entity.TaskDispatch, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *DispatchQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for d := range q.ch {
					q.process(workerID, d)
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *DispatchQueue) process(workerID int, d entity.TaskDispatch) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	status, err := q.handler.Run(ctx, d)
	if err != nil {
		q.logger.Error("task processing failed",
			"worker_id", workerID, "task_id", d.TaskID, "job_id", d.JobID, "error", err)
	} else {
		q.logger.Info("task processed",
			"worker_id", workerID, "task_id", d.TaskID, "job_id", d.JobID, "status", status)
	}

	// The handler persists terminal statuses on its own failure paths;
	// an empty status means it never got that far. Force the row failed
	// so the batch can still finish.
	if !status.Terminal() {
		status = constants.TaskStatusFailed
		msg := "task runner did not reach a terminal status"
		if err != nil {
			msg = err.Error()
		}
		if ffErr := q.forceFail(ctx, d.TaskID, msg); ffErr != nil {
			q.logger.Error("force-fail failed", "task_id", d.TaskID, "error", ffErr)
		}
	}

	q.onTerminal(ctx, d, status)
}

// ErrShuttingDown reports a dispatch offered after Shutdown. The caller
// owns the task row and must handle the miss; the queue will never see
// the dispatch.
var ErrShuttingDown = errors.New("queue is shutting down")

// Enqueue hands a dispatch to the pool, blocking for backpressure when
// the buffer is full until the context expires.
func (q *DispatchQueue) Enqueue(ctx context.Context, d entity.TaskDispatch) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "task_id", d.TaskID)
		return ErrShuttingDown
	}
	select {
	case q.ch <- d:
		q.logger.Info("queued task", "task_id", d.TaskID, "job_id", d.JobID)
		return nil
	default:
	}

	q.logger.Warn("queue full, applying backpressure", "task_id", d.TaskID)
	select {
	case q.ch <- d:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops intake and waits for in-flight dispatches to drain, up
// to the context deadline.
func (q *DispatchQueue) Shutdown(ctx context.Context) {
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
