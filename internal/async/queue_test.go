package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/entity"
)

type recordingHandler struct {
	mu     sync.Mutex
	seen   []uuid.UUID
	status constants.TaskStatus
	err    error
}

func (h *recordingHandler) Run(_ context.Context, d entity.TaskDispatch) (constants.TaskStatus, error) {
	h.mu.Lock()
	h.seen = append(h.seen, d.TaskID)
	h.mu.Unlock()
	return h.status, h.err
}

type hookRecorder struct {
	mu       sync.Mutex
	statuses map[uuid.UUID]constants.TaskStatus
	failed   map[uuid.UUID]string
}

func newHookRecorder() *hookRecorder {
	return &hookRecorder{
		statuses: make(map[uuid.UUID]constants.TaskStatus),
		failed:   make(map[uuid.UUID]string),
	}
}

func (h *hookRecorder) onTerminal(_ context.Context, d entity.TaskDispatch, status constants.TaskStatus) {
	h.mu.Lock()
	h.statuses[d.TaskID] = status
	h.mu.Unlock()
}

func (h *hookRecorder) forceFail(_ context.Context, id uuid.UUID, message string) error {
	h.mu.Lock()
	h.failed[id] = message
	h.mu.Unlock()
	return nil
}

func dispatch() entity.TaskDispatch {
	return entity.TaskDispatch{TaskID: uuid.New(), JobID: uuid.New(), DocRef: "doc"}
}

func TestQueueProcessesAllDispatches(t *testing.T) {
	handler := &recordingHandler{status: constants.TaskStatusScored}
	hooks := newHookRecorder()
	q := NewDispatchQueue(handler, hooks.onTerminal, hooks.forceFail, slog.Default(), WithWorkers(3))

	const n = 20
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		d := dispatch()
		ids = append(ids, d.TaskID)
		if err := q.Enqueue(context.Background(), d); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	for _, id := range ids {
		if hooks.statuses[id] != constants.TaskStatusScored {
			t.Errorf("task %s terminal status = %v, want scored", id, hooks.statuses[id])
		}
	}
	if len(hooks.failed) != 0 {
		t.Errorf("force-fail invoked for %d tasks", len(hooks.failed))
	}
}

func TestQueueForceFailsNonTerminalResults(t *testing.T) {
	// Handler errors before persisting any terminal status.
	handler := &recordingHandler{status: "", err: errors.New("task row unreachable")}
	hooks := newHookRecorder()
	q := NewDispatchQueue(handler, hooks.onTerminal, hooks.forceFail, slog.Default(), WithWorkers(1))

	d := dispatch()
	if err := q.Enqueue(context.Background(), d); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if hooks.statuses[d.TaskID] != constants.TaskStatusFailed {
		t.Errorf("terminal status = %v, want failed", hooks.statuses[d.TaskID])
	}
	if hooks.failed[d.TaskID] != "task row unreachable" {
		t.Errorf("force-fail message = %q", hooks.failed[d.TaskID])
	}
}

func TestQueueTerminalHookFiresOnHandlerError(t *testing.T) {
	// Handler fails but still reports the persisted terminal status; the
	// hook must see it so job rollup is never skipped.
	handler := &recordingHandler{status: constants.TaskStatusFailed, err: errors.New("download failed")}
	hooks := newHookRecorder()
	q := NewDispatchQueue(handler, hooks.onTerminal, hooks.forceFail, slog.Default(), WithWorkers(1))

	d := dispatch()
	q.Enqueue(context.Background(), d)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if hooks.statuses[d.TaskID] != constants.TaskStatusFailed {
		t.Errorf("terminal status = %v, want failed", hooks.statuses[d.TaskID])
	}
	if _, forced := hooks.failed[d.TaskID]; forced {
		t.Error("force-fail invoked even though the handler persisted failure")
	}
}

func TestQueueRejectsAfterShutdown(t *testing.T) {
	handler := &recordingHandler{status: constants.TaskStatusScored}
	hooks := newHookRecorder()
	q := NewDispatchQueue(handler, hooks.onTerminal, hooks.forceFail, slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// The dispatch is never processed, so the caller must get an error
	// it can turn into a forced task failure.
	if err := q.Enqueue(context.Background(), dispatch()); !errors.Is(err, ErrShuttingDown) {
		t.Fatalf("Enqueue after shutdown: err = %v, want ErrShuttingDown", err)
	}
	handler.mu.Lock()
	defer handler.mu.Unlock()
	if len(handler.seen) != 0 {
		t.Error("dispatch processed after shutdown")
	}
}

func TestQueueBackpressureHonorsContext(t *testing.T) {
	// One slow worker and a single-slot buffer: the third enqueue has
	// to block, and a cancelled context must release it.
	release := make(chan struct{})
	slow := handlerFunc(func(_ context.Context, _ entity.TaskDispatch) (constants.TaskStatus, error) {
		<-release
		return constants.TaskStatusScored, nil
	})
	hooks := newHookRecorder()
	q := NewDispatchQueue(slow, hooks.onTerminal, hooks.forceFail, slog.Default(),
		WithWorkers(1), WithQueueSize(1))

	q.Enqueue(context.Background(), dispatch()) // taken by the worker
	q.Enqueue(context.Background(), dispatch()) // fills the buffer

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := q.Enqueue(ctx, dispatch())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("blocked Enqueue err = %v, want DeadlineExceeded", err)
	}

	close(release)
	drainCtx, drainCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer drainCancel()
	q.Shutdown(drainCtx)
}

type handlerFunc func(ctx context.Context, d entity.TaskDispatch) (constants.TaskStatus, error)

func (f handlerFunc) Run(ctx context.Context, d entity.TaskDispatch) (constants.TaskStatus, error) {
	return f(ctx, d)
}
