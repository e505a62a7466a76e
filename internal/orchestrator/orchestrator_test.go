package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/common"
	"github.com/RichieRish05/ProRankAI/internal/entity"
)

type fakeJobs struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.Job
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{rows: make(map[uuid.UUID]*entity.Job)}
}

func (f *fakeJobs) Create(_ context.Context, userID uuid.UUID, sourceRef, name string) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j := &entity.Job{
		ID:        uuid.New(),
		UserID:    userID,
		SourceRef: sourceRef,
		Name:      name,
		Status:    constants.JobStatusPending,
		CreatedAt: time.Now(),
	}
	f.rows[j.ID] = j
	return j, nil
}

func (f *fakeJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobs) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Job
	for _, j := range f.rows {
		if j.UserID == userID {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeJobs) Transition(_ context.Context, id uuid.UUID, from []constants.JobStatus, to constants.JobStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.rows[id]
	if !ok {
		return false, common.ErrNotFound
	}
	for _, s := range from {
		if j.Status == s {
			j.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeJobs) status(id uuid.UUID) constants.JobStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[id].Status
}

type fakeTasks struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]*entity.ScoreTask
	createErr error
}

func newFakeTasksRepo() *fakeTasks {
	return &fakeTasks{rows: make(map[uuid.UUID]*entity.ScoreTask)}
}

func (f *fakeTasks) Create(_ context.Context, jobID uuid.UUID, doc entity.DocumentRef) (*entity.ScoreTask, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &entity.ScoreTask{
		ID:      uuid.New(),
		JobID:   jobID,
		DocRef:  doc.ID,
		DocName: doc.Name,
		Status:  constants.TaskStatusPending,
	}
	f.rows[t.ID] = t
	return t, nil
}

func (f *fakeTasks) GetByID(_ context.Context, id uuid.UUID) (*entity.ScoreTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTasks) ListByJob(context.Context, uuid.UUID, entity.TaskFilter) ([]*entity.ScoreTask, error) {
	panic("not used")
}

func (f *fakeTasks) Stats(context.Context, uuid.UUID, entity.TaskFilter) (entity.TaskStats, error) {
	panic("not used")
}

func (f *fakeTasks) CountActive(_ context.Context, jobID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.rows {
		if t.JobID == jobID && !t.Status.Terminal() {
			n++
		}
	}
	return n, nil
}

func (f *fakeTasks) MarkDownloaded(_ context.Context, id uuid.UUID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[id].Status = constants.TaskStatusDownloaded
	f.rows[id].Text = &text
	return nil
}

func (f *fakeTasks) MarkScored(_ context.Context, id uuid.UUID, res entity.ScoreResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[id].Status = constants.TaskStatusScored
	f.rows[id].Score = &res.Score
	return nil
}

func (f *fakeTasks) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[id].Status = constants.TaskStatusFailed
	f.rows[id].ErrorMessage = &message
	return nil
}

type fakeLister struct {
	docs []entity.DocumentRef
	err  error
}

func (f *fakeLister) List(context.Context, string) ([]entity.DocumentRef, error) {
	return f.docs, f.err
}

// syncQueue records dispatches without running anything.
type syncQueue struct {
	mu   sync.Mutex
	seen []entity.TaskDispatch
	err  error
}

func (q *syncQueue) Enqueue(_ context.Context, d entity.TaskDispatch) error {
	q.mu.Lock()
	q.seen = append(q.seen, d)
	q.mu.Unlock()
	return q.err
}

func docs(n int) []entity.DocumentRef {
	out := make([]entity.DocumentRef, n)
	for i := range out {
		out[i] = entity.DocumentRef{ID: uuid.New().String(), Name: "resume.pdf"}
	}
	return out
}

func TestSubmitValidation(t *testing.T) {
	o := New(newFakeJobs(), newFakeTasksRepo(), &fakeLister{}, &syncQueue{}, nil)

	cases := []struct {
		name      string
		userID    uuid.UUID
		sourceRef string
		jobName   string
	}{
		{"empty source", uuid.New(), "  ", "Fall batch"},
		{"empty name", uuid.New(), "folder-1", ""},
		{"nil user", uuid.Nil, "folder-1", "Fall batch"},
	}
	for _, tc := range cases {
		if _, err := o.Submit(context.Background(), tc.userID, tc.sourceRef, tc.jobName); !errors.Is(err, common.ErrValidation) {
			t.Errorf("%s: err = %v, want ErrValidation", tc.name, err)
		}
	}

	job, err := o.Submit(context.Background(), uuid.New(), "folder-1", "Fall batch")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if job.Status != constants.JobStatusPending {
		t.Errorf("status = %v, want pending", job.Status)
	}
}

func TestRunFansOutOneTaskPerDocument(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTasksRepo()
	queue := &syncQueue{}
	o := New(jobs, tasks, &fakeLister{docs: docs(5)}, queue, nil)

	job, _ := o.Submit(context.Background(), uuid.New(), "folder-1", "batch")
	if err := o.Run(context.Background(), job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := jobs.status(job.ID); got != constants.JobStatusProcessing {
		t.Errorf("job status = %v, want processing", got)
	}
	if len(queue.seen) != 5 {
		t.Fatalf("dispatched %d tasks, want 5", len(queue.seen))
	}
	for _, d := range queue.seen {
		if d.JobID != job.ID {
			t.Errorf("dispatch carries job %s, want %s", d.JobID, job.ID)
		}
		if _, err := tasks.GetByID(context.Background(), d.TaskID); err != nil {
			t.Errorf("dispatched task %s has no row", d.TaskID)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	jobs := newFakeJobs()
	queue := &syncQueue{}
	o := New(jobs, newFakeTasksRepo(), &fakeLister{docs: docs(2)}, queue, nil)

	job, _ := o.Submit(context.Background(), uuid.New(), "folder-1", "batch")
	if err := o.Run(context.Background(), job.ID); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if err := o.Run(context.Background(), job.ID); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if len(queue.seen) != 2 {
		t.Errorf("dispatched %d tasks after double Run, want 2", len(queue.seen))
	}
}

func TestRunEnumerationFailureFailsJob(t *testing.T) {
	jobs := newFakeJobs()
	o := New(jobs, newFakeTasksRepo(), &fakeLister{err: errors.New("folder gone")}, &syncQueue{}, nil)

	job, _ := o.Submit(context.Background(), uuid.New(), "folder-1", "batch")
	err := o.Run(context.Background(), job.ID)
	if !errors.Is(err, common.ErrEnumeration) {
		t.Errorf("err = %v, want ErrEnumeration", err)
	}
	if got := jobs.status(job.ID); got != constants.JobStatusFailed {
		t.Errorf("job status = %v, want failed", got)
	}
}

func TestRunEmptyFolderCompletesImmediately(t *testing.T) {
	jobs := newFakeJobs()
	queue := &syncQueue{}
	o := New(jobs, newFakeTasksRepo(), &fakeLister{}, queue, nil)

	job, _ := o.Submit(context.Background(), uuid.New(), "folder-1", "batch")
	if err := o.Run(context.Background(), job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := jobs.status(job.ID); got != constants.JobStatusCompleted {
		t.Errorf("job status = %v, want completed", got)
	}
	if len(queue.seen) != 0 {
		t.Error("dispatches issued for empty folder")
	}
}

func TestRollupCompletesWhenLastTaskTerminal(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTasksRepo()
	queue := &syncQueue{}
	o := New(jobs, tasks, &fakeLister{docs: docs(2)}, queue, nil)

	job, _ := o.Submit(context.Background(), uuid.New(), "folder-1", "batch")
	if err := o.Run(context.Background(), job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// First task finishes: one sibling still active, no rollup yet.
	d0, d1 := queue.seen[0], queue.seen[1]
	tasks.MarkScored(context.Background(), d0.TaskID, entity.ScoreResult{Score: 90})
	o.OnTaskTerminal(context.Background(), d0, constants.TaskStatusScored)
	if got := jobs.status(job.ID); got != constants.JobStatusProcessing {
		t.Errorf("job status = %v, want processing with one task active", got)
	}

	// A mixed outcome still completes the job: completion means all
	// children terminal, not all children scored.
	tasks.MarkFailed(context.Background(), d1.TaskID, "download failed")
	o.OnTaskTerminal(context.Background(), d1, constants.TaskStatusFailed)
	if got := jobs.status(job.ID); got != constants.JobStatusCompleted {
		t.Errorf("job status = %v, want completed", got)
	}
}

func TestRunEnqueueFailureForcesTasksTerminal(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTasksRepo()
	queue := &syncQueue{err: errors.New("queue rejected dispatch")}
	o := New(jobs, tasks, &fakeLister{docs: docs(2)}, queue, nil)

	job, _ := o.Submit(context.Background(), uuid.New(), "folder-1", "batch")
	if err := o.Run(context.Background(), job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// No worker will ever see these dispatches, so the tasks must be
	// forced failed and the job must still reach a terminal status.
	active, err := tasks.CountActive(context.Background(), job.ID)
	if err != nil {
		t.Fatal(err)
	}
	if active != 0 {
		t.Errorf("active tasks after failed dispatches = %d, want 0", active)
	}
	tasks.mu.Lock()
	for id, task := range tasks.rows {
		if task.Status != constants.TaskStatusFailed {
			t.Errorf("task %s status = %v, want failed", id, task.Status)
		}
		if task.ErrorMessage == nil {
			t.Errorf("task %s has no error message", id)
		}
	}
	tasks.mu.Unlock()
	if got := jobs.status(job.ID); got != constants.JobStatusCompleted {
		t.Errorf("job status = %v, want completed", got)
	}
}

func TestCancelMarksJobFailedAndWinsOverRollup(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTasksRepo()
	queue := &syncQueue{}
	o := New(jobs, tasks, &fakeLister{docs: docs(1)}, queue, nil)

	job, _ := o.Submit(context.Background(), uuid.New(), "folder-1", "batch")
	if err := o.Run(context.Background(), job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := o.Cancel(context.Background(), job.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if got := jobs.status(job.ID); got != constants.JobStatusFailed {
		t.Errorf("job status = %v, want failed", got)
	}

	// The in-flight task still terminates and triggers rollup, but the
	// guarded transition must not resurrect the cancelled job.
	d := queue.seen[0]
	tasks.MarkScored(context.Background(), d.TaskID, entity.ScoreResult{Score: 85})
	o.OnTaskTerminal(context.Background(), d, constants.TaskStatusScored)
	if got := jobs.status(job.ID); got != constants.JobStatusFailed {
		t.Errorf("job status = %v after rollup, want failed to stick", got)
	}

	// Cancelling a finished job is a validation error.
	if err := o.Cancel(context.Background(), job.ID); !errors.Is(err, common.ErrValidation) {
		t.Errorf("second Cancel err = %v, want ErrValidation", err)
	}
}
