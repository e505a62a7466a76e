package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/entity"
)

// fakeTasks is an in-memory TaskRepository covering just what the runner
// touches.
type fakeTasks struct {
	rows map[uuid.UUID]*entity.ScoreTask

	markDownloadedErr error
	scoredWith        *entity.ScoreResult
	failedWith        *string
}

func newFakeTasks(task *entity.ScoreTask) *fakeTasks {
	return &fakeTasks{rows: map[uuid.UUID]*entity.ScoreTask{task.ID: task}}
}

func (f *fakeTasks) Create(context.Context, uuid.UUID, entity.DocumentRef) (*entity.ScoreTask, error) {
	panic("not used")
}

func (f *fakeTasks) GetByID(_ context.Context, id uuid.UUID) (*entity.ScoreTask, error) {
	t, ok := f.rows[id]
	if !ok {
		return nil, errors.New("no such task")
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

func (f *fakeTasks) CountActive(context.Context, uuid.UUID) (int, error) { return 0, nil }

func (f *fakeTasks) MarkDownloaded(_ context.Context, id uuid.UUID, text string) error {
	if f.markDownloadedErr != nil {
		return f.markDownloadedErr
	}
	t := f.rows[id]
	t.Status = constants.TaskStatusDownloaded
	t.Text = &text
	return nil
}

func (f *fakeTasks) MarkScored(_ context.Context, id uuid.UUID, res entity.ScoreResult) error {
	f.scoredWith = &res
	t := f.rows[id]
	t.Status = constants.TaskStatusScored
	t.Score = &res.Score
	return nil
}

func (f *fakeTasks) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	f.failedWith = &message
	t := f.rows[id]
	t.Status = constants.TaskStatusFailed
	t.ErrorMessage = &message
	return nil
}

type fakeFetcher struct {
	text  string
	err   error
	calls int
}

func (f *fakeFetcher) FetchText(context.Context, string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeExtractor struct {
	attrs entity.Attributes
	err   error
	got   string
}

func (f *fakeExtractor) Extract(_ context.Context, text string) (entity.Attributes, []byte, error) {
	f.got = text
	return f.attrs, nil, f.err
}

func refDec2025() time.Time {
	return time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
}

func newPendingTask() (*entity.ScoreTask, entity.TaskDispatch) {
	task := &entity.ScoreTask{
		ID:      uuid.New(),
		JobID:   uuid.New(),
		DocRef:  "doc-1",
		DocName: "alice.pdf",
		Status:  constants.TaskStatusPending,
	}
	return task, entity.TaskDispatch{TaskID: task.ID, JobID: task.JobID, DocRef: task.DocRef}
}

func TestRunHappyPath(t *testing.T) {
	task, d := newPendingTask()
	tasks := newFakeTasks(task)
	fetcher := &fakeFetcher{text: "resume body"}
	gpa := 3.9
	grad := "2026-05"
	extractor := &fakeExtractor{attrs: entity.Attributes{
		GPA:            &gpa,
		GraduationDate: &grad,
		NumInternships: 3,
		ImpactQuality:  18,
	}}

	r := NewRunner(tasks, fetcher, extractor, refDec2025, nil)
	status, err := r.Run(context.Background(), d)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if status != constants.TaskStatusScored {
		t.Errorf("status = %v, want scored", status)
	}
	if extractor.got != "resume body" {
		t.Errorf("extractor received %q", extractor.got)
	}
	if tasks.scoredWith == nil {
		t.Fatal("MarkScored not called")
	}
	// GPA 3.9 -> 40, Senior (2026-05 is 5 months out) with 3
	// internships -> 40, impact 18 -> 18.
	if tasks.scoredWith.Score != 98 {
		t.Errorf("score = %d, want 98", tasks.scoredWith.Score)
	}
	if tasks.scoredWith.SchoolYear == nil || *tasks.scoredWith.SchoolYear != constants.Senior {
		t.Errorf("school year = %v, want Senior", tasks.scoredWith.SchoolYear)
	}
}

func TestRunTerminalStatusIsNoOp(t *testing.T) {
	for _, st := range []constants.TaskStatus{constants.TaskStatusScored, constants.TaskStatusFailed} {
		task, d := newPendingTask()
		task.Status = st
		tasks := newFakeTasks(task)
		fetcher := &fakeFetcher{text: "resume"}
		extractor := &fakeExtractor{}

		r := NewRunner(tasks, fetcher, extractor, refDec2025, nil)
		status, err := r.Run(context.Background(), d)
		if err != nil {
			t.Fatalf("Run(%v): %v", st, err)
		}
		if status != st {
			t.Errorf("status = %v, want %v", status, st)
		}
		if fetcher.calls != 0 {
			t.Errorf("fetcher called %d times on terminal task", fetcher.calls)
		}
	}
}

func TestRunResumesFromDownloaded(t *testing.T) {
	task, d := newPendingTask()
	task.Status = constants.TaskStatusDownloaded
	stored := "previously downloaded text"
	task.Text = &stored

	tasks := newFakeTasks(task)
	fetcher := &fakeFetcher{err: errors.New("store unreachable")}
	extractor := &fakeExtractor{attrs: entity.Attributes{NumInternships: 1, ImpactQuality: 12}}

	r := NewRunner(tasks, fetcher, extractor, refDec2025, nil)
	status, err := r.Run(context.Background(), d)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if status != constants.TaskStatusScored {
		t.Errorf("status = %v, want scored", status)
	}
	if fetcher.calls != 0 {
		t.Error("download stage re-ran despite stored text")
	}
	if extractor.got != stored {
		t.Errorf("extractor received %q, want stored text", extractor.got)
	}
}

func TestRunDownloadFailureMarksFailed(t *testing.T) {
	task, d := newPendingTask()
	tasks := newFakeTasks(task)
	fetcher := &fakeFetcher{err: errors.New("403 from store")}

	r := NewRunner(tasks, fetcher, &fakeExtractor{}, refDec2025, nil)
	status, err := r.Run(context.Background(), d)
	if err == nil {
		t.Fatal("expected error")
	}
	if status != constants.TaskStatusFailed {
		t.Errorf("status = %v, want failed", status)
	}
	if tasks.failedWith == nil {
		t.Fatal("MarkFailed not called")
	}
	if tasks.rows[task.ID].Status != constants.TaskStatusFailed {
		t.Error("task row not failed")
	}
}

func TestRunExtractFailureMarksFailed(t *testing.T) {
	task, d := newPendingTask()
	tasks := newFakeTasks(task)
	fetcher := &fakeFetcher{text: "resume"}
	extractor := &fakeExtractor{err: errors.New("model timeout")}

	r := NewRunner(tasks, fetcher, extractor, refDec2025, nil)
	status, err := r.Run(context.Background(), d)
	if err == nil {
		t.Fatal("expected error")
	}
	if status != constants.TaskStatusFailed {
		t.Errorf("status = %v, want failed", status)
	}
	// Download completed before the failure, so the text survives for a
	// hypothetical retry even though the row is terminal.
	if tasks.rows[task.ID].Text == nil {
		t.Error("downloaded text lost")
	}
}

func TestRunUnknownTask(t *testing.T) {
	task, _ := newPendingTask()
	tasks := newFakeTasks(task)

	r := NewRunner(tasks, &fakeFetcher{}, &fakeExtractor{}, refDec2025, nil)
	_, err := r.Run(context.Background(), entity.TaskDispatch{TaskID: uuid.New()})
	if err == nil {
		t.Fatal("expected error for unknown task")
	}
	if tasks.failedWith != nil {
		t.Error("MarkFailed called for a row that does not exist")
	}
}
