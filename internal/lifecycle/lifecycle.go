// Package lifecycle runs one score task through its stages: download the
// document text, then extract attributes and score them. Each stage
// persists its result before the next begins, so a redelivered task
// resumes from the last durable status instead of repeating work.
package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/common"
	"github.com/RichieRish05/ProRankAI/internal/docstore"
	"github.com/RichieRish05/ProRankAI/internal/entity"
	"github.com/RichieRish05/ProRankAI/internal/extract"
	"github.com/RichieRish05/ProRankAI/internal/repository"
	"github.com/RichieRish05/ProRankAI/internal/scoring"
)

type Runner struct {
	tasks     repository.TaskRepository
	fetcher   docstore.Fetcher
	extractor extract.Extractor

	// refDate supplies the reference date for school-year
	// classification, fixed per deployment so reruns classify
	// identically.
	refDate func() time.Time

	log *slog.Logger
}

func NewRunner(
	tasks repository.TaskRepository,
	fetcher docstore.Fetcher,
	extractor extract.Extractor,
	refDate func() time.Time,
	log *slog.Logger,
) *Runner {
	if refDate == nil {
		refDate = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		tasks:     tasks,
		fetcher:   fetcher,
		extractor: extractor,
		refDate:   refDate,
		log:       log,
	}
}

// Run executes the remaining stages for one task and returns its
// terminal status. Stage failures are absorbed into the task row as
// status=failed; only infrastructure failures (the task row itself
// unreachable) surface without a persisted status.
func (r *Runner) Run(ctx context.Context, d entity.TaskDispatch) (constants.TaskStatus, error) {
	start := time.Now()
	log := r.log.With("task_id", d.TaskID, "job_id", d.JobID)

	task, err := r.tasks.GetByID(ctx, d.TaskID)
	if err != nil {
		log.Error("task.run.load_failed", "error", err)
		return "", common.WrapError(err, "load task")
	}

	// Terminal statuses are absorbing: redelivery is a no-op.
	if task.Status.Terminal() {
		log.Info("task.run.already_terminal", "status", task.Status)
		return task.Status, nil
	}

	log.Info("task.run.start", "status", task.Status, "doc_name", task.DocName)

	text, status, err := r.downloadStage(ctx, task, d, log)
	if err != nil {
		return status, err
	}

	status, err = r.scoreStage(ctx, d, text, log)
	if err != nil {
		return status, err
	}

	log.Info("task.run.ok", "elapsed_ms", time.Since(start).Milliseconds())
	return status, nil
}

// downloadStage fetches the document text unless a prior run already
// persisted it.
func (r *Runner) downloadStage(ctx context.Context, task *entity.ScoreTask, d entity.TaskDispatch, log *slog.Logger) (string, constants.TaskStatus, error) {
	if task.Status == constants.TaskStatusDownloaded && task.Text != nil {
		log.Info("task.download.memoized", "text_len", len(*task.Text))
		return *task.Text, task.Status, nil
	}

	text, err := r.fetcher.FetchText(ctx, d.DocRef)
	if err != nil {
		log.Error("task.download.failed", "error", err)
		return "", constants.TaskStatusFailed, r.fail(ctx, d.TaskID, common.CollaboratorError("download", err), log)
	}
	if err := r.tasks.MarkDownloaded(ctx, d.TaskID, text); err != nil {
		log.Error("task.download.persist_failed", "error", err)
		return "", constants.TaskStatusFailed, r.fail(ctx, d.TaskID, common.WrapError(err, "persist downloaded text"), log)
	}

	log.Info("task.download.ok", "text_len", len(text))
	return text, constants.TaskStatusDownloaded, nil
}

// scoreStage extracts attributes from the text, classifies the school
// year, applies the rubric, and persists the full result in one write.
func (r *Runner) scoreStage(ctx context.Context, d entity.TaskDispatch, text string, log *slog.Logger) (constants.TaskStatus, error) {
	attrs, _, err := r.extractor.Extract(ctx, text)
	if err != nil {
		log.Error("task.score.extract_failed", "error", err)
		return constants.TaskStatusFailed, r.fail(ctx, d.TaskID, common.CollaboratorError("extract", err), log)
	}

	year := scoring.Classify(attrs, r.refDate())
	score, breakdown := scoring.Compute(attrs, year)

	res := entity.ScoreResult{
		GPA:            attrs.GPA,
		SchoolYear:     year,
		NumInternships: attrs.NumInternships,
		Score:          score,
		Breakdown:      breakdown,
	}
	if err := r.tasks.MarkScored(ctx, d.TaskID, res); err != nil {
		log.Error("task.score.persist_failed", "error", err)
		return constants.TaskStatusFailed, r.fail(ctx, d.TaskID, common.WrapError(err, "persist score"), log)
	}

	log.Info("task.score.ok",
		"score", score,
		"school_year", year,
		"has_gpa", attrs.GPA != nil,
	)
	return constants.TaskStatusScored, nil
}

// fail records the failure message on the task row and returns the
// original error. A failed write of the failure itself is logged and
// swallowed: the caller still needs the stage error, and the queue's
// failure handler gets another chance to force the row terminal.
func (r *Runner) fail(ctx context.Context, id uuid.UUID, cause error, log *slog.Logger) error {
	if err := r.tasks.MarkFailed(ctx, id, cause.Error()); err != nil {
		log.Error("task.fail.persist_failed", "error", err)
	}
	return cause
}
