package entstore

import (
	"context"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/gen/ent"
	"github.com/RichieRish05/ProRankAI/gen/ent/predicate"
	enttask "github.com/RichieRish05/ProRankAI/gen/ent/scoretask"
	"github.com/RichieRish05/ProRankAI/internal/common"
	"github.com/RichieRish05/ProRankAI/internal/entity"
	"github.com/RichieRish05/ProRankAI/internal/repository"
)

type taskRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTaskRepository(entc *ent.Client, log *slog.Logger) repository.TaskRepository {
	if log == nil {
		log = slog.Default()
	}
	return &taskRepo{ent: entc, log: log}
}

func (r *taskRepo) Create(ctx context.Context, jobID uuid.UUID, doc entity.DocumentRef) (*entity.ScoreTask, error) {
	create := r.ent.ScoreTask.Create().
		SetJobID(jobID).
		SetDocRef(doc.ID).
		SetDocName(doc.Name).
		SetStatus(enttask.StatusPending)
	if doc.ViewURL != "" {
		create = create.SetViewURL(doc.ViewURL)
	}
	if doc.PreviewURL != "" {
		create = create.SetPreviewURL(doc.PreviewURL)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("task create failed", "job_id", jobID, "doc_ref", doc.ID, "error", err)
		return nil, err
	}
	return toTask(row), nil
}

func (r *taskRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ScoreTask, error) {
	row, err := r.ent.ScoreTask.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toTask(row), nil
}

func filterPredicates(jobID uuid.UUID, filter entity.TaskFilter) []predicate.ScoreTask {
	preds := []predicate.ScoreTask{enttask.JobID(jobID)}
	if len(filter.Years) > 0 {
		preds = append(preds, enttask.SchoolYearIn(filter.Years...))
	}
	switch filter.Score {
	case entity.ScoreFilterPassed:
		preds = append(preds, enttask.ScoreGTE(entity.PassingScore))
	case entity.ScoreFilterFailed:
		preds = append(preds, enttask.ScoreLT(entity.PassingScore))
	}
	return preds
}

func (r *taskRepo) ListByJob(ctx context.Context, jobID uuid.UUID, filter entity.TaskFilter) ([]*entity.ScoreTask, error) {
	rows, err := r.ent.ScoreTask.Query().
		Where(filterPredicates(jobID, filter)...).
		Order(ent.Asc(enttask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.log.Error("task list failed", "job_id", jobID, "error", err)
		return nil, err
	}
	out := make([]*entity.ScoreTask, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTask(row))
	}
	return out, nil
}

// Stats is the one aggregation query over a filtered task set: count over
// all matching rows, avg/max/min over the non-null scores among them.
func (r *taskRepo) Stats(ctx context.Context, jobID uuid.UUID, filter entity.TaskFilter) (entity.TaskStats, error) {
	var agg []struct {
		Count int      `json:"count"`
		Avg   *float64 `json:"avg"`
		Max   *int     `json:"max"`
		Min   *int     `json:"min"`
	}
	err := r.ent.ScoreTask.Query().
		Where(filterPredicates(jobID, filter)...).
		Aggregate(
			ent.Count(),
			ent.As(ent.Mean(enttask.FieldScore), "avg"),
			ent.As(ent.Max(enttask.FieldScore), "max"),
			ent.As(ent.Min(enttask.FieldScore), "min"),
		).
		Scan(ctx, &agg)
	if err != nil {
		r.log.Error("task stats failed", "job_id", jobID, "error", err)
		return entity.TaskStats{}, err
	}
	if len(agg) == 0 {
		return entity.TaskStats{}, nil
	}
	stats := entity.TaskStats{Count: agg[0].Count}
	if agg[0].Avg != nil {
		stats.Average = int(math.Round(*agg[0].Avg))
	}
	if agg[0].Max != nil {
		stats.Max = *agg[0].Max
	}
	if agg[0].Min != nil {
		stats.Min = *agg[0].Min
	}
	return stats, nil
}

func (r *taskRepo) CountActive(ctx context.Context, jobID uuid.UUID) (int, error) {
	return r.ent.ScoreTask.Query().
		Where(
			enttask.JobID(jobID),
			enttask.StatusIn(enttask.StatusPending, enttask.StatusDownloaded),
		).
		Count(ctx)
}

func (r *taskRepo) MarkDownloaded(ctx context.Context, id uuid.UUID, text string) error {
	_, err := r.ent.ScoreTask.UpdateOneID(id).
		SetText(text).
		SetStatus(enttask.StatusDownloaded).
		Save(ctx)
	if err != nil {
		r.log.Error("task download persist failed", "task_id", id, "error", err)
		return err
	}
	r.log.Info("task downloaded", "task_id", id, "text_bytes", len(text))
	return nil
}

func (r *taskRepo) MarkScored(ctx context.Context, id uuid.UUID, res entity.ScoreResult) error {
	update := r.ent.ScoreTask.UpdateOneID(id).
		SetStatus(enttask.StatusScored).
		SetNillableGpa(res.GPA).
		SetNumInternships(res.NumInternships).
		SetScore(res.Score).
		SetGpaContribution(res.Breakdown.GPAContribution).
		SetExperienceContribution(res.Breakdown.ExperienceContribution).
		SetImpactQualityContribution(res.Breakdown.ImpactQualityContribution)
	if res.SchoolYear != nil {
		update = update.SetSchoolYear(string(*res.SchoolYear))
	}
	if _, err := update.Save(ctx); err != nil {
		r.log.Error("task score persist failed", "task_id", id, "error", err)
		return err
	}
	r.log.Info("task scored", "task_id", id, "score", res.Score)
	return nil
}

func (r *taskRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.ScoreTask.UpdateOneID(id).
		SetStatus(enttask.StatusFailed).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("task failure persist failed", "task_id", id, "error", err)
		return err
	}
	r.log.Warn("task failed", "task_id", id, "reason", message)
	return nil
}

func toTask(row *ent.ScoreTask) *entity.ScoreTask {
	t := &entity.ScoreTask{
		ID:             row.ID,
		JobID:          row.JobID,
		DocRef:         row.DocRef,
		DocName:        row.DocName,
		ViewURL:        row.ViewURL,
		PreviewURL:     row.PreviewURL,
		Status:         constants.TaskStatus(row.Status),
		Text:           row.Text,
		GPA:            row.Gpa,
		SchoolYear:     row.SchoolYear,
		NumInternships: row.NumInternships,
		Score:          row.Score,
		ErrorMessage:   row.ErrorMessage,
		CreatedAt:      row.CreatedAt,
	}
	if row.GpaContribution != nil && row.ExperienceContribution != nil && row.ImpactQualityContribution != nil {
		t.Breakdown = &entity.Breakdown{
			GPAContribution:           *row.GpaContribution,
			ExperienceContribution:    *row.ExperienceContribution,
			ImpactQualityContribution: *row.ImpactQualityContribution,
		}
	}
	return t
}
