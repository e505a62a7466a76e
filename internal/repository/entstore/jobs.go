package entstore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/gen/ent"
	entjob "github.com/RichieRish05/ProRankAI/gen/ent/job"
	"github.com/RichieRish05/ProRankAI/internal/common"
	"github.com/RichieRish05/ProRankAI/internal/entity"
	"github.com/RichieRish05/ProRankAI/internal/repository"
)

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) repository.JobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, userID uuid.UUID, sourceRef, name string) (*entity.Job, error) {
	row, err := r.ent.Job.Create().
		SetUserID(userID).
		SetSourceRef(sourceRef).
		SetName(name).
		SetStatus(entjob.StatusPending).
		Save(ctx)
	if err != nil {
		r.log.Error("job create failed", "user_id", userID, "error", err)
		return nil, err
	}
	r.log.Info("job created", "job_id", row.ID, "user_id", userID, "name", name)
	return toJob(row), nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	row, err := r.ent.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toJob(row), nil
}

func (r *jobRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Job, error) {
	rows, err := r.ent.Job.Query().
		Where(entjob.UserID(userID)).
		Order(ent.Asc(entjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.log.Error("job list failed", "user_id", userID, "error", err)
		return nil, err
	}
	out := make([]*entity.Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, toJob(row))
	}
	return out, nil
}

// Transition is the single write path for job status. The WHERE guard on
// the current status makes concurrent completions race-free: the losing
// writer sees applied=false instead of reverting a terminal status.
func (r *jobRepo) Transition(ctx context.Context, id uuid.UUID, from []constants.JobStatus, to constants.JobStatus) (bool, error) {
	froms := make([]entjob.Status, 0, len(from))
	for _, s := range from {
		froms = append(froms, entjob.Status(s))
	}
	n, err := r.ent.Job.Update().
		Where(entjob.ID(id), entjob.StatusIn(froms...)).
		SetStatus(entjob.Status(to)).
		Save(ctx)
	if err != nil {
		r.log.Error("job transition failed", "job_id", id, "to", to, "error", err)
		return false, err
	}
	if n == 0 {
		r.log.Debug("job transition skipped", "job_id", id, "to", to)
		return false, nil
	}
	r.log.Info("job transitioned", "job_id", id, "to", to)
	return true, nil
}

func toJob(row *ent.Job) *entity.Job {
	return &entity.Job{
		ID:        row.ID,
		UserID:    row.UserID,
		SourceRef: row.SourceRef,
		Name:      row.Name,
		Status:    constants.JobStatus(row.Status),
		CreatedAt: row.CreatedAt,
	}
}
