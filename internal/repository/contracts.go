package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/entity"
)

// JobRepository owns CRUD on job rows. Job.status is only ever written
// through Transition so the pending -> processing -> {completed, failed}
// order can never revert.
type JobRepository interface {
	Create(ctx context.Context, userID uuid.UUID, sourceRef, name string) (*entity.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Job, error)

	// Transition moves the job from any of the listed statuses to the
	// target in one guarded update. applied is false when the row was
	// already past the listed statuses (a concurrent writer won).
	Transition(ctx context.Context, id uuid.UUID, from []constants.JobStatus, to constants.JobStatus) (applied bool, err error)
}

// TaskRepository owns CRUD and the single aggregation query on score_task
// rows. Each stage result is persisted through its own Mark method so a
// resumed task can detect completed stages by status alone.
type TaskRepository interface {
	Create(ctx context.Context, jobID uuid.UUID, doc entity.DocumentRef) (*entity.ScoreTask, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ScoreTask, error)
	ListByJob(ctx context.Context, jobID uuid.UUID, filter entity.TaskFilter) ([]*entity.ScoreTask, error)
	Stats(ctx context.Context, jobID uuid.UUID, filter entity.TaskFilter) (entity.TaskStats, error)

	// CountActive counts the job's tasks still short of a terminal
	// status; zero means the batch is finished.
	CountActive(ctx context.Context, jobID uuid.UUID) (int, error)

	MarkDownloaded(ctx context.Context, id uuid.UUID, text string) error
	MarkScored(ctx context.Context, id uuid.UUID, res entity.ScoreResult) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
}
