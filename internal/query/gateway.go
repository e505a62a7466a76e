// Package query is the read side: job listings, filtered task listings
// with score statistics, and single-task lookups. It never writes.
package query

import (
	"context"

	"log/slog"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/common"
	"github.com/RichieRish05/ProRankAI/internal/entity"
	"github.com/RichieRish05/ProRankAI/internal/repository"
)

type Gateway struct {
	jobs  repository.JobRepository
	tasks repository.TaskRepository
	log   *slog.Logger
}

func NewGateway(jobs repository.JobRepository, tasks repository.TaskRepository, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{jobs: jobs, tasks: tasks, log: log}
}

// ListJobs returns the user's jobs oldest first.
func (g *Gateway) ListJobs(ctx context.Context, userID uuid.UUID) ([]*entity.Job, error) {
	jobs, err := g.jobs.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.WrapError(err, "list jobs")
	}
	return jobs, nil
}

// GetJob returns one job, ErrNotFound when absent.
func (g *Gateway) GetJob(ctx context.Context, jobID uuid.UUID) (*entity.Job, error) {
	job, err := g.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// ListTasks returns the job's tasks under the given filter flags,
// together with score statistics over the same filtered set. Both come
// from the repository so the listing and the stats can never disagree.
func (g *Gateway) ListTasks(ctx context.Context, jobID uuid.UUID, flags entity.FilterFlags) ([]*entity.ScoreTask, entity.TaskStats, error) {
	filter := Normalize(flags)

	tasks, err := g.tasks.ListByJob(ctx, jobID, filter)
	if err != nil {
		return nil, entity.TaskStats{}, common.WrapError(err, "list tasks")
	}
	stats, err := g.tasks.Stats(ctx, jobID, filter)
	if err != nil {
		return nil, entity.TaskStats{}, common.WrapError(err, "task stats")
	}
	return tasks, stats, nil
}

// GetTask returns one task, ErrNotFound when absent.
func (g *Gateway) GetTask(ctx context.Context, taskID uuid.UUID) (*entity.ScoreTask, error) {
	task, err := g.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Normalize folds the six boolean flags into a TaskFilter. Cohort flags
// OR together; no cohort flag means every cohort. Passed and Failed are
// a score cut only when exactly one is set, since both or neither
// selects the whole score range.
func Normalize(flags entity.FilterFlags) entity.TaskFilter {
	var f entity.TaskFilter

	if flags.Freshman {
		f.Years = append(f.Years, string(constants.Freshman))
	}
	if flags.Sophomore {
		f.Years = append(f.Years, string(constants.Sophomore))
	}
	if flags.Junior {
		f.Years = append(f.Years, string(constants.Junior))
	}
	if flags.Senior {
		f.Years = append(f.Years, string(constants.Senior))
	}

	switch {
	case flags.Passed && !flags.Failed:
		f.Score = entity.ScoreFilterPassed
	case flags.Failed && !flags.Passed:
		f.Score = entity.ScoreFilterFailed
	default:
		f.Score = entity.ScoreFilterNone
	}
	return f
}
