// Package orchestrator owns the job lifecycle: accept a submission,
// enumerate the source folder, fan one score task out per document, and
// roll child terminal statuses up into the job's own status.
package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"log/slog"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/common"
	"github.com/RichieRish05/ProRankAI/internal/docstore"
	"github.com/RichieRish05/ProRankAI/internal/entity"
	"github.com/RichieRish05/ProRankAI/internal/repository"
)

// Dispatcher is the queue surface the orchestrator needs.
type Dispatcher interface {
	Enqueue(ctx context.Context, d entity.TaskDispatch) error
}

type Orchestrator struct {
	jobs   repository.JobRepository
	tasks  repository.TaskRepository
	lister docstore.Lister
	queue  Dispatcher
	log    *slog.Logger

	// active maps a processing job to the cancel func for its dispatch
	// loop. Cancel uses it to stop further dispatches.
	mu     sync.Mutex
	active map[uuid.UUID]context.CancelFunc
}

func New(
	jobs repository.JobRepository,
	tasks repository.TaskRepository,
	lister docstore.Lister,
	queue Dispatcher,
	log *slog.Logger,
) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		jobs:   jobs,
		tasks:  tasks,
		lister: lister,
		queue:  queue,
		log:    log,
		active: make(map[uuid.UUID]context.CancelFunc),
	}
}

// Submit validates the request and persists a pending job. Processing
// does not start until Run is called for the returned job.
func (o *Orchestrator) Submit(ctx context.Context, userID uuid.UUID, sourceRef, name string) (*entity.Job, error) {
	sourceRef = strings.TrimSpace(sourceRef)
	name = strings.TrimSpace(name)
	if sourceRef == "" {
		return nil, common.NewAppError("VALIDATION_ERROR", "source_ref is required", common.ErrValidation)
	}
	if name == "" {
		return nil, common.NewAppError("VALIDATION_ERROR", "name is required", common.ErrValidation)
	}
	if userID == uuid.Nil {
		return nil, common.NewAppError("VALIDATION_ERROR", "user_id is required", common.ErrValidation)
	}

	job, err := o.jobs.Create(ctx, userID, sourceRef, name)
	if err != nil {
		return nil, common.WrapError(err, "create job")
	}
	o.log.Info("job.submitted", "job_id", job.ID, "user_id", userID, "name", name)
	return job, nil
}

// Run drives one pending job: enumerate, create all task rows, then
// dispatch them. Safe to call once per job; a second call observes the
// guarded transition losing and returns without side effects.
func (o *Orchestrator) Run(ctx context.Context, jobID uuid.UUID) error {
	applied, err := o.jobs.Transition(ctx, jobID,
		[]constants.JobStatus{constants.JobStatusPending}, constants.JobStatusProcessing)
	if err != nil {
		return common.WrapError(err, "transition job to processing")
	}
	if !applied {
		o.log.Warn("job.run.already_started", "job_id", jobID)
		return nil
	}

	job, err := o.jobs.GetByID(ctx, jobID)
	if err != nil {
		return o.failJob(ctx, jobID, common.WrapError(err, "load job"))
	}

	// The dispatch loop runs under its own cancelable context so Cancel
	// can stop it without tearing down in-flight workers.
	runCtx, cancel := context.WithCancel(ctx)
	o.register(jobID, cancel)

	o.log.Info("job.run.start", "job_id", jobID, "source_ref", job.SourceRef)

	docs, err := o.lister.List(runCtx, job.SourceRef)
	if err != nil {
		o.unregister(jobID)
		return o.failJob(ctx, jobID, common.EnumerationError(err))
	}
	if len(docs) == 0 {
		o.unregister(jobID)
		o.log.Info("job.run.empty", "job_id", jobID)
		if _, err := o.jobs.Transition(ctx, jobID,
			[]constants.JobStatus{constants.JobStatusProcessing}, constants.JobStatusCompleted); err != nil {
			return common.WrapError(err, "complete empty job")
		}
		return nil
	}

	// Create every row before dispatching any, so the set of tasks the
	// job owns is fixed up front and queryable immediately.
	dispatches := make([]entity.TaskDispatch, 0, len(docs))
	for _, doc := range docs {
		task, err := o.tasks.Create(ctx, jobID, doc)
		if err != nil {
			o.log.Error("job.task.create_failed", "job_id", jobID, "doc", doc.Name, "error", err)
			continue
		}
		dispatches = append(dispatches, entity.TaskDispatch{
			TaskID: task.ID,
			JobID:  jobID,
			DocRef: doc.ID,
		})
	}
	if len(dispatches) == 0 {
		o.unregister(jobID)
		return o.failJob(ctx, jobID, fmt.Errorf("no task rows could be created for %d documents", len(docs)))
	}

	o.log.Info("job.run.fanout", "job_id", jobID, "documents", len(docs), "tasks", len(dispatches))

	for _, d := range dispatches {
		if runCtx.Err() != nil {
			o.log.Warn("job.run.dispatch_stopped", "job_id", jobID, "task_id", d.TaskID)
			break
		}
		if err := o.queue.Enqueue(runCtx, d); err != nil {
			o.log.Error("job.task.enqueue_failed", "job_id", jobID, "task_id", d.TaskID, "error", err)
			// A dispatch that never reaches the queue gets no worker,
			// so its task must be forced terminal here or the job's
			// rollup would wait on it forever.
			if ffErr := o.ForceFailTask(ctx, d.TaskID, "dispatch failed: "+err.Error()); ffErr != nil {
				o.log.Error("job.task.force_fail_failed", "job_id", jobID, "task_id", d.TaskID, "error", ffErr)
			}
			o.OnTaskTerminal(ctx, d, constants.TaskStatusFailed)
		}
	}
	return nil
}

// OnTaskTerminal is the queue's terminal hook. When the last child task
// reaches a terminal status it performs the guarded completed
// transition; a job Cancel already moved to failed simply wins the guard.
func (o *Orchestrator) OnTaskTerminal(ctx context.Context, d entity.TaskDispatch, status constants.TaskStatus) {
	remaining, err := o.tasks.CountActive(ctx, d.JobID)
	if err != nil {
		o.log.Error("job.rollup.count_failed", "job_id", d.JobID, "error", err)
		return
	}
	if remaining > 0 {
		return
	}

	applied, err := o.jobs.Transition(ctx, d.JobID,
		[]constants.JobStatus{constants.JobStatusProcessing}, constants.JobStatusCompleted)
	if err != nil {
		o.log.Error("job.rollup.transition_failed", "job_id", d.JobID, "error", err)
		return
	}
	o.unregister(d.JobID)
	if applied {
		o.log.Info("job.completed", "job_id", d.JobID)
	}
}

// ForceFailTask backs the queue's failure handler.
func (o *Orchestrator) ForceFailTask(ctx context.Context, taskID uuid.UUID, message string) error {
	return o.tasks.MarkFailed(ctx, taskID, message)
}

// Cancel stops further dispatches for the job and marks it failed.
// Tasks already handed to workers still run to their own terminal
// status and remain queryable.
func (o *Orchestrator) Cancel(ctx context.Context, jobID uuid.UUID) error {
	o.mu.Lock()
	cancel, ok := o.active[jobID]
	delete(o.active, jobID)
	o.mu.Unlock()
	if ok {
		cancel()
	}

	applied, err := o.jobs.Transition(ctx, jobID,
		[]constants.JobStatus{constants.JobStatusPending, constants.JobStatusProcessing},
		constants.JobStatusFailed)
	if err != nil {
		return common.WrapError(err, "cancel job")
	}
	if !applied {
		return common.NewAppError("VALIDATION_ERROR", "job already finished", common.ErrValidation)
	}
	o.log.Info("job.cancelled", "job_id", jobID)
	return nil
}

func (o *Orchestrator) failJob(ctx context.Context, jobID uuid.UUID, cause error) error {
	o.log.Error("job.failed", "job_id", jobID, "error", cause)
	if _, err := o.jobs.Transition(ctx, jobID,
		[]constants.JobStatus{constants.JobStatusPending, constants.JobStatusProcessing},
		constants.JobStatusFailed); err != nil {
		o.log.Error("job.fail.transition_failed", "job_id", jobID, "error", err)
	}
	return cause
}

func (o *Orchestrator) register(jobID uuid.UUID, cancel context.CancelFunc) {
	o.mu.Lock()
	o.active[jobID] = cancel
	o.mu.Unlock()
}

func (o *Orchestrator) unregister(jobID uuid.UUID) {
	o.mu.Lock()
	cancel, ok := o.active[jobID]
	delete(o.active, jobID)
	o.mu.Unlock()
	if ok {
		cancel()
	}
}
