package server

import (
	"context"
	"time"

	prorankv1 "github.com/RichieRish05/ProRankAI/gen/prorank/v1"
)

func (s *ScreenerService) ListTasks(ctx context.Context, req *prorankv1.ListTasksRequest) (*prorankv1.ListTasksResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.ownedJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	tasks, stats, err := s.gateway.ListTasks(ctx, jobID, filtersFromProto(req.GetFilters()))
	if err != nil {
		return nil, s.toStatus(err)
	}

	out := make([]*prorankv1.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToProto(t))
	}
	return &prorankv1.ListTasksResponse{
		JobName:      job.Name,
		JobCreatedAt: job.CreatedAt.Format(time.RFC3339Nano),
		Tasks:        out,
		Stats:        statsToProto(stats),
	}, nil
}

func (s *ScreenerService) GetTask(ctx context.Context, req *prorankv1.GetTaskRequest) (*prorankv1.GetTaskResponse, error) {
	taskID, err := parseID(req.GetTaskId(), "task_id")
	if err != nil {
		return nil, err
	}

	task, err := s.gateway.GetTask(ctx, taskID)
	if err != nil {
		return nil, s.toStatus(err)
	}
	// Ownership rides on the parent job.
	if _, err := s.ownedJob(ctx, task.JobID); err != nil {
		return nil, err
	}
	return &prorankv1.GetTaskResponse{Task: taskToProto(task)}, nil
}
