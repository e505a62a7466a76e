package server

import (
	"context"

	prorankv1 "github.com/RichieRish05/ProRankAI/gen/prorank/v1"
)

func (s *ScreenerService) SubmitJob(ctx context.Context, req *prorankv1.SubmitJobRequest) (*prorankv1.SubmitJobResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	job, err := s.orch.Submit(ctx, userID, req.GetSourceRef(), req.GetName())
	if err != nil {
		return nil, s.toStatus(err)
	}

	// Processing continues past this RPC, so it runs under its own
	// context rather than the request's.
	go func() {
		if err := s.orch.Run(context.Background(), job.ID); err != nil {
			s.logger.Error("job run failed", "job_id", job.ID, "error", err)
		}
	}()

	return &prorankv1.SubmitJobResponse{Job: jobToProto(job)}, nil
}

func (s *ScreenerService) CancelJob(ctx context.Context, req *prorankv1.CancelJobRequest) (*prorankv1.CancelJobResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedJob(ctx, jobID); err != nil {
		return nil, err
	}

	if err := s.orch.Cancel(ctx, jobID); err != nil {
		return nil, s.toStatus(err)
	}
	job, err := s.gateway.GetJob(ctx, jobID)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &prorankv1.CancelJobResponse{Job: jobToProto(job)}, nil
}

func (s *ScreenerService) ListJobs(ctx context.Context, _ *prorankv1.ListJobsRequest) (*prorankv1.ListJobsResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := s.gateway.ListJobs(ctx, userID)
	if err != nil {
		return nil, s.toStatus(err)
	}
	out := make([]*prorankv1.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobToProto(j))
	}
	return &prorankv1.ListJobsResponse{Jobs: out}, nil
}
