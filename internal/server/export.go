package server

import (
	"context"
	"fmt"
	"strings"

	prorankv1 "github.com/RichieRish05/ProRankAI/gen/prorank/v1"
	"github.com/RichieRish05/ProRankAI/internal/query"
)

func (s *ScreenerService) ExportResults(ctx context.Context, req *prorankv1.ExportResultsRequest) (*prorankv1.ExportResultsResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.ownedJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	filter := query.Normalize(filtersFromProto(req.GetFilters()))
	content, err := s.exporter.ExportTasksXLSX(ctx, jobID, filter)
	if err != nil {
		return nil, s.toStatus(err)
	}

	return &prorankv1.ExportResultsResponse{
		Filename: exportFilename(job.Name),
		Content:  content,
	}, nil
}

func exportFilename(jobName string) string {
	name := strings.TrimSpace(jobName)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, name)
	if name == "" {
		name = "results"
	}
	return fmt.Sprintf("%s.xlsx", name)
}
