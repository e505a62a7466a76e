package server

import (
	"time"

	prorankv1 "github.com/RichieRish05/ProRankAI/gen/prorank/v1"
	"github.com/RichieRish05/ProRankAI/internal/entity"
)

func jobToProto(j *entity.Job) *prorankv1.Job {
	return &prorankv1.Job{
		Id:        j.ID.String(),
		Name:      j.Name,
		SourceRef: j.SourceRef,
		Status:    string(j.Status),
		CreatedAt: j.CreatedAt.Format(time.RFC3339Nano),
	}
}

func taskToProto(t *entity.ScoreTask) *prorankv1.Task {
	out := &prorankv1.Task{
		Id:        t.ID.String(),
		JobId:     t.JobID.String(),
		DocName:   t.DocName,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt.Format(time.RFC3339Nano),
	}
	out.ViewUrl = t.ViewURL
	out.PreviewUrl = t.PreviewURL
	out.Gpa = t.GPA
	out.SchoolYear = t.SchoolYear
	out.ErrorMessage = t.ErrorMessage
	if t.NumInternships != nil {
		n := int32(*t.NumInternships)
		out.NumInternships = &n
	}
	if t.Score != nil {
		sc := int32(*t.Score)
		out.Score = &sc
	}
	if t.Breakdown != nil {
		out.Breakdown = &prorankv1.ScoreBreakdown{
			GpaContribution:           int32(t.Breakdown.GPAContribution),
			ExperienceContribution:    int32(t.Breakdown.ExperienceContribution),
			ImpactQualityContribution: int32(t.Breakdown.ImpactQualityContribution),
		}
	}
	return out
}

func statsToProto(s entity.TaskStats) *prorankv1.TaskStats {
	return &prorankv1.TaskStats{
		NumResumes:   int32(s.Count),
		AverageScore: int32(s.Average),
		HighScore:    int32(s.Max),
		LowestScore:  int32(s.Min),
	}
}
