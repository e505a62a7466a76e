package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/RichieRish05/ProRankAI/internal/entity"
	"github.com/RichieRish05/ProRankAI/internal/repository"
)

// Service is a tiny façade over the task repository that produces XLSX
// bytes for a job's screening results.
type Service struct {
	tasks  repository.TaskRepository
	logger *slog.Logger
}

func NewService(tasks repository.TaskRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{tasks: tasks, logger: logger}
}

// ExportTasksXLSX returns an XLSX workbook (as bytes) with one row per
// task in the job, filtered the same way the listing endpoint filters.
func (s *Service) ExportTasksXLSX(ctx context.Context, jobID uuid.UUID, filter entity.TaskFilter) ([]byte, error) {
	start := time.Now()

	tasks, err := s.tasks.ListByJob(ctx, jobID, filter)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Results"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Resume",
		"Status",
		"School Year",
		"GPA",
		"Internships",
		"Score",
		"GPA Points",
		"Experience Points",
		"Impact Points",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, t := range tasks {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, t.DocName)
		write(2, string(t.Status))
		if t.SchoolYear != nil {
			write(3, *t.SchoolYear)
		}
		if t.GPA != nil {
			write(4, *t.GPA)
		}
		if t.NumInternships != nil {
			write(5, *t.NumInternships)
		}
		if t.Score != nil {
			write(6, *t.Score)
		}
		if t.Breakdown != nil {
			write(7, t.Breakdown.GPAContribution)
			write(8, t.Breakdown.ExperienceContribution)
			write(9, t.Breakdown.ImpactQualityContribution)
		}
		if t.ErrorMessage != nil {
			write(10, truncate(*t.ErrorMessage, 140))
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 36) // resume name
	_ = f.SetColWidth(sheet, "B", "C", 14)
	_ = f.SetColWidth(sheet, "D", "I", 12)
	_ = f.SetColWidth(sheet, "J", "J", 48) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"job_id", jobID.String(),
		"rows", len(tasks),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
