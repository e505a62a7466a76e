package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/gen/ent"
	"github.com/RichieRish05/ProRankAI/internal/common"
	"github.com/RichieRish05/ProRankAI/internal/docstore"
	"github.com/RichieRish05/ProRankAI/internal/docstore/local"
	"github.com/RichieRish05/ProRankAI/internal/entity"
	"github.com/RichieRish05/ProRankAI/internal/export"
	"github.com/RichieRish05/ProRankAI/internal/extract/openai"
	"github.com/RichieRish05/ProRankAI/internal/lifecycle"
	"github.com/RichieRish05/ProRankAI/internal/orchestrator"
	"github.com/RichieRish05/ProRankAI/internal/query"
	"github.com/RichieRish05/ProRankAI/internal/repository/entstore"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// syncDispatcher runs each task inline instead of queueing it, so the
// batch run is strictly sequential and finished when Run returns.
type syncDispatcher struct {
	run        func(ctx context.Context, d entity.TaskDispatch) (constants.TaskStatus, error)
	fail       func(ctx context.Context, taskID uuid.UUID, message string) error
	onTerminal func(ctx context.Context, d entity.TaskDispatch, status constants.TaskStatus)
	logger     *slog.Logger
}

func (s *syncDispatcher) Enqueue(ctx context.Context, d entity.TaskDispatch) error {
	status, err := s.run(ctx, d)
	if err != nil {
		s.logger.Error("task failed", "task_id", d.TaskID, "error", err)
	}
	// Same contract as the async queue: a non-terminal result is forced
	// failed on the row before the rollup hook sees it.
	if !status.Terminal() {
		status = constants.TaskStatusFailed
		msg := "task runner did not reach a terminal status"
		if err != nil {
			msg = err.Error()
		}
		if ffErr := s.fail(ctx, d.TaskID, msg); ffErr != nil {
			s.logger.Error("force-fail failed", "task_id", d.TaskID, "error", ffErr)
		}
	}
	s.onTerminal(ctx, d, status)
	return nil
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "directory of resumes to score (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		jobName = flag.String("name", "Local Batch", "job name used in the export")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "results.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY is required\n")
		os.Exit(1)
	}

	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if *inmem {
		entc, err = entstore.OpenSQLite(ctx, "", logger)
	} else {
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL is required without --inmem\n")
			os.Exit(1)
		}
		entc, pool, err = entstore.Open(ctx, entstore.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
	}
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer entstore.Close(entc, pool, logger)

	jobsRepo := entstore.NewJobRepository(entc, logger)
	tasksRepo := entstore.NewTaskRepository(entc, logger)

	runner := docstore.NewExecRunner()
	store := local.NewStore(cfg.Drive.PDFToText, runner, logger)

	extractor := openai.NewClient(openai.Config{
		BaseURL:         cfg.LLM.BaseURL,
		Model:           cfg.LLM.Model,
		APIKey:          cfg.LLM.APIKey,
		Temperature:     cfg.LLM.Temperature,
		Timeout:         cfg.LLM.Timeout,
		LenientOptional: true,
	}, logger)

	refDate := func() time.Time { return cfg.ReferenceDate(time.Now()) }
	taskRunner := lifecycle.NewRunner(tasksRepo, store, extractor, refDate, logger)

	var orch *orchestrator.Orchestrator
	dispatcher := &syncDispatcher{
		run:  taskRunner.Run,
		fail: tasksRepo.MarkFailed,
		onTerminal: func(ctx context.Context, d entity.TaskDispatch, status constants.TaskStatus) {
			orch.OnTaskTerminal(ctx, d, status)
		},
		logger: logger,
	}
	orch = orchestrator.New(jobsRepo, tasksRepo, store, dispatcher, logger)

	userID := uuid.New()
	job, err := orch.Submit(ctx, userID, *dir, *jobName)
	if err != nil {
		logger.Error("failed to create job", "error", err)
		os.Exit(1)
	}
	logger.Info("starting batch", "job_id", job.ID, "dir", *dir)

	if err := orch.Run(ctx, job.ID); err != nil {
		logger.Error("batch run failed", "error", err)
		os.Exit(1)
	}

	// Tally outcomes for the summary.
	tasks, stats, err := query.NewGateway(jobsRepo, tasksRepo, logger).
		ListTasks(ctx, job.ID, entity.FilterFlags{})
	if err != nil {
		logger.Error("failed to list results", "error", err)
		os.Exit(1)
	}
	scored, failed := 0, 0
	for _, t := range tasks {
		switch t.Status {
		case constants.TaskStatusScored:
			scored++
		case constants.TaskStatusFailed:
			failed++
		}
	}

	logger.Info("exporting to XLSX", "output", *out)
	exporter := export.NewService(tasksRepo, logger)
	xlsxBytes, err := exporter.ExportTasksXLSX(ctx, job.ID, entity.TaskFilter{})
	if err != nil {
		logger.Error("failed to export results", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"resumes", len(tasks),
		"scored", scored,
		"failed", failed,
		"average_score", stats.Average,
		"output_file", *out)

	fmt.Printf("Batch screening complete!\n")
	fmt.Printf("- Resumes: %d\n", len(tasks))
	fmt.Printf("- Scored: %d\n", scored)
	fmt.Printf("- Failures: %d\n", failed)
	fmt.Printf("- Average score: %d\n", stats.Average)
	fmt.Printf("- Output: %s\n", *out)
}
