package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/RichieRish05/ProRankAI/constants"
	prorankv1 "github.com/RichieRish05/ProRankAI/gen/prorank/v1"
	"github.com/RichieRish05/ProRankAI/internal/async"
	"github.com/RichieRish05/ProRankAI/internal/auth"
	"github.com/RichieRish05/ProRankAI/internal/common"
	"github.com/RichieRish05/ProRankAI/internal/docstore"
	"github.com/RichieRish05/ProRankAI/internal/docstore/drive"
	"github.com/RichieRish05/ProRankAI/internal/entity"
	"github.com/RichieRish05/ProRankAI/internal/export"
	"github.com/RichieRish05/ProRankAI/internal/extract/openai"
	"github.com/RichieRish05/ProRankAI/internal/lifecycle"
	"github.com/RichieRish05/ProRankAI/internal/orchestrator"
	"github.com/RichieRish05/ProRankAI/internal/query"
	"github.com/RichieRish05/ProRankAI/internal/repository/entstore"
	svc "github.com/RichieRish05/ProRankAI/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := entstore.Open(ctx, entstore.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer entstore.Close(entc, pool, logger)

	if err := entstore.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	jobsRepo := entstore.NewJobRepository(entc, logger)
	tasksRepo := entstore.NewTaskRepository(entc, logger)

	runner := docstore.NewExecRunner()
	driveClient := drive.NewClient(drive.Config{
		BaseURL:     cfg.Drive.BaseURL,
		AccessToken: cfg.Drive.AccessToken,
		PDFToText:   cfg.Drive.PDFToText,
	}, runner, logger)

	extractor := openai.NewClient(openai.Config{
		BaseURL:         cfg.LLM.BaseURL,
		Model:           cfg.LLM.Model,
		APIKey:          cfg.LLM.APIKey,
		Temperature:     cfg.LLM.Temperature,
		Timeout:         cfg.LLM.Timeout,
		LenientOptional: true,
	}, logger)

	refDate := func() time.Time { return cfg.ReferenceDate(time.Now()) }
	runnerSvc := lifecycle.NewRunner(tasksRepo, driveClient, extractor, refDate, logger)

	// The queue's terminal hook feeds job rollup. The orchestrator does
	// not exist yet when the queue is built, but the hook only fires for
	// dispatches the orchestrator itself enqueues.
	var orch *orchestrator.Orchestrator
	onTerminal := func(ctx context.Context, d entity.TaskDispatch, status constants.TaskStatus) {
		orch.OnTaskTerminal(ctx, d, status)
	}
	queue := async.NewDispatchQueue(runnerSvc, onTerminal, tasksRepo.MarkFailed, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithTaskTimeout(cfg.Queue.TaskTimeout),
	)
	orch = orchestrator.New(jobsRepo, tasksRepo, driveClient, queue, logger)

	gateway := query.NewGateway(jobsRepo, tasksRepo, logger)
	exporter := export.NewService(tasksRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(auth.UnaryInterceptor(verifier)))

	screener := svc.NewScreenerService(orch, gateway, exporter, logger)
	prorankv1.RegisterScreenerServiceServer(grpcServer, screener)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("prorankd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
