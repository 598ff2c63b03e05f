package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/jcordova-gis/geoingest/internal/async"
	"github.com/jcordova-gis/geoingest/internal/common"
	"github.com/jcordova-gis/geoingest/internal/convert"
	"github.com/jcordova-gis/geoingest/internal/ingest"
	"github.com/jcordova-gis/geoingest/internal/jobs"
	"github.com/jcordova-gis/geoingest/internal/repository"
	"github.com/jcordova-gis/geoingest/internal/upload"
	"github.com/jcordova-gis/geoingest/internal/vector"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if pool != nil {
		if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
			logger.Error("database health check failed", "error", err)
			os.Exit(1)
		}
	}

	jobsRepo := repository.NewJobRepository(entc, logger)
	productsRepo := repository.NewDataProductRepository(entc, logger)
	rawRepo := repository.NewRawDataRepository(entc, logger)
	featuresRepo := repository.NewVectorFeatureRepository(entc, logger)

	runner := convert.NewExecRunner()
	raster := convert.NewRasterConverter(runner, cfg.Engines, logger)
	pointCloud := convert.NewPointCloudConverter(runner, cfg.Engines, logger)
	ingestor := vector.NewIngestor(featuresRepo, runner, cfg.Engines, vector.Config{
		FeatureLimit:          cfg.Pipeline.VectorFeatureLimit,
		RejectMixedGeometries: cfg.Pipeline.RejectMixedGeometries,
	}, logger)

	orch := upload.NewOrchestrator(
		jobs.NewManager(jobsRepo, logger),
		productsRepo,
		rawRepo,
		raster,
		pointCloud,
		ingestor,
		logger,
	)

	queue := async.NewUploadQueue(orch.Process, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)

	events, watchErrs, err := ingest.StartWatcher(ctx, logger, ingest.WatchConfig{
		Root:        cfg.Storage.StagingDir,
		InitialScan: true,
		Debounce:    500 * time.Millisecond,
	})
	if err != nil {
		logger.Error("starting staging watcher", "error", err)
		os.Exit(1)
	}
	intake := ingest.NewIntake(queue, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		intake.Run(gctx, events)
		return nil
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case werr, ok := <-watchErrs:
				if !ok {
					return nil
				}
				logger.Error("staging watcher error", "error", werr)
			}
		}
	})
	g.Go(func() error {
		logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		grpcServer.GracefulStop()

		drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		queue.Shutdown(drainCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("daemon exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("daemon stopped")
}
