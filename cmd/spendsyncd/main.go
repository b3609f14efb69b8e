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
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	spendsyncv1 "github.com/joseph-ayodele/spendsync/gen/proto/spendsync/v1"
	"github.com/joseph-ayodele/spendsync/internal/async"
	"github.com/joseph-ayodele/spendsync/internal/bankprofile"
	"github.com/joseph-ayodele/spendsync/internal/categorize"
	"github.com/joseph-ayodele/spendsync/internal/common"
	"github.com/joseph-ayodele/spendsync/internal/dedupe"
	"github.com/joseph-ayodele/spendsync/internal/export"
	"github.com/joseph-ayodele/spendsync/internal/extract"
	"github.com/joseph-ayodele/spendsync/internal/inbox"
	"github.com/joseph-ayodele/spendsync/internal/repository"
	"github.com/joseph-ayodele/spendsync/internal/server"
	syncer "github.com/joseph-ayodele/spendsync/internal/sync"
)

func main() {
	logger := common.NewLogger()
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, pool, err := repository.Open(ctx, repository.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(client, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	if cfg.Database.Driver == "sqlite" {
		if err := repository.Migrate(ctx, client, logger); err != nil {
			os.Exit(1)
		}
	}

	registry, err := bankprofile.Load(logger)
	if err != nil {
		logger.Error("failed to load bank profiles", "error", err)
		os.Exit(1)
	}

	transactions := repository.NewTransactionRepository(client, logger)
	categories := repository.NewCategoryRepository(client, logger)
	cursors := repository.NewCursorRepository(client, logger)

	engine, err := categorize.NewEngine(ctx, categories, categories, logger)
	if err != nil {
		logger.Error("failed to build categorization engine", "error", err)
		os.Exit(1)
	}

	coordinator := syncer.NewCoordinator(syncer.Options{
		Source:       inbox.NewFileSource(cfg.Sync.InboxPath, logger),
		Store:        transactions,
		Cursors:      cursors,
		Registry:     registry,
		Extractor:    extract.New(logger),
		Deduplicator: dedupe.New(transactions, cfg.Sync.DedupWindow, logger),
		Categorizer:  engine,
		LookbackDays: cfg.Sync.LookbackDays,
		Logger:       logger,
	})

	var scheduler *async.Scheduler
	if cfg.Sync.Interval > 0 {
		scheduler = async.NewScheduler(coordinator, logger, async.WithInterval(cfg.Sync.Interval))
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(server.UnaryLoggingInterceptor(logger)))
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	exporter := export.NewService(transactions, logger)
	spendsyncv1.RegisterSyncServiceServer(grpcServer, server.NewSyncService(coordinator, logger))
	spendsyncv1.RegisterTransactionsServiceServer(grpcServer, server.NewTransactionsService(transactions, engine, exporter, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if scheduler != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		scheduler.Shutdown(shutdownCtx)
		cancel()
	}
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
