package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/spendsync/internal/bankprofile"
	"github.com/joseph-ayodele/spendsync/internal/categorize"
	"github.com/joseph-ayodele/spendsync/internal/common"
	"github.com/joseph-ayodele/spendsync/internal/dedupe"
	"github.com/joseph-ayodele/spendsync/internal/export"
	"github.com/joseph-ayodele/spendsync/internal/extract"
	"github.com/joseph-ayodele/spendsync/internal/inbox"
	repo "github.com/joseph-ayodele/spendsync/internal/repository"
	syncer "github.com/joseph-ayodele/spendsync/internal/sync"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inboxPath   = flag.String("inbox", "", "JSON inbox dump to sync (required)")
		incremental = flag.Bool("incremental", false, "resume from the stored cursor instead of the full lookback window")
		out         = flag.String("out", "", "output XLSX file path (optional; empty skips the export)")
		fromStr     = flag.String("from", "", "export from date YYYY-MM-DD")
		toStr       = flag.String("to", "", "export to date YYYY-MM-DD")
	)
	flag.Parse()

	// Validate required flags
	if *inboxPath == "" {
		printError("Error: --inbox is required\n")
		os.Exit(1)
	}

	// Parse date filters
	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	client, pool, err := repo.Open(ctx, repo.Config{
		Driver:          cfg.Database.Driver,
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
	defer repo.Close(client, pool, logger)

	if cfg.Database.Driver == "sqlite" {
		if err := repo.Migrate(ctx, client, logger); err != nil {
			os.Exit(1)
		}
	}

	registry, err := bankprofile.Load(logger)
	if err != nil {
		logger.Error("failed to load bank profiles", "error", err)
		os.Exit(1)
	}

	transactions := repo.NewTransactionRepository(client, logger)
	categories := repo.NewCategoryRepository(client, logger)
	cursors := repo.NewCursorRepository(client, logger)

	engine, err := categorize.NewEngine(ctx, categories, categories, logger)
	if err != nil {
		logger.Error("failed to build categorization engine", "error", err)
		os.Exit(1)
	}

	coordinator := syncer.NewCoordinator(syncer.Options{
		Source:       inbox.NewFileSource(*inboxPath, logger),
		Store:        transactions,
		Cursors:      cursors,
		Registry:     registry,
		Extractor:    extract.New(logger),
		Deduplicator: dedupe.New(transactions, cfg.Sync.DedupWindow, logger),
		Categorizer:  engine,
		LookbackDays: cfg.Sync.LookbackDays,
		Logger:       logger,
	})

	summary, err := coordinator.Run(ctx, *incremental)
	if err != nil {
		logger.Error("sync run failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("sync complete: read=%d transactional=%d saved=%d duplicates=%d failures=%d\n",
		summary.MessagesRead, summary.Transactional, summary.Saved,
		summary.Duplicates, summary.ExtractionFailures)

	if *out == "" {
		return
	}

	exporter := export.NewService(transactions, logger)
	data, err := exporter.ExportTransactionsXLSX(ctx, from, to, nil)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		logger.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("failed to write workbook", "path", *out, "error", err)
		os.Exit(1)
	}
	fmt.Printf("exported %s\n", *out)
}
