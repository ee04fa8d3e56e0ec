// Command sweep-orphans deletes stored assets that no record references.
// Files younger than the configured minimum age are left alone so uploads
// whose record insert is still in flight survive. It is intended to be
// invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error (including partial deletion failures).
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/cultour-backend/internal/adapter/assetstore"
	"github.com/heartmarshall/cultour-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cultour-backend/internal/adapter/postgres/record"
	"github.com/heartmarshall/cultour-backend/internal/app"
	"github.com/heartmarshall/cultour-backend/internal/config"
	"github.com/heartmarshall/cultour-backend/internal/service/sweeper"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report orphans without deleting them")
	minAge := flag.Duration("min-age", 0, "override the configured minimum file age")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	store, err := assetstore.NewLocalStore(assetstore.Config{
		Root:    cfg.Upload.Dir,
		BaseURL: cfg.Upload.BaseURL(),
	})
	if err != nil {
		logger.Error("open asset store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	age := cfg.Sweeper.MinAge
	if *minAge > 0 {
		age = *minAge
	}

	svc := sweeper.NewService(logger, record.New(pool), store)

	res, err := svc.Sweep(ctx, age, *dryRun)
	if err != nil {
		logger.Error("sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if res.Failed > 0 {
		os.Exit(1)
	}
}
