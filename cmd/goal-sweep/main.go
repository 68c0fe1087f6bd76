// Command goal-sweep recomputes rolling goal windows and advances fixed
// goal periods once. It is intended to be invoked by an external cron job
// when the tracker daemon is not running.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/sesh-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/sesh-ledger/internal/app"
	"github.com/heartmarshall/sesh-ledger/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs := app.Wire(pool, cfg, logger)

	now := time.Now()
	report, err := svcs.Goals.Sweep(ctx, now)
	if err != nil {
		logger.Error("goal sweep failed",
			slog.String("error", err.Error()),
			slog.Time("at", now),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("goal sweep completed",
		slog.Int("recomputed", report.Recomputed),
		slog.Int("advanced", report.Advanced),
		slog.Int("events", len(report.Events)),
	)
}
