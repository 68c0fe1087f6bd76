// Command reconcile replays the ledger of the local stash and every owner
// stash and checks that entries and balances agree. It is intended to be
// invoked by an external cron job.
//
// Exit codes: 0 = consistent, 1 = inconsistency found or error.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/sesh-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/sesh-ledger/internal/app"
	"github.com/heartmarshall/sesh-ledger/internal/config"
	"github.com/heartmarshall/sesh-ledger/internal/domain"
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

	reports, err := svcs.Ledger.ReconcileAll(ctx)
	for _, r := range reports {
		if r.OK() {
			logger.Info("ledger consistent",
				slog.String("account", r.Account.String()),
				slog.Int("entries", r.Entries),
				slog.String("current_grams", r.CurrentGrams.String()),
			)
			continue
		}
		for _, issue := range r.Issues {
			logger.Error("ledger inconsistency",
				slog.String("account", r.Account.String()),
				slog.String("issue", issue),
			)
		}
	}

	if err != nil {
		if errors.Is(err, domain.ErrLedgerIntegrity) {
			logger.Error("reconcile found inconsistencies", slog.Int("accounts", len(reports)))
		} else {
			logger.Error("reconcile failed", slog.String("error", err.Error()))
		}
		pool.Close()
		os.Exit(1)
	}

	logger.Info("reconcile completed", slog.Int("accounts", len(reports)))
}
