package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/sesh-ledger/internal/config"
)

// NewPool connects to PostgreSQL. Sessions run in UTC so timestamps
// round-trip unchanged, and are tagged with the configured application name.
//
// The device database may come up after the tracker, so the first ping is
// retried with backoff until cfg.ConnectTimeout elapses.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := waitReady(ctx, pool, cfg.ConnectTimeout); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

func poolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	params := poolCfg.ConnConfig.RuntimeParams
	params["timezone"] = "UTC"
	if cfg.ApplicationName != "" {
		params["application_name"] = cfg.ApplicationName
	}
	return poolCfg, nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

// waitReady pings until success, ctx is done, or timeout elapses. A
// non-positive timeout pings once.
func waitReady(ctx context.Context, db pinger, timeout time.Duration) error {
	if timeout <= 0 {
		return db.Ping(ctx)
	}

	backoff := retry.WithMaxDuration(timeout,
		retry.WithCappedDuration(2*time.Second, retry.NewExponential(100*time.Millisecond)))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.Ping(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
