package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sesh-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/sesh-ledger/internal/config"
	"github.com/heartmarshall/sesh-ledger/internal/domain"
	"github.com/heartmarshall/sesh-ledger/internal/service/goal"
)

// Run is the tracker daemon entry point. It loads configuration, connects to
// the database, wires the services and then sweeps goals on an interval and
// logs published goal events until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting tracker",
		slog.String("version", BuildVersion()),
		slog.String("device_owner", cfg.Device.OwnerID),
		slog.Duration("sweep_interval", cfg.Sweep.Interval),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svcs := Wire(pool, cfg, logger)

	events, cancel := svcs.Tracker.Subscribe(cfg.Goals.EventBuffer)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		LogEvents(gctx, events, logger)
		return nil
	})
	g.Go(func() error {
		RunSweeps(gctx, svcs.Goals, cfg.Sweep, logger)
		return nil
	})

	err = g.Wait()
	logger.Info("tracker stopped")
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

type sweeper interface {
	Sweep(ctx context.Context, now time.Time) (goal.SweepReport, error)
}

// RunSweeps runs one sweep immediately and then one per interval until ctx
// is done. A failed sweep is logged and the loop continues.
func RunSweeps(ctx context.Context, s sweeper, cfg config.SweepConfig, log *slog.Logger) {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}

	sweepOnce(ctx, s, cfg.Timeout, log)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweepOnce(ctx, s, cfg.Timeout, log)
		}
	}
}

func sweepOnce(ctx context.Context, s sweeper, timeout time.Duration, log *slog.Logger) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	report, err := s.Sweep(ctx, time.Now())
	if err != nil {
		log.ErrorContext(ctx, "goal sweep failed", slog.String("error", err.Error()))
		return
	}
	if report.Recomputed > 0 || report.Advanced > 0 {
		log.InfoContext(ctx, "goal sweep",
			slog.Int("recomputed", report.Recomputed),
			slog.Int("advanced", report.Advanced),
		)
	}
}

// LogEvents logs every goal event received until ctx is done or the channel
// is closed.
func LogEvents(ctx context.Context, events <-chan domain.GoalEvent, log *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			log.InfoContext(ctx, "goal notification",
				slog.String("goal_id", e.GoalID.String()),
				slog.String("kind", string(e.Kind)),
				slog.Int("percentage", e.Percentage),
				slog.Int("round", e.Round),
			)
		}
	}
}
