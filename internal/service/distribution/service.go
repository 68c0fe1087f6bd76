// Package distribution computes per-participant consumption shares over a
// reporting period.
package distribution

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type windowResolver interface {
	Resolve(ctx context.Context, period domain.StashTimePeriod, now time.Time) (domain.Window, error)
}

type activityReader interface {
	ListByRange(ctx context.Context, f domain.ActivityFilter) ([]domain.ActivityLog, error)
	SnapshotsByActivityIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.StashSnapshot, error)
}

type ratioReader interface {
	Get(ctx context.Context) (domain.ConsumptionRatio, error)
}

type stashReader interface {
	CurrentBalance(ctx context.Context) (domain.Stash, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service computes distributions on demand.
type Service struct {
	windows    windowResolver
	activities activityReader
	ratios     ratioReader
	stash      stashReader
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new distribution service.
func NewService(log *slog.Logger, windows windowResolver, activities activityReader, ratios ratioReader, stash stashReader) *Service {
	return &Service{
		windows:    windows,
		activities: activities,
		ratios:     ratios,
		stash:      stash,
		log:        log.With("service", "distribution"),
		now:        time.Now,
	}
}

// Distribution resolves period at now and aggregates the activities in it.
// A zero filter matches every participant.
func (s *Service) Distribution(ctx context.Context, period domain.StashTimePeriod, filter domain.ParticipantFilter) ([]domain.StashDistribution, error) {
	if !period.IsValid() {
		return nil, domain.NewValidationError("period", "unknown period "+string(period))
	}
	if !filter.All && len(filter.IDs) == 0 {
		filter = domain.AllParticipants()
	}

	w, err := s.windows.Resolve(ctx, period, s.now())
	if err != nil {
		return nil, fmt.Errorf("resolve window: %w", err)
	}

	var (
		activities []domain.ActivityLog
		ratio      domain.ConsumptionRatio
		stash      domain.Stash
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		f := domain.ActivityFilter{From: w.Start, To: w.QueryEnd()}
		if !filter.All {
			f.ConsumerIDs = filter.IDs
		}
		var err error
		activities, err = s.activities.ListByRange(gctx, f)
		if err != nil {
			return fmt.Errorf("list activities: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ratio, err = s.ratios.Get(gctx)
		if err != nil {
			return fmt.Errorf("get ratio: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stash, err = s.stash.CurrentBalance(gctx)
		if err != nil {
			return fmt.Errorf("read local stash: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshots := map[uuid.UUID]domain.StashSnapshot{}
	if len(activities) > 0 {
		ids := make([]uuid.UUID, len(activities))
		for i, a := range activities {
			ids[i] = a.ID
		}
		snapshots, err = s.activities.SnapshotsByActivityIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("load snapshots: %w", err)
		}
	}

	out := Calculate(activities, snapshots, ratio, stash, filter)

	s.log.DebugContext(ctx, "distribution computed",
		slog.String("period", string(period)),
		slog.String("window", w.String()),
		slog.Int("activities", len(activities)),
		slog.Int("participants", len(out)),
	)
	return out, nil
}
