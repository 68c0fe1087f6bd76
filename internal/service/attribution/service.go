// Package attribution turns logged activities into stash charges.
package attribution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/sesh-ledger/internal/domain"
	"github.com/heartmarshall/sesh-ledger/internal/service/ledger"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type activityRepo interface {
	Create(ctx context.Context, a domain.ActivityLog) error
	CreateSnapshot(ctx context.Context, s domain.StashSnapshot) error
}

type ratioReader interface {
	Get(ctx context.Context) (domain.ConsumptionRatio, error)
}

type stashReader interface {
	CurrentBalance(ctx context.Context) (domain.Stash, error)
}

type stashLedger interface {
	Apply(ctx context.Context, input ledger.AppendInput) (domain.StashEntry, error)
}

type txManager interface {
	RunInTxRetry(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service records activities and charges the resolved stash.
type Service struct {
	activities    activityRepo
	ratios        ratioReader
	stash         stashReader
	ledger        stashLedger
	tx            txManager
	log           *slog.Logger
	deviceOwnerID string
	now           func() time.Time
}

// NewService creates a new attribution service.
func NewService(
	log *slog.Logger,
	activities activityRepo,
	ratios ratioReader,
	stash stashReader,
	ledgerSvc stashLedger,
	tx txManager,
	deviceOwnerID string,
) *Service {
	return &Service{
		activities:    activities,
		ratios:        ratios,
		stash:         stash,
		ledger:        ledgerSvc,
		tx:            tx,
		log:           log.With("service", "attribution"),
		deviceOwnerID: deviceOwnerID,
		now:           time.Now,
	}
}

// Record logs the activity and charges the resolved stash in one transaction:
// activity log, CONSUME entry with its balance update, and the snapshot.
//
// When the activity kind does not deduct, or the local stash has consumption
// disabled, only the activity is written. When the charged owner stash does
// not exist, the activity is still written and the result carries
// domain.ErrUnresolvedStashTarget as Warning.
func (s *Service) Record(ctx context.Context, input RecordInput) (domain.Attribution, error) {
	if err := input.Validate(); err != nil {
		return domain.Attribution{}, err
	}

	id := input.ActivityID
	if id == uuid.Nil {
		id = uuid.Must(uuid.NewV7())
	}
	now := s.now()
	ts := input.Timestamp
	if ts.IsZero() {
		ts = now
	}

	target := domain.ResolveChargeTarget(input.Payer, s.deviceOwnerID)
	activity := domain.ActivityLog{
		ID:               id,
		SmokerID:         input.SmokerID,
		ConsumerID:       input.ConsumerID,
		ConsumerName:     input.ConsumerName,
		ChargeKind:       target.Kind(),
		ActivityType:     input.Type,
		CustomActivityID: input.CustomActivityID,
		SessionID:        input.SessionID,
		Timestamp:        ts.UTC(),
		CreatedAt:        now.UTC(),
	}
	account := target.Account(activity.EffectiveConsumerID())
	activity.PayerStashOwnerID = account.OwnerIDPtr()

	var result domain.Attribution
	err := s.tx.RunInTxRetry(ctx, func(txCtx context.Context) error {
		result = domain.Attribution{Activity: activity, Target: target, Grams: decimal.Zero}

		if err := s.activities.Create(txCtx, activity); err != nil {
			return fmt.Errorf("create activity log: %w", err)
		}

		ratio, err := s.ratios.Get(txCtx)
		if err != nil {
			return fmt.Errorf("get ratio: %w", err)
		}
		st, err := s.stash.CurrentBalance(txCtx)
		if err != nil {
			return fmt.Errorf("read local stash: %w", err)
		}

		ref := activity.Ref()
		if !st.ConsumeFromStash || !ratio.DeductsFromStash(ref) {
			return nil
		}
		grams := ratio.WithBowlFallback(st).GramsFor(ref)

		activityType := activity.ActivityType
		smoker := activity.ConsumerName
		entry, err := s.ledger.Apply(txCtx, ledger.AppendInput{
			Account:      account,
			Kind:         domain.EntryKindConsume,
			Grams:        grams,
			Timestamp:    activity.Timestamp,
			ActivityType: &activityType,
			SmokerName:   &smoker,
		})
		if err != nil {
			if !account.IsLocal() && errors.Is(err, domain.ErrNotFound) {
				result.Warning = domain.ErrUnresolvedStashTarget
				return nil
			}
			return fmt.Errorf("charge %s: %w", account, err)
		}

		snapshot := domain.StashSnapshot{
			ID:                uuid.Must(uuid.NewV7()),
			ActivityLogID:     activity.ID,
			Grams:             entry.Grams,
			PricePerGram:      entry.PricePerGram,
			PayerStashOwnerID: account.OwnerIDPtr(),
			CreatedAt:         now.UTC(),
		}
		if err := s.activities.CreateSnapshot(txCtx, snapshot); err != nil {
			return fmt.Errorf("create snapshot: %w", err)
		}

		result.Grams = entry.Grams
		result.PricePerGram = entry.PricePerGram
		result.Cost = snapshot.Cost()
		result.Entry = &entry
		result.Snapshot = &snapshot
		return nil
	})
	if err != nil {
		return domain.Attribution{}, err
	}

	if result.Warning != nil {
		s.log.WarnContext(ctx, "activity logged without stash charge",
			slog.String("activity_id", activity.ID.String()),
			slog.String("target", target.String()),
			slog.String("account", account.String()),
			slog.String("warning", result.Warning.Error()),
		)
		return result, nil
	}

	s.log.InfoContext(ctx, "activity recorded",
		slog.String("activity_id", activity.ID.String()),
		slog.String("type", activity.Ref().Key()),
		slog.String("consumer", activity.EffectiveConsumerID()),
		slog.String("target", target.String()),
		slog.String("grams", result.Grams.String()),
	)
	return result, nil
}
