// Package tracker is the entry point for collaborators: the activity source,
// the session lifecycle, the stats views and goal subscribers.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/sesh-ledger/internal/domain"
	"github.com/heartmarshall/sesh-ledger/internal/service/attribution"
	"github.com/heartmarshall/sesh-ledger/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type attributor interface {
	Record(ctx context.Context, input attribution.RecordInput) (domain.Attribution, error)
}

type goalEngine interface {
	ProcessActivity(ctx context.Context, a domain.ActivityLog) ([]domain.GoalEvent, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Goal, error)
	OnSessionStarted(ctx context.Context, sessionID string, at time.Time) (int, error)
	OnSessionEnded(ctx context.Context, sessionID string, at time.Time) (int, error)
	Subscribe(buffer int) (<-chan domain.GoalEvent, func())
}

type balanceReader interface {
	CurrentBalance(ctx context.Context) (domain.Stash, error)
}

type distributor interface {
	Distribution(ctx context.Context, period domain.StashTimePeriod, filter domain.ParticipantFilter) ([]domain.StashDistribution, error)
}

type sessionRepo interface {
	Start(ctx context.Context, id string, at time.Time) (domain.Session, error)
	End(ctx context.Context, id string, at time.Time) (domain.Session, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service wires attribution, the ledger, distribution and goals behind the
// operations the app exposes.
type Service struct {
	attribution   attributor
	goals         goalEngine
	balances      balanceReader
	distribution  distributor
	sessions      sessionRepo
	log           *slog.Logger
	deviceOwnerID string
	now           func() time.Time
}

// NewService creates a new tracker facade.
func NewService(
	log *slog.Logger,
	attr attributor,
	goals goalEngine,
	balances balanceReader,
	dist distributor,
	sessions sessionRepo,
	deviceOwnerID string,
) *Service {
	return &Service{
		attribution:   attr,
		goals:         goals,
		balances:      balances,
		distribution:  dist,
		sessions:      sessions,
		log:           log.With("service", "tracker"),
		deviceOwnerID: deviceOwnerID,
		now:           time.Now,
	}
}

// ActivityResult is the outcome of one logged activity.
type ActivityResult struct {
	Attribution domain.Attribution
	Events      []domain.GoalEvent
}

// LogActivity records the activity with its stash charge, then feeds it to
// the goals. The activity is committed before goals are touched: when the
// goal fan-out fails the result is still returned together with the error.
func (s *Service) LogActivity(ctx context.Context, input RecordConsumptionInput) (ActivityResult, error) {
	ctx = ctxutil.EnsureRequestID(ctx)

	smoker, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		smoker = s.deviceOwnerID
	}

	attr, err := s.attribution.Record(ctx, attribution.RecordInput{
		SmokerID:         smoker,
		ConsumerID:       input.ConsumerID,
		ConsumerName:     input.ConsumerName,
		Payer:            input.payer(),
		Type:             input.Type,
		CustomActivityID: input.CustomActivityID,
		SessionID:        input.SessionID,
		Timestamp:        input.Timestamp,
	})
	if err != nil {
		return ActivityResult{}, fmt.Errorf("record activity: %w", err)
	}
	result := ActivityResult{Attribution: attr}

	events, err := s.goals.ProcessActivity(ctx, attr.Activity)
	result.Events = events
	if err != nil {
		s.log.ErrorContext(ctx, "goal update failed",
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			slog.String("activity_id", attr.Activity.ID.String()),
			slog.String("error", err.Error()),
		)
		return result, fmt.Errorf("process goals: %w", err)
	}
	return result, nil
}

// RecordConsumption logs one activity and returns the charge snapshot, or nil
// when nothing was drawn from a stash.
func (s *Service) RecordConsumption(ctx context.Context, input RecordConsumptionInput) (*domain.StashSnapshot, error) {
	res, err := s.LogActivity(ctx, input)
	return res.Attribution.Snapshot, err
}

// CurrentBalance returns the local stash.
func (s *Service) CurrentBalance(ctx context.Context) (domain.Stash, error) {
	return s.balances.CurrentBalance(ctx)
}

// Distribution returns per-participant consumption within the period.
func (s *Service) Distribution(ctx context.Context, period domain.StashTimePeriod, filter domain.ParticipantFilter) ([]domain.StashDistribution, error) {
	return s.distribution.Distribution(ctx, period, filter)
}

// GoalSnapshot returns the current state of a goal.
func (s *Service) GoalSnapshot(ctx context.Context, goalID uuid.UUID) (domain.Goal, error) {
	return s.goals.Get(ctx, goalID)
}

// Subscribe registers a goal event subscriber.
func (s *Service) Subscribe(buffer int) (<-chan domain.GoalEvent, func()) {
	return s.goals.Subscribe(buffer)
}

// ---------------------------------------------------------------------------
// Session lifecycle
// ---------------------------------------------------------------------------

// SessionStarted records the session and binds and resumes its goals.
func (s *Service) SessionStarted(ctx context.Context, sessionID string, at time.Time) error {
	if sessionID == "" {
		return domain.NewValidationError("session_id", "required")
	}
	if at.IsZero() {
		at = s.now()
	}

	if _, err := s.sessions.Start(ctx, sessionID, at.UTC()); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	n, err := s.goals.OnSessionStarted(ctx, sessionID, at)
	if err != nil {
		return fmt.Errorf("session goals: %w", err)
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("session_id", sessionID),
		slog.Int("goals", n),
	)
	return nil
}

// SessionEnded closes the session and pauses its goals. Ending a session that
// is unknown or already closed still pauses the goals bound to it.
func (s *Service) SessionEnded(ctx context.Context, sessionID string, at time.Time) error {
	if sessionID == "" {
		return domain.NewValidationError("session_id", "required")
	}
	if at.IsZero() {
		at = s.now()
	}

	if _, err := s.sessions.End(ctx, sessionID, at.UTC()); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("end session: %w", err)
		}
		s.log.WarnContext(ctx, "ending session that is not open",
			slog.String("session_id", sessionID),
		)
	}
	n, err := s.goals.OnSessionEnded(ctx, sessionID, at)
	if err != nil {
		return fmt.Errorf("session goals: %w", err)
	}

	s.log.InfoContext(ctx, "session ended",
		slog.String("session_id", sessionID),
		slog.Int("goals", n),
	)
	return nil
}
