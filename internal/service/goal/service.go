// Package goal implements the goal progress engine and its persistence
// workflow: one transaction per goal update, guarded by an optimistic version
// and retried against a fresh read on conflict.
package goal

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sesh-ledger/internal/config"
	"github.com/heartmarshall/sesh-ledger/internal/domain"
	"github.com/heartmarshall/sesh-ledger/internal/service/window"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type goalRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Goal, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Goal, error)
	List(ctx context.Context, f domain.GoalFilter) ([]domain.Goal, error)
	Create(ctx context.Context, g domain.Goal) (domain.Goal, error)
	Update(ctx context.Context, g domain.Goal) (domain.Goal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepo interface {
	Create(ctx context.Context, e domain.GoalEvent) error
	ListByGoal(ctx context.Context, goalID uuid.UUID, limit int) ([]domain.GoalEvent, error)
}

type activityReader interface {
	ListByRange(ctx context.Context, f domain.ActivityFilter) ([]domain.ActivityLog, error)
}

type txManager interface {
	RunInTxRetry(ctx context.Context, fn func(ctx context.Context) error) error
}

// errSkip aborts a goal mutation without writing.
var errSkip = errors.New("goal unchanged")

const (
	defaultEventsLimit = 50
	maxEventsLimit     = 500
)

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service persists goals and drives the Engine.
type Service struct {
	goals      goalRepo
	events     eventRepo
	activities activityReader
	tx         txManager
	broker     *Broker
	engine     Engine
	cfg        config.GoalsConfig
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new goal service.
func NewService(
	log *slog.Logger,
	goals goalRepo,
	events eventRepo,
	activities activityReader,
	tx txManager,
	broker *Broker,
	cfg config.GoalsConfig,
) *Service {
	return &Service{
		goals:      goals,
		events:     events,
		activities: activities,
		tx:         tx,
		broker:     broker,
		engine:     NewEngine(cfg.ThresholdStep),
		cfg:        cfg,
		log:        log.With("service", "goal"),
		now:        time.Now,
	}
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

// Create validates and stores a new active goal.
func (s *Service) Create(ctx context.Context, input CreateGoalInput) (domain.Goal, error) {
	if err := input.Validate(); err != nil {
		return domain.Goal{}, err
	}

	participants := domain.AllParticipants()
	if input.Participants != nil {
		participants = *input.Participants
	}
	now := s.now().UTC()

	g, err := s.goals.Create(ctx, domain.Goal{
		ID:               uuid.New(),
		Name:             input.Name,
		Scope:            input.Scope,
		Targets:          input.Targets.Clone(),
		Progress:         domain.GoalCounts{Custom: domain.CountMap{}},
		SmokerProgress:   domain.CountMap{},
		IsRepeating:      input.IsRepeating,
		IsActive:         true,
		AllowOverflow:    input.AllowOverflow,
		Participants:     participants,
		SessionShareCode: input.SessionShareCode,
		StartedAt:        now,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return domain.Goal{}, fmt.Errorf("create goal: %w", err)
	}

	s.log.InfoContext(ctx, "goal created",
		slog.String("goal_id", g.ID.String()),
		slog.String("scope", string(g.Scope.Kind)),
	)
	return g, nil
}

// Get returns the current snapshot of a goal.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Goal, error) {
	g, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return domain.Goal{}, fmt.Errorf("get goal: %w", err)
	}
	return g, nil
}

// List returns goals matching the filter.
func (s *Service) List(ctx context.Context, f domain.GoalFilter) ([]domain.Goal, error) {
	goals, err := s.goals.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

// Delete removes a goal and its events.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.goals.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	s.log.InfoContext(ctx, "goal deleted", slog.String("goal_id", id.String()))
	return nil
}

// Events returns the persisted events of a goal, newest first.
func (s *Service) Events(ctx context.Context, goalID uuid.UUID, limit int) ([]domain.GoalEvent, error) {
	if limit <= 0 {
		limit = defaultEventsLimit
	}
	if limit > maxEventsLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("max %d", maxEventsLimit))
	}
	events, err := s.events.ListByGoal(ctx, goalID, limit)
	if err != nil {
		return nil, fmt.Errorf("list goal events: %w", err)
	}
	return events, nil
}

// Subscribe registers an event subscriber. A non-positive buffer uses the
// configured default.
func (s *Service) Subscribe(buffer int) (<-chan domain.GoalEvent, func()) {
	if buffer <= 0 {
		buffer = s.cfg.EventBuffer
	}
	return s.broker.Subscribe(buffer)
}

// ---------------------------------------------------------------------------
// Manual transitions
// ---------------------------------------------------------------------------

// Pause pauses a goal manually.
func (s *Service) Pause(ctx context.Context, id uuid.UUID) (domain.Goal, error) {
	g, _, err := s.mutate(ctx, id, func(g domain.Goal, now time.Time) (domain.Goal, []domain.GoalEvent, error) {
		next, err := s.engine.Pause(g, now)
		return next, nil, err
	})
	return g, err
}

// Resume resumes a paused goal.
func (s *Service) Resume(ctx context.Context, id uuid.UUID) (domain.Goal, error) {
	g, _, err := s.mutate(ctx, id, func(g domain.Goal, now time.Time) (domain.Goal, []domain.GoalEvent, error) {
		next, err := s.engine.Resume(g, now)
		return next, nil, err
	})
	return g, err
}

// EditProgress overwrites the progress counters of a goal.
func (s *Service) EditProgress(ctx context.Context, id uuid.UUID, progress domain.GoalCounts) (domain.Goal, []domain.GoalEvent, error) {
	if errs := progress.Validate("progress"); len(errs) > 0 {
		return domain.Goal{}, nil, domain.NewValidationErrors(errs)
	}
	return s.mutate(ctx, id, func(g domain.Goal, now time.Time) (domain.Goal, []domain.GoalEvent, error) {
		return s.engine.EditProgress(g, progress, now)
	})
}

// Reset restarts the current round of a goal.
func (s *Service) Reset(ctx context.Context, id uuid.UUID) (domain.Goal, error) {
	g, _, err := s.mutate(ctx, id, func(g domain.Goal, now time.Time) (domain.Goal, []domain.GoalEvent, error) {
		return s.engine.Reset(g, now), nil, nil
	})
	return g, err
}

// ---------------------------------------------------------------------------
// Activity fan-out
// ---------------------------------------------------------------------------

// ProcessActivity applies a committed activity to every active goal it
// belongs to. Goals are filtered read-only first; each applicable goal is then
// updated in its own transaction, with at most FanoutConcurrency in flight.
// Events of all goals are returned ordered by goal id.
func (s *Service) ProcessActivity(ctx context.Context, a domain.ActivityLog) ([]domain.GoalEvent, error) {
	active := true
	goals, err := s.goals.List(ctx, domain.GoalFilter{Active: &active})
	if err != nil {
		return nil, fmt.Errorf("list active goals: %w", err)
	}

	now := s.now().UTC()

	var (
		mu  sync.Mutex
		all []domain.GoalEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanout())
	for _, goal := range goals {
		if !s.engine.Applies(goal, a, now) {
			continue
		}
		g.Go(func() error {
			_, events, err := s.mutate(gctx, goal.ID, func(cur domain.Goal, now time.Time) (domain.Goal, []domain.GoalEvent, error) {
				if !s.engine.Applies(cur, a, now) {
					return cur, nil, errSkip
				}
				next, events := s.engine.Apply(cur, a, now)
				return next, events, nil
			})
			if err != nil {
				return fmt.Errorf("goal %s: %w", goal.ID, err)
			}
			mu.Lock()
			all = append(all, events...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return all, err
	}

	slices.SortStableFunc(all, func(x, y domain.GoalEvent) int {
		return cmp.Compare(x.GoalID.String(), y.GoalID.String())
	})
	return all, nil
}

// ---------------------------------------------------------------------------
// Session lifecycle
// ---------------------------------------------------------------------------

// OnSessionStarted binds unbound CURRENT_SESSION goals to the session,
// records its start on every goal bound to it and resumes the goals that were
// paused automatically. Returns the number of goals changed.
func (s *Service) OnSessionStarted(ctx context.Context, sessionID string, at time.Time) (int, error) {
	return s.forSessionGoals(ctx, sessionID, true, func(g domain.Goal, now time.Time) domain.Goal {
		if g.SessionShareCode == nil {
			code := sessionID
			g.SessionShareCode = &code
		}
		start := at.UTC()
		g.SessionStartDate = &start
		g.SessionEndDate = nil
		g.UpdatedAt = now
		g, _ = s.engine.AutoResume(g, sessionID, now)
		return g
	})
}

// OnSessionEnded records the end on goals bound to the session and pauses
// the active ones automatically. Returns the number of goals changed.
func (s *Service) OnSessionEnded(ctx context.Context, sessionID string, at time.Time) (int, error) {
	return s.forSessionGoals(ctx, sessionID, false, func(g domain.Goal, now time.Time) domain.Goal {
		end := at.UTC()
		g.SessionEndDate = &end
		g.UpdatedAt = now
		g, _ = s.engine.AutoPause(g, sessionID, now)
		return g
	})
}

func (s *Service) forSessionGoals(
	ctx context.Context,
	sessionID string,
	includeUnbound bool,
	fn func(g domain.Goal, now time.Time) domain.Goal,
) (int, error) {
	if sessionID == "" {
		return 0, domain.NewValidationError("session_id", "required")
	}

	active := true
	scope := domain.GoalScopeCurrentSession
	goals, err := s.goals.List(ctx, domain.GoalFilter{Active: &active, Scope: &scope})
	if err != nil {
		return 0, fmt.Errorf("list session goals: %w", err)
	}

	matches := func(g domain.Goal) bool {
		if g.State() == domain.GoalStateCompleted {
			return false
		}
		if g.SessionShareCode == nil {
			return includeUnbound
		}
		return *g.SessionShareCode == sessionID
	}

	changed := 0
	var errs []error
	for _, goal := range goals {
		if !matches(goal) {
			continue
		}
		_, _, err := s.mutateAt(ctx, goal.ID, time.Time{}, func(cur domain.Goal, now time.Time) (domain.Goal, []domain.GoalEvent, error) {
			if !matches(cur) {
				return cur, nil, errSkip
			}
			return fn(cur, now), nil, nil
		})
		switch {
		case errors.Is(err, errSkip):
		case err != nil:
			errs = append(errs, fmt.Errorf("goal %s: %w", goal.ID, err))
		default:
			changed++
		}
	}

	s.log.InfoContext(ctx, "session goals updated",
		slog.String("session_id", sessionID),
		slog.Int("goals", changed),
	)
	return changed, errors.Join(errs...)
}

// ---------------------------------------------------------------------------
// Sweep
// ---------------------------------------------------------------------------

// SweepReport summarizes one Sweep run.
type SweepReport struct {
	Recomputed int
	Advanced   int
	Events     []domain.GoalEvent
}

// Sweep re-evaluates TIME_BASED goals at now: rolling goals are recomputed
// from the activities in their window, fixed-period goals whose period has
// ended start a new one. Paused goals are skipped. Per-goal failures are
// collected and do not stop the sweep.
func (s *Service) Sweep(ctx context.Context, now time.Time) (SweepReport, error) {
	active := true
	scope := domain.GoalScopeTimeBased
	goals, err := s.goals.List(ctx, domain.GoalFilter{Active: &active, Scope: &scope})
	if err != nil {
		return SweepReport{}, fmt.Errorf("list time-based goals: %w", err)
	}

	now = now.UTC()
	var (
		report SweepReport
		errs   []error
	)

	for _, goal := range goals {
		if goal.State() != domain.GoalStateActive {
			continue
		}

		if goal.Scope.IsRolling() {
			events, changed, err := s.recompute(ctx, goal, now)
			if err != nil {
				errs = append(errs, fmt.Errorf("recompute goal %s: %w", goal.ID, err))
				continue
			}
			if changed {
				report.Recomputed++
				report.Events = append(report.Events, events...)
			}
			continue
		}

		_, _, err := s.mutateAt(ctx, goal.ID, now, func(cur domain.Goal, now time.Time) (domain.Goal, []domain.GoalEvent, error) {
			if cur.State() != domain.GoalStateActive {
				return cur, nil, errSkip
			}
			next, ok := s.engine.AdvancePeriod(cur, now)
			if !ok {
				return cur, nil, errSkip
			}
			return next, nil, nil
		})
		switch {
		case errors.Is(err, errSkip):
		case err != nil:
			errs = append(errs, fmt.Errorf("advance goal %s: %w", goal.ID, err))
		default:
			report.Advanced++
		}
	}

	s.log.InfoContext(ctx, "goal sweep finished",
		slog.Int("goals", len(goals)),
		slog.Int("recomputed", report.Recomputed),
		slog.Int("advanced", report.Advanced),
		slog.Int("events", len(report.Events)),
		slog.Int("errors", len(errs)),
	)
	return report, errors.Join(errs...)
}

func (s *Service) recompute(ctx context.Context, goal domain.Goal, now time.Time) ([]domain.GoalEvent, bool, error) {
	w, err := window.GoalWindow(goal, now)
	if err != nil {
		return nil, false, err
	}

	f := domain.ActivityFilter{From: w.Start, To: w.QueryEnd()}
	if !goal.Participants.All {
		f.ConsumerIDs = goal.Participants.IDs
	}
	activities, err := s.activities.ListByRange(ctx, f)
	if err != nil {
		return nil, false, fmt.Errorf("list window activities: %w", err)
	}

	_, events, err := s.mutateAt(ctx, goal.ID, now, func(cur domain.Goal, now time.Time) (domain.Goal, []domain.GoalEvent, error) {
		next, events, changed := s.engine.Recompute(cur, activities, now)
		if !changed {
			return cur, nil, errSkip
		}
		return next, events, nil
	})
	if errors.Is(err, errSkip) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return events, true, nil
}

// ---------------------------------------------------------------------------
// mutation workflow
// ---------------------------------------------------------------------------

type mutation func(g domain.Goal, now time.Time) (domain.Goal, []domain.GoalEvent, error)

// mutate runs fn against a locked fresh read of the goal, writes the result
// with the version guard and persists the events, all in one transaction
// that is retried on conflict. Events are published after commit. When fn
// returns errSkip nothing is written and the current goal is returned.
func (s *Service) mutate(ctx context.Context, id uuid.UUID, fn mutation) (domain.Goal, []domain.GoalEvent, error) {
	g, events, err := s.mutateAt(ctx, id, time.Time{}, fn)
	if errors.Is(err, errSkip) {
		return g, nil, nil
	}
	return g, events, err
}

// mutateAt is mutate with a fixed clock; a zero now reads the service clock
// on every attempt. errSkip is returned to the caller.
func (s *Service) mutateAt(ctx context.Context, id uuid.UUID, at time.Time, fn mutation) (domain.Goal, []domain.GoalEvent, error) {
	var (
		result domain.Goal
		events []domain.GoalEvent
	)

	err := s.tx.RunInTxRetry(ctx, func(txCtx context.Context) error {
		events = nil

		cur, err := s.goals.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("lock goal: %w", err)
		}

		now := at
		if now.IsZero() {
			now = s.now().UTC()
		}

		next, evs, err := fn(cur, now)
		if err != nil {
			result = cur
			return err
		}

		result, err = s.goals.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update goal: %w", err)
		}

		for i := range evs {
			evs[i].ID = uuid.Must(uuid.NewV7())
			evs[i].GoalID = result.ID
			if err := s.events.Create(txCtx, evs[i]); err != nil {
				return fmt.Errorf("persist goal event: %w", err)
			}
		}
		events = evs
		return nil
	})
	if err != nil {
		if errors.Is(err, errSkip) {
			return result, nil, err
		}
		return domain.Goal{}, nil, err
	}

	s.broker.Publish(ctx, events...)
	for _, e := range events {
		s.log.InfoContext(ctx, "goal event",
			slog.String("goal_id", e.GoalID.String()),
			slog.String("kind", string(e.Kind)),
			slog.Int("percentage", e.Percentage),
			slog.Int("round", e.Round),
		)
	}
	return result, events, nil
}

func (s *Service) fanout() int {
	if s.cfg.FanoutConcurrency <= 0 {
		return 1
	}
	return s.cfg.FanoutConcurrency
}
