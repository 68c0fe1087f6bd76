// Package window resolves reporting periods and goal windows to concrete
// time ranges.
package window

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/sesh-ledger/internal/config"
	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

type sessionProvider interface {
	GetCurrentOrLast(ctx context.Context) (domain.Session, error)
}

// Resolver turns a StashTimePeriod into a Window relative to a reference instant.
type Resolver struct {
	sessions         sessionProvider
	loc              *time.Location
	calendarAccurate bool
}

// NewResolver creates a resolver. A nil location means UTC.
func NewResolver(sessions sessionProvider, cfg config.WindowsConfig, loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{
		sessions:         sessions,
		loc:              loc,
		calendarAccurate: cfg.CalendarAccurate,
	}
}

// Resolve returns the window of period at now.
//
// THIS_SESH is the current session, or the most recently ended one; an open
// session ends at now. Returns domain.ErrNotFound when no session exists.
func (r *Resolver) Resolve(ctx context.Context, period domain.StashTimePeriod, now time.Time) (domain.Window, error) {
	now = now.UTC()

	switch period {
	case domain.PeriodThisSesh:
		s, err := r.sessions.GetCurrentOrLast(ctx)
		if err != nil {
			return domain.Window{}, fmt.Errorf("resolve session window: %w", err)
		}
		end := now
		if s.EndedAt != nil {
			end = s.EndedAt.UTC()
		}
		return domain.Window{Start: s.StartedAt.UTC(), End: end, EndInclusive: true}, nil

	case domain.PeriodHour:
		return rolling(now, time.Hour), nil

	case domain.PeriodTwelveH:
		return rolling(now, 12*time.Hour), nil

	case domain.PeriodToday:
		return r.calendarDay(now), nil

	case domain.PeriodWeek:
		if r.calendarAccurate {
			return r.calendarBack(now, 0, 0, 7), nil
		}
		return rolling(now, 7*24*time.Hour), nil

	case domain.PeriodMonth:
		if r.calendarAccurate {
			return r.calendarBack(now, 0, 1, 0), nil
		}
		return rolling(now, 30*24*time.Hour), nil

	case domain.PeriodYear:
		if r.calendarAccurate {
			return r.calendarBack(now, 1, 0, 0), nil
		}
		return rolling(now, 365*24*time.Hour), nil
	}

	return domain.Window{}, domain.NewValidationError("period", fmt.Sprintf("unknown period %q", period))
}

// calendarBack is a rolling window whose start is computed with AddDate in
// the configured timezone.
func (r *Resolver) calendarBack(now time.Time, years, months, days int) domain.Window {
	start := now.In(r.loc).AddDate(-years, -months, -days).UTC()
	return domain.Window{Start: start, End: now, EndInclusive: true}
}

// calendarDay is the local day containing now: [midnight, next midnight).
// The next midnight comes from AddDate so DST days keep their real length.
func (r *Resolver) calendarDay(now time.Time) domain.Window {
	local := now.In(r.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.loc)
	end := start.AddDate(0, 0, 1)
	return domain.Window{Start: start.UTC(), End: end.UTC()}
}

func rolling(now time.Time, d time.Duration) domain.Window {
	return domain.Window{Start: now.Add(-d), End: now, EndInclusive: true}
}

// GoalWindow returns the window of a TIME_BASED goal at now.
//
// ROLLING is [now-d, now]. FIXED_PERIOD is anchored on the goal's StartedAt:
// [start + k*d, start + (k+1)*d) with k = floor((now-start)/d).
func GoalWindow(g domain.Goal, now time.Time) (domain.Window, error) {
	if g.Scope.Kind != domain.GoalScopeTimeBased {
		return domain.Window{}, fmt.Errorf("goal %s: %s scope has no window: %w", g.ID, g.Scope.Kind, domain.ErrInvalidConfiguration)
	}
	if err := g.Scope.Validate(); err != nil {
		return domain.Window{}, fmt.Errorf("goal %s: %w", g.ID, err)
	}

	length, err := g.Scope.Window.Length()
	if err != nil {
		return domain.Window{}, fmt.Errorf("goal %s: %w", g.ID, err)
	}
	now = now.UTC()

	if g.Scope.Window.Kind == domain.WindowKindRolling {
		return rolling(now, length), nil
	}

	anchor := g.StartedAt.UTC()
	elapsed := now.Sub(anchor)
	k := int64(elapsed / length)
	if elapsed < 0 && elapsed%length != 0 {
		k--
	}
	start := anchor.Add(time.Duration(k) * length)
	return domain.Window{Start: start, End: start.Add(length)}, nil
}
