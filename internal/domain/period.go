package domain

import (
	"fmt"
	"time"
)

// Window is a resolved time range. Start is always inclusive; End is inclusive
// only for windows that end at "now" (rolling windows and open sessions).
type Window struct {
	Start        time.Time
	End          time.Time
	EndInclusive bool
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}
	if w.EndInclusive {
		return !t.After(w.End)
	}
	return t.Before(w.End)
}

// QueryEnd returns the exclusive upper bound to use in range queries.
func (w Window) QueryEnd() time.Time {
	if w.EndInclusive {
		return w.End.Add(time.Microsecond)
	}
	return w.End
}

func (w Window) String() string {
	closing := ")"
	if w.EndInclusive {
		closing = "]"
	}
	return fmt.Sprintf("[%s, %s%s", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339), closing)
}

// GoalWindow is the window of a TIME_BASED goal.
type GoalWindow struct {
	Kind     WindowKind
	Duration int
	Unit     TimeUnit
}

// Length converts duration and unit to a time.Duration. Non-positive durations
// and unknown units are rejected.
func (w GoalWindow) Length() (time.Duration, error) {
	if w.Duration <= 0 {
		return 0, fmt.Errorf("goal window duration %d: %w", w.Duration, ErrInvalidConfiguration)
	}

	var unit time.Duration
	switch w.Unit {
	case TimeUnitMinutes:
		unit = time.Minute
	case TimeUnitHours:
		unit = time.Hour
	case TimeUnitDays:
		unit = 24 * time.Hour
	case TimeUnitWeeks:
		unit = 7 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("goal window unit %q: %w", w.Unit, ErrInvalidConfiguration)
	}

	return time.Duration(w.Duration) * unit, nil
}

// Validate checks the window kind and length.
func (w GoalWindow) Validate() error {
	if !w.Kind.IsValid() {
		return fmt.Errorf("goal window kind %q: %w", w.Kind, ErrInvalidConfiguration)
	}
	_, err := w.Length()
	return err
}
