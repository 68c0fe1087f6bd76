package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// GoalScope is a tagged union: Window is set only for TIME_BASED goals.
type GoalScope struct {
	Kind   GoalScopeKind
	Window *GoalWindow
}

func CurrentSessionScope() GoalScope { return GoalScope{Kind: GoalScopeCurrentSession} }

func AllSessionsScope() GoalScope { return GoalScope{Kind: GoalScopeAllSessions} }

func TimeBasedScope(kind WindowKind, duration int, unit TimeUnit) GoalScope {
	return GoalScope{
		Kind:   GoalScopeTimeBased,
		Window: &GoalWindow{Kind: kind, Duration: duration, Unit: unit},
	}
}

// Validate checks that the window is present exactly when the scope is TIME_BASED.
func (s GoalScope) Validate() error {
	if !s.Kind.IsValid() {
		return fmt.Errorf("goal scope %q: %w", s.Kind, ErrInvalidConfiguration)
	}
	if s.Kind == GoalScopeTimeBased {
		if s.Window == nil {
			return fmt.Errorf("time-based goal without window: %w", ErrInvalidConfiguration)
		}
		return s.Window.Validate()
	}
	if s.Window != nil {
		return fmt.Errorf("%s goal with window: %w", s.Kind, ErrInvalidConfiguration)
	}
	return nil
}

// IsRolling reports whether the scope is a rolling time window.
func (s GoalScope) IsRolling() bool {
	return s.Kind == GoalScopeTimeBased && s.Window != nil && s.Window.Kind == WindowKindRolling
}

// GoalCounts is used for both targets and progress. Built-in types are fixed
// fields; custom activity types are keyed by custom activity id.
type GoalCounts struct {
	Joints int
	Cones  int
	Bowls  int
	Custom CountMap
}

// Get returns the count for an ActivityRef key.
func (c GoalCounts) Get(key string) int {
	switch key {
	case string(ActivityTypeCone):
		return c.Cones
	case string(ActivityTypeJoint):
		return c.Joints
	case string(ActivityTypeBowl):
		return c.Bowls
	}
	return c.Custom[key]
}

// Set writes the count for an ActivityRef key.
func (c *GoalCounts) Set(key string, n int) {
	switch key {
	case string(ActivityTypeCone):
		c.Cones = n
	case string(ActivityTypeJoint):
		c.Joints = n
	case string(ActivityTypeBowl):
		c.Bowls = n
	default:
		if c.Custom == nil {
			c.Custom = CountMap{}
		}
		c.Custom[key] = n
	}
}

// Configured returns the keys whose count is non-zero, built-ins first.
func (c GoalCounts) Configured() []string {
	var keys []string
	for _, k := range []ActivityType{ActivityTypeJoint, ActivityTypeCone, ActivityTypeBowl} {
		if c.Get(string(k)) > 0 {
			keys = append(keys, string(k))
		}
	}
	for _, k := range c.Custom.Keys() {
		if c.Custom[k] > 0 {
			keys = append(keys, k)
		}
	}
	return keys
}

// Clone deep-copies the custom map.
func (c GoalCounts) Clone() GoalCounts {
	c.Custom = c.Custom.Clone()
	return c
}

func (c GoalCounts) Validate(field string) []FieldError {
	var errs []FieldError
	if c.Joints < 0 || c.Cones < 0 || c.Bowls < 0 {
		errs = append(errs, FieldError{Field: field, Message: "counts must be >= 0"})
	}
	if err := c.Custom.Validate(); err != nil {
		errs = append(errs, FieldError{Field: field + ".custom", Message: err.Error()})
	}
	return errs
}

// ParticipantFilter restricts which consumers count toward a goal.
type ParticipantFilter struct {
	All bool
	IDs []string
}

// AllParticipants matches every consumer.
func AllParticipants() ParticipantFilter { return ParticipantFilter{All: true} }

// Includes reports whether the participant passes the filter. An empty
// non-ALL filter matches nobody.
func (f ParticipantFilter) Includes(participantID string) bool {
	if f.All {
		return true
	}
	return slices.Contains(f.IDs, participantID)
}

// Goal is one configured goal with its running progress.
type Goal struct {
	ID                         uuid.UUID
	Name                       string
	Scope                      GoalScope
	Targets                    GoalCounts
	Progress                   GoalCounts
	SmokerProgress             CountMap
	IsRepeating                bool
	IsActive                   bool
	IsPaused                   bool
	WasManuallyPaused          bool
	AllowOverflow              bool
	LastNotificationPercentage int
	CompletedRounds            int
	Participants               ParticipantFilter
	SessionShareCode           *string
	SessionStartDate           *time.Time
	SessionEndDate             *time.Time
	StartedAt                  time.Time
	LastResetAt                *time.Time
	CompletedAt                *time.Time
	Version                    int64
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// State derives the state machine position from the goal's flags.
func (g Goal) State() GoalState {
	switch {
	case !g.IsActive && g.CompletedAt != nil:
		return GoalStateCompleted
	case g.IsPaused:
		return GoalStatePaused
	default:
		return GoalStateActive
	}
}

// CountsFrom returns the instant from which ALL_SESSIONS progress accumulates.
func (g Goal) CountsFrom() time.Time {
	if g.LastResetAt != nil {
		return *g.LastResetAt
	}
	return g.StartedAt
}

// GoalEvent is a progress notification, persisted with the counter update
// that produced it and published after commit.
type GoalEvent struct {
	ID         uuid.UUID
	GoalID     uuid.UUID
	Kind       GoalEventKind
	Percentage int
	Round      int
	CreatedAt  time.Time
}
