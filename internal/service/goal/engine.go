package goal

import (
	"time"

	"github.com/heartmarshall/sesh-ledger/internal/domain"
	"github.com/heartmarshall/sesh-ledger/internal/service/window"
)

// DefaultThresholdStep is the notification granularity in percent.
const DefaultThresholdStep = 10

// Engine is the goal state machine. It never touches storage and takes the
// clock as an argument; every method returns a modified copy.
type Engine struct {
	ThresholdStep int
}

// NewEngine returns an engine; a non-positive step uses DefaultThresholdStep.
func NewEngine(step int) Engine {
	if step <= 0 || step > 100 {
		step = DefaultThresholdStep
	}
	return Engine{ThresholdStep: step}
}

// Applies reports whether activity a counts toward g at now.
func (e Engine) Applies(g domain.Goal, a domain.ActivityLog, now time.Time) bool {
	if g.State() != domain.GoalStateActive {
		return false
	}
	if !g.Participants.Includes(a.EffectiveConsumerID()) {
		return false
	}

	switch g.Scope.Kind {
	case domain.GoalScopeCurrentSession:
		return g.SessionShareCode != nil && a.SessionID != nil && *a.SessionID == *g.SessionShareCode

	case domain.GoalScopeAllSessions:
		return !a.Timestamp.Before(g.CountsFrom())

	case domain.GoalScopeTimeBased:
		w, err := window.GoalWindow(g, now)
		if err != nil {
			return false
		}
		if !w.Contains(a.Timestamp) {
			return false
		}
		// A fixed period that advanced starts from the new window.
		from := g.CountsFrom()
		if g.Scope.Window.Kind == domain.WindowKindFixedPeriod && from.Before(w.Start) {
			from = w.Start
		}
		return !a.Timestamp.Before(from)
	}
	return false
}

// Apply counts one activity and evaluates completion and thresholds. The
// caller checks Applies first.
func (e Engine) Apply(g domain.Goal, a domain.ActivityLog, now time.Time) (domain.Goal, []domain.GoalEvent) {
	g = clone(g)
	if next, ok := e.AdvancePeriod(g, now); ok {
		g = next
	}

	if e.increment(&g, a) {
		g.UpdatedAt = now
	}

	// The next round starts right after the completing activity, so
	// activities logged after it but processed later still count.
	resetAt := a.Timestamp.Add(time.Nanosecond)
	if a.Timestamp.IsZero() || resetAt.After(now) {
		resetAt = now
	}
	return e.evaluate(g, now, resetAt)
}

// Recompute rebuilds the counters of a rolling TIME_BASED goal from the
// activities currently in its window. The notification level is never
// lowered, so thresholds that already fired stay quiet when the window
// slides. The bool reports whether anything changed.
func (e Engine) Recompute(g domain.Goal, activities []domain.ActivityLog, now time.Time) (domain.Goal, []domain.GoalEvent, bool) {
	if !g.Scope.IsRolling() || g.State() != domain.GoalStateActive {
		return g, nil, false
	}

	before := clone(g)
	g = clone(g)
	g.Progress = domain.GoalCounts{Custom: domain.CountMap{}}
	g.SmokerProgress = domain.CountMap{}

	for _, a := range activities {
		if e.Applies(g, a, now) {
			e.increment(&g, a)
		}
	}

	g, events := e.evaluate(g, now, now)
	if len(events) == 0 && sameProgress(before, g) {
		return before, nil, false
	}
	g.UpdatedAt = now
	return g, events, true
}

// AdvancePeriod starts a new period for a FIXED_PERIOD goal whose window at
// now begins after the goal's last reset. Counters and the notification
// level are zeroed and LastResetAt moves to the window start.
func (e Engine) AdvancePeriod(g domain.Goal, now time.Time) (domain.Goal, bool) {
	if g.Scope.Kind != domain.GoalScopeTimeBased || g.Scope.Window == nil ||
		g.Scope.Window.Kind != domain.WindowKindFixedPeriod {
		return g, false
	}
	w, err := window.GoalWindow(g, now)
	if err != nil || !g.CountsFrom().Before(w.Start) {
		return g, false
	}

	g = clone(g)
	zero(&g)
	start := w.Start
	g.LastResetAt = &start
	g.LastNotificationPercentage = 0
	g.UpdatedAt = now
	return g, true
}

// Pause pauses a goal manually. Completed goals cannot be paused.
func (e Engine) Pause(g domain.Goal, now time.Time) (domain.Goal, error) {
	if g.State() == domain.GoalStateCompleted {
		return g, errCompleted("pause")
	}
	g.IsPaused = true
	g.WasManuallyPaused = true
	g.UpdatedAt = now
	return g, nil
}

// Resume resumes a paused goal regardless of who paused it.
func (e Engine) Resume(g domain.Goal, now time.Time) (domain.Goal, error) {
	if g.State() == domain.GoalStateCompleted {
		return g, errCompleted("resume")
	}
	g.IsPaused = false
	g.WasManuallyPaused = false
	g.UpdatedAt = now
	return g, nil
}

// AutoPause pauses an active CURRENT_SESSION goal bound to sessionID when
// that session ends. The bool reports whether the goal was paused.
func (e Engine) AutoPause(g domain.Goal, sessionID string, now time.Time) (domain.Goal, bool) {
	if g.State() != domain.GoalStateActive || !boundTo(g, sessionID) {
		return g, false
	}
	g.IsPaused = true
	g.WasManuallyPaused = false
	g.UpdatedAt = now
	return g, true
}

// AutoResume resumes a CURRENT_SESSION goal bound to sessionID that was paused
// automatically. Manually paused goals stay paused.
func (e Engine) AutoResume(g domain.Goal, sessionID string, now time.Time) (domain.Goal, bool) {
	if g.State() != domain.GoalStatePaused || g.WasManuallyPaused || !boundTo(g, sessionID) {
		return g, false
	}
	g.IsPaused = false
	g.UpdatedAt = now
	return g, true
}

// EditProgress replaces the progress counters. Completion is evaluated on the
// new counts; the notification level is never lowered.
func (e Engine) EditProgress(g domain.Goal, progress domain.GoalCounts, now time.Time) (domain.Goal, []domain.GoalEvent, error) {
	if errs := progress.Validate("progress"); len(errs) > 0 {
		return g, nil, domain.NewValidationErrors(errs)
	}
	if g.State() == domain.GoalStateCompleted {
		return g, nil, errCompleted("edit")
	}

	g = clone(g)
	g.Progress = progress.Clone()
	if !g.AllowOverflow {
		for _, k := range g.Targets.Configured() {
			if t := g.Targets.Get(k); g.Progress.Get(k) > t {
				g.Progress.Set(k, t)
			}
		}
	}
	g.UpdatedAt = now

	g, events := e.evaluate(g, now, now)
	return g, events, nil
}

// Reset starts the current round over: counters and the notification level
// are zeroed and a completed goal becomes active again. CompletedRounds is kept.
func (e Engine) Reset(g domain.Goal, now time.Time) domain.Goal {
	g = clone(g)
	zero(&g)
	g.LastResetAt = &now
	g.LastNotificationPercentage = 0
	g.IsActive = true
	g.CompletedAt = nil
	g.UpdatedAt = now
	return g
}

// Percentage is the max over configured dimensions of min(100, 100*progress/target).
func Percentage(g domain.Goal) int {
	best := 0
	for _, k := range g.Targets.Configured() {
		t := g.Targets.Get(k)
		p := min(100, 100*g.Progress.Get(k)/t)
		best = max(best, p)
	}
	return best
}

// Complete reports whether every configured target is met. A goal without
// targets never completes.
func Complete(g domain.Goal) bool {
	keys := g.Targets.Configured()
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if g.Progress.Get(k) < g.Targets.Get(k) {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// increment adds one activity to the type counter and the consumer's
// counter. Counters with a target are clamped there unless overflow is
// allowed. Reports whether anything moved.
func (e Engine) increment(g *domain.Goal, a domain.ActivityLog) bool {
	key := a.Ref().Key()
	cur := g.Progress.Get(key)
	next := cur + 1
	if t := g.Targets.Get(key); !g.AllowOverflow && t > 0 && next > t {
		next = t
	}
	if next == cur {
		return false
	}

	g.Progress.Set(key, next)
	if g.SmokerProgress == nil {
		g.SmokerProgress = domain.CountMap{}
	}
	g.SmokerProgress[a.EffectiveConsumerID()]++
	return true
}

// evaluate fires completion, or one threshold event when a new step was
// crossed. 100% is only ever reported by the completion event. A recurring
// goal starts its next round at resetAt.
func (e Engine) evaluate(g domain.Goal, now, resetAt time.Time) (domain.Goal, []domain.GoalEvent) {
	round := g.CompletedRounds + 1

	if Complete(g) {
		events := []domain.GoalEvent{{
			GoalID:     g.ID,
			Kind:       domain.GoalEventCompleted,
			Percentage: 100,
			Round:      round,
			CreatedAt:  now,
		}}
		g.CompletedRounds++
		if g.IsRepeating {
			zero(&g)
			g.LastResetAt = &resetAt
			g.LastNotificationPercentage = 0
		} else {
			g.IsActive = false
			g.IsPaused = false
			g.CompletedAt = &now
			g.LastNotificationPercentage = 100
		}
		g.UpdatedAt = now
		return g, events
	}

	crossed := e.crossed(g)
	if crossed > g.LastNotificationPercentage && crossed < 100 {
		g.LastNotificationPercentage = crossed
		g.UpdatedAt = now
		return g, []domain.GoalEvent{{
			GoalID:     g.ID,
			Kind:       domain.GoalEventThresholdCrossed,
			Percentage: crossed,
			Round:      round,
			CreatedAt:  now,
		}}
	}
	return g, nil
}

func (e Engine) crossed(g domain.Goal) int {
	step := e.ThresholdStep
	if step <= 0 {
		step = DefaultThresholdStep
	}
	return Percentage(g) / step * step
}

// errCompleted rejects transitions out of COMPLETED.
func errCompleted(op string) error {
	return domain.NewValidationError("state", "cannot "+op+" a completed goal")
}

func boundTo(g domain.Goal, sessionID string) bool {
	return g.Scope.Kind == domain.GoalScopeCurrentSession &&
		g.SessionShareCode != nil && *g.SessionShareCode == sessionID
}

func zero(g *domain.Goal) {
	g.Progress = domain.GoalCounts{Custom: domain.CountMap{}}
	g.SmokerProgress = domain.CountMap{}
}

func clone(g domain.Goal) domain.Goal {
	g.Targets = g.Targets.Clone()
	g.Progress = g.Progress.Clone()
	g.SmokerProgress = g.SmokerProgress.Clone()
	return g
}

func sameProgress(a, b domain.Goal) bool {
	if a.LastNotificationPercentage != b.LastNotificationPercentage ||
		a.Progress.Joints != b.Progress.Joints ||
		a.Progress.Cones != b.Progress.Cones ||
		a.Progress.Bowls != b.Progress.Bowls {
		return false
	}
	return sameCounts(a.Progress.Custom, b.Progress.Custom) && sameCounts(a.SmokerProgress, b.SmokerProgress)
}

// sameCounts treats zero entries as absent.
func sameCounts(a, b domain.CountMap) bool {
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	for k, v := range b {
		if a[k] != v {
			return false
		}
	}
	return true
}
