package domain

import "time"

// EntryFilter selects ledger entries of one account. Nil bounds are open;
// To is exclusive. Results are ordered by (timestamp, seq) unless BySeq is set.
type EntryFilter struct {
	Account  Account
	From     *time.Time
	To       *time.Time
	Kinds    []EntryKind
	AfterSeq int64
	Limit    uint64
	BySeq    bool
}

// ActivityFilter selects activity logs in [From, To).
type ActivityFilter struct {
	From        time.Time
	To          time.Time
	SessionID   *string
	ConsumerIDs []string
}

// GoalFilter selects goals; nil fields are ignored.
type GoalFilter struct {
	Active           *bool
	Scope            *GoalScopeKind
	SessionShareCode *string
}
