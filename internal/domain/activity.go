package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActivityLog is one logged activity.
type ActivityLog struct {
	ID                uuid.UUID
	SmokerID          string
	ConsumerID        *string
	ConsumerName      string
	PayerStashOwnerID *string
	ChargeKind        ChargeKind
	ActivityType      ActivityType
	CustomActivityID  *string
	SessionID         *string
	Timestamp         time.Time
	CreatedAt         time.Time
}

// EffectiveConsumerID is the attribution subject: the consumer if set, else the smoker.
func (a ActivityLog) EffectiveConsumerID() string {
	if a.ConsumerID != nil && *a.ConsumerID != "" {
		return *a.ConsumerID
	}
	return a.SmokerID
}

// Ref returns the ratio lookup key of the activity.
func (a ActivityLog) Ref() ActivityRef {
	ref := ActivityRef{Type: a.ActivityType}
	if a.CustomActivityID != nil {
		ref.CustomID = *a.CustomActivityID
	}
	return ref
}

// Attribution is the outcome of charging one activity.
type Attribution struct {
	Activity     ActivityLog
	Target       ChargeTarget
	Grams        decimal.Decimal
	PricePerGram decimal.Decimal
	Cost         decimal.Decimal
	Entry        *StashEntry
	Snapshot     *StashSnapshot
	// Warning is ErrUnresolvedStashTarget when the charged stash does not exist.
	Warning error
}

// Session is a consumption session as recorded by the session lifecycle collaborator.
type Session struct {
	ID        string
	ShareCode string
	StartedAt time.Time
	EndedAt   *time.Time
}

// IsOpen reports whether the session has not ended yet.
func (s Session) IsOpen() bool { return s.EndedAt == nil }
