package tracker

import (
	"time"

	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// RecordConsumptionInput is one activity from the activity source. The smoker
// is the actor in the context, or the device owner when there is none.
type RecordConsumptionInput struct {
	Type             domain.ActivityType
	CustomActivityID *string
	ConsumerID       *string
	ConsumerName     string
	// Timestamp defaults to now.
	Timestamp time.Time
	SessionID *string
	// Payer defaults to MY_STASH.
	Payer domain.PayerDesignation
}

func (i RecordConsumptionInput) payer() domain.PayerDesignation {
	if i.Payer == "" {
		return domain.PayerMyStash
	}
	return i.Payer
}
