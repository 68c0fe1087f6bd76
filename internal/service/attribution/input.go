package attribution

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// RecordInput is one logged activity as delivered by the activity source.
type RecordInput struct {
	// ActivityID is optional; a v7 id is generated when zero.
	ActivityID       uuid.UUID
	SmokerID         string
	ConsumerID       *string
	ConsumerName     string
	Payer            domain.PayerDesignation
	Type             domain.ActivityType
	CustomActivityID *string
	SessionID        *string
	// Timestamp defaults to now.
	Timestamp time.Time
}

// Validate checks all fields and collects all errors.
func (i *RecordInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.SmokerID) == "" {
		errs = append(errs, domain.FieldError{Field: "smoker_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be CONE, JOINT, BOWL, or CUSTOM"})
	}
	if i.Type == domain.ActivityTypeCustom && (i.CustomActivityID == nil || strings.TrimSpace(*i.CustomActivityID) == "") {
		errs = append(errs, domain.FieldError{Field: "custom_activity_id", Message: "required for CUSTOM"})
	}
	if i.Type != domain.ActivityTypeCustom && i.CustomActivityID != nil {
		errs = append(errs, domain.FieldError{Field: "custom_activity_id", Message: "only allowed for CUSTOM"})
	}
	if i.ConsumerID != nil && strings.TrimSpace(*i.ConsumerID) == "" {
		errs = append(errs, domain.FieldError{Field: "consumer_id", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
