package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// AppendInput describes one ledger mutation.
type AppendInput struct {
	Account domain.Account
	Kind    domain.EntryKind
	// Grams is the amount for ADD/CONSUME/REMOVE, the signed delta for ADJUST,
	// and ignored for RESET.
	Grams decimal.Decimal
	// PricePerGram, on ADD only, replaces the stash price.
	PricePerGram *decimal.Decimal
	// Timestamp defaults to now.
	Timestamp    time.Time
	ActivityType *domain.ActivityType
	SmokerName   *string
	Note         *string
}

// Validate checks all fields and collects all errors.
func (i *AppendInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be ADD, CONSUME, ADJUST, REMOVE, or RESET"})
	}

	switch i.Kind {
	case domain.EntryKindAdd, domain.EntryKindConsume, domain.EntryKindRemove:
		if i.Grams.IsNegative() {
			errs = append(errs, domain.FieldError{Field: "grams", Message: "must be >= 0"})
		}
	case domain.EntryKindAdjust:
		if i.Grams.IsZero() {
			errs = append(errs, domain.FieldError{Field: "grams", Message: "adjustment must be non-zero"})
		}
	}

	if i.PricePerGram != nil {
		if i.Kind != domain.EntryKindAdd {
			errs = append(errs, domain.FieldError{Field: "price_per_gram", Message: "only allowed on ADD"})
		} else if i.PricePerGram.IsNegative() {
			errs = append(errs, domain.FieldError{Field: "price_per_gram", Message: "must be >= 0"})
		}
	}

	if i.ActivityType != nil && !i.ActivityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "activity_type", Message: "unknown activity type"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// HistoryFilter selects entries of one account for History.
type HistoryFilter struct {
	Account domain.Account
	From    *time.Time
	To      *time.Time
	Kinds   []domain.EntryKind
	// Limit of 0 uses the configured page size.
	Limit uint64
}

// Validate checks all fields and collects all errors.
func (f *HistoryFilter) Validate() error {
	var errs []domain.FieldError

	if f.From != nil && f.To != nil && !f.From.Before(*f.To) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be after from"})
	}
	for _, k := range f.Kinds {
		if !k.IsValid() {
			errs = append(errs, domain.FieldError{Field: "kinds", Message: "unknown entry kind " + string(k)})
		}
	}
	if f.Limit > 10_000 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 10000"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// OpenOwnerStashInput registers a stash for another owner.
type OpenOwnerStashInput struct {
	OwnerID      string
	DisplayName  string
	InitialGrams decimal.Decimal
	PricePerGram decimal.Decimal
}

func (i *OpenOwnerStashInput) validate(deviceOwnerID string) error {
	var errs []domain.FieldError

	id := strings.TrimSpace(i.OwnerID)
	if id == "" {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "required"})
	} else if id == deviceOwnerID {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "the device owner uses the local stash"})
	}
	if i.InitialGrams.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "initial_grams", Message: "must be >= 0"})
	}
	if i.PricePerGram.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "price_per_gram", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
