package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivityRef identifies an activity for ratio lookups: a built-in type, or
// ActivityTypeCustom with the custom activity id.
type ActivityRef struct {
	Type     ActivityType
	CustomID string
}

// Key returns the counter key used by goal progress and distribution maps.
func (r ActivityRef) Key() string {
	if r.Type == ActivityTypeCustom {
		return r.CustomID
	}
	return string(r.Type)
}

// CustomRatio configures a user-defined activity type.
type CustomRatio struct {
	Grams   decimal.Decimal
	Deducts bool
}

// ConsumptionRatio holds grams per activity type and the per-type deduction toggles.
type ConsumptionRatio struct {
	GramsPerCone      decimal.Decimal
	GramsPerJoint     decimal.Decimal
	GramsPerBowl      decimal.Decimal
	ConeGramsOverride *decimal.Decimal
	DeductCones       bool
	DeductJoints      bool
	DeductBowls       bool
	Custom            map[string]CustomRatio
	UpdatedAt         time.Time
}

// GramsFor returns the grams one activity of the given kind represents.
// Unknown custom types yield zero.
func (r ConsumptionRatio) GramsFor(a ActivityRef) decimal.Decimal {
	switch a.Type {
	case ActivityTypeCone:
		if r.ConeGramsOverride != nil {
			return *r.ConeGramsOverride
		}
		return r.GramsPerCone
	case ActivityTypeJoint:
		return r.GramsPerJoint
	case ActivityTypeBowl:
		return r.GramsPerBowl
	case ActivityTypeCustom:
		if c, ok := r.Custom[a.CustomID]; ok {
			return c.Grams
		}
	}
	return decimal.Zero
}

// DeductsFromStash reports whether the activity kind draws from a stash at all.
func (r ConsumptionRatio) DeductsFromStash(a ActivityRef) bool {
	switch a.Type {
	case ActivityTypeCone:
		return r.DeductCones
	case ActivityTypeJoint:
		return r.DeductJoints
	case ActivityTypeBowl:
		return r.DeductBowls
	case ActivityTypeCustom:
		if c, ok := r.Custom[a.CustomID]; ok {
			return c.Deducts
		}
	}
	return false
}

// WithBowlFallback returns a copy whose bowl grams fall back to the stash's
// bowl size when the ratio leaves it unset.
func (r ConsumptionRatio) WithBowlFallback(s Stash) ConsumptionRatio {
	if r.GramsPerBowl.IsZero() {
		r.GramsPerBowl = s.GramsPerBowl
	}
	return r
}

// Validate checks that every gram value is non-negative.
func (r ConsumptionRatio) Validate() error {
	var errs []FieldError

	if r.GramsPerCone.IsNegative() {
		errs = append(errs, FieldError{Field: "grams_per_cone", Message: "must be >= 0"})
	}
	if r.GramsPerJoint.IsNegative() {
		errs = append(errs, FieldError{Field: "grams_per_joint", Message: "must be >= 0"})
	}
	if r.GramsPerBowl.IsNegative() {
		errs = append(errs, FieldError{Field: "grams_per_bowl", Message: "must be >= 0"})
	}
	if r.ConeGramsOverride != nil && r.ConeGramsOverride.IsNegative() {
		errs = append(errs, FieldError{Field: "cone_grams_override", Message: "must be >= 0"})
	}
	for id, c := range r.Custom {
		if id == "" {
			errs = append(errs, FieldError{Field: "custom", Message: "custom activity id is required"})
			continue
		}
		if c.Grams.IsNegative() {
			errs = append(errs, FieldError{Field: "custom." + id, Message: "must be >= 0"})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
