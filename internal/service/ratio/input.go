package ratio

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// UpdateRatioInput holds optional changes to the built-in ratios.
// Nil fields are left unchanged.
type UpdateRatioInput struct {
	GramsPerCone      *decimal.Decimal
	GramsPerJoint     *decimal.Decimal
	GramsPerBowl      *decimal.Decimal
	ConeGramsOverride *decimal.Decimal
	ClearConeOverride bool
	DeductCones       *bool
	DeductJoints      *bool
	DeductBowls       *bool
}

// Validate checks all fields and collects all errors.
func (i *UpdateRatioInput) Validate() error {
	var errs []domain.FieldError

	for _, f := range []struct {
		name string
		v    *decimal.Decimal
	}{
		{"grams_per_cone", i.GramsPerCone},
		{"grams_per_joint", i.GramsPerJoint},
		{"grams_per_bowl", i.GramsPerBowl},
		{"cone_grams_override", i.ConeGramsOverride},
	} {
		if f.v != nil && f.v.IsNegative() {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "must be >= 0"})
		}
	}
	if i.ClearConeOverride && i.ConeGramsOverride != nil {
		errs = append(errs, domain.FieldError{Field: "cone_grams_override", Message: "cannot set and clear at once"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *UpdateRatioInput) apply(r *domain.ConsumptionRatio) {
	if i.GramsPerCone != nil {
		r.GramsPerCone = *i.GramsPerCone
	}
	if i.GramsPerJoint != nil {
		r.GramsPerJoint = *i.GramsPerJoint
	}
	if i.GramsPerBowl != nil {
		r.GramsPerBowl = *i.GramsPerBowl
	}
	if i.ConeGramsOverride != nil {
		v := *i.ConeGramsOverride
		r.ConeGramsOverride = &v
	}
	if i.ClearConeOverride {
		r.ConeGramsOverride = nil
	}
	if i.DeductCones != nil {
		r.DeductCones = *i.DeductCones
	}
	if i.DeductJoints != nil {
		r.DeductJoints = *i.DeductJoints
	}
	if i.DeductBowls != nil {
		r.DeductBowls = *i.DeductBowls
	}
}

// SetCustomInput configures one custom activity type.
type SetCustomInput struct {
	ID      string
	Grams   decimal.Decimal
	Deducts bool
}

// Validate checks all fields and collects all errors.
func (i *SetCustomInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if domain.ActivityType(i.ID).IsValid() {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must not shadow a built-in activity type"})
	}
	if i.Grams.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "grams", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
