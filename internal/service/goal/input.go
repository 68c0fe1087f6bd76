package goal

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// CreateGoalInput configures a new goal.
type CreateGoalInput struct {
	Name          string
	Scope         domain.GoalScope
	Targets       domain.GoalCounts
	IsRepeating   bool
	AllowOverflow bool
	// Participants defaults to everyone when nil.
	Participants *domain.ParticipantFilter
	// SessionShareCode binds a CURRENT_SESSION goal to a session up front.
	SessionShareCode *string
}

// Validate checks all fields and collects all errors.
func (i *CreateGoalInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if err := i.Scope.Validate(); err != nil {
		errs = append(errs, domain.FieldError{Field: "scope", Message: err.Error()})
	}

	errs = append(errs, i.Targets.Validate("targets")...)
	if len(i.Targets.Configured()) == 0 {
		errs = append(errs, domain.FieldError{Field: "targets", Message: "at least one target must be > 0"})
	}

	if i.Participants != nil && !i.Participants.All && len(i.Participants.IDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "participants", Message: "list at least one participant or use ALL"})
	}

	if i.SessionShareCode != nil {
		if i.Scope.Kind != domain.GoalScopeCurrentSession {
			errs = append(errs, domain.FieldError{Field: "session_share_code", Message: "only allowed for CURRENT_SESSION goals"})
		} else if strings.TrimSpace(*i.SessionShareCode) == "" {
			errs = append(errs, domain.FieldError{Field: "session_share_code", Message: "must not be blank"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
