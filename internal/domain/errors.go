package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")

	// ErrInvalidConfiguration reports a configuration that cannot be evaluated,
	// such as a goal window with a non-positive duration.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnresolvedStashTarget is surfaced as a warning: the activity is logged
	// but no stash is charged.
	ErrUnresolvedStashTarget = errors.New("stash target unresolved")

	ErrConcurrentGoalUpdate = fmt.Errorf("concurrent goal update: %w", ErrConflict)

	// ErrLedgerIntegrity is fatal for the affected ledger until a manual ADJUST resyncs it.
	ErrLedgerIntegrity = errors.New("ledger integrity violation")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
