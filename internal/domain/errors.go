package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the pipeline. Services wrap them with context;
// the REST layer maps each to one status code.
var (
	// ErrNotFound: unknown unit or access event.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	// ErrUnauthorized: no session, a bad token, or a bad webhook signature.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden: the actor has no active membership on the unit.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict: the event was already resolved by someone else.
	ErrConflict = errors.New("conflict")
	// ErrRateLimited: ring or stream admission was denied.
	ErrRateLimited = errors.New("rate limited")
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
