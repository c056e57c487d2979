package intercom

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/intercom-backend/internal/domain"
)

// RingInput holds the parameters of a visitor ring.
type RingInput struct {
	UnitID  uuid.UUID
	Message *string
	Photo   []byte
}

// Validate checks all fields and collects all errors.
func (i RingInput) Validate(maxMessage int) error {
	var errs []domain.FieldError

	if i.UnitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "unit_id", Message: "required"})
	}
	if i.Message != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Message)) > maxMessage {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// OpenInput holds the parameters of a resident open.
type OpenInput struct {
	EventID uuid.UUID
	Target  domain.DoorTarget
}

// Validate checks all fields and collects all errors.
func (i OpenInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if i.Target != "" && !i.Target.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target", Message: "must be default, building or unit"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RespondInput holds the reply a resident sends to the visitor.
type RespondInput struct {
	EventID uuid.UUID
	Message string
}

// Validate checks all fields and collects all errors.
func (i RespondInput) Validate(maxMessage int) error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if utf8.RuneCountInString(msg) > maxMessage {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HistoryInput holds the parameters for listing a unit's rings.
type HistoryInput struct {
	UnitID uuid.UUID
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.UnitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "unit_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxHistoryLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
