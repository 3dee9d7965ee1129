package policy

import (
	"errors"

	"pt-booking/pkg/utils"
)

var (
	// ErrForbidden means the actor may not address the booking.
	ErrForbidden = errors.New("you do not have permission to change this booking")
	// ErrNotFound is reported to callers exactly like ErrForbidden so the
	// existence of other actors' bookings does not leak.
	ErrNotFound = errors.New("booking not found")
)

// ValidationError carries field-level messages keyed by request field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
