package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers. The persistence adapter maps
// driver errors onto these; services add context with fmt.Errorf + %w.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")

	// ErrConflict means a compare-and-swap write lost a race: the entity's
	// status changed between read and write. It is the only error callers
	// may retry automatically (re-read, re-attempt the whole operation).
	ErrConflict = errors.New("conflict")

	// ErrInvalidTransition means the entity's current status does not permit
	// the requested operation. Not retryable without new input.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrSelfSwap means a user tried to request or redeem their own item.
	ErrSelfSwap = errors.New("cannot swap own item")

	// ErrNotOwner means the offered item does not belong to the requester.
	ErrNotOwner = errors.New("not the item owner")

	// ErrInsufficientPoints means the balance is too low for a spend.
	ErrInsufficientPoints = errors.New("insufficient points")
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
