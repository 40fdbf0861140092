package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")

	// ErrMalformedShareData means a share token decoded cleanly but lacks the mode or teams field.
	ErrMalformedShareData = errors.New("malformed share data")
	// ErrCorruptToken means a share token could not be base64-decoded, unescaped, or parsed.
	ErrCorruptToken = errors.New("corrupt share token")
	// ErrEmptyLayout is returned when saving or sharing a layout with every slot empty.
	ErrEmptyLayout = errors.New("layout is empty")
	// ErrStorageCorrupt marks persisted JSON that could not be parsed. It never leaves the store.
	ErrStorageCorrupt = errors.New("stored data is corrupt")
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
