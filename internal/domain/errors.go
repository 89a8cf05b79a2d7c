package domain

import (
	"errors"
	"fmt"
)

// Typed domain errors. Callers branch on the error kind with errors.As;
// free-text messages are for humans only.

// ValidationError reports malformed or rule-violating input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation: %s", e.Message)
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a missing (or soft-deleted, where lookups exclude
// deleted rows) entity.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// NewNotFoundError builds a NotFoundError for entity/id.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// BusinessError reports an operation forbidden by current domain state
// (e.g. deleting a category that still has products).
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string { return e.Message }

// NewBusinessError builds a BusinessError.
func NewBusinessError(message string) error {
	return &BusinessError{Message: message}
}

// InsufficientStockError reports a stock operation asking for more units
// than are available (on hand minus reserved).
type InsufficientStockError struct {
	SKUCode   string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.SKUCode, e.Requested, e.Available)
}

// ConflictError reports a concurrent modification detected by the optimistic
// version check. The caller may re-read and retry; the core never does.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflictError builds a ConflictError.
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
