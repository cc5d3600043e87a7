package models

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a referenced record id no longer exists, e.g.
// because another session checked the child out between read and write.
// Surfaced as a non-fatal user message, never a crash.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NewNotFoundError creates a NotFoundError for a resource and id.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationFailedError carries one or more field validation messages.
// The operation was not attempted.
type ValidationFailedError struct {
	Messages []string
}

func (e *ValidationFailedError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Messages[0]
}

// NewValidationError creates a ValidationFailedError from messages.
func NewValidationError(messages ...string) *ValidationFailedError {
	return &ValidationFailedError{Messages: messages}
}

// IsValidation reports whether err is (or wraps) a ValidationFailedError.
func IsValidation(err error) bool {
	var ve *ValidationFailedError
	return errors.As(err, &ve)
}

// StoreUnavailableError indicates the backing store could not complete an
// operation. The user is prompted to retry; there is no automatic retry.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps a driver error with the operation that failed.
func NewStoreError(op string, err error) *StoreUnavailableError {
	return &StoreUnavailableError{Op: op, Err: err}
}

// IsStoreUnavailable reports whether err is (or wraps) a StoreUnavailableError.
func IsStoreUnavailable(err error) bool {
	var se *StoreUnavailableError
	return errors.As(err, &se)
}
