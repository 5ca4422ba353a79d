// Package apperr defines the application's business exception type and the
// sentinel errors the central error handler classifies on.
package apperr

import (
	"errors"
	"net/http"
)

const (
	// DefaultData is the classification tag used when none is given.
	DefaultData = "BUSINESS_ERROR"

	// DefaultStatus is the HTTP status used when none is given.
	DefaultStatus = http.StatusBadRequest
)

var (
	// ErrPermissionDenied marks a request whose caller lacks the rights to
	// perform it. The error handler turns it into a 403 response.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrValidation marks malformed or semantically invalid input.
	// The error handler turns it into a 400 response.
	ErrValidation = errors.New("validation failed")
)

// Error is a business exception for expected domain-rule violations, e.g. a
// duplicate permission grant. It carries a clean message for the caller, a
// classification tag and an HTTP status, as opposed to unexpected failures
// which surface as a generic 500.
type Error struct {
	// Message is the human-readable message explaining the issue.
	Message string
	// Data is the caller-facing classification tag.
	Data string
	// Status is the HTTP status code for the response.
	Status int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Data + ": " + e.Message
}

// New creates a business exception with the default tag and status.
func New(message string) *Error {
	return &Error{
		Message: message,
		Data:    DefaultData,
		Status:  DefaultStatus,
	}
}

// NewWithStatus creates a business exception with an explicit HTTP status.
func NewWithStatus(message string, status int) *Error {
	e := New(message)
	e.Status = status

	return e
}

// WithData overrides the classification tag.
func (e *Error) WithData(data string) *Error {
	e.Data = data
	return e
}
