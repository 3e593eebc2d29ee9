// Package apperr defines the error taxonomy shared by the validation
// pipeline and the HTTP handlers: every failure carries the status code it
// should surface with, and handlers never invent codes of their own.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a request failure with an associated HTTP status code.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation creates a 400 error for malformed, missing or out-of-range input.
func Validation(format string, args ...any) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFound creates a 404 error for a missing entity id.
func NotFound(format string, args ...any) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// Internal is the unclassified catch-all. The underlying cause is logged by
// the caller, never sent to the client.
func Internal() *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Message: "Internal server error",
	}
}

// From classifies err: a typed *Error passes through unchanged, anything
// else becomes the 500 catch-all.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal()
}
