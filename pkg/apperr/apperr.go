// Package apperr defines the application error taxonomy: every failure that
// reaches an HTTP client carries a stable machine-readable code, and each
// code maps to exactly one status class.
package apperr

import (
	"errors"
	"net/http"
)

// Code identifies a failure class. Codes are part of the API contract and
// must not change between releases.
type Code string

const (
	CodeValidation            Code = "validation_error"
	CodeInvalidCredentials    Code = "invalid_credentials"
	CodeUnauthorized          Code = "unauthorized"
	CodeNotFound              Code = "not_found"
	CodeInsufficientInventory Code = "insufficient_inventory"
	CodeDatabase              Code = "database_error"
	CodeInternal              Code = "internal_error"
)

// Error is a coded application error. Fields carries optional field-level
// detail for validation failures.
type Error struct {
	Code    Code
	Message string
	Fields  map[string]string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a coded error with a client-safe message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a coded error that preserves the underlying cause for
// logging while exposing only message to clients.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Validation creates a validation error with field-level detail.
func Validation(fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: "Validation failed", Fields: fields}
}

// CodeOf extracts the Code from err, or CodeInternal for uncoded errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Status maps err's code to an HTTP status.
func Status(err error) int {
	switch CodeOf(err) {
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeInvalidCredentials, CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInsufficientInventory:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
