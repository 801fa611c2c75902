// Package response writes JSON responses. Success payloads are written as-is
// so handlers control the documented shape; failures share one envelope with
// a stable machine-readable code.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/merchstore/merchstore/pkg/apperr"
)

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Created writes v with 201.
func Created(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusCreated, v)
}

// Error writes an error envelope with an explicit status and code.
func Error(w http.ResponseWriter, status int, code apperr.Code, message string) {
	JSON(w, status, errorBody{Code: string(code), Message: message})
}

// Err writes err using its apperr code and status mapping. Uncoded errors
// become internal_error with a generic message so internals never leak.
func Err(w http.ResponseWriter, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		Error(w, http.StatusInternalServerError, apperr.CodeInternal, "An unexpected error occurred")
		return
	}
	JSON(w, apperr.Status(e), errorBody{
		Code:    string(e.Code),
		Message: e.Message,
		Errors:  e.Fields,
	})
}

// ValidationError writes a 422 with field-level detail.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, errorBody{
		Code:    string(apperr.CodeValidation),
		Message: "Validation failed",
		Errors:  errs,
	})
}

// Unauthorized writes a 401.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, apperr.CodeUnauthorized, message)
}

// NotFound writes a 404.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Not found"
	}
	Error(w, http.StatusNotFound, apperr.CodeNotFound, message)
}
