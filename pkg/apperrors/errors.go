package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries the HTTP status a failure maps to. The first failing
// precondition aborts an operation; handlers translate the error into the
// response envelope unchanged.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Invalid(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{StatusCode: http.StatusForbidden, Message: message}
}

func Internal(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: message, Err: err}
}

// Status resolves any error to the HTTP status and message to present.
// Errors outside the taxonomy are reported as a store failure.
func Status(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode, appErr.Message
	}
	return http.StatusInternalServerError, "Internal server error"
}
