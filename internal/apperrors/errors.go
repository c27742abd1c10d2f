package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found in the
// set the operation expected it in (e.g. restoring an already-active row).
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrCascadeInconsistency indicates that a parent mutation succeeded but its
// dependent rows were left in an unexpected state. Surfaced as a warning to
// the caller, never treated as fatal.
var ErrCascadeInconsistency = errors.New("cascade left dependent rows inconsistent")

// AppError wraps an underlying error with a status code and a message
// suitable for surfacing to the caller.
type AppError struct {
	Code    int
	Message string
	Err     error
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

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
