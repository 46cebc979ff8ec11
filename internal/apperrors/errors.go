package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("resource state conflict")

// ErrApartmentDataNotReady indicates the apartment roster has not loaded yet.
// It is recoverable: callers are expected to retry once apartment data is
// available rather than treat it as a permanent failure.
var ErrApartmentDataNotReady = errors.New("apartment data not ready")

// AppError wraps a lower-level error with an HTTP-ish status code and message.
// Repositories use it to report infrastructure failures without leaking
// driver-specific error types to the service layer.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
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
