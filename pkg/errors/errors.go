package errors

import (
	"errors"
	"fmt"
)

// Domain errors - Sentinel errors for use with errors.Is()
var (
	ErrNotFound    = errors.New("resource not found")
	ErrValidation  = errors.New("validation error")
	ErrPersistence = errors.New("persistence failure")
	ErrBadRequest  = errors.New("bad request")
)

// AppError carries an error code, a caller-safe message, and the
// underlying cause. The cause is for server-side logs only and must
// never be rendered to API clients.
type AppError struct {
	Code    string
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

// Constructors
func NotFound(msg string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: msg, Err: ErrNotFound}
}

func BadRequest(msg string) *AppError {
	return &AppError{Code: "BAD_REQUEST", Message: msg, Err: ErrBadRequest}
}

func Persistence(msg string, err error) *AppError {
	return &AppError{Code: "PERSISTENCE_FAILURE", Message: msg, Err: errors.Join(ErrPersistence, err)}
}
