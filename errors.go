package msgsearch

import (
	"errors"
	"fmt"
)

// Error represents a msgsearch library error with categorization.
type Error struct {
	// Code is a machine-readable error code
	Code string

	// Message is a human-readable error message
	Message string

	// Err is the underlying error (if any)
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error codes for msgsearch operations.
const (
	// ErrCodeValidation indicates request validation failed.
	ErrCodeValidation = "VALIDATION_ERROR"

	// ErrCodeConfiguration indicates invalid service configuration.
	ErrCodeConfiguration = "CONFIGURATION_ERROR"

	// ErrCodeSource indicates the upstream message source failed.
	ErrCodeSource = "SOURCE_ERROR"

	// ErrCodeIndex indicates the index build failed.
	ErrCodeIndex = "INDEX_ERROR"

	// ErrCodeNotReady indicates the index has not been built yet.
	ErrCodeNotReady = "NOT_READY"
)

// Common errors.
var (
	// ErrNotReady is returned by Search when the startup build has not
	// completed (or has failed). The caller should report the service as
	// unavailable rather than treat this as an empty result.
	ErrNotReady = &Error{
		Code:    ErrCodeNotReady,
		Message: "search index not ready",
	}
)

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorWithCause creates a new Error wrapping an underlying error.
func NewErrorWithCause(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// IsValidation checks if an error is a request validation error.
func IsValidation(err error) bool {
	var msErr *Error
	if errors.As(err, &msErr) {
		return msErr.Code == ErrCodeValidation
	}
	return false
}

// IsNotReady checks if an error signals an unbuilt index.
func IsNotReady(err error) bool {
	var msErr *Error
	if errors.As(err, &msErr) {
		return msErr.Code == ErrCodeNotReady
	}
	return errors.Is(err, ErrNotReady)
}
