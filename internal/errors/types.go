package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrorTypeValidation marks a business-rule rejection: the request was
	// well formed but violates an invariant (increments, future date, cap).
	ErrorTypeValidation ErrorType = iota
	// ErrorTypeNotFound marks an identifier that did not resolve to a record.
	ErrorTypeNotFound
	// ErrorTypeInvalidInput marks a malformed request, caught before business
	// validation runs (missing field, wrong shape, unparseable value).
	ErrorTypeInvalidInput
	// ErrorTypeDatabase marks a storage failure.
	ErrorTypeDatabase
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeInvalidInput:
		return "invalid_input"
	case ErrorTypeDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// AppError represents a structured application error. All failures in this
// service are terminal and local; nothing is retried automatically.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error type
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}
