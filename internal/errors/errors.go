package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NewValidationError creates a business-rule rejection with the message that
// is surfaced verbatim to the client.
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, id int64) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %d", resource, id),
		Code:    "NOT_FOUND",
	}
}

// NewInvalidInputError creates a malformed-request error for a specific field.
func NewInvalidInputError(field string, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    "DATABASE_ERROR",
		Cause:   cause,
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// UserMessage returns the message that may be shown to a client. Storage
// failures are masked; everything else is a client error and self-describing.
func UserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		if appErr.Type == ErrorTypeDatabase {
			return "An internal error occurred. Please try again."
		}
		return appErr.Message
	}
	return err.Error()
}

// HTTPStatus maps an error to the status code the boundary responds with.
func HTTPStatus(err error) int {
	appErr, ok := AsAppError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch appErr.Type {
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeValidation, ErrorTypeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ShouldLog reports whether an error is a system fault worth logging, as
// opposed to a client error that is part of normal operation.
func ShouldLog(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Type == ErrorTypeDatabase
	}
	return true
}
