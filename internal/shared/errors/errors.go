// Package errors provides application-level error types carried across the
// use-case boundary. Callers translate these into caller-visible failures.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation_error"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeConflict   ErrorType = "conflict"
	ErrorTypeInternal   ErrorType = "internal_error"
)

// AppError carries an error classification plus context for the boundary.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{Type: t, Message: message, Details: detail}
}

func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, message, details...)
}

func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, message, details...)
}

func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, message, details...)
}

func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, message, details...)
}

// GetAppError extracts an AppError from an error chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFoundError reports whether the chain contains a not-found AppError.
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsValidationError reports whether the chain contains a validation AppError.
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}
