// Package errors defines the application error taxonomy shared by all layers.
// Every failure surfaced to a client is one of these types; the HTTP layer
// maps the type to a status code.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeBadRequest   ErrorType = "bad_request"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeInternal     ErrorType = "internal_error"
)

// AppError carries an error classification alongside a client-safe message.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{Type: t, Message: message, Code: code, Details: detail}
}

// NewValidationError reports malformed or missing input.
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewBadRequestError reports a well-formed request that cannot be satisfied.
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// NewUnauthorizedError reports a missing, invalid or expired credential.
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError reports an authenticated caller lacking permission.
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewNotFoundError reports an absent entity. Cross-tenant lookups surface this
// type as well, so a foreign tenant's entity is indistinguishable from nothing.
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError reports a uniqueness violation.
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewInternalError reports an unexpected server fault.
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// GetAppError extracts an AppError from err, or returns nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsAppError checks whether err carries an AppError.
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

func IsValidationError(err error) bool   { return isType(err, ErrorTypeValidation) }
func IsBadRequestError(err error) bool   { return isType(err, ErrorTypeBadRequest) }
func IsNotFoundError(err error) bool     { return isType(err, ErrorTypeNotFound) }
func IsConflictError(err error) bool     { return isType(err, ErrorTypeConflict) }
func IsUnauthorizedError(err error) bool { return isType(err, ErrorTypeUnauthorized) }
func IsForbiddenError(err error) bool    { return isType(err, ErrorTypeForbidden) }

// IsDuplicateError checks whether err is a storage-layer unique key violation.
// Matching on the driver message keeps repositories free of driver imports.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "violates unique constraint")
}
