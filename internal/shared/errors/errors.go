// Package errors defines the failures use cases hand back to the HTTP layer.
// Each *AppError knows the status code it should be answered with.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation          ErrorType = "validation_error"
	ErrorTypeNotFound            ErrorType = "not_found"
	ErrorTypeConflict            ErrorType = "conflict"
	ErrorTypeUnauthorized        ErrorType = "unauthorized"
	ErrorTypeForbidden           ErrorType = "forbidden"
	ErrorTypeInternal            ErrorType = "internal_error"
	ErrorTypeBadRequest          ErrorType = "bad_request"
	ErrorTypeInsufficientCredits ErrorType = "insufficient_credits"
	ErrorTypeTooManyRequests     ErrorType = "too_many_requests"
)

var statusByType = map[ErrorType]int{
	ErrorTypeValidation:          http.StatusBadRequest,
	ErrorTypeNotFound:            http.StatusNotFound,
	ErrorTypeConflict:            http.StatusConflict,
	ErrorTypeUnauthorized:        http.StatusUnauthorized,
	ErrorTypeForbidden:           http.StatusForbidden,
	ErrorTypeInternal:            http.StatusInternalServerError,
	ErrorTypeBadRequest:          http.StatusBadRequest,
	ErrorTypeInsufficientCredits: http.StatusPaymentRequired,
	ErrorTypeTooManyRequests:     http.StatusTooManyRequests,
}

const insufficientCreditsMessage = "Need to purchase package for more listings"

type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
}

// build takes at most one detail string; extra values are ignored.
func build(t ErrorType, message string, details []string) *AppError {
	e := &AppError{Type: t, Message: message, Code: statusByType[t]}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}

func NewValidationError(message string, details ...string) *AppError {
	return build(ErrorTypeValidation, message, details)
}

func NewNotFoundError(message string, details ...string) *AppError {
	return build(ErrorTypeNotFound, message, details)
}

func NewConflictError(message string, details ...string) *AppError {
	return build(ErrorTypeConflict, message, details)
}

func NewUnauthorizedError(message string, details ...string) *AppError {
	return build(ErrorTypeUnauthorized, message, details)
}

func NewForbiddenError(message string, details ...string) *AppError {
	return build(ErrorTypeForbidden, message, details)
}

func NewInternalError(message string, details ...string) *AppError {
	return build(ErrorTypeInternal, message, details)
}

func NewBadRequestError(message string, details ...string) *AppError {
	return build(ErrorTypeBadRequest, message, details)
}

// NewInsufficientCreditsError answers 402 so clients can send the user to
// the package checkout.
func NewInsufficientCreditsError(details ...string) *AppError {
	return build(ErrorTypeInsufficientCredits, insufficientCreditsMessage, details)
}

func NewTooManyRequestsError(message string, details ...string) *AppError {
	return build(ErrorTypeTooManyRequests, message, details)
}

func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// GetAppError unwraps err to its *AppError, or returns nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func is(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

func IsConflictError(err error) bool            { return is(err, ErrorTypeConflict) }
func IsNotFoundError(err error) bool            { return is(err, ErrorTypeNotFound) }
func IsValidationError(err error) bool          { return is(err, ErrorTypeValidation) }
func IsForbiddenError(err error) bool           { return is(err, ErrorTypeForbidden) }
func IsUnauthorizedError(err error) bool        { return is(err, ErrorTypeUnauthorized) }
func IsBadRequestError(err error) bool          { return is(err, ErrorTypeBadRequest) }
func IsInsufficientCreditsError(err error) bool { return is(err, ErrorTypeInsufficientCredits) }

// IsDuplicateError recognises unique-key violations from MySQL and SQLite.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range []string{"Duplicate entry", "duplicate key", "UNIQUE constraint failed"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
