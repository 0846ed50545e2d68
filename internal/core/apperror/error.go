// Package apperror provides structured error handling for the application.
// All business errors must use AppError so callers can branch on the code.
package apperror

import (
	"errors"
	"fmt"
)

// Error codes for the domain
const (
	// Infrastructure errors
	CodeInternal = "INTERNAL_ERROR"
	CodeStorage  = "STORAGE_ERROR"

	// Validation errors
	CodeInvalidInput = "INVALID_INPUT"

	// Business rule violations
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeUnsupportedUnit   = "UNSUPPORTED_UNIT"

	// Not found
	CodeNotFound = "NOT_FOUND"
)

// AppError is the standard error type for the application.
// It implements the error interface and provides structured details for
// display in the UI layer.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field names, quantities, etc.)
	Details map[string]any `json:"details,omitempty"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions for common errors ---

// NewInvalidInput creates a validation error
func NewInvalidInput(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidInput,
		Message: message,
	}
}

// NewNotFound creates a not found error
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", entity),
		Details: map[string]any{"entity": entity, "id": id},
	}
}

// NewInsufficientStock creates a stock shortage error for a single ingredient.
// Quantities are expressed in the ingredient's own stock unit.
func NewInsufficientStock(itemID, itemName string, requested, available float64) *AppError {
	return &AppError{
		Code:    CodeInsufficientStock,
		Message: fmt.Sprintf("insufficient stock of %q", itemName),
		Details: map[string]any{
			"item_id":   itemID,
			"item_name": itemName,
			"requested": requested,
			"available": available,
		},
	}
}

// NewUnsupportedUnit creates an error for a conversion between incompatible
// unit families or unknown unit codes.
func NewUnsupportedUnit(from, to string) *AppError {
	return &AppError{
		Code:    CodeUnsupportedUnit,
		Message: fmt.Sprintf("cannot convert between units %q and %q", from, to),
		Details: map[string]any{"from": from, "to": to},
	}
}

// NewStorage wraps a storage collaborator failure
func NewStorage(err error) *AppError {
	return &AppError{
		Code:    CodeStorage,
		Message: "storage operation failed",
		Err:     err,
	}
}

// NewInternal creates an internal error (hides details from the caller)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "internal error",
		Err:     err,
	}
}

// --- Helper functions ---

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}

// IsInsufficientStock checks if error is CodeInsufficientStock
func IsInsufficientStock(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeInsufficientStock
	}
	return false
}

// IsUnsupportedUnit checks if error is CodeUnsupportedUnit
func IsUnsupportedUnit(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeUnsupportedUnit
	}
	return false
}

// IsInvalidInput checks if error is CodeInvalidInput
func IsInvalidInput(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeInvalidInput
	}
	return false
}
