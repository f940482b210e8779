package library

import (
	"errors"
	"fmt"
)

// ErrorCode identifies well-known failure categories of the library domain.
type ErrorCode string

const (
	ErrCodeEmptyName          ErrorCode = "EMPTY_NAME"
	ErrCodeEmptySelection     ErrorCode = "EMPTY_SELECTION"
	ErrCodeInvalidID          ErrorCode = "INVALID_ID"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeDuplicate          ErrorCode = "DUPLICATE_ID"
	ErrCodeValidation         ErrorCode = "VALIDATION_ERROR"
	ErrCodePersistenceFailure ErrorCode = "PERSISTENCE_FAILURE"
)

// DomainError is a typed error enriched with contextual data.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Sentinels for errors.Is checks. They match any DomainError with the same code.
var (
	ErrEmptyName          = &DomainError{Code: ErrCodeEmptyName}
	ErrEmptySelection     = &DomainError{Code: ErrCodeEmptySelection}
	ErrInvalidID          = &DomainError{Code: ErrCodeInvalidID}
	ErrNotFound           = &DomainError{Code: ErrCodeNotFound}
	ErrDuplicate          = &DomainError{Code: ErrCodeDuplicate}
	ErrValidation         = &DomainError{Code: ErrCodeValidation}
	ErrPersistenceFailure = &DomainError{Code: ErrCodePersistenceFailure}
)

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if msg == "" {
		msg = "error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches another DomainError with the same code. A target without a
// message matches every message of that code.
func (e *DomainError) Is(target error) bool {
	var other *DomainError
	if !errors.As(target, &other) || e == nil || other == nil {
		return false
	}
	if e.Code != other.Code {
		return false
	}
	return other.Message == "" || other.Message == e.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// CodeOf returns the code of the first DomainError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// NewPersistenceError wraps a storage failure.
func NewPersistenceError(operation string, cause error) *DomainError {
	return newDomainError(ErrCodePersistenceFailure, "persisting library failed", cause, map[string]interface{}{
		"operation": operation,
	})
}

func newDomainError(code ErrorCode, message string, cause error, context map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

func newInvalidIDError(id string) *DomainError {
	return newDomainError(ErrCodeInvalidID, "unknown product id", nil, map[string]interface{}{
		"id": id,
	})
}

func newNotFoundError(id string) *DomainError {
	return newDomainError(ErrCodeNotFound, "library item not found", nil, map[string]interface{}{
		"id": id,
	})
}

func newDuplicateError(id string) *DomainError {
	return newDomainError(ErrCodeDuplicate, "duplicate identifier", nil, map[string]interface{}{
		"id": id,
	})
}

func newValidationError(message string, context map[string]interface{}) *DomainError {
	return newDomainError(ErrCodeValidation, message, nil, context)
}
