package model

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a domain error so transport layers can map it to
// a status without string matching.
type ErrorCode string

const (
	ErrCodeValidation   ErrorCode = "VALIDATION"
	ErrCodeAuthRequired ErrorCode = "AUTH_REQUIRED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeStorage      ErrorCode = "STORAGE"
)

// Error is a domain-level error with a semantic code and an optional
// wrapped cause.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Common domain errors.
var (
	ErrRecipeNotFound = NewError(ErrCodeNotFound, "recipe not found")
	ErrReviewNotFound = NewError(ErrCodeNotFound, "review not found")
	ErrAuthRequired   = NewError(ErrCodeAuthRequired, "sign in required")
	ErrForbidden      = NewError(ErrCodeForbidden, "not allowed")
	ErrTitleRequired  = NewError(ErrCodeValidation, "title is required")
)

// CodeOf extracts the code from a domain error, or empty if err is not one.
func CodeOf(err error) ErrorCode {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code
	}
	return ""
}

// IsCode helps checking error codes.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
