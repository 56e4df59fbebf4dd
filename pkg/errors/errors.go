// Package errors provides coded errors for pyboot so callers and tests can
// branch on a stable ErrorCode instead of message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode names a failure category of a bootstrap run
type ErrorCode string

const (
	// ErrInternal is an interrupted or otherwise broken run
	ErrInternal ErrorCode = "INTERNAL"

	// ErrInvalidInput is a programming or registry mistake, such as an
	// unknown version style; it always aborts the run
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Project root checks, fatal before any template is processed
	ErrPrecondition ErrorCode = "PRECONDITION"
	ErrVersionParse ErrorCode = "VERSION_PARSE"

	// Tool configuration
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrUnsafePath  ErrorCode = "UNSAFE_PATH"

	// Per template filesystem failures, reported as "Failed:" lines
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// PybootError carries a code, a user facing message and the paths or
// names involved, optionally wrapping the underlying cause.
type PybootError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error renders "[CODE] message" plus the cause, for logs.
func (e *PybootError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *PybootError) Unwrap() error {
	return e.Wrapped
}

// Is matches any PybootError with the same code.
func (e *PybootError) Is(target error) bool {
	var targetErr *PybootError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates an error with the given code and message
func New(code ErrorCode, message string) *PybootError {
	return &PybootError{Code: code, Message: message, Details: map[string]interface{}{}}
}

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PybootError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and message to err. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *PybootError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PybootError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail records a path or name involved in the failure
func (e *PybootError) WithDetail(key string, value interface{}) *PybootError {
	if e.Details == nil {
		e.Details = map[string]interface{}{}
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether any error in err's chain carries code
func IsErrorCode(err error, code ErrorCode) bool {
	var pyErr *PybootError
	if errors.As(err, &pyErr) {
		return pyErr.Code == code
	}
	return false
}
