// Package errors provides structured error types for pprep.
//
// Every failure the layout core can produce is a deterministic input mistake:
// a malformed length or size string, a missing dimension, or a contradictory
// set of layout constraints. This package gives those failures a
// machine-readable code so that callers (the CLI, the batch runner, tests)
// can tell them apart without matching on message text.
//
// # Error Codes
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*: malformed input strings (parse errors)
//   - MISSING_*: structurally incomplete values
//   - *_LAYOUT: layout constraint failures
//   - FILE_NOT_FOUND / INVALID_PATH: batch input and output problems
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLength, "invalid length %q", s)
//	if errors.Is(err, errors.ErrCodeInvalidLength) {
//	    // Handle parse error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidLength, strconvErr, "invalid number in %q", s)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Parse errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidLength  Code = "INVALID_LENGTH"
	ErrCodeInvalidUnit    Code = "INVALID_UNIT"
	ErrCodeInvalidSize    Code = "INVALID_SIZE"
	ErrCodeInvalidBorders Code = "INVALID_BORDERS"
	ErrCodeInvalidScale   Code = "INVALID_SCALE"
	ErrCodeInvalidColor   Code = "INVALID_COLOR"
	ErrCodeInvalidFilter  Code = "INVALID_FILTER"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Structural errors
	ErrCodeMissingDimension Code = "MISSING_DIMENSION"

	// Layout constraint errors
	ErrCodeOverdeterminedLayout Code = "OVERDETERMINED_LAYOUT"
	ErrCodeDegenerateLayout     Code = "DEGENERATE_LAYOUT"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
// The outermost *Error in the chain decides.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
