// Package errors provides structured error types for csvplot.
//
// Every stage of the plotting pipeline returns a typed failure rather than
// aborting the process. The Code on each error lets the CLI map failures to
// exit statuses and lets callers branch on the failure class:
//
//   - IO_ERROR: the input or output could not be opened, read or written
//   - SCHEMA_ERROR: the CSV shape is wrong (row arity, header problems)
//   - PARSE_ERROR: a field is not numeric or the CSV is malformed
//   - INSUFFICIENT_COLUMNS: split rendering on a table with fewer than 3 columns
//   - LAYOUT_ERROR: a planned panel references a column outside the table
//   - RENDER_ERROR: the chart backend failed while drawing a panel
//   - PRESENT_ERROR: the final image could not be flushed to disk
//
// # Usage
//
//	err := errors.New(errors.ErrCodeSchema, "row %d: expected %d fields, got %d", row, want, got)
//	if errors.Is(err, errors.ErrCodeSchema) {
//	    // Handle malformed input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Pipeline error codes.
const (
	ErrCodeIO                  Code = "IO_ERROR"
	ErrCodeSchema              Code = "SCHEMA_ERROR"
	ErrCodeParse               Code = "PARSE_ERROR"
	ErrCodeInsufficientColumns Code = "INSUFFICIENT_COLUMNS"
	ErrCodeLayout              Code = "LAYOUT_ERROR"
	ErrCodeRender              Code = "RENDER_ERROR"
	ErrCodePresent             Code = "PRESENT_ERROR"
)

// Input validation error codes, raised by the CLI before the pipeline runs.
const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
