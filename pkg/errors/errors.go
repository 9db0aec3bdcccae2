// Package errors provides structured error types for c4dsl.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (elements, hierarchy declarations, files)
//   - CIRCULAR_*: Self-referencing declarations
//   - TEMPLATE_*: Output that could not be rendered
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidElement, "name must not be empty")
//	if errors.Is(err, errors.ErrCodeInvalidElement) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeTemplate, origErr, "write workspace")
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidElement   Code = "INVALID_ELEMENT"
	ErrCodeInvalidHierarchy Code = "INVALID_HIERARCHY"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeDuplicateElement Code = "DUPLICATE_ELEMENT"

	// Declared hierarchy errors
	ErrCodeCircularHierarchy Code = "CIRCULAR_HIERARCHY"

	// Rendering errors
	ErrCodeTemplate Code = "TEMPLATE_FAILURE"

	// Resource not found errors
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
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// HierarchyError describes a declared parent of the wrong kind.
// Actual is empty when the parent was not declared at all.
type HierarchyError struct {
	Child    string // Name of the offending element
	Expected string // Kind the parent must have
	Parent   string // Declared parent name
	Actual   string // Kind the parent actually has
}

// Error implements the error interface.
func (e *HierarchyError) Error() string {
	if e.Actual == "" {
		return fmt.Sprintf("%q: parent %q is not declared (expected %s)", e.Child, e.Parent, e.Expected)
	}
	return fmt.Sprintf("%q: parent %q is a %s, expected %s", e.Child, e.Parent, e.Actual, e.Expected)
}

// Code returns the error code for this error type.
func (e *HierarchyError) Code() Code {
	return ErrCodeInvalidHierarchy
}

// CircularError reports a parent chain that revisits an element.
type CircularError struct {
	Element string   // Name seen twice
	Chain   []string // Names walked, ending with Element
}

// Error implements the error interface.
func (e *CircularError) Error() string {
	return fmt.Sprintf("circular relationship at %q (%s)", e.Element, strings.Join(e.Chain, " -> "))
}

// Code returns the error code for this error type.
func (e *CircularError) Code() Code {
	return ErrCodeCircularHierarchy
}
