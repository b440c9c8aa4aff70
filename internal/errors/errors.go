// Package errors provides a lightweight structured error type (DiagDocError)
// for category-based classification of generator failures and their CLI
// exit codes.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a generator error for classification
type ErrorCategory string

const (
	// User-facing invocation and input errors
	CategoryUsage      ErrorCategory = "usage"
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Reading notes and writing pages
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// DiagDocError is a structured error with category, severity, and context
type DiagDocError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for DiagDocError
type ContextFields map[string]any

// Error implements the error interface
func (e *DiagDocError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *DiagDocError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *DiagDocError) WithContext(key string, value any) *DiagDocError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new DiagDocError
func New(category ErrorCategory, severity ErrorSeverity, message string) *DiagDocError {
	return &DiagDocError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new DiagDocError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *DiagDocError {
	return &DiagDocError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As extracts the outermost DiagDocError from an error chain.
func As(err error) (*DiagDocError, bool) {
	var dde *DiagDocError
	if stderrors.As(err, &dde) {
		return dde, true
	}
	return nil, false
}

// IsCategory checks if an error chain carries a DiagDocError of a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if dde, ok := As(err); ok {
		return dde.Category == category
	}
	return false
}
