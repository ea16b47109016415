// Package errors provides a lightweight structured error type (TxxtError)
// for category-based classification in the CLI and daemon surfaces.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a txxt error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Document-level conditions
	CategoryUnsupported ErrorCategory = "unsupported-document"
	CategoryStructure   ErrorCategory = "structure"
	CategoryReference   ErrorCategory = "reference"

	// Runtime and infrastructure errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryDaemon     ErrorCategory = "daemon"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// TxxtError is a structured error with category, severity, and context
type TxxtError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for TxxtError
type ContextFields map[string]any

// Error implements the error interface
func (e *TxxtError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *TxxtError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *TxxtError) WithContext(key string, value any) *TxxtError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new TxxtError
func New(category ErrorCategory, severity ErrorSeverity, message string) *TxxtError {
	return &TxxtError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new TxxtError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *TxxtError {
	return &TxxtError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if te, ok := err.(*TxxtError); ok {
		return te.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns
// CategoryInternal if not a TxxtError
func GetCategory(err error) ErrorCategory {
	if te, ok := err.(*TxxtError); ok {
		return te.Category
	}
	return CategoryInternal
}
