// Package errors provides typed domain errors for the analysis engine and
// its surrounding layers.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeGeometry indicates non-positive or inconsistent part dimensions
	TypeGeometry Type = "INVALID_GEOMETRY"

	// TypeMaterial indicates a missing or malformed material property
	TypeMaterial Type = "INVALID_MATERIAL"

	// TypeConfig indicates an invalid process configuration
	TypeConfig Type = "INVALID_CONFIG"

	// TypeOverflow indicates a computation produced a non-finite result
	TypeOverflow Type = "COMPUTATION_OVERFLOW"

	// TypeParsing indicates a parsing error (catalog files, STL uploads)
	TypeParsing Type = "PARSING_ERROR"

	// TypeStorage indicates a persistence error
	TypeStorage Type = "STORAGE_ERROR"

	// TypeReport indicates a report rendering error
	TypeReport Type = "REPORT_ERROR"

	// TypeNotFound indicates a resource not found error
	TypeNotFound Type = "NOT_FOUND"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Geometry creates an invalid-geometry error naming the violated precondition
func Geometry(format string, args ...interface{}) *Error {
	return Newf(TypeGeometry, format, args...)
}

// Material creates an invalid-material error
func Material(format string, args ...interface{}) *Error {
	return Newf(TypeMaterial, format, args...)
}

// Config creates an invalid-config error
func Config(format string, args ...interface{}) *Error {
	return Newf(TypeConfig, format, args...)
}

// Overflow creates a computation-overflow error
func Overflow(quantity string) *Error {
	return Newf(TypeOverflow, "computation produced a non-finite %s", quantity)
}

// NotFound creates a not found error
func NotFound(resourceType, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", resourceType, identifier)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Storage creates a persistence error
func Storage(message string, cause error) *Error {
	return Wrap(TypeStorage, message, cause)
}

// Report creates a report rendering error
func Report(message string, cause error) *Error {
	return Wrap(TypeReport, message, cause)
}
