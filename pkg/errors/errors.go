// Package errors provides custom error types for the bookshelf system.
// These errors enable programmatic error checking through errors.Is and
// keep the store's recovery policy (skip, log, continue) explicit.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the bookshelf system
var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrDecode indicates that a stored line does not match the record grammar
	ErrDecode = errors.New("malformed record line")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// DecodeError represents a stored line that does not match the
// `id, title, author, status` grammar. The store recovers from these
// locally by skipping the line; they are never fatal to a load.
type DecodeError struct {
	Line    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("decode error in line %q: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// NewDecodeError creates a new DecodeError
func NewDecodeError(line, message string, err error) *DecodeError {
	return &DecodeError{Line: line, Message: message, Err: err}
}

// IOError represents an error during file operations. The store reports
// these to its diagnostic logger and keeps the in-memory collection
// authoritative rather than failing the operation.
type IOError struct {
	Operation string // "open", "read", "write", "seed"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Resource string
	ID       int
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource string, id int) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsDecodeError checks if an error is a decode error
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecode)
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}
