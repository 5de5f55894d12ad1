// Package generate provides the generation-time output-unit model used by
// ahead-of-time processing: generated classes and methods, their atomic
// get-or-create factories, and rendering to Go source.
package generate

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure cases.
var (
	// ErrClassConflict indicates that the same output-unit label was
	// requested twice with incompatible configuration.
	ErrClassConflict = errors.New("generate: conflicting generated class")
	// ErrWriteFailed indicates a failure while rendering or writing
	// generated source.
	ErrWriteFailed = errors.New("generate: write failed")
)

// ClassConflictError reports a label collision between two requests for the
// same generated class with different customization intents. This is a
// programming error in a contribution, never silently resolved.
type ClassConflictError struct {
	Label   string
	Class   string // canonical name of the existing class
	Message string
}

// Error implements the error interface.
func (e *ClassConflictError) Error() string {
	return fmt.Sprintf("generate: conflicting class %q for label %q: %s", e.Class, e.Label, e.Message)
}

// Is reports whether the target matches the sentinel error for ClassConflictError.
func (e *ClassConflictError) Is(target error) bool {
	return target == ErrClassConflict
}

// NewClassConflictError creates a new ClassConflictError.
func NewClassConflictError(label, class, message string) *ClassConflictError {
	return &ClassConflictError{Label: label, Class: class, Message: message}
}

// WriteError reports a failure while rendering or writing a generated file.
type WriteError struct {
	File  string
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generate: write error (file: %s): %s", e.File, e.Cause.Error())
	}
	return fmt.Sprintf("generate: write error (file: %s)", e.File)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for WriteError.
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailed
}

// IsClassConflictError reports whether the error is a ClassConflictError.
func IsClassConflictError(err error) bool {
	var conflictErr *ClassConflictError
	return errors.As(err, &conflictErr)
}
