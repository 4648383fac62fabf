// Package errors provides custom error types for the bikescaper system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the bikescaper system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrSnapshotLoad indicates that a snapshot file could not be loaded
	ErrSnapshotLoad = errors.New("snapshot load failed")

	// ErrLocked indicates that another process holds the master store lock
	ErrLocked = errors.New("master store locked")
)

// SnapshotLoadError represents a failure to load a snapshot file.
// It covers both unreadable/unparseable files and structurally invalid
// ones, such as a table missing its name key column.
type SnapshotLoadError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *SnapshotLoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to load snapshot %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("failed to load snapshot: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *SnapshotLoadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SnapshotLoadError) Is(target error) bool {
	return target == ErrSnapshotLoad
}

// NewSnapshotLoadError creates a new SnapshotLoadError
func NewSnapshotLoadError(path, message string, err error) *SnapshotLoadError {
	return &SnapshotLoadError{Path: path, Message: message, Err: err}
}

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

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename", "lock"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "yaml", "date"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// ReconcileError represents a per-brand reconciliation failure.
// A ReconcileError for one brand never aborts the remaining brands
// in a multi-brand invocation.
type ReconcileError struct {
	Brand string
	Stage string // "load", "classify", "merge", "save"
	Err   error
}

// Error implements the error interface
func (e *ReconcileError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("reconciliation failed for brand %s during %s: %v", e.Brand, e.Stage, e.Err)
	}
	return fmt.Sprintf("reconciliation failed for brand %s: %v", e.Brand, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ReconcileError) Unwrap() error {
	return e.Err
}

// NewReconcileError creates a new ReconcileError
func NewReconcileError(brand, stage string, err error) *ReconcileError {
	return &ReconcileError{Brand: brand, Stage: stage, Err: err}
}

// ReportError represents a failure to write a downstream report artifact.
// Reports are best-effort; a ReportError never rolls back a written
// master store.
type ReportError struct {
	Brand string
	Path  string
	Err   error
}

// Error implements the error interface
func (e *ReportError) Error() string {
	return fmt.Sprintf("failed to write report %s for brand %s: %v", e.Path, e.Brand, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ReportError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsSnapshotLoad checks if an error is a snapshot load error
func IsSnapshotLoad(err error) bool {
	return errors.Is(err, ErrSnapshotLoad)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsLocked checks if an error indicates a held master store lock
func IsLocked(err error) bool {
	return errors.Is(err, ErrLocked)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapSnapshotLoad wraps an error as a SnapshotLoadError
func WrapSnapshotLoad(path string, err error) error {
	if err == nil {
		return nil
	}
	return NewSnapshotLoadError(path, err.Error(), err)
}

// WrapReconcile wraps an error as a ReconcileError
func WrapReconcile(brand, stage string, err error) error {
	if err == nil {
		return nil
	}
	return NewReconcileError(brand, stage, err)
}
