// Package util provides utility functions and common error types.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for failure classification
var (
	ErrCommandFailed    = errors.New("device command failed")
	ErrBadFormat        = errors.New("malformed input")
	ErrUnknownValue     = errors.New("unrecognized device value")
	ErrValidationFailed = errors.New("validation failed")
	ErrNotFound         = errors.New("resource not found")
	ErrUnsupported      = errors.New("operation not supported")
)

// CommandError represents a command the device rejected or failed to execute.
// The offending command string is carried verbatim so the caller can diagnose.
type CommandError struct {
	Command string
	Code    string
	Output  string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q failed", e.Command)
	if e.Code != "" {
		msg += " (code " + e.Code + ")"
	}
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}

// NewCommandError creates a command error
func NewCommandError(command, code, output string) *CommandError {
	return &CommandError{Command: command, Code: code, Output: output}
}

// FormatError represents a malformed range specification or unparseable field.
// Always a caller/input error, never retried.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrBadFormat
}

// NewFormatError creates a format error
func NewFormatError(input, reason string) *FormatError {
	return &FormatError{Input: input, Reason: reason}
}

// ValueMapError represents a device-reported value with no canonical mapping.
// Treated as a schema-drift signal and surfaced rather than silently defaulted.
type ValueMapError struct {
	Field string
	Value string
}

func (e *ValueMapError) Error() string {
	return fmt.Sprintf("no mapping for field %q value %q", e.Field, e.Value)
}

func (e *ValueMapError) Unwrap() error {
	return ErrUnknownValue
}

// NewValueMapError creates a value map error
func NewValueMapError(field, value string) *ValueMapError {
	return &ValueMapError{Field: field, Value: value}
}

// ValidationError represents one or more validation failures
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "validation failed: " + e.Errors[0]
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a validation error from messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}

// ValidationBuilder helps accumulate validation errors
type ValidationBuilder struct {
	errors []string
}

// Add adds an error message if condition is false
func (v *ValidationBuilder) Add(condition bool, message string) *ValidationBuilder {
	if !condition {
		v.errors = append(v.errors, message)
	}
	return v
}

// AddError adds an error message unconditionally
func (v *ValidationBuilder) AddError(message string) *ValidationBuilder {
	v.errors = append(v.errors, message)
	return v
}

// AddErrorf adds a formatted error message
func (v *ValidationBuilder) AddErrorf(format string, args ...interface{}) *ValidationBuilder {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
	return v
}

// HasErrors returns true if there are validation errors
func (v *ValidationBuilder) HasErrors() bool {
	return len(v.errors) > 0
}

// Build returns the validation error or nil if no errors
func (v *ValidationBuilder) Build() error {
	if len(v.errors) == 0 {
		return nil
	}
	return &ValidationError{Errors: v.errors}
}
