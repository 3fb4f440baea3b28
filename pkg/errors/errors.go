// Package errors defines error types and utilities for providermock
package errors

import (
	"errors"
	"fmt"
)

// Failure categories reported by the provider double
var (
	// ErrUnexpectedCall is returned when no expectation of the called kind is registered at all
	ErrUnexpectedCall = errors.New("unexpected call")

	// ErrNoMatchingExpectation is returned when expectations exist but none match the call
	ErrNoMatchingExpectation = errors.New("no matching expectation")

	// ErrUnknownType is returned when a type lookup names a URI missing from a non-empty registry
	ErrUnknownType = errors.New("unknown type")

	// ErrInvalidArgument is returned when an expectation is registered without a required argument
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnmetExpectation is returned when a non-repeatable expectation was never exercised
	ErrUnmetExpectation = errors.New("unmet expectation")

	// ErrRowShape is returned when a positional row does not fit the resolved columns
	ErrRowShape = errors.New("row does not match columns")
)

// MockError represents a detailed error with context
type MockError struct {
	Op     string // Operation that failed
	URI    string // Resource the operation targeted, if any
	Err    error  // Underlying error
	Detail string // Human readable diagnostic
}

// Error implements the error interface
func (e *MockError) Error() string {
	msg := fmt.Sprintf("providermock: %s: %v", e.Op, e.Err)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the underlying error
func (e *MockError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error
func (e *MockError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewError creates a new MockError
func NewError(op, uri string, err error) *MockError {
	return &MockError{
		Op:  op,
		URI: uri,
		Err: err,
	}
}

// NewErrorWithDetail creates a new MockError carrying a diagnostic message
func NewErrorWithDetail(op, uri string, err error, format string, args ...any) *MockError {
	return &MockError{
		Op:     op,
		URI:    uri,
		Err:    err,
		Detail: fmt.Sprintf(format, args...),
	}
}

// IsUnexpectedCall checks if an error indicates a call with no registered expectations
func IsUnexpectedCall(err error) bool {
	return errors.Is(err, ErrUnexpectedCall)
}

// IsNoMatch checks if an error indicates a call that matched no expectation
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrNoMatchingExpectation)
}

// IsUnknownType checks if an error indicates an unknown type lookup
func IsUnknownType(err error) bool {
	return errors.Is(err, ErrUnknownType)
}

// IsInvalidArgument checks if an error indicates an invalid registration
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsUnmet checks if an error indicates expectations that were never exercised
func IsUnmet(err error) bool {
	return errors.Is(err, ErrUnmetExpectation)
}
