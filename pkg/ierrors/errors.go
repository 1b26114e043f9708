// Package ierrors provides structured error types for the ironplane
// CLI and HTTP boundary.
//
// This package gives the eight error kinds returned by pkg/geom, pkg/outline,
// and pkg/iges a hierarchical, machine-readable code namespace for the
// command-line and HTTP surfaces. The core packages return plain sentinel
// errors (e.g. geom.ErrDegenerateGeometry) or errors wrapping those
// sentinels, never *Error values; they import this package only for the
// Code type their exported Classifier functions return, so a caller can
// map their errors to codes with Register and Classify.
//
// # Usage
//
//	err := ierrors.New(ierrors.ErrCodeInvalidIntersection, "outline %s vs %s", a, b)
//	if ierrors.Is(err, ierrors.ErrCodeInvalidIntersection) {
//	    // Handle the boolean-operation failure
//	}
//
//	// Wrap an error returned by the core packages
//	err := ierrors.Wrap(ierrors.ErrCodeDegenerateGeometry, origErr, "segment %d", i)
package ierrors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes, one per error kind named by the core specification.
const (
	// ErrCodeDegenerateGeometry covers zero-length segments, coincident
	// points where distinctness is required, and radius mismatches.
	ErrCodeDegenerateGeometry Code = "DEGENERATE_GEOMETRY"

	// ErrCodeNonPlanar is returned when a planar primitive has z != 0.
	ErrCodeNonPlanar Code = "NON_PLANAR"

	// ErrCodeInvalidIntersection is returned when an outline boolean
	// operation violates the "exactly 0 or 2 unique intersections" rule.
	ErrCodeInvalidIntersection Code = "INVALID_INTERSECTION"

	// ErrCodeUnresolvedReference is returned when associate encounters a
	// pointer-integer with no matching DE sequence number.
	ErrCodeUnresolvedReference Code = "UNRESOLVED_REFERENCE"

	// ErrCodeCyclicDependency is returned when a transform chain or
	// physical-dependency graph would form a cycle.
	ErrCodeCyclicDependency Code = "CYCLIC_DEPENDENCY"

	// ErrCodeDuplicateChild names a repeated parent/child edge. No core
	// function returns it: Model.Link and BaseEntity.AddChild treat a
	// repeated edge as a no-op (keeping the stronger dependency kind).
	ErrCodeDuplicateChild Code = "DUPLICATE_CHILD"

	// ErrCodeUnsupportedEntity is returned when load encounters a type code
	// with no registered factory.
	ErrCodeUnsupportedEntity Code = "UNSUPPORTED_ENTITY"

	// ErrCodeIO wraps an underlying record stream failure.
	ErrCodeIO Code = "IO_ERROR"

	// ErrCodeInternal covers unexpected internal errors not classified above.
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
		return e.Message
	}
	return err.Error()
}

// Classify maps one of the core sentinel errors (from pkg/geom, pkg/outline,
// or pkg/iges) to its corresponding Code by walking the classifiers
// registered with Register. Unrecognized errors map to ErrCodeInternal.
func Classify(err error) Code {
	for _, c := range classifiers {
		if code, ok := c(err); ok {
			return code
		}
	}
	return ErrCodeInternal
}

// Classifier inspects err and reports the Code it maps to, if any.
type Classifier func(err error) (Code, bool)

var classifiers []Classifier

// Register adds a Classifier consulted by Classify. Core packages are not
// required to call this — callers at the CLI/HTTP boundary register a
// classifier per package (see pkg/geom.Classifier, pkg/outline.Classifier,
// pkg/iges.Classifier) during program initialization.
func Register(c Classifier) {
	classifiers = append(classifiers, c)
}
