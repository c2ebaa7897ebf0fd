// Package errors provides sentinel errors and error types for knight-moves.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidInput indicates a square outside the board or malformed square text.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPathReconstruction indicates the search recorded an inconsistent
	// predecessor chain. It is never expected after a successful search.
	ErrPathReconstruction = errors.New("path reconstruction failed")

	// ErrParseFailure indicates a malformed query line.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SquareError wraps errors with the square that caused them. Role names
// which endpoint of a query was rejected ("start", "end"), if known.
type SquareError struct {
	Err   error  // The underlying error
	Role  string // "start" or "end" (empty if not applicable)
	File  int    // File coordinate as given
	Rank  int    // Rank coordinate as given
	Input string // Raw text, when the square came from parsing
}

// Error returns a formatted error message including all available context.
func (e *SquareError) Error() string {
	var parts []string

	if e.Role != "" {
		parts = append(parts, e.Role+" square")
	} else {
		parts = append(parts, "square")
	}

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	} else {
		parts = append(parts, fmt.Sprintf("(%d,%d)", e.File, e.Rank))
	}

	context := strings.Join(parts, " ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SquareError wrapper.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// ParseError represents a query parsing error with file location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
