// Package errors provides sentinel errors and error types for knightgrid.
// Legality questions are answered with booleans; these errors exist so a
// caller can explain why a placement or move was refused. They are checked
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidBoardSize indicates a non-positive board size.
	ErrInvalidBoardSize = errors.New("invalid board size")

	// ErrOutOfBounds indicates a row, column or index outside the board.
	ErrOutOfBounds = errors.New("cell out of bounds")

	// ErrBlocked indicates the target cell holds a blocker.
	ErrBlocked = errors.New("cell is blocked")

	// ErrExcluded indicates the target cell lies in a blocker's exclusion zone.
	ErrExcluded = errors.New("cell is in an exclusion zone")

	// ErrOccupied indicates the target cell holds the knight.
	ErrOccupied = errors.New("cell holds the knight")

	// ErrAdjacentToPiece indicates a blocker placement next to the knight.
	ErrAdjacentToPiece = errors.New("cell is adjacent to the knight")

	// ErrIllegalMove indicates a destination the knight cannot reach in one move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrSessionNotFound indicates an unknown session ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrParseFailure indicates a malformed command or coordinate.
	ErrParseFailure = errors.New("parse failure")
)

// CellError wraps errors with the cell and operation they concern.
type CellError struct {
	Err    error  // The underlying error
	Op     string // Operation that was refused, e.g. "place blocker"
	Row    int
	Column int
	Size   int // Board size, 0 if not applicable
}

// Error returns a formatted error message including all available context.
func (e *CellError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	parts = append(parts, fmt.Sprintf("cell (%d,%d)", e.Row, e.Column))
	if e.Size > 0 {
		parts = append(parts, fmt.Sprintf("board %dx%d", e.Size, e.Size))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the CellError wrapper.
func (e *CellError) Unwrap() error {
	return e.Err
}

// ParseError represents a command script error with location context.
type ParseError struct {
	Err  error  // The underlying error
	File string // Script name
	Line int    // Line number (1-based)
	Got  string // Offending text
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

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
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

// Is reports whether any error in err's tree matches target.
// It saves callers from importing both this package and the standard one.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
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
