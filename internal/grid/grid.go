// Package grid provides the square-board coordinate model: linear cell
// indices, (row, column) positions and the Moore neighbourhood of a cell.
package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/knightgrid/internal/errors"
)

// DefaultSize is the board edge length used when none is configured.
const DefaultSize Size = 10

// MaxSize is the largest accepted board edge length. It keeps N*N well
// inside int and a full snapshot of the board small enough to allocate.
const MaxSize Size = 1 << 12

// NoIndex marks an absent cell, e.g. a knight that has not been placed.
const NoIndex Index = -1

// Size is the edge length N of an N x N board.
type Size int

// Index is a cell index in [0, N*N), row-major.
type Index int

// Position is a (row, column) pair, each in [0, N).
type Position struct {
	Row    int
	Column int
}

// String returns the "(row,col)" form of a position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

// Add returns p shifted by the given row and column offsets.
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Column: p.Column + dCol}
}

// Validate reports whether n is a usable board size, 1 <= n <= MaxSize.
func (n Size) Validate() error {
	if n <= 0 || n > MaxSize {
		return errors.Wrapf(errors.ErrInvalidBoardSize, "size %d not in [1, %d]", int(n), int(MaxSize))
	}
	return nil
}

// Cells returns the number of cells on the board.
func (n Size) Cells() int {
	return int(n) * int(n)
}

// Contains reports whether p lies on the board.
func (n Size) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < int(n) && p.Column >= 0 && p.Column < int(n)
}

// ContainsIndex reports whether i is a valid cell index.
func (n Size) ContainsIndex(i Index) bool {
	return i >= 0 && int(i) < n.Cells()
}

// Checked converts p to an index, rejecting off-board positions.
func (n Size) Checked(p Position) (Index, error) {
	if !n.Contains(p) {
		return NoIndex, &errors.CellError{
			Err:    errors.ErrOutOfBounds,
			Op:     "position to index",
			Row:    p.Row,
			Column: p.Column,
			Size:   int(n),
		}
	}
	return PositionToIndex(p, n), nil
}

// CheckedPosition converts i to a position, rejecting out-of-range indices.
func (n Size) CheckedPosition(i Index) (Position, error) {
	if !n.ContainsIndex(i) {
		return Position{}, errors.Wrapf(errors.ErrOutOfBounds, "index %d on board %dx%d", int(i), int(n), int(n))
	}
	return IndexToPosition(i, n), nil
}

// IndexToPosition converts a cell index to its position.
// The caller must ensure 0 <= index < n*n.
func IndexToPosition(index Index, n Size) Position {
	return Position{
		Row:    int(index) / int(n),
		Column: int(index) % int(n),
	}
}

// PositionToIndex converts a position to its cell index.
// No bounds check is made; see Size.Checked.
func PositionToIndex(p Position, n Size) Index {
	return Index(p.Row*int(n) + p.Column)
}

// ParsePosition parses the "row,col" form used by command scripts.
// Surrounding parentheses are accepted so String output round-trips.
func ParsePosition(s string) (Position, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	rowText, colText, ok := strings.Cut(trimmed, ",")
	if !ok {
		return Position{}, &errors.ParseError{Err: errors.ErrParseFailure, Got: s}
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return Position{}, &errors.ParseError{Err: errors.ErrParseFailure, Got: s}
	}
	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return Position{}, &errors.ParseError{Err: errors.ErrParseFailure, Got: s}
	}
	return Position{Row: row, Column: col}, nil
}
