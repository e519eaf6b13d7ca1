package testutil

import (
	"testing"

	"github.com/lgbarn/knightgrid/internal/grid"
)

// Cell returns the index of (row, col) on an n x n board.
// It calls t.Fatal if the position is off the board.
func Cell(t *testing.T, n grid.Size, row, col int) grid.Index {
	t.Helper()
	idx, err := n.Checked(grid.Position{Row: row, Column: col})
	if err != nil {
		t.Fatalf("Cell(%d, %d): %v", row, col, err)
	}
	return idx
}

// Cells parses "row,col" strings into indices on an n x n board.
// It calls t.Fatal on malformed or off-board input.
func Cells(t *testing.T, n grid.Size, positions ...string) []grid.Index {
	t.Helper()
	result := make([]grid.Index, 0, len(positions))
	for _, s := range positions {
		p, err := grid.ParsePosition(s)
		if err != nil {
			t.Fatalf("Cells(%q): %v", s, err)
		}
		result = append(result, Cell(t, n, p.Row, p.Column))
	}
	return result
}
