package session

import (
	"time"

	"github.com/lgbarn/knightgrid/internal/grid"
)

// Shade is the background a renderer should give a cell.
type Shade int

const (
	ShadeLight    Shade = iota // even-parity square
	ShadeDark                  // odd-parity square
	ShadeLegal                 // knight may move here
	ShadeExcluded              // inside a blocker's exclusion zone
)

// String returns a lower-case name for the shade.
func (s Shade) String() string {
	names := []string{"light", "dark", "legal", "excluded"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// Cell is the display classification of one board cell.
type Cell struct {
	Index     grid.Index
	Position  grid.Position
	Piece     bool
	Blocker   bool
	LegalMove bool
	Excluded  bool
}

// Dark reports the checkerboard parity of the cell.
func (c Cell) Dark() bool {
	return (c.Position.Row+c.Position.Column)%2 == 1
}

// Shade picks the background: exclusion wins over a legal move, which wins
// over the checkerboard.
func (c Cell) Shade() Shade {
	switch {
	case c.Excluded:
		return ShadeExcluded
	case c.LegalMove:
		return ShadeLegal
	case c.Dark():
		return ShadeDark
	}
	return ShadeLight
}

// View is a read-only snapshot of a session for rendering.
type View struct {
	SessionID     string
	Size          grid.Size
	Piece         grid.Index // grid.NoIndex if unplaced
	Moves         int
	Blockers      []grid.Index
	LegalMoves    []grid.Index
	ExclusionZone []grid.Index
	Cells         []Cell // row-major, len Size*Size
	CreatedAt     time.Time
	UpdatedAt     time.Time // last accepted change
}

// At returns the cell at p. p must be on the board.
func (v View) At(p grid.Position) Cell {
	return v.Cells[grid.PositionToIndex(p, v.Size)]
}

// Snapshot classifies every cell from the current state.
func (s *Session) Snapshot() View {
	n := s.Board.Size
	blockers := s.State.Blockers
	zone := s.Board.ExclusionZone(blockers)
	moves := s.LegalMoves()

	legal := make(map[grid.Index]bool, len(moves))
	for _, m := range moves {
		legal[m] = true
	}

	cells := make([]Cell, n.Cells())
	for i := range cells {
		idx := grid.Index(i)
		cells[i] = Cell{
			Index:     idx,
			Position:  grid.IndexToPosition(idx, n),
			Piece:     s.State.HasPiece() && idx == s.State.Piece,
			Blocker:   blockers.Has(idx),
			LegalMove: legal[idx],
			Excluded:  zone.Has(idx),
		}
	}

	return View{
		SessionID:     s.ID,
		Size:          n,
		Piece:         s.State.Piece,
		Moves:         s.Moves,
		Blockers:      blockers.Indexes(),
		LegalMoves:    moves,
		ExclusionZone: zone.Indexes(),
		Cells:         cells,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
