// Package session holds the mutable interaction state around the pure
// engine: where the knight stands and which cells are blocked.
//
// A Session is owned by one actor; callers serialize access to it.
// The engine is re-queried after every change, nothing is cached.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/knightgrid/internal/config"
	"github.com/lgbarn/knightgrid/internal/engine"
	"github.com/lgbarn/knightgrid/internal/errors"
	"github.com/lgbarn/knightgrid/internal/grid"
)

// State is the externally owned game state: the knight, if placed, and the blockers.
type State struct {
	Piece    grid.Index
	Blockers engine.BlockerSet
}

// NewState returns a state with no knight and no blockers.
func NewState() State {
	return State{Piece: grid.NoIndex}
}

// HasPiece reports whether the knight has been placed.
func (s State) HasPiece() bool {
	return s.Piece != grid.NoIndex
}

// Session is one board being edited by one actor.
type Session struct {
	ID        string
	Board     engine.Board
	State     State
	Moves     int // knight moves made after the first placement
	CreatedAt time.Time
	UpdatedAt time.Time

	cfg *config.Config
}

// New creates a session for cfg.BoardSize with a fresh ID.
func New(cfg *config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	board, err := engine.NewBoard(cfg.BoardSize)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Board:     board,
		State:     NewState(),
		CreatedAt: now,
		UpdatedAt: now,
		cfg:       cfg,
	}, nil
}

// LegalMoves returns the knight's current destinations, ascending.
func (s *Session) LegalMoves() []grid.Index {
	return s.Board.LegalMoves(s.State.Piece, s.State.Blockers)
}

// SelectCell handles a primary click on p. An unplaced knight is placed on
// any free cell. A placed knight moves only to one of its legal moves.
// Blocked and excluded cells are always refused.
func (s *Session) SelectCell(p grid.Position) error {
	target, err := s.Board.Size.Checked(p)
	if err != nil {
		return err
	}
	if err := s.Board.CheckPiece(target, s.State.Blockers); err != nil {
		return err
	}

	if !s.State.HasPiece() {
		s.State.Piece = target
		s.touch()
		s.cfg.Logf(2, "session %s: knight placed at %s", s.ID, p)
		return nil
	}

	if !s.Board.IsLegalMove(s.State.Piece, target, s.State.Blockers) {
		return &errors.CellError{
			Err:    errors.ErrIllegalMove,
			Op:     "move knight",
			Row:    p.Row,
			Column: p.Column,
			Size:   int(s.Board.Size),
		}
	}

	from := grid.IndexToPosition(s.State.Piece, s.Board.Size)
	s.State.Piece = target
	s.Moves++
	s.touch()
	s.cfg.Logf(2, "session %s: knight %s -> %s", s.ID, from, p)
	return nil
}

// ToggleBlocker handles a secondary click on p. An existing blocker is
// removed; otherwise a blocker is added if the engine allows it. added
// reports which of the two happened.
func (s *Session) ToggleBlocker(p grid.Position) (added bool, err error) {
	target, err := s.Board.Size.Checked(p)
	if err != nil {
		return false, err
	}

	if s.State.Blockers.Has(target) {
		s.State.Blockers = s.Board.ToggleBlocker(target, s.State.Piece, s.State.Blockers)
		s.touch()
		s.cfg.Logf(2, "session %s: blocker removed at %s", s.ID, p)
		return false, nil
	}

	if err := s.Board.CheckBlocker(target, s.State.Piece, s.State.Blockers); err != nil {
		return false, err
	}
	s.State.Blockers = s.Board.ToggleBlocker(target, s.State.Piece, s.State.Blockers)
	s.touch()
	s.cfg.Logf(2, "session %s: blocker added at %s", s.ID, p)
	return true, nil
}

// Reset clears the knight and every blocker.
func (s *Session) Reset() {
	s.State = NewState()
	s.Moves = 0
	s.touch()
	s.cfg.Logf(2, "session %s: reset", s.ID)
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
