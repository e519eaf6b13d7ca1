// Package engine computes knight movement and blocker placement legality
// on a grid whose blockers exclude their surrounding cells.
//
// Nothing is cached: every query derives the exclusion zone from the
// blocker set it is given, so removing a blocker frees its zone on the
// very next call.
package engine

import (
	"slices"

	"github.com/lgbarn/knightgrid/internal/grid"
)

// knightOffsets are the (row, column) displacements of a knight move.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Board evaluates legality for one board size. It holds no game state.
type Board struct {
	Size grid.Size
}

// NewBoard returns a Board of size n, rejecting non-positive sizes.
func NewBoard(n grid.Size) (Board, error) {
	if err := n.Validate(); err != nil {
		return Board{}, err
	}
	return Board{Size: n}, nil
}

// KnightTargets returns every on-board cell one knight move from piece,
// ignoring blockers. It returns nil if piece is not on the board.
func (b Board) KnightTargets(piece grid.Index) []grid.Index {
	if !b.Size.ContainsIndex(piece) {
		return nil
	}
	from := grid.IndexToPosition(piece, b.Size)
	targets := make([]grid.Index, 0, len(knightOffsets))
	for _, off := range knightOffsets {
		to := from.Add(off[0], off[1])
		if !b.Size.Contains(to) {
			continue
		}
		targets = append(targets, grid.PositionToIndex(to, b.Size))
	}
	return targets
}

// LegalMoves returns the cells the knight at piece may move to, in
// ascending order. A destination is legal when it is on the board, is not
// a blocker and lies outside every blocker's exclusion zone. An unplaced
// piece has no moves.
func (b Board) LegalMoves(piece grid.Index, blockers BlockerSet) []grid.Index {
	targets := b.KnightTargets(piece)
	if len(targets) == 0 {
		return nil
	}

	zone := b.ExclusionZone(blockers)
	moves := targets[:0]
	for _, to := range targets {
		if blockers.Has(to) || zone.Has(to) {
			continue
		}
		moves = append(moves, to)
	}
	slices.Sort(moves)
	return moves
}

// IsLegalMove reports whether the knight at piece may move to target.
func (b Board) IsLegalMove(piece, target grid.Index, blockers BlockerSet) bool {
	return slices.Contains(b.LegalMoves(piece, blockers), target)
}
