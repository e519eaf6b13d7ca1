package engine

import (
	"github.com/lgbarn/knightgrid/internal/errors"
	"github.com/lgbarn/knightgrid/internal/grid"
)

// ExclusionZone returns the union of the neighbourhoods of every blocker.
// Blocker cells themselves appear only if they neighbour another blocker.
func (b Board) ExclusionZone(blockers BlockerSet) BlockerSet {
	zone := NewBlockerSet()
	for c := range blockers.cells {
		if !b.Size.ContainsIndex(c) {
			continue
		}
		for _, nb := range grid.Neighbors(c, b.Size) {
			zone.cells[nb] = struct{}{}
		}
	}
	return zone
}

// Excluded reports whether target is a blocker or lies in the exclusion zone.
// Off-board targets are never excluded, matching ExclusionZone.
func (b Board) Excluded(target grid.Index, blockers BlockerSet) bool {
	if !b.Size.ContainsIndex(target) {
		return false
	}
	if blockers.Has(target) {
		return true
	}
	for c := range blockers.cells {
		if b.Size.ContainsIndex(c) && grid.Adjacent(c, target, b.Size) {
			return true
		}
	}
	return false
}

// CheckPiece explains why the knight cannot be placed on target, or
// returns nil if it can.
func (b Board) CheckPiece(target grid.Index, blockers BlockerSet) error {
	const op = "place knight"
	if !b.Size.ContainsIndex(target) {
		return errors.Wrapf(errors.ErrOutOfBounds, "%s: index %d", op, int(target))
	}
	if blockers.Has(target) {
		return b.cellError(op, target, errors.ErrBlocked)
	}
	if b.Excluded(target, blockers) {
		return b.cellError(op, target, errors.ErrExcluded)
	}
	return nil
}

// CanPlacePiece reports whether the knight may be placed on target.
func (b Board) CanPlacePiece(target grid.Index, blockers BlockerSet) bool {
	return b.CheckPiece(target, blockers) == nil
}

// CheckBlocker explains why a new blocker cannot be added at target, or
// returns nil if it can. piece is grid.NoIndex when the knight is unplaced.
func (b Board) CheckBlocker(target, piece grid.Index, blockers BlockerSet) error {
	const op = "place blocker"
	if !b.Size.ContainsIndex(target) {
		return errors.Wrapf(errors.ErrOutOfBounds, "%s: index %d", op, int(target))
	}
	if blockers.Has(target) {
		return b.cellError(op, target, errors.ErrBlocked)
	}
	if b.Size.ContainsIndex(piece) {
		if target == piece {
			return b.cellError(op, target, errors.ErrOccupied)
		}
		if grid.Adjacent(target, piece, b.Size) {
			return b.cellError(op, target, errors.ErrAdjacentToPiece)
		}
	}
	if b.Excluded(target, blockers) {
		return b.cellError(op, target, errors.ErrExcluded)
	}
	return nil
}

// CanPlaceBlocker reports whether a new blocker may be added at target.
func (b Board) CanPlaceBlocker(target, piece grid.Index, blockers BlockerSet) bool {
	return b.CheckBlocker(target, piece, blockers) == nil
}

// ToggleBlocker removes target if it is a blocker; otherwise it adds target
// when CanPlaceBlocker allows. The input set is never modified.
func (b Board) ToggleBlocker(target, piece grid.Index, blockers BlockerSet) BlockerSet {
	if blockers.Has(target) {
		return blockers.Without(target)
	}
	if !b.CanPlaceBlocker(target, piece, blockers) {
		return blockers
	}
	return blockers.With(target)
}

func (b Board) cellError(op string, target grid.Index, err error) error {
	p := grid.IndexToPosition(target, b.Size)
	return &errors.CellError{
		Err:    err,
		Op:     op,
		Row:    p.Row,
		Column: p.Column,
		Size:   int(b.Size),
	}
}
