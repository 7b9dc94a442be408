package kuba

import (
	"github.com/rocketscienceinc/kuba-backend/internal/apperror"
	"github.com/rocketscienceinc/kuba-backend/internal/entity"
)

// validateMove - checks that the marble at c may be pushed in direction d by the owner of color.
// Bounds are checked by the caller.
func validateMove(board *entity.Board, color entity.Marble, c entity.Coordinate, d entity.Direction) error {
	if !d.IsValid() {
		return apperror.ErrInvalidDirection
	}

	if board.At(c) != color {
		return apperror.ErrNotYourMarble
	}

	step := d.Step()

	if behind := c.Sub(step); behind.InBounds() && board.At(behind) != entity.Empty {
		return apperror.ErrPushBlocked
	}

	if lineFull(board, c, d) {
		return apperror.ErrLineFull
	}

	// Without a gap between the marble and the edge the edge marble falls off, and it can't be ours.
	spaceEncountered := false
	edge := c
	for pos := c; pos.InBounds(); pos = pos.Add(step) {
		if board.At(pos) == entity.Empty {
			spaceEncountered = true
			break
		}
		edge = pos
	}

	if !spaceEncountered && board.At(edge) == color {
		return apperror.ErrSelfPush
	}

	return nil
}

// lineFull - reports whether the row or column the push runs along has no empty cell.
func lineFull(board *entity.Board, c entity.Coordinate, d entity.Direction) bool {
	for i := range entity.Size {
		cell := entity.Coordinate{Row: i, Col: c.Col}
		if d.Horizontal() {
			cell = entity.Coordinate{Row: c.Row, Col: i}
		}

		if board.At(cell) == entity.Empty {
			return false
		}
	}

	return true
}

// push - shifts the run of marbles starting at c one cell along step, leaving c empty.
// The shift ends at the first empty cell it fills. It returns the marble that left the board, or Empty.
func push(board *entity.Board, c entity.Coordinate, step entity.Coordinate) entity.Marble {
	carry := entity.Empty
	for pos := c; pos.InBounds(); pos = pos.Add(step) {
		next := board.At(pos)
		board.Set(pos, carry)
		carry = next

		if carry == entity.Empty {
			return entity.Empty
		}
	}

	return carry
}
