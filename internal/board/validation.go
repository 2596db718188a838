package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidValue    = errors.New("value must be between 1-9")
	ErrIllegalMove     = errors.New("move violates Sudoku constraints")
)

// IsValid reports whether a board satisfies Sudoku constraints.
// Empty cells are ignored for validation.
// The check is recomputed from the cells rather than read from the
// incremental masks, so it holds even after SetForce misuse.
func (b *Board) IsValid() bool {
	var rowCheck, colCheck, boxCheck [9]uint

	for pos := range CellCount {
		val := b.Get(pos)
		if val == EmptyCell {
			continue
		}

		row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
		mask := uint(1 << (val - 1))

		// Check for duplicates in row, column, or box
		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			boxCheck[box]&mask != 0 {
			return false
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		boxCheck[box] |= mask
	}

	return true
}

// IsSolved reports whether the board is completely and correctly filled:
// every row, column, and box contains each value 1-9 exactly once.
// It is a pure predicate and never mutates the board.
func (b *Board) IsSolved() bool {
	var rowCheck, colCheck, boxCheck [9]uint

	for pos := range CellCount {
		val := b.cells[pos]
		if val == EmptyCell {
			return false
		}

		row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
		mask := uint(1 << (val - 1))

		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			boxCheck[box]&mask != 0 {
			return false
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		boxCheck[box] |= mask
	}

	// 81 distinct placements with no duplicates means every unit holds
	// the full set, but verify the masks to keep the predicate honest.
	for unit := range 9 {
		if rowCheck[unit] != allNine ||
			colCheck[unit] != allNine ||
			boxCheck[unit] != allNine {
			return false
		}
	}

	return true
}

// isValidPosition reports whether a given position is in bounds of a Sudoku board.
func isValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}

// validatePosition checks if a position is within board bounds.
func (b *Board) validatePosition(pos int) error {
	if !isValidPosition(pos) {
		return fmt.Errorf("%w: position %d must be in range [0, %d)", ErrInvalidPosition, pos, CellCount)
	}
	return nil
}

// isValidValue reports whether a given number is valid on a Sudoku board.
func isValidValue(num int) bool {
	return (num >= 1 && num <= 9) || num == EmptyCell
}

// validateValue checks if a value is valid for Sudoku (1-9).
func (b *Board) validateValue(val int) error {
	if !isValidValue(val) {
		return fmt.Errorf("%w: got %d", ErrInvalidValue, val)
	}
	return nil
}
