package solver

import (
	"github.com/kressly/sudoku/internal/board"
)

// CountSolutions counts the completions of b, stopping the search as soon
// as the count reaches limit. A return of exactly 1 with limit >= 2
// certifies a unique solution. Candidates are tried in ascending order:
// determinism and speed matter more than variety here.
//
// The board is mutated during the search but restored before returning:
// every placement is undone, including on the early-stop path, so the
// final cell values equal the initial ones.
func CountSolutions(b *board.Board, limit int) int {
	if limit <= 0 {
		return 0
	}

	count := 0

	// dfs reports true once the limit is reached, unwinding the search
	// without trying further candidates.
	var dfs func() bool
	dfs = func() bool {
		pos, ok := b.FindEmpty()
		if !ok {
			count++
			return count >= limit
		}

		for val := 1; val <= 9; val++ {
			if !b.CanPlace(pos, val) {
				continue
			}
			b.SetForce(pos, val)
			done := dfs()
			b.Clear(pos)
			if done {
				return true
			}
		}
		return false
	}

	dfs()
	return count
}
