package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kressly/sudoku/internal/board"
	"github.com/kressly/sudoku/internal/solver"
)

var checkUnique bool

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a Sudoku puzzle",
		Long: `Solve a puzzle given as an 81-character string ('.' or '0' for empty
cells), a path to a file containing a grid, or '-' to read from stdin.
Multi-line grids with borders and separators are accepted.

Examples:
  sudoku solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79
  sudoku solve puzzle.txt
  cat puzzle.txt | sudoku solve -`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().BoolVarP(&checkUnique, "unique", "u", false, "Also report whether the solution is unique")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	input, err := readPuzzleInput(args)
	if err != nil {
		return err
	}

	b, err := parsePuzzle(input)
	if err != nil {
		return err
	}

	log.Debug("solving", "clues", b.ClueCount(), "seed", seed)

	s := solver.New(b, &solver.Options{Seed: seed})
	solved, err := s.Solve()
	switch {
	case errors.Is(err, solver.ErrInvalidPuzzle):
		return fmt.Errorf("%w: a value repeats within a row, column, or box", err)
	case errors.Is(err, solver.ErrNoSolution):
		return err
	case err != nil:
		return err
	}

	fmt.Println(solved.Format())

	stats := s.Stats()
	log.Info("solved", "nodes", stats.Nodes, "elapsed", stats.Duration)

	if checkUnique {
		if n := solver.CountSolutions(b, 2); n == 1 {
			fmt.Println("Solution is unique.")
		} else {
			fmt.Println("Solution is not unique: at least 2 solutions exist.")
		}
	}

	return nil
}

// readPuzzleInput resolves the puzzle source: an explicit grid argument, a
// file path, or stdin when the argument is absent or "-".
func readPuzzleInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	arg := args[0]
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", arg, err)
		}
		return string(data), nil
	}
	return arg, nil
}

// parsePuzzle accepts the compact 81-character form or the multi-line grid
// form.
func parsePuzzle(input string) (*board.Board, error) {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) == board.CellCount && !strings.Contains(trimmed, "\n") {
		return board.NewFromString(trimmed)
	}
	return board.ParseGrid(input)
}
