package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kressly/sudoku/internal/generator"
	"github.com/kressly/sudoku/internal/tui"
)

var playDifficulty string

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play Sudoku in the terminal",
		Long: `Play an interactive Sudoku game. Without -d a difficulty menu is
shown; with an explicit -d the game starts immediately.`,
		RunE: runPlay,
	}

	playCmd.Flags().StringVarP(&playDifficulty, "difficulty", "d", "", "Skip the menu and start at this difficulty")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts := tui.Options{Seed: seed}
	if playDifficulty != "" {
		opts.Difficulty = generator.ParseDifficulty(playDifficulty)
		opts.SkipMenu = true
	}
	return tui.Run(opts)
}
