// Package cmd wires the CLI: puzzle generation, solving, and interactive
// play.
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	seed       int64
	verbose    bool
	profileCPU bool

	profiler interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Generate, solve, and play Sudoku puzzles",
	Long: `A Sudoku toolkit built on backtracking search.

Every generated puzzle has exactly one solution. Solving and generation
are reproducible with --seed.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		if profileCPU {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed for reproducible runs (0 = time-based)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&profileCPU, "profile", false, "Write a CPU profile to the current directory")
}

// Execute runs the root command and exits nonzero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
