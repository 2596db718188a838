// Package tui implements the interactive play mode: a difficulty menu and
// a cursor-driven game screen rendered with bubbletea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/kressly/sudoku/internal/generator"
)

// Options configure a play session.
type Options struct {
	Difficulty generator.Difficulty
	SkipMenu   bool // start the game directly, bypassing the menu
	Seed       int64
}

// Run starts the interactive session and blocks until the player quits.
// The terminal background is dimmed for the session and restored on exit.
func Run(opts Options) error {
	output := termenv.DefaultOutput()
	original := termenv.BackgroundColor()
	output.SetBackgroundColor(termenv.RGBColor("#1a1a2e"))
	defer output.SetBackgroundColor(original)

	var model tea.Model
	if opts.SkipMenu {
		game, err := NewGame(0, 0, opts.Difficulty, opts.Seed)
		if err != nil {
			return err
		}
		model = game
	} else {
		model = NewMenu(0, 0, opts.Seed)
	}

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
