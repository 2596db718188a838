package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	// Givens are part of the puzzle and render bold; player entries
	// render in a contrasting color so they stay distinguishable.
	givenStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15")).
			Bold(true)

	entryStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("39"))

	emptyStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("240"))

	cursorStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("34")).
			Foreground(lipgloss.Color("0")).
			Bold(true)

	gridLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	conflictStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Margin(1, 0, 0, 0)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("201")).
			Bold(true)

	winBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("220"))

	winTimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)
)

// cellWidth is the rendered width of one cell: a digit plus padding.
const cellWidth = 3

// rowSeparator draws the horizontal rule between 3x3 bands.
func rowSeparator() string {
	block := strings.Repeat("─", 3*cellWidth)
	return gridLineStyle.Render(block + "┼" + block + "┼" + block)
}
