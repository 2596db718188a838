package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kressly/sudoku/internal/generator"
)

// Menu is the difficulty-selection screen.
type Menu struct {
	difficulties []generator.Difficulty
	cursor       int
	seed         int64
	keys         KeyMap
	err          error
	width        int
	height       int
}

func NewMenu(width, height int, seed int64) Menu {
	return Menu{
		difficulties: generator.Difficulties(),
		seed:         seed,
		keys:         DefaultKeyMap(),
		width:        width,
		height:       height,
	}
}

func (m Menu) Init() tea.Cmd {
	return nil
}

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor - 1 + m.optionCount()) % m.optionCount()

		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % m.optionCount()

		case key.Matches(msg, m.keys.Select):
			if m.cursor == len(m.difficulties) {
				return m, tea.Quit
			}
			game, err := NewGame(m.width, m.height, m.difficulties[m.cursor], m.seed)
			if err != nil {
				m.err = err
				return m, nil
			}
			return game, game.Init()
		}
	}

	return m, nil
}

// optionCount is the difficulty list plus the quit row.
func (m Menu) optionCount() int {
	return len(m.difficulties) + 1
}

func (m Menu) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("sudoku"))
	sb.WriteString("\n\nselect difficulty:\n\n")

	labels := make([]string, 0, m.optionCount())
	for _, d := range m.difficulties {
		labels = append(labels, d.String())
	}
	labels = append(labels, "quit")

	for i, label := range labels {
		cursor := "  "
		if m.cursor == i {
			cursor = selectedStyle.Render("> ")
			label = selectedStyle.Render(label)
		}
		fmt.Fprintf(&sb, "%s%s\n", cursor, label)
	}

	if m.err != nil {
		sb.WriteString("\n" + conflictStyle.Render(m.err.Error()))
	}
	sb.WriteString(infoStyle.Render("\n↑/↓ move • enter select • q quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}
