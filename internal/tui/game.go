package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kressly/sudoku/internal/board"
	"github.com/kressly/sudoku/internal/generator"
)

type gameState int

const (
	statePlaying gameState = iota
	stateWon
)

// tickMsg drives the elapsed-time display.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Game is the interactive play screen: a cursor-addressed grid backed by a
// Board, so every entry passes the same constraint checks the solver uses.
// Locally consistent but wrong entries are allowed; the player discovers
// them as dead ends and clears them.
type Game struct {
	board      *board.Board
	given      [board.CellCount]bool
	cursor     int
	keys       KeyMap
	difficulty generator.Difficulty
	seed       int64
	state      gameState
	conflict   string
	startTime  time.Time
	wonIn      time.Duration
	width      int
	height     int
}

// NewGame generates a puzzle at the given difficulty and wraps it in a
// playable model. A zero seed gives a fresh puzzle every time; a fixed
// seed reproduces the same one.
func NewGame(width, height int, d generator.Difficulty, seed int64) (Game, error) {
	puzzle, _, err := newPuzzle(d, seed)
	if err != nil {
		return Game{}, err
	}

	g := Game{
		board:      puzzle,
		keys:       DefaultKeyMap(),
		difficulty: d,
		seed:       seed,
		startTime:  time.Now(),
		width:      width,
		height:     height,
	}
	for pos := range board.CellCount {
		g.given[pos] = puzzle.Get(pos) != board.EmptyCell
	}
	return g, nil
}

func newPuzzle(d generator.Difficulty, seed int64) (*board.Board, *board.Board, error) {
	if seed != 0 {
		g := generator.New(&generator.Options{Difficulty: d, Seed: seed})
		return g.Generate()
	}
	return generator.GenerateWithDifficulty(d)
}

func (g Game) Init() tea.Cmd {
	return tick()
}

func (g Game) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.width, g.height = msg.Width, msg.Height

	case tickMsg:
		if g.state == statePlaying {
			return g, tick()
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, g.keys.Quit):
			return g, tea.Quit

		case key.Matches(msg, g.keys.Menu):
			return NewMenu(g.width, g.height, g.seed), nil

		case g.state == stateWon:
			// Only quit or menu leave the win screen.

		case key.Matches(msg, g.keys.Up):
			g.moveCursor(-1, 0)
		case key.Matches(msg, g.keys.Down):
			g.moveCursor(1, 0)
		case key.Matches(msg, g.keys.Left):
			g.moveCursor(0, -1)
		case key.Matches(msg, g.keys.Right):
			g.moveCursor(0, 1)

		case key.Matches(msg, g.keys.Number):
			g.enter(int(msg.String()[0] - '0'))
		case key.Matches(msg, g.keys.Clear):
			g.clearCell()
		}
	}

	return g, nil
}

// moveCursor shifts the cursor with wraparound on both axes.
func (g *Game) moveCursor(drow, dcol int) {
	row := (g.cursor/9 + drow + 9) % 9
	col := (g.cursor%9 + dcol + 9) % 9
	g.cursor = board.MakePos(row, col)
	g.conflict = ""
}

// enter places a digit at the cursor. Conflicting entries are rejected by
// the board; the violated constraint is surfaced to the player.
func (g *Game) enter(val int) {
	g.conflict = ""
	if g.given[g.cursor] {
		g.conflict = "cell is a given"
		return
	}

	if err := g.board.Set(g.cursor, val); err != nil {
		g.conflict = err.Error()
		return
	}

	if g.board.IsSolved() {
		g.state = stateWon
		g.wonIn = time.Since(g.startTime).Round(time.Second)
	}
}

func (g *Game) clearCell() {
	g.conflict = ""
	if g.given[g.cursor] {
		g.conflict = "cell is a given"
		return
	}
	g.board.Clear(g.cursor)
}

func (g Game) View() string {
	if g.state == stateWon {
		return g.viewWin()
	}

	main := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("sudoku - "+g.difficulty.String()),
		"",
		g.viewBoard(),
		g.viewInfo(),
	)
	return lipgloss.Place(g.width, g.height, lipgloss.Center, lipgloss.Center, main)
}

func (g Game) viewBoard() string {
	var rows []string
	sep := gridLineStyle.Render("│")

	for row := range 9 {
		var sb strings.Builder
		for col := range 9 {
			sb.WriteString(g.viewCell(board.MakePos(row, col)))
			if col == 2 || col == 5 {
				sb.WriteString(sep)
			}
		}
		rows = append(rows, sb.String())
		if row == 2 || row == 5 {
			rows = append(rows, rowSeparator())
		}
	}
	return strings.Join(rows, "\n")
}

func (g Game) viewCell(pos int) string {
	val := g.board.Get(pos)
	text := " "
	if val != board.EmptyCell {
		text = fmt.Sprintf("%d", val)
	}

	switch {
	case pos == g.cursor:
		return cursorStyle.Render(text)
	case g.given[pos]:
		return givenStyle.Render(text)
	case val == board.EmptyCell:
		return emptyStyle.Render(text)
	default:
		return entryStyle.Render(text)
	}
}

func (g Game) viewInfo() string {
	elapsed := time.Since(g.startTime).Round(time.Second)

	var sb strings.Builder
	fmt.Fprintf(&sb, "cells left: %d\n", g.board.EmptyCount())
	fmt.Fprintf(&sb, "time: %02d:%02d\n", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
	sb.WriteString("\n1-9 fill • x clear • esc menu • q quit")

	info := infoStyle.Render(sb.String())
	if g.conflict != "" {
		info = lipgloss.JoinVertical(lipgloss.Center, conflictStyle.Render(g.conflict), info)
	}
	return info
}

func (g Game) viewWin() string {
	msg := fmt.Sprintf("%s\n\n%s\n\n%s",
		titleStyle.Render("Solved!"),
		winTimeStyle.Render(fmt.Sprintf("time: %02d:%02d", int(g.wonIn.Minutes()), int(g.wonIn.Seconds())%60)),
		infoStyle.Render("esc for a new game • q to quit"),
	)
	return lipgloss.Place(g.width, g.height, lipgloss.Center, lipgloss.Center, winBoxStyle.Render(msg))
}
