package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrMalformedGrid reports puzzle input whose shape is wrong: the text does
// not reduce to 9 rows of 9 recognizable cells. Shape problems are caught
// here, before any value reaches the board.
var ErrMalformedGrid = errors.New("malformed grid")

// ParseGrid builds a Board from human-oriented multi-line puzzle text.
//
// Blank lines and horizontal border lines (as printed by Format) are
// skipped; '|' separators and interior whitespace are stripped. Within a
// row, '.', '0', and '-' all mark an empty cell. After cleanup the input
// must form exactly 9 rows of 9 cells.
func ParseGrid(s string) (*Board, error) {
	rows := lo.FilterMap(strings.Split(s, "\n"), func(line string, _ int) (string, bool) {
		cleaned := cleanRow(line)
		return cleaned, cleaned != ""
	})

	if len(rows) != 9 {
		return nil, fmt.Errorf("%w: expected 9 rows, got %d", ErrMalformedGrid, len(rows))
	}

	b := New()
	for row, cells := range rows {
		if len(cells) != 9 {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected 9", ErrMalformedGrid, row, len(cells))
		}
		for col := range 9 {
			ch := cells[col]
			switch {
			case ch == '.':
				// Empty cell
			case ch >= '1' && ch <= '9':
				if err := b.Set(MakePos(row, col), int(ch-'0')); err != nil {
					return nil, fmt.Errorf("invalid cell at row %d, column %d: %w", row, col, err)
				}
			default:
				return nil, fmt.Errorf("%w: unexpected character %q in row %d", ErrMalformedGrid, ch, row)
			}
		}
	}
	return b, nil
}

// cleanRow reduces one input line to its cell symbols, normalizing every
// empty-cell marker to '.'. Border lines and separator-only lines reduce to
// the empty string; unrecognized symbols are kept so that ParseGrid can
// reject the row with a position instead of silently dropping input.
func cleanRow(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "+") {
		return ""
	}

	var sb strings.Builder
	for _, ch := range line {
		switch {
		case ch >= '1' && ch <= '9':
			sb.WriteRune(ch)
		case ch == '.' || ch == '0' || ch == '-':
			sb.WriteByte('.')
		case ch == '|' || ch == ' ' || ch == '\t' || ch == '\r':
			// Separator, ignore
		default:
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}
