package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	wallChar  = '#'
	openChar  = '.'
	startChar = 'S'
	goalChar  = 'E'
)

// Parse reads a maze in text form: one row per line, '#' for walls, '.' for
// open cells, 'S' for the start (open, facing East) and 'E' for the goal
// (open). Carriage returns and trailing blank lines are ignored.
// Errors are wrapped with the offending line and column where applicable.
func Parse(r io.Reader) (*Grid, error) {
	var (
		rows          [][]Cell
		start, goal   Point
		hasS, hasE    bool
		pendingBlanks int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			pendingBlanks++
			continue
		}
		if pendingBlanks > 0 && len(rows) > 0 {
			return nil, fmt.Errorf("%w: blank line inside grid before line %d", ErrNonRectangular, line)
		}
		pendingBlanks = 0
		y := len(rows)
		row := make([]Cell, len(text))
		for x := 0; x < len(text); x++ {
			switch text[x] {
			case wallChar:
				row[x] = Wall
			case openChar:
				row[x] = Open
			case startChar:
				if hasS {
					return nil, fmt.Errorf("%w: line %d column %d", ErrDuplicateStart, line, x+1)
				}
				start, hasS = Point{x, y}, true
			case goalChar:
				if hasE {
					return nil, fmt.Errorf("%w: line %d column %d", ErrDuplicateGoal, line, x+1)
				}
				goal, hasE = Point{x, y}, true
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadCell, text[x], line, x+1)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	if !hasS {
		return nil, ErrNoStart
	}
	if !hasE {
		return nil, ErrNoGoal
	}

	return New(rows, start, East, goal)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
