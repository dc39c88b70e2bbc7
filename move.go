package camfour

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Move is a single placement on the board.
type Move struct {
	Row      int      `json:"row"`
	Col      int      `json:"col"`
	Occupant Occupant `json:"occupant"`
}

func (m *Move) String() string {
	return fmt.Sprintf("%s %d,%d", m.Occupant, m.Row, m.Col)
}

// Text returns the coordinate in the same "row,col" form ParseCoordinate
// reads.
func (m *Move) Text() string {
	return fmt.Sprintf("%d,%d", m.Row, m.Col)
}

// (row)(separator)(col), optionally wrapped in parens
var coordRegex = regexp.MustCompile(`^\(?\s*(-?\d+)\s*[,\s]\s*(-?\d+)\s*\)?$`)

// ParseCoordinate reads a "row col", "row,col" or "(row, col)" string. The
// numbers are not range checked; that is the board's job.
func ParseCoordinate(text string) (int, int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, 0, fmt.Errorf("coordinate cannot be empty")
	}

	parts := coordRegex.FindStringSubmatch(text)
	if len(parts) != 3 {
		return 0, 0, fmt.Errorf("invalid coordinate format: %q", text)
	}

	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}

	col, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, err
	}

	return row, col, nil
}
