package camfour

import (
	"fmt"
	"strings"
)

const (
	// Rows is the number of rows on the board. Row 0 is the bottom.
	Rows = 6

	// Cols is the number of columns on the board.
	Cols = 7

	// Capacity is the number of cells on the board.
	Capacity = Rows * Cols
)

// Board is the datastructure for the physical board. Cells are indexed
// [row][col] with row 0 at the bottom.
type Board struct {
	Cells [Rows][Cols]Cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	b := &Board{}
	b.Init()
	return b
}

// Init clears every cell.
func (b *Board) Init() {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			b.Cells[r][c] = Cell{Row: r, Col: c}
		}
	}
}

// InBounds reports whether (row, col) is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Owner returns who holds (row, col). Off-board positions are owned by None.
func (b *Board) Owner(row, col int) Occupant {
	if !InBounds(row, col) {
		return None
	}
	return b.Cells[row][col].Occupant
}

// IsOccupied reports whether someone holds (row, col). Off-board positions
// are logged and reported as unoccupied.
func (b *Board) IsOccupied(row, col int) bool {
	if !InBounds(row, col) {
		log.Errorw("invalid space", "row", row, "col", col)
		return false
	}

	return !b.Cells[row][col].Empty()
}

// IsAvailable reports whether a piece dropped at (row, col) would rest
// there: the cell is on the board, empty, and sits on the bottom row or on
// top of an occupied cell.
func (b *Board) IsAvailable(row, col int) bool {
	if !InBounds(row, col) || b.IsOccupied(row, col) {
		return false
	}

	if row == 0 || b.IsOccupied(row-1, col) {
		return true
	}

	log.Debugw("space is floating", "row", row, "col", col)
	return false
}

// Place marks (row, col) for occupant. Occupied or off-board cells are left
// alone. It returns true if the board changed.
func (b *Board) Place(row, col int, occupant Occupant) bool {
	if !InBounds(row, col) {
		log.Errorw("invalid space", "row", row, "col", col)
		return false
	}

	if occupant == None || !b.Cells[row][col].Empty() {
		return false
	}

	b.Cells[row][col].Occupant = occupant
	return true
}

// IsColumnFull checks the top cell of col. The gravity invariant means the
// rest of the column is full too.
func (b *Board) IsColumnFull(col int) bool {
	return b.IsOccupied(Rows-1, col)
}

// AvailableRow returns the lowest row a piece dropped in col would land in,
// or -1 if the column is full.
func (b *Board) AvailableRow(col int) int {
	for r := 0; r < Rows; r++ {
		if b.IsAvailable(r, col) {
			return r
		}
	}

	return -1
}

// IsFull reports whether every column is full, which is the tie state.
func (b *Board) IsFull() bool {
	for c := 0; c < Cols; c++ {
		if !b.IsColumnFull(c) {
			return false
		}
	}

	return true
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if !b.Cells[r][c].Empty() {
				n++
			}
		}
	}

	return n
}

// CheckGravity returns an error naming the first floating piece it finds.
func (b *Board) CheckGravity() error {
	for c := 0; c < Cols; c++ {
		for r := 1; r < Rows; r++ {
			if !b.Cells[r][c].Empty() && b.Cells[r-1][c].Empty() {
				return fmt.Errorf("%w: (%d,%d) has no support", ErrFloating, r, c)
			}
		}
	}

	return nil
}

// Grid returns the occupants as [row][col], row 0 at the bottom.
func (b *Board) Grid() [][]Occupant {
	grid := make([][]Occupant, Rows)
	for r := range grid {
		grid[r] = make([]Occupant, Cols)
		for c := range grid[r] {
			grid[r][c] = b.Cells[r][c].Occupant
		}
	}

	return grid
}

// String draws the board with the top row first.
func (b *Board) String() string {
	var sb strings.Builder
	for r := Rows - 1; r >= 0; r-- {
		fmt.Fprintf(&sb, "%d ", r)
		for c := 0; c < Cols; c++ {
			sb.WriteString(b.Cells[r][c].Occupant.Symbol())
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  ")
	for c := 0; c < Cols; c++ {
		fmt.Fprintf(&sb, "%d", c)
	}
	sb.WriteString("\n")

	return sb.String()
}
