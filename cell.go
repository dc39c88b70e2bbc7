package camfour

import "fmt"

// Cell is one of the 42 positions on the board.
type Cell struct {
	Row      int
	Col      int
	Occupant Occupant
}

func (c *Cell) String() string {
	return fmt.Sprintf("(%d,%d)=%s", c.Row, c.Col, c.Occupant)
}

// Empty reports whether nobody holds the cell.
func (c *Cell) Empty() bool {
	return c.Occupant == None
}
