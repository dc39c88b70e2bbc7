package ai

import (
	"github.com/icco/camfour"
)

// Outcomes of the first draw. Below sameColumn keeps the base column, then
// each bucket pushes the column further away.
const (
	draws      = 20
	sameColumn = 7
	pushOne    = 17
	pushTwo    = 19
)

// Weighted picks a column near the human's last move. It does no search:
// the reply is a biased random draw.
//
// Per draw: 7/20 the same column, 10/20 one column away, 2/20 two away and
// 1/20 three away, with left and right equally likely and wrapping around
// the board edge.
type Weighted struct {
	src Source
}

// NewWeighted returns a Weighted engine drawing from src. A nil src uses a
// clock-seeded source.
func NewWeighted(src Source) *Weighted {
	if src == nil {
		src = NewSource()
	}
	return &Weighted{src: src}
}

// Name implements Engine.
func (w *Weighted) Name() string {
	return "weighted"
}

// ChooseColumn draws a column for baseCol. It does not look at the board.
func (w *Weighted) ChooseColumn(baseCol int) int {
	baseCol = wrap(baseCol)

	v := w.src.IntN(draws)
	var push int
	switch {
	case v < sameColumn:
		return baseCol
	case v < pushOne:
		push = 1
	case v < pushTwo:
		push = 2
	default:
		push = 3
	}

	if w.src.IntN(2) == 0 {
		return wrap(baseCol - push)
	}
	return wrap(baseCol + push)
}

// DecideMove implements camfour.Responder. A full column moves the choice one
// column right, wrapping, until an open one is found. The opponent's piece
// is placed on b.
func (w *Weighted) DecideMove(b *camfour.Board, lastHumanCol int) (camfour.Move, error) {
	if b.IsFull() {
		return camfour.Move{}, camfour.ErrBoardFull
	}

	col := w.ChooseColumn(lastHumanCol)
	chosen := col
	for b.IsColumnFull(col) {
		col = (col + 1) % camfour.Cols
	}

	row := b.AvailableRow(col)
	if row < 0 {
		return camfour.Move{}, camfour.ErrBoardFull
	}

	b.Place(row, col, camfour.Opponent)
	log.Debugw("robot marks space", "base", lastHumanCol, "drawn", chosen, "row", row, "col", col)

	return camfour.Move{Row: row, Col: col, Occupant: camfour.Opponent}, nil
}

// wrap maps any column number onto the board, wrapping past either edge.
func wrap(col int) int {
	return ((col % camfour.Cols) + camfour.Cols) % camfour.Cols
}
