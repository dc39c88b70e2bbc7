package camfour

import "errors"

var (
	// ErrOutOfRange is returned for coordinates off the 6x7 board.
	ErrOutOfRange = errors.New("space is off the board")

	// ErrUnavailable is returned for cells that are occupied or have nothing
	// under them.
	ErrUnavailable = errors.New("space is not available")

	// ErrNotHumanTurn is returned when a human move arrives while the
	// opponent still owes a reply.
	ErrNotHumanTurn = errors.New("waiting on the opponent")

	// ErrNotOpponentTurn is returned when the opponent is asked to move
	// before the human has.
	ErrNotOpponentTurn = errors.New("waiting on the human")

	// ErrMatchOver is returned for any move after the outcome is decided.
	ErrMatchOver = errors.New("match is over")

	// ErrBoardFull is returned when no column can take another piece.
	ErrBoardFull = errors.New("board is full")

	// ErrFloating marks a piece that breaks the gravity invariant.
	ErrFloating = errors.New("floating piece")
)
