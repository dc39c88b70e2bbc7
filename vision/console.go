package vision

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/icco/camfour"
)

// Console reads coordinates typed as "row col" lines. It stands in for the
// camera when there is none.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole reads from in and writes prompts to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// NextMove implements camfour.MoveSource. Lines that do not parse are
// reported and read again. Running out of input is an error.
func (c *Console) NextMove(ctx context.Context, turn int) (int, int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}

		fmt.Fprint(c.out, "Put your move on the board (row col): ")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return 0, 0, err
			}
			return 0, 0, io.ErrUnexpectedEOF
		}

		row, col, err := camfour.ParseCoordinate(c.in.Text())
		if err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
			continue
		}

		return row, col, nil
	}
}

// ErrScriptDone is returned once a Script has no coordinates left.
var ErrScriptDone = errors.New("script has no moves left")

// Script replays a fixed list of coordinates.
type Script struct {
	Moves [][2]int
	next  int
}

// NextMove implements camfour.MoveSource.
func (s *Script) NextMove(ctx context.Context, turn int) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	if s.next >= len(s.Moves) {
		return 0, 0, ErrScriptDone
	}

	mv := s.Moves[s.next]
	s.next++
	return mv[0], mv[1], nil
}

// Remaining is the number of coordinates not yet played.
func (s *Script) Remaining() int {
	return len(s.Moves) - s.next
}
