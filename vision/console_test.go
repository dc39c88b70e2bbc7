package vision

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestConsole(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("hello\n3 4\n(1, 2)\n"), &out)
	ctx := context.Background()

	row, col, err := c.NextMove(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if row != 3 || col != 4 {
		t.Errorf("NextMove() = %d,%d, want 3,4", row, col)
	}
	if n := strings.Count(out.String(), "Put your move on the board"); n != 2 {
		t.Errorf("prompted %d times, want 2", n)
	}
	if !strings.Contains(out.String(), "invalid coordinate format") {
		t.Errorf("bad line not reported:\n%s", out.String())
	}

	row, col, err = c.NextMove(ctx, 1)
	if err != nil || row != 1 || col != 2 {
		t.Errorf("NextMove() = %d,%d,%v, want 1,2", row, col, err)
	}

	if _, _, err := c.NextMove(ctx, 2); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("NextMove() at end of input error = %v", err)
	}
}

func TestScript(t *testing.T) {
	s := &Script{Moves: [][2]int{{0, 1}, {1, 1}}}
	ctx := context.Background()

	if s.Remaining() != 2 {
		t.Errorf("Remaining() = %d", s.Remaining())
	}
	for _, want := range s.Moves {
		row, col, err := s.NextMove(ctx, 0)
		if err != nil {
			t.Fatal(err)
		}
		if row != want[0] || col != want[1] {
			t.Errorf("NextMove() = %d,%d, want %v", row, col, want)
		}
	}
	if _, _, err := s.NextMove(ctx, 0); !errors.Is(err, ErrScriptDone) {
		t.Errorf("NextMove() error = %v, want ErrScriptDone", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, _, err := (&Script{Moves: [][2]int{{0, 0}}}).NextMove(cancelled, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("NextMove() error = %v, want context.Canceled", err)
	}
}
