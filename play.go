package camfour

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// MoveSource reports where the human put their piece. It blocks until a
// move is seen. Errors are fatal to the match.
type MoveSource interface {
	NextMove(ctx context.Context, turn int) (row, col int, err error)
}

// Acknowledger is implemented by sources that need to know whether the last
// coordinate they reported was accepted.
type Acknowledger interface {
	Acknowledge(accepted bool)
}

// Play runs the match to completion, reading human moves from src and
// writing the console transcript to out. It returns the outcome, or Ongoing
// and an error if src fails or ctx is cancelled.
func (m *Match) Play(ctx context.Context, src MoveSource, out io.Writer) (Outcome, error) {
	ack, _ := src.(Acknowledger)
	announced := -1

	for m.outcome == Ongoing {
		if err := ctx.Err(); err != nil {
			return m.outcome, err
		}

		if announced != m.turn {
			fmt.Fprintf(out, "Turn #%d\n", m.turn+1)
			announced = m.turn
		}

		if m.awaitingOpponent {
			if err := m.reply(out); err != nil {
				return m.outcome, err
			}
			continue
		}

		row, col, err := src.NextMove(ctx, m.turn)
		if err != nil {
			log.Errorw("could not read human move", "match", m.ID, "turn", m.turn, zap.Error(err))
			return m.outcome, fmt.Errorf("move source: %w", err)
		}

		res, err := m.SubmitHumanMove(row, col)
		if ack != nil {
			ack.Acknowledge(res == Accepted)
		}
		if res == Rejected {
			if !errors.Is(err, ErrOutOfRange) && !errors.Is(err, ErrUnavailable) {
				return m.outcome, err
			}
			fmt.Fprintf(out, "Error. Invalid option (%v). Please try again.\n", err)
			continue
		}

		if m.outcome == HumanWin {
			break
		}

		if err := m.reply(out); err != nil {
			return m.outcome, err
		}
	}

	fmt.Fprint(out, m.Board.String())
	switch m.outcome {
	case HumanWin:
		fmt.Fprintln(out, "Congratulations, player! You won!")
	case OpponentWin:
		fmt.Fprintln(out, "Sorry, CPU player won! Better luck next time!")
	case Tie:
		fmt.Fprintln(out, "Tie state reached. Ending game.")
	}

	return m.outcome, nil
}

func (m *Match) reply(out io.Writer) error {
	mv, err := m.ComputeOpponentMove()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Robot marks row %d col %d\n", mv.Row, mv.Col)
	return nil
}
