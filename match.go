package camfour

import (
	"fmt"
	"time"

	"github.com/ifo/sanic"
	"go.uber.org/zap"
)

// MaxTurns is the number of full turns that fill the board.
const MaxTurns = Capacity / 2

// firstCheckedTurn is the 0-based turn of each side's fourth placement.
// Nobody can have four in a row before it, so earlier turns skip the win
// detector.
const firstCheckedTurn = 3

var idWorker = sanic.NewWorker7()

// Outcome is the terminal state of a match, or Ongoing.
type Outcome int

const (
	Ongoing Outcome = iota
	HumanWin
	OpponentWin
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case HumanWin:
		return "human_win"
	case OpponentWin:
		return "opponent_win"
	case Tie:
		return "tie"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText writes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText reads a name written by MarshalText.
func (o *Outcome) UnmarshalText(text []byte) error {
	for _, v := range []Outcome{Ongoing, HumanWin, OpponentWin, Tie} {
		if v.String() == string(text) {
			*o = v
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}

// Submission is the answer to a human move.
type Submission int

const (
	Accepted Submission = iota
	Rejected
)

func (s Submission) String() string {
	if s == Accepted {
		return "accepted"
	}
	return "rejected"
}

// MarshalText writes the submission by name.
func (s Submission) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText reads a name written by MarshalText.
func (s *Submission) UnmarshalText(text []byte) error {
	switch string(text) {
	case "accepted":
		*s = Accepted
	case "rejected":
		*s = Rejected
	default:
		return fmt.Errorf("unknown submission %q", text)
	}
	return nil
}

// Responder picks and places the engine's reply. Implementations must place
// the piece on b themselves and return where it went.
type Responder interface {
	DecideMove(b *Board, lastHumanCol int) (Move, error)
}

// Match is a single game between the human and the opponent. A Match is not
// safe for concurrent use.
type Match struct {
	ID    string
	Board *Board
	Meta  []*Tag

	opponent         Responder
	turn             int
	outcome          Outcome
	turns            []*Turn
	awaitingOpponent bool
	lastHuman        Move
	observers        []func(Event)
}

// NewMatch creates a match against opponent and starts it.
func NewMatch(opponent Responder) *Match {
	m := &Match{
		Board:    NewBoard(),
		opponent: opponent,
	}
	m.StartMatch()
	return m
}

// StartMatch throws away any current state and begins a new match on an
// empty board.
func (m *Match) StartMatch() {
	id := idWorker.NextID()
	m.ID = idWorker.IDString(id)
	m.Board.Init()
	m.turn = 0
	m.outcome = Ongoing
	m.turns = nil
	m.awaitingOpponent = false
	m.lastHuman = Move{}
	m.Meta = []*Tag{{Key: "Started", Value: time.Now().UTC().Format(time.RFC3339)}}

	log.Infow("match started", "match", m.ID)
	m.emit(Event{Kind: EventStart})
}

// GetMeta does a linear search for the key specified and returns the value.
// It returns an error if the key does not exist.
func (m *Match) GetMeta(key string) (string, error) {
	for _, t := range m.Meta {
		if t != nil && t.Key == key {
			return t.Value, nil
		}
	}

	return "", fmt.Errorf("no such meta key %q", key)
}

// UpdateMeta sets key to value, adding the tag if needed.
func (m *Match) UpdateMeta(key, value string) {
	for _, t := range m.Meta {
		if t != nil && t.Key == key {
			t.Value = value
			return
		}
	}

	m.Meta = append(m.Meta, &Tag{Key: key, Value: value})
}

// Observe registers fn to receive every event the match emits.
func (m *Match) Observe(fn func(Event)) {
	m.observers = append(m.observers, fn)
}

// Turn returns the 0-based number of completed turns.
func (m *Match) Turn() int {
	return m.turn
}

// Outcome returns the match outcome, Ongoing until someone wins or the board
// fills.
func (m *Match) Outcome() Outcome {
	return m.outcome
}

// AwaitingOpponent reports whether the human has moved this turn and the
// opponent has not.
func (m *Match) AwaitingOpponent() bool {
	return m.awaitingOpponent
}

// Turns returns the turns played so far.
func (m *Match) Turns() []*Turn {
	return m.turns
}

// CheckWin reports whether (row, col) completes four in a row for who.
func (m *Match) CheckWin(row, col int, who Occupant) bool {
	return m.Board.CheckWin(row, col, who)
}

// SubmitHumanMove validates and applies the human's move. Rejected moves
// leave the board and the turn counter untouched so the human can retry.
func (m *Match) SubmitHumanMove(row, col int) (Submission, error) {
	var err error
	switch {
	case m.outcome != Ongoing:
		err = ErrMatchOver
	case m.awaitingOpponent:
		err = ErrNotHumanTurn
	case !InBounds(row, col):
		err = fmt.Errorf("%w: %d,%d", ErrOutOfRange, row, col)
	case !m.Board.IsAvailable(row, col):
		err = fmt.Errorf("%w: %d,%d", ErrUnavailable, row, col)
	}

	if err != nil {
		log.Infow("human move rejected", "match", m.ID, "turn", m.turn, "row", row, "col", col, "reason", err.Error())
		m.emit(Event{Kind: EventRejected, Move: &Move{Row: row, Col: col, Occupant: Human}, Err: err})
		return Rejected, err
	}

	m.Board.Place(row, col, Human)
	mv := Move{Row: row, Col: col, Occupant: Human}
	m.lastHuman = mv
	m.awaitingOpponent = true
	m.turns = append(m.turns, &Turn{Number: m.turn + 1, Human: &mv})

	log.Debugw("human move", "match", m.ID, "turn", m.turn, "row", row, "col", col)
	m.emit(Event{Kind: EventPlaced, Move: &mv})

	if m.turn >= firstCheckedTurn && m.Board.CheckWin(row, col, Human) {
		m.finish(HumanWin)
	}

	return Accepted, nil
}

// ComputeOpponentMove has the opponent reply to the last human move and
// closes the turn.
func (m *Match) ComputeOpponentMove() (Move, error) {
	if m.outcome != Ongoing {
		return Move{}, ErrMatchOver
	}
	if !m.awaitingOpponent {
		return Move{}, ErrNotOpponentTurn
	}

	mv, err := m.opponent.DecideMove(m.Board, m.lastHuman.Col)
	if err != nil {
		return Move{}, fmt.Errorf("opponent: %w", err)
	}

	m.awaitingOpponent = false
	if len(m.turns) > 0 {
		m.turns[len(m.turns)-1].Opponent = &mv
	}

	log.Debugw("opponent move", "match", m.ID, "turn", m.turn, "row", mv.Row, "col", mv.Col)
	m.emit(Event{Kind: EventPlaced, Move: &mv})

	if m.turn >= firstCheckedTurn && m.Board.CheckWin(mv.Row, mv.Col, Opponent) {
		m.finish(OpponentWin)
		return mv, nil
	}

	m.turn++
	if m.turn >= MaxTurns {
		m.finish(Tie)
	}

	return mv, nil
}

func (m *Match) finish(o Outcome) {
	m.outcome = o
	m.awaitingOpponent = false
	if err := m.Board.CheckGravity(); err != nil {
		log.Errorw("board broke gravity", "match", m.ID, zap.Error(err))
	}

	log.Infow("match finished", "match", m.ID, "outcome", o.String(), "turn", m.turn, "pieces", m.Board.Count())
	m.emit(Event{Kind: EventOutcome})
}

func (m *Match) emit(e Event) {
	if len(m.observers) == 0 {
		return
	}

	e.MatchID = m.ID
	e.Turn = m.turn
	e.Outcome = m.outcome
	for _, fn := range m.observers {
		fn(e)
	}
}
