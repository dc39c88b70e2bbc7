package ai

import (
	"math/rand/v2"
	"time"

	"github.com/icco/camfour"
	"github.com/icco/gutil/logging"
)

var log = logging.Must(logging.NewLogger(camfour.Service))

// Source is the randomness an engine draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSeeded returns a PCG source that replays the same draws for the same
// seed.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSource returns a source seeded from the clock.
func NewSource() *rand.Rand {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// Engine is the interface for opponent move generation.
type Engine interface {
	camfour.Responder

	// Name identifies the engine in logs and match tags.
	Name() string
}

// StubEngine always plays the lowest open cell of the leftmost open column.
// It is useful in tests that need a predictable opponent.
type StubEngine struct{}

// Name implements Engine.
func (e *StubEngine) Name() string {
	return "stub"
}

// DecideMove implements camfour.Responder.
func (e *StubEngine) DecideMove(b *camfour.Board, _ int) (camfour.Move, error) {
	for c := 0; c < camfour.Cols; c++ {
		if row := b.AvailableRow(c); row >= 0 {
			b.Place(row, c, camfour.Opponent)
			return camfour.Move{Row: row, Col: c, Occupant: camfour.Opponent}, nil
		}
	}

	return camfour.Move{}, camfour.ErrBoardFull
}
