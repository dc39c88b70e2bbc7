package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/icco/camfour"
	"github.com/icco/camfour/ai"
)

// table owns the one match being played on the physical board. All access
// goes through its mutex; watchers only ever see snapshots.
type table struct {
	mu      sync.Mutex
	match   *camfour.Match
	engine  ai.Engine
	hub     *hub
	metrics *matchMetrics
}

// MoveResult is the answer to a posted human move.
type MoveResult struct {
	Submission camfour.Submission `json:"submission"`
	Human      camfour.Move       `json:"human"`
	Opponent   *camfour.Move      `json:"opponent,omitempty"`
	Match      camfour.Snapshot   `json:"match"`
}

func newTable(engine ai.Engine, h *hub, mm *matchMetrics) *table {
	t := &table{engine: engine, hub: h, metrics: mm}
	t.match = camfour.NewMatch(engine)
	if mm != nil {
		t.match.Observe(mm.observe)
	}
	t.tag("")
	return t
}

func (t *table) tag(source string) {
	t.match.UpdateMeta("Engine", t.engine.Name())
	if source != "" {
		t.match.UpdateMeta("Source", source)
	}
}

// Snapshot copies the current match.
func (t *table) Snapshot() camfour.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.match.Snapshot()
}

// Start throws the current match away and starts a new one.
func (t *table) Start(source string) camfour.Snapshot {
	t.mu.Lock()
	t.match.StartMatch()
	t.tag(source)
	s := t.match.Snapshot()
	t.mu.Unlock()

	t.hub.broadcast(s)
	return s
}

// Move submits a human move and, if the match goes on, the opponent reply.
// A rejected move returns the rejection error alongside the result.
func (t *table) Move(row, col int) (MoveResult, error) {
	t.mu.Lock()
	res, err := t.move(row, col)
	t.mu.Unlock()

	if res.Submission == camfour.Accepted {
		t.hub.broadcast(res.Match)
	}
	return res, err
}

func (t *table) move(row, col int) (MoveResult, error) {
	res := MoveResult{Human: camfour.Move{Row: row, Col: col, Occupant: camfour.Human}}

	sub, err := t.match.SubmitHumanMove(row, col)
	res.Submission = sub
	if sub == camfour.Rejected {
		res.Match = t.match.Snapshot()
		return res, err
	}

	if t.match.Outcome() == camfour.Ongoing {
		mv, err := t.match.ComputeOpponentMove()
		if err != nil {
			res.Match = t.match.Snapshot()
			return res, err
		}
		res.Opponent = &mv
	}

	res.Match = t.match.Snapshot()
	return res, nil
}

// Resume asks the opponent for a reply it still owes, after a failure in
// Move left the turn open.
func (t *table) Resume() (MoveResult, error) {
	t.mu.Lock()
	res, err := t.resume()
	t.mu.Unlock()

	if err == nil {
		t.hub.broadcast(res.Match)
	}
	return res, err
}

func (t *table) resume() (MoveResult, error) {
	if !t.match.AwaitingOpponent() {
		return MoveResult{}, fmt.Errorf("resume: %w", camfour.ErrNotOpponentTurn)
	}

	mv, err := t.match.ComputeOpponentMove()
	if err != nil {
		return MoveResult{}, err
	}

	return MoveResult{Submission: camfour.Accepted, Opponent: &mv, Match: t.match.Snapshot()}, nil
}

// statusFor maps match errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, camfour.ErrOutOfRange), errors.Is(err, camfour.ErrUnavailable):
		return 400
	case errors.Is(err, camfour.ErrMatchOver), errors.Is(err, camfour.ErrNotHumanTurn), errors.Is(err, camfour.ErrNotOpponentTurn):
		return 409
	default:
		return 500
	}
}
