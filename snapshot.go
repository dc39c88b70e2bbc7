package camfour

// Snapshot is a copy of the match state that is safe to hand to other
// goroutines or encode as JSON.
type Snapshot struct {
	ID               string       `json:"id"`
	Turn             int          `json:"turn"`
	Outcome          Outcome      `json:"outcome"`
	AwaitingOpponent bool         `json:"awaiting_opponent"`
	Board            [][]Occupant `json:"board"`
	Turns            []Turn       `json:"turns"`
	Meta             []Tag        `json:"meta"`
}

// Snapshot copies the current state of the match.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		ID:               m.ID,
		Turn:             m.turn,
		Outcome:          m.outcome,
		AwaitingOpponent: m.awaitingOpponent,
		Board:            m.Board.Grid(),
		Turns:            make([]Turn, 0, len(m.turns)),
		Meta:             make([]Tag, 0, len(m.Meta)),
	}

	for _, t := range m.turns {
		cp := Turn{Number: t.Number}
		if t.Human != nil {
			h := *t.Human
			cp.Human = &h
		}
		if t.Opponent != nil {
			o := *t.Opponent
			cp.Opponent = &o
		}
		s.Turns = append(s.Turns, cp)
	}

	for _, t := range m.Meta {
		if t != nil {
			s.Meta = append(s.Meta, *t)
		}
	}

	return s
}
