package camfour

// EventKind says what happened in a match.
type EventKind int

const (
	EventStart EventKind = iota
	EventPlaced
	EventRejected
	EventOutcome
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventPlaced:
		return "placed"
	case EventRejected:
		return "rejected"
	case EventOutcome:
		return "outcome"
	default:
		return "unknown"
	}
}

// Event is passed to observers after the match changes. Move is set for
// placements and rejections, Err for rejections.
type Event struct {
	Kind    EventKind
	MatchID string
	Turn    int
	Outcome Outcome
	Move    *Move
	Err     error
}
