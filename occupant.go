package camfour

import "fmt"

// Occupant is whoever holds a cell.
type Occupant int

const (
	// None marks an empty cell.
	None Occupant = iota

	// Human is the player dropping physical markers in front of the camera.
	Human

	// Opponent is the engine.
	Opponent
)

func (o Occupant) String() string {
	switch o {
	case None:
		return "none"
	case Human:
		return "human"
	case Opponent:
		return "opponent"
	default:
		return fmt.Sprintf("occupant(%d)", int(o))
	}
}

// Symbol is the single character used when drawing a board.
func (o Occupant) Symbol() string {
	switch o {
	case Human:
		return "X"
	case Opponent:
		return "O"
	default:
		return "."
	}
}

// MarshalText writes the occupant by name.
func (o Occupant) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText reads a name written by MarshalText.
func (o *Occupant) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none", "":
		*o = None
	case "human":
		*o = Human
	case "opponent":
		*o = Opponent
	default:
		return fmt.Errorf("unknown occupant %q", text)
	}

	return nil
}
