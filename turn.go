package camfour

import "fmt"

// Turn is one human placement and the opponent's reply. Opponent is nil
// when the match ended on the human move.
type Turn struct {
	Number   int   `json:"number"`
	Human    *Move `json:"human,omitempty"`
	Opponent *Move `json:"opponent,omitempty"`
}

// Text returns a short "n. human opponent" line.
func (t *Turn) Text() string {
	switch {
	case t.Human != nil && t.Opponent != nil:
		return fmt.Sprintf("%d. %s %s", t.Number, t.Human.Text(), t.Opponent.Text())
	case t.Human != nil:
		return fmt.Sprintf("%d. %s", t.Number, t.Human.Text())
	default:
		return fmt.Sprintf("%d.", t.Number)
	}
}

// Debug is a verbose dumping of the object and its sub objects.
func (t *Turn) Debug() string {
	return fmt.Sprintf("&{%d human:%+v opponent:%+v}", t.Number, t.Human, t.Opponent)
}
