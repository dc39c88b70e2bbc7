package camfour

import "fmt"

// Tag is a Key and Value pair describing a match.
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (t *Tag) String() string {
	return fmt.Sprintf("%s: %s", t.Key, t.Value)
}
