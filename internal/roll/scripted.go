package roll

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Scripted replays a fixed sequence of die faces. Each face must fit the die
// it is consumed by; running out of faces is an error.
type Scripted struct {
	faces []int
	next  int
}

// NewScripted creates a roller that returns faces in order.
func NewScripted(faces ...int) *Scripted {
	return &Scripted{faces: faces}
}

// Roll consumes the next face.
func (s *Scripted) Roll(size int) (int, error) {
	if s.next >= len(s.faces) {
		return 0, fmt.Errorf("roll: script exhausted after %d rolls", len(s.faces))
	}
	v := s.faces[s.next]
	if v < 1 || v > size {
		return 0, fmt.Errorf("roll: scripted face %d does not fit d%d", v, size)
	}
	s.next++
	return v, nil
}

// RollN consumes count faces.
func (s *Scripted) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for range count {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Remaining reports how many faces have not been consumed.
func (s *Scripted) Remaining() int {
	return len(s.faces) - s.next
}

var _ dice.Roller = (*Scripted)(nil)
