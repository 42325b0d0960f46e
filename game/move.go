package game

import "fmt"

type MoveType uint8

const (
	Simple MoveType = iota
	Jump
)

func (t MoveType) String() string {
	if t == Jump {
		return "Jump"
	}
	return "Simple"
}

// Move records a single step or a single capture
type Move struct {
	From Index
	To   Index
	Type MoveType
}

func NewMove(from, to Index, moveType MoveType) Move {
	return Move{From: from, To: to, Type: moveType}
}

// Captured returns the square jumped over by a Jump
func (m Move) Captured() (Index, bool) {
	if m.Type != Jump {
		return Index{}, false
	}
	return Index{Row: (m.From.Row + m.To.Row) / 2, Col: (m.From.Col + m.To.Col) / 2}, true
}

func (m Move) String() string {
	sep := "-"
	if m.Type == Jump {
		sep = "x"
	}
	return fmt.Sprintf("%v%s%v", m.From, sep, m.To)
}
