package game

import "fmt"

// Apply returns the board after m. The input board is left untouched.
// m must have been validated as Allowed for the piece on m.From; anything else
// is a programming error and panics.
func Apply(b *Board, m Move) *Board {
	src, err := b.Query(m.From)
	if err != nil || src.State != Occupied {
		panic(fmt.Sprintf("cannot apply %v: no piece on source", m))
	}
	if able := Validate(b, src.Occupant.Team, m.From, m.To); able != Allowed {
		panic(fmt.Sprintf("cannot apply %v: %v", m, able))
	}
	if moveType, _ := MoveTypeOf(m.From, m.To); moveType != m.Type {
		panic(fmt.Sprintf("cannot apply %v: displacement is a %v", m, moveType))
	}

	next := b.Copy()
	piece := src.Occupant
	if m.To.Row == next.PromotionRow(piece.Team) {
		piece.Strength = King
	}

	next.cells[next.offset(m.From)] = Square{State: Empty}
	next.cells[next.offset(m.To)] = occupied(piece)
	if mid, ok := m.Captured(); ok {
		next.cells[next.offset(mid)] = Square{State: Empty}
	}
	return next
}
