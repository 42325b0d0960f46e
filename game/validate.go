package game

// Validate classifies moving team's piece from -> to on b. The checks run in a
// fixed order and the first failure is reported.
func Validate(b *Board, team Team, from, to Index) Moveable {
	if !b.InBounds(from) || !b.InBounds(to) {
		return OutOfBounds
	}

	src := b.Cell(from)
	dest := b.Cell(to)
	if src.State == Unplayable || dest.State == Unplayable {
		return UnplayableSquare
	}
	if src.State == Empty {
		return UnoccupiedSrc
	}
	if src.Occupant.Team != team {
		return WrongTeamSrc
	}
	if dest.State == Occupied {
		return OccupiedDest
	}

	moveType, ok := MoveTypeOf(from, to)
	if !ok {
		return IllegalTrajectory
	}

	// Men only advance
	if src.Occupant.Strength == Man && sign(to.Row-from.Row) != b.Forward(team) {
		return IllegalTrajectory
	}

	if moveType == Jump {
		mid := b.Cell(Index{Row: (from.Row + to.Row) / 2, Col: (from.Col + to.Col) / 2})
		if mid.State != Occupied {
			return NoJumpablePiece
		}
		if mid.Occupant.Team == team {
			return JumpingSameTeam
		}
	}

	return Allowed
}

// MoveTypeOf classifies a displacement: one diagonal step is Simple, two is a
// Jump, anything else is not a move.
func MoveTypeOf(from, to Index) (MoveType, bool) {
	_, steps, ok := displacement(from, to)
	if !ok {
		return Simple, false
	}
	switch steps {
	case 1:
		return Simple, true
	case 2:
		return Jump, true
	}
	return Simple, false
}
