package game

// Position is an immutable game state: a board, the team to move and, under
// ContinueJumps, the piece that has to keep jumping. Operations on a Position
// always return a new copy.
type Position struct {
	Board *Board
	Turn  Team
	Rules Rules

	chain   Index
	chained bool
}

func NewPosition(b *Board, turn Team, rules Rules) Position {
	return Position{Board: b, Turn: turn, Rules: rules}
}

// Player returns the team to move
func (p Position) Player() Team {
	return p.Turn
}

// Chained returns the piece that must continue jumping, if any
func (p Position) Chained() (Index, bool) {
	return p.chain, p.chained
}

// Validate checks a move for the team to move, including the jump chain restriction
func (p Position) Validate(from, to Index) Moveable {
	able := Validate(p.Board, p.Turn, from, to)
	if able != Allowed || !p.chained {
		return able
	}
	if moveType, _ := MoveTypeOf(from, to); from != p.chain || moveType != Jump {
		return IllegalTrajectory
	}
	return Allowed
}

// LegalMoves enumerates the mover's pieces in row-major order and, for each,
// simple steps then jumps in Directions order.
func (p Position) LegalMoves() []Move {
	var pieces []Index
	if p.chained {
		pieces = []Index{p.chain}
	} else {
		pieces = p.Board.Pieces(p.Turn)
	}

	moves := make([]Move, 0, 2*len(pieces))
	for _, from := range pieces {
		if !p.chained {
			moves = appendMoves(moves, p.Board, p.Turn, from, 1, Simple)
		}
		moves = appendMoves(moves, p.Board, p.Turn, from, 2, Jump)
	}
	return moves
}

func appendMoves(moves []Move, b *Board, team Team, from Index, steps int, moveType MoveType) []Move {
	for _, d := range Directions {
		to := from.Step(d, steps)
		if Validate(b, team, from, to) == Allowed {
			moves = append(moves, NewMove(from, to, moveType))
		}
	}
	return moves
}

// HasMoves reports whether the team to move has at least one legal move
func (p Position) HasMoves() bool {
	if p.chained {
		return canJump(p.Board, p.Turn, p.chain)
	}
	for _, from := range p.Board.Pieces(p.Turn) {
		for _, d := range Directions {
			if Validate(p.Board, p.Turn, from, from.Step(d, 1)) == Allowed ||
				Validate(p.Board, p.Turn, from, from.Step(d, 2)) == Allowed {
				return true
			}
		}
	}
	return false
}

func canJump(b *Board, team Team, from Index) bool {
	for _, d := range Directions {
		if Validate(b, team, from, from.Step(d, 2)) == Allowed {
			return true
		}
	}
	return false
}

// Play applies a legal move and passes the turn, unless a jump chain continues
func (p Position) Play(m Move) Position {
	if able := p.Validate(m.From, m.To); able != Allowed {
		panic("cannot play " + m.String() + ": " + able.String())
	}

	next := Position{
		Board: Apply(p.Board, m),
		Turn:  p.Turn.Opponent(),
		Rules: p.Rules,
	}

	if m.Type == Jump && p.Rules.Jumps == ContinueJumps {
		crowned := p.Board.Cell(m.From).Occupant.Strength == Man && next.Board.Cell(m.To).Occupant.Strength == King
		if !crowned && canJump(next.Board, p.Turn, m.To) {
			next.Turn = p.Turn
			next.chain = m.To
			next.chained = true
		}
	}
	return next
}

// Winner reports a decisive result: the team to move loses when it has no
// pieces or no legal moves.
func (p Position) Winner() (Team, bool) {
	if p.Board.Count(p.Turn.Opponent()) == 0 {
		return p.Turn, true
	}
	if p.Board.Count(p.Turn) == 0 || !p.HasMoves() {
		return p.Turn.Opponent(), true
	}
	return Black, false
}
