package game

// Team is one of the two sides of the board. There is no "no team" value.
type Team uint8

const (
	Black Team = iota
	White
)

// Opponent returns the other team
func (t Team) Opponent() Team {
	if t == Black {
		return White
	}
	return Black
}

func (t Team) String() string {
	if t == Black {
		return "Black"
	}
	return "White"
}

// Short returns the single letter used when printing boards
func (t Team) Short() byte {
	if t == Black {
		return 'B'
	}
	return 'W'
}

// ParseTeam accepts "black"/"b" and "white"/"w" in any case
func ParseTeam(s string) (Team, bool) {
	switch s {
	case "black", "Black", "BLACK", "b", "B":
		return Black, true
	case "white", "White", "WHITE", "w", "W":
		return White, true
	}
	return Black, false
}

// Strength of a piece. Promotion is one way: Man -> King.
type Strength uint8

const (
	Man Strength = iota
	King
)

func (s Strength) String() string {
	if s == King {
		return "King"
	}
	return "Man"
}

type Piece struct {
	Team     Team
	Strength Strength
}

func NewPiece(team Team, strength Strength) Piece {
	return Piece{Team: team, Strength: strength}
}

// SquareState keeps the numbering of the rendering layer: Empty=0, Occupied=1, Unplayable=2
type SquareState uint8

const (
	Empty SquareState = iota
	Occupied
	Unplayable
)

func (s SquareState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Occupied:
		return "Occupied"
	case Unplayable:
		return "Unplayable"
	}
	return "Unknown"
}

// Square is a single cell. Occupant is only meaningful when State is Occupied.
type Square struct {
	State    SquareState
	Occupant Piece
}

// Piece returns the occupant and whether there is one
func (s Square) Piece() (Piece, bool) {
	return s.Occupant, s.State == Occupied
}

func occupied(p Piece) Square {
	return Square{State: Occupied, Occupant: p}
}

// Evaluates a board to an integer score from the given team's perspective;
// positive values favour that team.
type Evaluate func(b *Board, team Team) int
