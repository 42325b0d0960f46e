package game

// Moveable is the outcome of validating a proposed move. The numbering is
// shared with the rendering layer and must not change.
type Moveable uint8

const (
	Allowed Moveable = iota
	UnoccupiedSrc
	OccupiedDest
	OutOfBounds
	UnplayableSquare
	WrongTeamSrc
	IllegalTrajectory
	NoJumpablePiece
	JumpingSameTeam
)

var moveableNames = [...]string{
	Allowed:           "Allowed",
	UnoccupiedSrc:     "UnoccupiedSrc",
	OccupiedDest:      "OccupiedDest",
	OutOfBounds:       "OutOfBounds",
	UnplayableSquare:  "Unplayable",
	WrongTeamSrc:      "WrongTeamSrc",
	IllegalTrajectory: "IllegalTrajectory",
	NoJumpablePiece:   "NoJumpablePiece",
	JumpingSameTeam:   "JumpingSameTeam",
}

func (m Moveable) String() string {
	if int(m) < len(moveableNames) {
		return moveableNames[m]
	}
	return "Unknown"
}
