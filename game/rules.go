package game

// JumpPolicy decides what happens after a capture
type JumpPolicy uint8

const (
	// SingleJump ends the turn after every move, jumps included
	SingleJump JumpPolicy = iota
	// ContinueJumps keeps the turn with the mover while the piece that just
	// jumped can jump again. Crowning ends the chain.
	ContinueJumps
)

func (p JumpPolicy) String() string {
	if p == ContinueJumps {
		return "continue"
	}
	return "single"
}

type Rules struct {
	Jumps JumpPolicy
}
