package game

// NewStandardRules returns one jump per turn
func NewStandardRules() Rules {
	return Rules{Jumps: SingleJump}
}

// NewChainRules returns the multi-jump variant
func NewChainRules() Rules {
	return Rules{Jumps: ContinueJumps}
}
