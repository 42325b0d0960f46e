package searcher

import (
	"errors"
	"math"
)

// Score of a game won at the root, far outside any material evaluation. A win
// n plies away scores WinScore - n.
const WinScore = math.MaxInt32

var (
	ErrNoLegalMoves  = errors.New("no legal moves")
	ErrInvalidDepth  = errors.New("search depth must be at least 1")
	ErrWrongTurn     = errors.New("position is not on the computer's turn")
	ErrInvalidChance = errors.New("perfect chance must be between 0 and 1")
)
