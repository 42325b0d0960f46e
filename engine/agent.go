package engine

import (
	"draught/experiments/metrics"
	"draught/game"
	"draught/searcher"

	"golang.org/x/exp/rand"
)

// Agent picks a move for the team to move in pos
type Agent interface {
	FindMove(pos game.Position) (game.Move, metrics.SearchMetric, error)
}

// MinimaxAgent runs a fresh searcher.Computer for whichever team is to move
type MinimaxAgent struct {
	options []searcher.Option
}

func NewMinimaxAgent(options ...searcher.Option) *MinimaxAgent {
	return &MinimaxAgent{options: options}
}

func (a *MinimaxAgent) FindMove(pos game.Position) (game.Move, metrics.SearchMetric, error) {
	return searcher.NewComputer(pos.Turn, a.options...).FindMove(pos)
}

// RandomAgent plays a uniformly random legal move
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(pos game.Position) (game.Move, metrics.SearchMetric, error) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Nodes: 1}, nil
}
