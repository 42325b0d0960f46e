package engine

import (
	"draught/experiments/metrics"
	"draught/game"
	"draught/meta"
	"errors"
)

var ErrGameOver = errors.New("game is over")

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Config holds everything fixed at game construction. SearchDepth can be
// changed later with Game.SetSearchDepth.
type Config struct {
	Width       int
	Height      int
	PieceRows   int
	FirstTurn   game.Team
	Top         game.Team
	SearchDepth int
	Goroutines  int
	Rules       game.Rules
	Evaluate    game.Evaluate // nil means game.EvaluateMaterial
	MaxTurns    int           // 0 means no cap
}

func DefaultConfig() Config {
	return Config{
		Width:       meta.DEFAULT_WIDTH,
		Height:      meta.DEFAULT_HEIGHT,
		PieceRows:   meta.DEFAULT_PIECE_ROWS,
		FirstTurn:   game.Black,
		Top:         game.White,
		SearchDepth: meta.DEFAULT_SEARCH_DEPTH,
		Goroutines:  1,
		Rules:       game.NewStandardRules(),
	}
}

type State int

const (
	AwaitingMove State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "GameOver"
	}
	return "AwaitingMove"
}

// Status is AwaitingMove(Turn) while the game runs and GameOver(Winner) or
// GameOver(Draw) once it has ended.
type Status struct {
	State  State
	Turn   game.Team
	Winner game.Team
	Draw   bool
}

func (s Status) Over() bool {
	return s.State == GameOver
}

func (s Status) String() string {
	switch {
	case s.State == AwaitingMove:
		return "AwaitingMove(" + s.Turn.String() + ")"
	case s.Draw:
		return "GameOver(Draw)"
	default:
		return "GameOver(" + s.Winner.String() + ")"
	}
}
