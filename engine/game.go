package engine

import (
	"draught/experiments/metrics"
	"draught/game"
	"draught/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Game owns the authoritative board and sequences turns between the two
// teams. A Game is not safe for concurrent use.
type Game struct {
	config   Config
	position game.Position
	status   Status
	history  []game.Move
	boards   []*game.Board // boards[i] is the board before history[i]

	chance float64 // see SetPerfectChance
	seed   uint64

	lastNodeCount int
	lastSearch    metrics.SearchMetric
}

func NewGame(cfg Config) (*Game, error) {
	b, err := game.NewBoard(cfg.Width, cfg.Height, cfg.PieceRows, cfg.Top)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return NewGameFromBoard(b, cfg.FirstTurn, cfg)
}

// NewGameFromBoard starts a game on a copy of b with turn to move. The board
// dimensions in cfg are ignored.
func NewGameFromBoard(b *game.Board, turn game.Team, cfg Config) (*Game, error) {
	if cfg.SearchDepth < 1 {
		return nil, fmt.Errorf("new game: %w", searcher.ErrInvalidDepth)
	}
	cfg.Width, cfg.Height = b.Width(), b.Height()

	g := &Game{
		config:   cfg,
		position: game.NewPosition(b.Copy(), turn, cfg.Rules),
		chance:   1,
	}
	g.updateStatus()
	log.Debug().Msgf("new %dx%d game, %v to move, %v jumps", cfg.Width, cfg.Height, turn, cfg.Rules.Jumps)
	return g, nil
}

// MakeMove plays from -> to for the team to move. Any verdict other than
// Allowed leaves the game untouched. Once the game is over nothing is played
// and ErrGameOver comes with the verdict the move would have had.
func (g *Game) MakeMove(from, to game.Index) (game.Moveable, error) {
	able := g.position.Validate(from, to)
	if g.status.Over() {
		return able, ErrGameOver
	}
	if able != game.Allowed {
		return able, nil
	}
	moveType, _ := game.MoveTypeOf(from, to)
	g.play(game.NewMove(from, to, moveType))
	return game.Allowed, nil
}

// AIMove lets the computer play one move for the team to move at the current
// search depth.
func (g *Game) AIMove() (game.Move, error) {
	if !g.position.HasMoves() {
		g.status = Status{State: GameOver, Turn: g.position.Turn, Winner: g.position.Turn.Opponent()}
		return game.Move{}, searcher.ErrNoLegalMoves
	}
	if g.status.Over() {
		return game.Move{}, ErrGameOver
	}

	c := searcher.NewComputer(g.position.Turn,
		searcher.WithDepth(g.config.SearchDepth),
		searcher.WithGoroutines(g.config.Goroutines),
		searcher.WithEvaluationFn(g.config.Evaluate),
		searcher.WithPerfectChance(g.chance, g.seed+uint64(len(g.history))),
		searcher.WithMetrics(),
	)
	move, metric, err := c.FindMove(g.position)
	g.lastNodeCount = c.LastNodeCount()
	g.lastSearch = metric
	if err != nil {
		return game.Move{}, err
	}

	g.play(move)
	return move, nil
}

func (g *Game) play(m game.Move) {
	mover := g.position.Turn
	g.boards = append(g.boards, g.position.Board)
	g.history = append(g.history, m)
	g.position = g.position.Play(m)
	log.Debug().Msgf("turn %d: %v played %v", len(g.history), mover, m)

	g.updateStatus()
	if g.status.Over() {
		log.Info().Msgf("game over after %d turns: %v", len(g.history), g.status)
	}
}

func (g *Game) updateStatus() {
	if winner, ok := g.position.Winner(); ok {
		g.status = Status{State: GameOver, Turn: g.position.Turn, Winner: winner}
		return
	}
	if g.config.MaxTurns > 0 && len(g.history) >= g.config.MaxTurns {
		g.status = Status{State: GameOver, Turn: g.position.Turn, Draw: true}
		return
	}
	g.status = Status{State: AwaitingMove, Turn: g.position.Turn}
}

func (g *Game) CurrentTurn() game.Team {
	return g.position.Turn
}

// Winning returns the team ahead on material, if any
func (g *Game) Winning() (game.Team, bool) {
	switch score := game.Score(g.position.Board); {
	case score > 0:
		return game.Black, true
	case score < 0:
		return game.White, true
	}
	return game.Black, false
}

// HasWon returns the winner of a decided game: the team whose opponent has no
// pieces left or cannot move on its turn.
func (g *Game) HasWon() (game.Team, bool) {
	return g.position.Winner()
}

func (g *Game) CellState(idx game.Index) (game.Square, error) {
	return g.position.Board.Query(idx)
}

// SetSearchDepth changes the depth of subsequent AIMove calls
func (g *Game) SetSearchDepth(depth int) error {
	if depth < 1 {
		return searcher.ErrInvalidDepth
	}
	g.config.SearchDepth = depth
	return nil
}

func (g *Game) SearchDepth() int { return g.config.SearchDepth }

// SetPerfectChance makes subsequent AIMove calls play the best move with
// probability p and a random legal move otherwise. Each move draws from seed
// offset by the turn number, so a seeded game replays identically.
func (g *Game) SetPerfectChance(p float64, seed uint64) error {
	if p < 0 || p > 1 {
		return searcher.ErrInvalidChance
	}
	g.chance = p
	g.seed = seed
	return nil
}

func (g *Game) PerfectChance() float64 { return g.chance }

func (g *Game) Status() Status { return g.status }

func (g *Game) Position() game.Position { return g.position }

// Board returns a copy of the current board
func (g *Game) Board() *game.Board {
	return g.position.Board.Copy()
}

func (g *Game) History() []game.Move {
	return append([]game.Move(nil), g.history...)
}

// Turns is the number of moves played so far
func (g *Game) Turns() int {
	return len(g.history)
}

// PreviousBoard returns a copy of the board as it was before the given turn,
// counting from 0. PreviousBoard(Turns()) is the current board.
func (g *Game) PreviousBoard(turn int) (*game.Board, bool) {
	switch {
	case turn < 0 || turn > len(g.history):
		return nil, false
	case turn == len(g.history):
		return g.Board(), true
	}
	return g.boards[turn].Copy(), true
}

// LastNodeCount is the number of nodes built by the latest AIMove
func (g *Game) LastNodeCount() int {
	return g.lastNodeCount
}

func (g *Game) LastSearch() metrics.SearchMetric {
	return g.lastSearch
}
