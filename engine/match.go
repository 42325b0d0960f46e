package engine

import (
	"draught/experiments/metrics"
	"draught/game"
	"draught/meta"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var _ Engine = (*Match)(nil)

// Match plays one game between two agents
type Match struct {
	ID     string
	game   *Game
	agents [2]Agent // indexed by game.Team
}

// NewMatch prepares a game between black and white. Matches are always capped,
// at meta.MAX_TURNS when cfg sets no cap.
func NewMatch(cfg Config, black, white Agent) (*Match, error) {
	if black == nil || white == nil {
		panic("a match needs two agents")
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = meta.MAX_TURNS
	}
	g, err := NewGame(cfg)
	if err != nil {
		return nil, err
	}
	return &Match{
		ID:     uuid.NewString(),
		game:   g,
		agents: [2]Agent{game.Black: black, game.White: white},
	}, nil
}

func (m *Match) Game() *Game {
	return m.game
}

// Run executes the entire game loop until a winner is found or the turn cap
// ends the game in a draw. The winner is "" for a draw.
func (m *Match) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		ID:             m.ID,
		StartingPlayer: m.game.CurrentTurn().String(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("game %s: %v is starting", m.ID, m.game.CurrentTurn())

	var moveMetrics []metrics.MoveMetric
	for !m.game.Status().Over() {
		pos := m.game.Position()
		move, metric, err := m.agents[pos.Turn].FindMove(pos)
		if err != nil {
			log.Warn().Err(err).Msgf("game %s: %v could not move", m.ID, pos.Turn)
			break
		}
		if legal := pos.LegalMoves(); !slices.Contains(legal, move) {
			log.Warn().Msgf("game %s: %v returned illegal move %v, playing %v", m.ID, pos.Turn, move, legal[0])
			move = legal[0]
		}

		if _, err := m.game.MakeMove(move.From, move.To); err != nil {
			log.Warn().Err(err).Msgf("game %s: move %v rejected", m.ID, move)
			break
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         m.game.Turns(),
			Player:       pos.Turn.String(),
			Move:         move.String(),
			SearchMetric: metric,
		})
	}

	winner := ""
	if status := m.game.Status(); status.Over() && !status.Draw {
		winner = status.Winner.String()
	}
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = m.game.Turns()

	if winner == "" {
		log.Info().Msgf("game %s: draw after %d turns", m.ID, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("game %s: %s won after %d turns", m.ID, winner, gameMetric.TotalMoves)
	}
	return winner, gameMetric, moveMetrics
}
