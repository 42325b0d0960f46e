package experiments

import (
	"draught/engine"
	"draught/experiments/metrics"
	"draught/meta"
	"draught/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
)

const NumGames = 20 // Per match up

const (
	Minimax = "minimax"
	Random  = "random"
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: Minimax, Depth: 1, Goroutines: 1},
	{ID: 2, Kind: Minimax, Depth: 2, Goroutines: 1},
	{ID: 3, Kind: Minimax, Depth: 3, Goroutines: 1},
	{ID: 4, Kind: Minimax, Depth: 4, Goroutines: meta.GO_ROUTINES},
	{ID: 5, Kind: Minimax, Depth: 5, Goroutines: meta.GO_ROUTINES},
}

// RunDepthExperiment pairs every search depth against a random baseline
func RunDepthExperiment(games int) {
	baseline := metrics.AgentConfig{ID: 0, Kind: Random, Seed: 1}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	dir, err := runExperiment(".", "depth", engine.DefaultConfig(), append(depthConfigs, baseline), matchUps, games)
	if err != nil {
		panic(fmt.Sprintf("depth experiment failed: %v", err))
	}
	log.Info().Msgf("results stored in %s", dir)
}

// runExperiment plays games per matchup, swapping colours every other game,
// and stores the configs and records under root. It returns the result directory.
func runExperiment(root, name string, cfg engine.Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, games int) (string, error) {
	if games <= 0 {
		games = NumGames
	}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < games; i++ {
			black, white := matchup[0], matchup[1]
			if i%2 == 1 {
				black, white = white, black
			}

			m, err := engine.NewMatch(cfg, createAgent(black, i), createAgent(white, i))
			if err != nil {
				return "", err
			}
			winner, gameMetric, moveMetrics := m.Run()

			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     black.ID,
				Agent2:     white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %q", mi+1, len(matchUps), i+1, games, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)
	return store(root, name, configs, gameRecords, moveRecords)
}

func store(root, name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// createAgent builds a fresh agent for one game. Random agents are reseeded
// per game so repeated games differ but stay reproducible.
func createAgent(config metrics.AgentConfig, game int) engine.Agent {
	if config.Kind == Random {
		return engine.NewRandomAgent(config.Seed + uint64(game))
	}

	options := []searcher.Option{}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	options = append(options, searcher.WithMetrics())
	return engine.NewMinimaxAgent(options...)
}
