package experiments

import (
	"draught/engine"
	"draught/experiments/metrics"
	"draught/meta"
	"fmt"

	"github.com/rs/zerolog/log"
)

// RunParallelismExperiment measures search time against the number of
// goroutines expanding the root. Both players share a config so every
// matchup plays the same games.
func RunParallelismExperiment(games int) {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: Minimax, Depth: meta.DEFAULT_SEARCH_DEPTH + 1, Goroutines: 1},
		{ID: 2, Kind: Minimax, Depth: meta.DEFAULT_SEARCH_DEPTH + 1, Goroutines: 2},
		{ID: 3, Kind: Minimax, Depth: meta.DEFAULT_SEARCH_DEPTH + 1, Goroutines: 4},
		{ID: 4, Kind: Minimax, Depth: meta.DEFAULT_SEARCH_DEPTH + 1, Goroutines: meta.GO_ROUTINES},
	}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	dir, err := runExperiment(".", "parallelism", engine.DefaultConfig(), configs, matchUps, games)
	if err != nil {
		panic(fmt.Sprintf("parallelism experiment failed: %v", err))
	}
	log.Info().Msgf("results stored in %s", dir)
}
