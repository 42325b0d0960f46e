package main

import (
	"draught/engine"
	"draught/experiments"
	"draught/game"
	"draught/meta"
	"draught/searcher"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	width := flag.Int("width", meta.DEFAULT_WIDTH, "Board width")
	height := flag.Int("height", meta.DEFAULT_HEIGHT, "Board height")
	rows := flag.Int("rows", meta.DEFAULT_PIECE_ROWS, "Rows of men per team")
	depth := flag.Int("depth", meta.DEFAULT_SEARCH_DEPTH, "Search depth in plies")
	goroutines := flag.Int("goroutines", 1, "Number of goroutines expanding the root")
	maxTurns := flag.Int("max-turns", meta.MAX_TURNS, "Turns before the game is a draw")
	first := flag.String("first", "black", "Team to move first")
	chain := flag.Bool("chain", false, "Continue jumps with the same piece")
	advancement := flag.Bool("advancement", false, "Reward men close to promotion on top of material")
	opponent := flag.String("opponent", "minimax", "White player: minimax or random")
	seed := flag.Uint64("seed", 1, "Seed of the random opponent and of imperfect moves")
	perfectChance := flag.Float64("perfect-chance", 1, "Probability that the computer plays its best move")
	experiment := flag.String("experiment", "", "Run an experiment instead: depth or parallelism")
	games := flag.Int("games", experiments.NumGames, "Games per experiment matchup")
	debug := flag.Bool("debug", false, "Log every move and search")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	switch *experiment {
	case "":
	case "depth":
		experiments.RunDepthExperiment(*games)
		return
	case "parallelism":
		experiments.RunParallelismExperiment(*games)
		return
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}

	cfg := engine.DefaultConfig()
	cfg.Width, cfg.Height, cfg.PieceRows = *width, *height, *rows
	cfg.SearchDepth = *depth
	cfg.Goroutines = *goroutines
	cfg.MaxTurns = *maxTurns
	if *chain {
		cfg.Rules = game.NewChainRules()
	}
	if *advancement {
		cfg.Evaluate = game.EvaluateAdvancement
	}
	team, ok := game.ParseTeam(*first)
	if !ok {
		log.Fatal().Msgf("unknown team %q", *first)
	}
	cfg.FirstTurn = team

	var g *engine.Game
	var err error
	switch *opponent {
	case "minimax":
		g, err = selfPlay(cfg, *perfectChance, *seed)
	case "random":
		g, err = playRandom(cfg, *perfectChance, *seed)
	default:
		log.Fatal().Msgf("unknown opponent %q", *opponent)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}

	fmt.Print(g.Board())
	if winner, ok := g.HasWon(); ok {
		fmt.Printf("%v wins after %d turns\n", winner, g.Turns())
	} else {
		fmt.Printf("draw after %d turns\n", g.Turns())
	}
}

// selfPlay lets the computer play both teams
func selfPlay(cfg engine.Config, perfectChance float64, seed uint64) (*engine.Game, error) {
	g, err := engine.NewGame(cfg)
	if err != nil {
		return nil, err
	}
	if err := g.SetPerfectChance(perfectChance, seed); err != nil {
		return nil, err
	}

	for !g.Status().Over() {
		team := g.CurrentTurn()
		move, err := g.AIMove()
		if errors.Is(err, searcher.ErrNoLegalMoves) {
			break
		}
		if err != nil {
			return nil, err
		}
		log.Info().Msgf("turn %d: %v played %v after %d nodes", g.Turns(), team, move, g.LastNodeCount())
	}
	return g, nil
}

// playRandom pits the computer, playing Black, against a random White
func playRandom(cfg engine.Config, perfectChance float64, seed uint64) (*engine.Game, error) {
	black := engine.NewMinimaxAgent(
		searcher.WithDepth(cfg.SearchDepth),
		searcher.WithGoroutines(cfg.Goroutines),
		searcher.WithEvaluationFn(cfg.Evaluate),
		searcher.WithPerfectChance(perfectChance, seed),
	)
	m, err := engine.NewMatch(cfg, black, engine.NewRandomAgent(seed))
	if err != nil {
		return nil, err
	}
	m.Run()
	return m.Game(), nil
}
