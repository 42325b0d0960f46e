package searcher

import (
	"draught/experiments/metrics"
	"draught/game"
	"draught/meta"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Computer picks moves for one team with a fixed-depth minimax search over
// the full tree of legal moves.
type Computer struct {
	team          game.Team
	depth         int
	goroutines    int
	evaluate      game.Evaluate
	metrics       metrics.Collector
	chance        float64 // probability of playing the best move
	rng           *rand.Rand
	lastNodeCount int
}

func NewComputer(team game.Team, options ...Option) *Computer {
	c := &Computer{ // Default values
		team:       team,
		depth:      meta.DEFAULT_SEARCH_DEPTH,
		goroutines: 1,
		evaluate:   game.EvaluateMaterial,
		metrics:    metrics.NewDummyCollector(),
		chance:     1,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Computer) Team() game.Team { return c.team }
func (c *Computer) Depth() int      { return c.depth }

// LastNodeCount is the number of nodes built by the latest search, root included
func (c *Computer) LastNodeCount() int {
	return c.lastNodeCount
}

// ChooseMove searches b to depth for team under the standard rules and
// returns the chosen move with the number of nodes explored.
func ChooseMove(b *game.Board, team game.Team, depth int) (game.Move, int, error) {
	if depth < 1 {
		return game.Move{}, 0, ErrInvalidDepth
	}
	c := NewComputer(team, WithDepth(depth))
	move, _, err := c.FindMove(game.NewPosition(b, team, game.NewStandardRules()))
	return move, c.LastNodeCount(), err
}

// FindMove returns the best move for the computer's team in pos together with
// the search metrics. Under WithPerfectChance it sometimes returns a random
// legal move instead.
func (c *Computer) FindMove(pos game.Position) (game.Move, metrics.SearchMetric, error) {
	root, metric, err := c.Search(pos)
	if err != nil {
		return game.Move{}, metric, err
	}

	best := root.best()
	if c.chance < 1 && c.rng.Float64() >= c.chance {
		best = root.children[c.rng.Intn(len(root.children))]
		log.Debug().Msgf("%v plays a random move", c.team)
	}
	move, _ := best.Move()
	log.Debug().Msgf("%v chose %v scoring %d after %d nodes at depth %d", c.team, move, root.score, metric.Nodes, c.depth)
	return move, metric, nil
}

// Search builds and scores the tree below pos. The node count is reset on
// every call.
func (c *Computer) Search(pos game.Position) (*BoardNode, metrics.SearchMetric, error) {
	c.lastNodeCount = 0
	if pos.Turn != c.team {
		return nil, metrics.SearchMetric{}, ErrWrongTurn
	}

	s := &search{
		team:     c.team,
		evaluate: c.evaluate,
		metrics:  c.metrics,
	}
	c.metrics.Start(c.depth, c.goroutines)

	root := s.newNode(pos, game.Move{}, false)
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		c.lastNodeCount = int(s.nodes.Load())
		return nil, c.complete(s, root), ErrNoLegalMoves
	}

	root.children = make([]*BoardNode, len(moves))
	for i, move := range moves {
		root.children[i] = s.newNode(pos.Play(move), move, true)
	}

	if c.goroutines > 1 {
		var g errgroup.Group
		g.SetLimit(c.goroutines)
		for _, child := range root.children {
			child := child // per-iteration copy (go.mod targets pre-1.22 loop semantics)
			g.Go(func() error {
				s.expand(child, c.depth-1, 1)
				return nil
			})
		}
		// Every subtree must be scored before the root is combined
		if err := g.Wait(); err != nil {
			c.lastNodeCount = int(s.nodes.Load())
			return nil, c.complete(s, root), err
		}
	} else {
		for _, child := range root.children {
			s.expand(child, c.depth-1, 1)
		}
	}
	root.score = s.combine(root)

	c.lastNodeCount = int(s.nodes.Load())
	return root, c.complete(s, root), nil
}

func (c *Computer) complete(s *search, root *BoardNode) metrics.SearchMetric {
	metric := c.metrics.Complete()
	metric.Depth = c.depth
	metric.Goroutines = c.goroutines
	metric.Nodes = int(s.nodes.Load())
	metric.Score = root.score
	return metric
}

// search holds the state of one FindMove call, shared by the root workers
type search struct {
	team     game.Team
	evaluate game.Evaluate
	metrics  metrics.Collector
	nodes    atomic.Int64
}

func (s *search) newNode(pos game.Position, move game.Move, hasMove bool) *BoardNode {
	s.nodes.Add(1)
	s.metrics.AddNode()
	return &BoardNode{position: pos, move: move, hasMove: hasMove}
}

// expand grows node, ply moves below the root, to the given remaining depth
// and scores it
func (s *search) expand(node *BoardNode, depth, ply int) {
	pos := node.position

	if pos.Board.Count(pos.Turn.Opponent()) == 0 {
		node.score = s.outcome(pos.Turn, ply)
		s.metrics.AddTerminal()
		return
	}

	if depth == 0 {
		if pos.HasMoves() {
			node.score = s.evaluate(pos.Board, s.team)
			s.metrics.AddLeaf()
		} else {
			node.score = s.outcome(pos.Turn.Opponent(), ply)
			s.metrics.AddTerminal()
		}
		return
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 { // The mover is stuck and loses
		node.score = s.outcome(pos.Turn.Opponent(), ply)
		s.metrics.AddTerminal()
		return
	}

	node.children = make([]*BoardNode, len(moves))
	for i, move := range moves {
		node.children[i] = s.newNode(pos.Play(move), move, true)
	}
	for _, child := range node.children {
		s.expand(child, depth-1, ply+1)
	}
	node.score = s.combine(node)
}

// combine maximises on the computer's plies and minimises on the opponent's
func (s *search) combine(node *BoardNode) int {
	maximise := node.position.Turn == s.team
	score := node.children[0].score
	for _, child := range node.children[1:] {
		if maximise && child.score > score || !maximise && child.score < score {
			score = child.score
		}
	}
	return score
}

// outcome scores a game decided ply moves below the root. Nearer wins score
// higher and nearer losses lower.
func (s *search) outcome(winner game.Team, ply int) int {
	if winner == s.team {
		return WinScore - ply
	}
	return -(WinScore - ply)
}
