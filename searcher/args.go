package searcher

import (
	"draught/experiments/metrics"
	"draught/game"

	"golang.org/x/exp/rand"
)

type Option func(c *Computer)

func WithDepth(depth int) Option {
	return func(c *Computer) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

// WithGoroutines expands the root's children on up to n goroutines
func WithGoroutines(n int) Option {
	return func(c *Computer) {
		if n > 0 {
			c.goroutines = n
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *Computer) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(c *Computer) {
		c.metrics = metrics.NewCollector()
	}
}

// WithPerfectChance plays the best move with probability p and a uniformly
// random legal move otherwise. Draws come from a source seeded with seed, so a
// given seed always yields the same choices. p outside [0, 1] is ignored.
func WithPerfectChance(p float64, seed uint64) Option {
	return func(c *Computer) {
		if p >= 0 && p <= 1 {
			c.chance = p
			c.rng = rand.New(rand.NewSource(seed))
		}
	}
}
