package searcher

import (
	"testing"

	"draught/game"

	"github.com/stretchr/testify/require"
)

func standardBoard(t *testing.T) *game.Board {
	t.Helper()
	b, err := game.NewBoard(8, 8, 3, game.White)
	require.NoError(t, err)
	return b
}

type piece struct {
	row, col int
	team     game.Team
	strength game.Strength
}

func customBoard(t *testing.T, width, height int, pieces ...piece) *game.Board {
	t.Helper()
	b, err := game.NewEmptyBoard(width, height, game.White)
	require.NoError(t, err)
	for _, p := range pieces {
		require.NoError(t, b.Place(game.NewIndex(p.row, p.col), game.NewPiece(p.team, p.strength)))
	}
	return b
}

func position(b *game.Board, turn game.Team) game.Position {
	return game.NewPosition(b, turn, game.NewStandardRules())
}

func TestChooseMove(t *testing.T) {
	t.Run("single legal move at depth 1", func(t *testing.T) {
		b := customBoard(t, 8, 8,
			piece{5, 0, game.Black, game.Man},
			piece{0, 7, game.White, game.Man},
		)

		move, nodes, err := ChooseMove(b, game.Black, 1)
		require.NoError(t, err)
		require.Equal(t, game.NewMove(game.NewIndex(5, 0), game.NewIndex(4, 1), game.Simple), move)
		require.Equal(t, 2, nodes, "root plus its only child")
	})

	t.Run("node counts on the opening position", func(t *testing.T) {
		_, nodes, err := ChooseMove(standardBoard(t), game.Black, 1)
		require.NoError(t, err)
		require.Equal(t, 1+7, nodes)

		_, nodes, err = ChooseMove(standardBoard(t), game.Black, 2)
		require.NoError(t, err)
		require.Equal(t, 1+7+49, nodes)
	})

	t.Run("rejects a non-positive depth", func(t *testing.T) {
		_, _, err := ChooseMove(standardBoard(t), game.Black, 0)
		require.ErrorIs(t, err, ErrInvalidDepth)
	})

	t.Run("no legal moves at the root", func(t *testing.T) {
		b := customBoard(t, 8, 8,
			piece{6, 1, game.White, game.Man},
			piece{7, 0, game.Black, game.Man},
			piece{7, 2, game.Black, game.Man},
		)

		_, nodes, err := ChooseMove(b, game.White, 3)
		require.ErrorIs(t, err, ErrNoLegalMoves)
		require.Equal(t, 1, nodes)
	})
}

func TestComputerDeterminism(t *testing.T) {
	for _, goroutines := range []int{1, 4} {
		c := NewComputer(game.Black, WithDepth(3), WithGoroutines(goroutines))
		pos := position(standardBoard(t), game.Black)

		move1, _, err := c.FindMove(pos)
		require.NoError(t, err)
		nodes1 := c.LastNodeCount()

		move2, _, err := c.FindMove(pos)
		require.NoError(t, err)
		nodes2 := c.LastNodeCount()

		require.Equal(t, move1, move2, "identical inputs should choose the identical move")
		require.Equal(t, nodes1, nodes2, "node count should be reset per call")
	}
}

func TestComputerMonotonicNodeCount(t *testing.T) {
	previous := 0
	for depth := 1; depth <= 4; depth++ {
		_, nodes, err := ChooseMove(standardBoard(t), game.White, depth)
		require.NoError(t, err)
		require.GreaterOrEqual(t, nodes, previous, "depth %d", depth)
		previous = nodes
	}
}

func TestComputerParallelMatchesSequential(t *testing.T) {
	pos := position(standardBoard(t), game.Black)

	sequential := NewComputer(game.Black, WithDepth(4))
	seqRoot, seqMetric, err := sequential.Search(pos)
	require.NoError(t, err)

	parallel := NewComputer(game.Black, WithDepth(4), WithGoroutines(8))
	parRoot, parMetric, err := parallel.Search(pos)
	require.NoError(t, err)

	require.Equal(t, seqMetric.Nodes, parMetric.Nodes)
	require.Equal(t, seqRoot.Score(), parRoot.Score())
	seqMove, _ := seqRoot.best().Move()
	parMove, _ := parRoot.best().Move()
	require.Equal(t, seqMove, parMove)
	require.Equal(t, 8, parMetric.Goroutines)
}

func TestComputerScores(t *testing.T) {
	t.Run("every capture scores the same material gain", func(t *testing.T) {
		// _ . _ . _
		// W _ W _ W
		// _ B _ B _
		// . _ . _ .
		b := customBoard(t, 5, 4,
			piece{1, 2, game.White, game.Man},
			piece{1, 0, game.White, game.Man},
			piece{1, 4, game.White, game.Man},
			piece{2, 1, game.Black, game.Man},
			piece{2, 3, game.Black, game.Man},
		)
		c := NewComputer(game.White, WithDepth(1))

		root, _, err := c.Search(position(b, game.White))
		require.NoError(t, err)

		scores := []int{}
		for _, child := range root.Children() {
			move, ok := child.Move()
			require.True(t, ok)
			require.Equal(t, game.Jump, move.Type)
			scores = append(scores, child.Score())
		}
		// Two men and a freshly crowned king against one man
		require.Equal(t, []int{3, 3, 3, 3}, scores)
		require.Equal(t, 3, root.Score())
	})

	t.Run("taking the last piece is a win", func(t *testing.T) {
		b := customBoard(t, 5, 4,
			piece{1, 0, game.White, game.Man},
			piece{1, 4, game.White, game.Man},
			piece{2, 1, game.Black, game.Man},
		)
		c := NewComputer(game.White, WithDepth(1))

		root, _, err := c.Search(position(b, game.White))
		require.NoError(t, err)

		require.Len(t, root.Children(), 2)
		require.Equal(t, WinScore-1, root.Children()[0].Score())
		require.Equal(t, 1, root.Children()[1].Score())

		move, _, err := c.FindMove(position(b, game.White))
		require.NoError(t, err)
		require.Equal(t, game.NewMove(game.NewIndex(1, 0), game.NewIndex(3, 2), game.Jump), move)
	})

	t.Run("an immediate win beats a later one", func(t *testing.T) {
		b := customBoard(t, 8, 8,
			piece{4, 3, game.Black, game.King},
			piece{3, 2, game.White, game.Man},
			piece{7, 0, game.Black, game.Man},
		)
		capture := game.NewMove(game.NewIndex(4, 3), game.NewIndex(2, 1), game.Jump)

		for depth := 1; depth <= 5; depth++ {
			move, _, err := ChooseMove(b, game.Black, depth)
			require.NoError(t, err)
			require.Equal(t, capture, move, "depth %d", depth)
		}

		root, _, err := NewComputer(game.Black, WithDepth(3)).Search(position(b, game.Black))
		require.NoError(t, err)
		require.Equal(t, WinScore-1, root.Score())
	})

	t.Run("deeper search sees the recapture", func(t *testing.T) {
		b := customBoard(t, 8, 8,
			piece{5, 2, game.Black, game.Man},
			piece{4, 3, game.White, game.Man},
			piece{2, 5, game.White, game.Man},
		)
		capture := game.NewMove(game.NewIndex(5, 2), game.NewIndex(3, 4), game.Jump)
		retreat := game.NewMove(game.NewIndex(5, 2), game.NewIndex(4, 1), game.Simple)

		move, _, err := ChooseMove(b, game.Black, 1)
		require.NoError(t, err)
		require.Equal(t, capture, move, "one ply only sees the capture")

		move, _, err = ChooseMove(b, game.Black, 2)
		require.NoError(t, err)
		require.Equal(t, retreat, move, "two plies see the losing recapture")
	})

	t.Run("ties go to the first move in enumeration order", func(t *testing.T) {
		flat := func(*game.Board, game.Team) int { return 0 }
		c := NewComputer(game.Black, WithDepth(2), WithEvaluationFn(flat))

		move, _, err := c.FindMove(position(standardBoard(t), game.Black))
		require.NoError(t, err)
		require.Equal(t, game.NewMove(game.NewIndex(5, 0), game.NewIndex(4, 1), game.Simple), move)
	})
}

func TestComputerTree(t *testing.T) {
	c := NewComputer(game.Black, WithDepth(3), WithMetrics())
	root, metric, err := c.Search(position(standardBoard(t), game.Black))
	require.NoError(t, err)

	_, hasMove := root.Move()
	require.False(t, hasMove, "root has no move")
	require.Equal(t, c.LastNodeCount(), root.Size())
	require.Equal(t, root.Size(), metric.Nodes)
	require.Equal(t, 3, metric.Depth)
	require.Positive(t, metric.Leaves)
	require.Equal(t, metric.Nodes, countInternal(root)+metric.Leaves+metric.Terminals)
}

// countInternal counts nodes with children, root included
func countInternal(n *BoardNode) int {
	if len(n.Children()) == 0 {
		return 0
	}
	count := 1
	for _, child := range n.Children() {
		count += countInternal(child)
	}
	return count
}

func TestComputerErrors(t *testing.T) {
	t.Run("refuses to search on the opponent's turn", func(t *testing.T) {
		c := NewComputer(game.White)
		_, _, err := c.FindMove(position(standardBoard(t), game.Black))
		require.ErrorIs(t, err, ErrWrongTurn)
	})

	t.Run("options ignore non-positive values", func(t *testing.T) {
		c := NewComputer(game.Black, WithDepth(0), WithGoroutines(-1), WithEvaluationFn(nil))
		require.Equal(t, 4, c.Depth())
		require.Equal(t, 1, c.goroutines)
		require.NotNil(t, c.evaluate)
		require.Equal(t, 1.0, c.chance)
	})

	t.Run("out of range perfect chances are ignored", func(t *testing.T) {
		c := NewComputer(game.Black, WithPerfectChance(1.5, 1), WithPerfectChance(-0.5, 1))
		require.Equal(t, 1.0, c.chance)
		require.Nil(t, c.rng)
	})
}

func TestPerfectChance(t *testing.T) {
	pos := position(standardBoard(t), game.Black)
	legal := pos.LegalMoves()

	play := func(p float64, seed uint64) []game.Move {
		c := NewComputer(game.Black, WithDepth(2), WithPerfectChance(p, seed))
		moves := make([]game.Move, 0, 12)
		for i := 0; i < 12; i++ {
			move, _, err := c.FindMove(pos)
			require.NoError(t, err)
			moves = append(moves, move)
		}
		return moves
	}

	t.Run("a fixed seed reproduces the same choices", func(t *testing.T) {
		require.Equal(t, play(0.5, 9), play(0.5, 9))
		require.Equal(t, play(0, 3), play(0, 3))
	})

	t.Run("imperfect choices are legal moves", func(t *testing.T) {
		for _, move := range play(0, 3) {
			require.Contains(t, legal, move)
		}
	})

	t.Run("a chance of one always plays the best move", func(t *testing.T) {
		best, _, err := ChooseMove(pos.Board, game.Black, 2)
		require.NoError(t, err)
		for _, move := range play(1, 3) {
			require.Equal(t, best, move)
		}
	})
}
