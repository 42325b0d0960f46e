package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	b := standardBoard(t)

	cases := []struct {
		name     string
		team     Team
		from, to Index
		want     Moveable
	}{
		{"forward diagonal step into an empty square", Black, NewIndex(5, 2), NewIndex(4, 1), Allowed},
		{"white steps down the board", White, NewIndex(2, 1), NewIndex(3, 2), Allowed},
		{"destination off the board", Black, NewIndex(5, 0), NewIndex(4, -1), OutOfBounds},
		{"source off the board", Black, NewIndex(8, 1), NewIndex(7, 0), OutOfBounds},
		{"out of bounds beats unplayable", Black, NewIndex(0, 0), NewIndex(-1, 1), OutOfBounds},
		{"unplayable source", Black, NewIndex(4, 0), NewIndex(3, 1), UnplayableSquare},
		{"unplayable destination", Black, NewIndex(5, 2), NewIndex(4, 2), UnplayableSquare},
		{"unplayable beats unoccupied", Black, NewIndex(4, 1), NewIndex(4, 2), UnplayableSquare},
		{"empty source", Black, NewIndex(4, 1), NewIndex(3, 2), UnoccupiedSrc},
		{"opponent's piece", Black, NewIndex(2, 1), NewIndex(3, 2), WrongTeamSrc},
		{"wrong team beats occupied destination", White, NewIndex(6, 1), NewIndex(5, 0), WrongTeamSrc},
		{"occupied destination", Black, NewIndex(6, 1), NewIndex(5, 0), OccupiedDest},
		{"straight move", Black, NewIndex(5, 2), NewIndex(3, 2), IllegalTrajectory},
		{"three diagonal steps", Black, NewIndex(6, 3), NewIndex(3, 0), IllegalTrajectory},
		{"jump over an empty square", Black, NewIndex(5, 2), NewIndex(3, 0), NoJumpablePiece},
		{"jump over own piece", Black, NewIndex(6, 1), NewIndex(4, 3), JumpingSameTeam},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, Validate(b, c.team, c.from, c.to))
		})
	}
}

func TestValidateDirection(t *testing.T) {
	t.Run("men cannot step backward", func(t *testing.T) {
		b := emptyBoard(t, 8, 8)
		place(t, b, 4, 3, Black, Man)
		place(t, b, 3, 4, White, Man)

		require.Equal(t, IllegalTrajectory, Validate(b, Black, NewIndex(4, 3), NewIndex(5, 2)))
		require.Equal(t, IllegalTrajectory, Validate(b, White, NewIndex(3, 4), NewIndex(2, 5)))
	})

	t.Run("men cannot jump backward", func(t *testing.T) {
		b := emptyBoard(t, 8, 8)
		place(t, b, 4, 3, Black, Man)
		place(t, b, 5, 4, White, Man)
		place(t, b, 3, 4, White, Man)

		require.Equal(t, IllegalTrajectory, Validate(b, Black, NewIndex(4, 3), NewIndex(6, 5)))
		require.Equal(t, IllegalTrajectory, Validate(b, White, NewIndex(5, 4), NewIndex(3, 2)))
		require.Equal(t, Allowed, Validate(b, Black, NewIndex(4, 3), NewIndex(2, 5)),
			"the black man jumps in its own forward direction")
	})

	t.Run("kings move both ways", func(t *testing.T) {
		b := emptyBoard(t, 8, 8)
		place(t, b, 4, 3, Black, King)
		place(t, b, 5, 4, White, Man)

		require.Equal(t, Allowed, Validate(b, Black, NewIndex(4, 3), NewIndex(5, 2)))
		require.Equal(t, Allowed, Validate(b, Black, NewIndex(4, 3), NewIndex(3, 4)))
		require.Equal(t, Allowed, Validate(b, Black, NewIndex(4, 3), NewIndex(6, 5)))
	})
}

func TestMoveTypeOf(t *testing.T) {
	moveType, ok := MoveTypeOf(NewIndex(5, 2), NewIndex(4, 1))
	require.True(t, ok)
	require.Equal(t, Simple, moveType)

	moveType, ok = MoveTypeOf(NewIndex(5, 2), NewIndex(3, 4))
	require.True(t, ok)
	require.Equal(t, Jump, moveType)

	_, ok = MoveTypeOf(NewIndex(5, 2), NewIndex(5, 2))
	require.False(t, ok)

	_, ok = MoveTypeOf(NewIndex(5, 2), NewIndex(4, 2))
	require.False(t, ok)
}
