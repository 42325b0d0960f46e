// meta/meta.go
package meta

// DEFAULT_WIDTH and DEFAULT_HEIGHT define the standard board.
const DEFAULT_WIDTH = 8
const DEFAULT_HEIGHT = 8

// DEFAULT_PIECE_ROWS defines how many rows of men each team starts with.
const DEFAULT_PIECE_ROWS = 3

// DEFAULT_SEARCH_DEPTH defines the minimax depth in plies.
const DEFAULT_SEARCH_DEPTH = 4

// GO_ROUTINES defines the number of goroutines expanding the root of a search.
const GO_ROUTINES = 8

// MAX_TURNS caps self-play games, which end in a draw when reached.
const MAX_TURNS = 300
