package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("index out of bounds")
	ErrUnplayable           = errors.New("square is unplayable")
)

// Board is a width x height grid of squares stored row-major. A cell (r, c)
// is playable iff r+c is odd; this is fixed at construction.
//
// The top team starts on row 0 and advances toward the last row, its opponent
// starts on the last row and advances toward row 0.
type Board struct {
	cells  []Square
	width  int
	height int
	top    Team
}

// NewBoard lays men of the top team on the playable cells of the first
// pieceRows rows and men of the other team on the last pieceRows rows.
func NewBoard(width, height, pieceRows int, top Team) (*Board, error) {
	if pieceRows < 0 {
		return nil, fmt.Errorf("%w: negative piece rows %d", ErrInvalidConfiguration, pieceRows)
	}
	if 2*pieceRows >= height {
		return nil, fmt.Errorf("%w: %d piece rows overlap on a board of height %d", ErrInvalidConfiguration, pieceRows, height)
	}
	b, err := NewEmptyBoard(width, height, top)
	if err != nil {
		return nil, err
	}

	for i := range b.cells {
		if b.cells[i].State == Unplayable {
			continue
		}
		row := i / width
		switch {
		case row < pieceRows:
			b.cells[i] = occupied(NewPiece(top, Man))
		case row >= height-pieceRows:
			b.cells[i] = occupied(NewPiece(top.Opponent(), Man))
		}
	}
	return b, nil
}

// NewEmptyBoard returns a board with the checkerboard colouring and no pieces
func NewEmptyBoard(width, height int, top Team) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfiguration, width, height)
	}

	cells := make([]Square, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if (row+col)%2 == 0 {
				cells[row*width+col] = Square{State: Unplayable}
			}
		}
	}

	return &Board{
		cells:  cells,
		width:  width,
		height: height,
		top:    top,
	}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) Top() Team   { return b.top }

// NumCells returns width*height
func (b *Board) NumCells() int { return len(b.cells) }

func (b *Board) InBounds(idx Index) bool {
	return idx.Row >= 0 && idx.Row < b.height && idx.Col >= 0 && idx.Col < b.width
}

// Query returns the square at idx or ErrOutOfBounds
func (b *Board) Query(idx Index) (Square, error) {
	if !b.InBounds(idx) {
		return Square{}, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, idx, b.width, b.height)
	}
	return b.cells[b.offset(idx)], nil
}

// Cell returns the square at idx. Out of bounds indices are a caller bug and panic.
func (b *Board) Cell(idx Index) Square {
	if !b.InBounds(idx) {
		panic(fmt.Sprintf("cell %v out of bounds on %dx%d board", idx, b.width, b.height))
	}
	return b.cells[b.offset(idx)]
}

// Place puts p on a playable cell, replacing any occupant
func (b *Board) Place(idx Index, p Piece) error {
	if err := b.settable(idx); err != nil {
		return err
	}
	b.cells[b.offset(idx)] = occupied(p)
	return nil
}

// Clear empties a playable cell
func (b *Board) Clear(idx Index) error {
	if err := b.settable(idx); err != nil {
		return err
	}
	b.cells[b.offset(idx)] = Square{State: Empty}
	return nil
}

func (b *Board) settable(idx Index) error {
	sq, err := b.Query(idx)
	if err != nil {
		return err
	}
	if sq.State == Unplayable {
		return fmt.Errorf("%w: %v", ErrUnplayable, idx)
	}
	return nil
}

func (b *Board) offset(idx Index) int {
	return idx.Row*b.width + idx.Col
}

func (b *Board) index(offset int) Index {
	return Index{Row: offset / b.width, Col: offset % b.width}
}

// Copy returns an independent board
func (b *Board) Copy() *Board {
	cells := make([]Square, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		cells:  cells,
		width:  b.width,
		height: b.height,
		top:    b.top,
	}
}

// Equal reports whether both boards have the same geometry and squares
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height || b.top != other.top {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of pieces of the given team
func (b *Board) Count(team Team) int {
	n := 0
	for _, sq := range b.cells {
		if sq.State == Occupied && sq.Occupant.Team == team {
			n++
		}
	}
	return n
}

// Pieces returns the indices of the team's pieces in row-major order
func (b *Board) Pieces(team Team) []Index {
	indices := make([]Index, 0, b.Count(team))
	for i, sq := range b.cells {
		if sq.State == Occupied && sq.Occupant.Team == team {
			indices = append(indices, b.index(i))
		}
	}
	return indices
}

// Forward is the row delta of a man's advance
func (b *Board) Forward(team Team) int {
	if team == b.top {
		return 1
	}
	return -1
}

// PromotionRow is the row farthest from the team's starting side
func (b *Board) PromotionRow(team Team) int {
	if team == b.top {
		return b.height - 1
	}
	return 0
}

// String prints one line per row: '_' unplayable, '.' empty, b/w men, B/W kings
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) + b.height)
	for i, sq := range b.cells {
		switch sq.State {
		case Unplayable:
			sb.WriteByte('_')
		case Empty:
			sb.WriteByte('.')
		case Occupied:
			c := sq.Occupant.Team.Short()
			if sq.Occupant.Strength == Man {
				c += 'a' - 'A'
			}
			sb.WriteByte(c)
		}
		if (i+1)%b.width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
