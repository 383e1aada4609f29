package reversi

import (
	"github.com/pkg/errors"
)

// Size is the width and height of the board.
const Size = 8

var (
	ErrBadSize = errors.New("board must be 8x8")
	ErrBadCell = errors.New("invalid cell value")
	ErrBadTurn = errors.New("invalid side to move")
)

// Board is a snapshot of piece placement and the side to move. Boards
// are never modified once constructed; Move and Pass return new
// boards.
type Board struct {
	cells  [Size][Size]Color
	toMove Color
}

// New returns the standard opening position with PlayerOne to move.
func New() *Board {
	b := &Board{toMove: PlayerOne}
	b.cells[3][3], b.cells[4][4] = PlayerTwo, PlayerTwo
	b.cells[3][4], b.cells[4][3] = PlayerOne, PlayerOne
	return b
}

// NewEmpty returns a board with no pieces placed. Until the four center
// cells are filled only those cells are playable.
func NewEmpty() *Board {
	return &Board{toMove: PlayerOne}
}

// FromGrid builds a board from rows of cells, row 0 first. A nil grid
// is treated as an empty board, which is how the host reports a
// finished game.
func FromGrid(grid [][]Color, toMove Color) (*Board, error) {
	if !toMove.IsPlayer() && toMove != GameOver {
		return nil, errors.Wrapf(ErrBadTurn, "turn=%d", toMove)
	}
	b := &Board{toMove: toMove}
	if grid == nil {
		return b, nil
	}
	if len(grid) != Size {
		return nil, errors.Wrapf(ErrBadSize, "%d rows", len(grid))
	}
	for r, row := range grid {
		if len(row) != Size {
			return nil, errors.Wrapf(ErrBadSize, "row %d has %d cells", r, len(row))
		}
		for c, v := range row {
			if v != Empty && !v.IsPlayer() {
				return nil, errors.Wrapf(ErrBadCell, "(%d,%d)=%d", r, c, v)
			}
			b.cells[r][c] = v
		}
	}
	return b, nil
}

func (b *Board) At(row, col int) Color {
	return b.cells[row][col]
}

func (b *Board) ToMove() Color {
	return b.toMove
}

// Grid returns a copy of the cells, row 0 first.
func (b *Board) Grid() [][]Color {
	out := make([][]Color, Size)
	for r := range b.cells {
		out[r] = make([]Color, Size)
		copy(out[r], b.cells[r][:])
	}
	return out
}

func (b *Board) Count(c Color) int {
	n := 0
	for r := range b.cells {
		for _, v := range b.cells[r] {
			if v == c {
				n++
			}
		}
	}
	return n
}

// Counts returns the number of pieces held by each player.
func (b *Board) Counts() (one, two int) {
	for r := range b.cells {
		for _, v := range b.cells[r] {
			switch v {
			case PlayerOne:
				one++
			case PlayerTwo:
				two++
			}
		}
	}
	return one, two
}

func (b *Board) Full() bool {
	one, two := b.Counts()
	return one+two == Size*Size
}

func (b *Board) Equal(o *Board) bool {
	return b.cells == o.cells && b.toMove == o.toMove
}

// Pass hands the turn to the other player without placing a piece.
func (b *Board) Pass() *Board {
	next := *b
	next.toMove = b.toMove.Flip()
	return &next
}

// openingPhase reports whether any of the four center cells is still
// empty.
func (b *Board) openingPhase() bool {
	for r := 3; r <= 4; r++ {
		for c := 3; c <= 4; c++ {
			if b.cells[r][c] == Empty {
				return true
			}
		}
	}
	return false
}

// OpeningMove returns the first open center cell in row-major order,
// if the board is still in its opening phase.
func (b *Board) OpeningMove() (Move, bool) {
	for r := 3; r <= 4; r++ {
		for c := 3; c <= 4; c++ {
			if b.cells[r][c] == Empty {
				return Move{Row: int8(r), Col: int8(c)}, true
			}
		}
	}
	return Pass, false
}
