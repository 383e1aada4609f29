package reversi

import (
	"fmt"

	"github.com/pkg/errors"
)

// Move is a cell coordinate, 0-indexed.
type Move struct {
	Row, Col int8
}

// Pass is returned by a decision policy when the side to move has no
// legal move.
var Pass = Move{Row: -1, Col: -1}

func (m Move) IsPass() bool {
	return m == Pass
}

func (m Move) OnBoard() bool {
	return onBoard(int(m.Row), int(m.Col))
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

var (
	ErrOffBoard = errors.New("move is off the board")
	ErrOccupied = errors.New("cell is occupied")
	ErrBadColor = errors.New("mover is not a player")
)

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func onBoard(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}

// run walks from (r,c) in direction d and returns the number of
// opponent cells that placing `me` at (r,c) would capture in that
// direction.
func (b *Board) run(r, c int, d [2]int, me Color) int {
	them := me.Flip()
	n := 0
	for {
		r += d[0]
		c += d[1]
		if !onBoard(r, c) {
			return 0
		}
		switch b.cells[r][c] {
		case them:
			n++
		case me:
			return n
		default:
			return 0
		}
	}
}

func (b *Board) captures(r, c int, me Color) bool {
	for _, d := range directions {
		if b.run(r, c, d, me) > 0 {
			return true
		}
	}
	return false
}

// IsLegal reports whether `me` may play at m.
func (b *Board) IsLegal(m Move, me Color) bool {
	r, c := int(m.Row), int(m.Col)
	if !onBoard(r, c) || b.cells[r][c] != Empty || !me.IsPlayer() {
		return false
	}
	if b.openingPhase() {
		return r >= 3 && r <= 4 && c >= 3 && c <= 4
	}
	return b.captures(r, c, me)
}

// LegalMoves returns the legal moves for the side to move, in
// row-major order. It is empty if the turn is forfeit or the game is
// over.
func (b *Board) LegalMoves() []Move {
	if !b.toMove.IsPlayer() {
		return nil
	}
	return b.LegalMovesFor(b.toMove)
}

// LegalMovesFor returns the moves `me` could make on this board,
// regardless of whose turn it is.
func (b *Board) LegalMovesFor(me Color) []Move {
	if !me.IsPlayer() {
		return nil
	}
	var out []Move
	if b.openingPhase() {
		for r := 3; r <= 4; r++ {
			for c := 3; c <= 4; c++ {
				if b.cells[r][c] == Empty {
					out = append(out, Move{Row: int8(r), Col: int8(c)})
				}
			}
		}
		return out
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] == Empty && b.captures(r, c, me) {
				out = append(out, Move{Row: int8(r), Col: int8(c)})
			}
		}
	}
	return out
}

// HasMoves is LegalMovesFor without the allocation.
func (b *Board) HasMoves(me Color) bool {
	if !me.IsPlayer() {
		return false
	}
	if b.openingPhase() {
		return true
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] == Empty && b.captures(r, c, me) {
				return true
			}
		}
	}
	return false
}

// Move places a piece for `mover` at m, flips every captured run and
// returns the resulting board with the opponent to move. Legality is
// not checked: a placement that captures nothing just adds the piece.
func (b *Board) Move(m Move, mover Color) (*Board, error) {
	r, c := int(m.Row), int(m.Col)
	if !onBoard(r, c) {
		return nil, errors.Wrapf(ErrOffBoard, "%s", m)
	}
	if b.cells[r][c] != Empty {
		return nil, errors.Wrapf(ErrOccupied, "%s", m)
	}
	if !mover.IsPlayer() {
		return nil, errors.Wrapf(ErrBadColor, "%s", mover)
	}
	next := *b
	next.cells[r][c] = mover
	for _, d := range directions {
		n := b.run(r, c, d, mover)
		for i := 1; i <= n; i++ {
			next.cells[r+i*d[0]][c+i*d[1]] = mover
		}
	}
	next.toMove = mover.Flip()
	return &next, nil
}
