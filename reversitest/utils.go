package reversitest

import (
	"strings"

	"github.com/reversibot/reversibot/notation"
	"github.com/reversibot/reversibot/reversi"
)

func Move(s string) reversi.Move {
	m, e := notation.ParseMove(s)
	if e != nil {
		panic(e)
	}
	return m
}

func Moves(s string) []reversi.Move {
	if s == "" {
		return nil
	}
	var ms []reversi.Move
	for _, b := range strings.Split(s, " ") {
		ms = append(ms, Move(b))
	}
	return ms
}

func Board(s string) *reversi.Board {
	b, e := notation.ParseBoard(s)
	if e != nil {
		panic(e)
	}
	return b
}

// Position plays the space-separated moves from the standard opening,
// each by the side to move.
func Position(ms string) *reversi.Board {
	b := reversi.New()
	for _, m := range Moves(ms) {
		var e error
		if m.IsPass() {
			b = b.Pass()
			continue
		}
		if !b.IsLegal(m, b.ToMove()) {
			panic("illegal move: " + notation.FormatMove(m))
		}
		b, e = b.Move(m, b.ToMove())
		if e != nil {
			panic(e)
		}
	}
	return b
}

// Grid parses 8 lines of `.`, `1`, `2` into a board with toMove to
// play. It is easier to read in tests than the compact notation.
func Grid(toMove reversi.Color, rows ...string) *reversi.Board {
	grid := make([][]reversi.Color, len(rows))
	for r, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		for _, ch := range row {
			switch ch {
			case '.':
				grid[r] = append(grid[r], reversi.Empty)
			case '1':
				grid[r] = append(grid[r], reversi.PlayerOne)
			case '2':
				grid[r] = append(grid[r], reversi.PlayerTwo)
			default:
				panic("bad cell: " + string(ch))
			}
		}
	}
	b, e := reversi.FromGrid(grid, toMove)
	if e != nil {
		panic(e)
	}
	return b
}
