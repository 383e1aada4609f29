package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/reversibot/reversibot/reversi"
)

// ParseBoard parses a board in the form
//
//	x8/x8/x8/x3,2,1,x3/x3,1,2,x3/x8/x8/x8 1
//
// Rows are listed from row 0 and separated by `/`. Each row is a
// comma-separated list of `1`, `2`, `x` (an empty cell) or `xN` (N
// empty cells). The final word is the side to move: `1`, `2`, or `-`
// if the game is over.
func ParseBoard(s string) (*reversi.Board, error) {
	words := strings.Fields(s)
	if len(words) != 2 {
		return nil, errors.Errorf("bad board %q: wrong number of words", s)
	}
	var turn reversi.Color
	switch words[1] {
	case "1":
		turn = reversi.PlayerOne
	case "2":
		turn = reversi.PlayerTwo
	case "-":
		turn = reversi.GameOver
	default:
		return nil, errors.Errorf("bad turn: %q", words[1])
	}

	rows := strings.Split(words[0], "/")
	grid := make([][]reversi.Color, 0, len(rows))
	for i, r := range rows {
		row, err := parseRow(r)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		grid = append(grid, row)
	}
	return reversi.FromGrid(grid, turn)
}

func parseRow(row string) ([]reversi.Color, error) {
	var out []reversi.Color
	for _, bit := range strings.Split(row, ",") {
		switch {
		case bit == "1":
			out = append(out, reversi.PlayerOne)
		case bit == "2":
			out = append(out, reversi.PlayerTwo)
		case strings.HasPrefix(bit, "x"):
			count := 1
			if len(bit) > 1 {
				n, err := strconv.Atoi(bit[1:])
				if err != nil || n < 1 {
					return nil, errors.Errorf("bad run: %q", bit)
				}
				count = n
			}
			for i := 0; i < count; i++ {
				out = append(out, reversi.Empty)
			}
		default:
			return nil, errors.Errorf("bad cell: %q", bit)
		}
	}
	return out, nil
}

func FormatBoard(b *reversi.Board) string {
	rows := make([]string, reversi.Size)
	for r := 0; r < reversi.Size; r++ {
		rows[r] = formatRow(b, r)
	}
	var turn string
	switch b.ToMove() {
	case reversi.PlayerOne:
		turn = "1"
	case reversi.PlayerTwo:
		turn = "2"
	default:
		turn = "-"
	}
	return fmt.Sprintf("%s %s", strings.Join(rows, "/"), turn)
}

func formatRow(b *reversi.Board, r int) string {
	var bits []string
	for c := 0; c < reversi.Size; {
		var i int
		for i = 0; c+i < reversi.Size && b.At(r, c+i) == reversi.Empty; i++ {
		}
		switch i {
		case 0:
			bits = append(bits, strconv.Itoa(int(b.At(r, c))))
			c++
		case 1:
			bits = append(bits, "x")
		default:
			bits = append(bits, fmt.Sprintf("x%d", i))
		}
		c += i
	}
	return strings.Join(bits, ",")
}
