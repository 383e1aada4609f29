package host

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/reversibot/reversibot/reversi"
)

const (
	// BasePort is the port for player 0; player n connects to
	// BasePort+n.
	BasePort = 3333

	gameOverTurn = -999
	headerLines  = 4
	stateLines   = headerLines + reversi.Size*reversi.Size
)

var (
	ErrShortState = errors.New("state message too short")
	ErrBadPlayer  = errors.New("player must be 1 or 2")
)

// State is one message from the host.
type State struct {
	Turn  reversi.Color
	Round int
	// Remaining clock for each player, in seconds.
	Times [2]float64
	Board *reversi.Board
}

func (s *State) GameOver() bool {
	return s.Turn == reversi.GameOver
}

func parseTurn(line string) (reversi.Color, error) {
	t, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, errors.Wrap(err, "turn")
	}
	switch t {
	case gameOverTurn:
		return reversi.GameOver, nil
	case 1, 2:
		return reversi.Color(t), nil
	}
	return 0, errors.Wrapf(reversi.ErrBadTurn, "turn=%d", t)
}

// ParseState decodes a state message already split into lines. The
// host numbers rows from the bottom, so host row r is board row 7-r.
func ParseState(lines []string) (*State, error) {
	if len(lines) == 0 {
		return nil, ErrShortState
	}
	turn, err := parseTurn(lines[0])
	if err != nil {
		return nil, err
	}
	if turn == reversi.GameOver {
		b, _ := reversi.FromGrid(nil, reversi.GameOver)
		return &State{Turn: turn, Board: b}, nil
	}
	if len(lines) < stateLines {
		return nil, errors.Wrapf(ErrShortState, "%d lines", len(lines))
	}

	st := &State{Turn: turn}
	if st.Round, err = strconv.Atoi(strings.TrimSpace(lines[1])); err != nil {
		return nil, errors.Wrap(err, "round")
	}
	for i := range st.Times {
		if st.Times[i], err = strconv.ParseFloat(strings.TrimSpace(lines[2+i]), 64); err != nil {
			return nil, errors.Wrapf(err, "time %d", i+1)
		}
	}

	grid := make([][]reversi.Color, reversi.Size)
	for r := range grid {
		grid[r] = make([]reversi.Color, reversi.Size)
	}
	for i, line := range lines[headerLines:stateLines] {
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, errors.Wrapf(err, "cell %d", i)
		}
		hr, c := i/reversi.Size, i%reversi.Size
		grid[reversi.Size-1-hr][c] = reversi.Color(v)
	}
	if st.Board, err = reversi.FromGrid(grid, turn); err != nil {
		return nil, err
	}
	return st, nil
}

// FormatMove encodes m the way the host expects: the host row then the
// column, each on its own line.
func FormatMove(m reversi.Move) string {
	return fmt.Sprintf("%d\n%d\n", reversi.Size-1-int(m.Row), m.Col)
}
