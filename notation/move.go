package notation

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/reversibot/reversibot/reversi"
)

// ParseMove parses a move like `d4` (column d, row index 3) or `pass`.
func ParseMove(s string) (reversi.Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "pass" {
		return reversi.Pass, nil
	}
	if len(s) != 2 {
		return reversi.Move{}, errors.Errorf("bad move: %q", s)
	}
	col := int(s[0]) - 'a'
	row := int(s[1]) - '1'
	m := reversi.Move{Row: int8(row), Col: int8(col)}
	if col < 0 || col >= reversi.Size || row < 0 || row >= reversi.Size {
		return reversi.Move{}, errors.Errorf("bad move: %q", s)
	}
	return m, nil
}

func FormatMove(m reversi.Move) string {
	if m.IsPass() {
		return "pass"
	}
	if !m.OnBoard() {
		return m.String()
	}
	return fmt.Sprintf("%c%c", 'a'+m.Col, '1'+m.Row)
}

func FormatMoves(ms []reversi.Move) string {
	bits := make([]string, len(ms))
	for i, m := range ms {
		bits[i] = FormatMove(m)
	}
	return strings.Join(bits, " ")
}

// ParseMoves parses a whitespace-separated list of moves.
func ParseMoves(s string) ([]reversi.Move, error) {
	var out []reversi.Move
	for i, bit := range strings.Fields(s) {
		m, err := ParseMove(bit)
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
		out = append(out, m)
	}
	return out, nil
}
