package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/reversibot/reversibot/reversi"
	"github.com/reversibot/reversibot/reversitest"
)

type randomPlayer struct {
	r *rand.Rand
}

func (p *randomPlayer) GetMove(b *reversi.Board) reversi.Move {
	ms := b.LegalMoves()
	return ms[p.r.Intn(len(ms))]
}

type scripted struct {
	moves []reversi.Move
}

func (s *scripted) GetMove(b *reversi.Board) reversi.Move {
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m
}

func TestRenderBoard(t *testing.T) {
	var buf bytes.Buffer
	RenderBoard(nil, &buf, reversi.New())
	out := buf.String()
	assert.Contains(t, out, "[one to play]")
	assert.Contains(t, out, "pieces: one=2 two=2")
	lines := strings.Split(out, "\n")
	require.True(t, len(lines) > 6)
	assert.Equal(t, "  a b c d e f g h", strings.TrimRight(lines[2], " "))
	assert.Equal(t, "4 . . . 2 1 . . .", strings.TrimRight(lines[6], " "))
}

func TestRenderUnicode(t *testing.T) {
	var buf bytes.Buffer
	RenderBoard(&UnicodeGlyphs, &buf, reversi.New())
	assert.Contains(t, buf.String(), "●")
	assert.Contains(t, buf.String(), "○")
}

func TestPlayRandomGame(t *testing.T) {
	var buf bytes.Buffer
	c := &CLI{
		Out: &buf,
		One: &randomPlayer{rand.New(rand.NewSource(1))},
		Two: &randomPlayer{rand.New(rand.NewSource(2))},
	}
	end := c.Play()
	assert.True(t, end.GameOver())
	assert.Contains(t, buf.String(), "Game Over!")
	assert.NotEmpty(t, c.Moves())
}

func TestPlayRejectsIllegal(t *testing.T) {
	var buf bytes.Buffer
	initial := reversitest.Grid(reversi.PlayerOne,
		".2111111",
		"11111111",
		"11111111",
		"11111111",
		"22222222",
		"22222222",
		"22222222",
		"22222222",
	)
	c := &CLI{
		Out:     &buf,
		Initial: initial,
		One:     &scripted{reversitest.Moves("b1 pass a1")},
		Two:     &scripted{},
	}
	end := c.Play()
	assert.Equal(t, 2, strings.Count(buf.String(), "illegal move"))
	assert.Contains(t, buf.String(), "Draw.")
	assert.Equal(t, reversitest.Moves("a1"), c.Moves())
	one, two := end.Counts()
	assert.Equal(t, 32, one)
	assert.Equal(t, 32, two)
}

func TestPlayPasses(t *testing.T) {
	var buf bytes.Buffer
	// Two cannot move; one's only move is a1, after which neither side
	// can.
	initial := reversitest.Grid(reversi.PlayerTwo,
		".2111111",
		"........",
		"........",
		"...11...",
		"...11...",
		"........",
		"........",
		"........",
	)
	c := &CLI{
		Out:     &buf,
		Initial: initial,
		One:     &scripted{reversitest.Moves("a1")},
		Two:     &scripted{},
	}
	end := c.Play()
	assert.True(t, end.GameOver())
	assert.Contains(t, buf.String(), "two has no move and passes")
	assert.Contains(t, buf.String(), "one wins.")
	assert.Equal(t, []reversi.Move{reversi.Pass, reversitest.Move("a1")}, c.Moves())
}

func TestCLIPlayer(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("zz\n  d3 \n"))
	p := NewCLIPlayer(&out, in)
	m := p.GetMove(reversi.New())
	assert.Equal(t, reversi.Move{Row: 2, Col: 3}, m)
	assert.Contains(t, out.String(), "parse error")
	assert.Contains(t, out.String(), "one> ")
}
