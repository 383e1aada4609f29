package bot

import (
	"context"
	"testing"

	"github.com/reversibot/reversibot/host"
	"github.com/reversibot/reversibot/notation"
	"github.com/reversibot/reversibot/reversi"
)

// TestClient replays a scripted list of states and records every move
// sent back.
type TestClient struct {
	t      *testing.T
	states []*host.State
	sent   []reversi.Move
}

func (c *TestClient) ReadState(ctx context.Context) (*host.State, error) {
	if len(c.states) == 0 {
		c.t.Fatalf("script exhausted after %d moves", len(c.sent))
	}
	st := c.states[0]
	c.states = c.states[1:]
	return st, nil
}

func (c *TestClient) SendMove(m reversi.Move) error {
	c.sent = append(c.sent, m)
	return nil
}

type TestBotStatic struct {
	moves []reversi.Move
	calls int
}

func (b *TestBotStatic) GetMove(ctx context.Context, p *reversi.Board) reversi.Move {
	m := b.moves[b.calls]
	b.calls++
	return m
}

func state(turn reversi.Color, board string) *host.State {
	b, err := notation.ParseBoard(board)
	if err != nil {
		panic(err)
	}
	return &host.State{Turn: turn, Board: b}
}

func gameOver() *host.State {
	b, _ := reversi.FromGrid(nil, reversi.GameOver)
	return &host.State{Turn: reversi.GameOver, Board: b}
}
