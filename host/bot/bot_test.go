package bot

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reversibot/reversibot/ai"
	"github.com/reversibot/reversibot/host"
	"github.com/reversibot/reversibot/notation"
	"github.com/reversibot/reversibot/reversi"
	"github.com/reversibot/reversibot/reversitest"
)

const (
	start     = "x8/x8/x8/x3,2,1,x3/x3,1,2,x3/x8/x8/x8 1"
	afterD3   = "x8/x8/x3,1,x4/x3,1,1,x3/x3,1,2,x3/x8/x8/x8 2"
	afterD3C5 = "x8/x8/x3,1,x4/x3,1,1,x3/x2,2,2,2,x3/x8/x8/x8 1"
)

func TestBoardsAreConsistent(t *testing.T) {
	assert.Equal(t, afterD3, notation.FormatBoard(reversitest.Position("d3")))
	assert.Equal(t, afterD3C5, notation.FormatBoard(reversitest.Position("d3 c5")))
}

func TestPlayGame(t *testing.T) {
	c := &TestClient{t: t, states: []*host.State{
		state(reversi.PlayerOne, start),
		state(reversi.PlayerTwo, afterD3),
		state(reversi.PlayerOne, afterD3C5),
		gameOver(),
	}}
	p := &TestBotStatic{moves: reversitest.Moves("d3 f6")}
	g := &Game{ID: "t1", Color: reversi.PlayerOne, Player: p, Limit: time.Second}
	require.NoError(t, PlayGame(context.Background(), c, g))

	assert.Equal(t, reversitest.Moves("d3 f6"), c.sent)
	assert.Equal(t, c.sent, g.Moves)
	assert.Equal(t, 4, g.States)
	assert.Equal(t, 2, p.calls)
	require.NotNil(t, g.Final)
	assert.Equal(t, afterD3C5, notation.FormatBoard(g.Final))
}

func TestPlayGameRealEngine(t *testing.T) {
	c := &TestClient{t: t, states: []*host.State{
		state(reversi.PlayerOne, start),
		state(reversi.PlayerTwo, afterD3),
		gameOver(),
	}}
	g := &Game{ID: "t2", Color: reversi.PlayerTwo, Player: ai.NewMinimax(ai.MinimaxConfig{Depth: 2})}
	require.NoError(t, PlayGame(context.Background(), c, g))
	require.Len(t, c.sent, 1)
	b := reversitest.Position("d3")
	assert.True(t, b.IsLegal(c.sent[0], reversi.PlayerTwo))
}

func TestPlayGamePass(t *testing.T) {
	stuck := "x8/x8/x8/x3,1,1,x3/x3,1,1,x3/x8/x8/x8 2"
	c := &TestClient{t: t, states: []*host.State{
		state(reversi.PlayerTwo, stuck),
		gameOver(),
	}}
	g := &Game{ID: "t3", Color: reversi.PlayerTwo, Player: ai.NewRandom(1)}
	require.NoError(t, PlayGame(context.Background(), c, g))
	assert.Empty(t, c.sent)
}

func TestPlayGameBadMove(t *testing.T) {
	c := &TestClient{t: t, states: []*host.State{
		state(reversi.PlayerOne, start),
	}}
	p := &TestBotStatic{moves: reversitest.Moves("a1")}
	g := &Game{ID: "t4", Color: reversi.PlayerOne, Player: p}
	err := PlayGame(context.Background(), c, g)
	assert.Equal(t, ErrBadMove, errors.Cause(err))
	assert.Empty(t, c.sent)
}

func TestPlayGameBadColor(t *testing.T) {
	g := &Game{Color: reversi.Empty}
	err := PlayGame(context.Background(), &TestClient{t: t}, g)
	assert.Equal(t, reversi.ErrBadColor, errors.Cause(err))
}
