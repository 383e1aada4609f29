package reversi_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reversibot/reversibot/reversi"
	"github.com/reversibot/reversibot/reversitest"
)

func TestFullBoardDraw(t *testing.T) {
	b := reversitest.Grid(reversi.PlayerOne,
		"11111111",
		"22222222",
		"11111111",
		"22222222",
		"11111111",
		"22222222",
		"11111111",
		"22222222",
	)
	require.True(t, b.Full())
	assert.True(t, b.GameOver())
	assert.Empty(t, b.LegalMoves())
	assert.Equal(t, reversi.Empty, b.Winner())
	assert.Equal(t, 0, b.Score(reversi.PlayerOne))
	assert.Equal(t, reversi.WinDetails{Winner: reversi.Empty, One: 32, Two: 32}, b.WinDetails())
}

func TestBothStuck(t *testing.T) {
	b := reversitest.Grid(reversi.PlayerTwo,
		"........",
		"........",
		"........",
		"...11...",
		"...11...",
		"........",
		"........",
		"........",
	)
	assert.False(t, b.HasMoves(reversi.PlayerOne))
	assert.False(t, b.HasMoves(reversi.PlayerTwo))
	assert.True(t, b.GameOver())
	assert.Equal(t, reversi.PlayerOne, b.Winner())
	assert.Equal(t, 4, b.Score(reversi.PlayerOne))
	assert.Equal(t, -4, b.Score(reversi.PlayerTwo))
}

func TestNotOver(t *testing.T) {
	assert.False(t, reversi.New().GameOver())
	assert.False(t, reversi.NewEmpty().GameOver())
	assert.Panics(t, func() { reversi.New().WinDetails() })
}

func TestHostGameOver(t *testing.T) {
	b, err := reversi.FromGrid(nil, reversi.GameOver)
	require.NoError(t, err)
	assert.True(t, b.GameOver())
	assert.Empty(t, b.LegalMoves())
}

func TestFromGridValidation(t *testing.T) {
	row := func(n int) []reversi.Color { return make([]reversi.Color, n) }
	rows := func(n, width int) [][]reversi.Color {
		out := make([][]reversi.Color, n)
		for i := range out {
			out[i] = row(width)
		}
		return out
	}
	bad := rows(8, 8)
	bad[2][5] = 7

	cases := []struct {
		grid [][]reversi.Color
		turn reversi.Color
		err  error
	}{
		{rows(7, 8), reversi.PlayerOne, reversi.ErrBadSize},
		{rows(8, 9), reversi.PlayerOne, reversi.ErrBadSize},
		{bad, reversi.PlayerOne, reversi.ErrBadCell},
		{rows(8, 8), reversi.Empty, reversi.ErrBadTurn},
		{rows(8, 8), reversi.Color(3), reversi.ErrBadTurn},
		{rows(8, 8), reversi.PlayerTwo, nil},
	}
	for i, tc := range cases {
		_, err := reversi.FromGrid(tc.grid, tc.turn)
		if tc.err == nil {
			assert.NoError(t, err, "%d", i)
			continue
		}
		if !errors.Is(err, tc.err) {
			t.Errorf("%d: err=%v, want %v", i, err, tc.err)
		}
	}
}

func TestGridIsCopy(t *testing.T) {
	b := reversi.New()
	g := b.Grid()
	g[0][0] = reversi.PlayerTwo
	assert.Equal(t, reversi.Empty, b.At(0, 0))
}
