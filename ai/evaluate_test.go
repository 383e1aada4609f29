package ai

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reversibot/reversibot/reversi"
	"github.com/reversibot/reversibot/reversitest"
)

func componentBoard() *reversi.Board {
	return reversitest.Grid(reversi.PlayerOne,
		"1......2",
		"2.......",
		"........",
		"...12...",
		"...21...",
		"........",
		".......1",
		"1.1.....",
	)
}

func TestComponents(t *testing.T) {
	b := componentBoard()
	cases := []struct {
		name string
		fn   func(*reversi.Board, reversi.Color) int64
		one  int64
	}{
		{"corners", Corners, 1},
		{"edges", Edges, 1},
		{"material", Material, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.one, tc.fn(b, reversi.PlayerOne), tc.name)
		assert.Equal(t, -tc.one, tc.fn(b, reversi.PlayerTwo), tc.name)
	}

	mob := int64(len(b.LegalMovesFor(reversi.PlayerOne)) - len(b.LegalMovesFor(reversi.PlayerTwo)))
	assert.Equal(t, mob, Mobility(b, reversi.PlayerOne, false))
	assert.Equal(t, -mob, Mobility(b, reversi.PlayerTwo, false))

	want := 50*1 + 10*1 + 5*mob + 2
	assert.Equal(t, want, DefaultEvaluate(b, reversi.PlayerOne))
	assert.Equal(t, -want, DefaultEvaluate(b, reversi.PlayerTwo))
}

func TestEvaluateIsPure(t *testing.T) {
	b := componentBoard()
	before := b.Grid()
	v1 := DefaultEvaluate(b, reversi.PlayerOne)
	v2 := DefaultEvaluate(b, reversi.PlayerOne)
	assert.Equal(t, v1, v2)
	assert.Equal(t, before, b.Grid())
	assert.Equal(t, reversi.PlayerOne, b.ToMove())
}

func TestEvaluateTerminal(t *testing.T) {
	over, err := reversi.FromGrid(componentBoard().Grid(), reversi.GameOver)
	require.NoError(t, err)
	assert.Equal(t, int64(0), DefaultEvaluate(over, reversi.PlayerOne))
	assert.Equal(t, int64(0), DefaultEvaluate(reversi.NewEmpty(), reversi.PlayerOne))
	assert.Equal(t, int64(0), DefaultEvaluate(reversi.New(), reversi.PlayerOne))
}

func TestProbeMobility(t *testing.T) {
	b := reversi.New()
	probe := probeBoard(b, reversi.PlayerTwo)
	assert.Equal(t, reversi.PlayerTwo, probe.At(0, 0))
	assert.Equal(t, reversi.Empty, b.At(0, 0), "probe mutated board")
	assert.Equal(t, 1, probe.Count(reversi.PlayerTwo)-b.Count(reversi.PlayerTwo))

	assert.Equal(t, int64(0), Mobility(b, reversi.PlayerOne, true))

	w := DefaultWeights
	w.ProbeMobility = true
	eval := MakeEvaluator(&w)
	assert.Equal(t, int64(0), eval(b, reversi.PlayerOne))
}

func TestWeightsAreCopied(t *testing.T) {
	w := DefaultWeights
	eval := MakeEvaluator(&w)
	b := componentBoard()
	before := eval(b, reversi.PlayerOne)
	w.Corner = 0
	assert.Equal(t, before, eval(b, reversi.PlayerOne))
}

func TestExplainScore(t *testing.T) {
	var buf bytes.Buffer
	b := componentBoard()
	ExplainScore(&DefaultWeights, &buf, b, reversi.PlayerOne)
	out := buf.String()
	for _, name := range []string{"corners", "edges", "mobility", "material", "total"} {
		assert.True(t, strings.Contains(out, name), "missing %s in %q", name, out)
	}
}
