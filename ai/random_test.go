package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reversibot/reversibot/reversi"
	"github.com/reversibot/reversibot/reversitest"
)

func TestRandomAI(t *testing.T) {
	b := reversitest.Position("d3")
	a, c := NewRandom(4), NewRandom(4)
	for i := 0; i < 20; i++ {
		m := a.GetMove(context.Background(), b)
		assert.True(t, b.IsLegal(m, b.ToMove()))
		assert.Equal(t, m, c.GetMove(context.Background(), b))
	}

	stuck := reversitest.Grid(reversi.PlayerTwo,
		"........",
		"........",
		"........",
		"...11...",
		"...11...",
		"........",
		"........",
		"........",
	)
	assert.True(t, a.GetMove(context.Background(), stuck).IsPass())
}

var _ Player = &RandomAI{}
var _ Player = &MinimaxAI{}
