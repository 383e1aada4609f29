package mcts

import (
	"golang.org/x/net/context"

	"github.com/reversibot/reversibot/ai"
	"github.com/reversibot/reversibot/reversi"
)

// PolicyFunc picks the next move for the side to move during a
// playout. It is only called when that side has a legal move.
type PolicyFunc func(ctx context.Context, b *reversi.Board) reversi.Move

// RandomPolicy plays uniformly at random using the RNG from ctx.
func RandomPolicy(ctx context.Context, b *reversi.Board) reversi.Move {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return reversi.Pass
	}
	return moves[GetRand(ctx).Intn(len(moves))]
}

// NewMinimaxPolicy plays out games with a shallow minimax search. The
// playouts it produces are deterministic.
func NewMinimaxPolicy(depth int, w *ai.Weights) PolicyFunc {
	mm := ai.NewMinimax(ai.MinimaxConfig{
		Depth:    depth,
		Evaluate: ai.MakeEvaluator(w),
	})
	return func(ctx context.Context, b *reversi.Board) reversi.Move {
		m, _, _ := mm.Analyze(ctx, b)
		return m
	}
}
