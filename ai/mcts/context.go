package mcts

import (
	"golang.org/x/exp/rand"
	"golang.org/x/net/context"
)

type randKey struct{}

// WithRand attaches the RNG a rollout policy should draw from.
func WithRand(ctx context.Context, r *rand.Rand) context.Context {
	return context.WithValue(ctx, randKey{}, r)
}

// GetRand returns the RNG attached by WithRand, or nil if there is
// none. RandomPolicy requires one.
func GetRand(ctx context.Context) *rand.Rand {
	r, _ := ctx.Value(randKey{}).(*rand.Rand)
	return r
}
