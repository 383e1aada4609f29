package ai

import (
	"sync"

	"golang.org/x/exp/rand"
	"golang.org/x/net/context"

	"github.com/reversibot/reversibot/reversi"
)

// RandomAI plays a uniformly random legal move.
type RandomAI struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (r *RandomAI) GetMove(ctx context.Context, b *reversi.Board) reversi.Move {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return reversi.Pass
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return moves[r.r.Intn(len(moves))]
}

func NewRandom(seed uint64) *RandomAI {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}
