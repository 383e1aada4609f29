package ai

import (
	"golang.org/x/net/context"

	"github.com/reversibot/reversibot/reversi"
)

// Player chooses a move for the side to move. It returns reversi.Pass
// when there is no legal move.
type Player interface {
	GetMove(ctx context.Context, b *reversi.Board) reversi.Move
}
