package bot

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"

	"github.com/reversibot/reversibot/ai"
	"github.com/reversibot/reversibot/host"
	"github.com/reversibot/reversibot/notation"
	"github.com/reversibot/reversibot/reversi"
)

var ErrBadMove = errors.New("engine returned an illegal move")

type Client interface {
	ReadState(ctx context.Context) (*host.State, error)
	SendMove(m reversi.Move) error
}

// Game is one connection's worth of play against the host.
type Game struct {
	ID     string
	Color  reversi.Color
	Player ai.Player
	// Limit caps the time spent on a single decision. Zero means no
	// deadline.
	Limit time.Duration

	States int
	Moves  []reversi.Move
	Final  *reversi.Board
}

// PlayGame reads states from c until the host reports the game over,
// answering every state where it is g.Color's turn.
func PlayGame(ctx context.Context, c Client, g *Game) error {
	if !g.Color.IsPlayer() {
		return errors.Wrapf(reversi.ErrBadColor, "%s", g.Color)
	}
	log.Info().
		Str("game-id", g.ID).
		Str("color", g.Color.String()).
		Msg("new game")

	var last *reversi.Board
	for {
		st, err := c.ReadState(ctx)
		if err != nil {
			return errors.Wrapf(err, "game %s", g.ID)
		}
		g.States++
		if st.GameOver() {
			g.Final = last
			logResult(g, last)
			return nil
		}
		last = st.Board
		if st.Turn != g.Color {
			continue
		}
		if err := handleMove(ctx, c, g, st); err != nil {
			return err
		}
	}
}

func handleMove(ctx context.Context, c Client, g *Game, st *host.State) error {
	moveCtx := ctx
	if g.Limit > 0 {
		var cancel context.CancelFunc
		moveCtx, cancel = context.WithTimeout(ctx, g.Limit)
		defer cancel()
	}
	start := time.Now()
	m := g.Player.GetMove(moveCtx, st.Board)
	elapsed := time.Since(start)

	ev := log.Info().
		Str("game-id", g.ID).
		Int("turn", int(st.Turn)).
		Int("round", st.Round).
		Str("move", notation.FormatMove(m)).
		Dur("elapsed", elapsed)
	if m.IsPass() {
		ev.Msg("no legal move")
		return nil
	}
	if !st.Board.IsLegal(m, g.Color) {
		return errors.Wrapf(ErrBadMove, "%s on %s",
			notation.FormatMove(m), notation.FormatBoard(st.Board))
	}
	if err := c.SendMove(m); err != nil {
		return err
	}
	ev.Msg("my-move")
	g.Moves = append(g.Moves, m)
	return nil
}

func logResult(g *Game, b *reversi.Board) {
	ev := log.Info().
		Str("game-id", g.ID).
		Int("my-moves", len(g.Moves))
	if b != nil {
		one, two := b.Counts()
		ev = ev.Int("one", one).Int("two", two).Str("winner", b.Winner().String())
	}
	ev.Msg("game-over")
}
