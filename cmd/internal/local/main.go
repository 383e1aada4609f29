package local

import (
	"bufio"
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/reversibot/reversibot/ai"
	"github.com/reversibot/reversibot/cli"
	"github.com/reversibot/reversibot/cmd/internal/opt"
	"github.com/reversibot/reversibot/notation"
	"github.com/reversibot/reversibot/reversi"
)

type Command struct {
	one   string
	two   string
	limit time.Duration
	board string

	unicode bool
	engines opt.Engines
}

func (*Command) Name() string     { return "local" }
func (*Command) Synopsis() string { return "Play Reversi from the command line" }
func (*Command) Usage() string {
	return `local [flags]

Play Reversi on the command-line, against a human or AI. Players are
human, minimax[:depth], mcts[:playouts] or rand[:seed].
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.one, "one", "human", "player one")
	flags.StringVar(&c.two, "two", "minimax", "player two")
	flags.DurationVar(&c.limit, "limit", time.Minute, "ai time limit")
	flags.StringVar(&c.board, "board", "", "start from this position instead of the standard opening")

	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	c.engines.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := bufio.NewReader(os.Stdin)
	var initial *reversi.Board
	if c.board != "" {
		b, err := notation.ParseBoard(c.board)
		if err != nil {
			log.Error().Err(err).Msg("-board")
			return subcommands.ExitUsageError
		}
		initial = b
	}
	one, err := c.parsePlayer(in, c.one)
	if err != nil {
		log.Error().Err(err).Msg("-one")
		return subcommands.ExitUsageError
	}
	two, err := c.parsePlayer(in, c.two)
	if err != nil {
		log.Error().Err(err).Msg("-two")
		return subcommands.ExitUsageError
	}
	st := &cli.CLI{
		Initial: initial,
		Out:     os.Stdout,
		One:     one,
		Two:     two,
		Glyphs:  glyphs(c.unicode),
	}
	st.Play()
	log.Info().Str("moves", notation.FormatMoves(st.Moves())).Msg("game over")
	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

type aiWrapper struct {
	limit time.Duration
	p     ai.Player
}

func (a *aiWrapper) GetMove(b *reversi.Board) reversi.Move {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(a.limit))
	defer cancel()
	return a.p.GetMove(ctx, b)
}

func (c *Command) parsePlayer(in *bufio.Reader, s string) (cli.Player, error) {
	if s == "human" {
		return cli.NewCLIPlayer(os.Stdout, in), nil
	}
	p, err := c.engines.Player(s)
	if err != nil {
		return nil, err
	}
	return &aiWrapper{c.limit, p}, nil
}
