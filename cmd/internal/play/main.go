package play

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/reversibot/reversibot/cmd/internal/opt"
	"github.com/reversibot/reversibot/host"
	"github.com/reversibot/reversibot/host/bot"
	"github.com/reversibot/reversibot/reversi"
)

type Command struct {
	host    string
	player  int
	engine  string
	limit   time.Duration
	engines opt.Engines
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Connect to a game host and play one game" }
func (*Command) Usage() string {
	return `play [flags]

Connect to the game host as player 1 or 2 and play until the host
reports the game over. Player n connects to port 3333+n.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.host, "host", "localhost", "game host to connect to")
	flags.IntVar(&c.player, "player", 1, "which player to play (1 or 2)")
	flags.StringVar(&c.engine, "engine", "minimax", "engine: minimax[:depth], mcts[:playouts], rand[:seed]")
	flags.DurationVar(&c.limit, "limit", 0, "time limit per move (0 for none)")
	c.engines.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := c.engines.Player(c.engine)
	if err != nil {
		log.Error().Err(err).Msg("-engine")
		return subcommands.ExitUsageError
	}
	client, err := host.Dial(ctx, c.host, c.player)
	if err != nil {
		log.Error().Err(err).Str("host", c.host).Int("player", c.player).Msg("connect")
		return subcommands.ExitFailure
	}
	defer client.Close()
	log.Info().Str("greeting", client.Greeting).Msg("connected")

	g := &bot.Game{
		ID:     fmt.Sprintf("%s:%d", c.host, host.BasePort+c.player),
		Color:  reversi.Color(c.player),
		Player: p,
		Limit:  c.limit,
	}
	if err := bot.PlayGame(ctx, client, g); err != nil {
		log.Error().Err(err).Str("game-id", g.ID).Msg("game aborted")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
