package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/reversibot/reversibot/cmd/internal/analyze"
	"github.com/reversibot/reversibot/cmd/internal/local"
	"github.com/reversibot/reversibot/cmd/internal/matchups"
	"github.com/reversibot/reversibot/cmd/internal/play"
	"github.com/reversibot/reversibot/cmd/internal/selfplay"
)

var level = flag.String("log-level", "info", "log level (debug, info, warn, error)")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&local.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&matchups.Command{}, "")

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("-log-level")
	}
	zerolog.SetGlobalLevel(lvl)

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
