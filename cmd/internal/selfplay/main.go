package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/reversibot/reversibot/cmd/internal/opt"
	"github.com/reversibot/reversibot/notation"
	"github.com/reversibot/reversibot/reversi"
	"github.com/reversibot/reversibot/results"
	"github.com/reversibot/reversibot/selfplay"
)

type Command struct {
	p1   string
	p2   string
	seed uint64

	games  int
	cutoff int
	swap   bool
	board  string

	limit   time.Duration
	threads int

	summary string
	db      string
	verbose bool

	engines opt.Engines
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "minimax", "player 1 engine")
	flags.StringVar(&c.p2, "p2", "mcts", "player 2 engine")

	flags.Uint64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play")
	flags.IntVar(&c.cutoff, "cutoff", 0, "cut games off after how many placements (0 for none)")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.StringVar(&c.board, "board", "", "start every game from this position")
	flags.DurationVar(&c.limit, "limit", 0, "amount of time to search each move")
	flags.IntVar(&c.threads, "threads", 4, "number of games to run in parallel")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.StringVar(&c.db, "db", "", "record the summary in this sqlite database")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
	c.engines.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = uint64(time.Now().Unix())
	}
	p1, err := c.engines.Factory(c.p1)
	if err != nil {
		log.Error().Err(err).Msg("-p1")
		return subcommands.ExitUsageError
	}
	p2, err := c.engines.Factory(c.p2)
	if err != nil {
		log.Error().Err(err).Msg("-p2")
		return subcommands.ExitUsageError
	}
	var initial *reversi.Board
	if c.board != "" {
		if initial, err = notation.ParseBoard(c.board); err != nil {
			log.Error().Err(err).Msg("-board")
			return subcommands.ExitUsageError
		}
	}

	cfg := &selfplay.Config{
		Games:   c.games,
		Swap:    c.swap,
		Threads: c.threads,
		Seed:    c.seed,
		Cutoff:  c.cutoff,
		Limit:   c.limit,
		P1:      p1,
		P2:      p2,
		Initial: initial,
		Verbose: c.verbose,
	}
	st := selfplay.Simulate(ctx, cfg)
	m := results.FromStats(p1.String(), p2.String(), c.seed, &st)

	log.Info().
		Int("games", st.Count()).
		Uint64("seed", c.seed).
		Int("ties", st.Ties).
		Int("cutoff", st.Cutoff).
		Int("one", st.One).
		Int("two", st.Two).
		Dur("limit", c.limit).
		Msg("done")
	st.WriteTable(os.Stderr, p1.String(), p2.String())
	log.Info().Float64("p", m.PValue).Msg("one-sided binomial test")

	status := subcommands.ExitSuccess
	if c.summary != "" {
		if err := writeSummary(c.summary, p1.String(), p2.String(), c.limit, &st); err != nil {
			log.Error().Err(err).Msg("writing summary")
			status = subcommands.ExitFailure
		}
	}
	if c.db != "" {
		if err := record(c.db, m); err != nil {
			log.Error().Err(err).Str("db", c.db).Msg("recording matchup")
			status = subcommands.ExitFailure
		}
	}
	return status
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Limit   time.Duration
	Stats   *selfplay.Stats
}

func writeSummary(path, p1, p2 string, limit time.Duration, stats *selfplay.Stats) error {
	summary := Summary{
		Cmdline: os.Args,
		Player1: p1,
		Player2: p2,
		Limit:   limit,
		Stats:   stats,
	}
	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, bs, 0644), "write summary")
}

func record(path string, m *results.Matchup) error {
	repo, err := results.Open(path)
	if err != nil {
		return err
	}
	defer repo.Close()
	return repo.InsertMatchup(m)
}
