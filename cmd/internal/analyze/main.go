package analyze

import (
	"context"
	"flag"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/reversibot/reversibot/cmd/internal/opt"
	"github.com/reversibot/reversibot/notation"
	"github.com/reversibot/reversibot/reversi"
)

type Command struct {
	/* Global options / output options */
	quiet      bool
	monteCarlo bool
	cpuProfile string

	/* Options to select which position to analyze */
	variation string

	/* Options which apply to all engines  */
	timeLimit time.Duration

	/* Options for the minimax engine  */
	eval    bool
	explain bool

	engines opt.Engines
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Evaluate a position given in board notation" }
func (*Command) Usage() string {
	return `analyze [options] [BOARD]

Evaluate a position using a configurable engine. BOARD is in the
notation printed by the other commands, e.g.

  x8/x8/x8/x3,2,1,x3/x3,1,2,x3/x8/x8/x8 1

and defaults to the standard opening. Use -variation to play additional
moves before analysis.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.quiet, "quiet", false, "don't print board diagrams")
	flags.BoolVar(&c.monteCarlo, "mcts", false, "Use the rollout engine")
	flags.StringVar(&c.cpuProfile, "cpuprofile", "", "write CPU profile")

	flags.StringVar(&c.variation, "variation", "", "apply the listed moves before analysis")

	flags.DurationVar(&c.timeLimit, "limit", 0, "limit of how much time to use (0 for none)")
	flags.BoolVar(&c.eval, "evaluate", false, "only show static evaluation")
	flags.BoolVar(&c.explain, "explain", false, "explain scoring")

	c.engines.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b := reversi.New()
	if flag.NArg() > 0 {
		var err error
		b, err = notation.ParseBoard(strings.Join(flag.Args(), " "))
		if err != nil {
			log.Error().Err(err).Msg("parse board")
			return subcommands.ExitUsageError
		}
	}
	if c.variation != "" {
		var err error
		if b, err = applyVariation(b, c.variation); err != nil {
			log.Error().Err(err).Msg("-variation")
			return subcommands.ExitUsageError
		}
	}

	if c.cpuProfile != "" {
		f, err := os.OpenFile(c.cpuProfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			log.Error().Err(err).Str("path", c.cpuProfile).Msg("open cpu-profile")
			return subcommands.ExitFailure
		}
		pprof.StartCPUProfile(f)
		defer f.Close()
		defer pprof.StopCPUProfile()
	}

	an, err := c.buildAnalysis()
	if err != nil {
		log.Error().Err(err).Msg("configure engine")
		return subcommands.ExitUsageError
	}
	if c.timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeLimit)
		defer cancel()
	}
	an.Analyze(ctx, os.Stdout, b)
	return subcommands.ExitSuccess
}

func applyVariation(b *reversi.Board, variant string) (*reversi.Board, error) {
	ms, err := notation.ParseMoves(variant)
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		if m.IsPass() {
			b = b.Pass()
			continue
		}
		if !b.IsLegal(m, b.ToMove()) {
			return nil, errIllegal(m)
		}
		if b, err = b.Move(m, b.ToMove()); err != nil {
			return nil, err
		}
	}
	return b, nil
}
