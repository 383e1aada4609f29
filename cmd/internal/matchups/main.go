package matchups

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/reversibot/reversibot/results"
)

type Command struct{}

func (*Command) Name() string     { return "matchups" }
func (*Command) Synopsis() string { return "List recorded selfplay summaries" }
func (*Command) Usage() string {
	return `matchups DB

List every selfplay summary stored in the sqlite database DB.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) != 1 {
		log.Error().Msg("must supply a results database")
		return subcommands.ExitUsageError
	}
	repo, err := results.Open(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Msg("open")
		return subcommands.ExitFailure
	}
	defer repo.Close()
	ms, err := repo.Matchups()
	if err != nil {
		log.Error().Err(err).Msg("query")
		return subcommands.ExitFailure
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "id\ttime\tp1\tp2\tgames\tp1 wins\tp2 wins\tties\tp1 ms\tp2 ms\tp1 margin\tp\n")
	for _, m := range ms {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%.1f\t%.1f\t%.2f\t%.4f\n",
			m.ID, m.Time.Format("2006-01-02 15:04"), m.Player1, m.Player2,
			m.Games, m.P1Wins, m.P2Wins, m.Ties,
			m.P1AvgMillis, m.P2AvgMillis, m.P1AvgMargin, m.PValue)
	}
	tw.Flush()
	return subcommands.ExitSuccess
}
