package analyze

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/reversibot/reversibot/ai"
	"github.com/reversibot/reversibot/ai/mcts"
	"github.com/reversibot/reversibot/cli"
	"github.com/reversibot/reversibot/cmd/internal/opt"
	"github.com/reversibot/reversibot/notation"
	"github.com/reversibot/reversibot/reversi"
)

func errIllegal(m reversi.Move) error {
	return errors.Errorf("illegal move: %s", notation.FormatMove(m))
}

type Analyzer interface {
	Analyze(ctx context.Context, out io.Writer, b *reversi.Board)
}

type minimaxAnalysis struct {
	cmd     *Command
	ai      *ai.MinimaxAI
	weights ai.Weights
}

func (m *minimaxAnalysis) Analyze(ctx context.Context, out io.Writer, b *reversi.Board) {
	me := b.ToMove()
	if !m.cmd.quiet {
		cli.RenderBoard(nil, out, b)
		if m.cmd.explain {
			ai.ExplainScore(&m.weights, out, b, me)
		}
	}
	if m.cmd.eval {
		fmt.Fprintf(out, " Val=%d\n", ai.MakeEvaluator(&m.weights)(b, me))
		return
	}
	mv, val, st := m.ai.Analyze(ctx, b)
	fmt.Fprintf(out, "AI analysis:\n")
	fmt.Fprintf(out, " move=%s value=%d\n", notation.FormatMove(mv), val)
	fmt.Fprintf(out, " depth=%d visited=%d evaluated=%d terminal=%d cuts=%d time=%s\n",
		st.Depth, st.Visited, st.Evaluated, st.Terminal, st.Cuts, st.Elapsed)
	fmt.Fprintf(out, "[%s]\n", notation.FormatBoard(b))

	if mv.IsPass() || m.cmd.quiet {
		return
	}
	next, err := b.Move(mv, me)
	if err != nil {
		fmt.Fprintf(out, "engine returned a bad move: %v\n", err)
		return
	}
	fmt.Fprintln(out, "Resulting position:")
	cli.RenderBoard(nil, out, next)
	if m.cmd.explain {
		ai.ExplainScore(&m.weights, out, next, me)
	}
	fmt.Fprintln(out)
}

type monteCarloAnalysis struct {
	cmd *Command
	ai  *mcts.MonteCarloAI
}

func (m *monteCarloAnalysis) Analyze(ctx context.Context, out io.Writer, b *reversi.Board) {
	if !m.cmd.quiet {
		cli.RenderBoard(nil, out, b)
	}
	cands, st := m.ai.Analyze(ctx, b)
	fmt.Fprintf(out, "AI analysis:\n")
	for _, c := range cands {
		fmt.Fprintf(out, "  %s\tw=%d\tn=%d\n", notation.FormatMove(c.Move), c.Wins, c.Playouts)
	}
	fmt.Fprintf(out, "  move=%s playouts=%d plies=%d time=%s\n",
		notation.FormatMove(mcts.Best(cands)), st.Playouts, st.Plies, st.Elapsed)
}

func (c *Command) buildAnalysis() (Analyzer, error) {
	if c.monteCarlo {
		cfg, err := c.engines.MCTS.BuildConfig(c.engines.Minimax.Debug)
		if err != nil {
			return nil, err
		}
		return &monteCarloAnalysis{cmd: c, ai: mcts.NewMonteCarlo(cfg)}, nil
	}
	w, err := opt.ParseWeights(c.engines.Minimax.Weights)
	if err != nil {
		return nil, err
	}
	if c.engines.Minimax.Probe {
		w.ProbeMobility = true
	}
	cfg, err := c.engines.Minimax.BuildConfig()
	if err != nil {
		return nil, err
	}
	return &minimaxAnalysis{cmd: c, ai: ai.NewMinimax(cfg), weights: w}, nil
}
