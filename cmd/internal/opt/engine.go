package opt

import (
	"flag"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/reversibot/reversibot/ai"
	"github.com/reversibot/reversibot/ai/mcts"
	"github.com/reversibot/reversibot/selfplay"
)

// Split breaks an engine spec like "minimax:4" into its name and
// argument.
func Split(s string) (string, string) {
	name, arg, _ := strings.Cut(s, ":")
	return name, arg
}

func Int(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "bad number %q", s)
	}
	return i, nil
}

// Engines bundles the flags of every engine so a command can build
// players from short specs: minimax[:depth], mcts[:playouts],
// rand[:seed].
type Engines struct {
	Minimax Minimax
	MCTS    MCTS
}

func (e *Engines) AddFlags(flags *flag.FlagSet) {
	e.Minimax.AddFlags(flags)
	e.MCTS.AddFlags(flags)
}

func (e *Engines) Factory(spec string) (selfplay.Factory, error) {
	name, arg := Split(spec)
	var n int
	if arg != "" {
		var err error
		if n, err = Int(arg); err != nil {
			return nil, errors.Wrapf(err, "engine %q", spec)
		}
	}
	switch name {
	case "minimax":
		cfg, err := e.Minimax.BuildConfig()
		if err != nil {
			return nil, err
		}
		if n > 0 {
			cfg.Depth = n
		}
		return &selfplay.MinimaxFactory{Config: cfg}, nil
	case "mcts":
		cfg, err := e.MCTS.BuildConfig(e.Minimax.Debug)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			cfg.Playouts = n
		}
		return &selfplay.MCTSFactory{Config: cfg}, nil
	case "rand", "random":
		return selfplay.RandomFactory{}, nil
	}
	return nil, errors.Errorf("unknown engine: %q", spec)
}

// Player builds a single player from spec. For rand the argument is the
// seed; for mcts without an explicit -mcts-seed it seeds from the
// clock.
func (e *Engines) Player(spec string) (ai.Player, error) {
	name, arg := Split(spec)
	if name == "rand" || name == "random" {
		var seed uint64
		if arg != "" {
			s, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "engine %q", spec)
			}
			seed = s
		}
		return ai.NewRandom(seed), nil
	}
	f, err := e.Factory(spec)
	if err != nil {
		return nil, err
	}
	if m, ok := f.(*selfplay.MCTSFactory); ok {
		return mcts.NewMonteCarlo(m.Config), nil
	}
	return f.GetPlayer(0), nil
}
