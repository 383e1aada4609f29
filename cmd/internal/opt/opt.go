package opt

import (
	"encoding/json"
	"flag"

	"github.com/pkg/errors"

	"github.com/reversibot/reversibot/ai"
	"github.com/reversibot/reversibot/ai/mcts"
)

type Minimax struct {
	Debug   int
	Depth   int
	Threads int
	NoPrune bool
	Probe   bool
	Weights string
	Conf    string
}

func (o *Minimax) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Debug, "debug", 0, "debug level")
	flags.IntVar(&o.Depth, "depth", 3, "minimax depth")
	flags.IntVar(&o.Threads, "search-threads", 1, "search root moves in parallel")
	flags.BoolVar(&o.NoPrune, "no-prune", false, "disable alpha-beta pruning")
	flags.BoolVar(&o.Probe, "probe-mobility", false, "count opponent mobility after a probe placement")
	flags.StringVar(&o.Weights, "weights", "", "JSON-encoded evaluation weights")
	flags.StringVar(&o.Conf, "conf", "", "JSON-encoded minimax config")
}

// ParseWeights applies a JSON override on top of the default weights.
func ParseWeights(js string) (ai.Weights, error) {
	w := ai.DefaultWeights
	if js == "" {
		return w, nil
	}
	if err := json.Unmarshal([]byte(js), &w); err != nil {
		return w, errors.Wrap(err, "parse weights")
	}
	return w, nil
}

func (o *Minimax) BuildConfig() (ai.MinimaxConfig, error) {
	w, err := ParseWeights(o.Weights)
	if err != nil {
		return ai.MinimaxConfig{}, err
	}
	if o.Probe {
		w.ProbeMobility = true
	}
	cfg := ai.MinimaxConfig{
		Depth:   o.Depth,
		Debug:   o.Debug,
		Threads: o.Threads,
		NoPrune: o.NoPrune,
	}
	if o.Conf != "" {
		if err := json.Unmarshal([]byte(o.Conf), &cfg); err != nil {
			return cfg, errors.Wrap(err, "parse conf")
		}
	}
	cfg.Evaluate = ai.MakeEvaluator(&w)
	return cfg, nil
}

type MCTS struct {
	Playouts int
	Threads  int
	Seed     uint64
	TieLoss  bool
	Policy   string
	Conf     string
}

func (o *MCTS) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Playouts, "playouts", 50, "playouts per candidate move")
	flags.IntVar(&o.Threads, "mcts-threads", 1, "candidate moves to simulate in parallel")
	flags.Uint64Var(&o.Seed, "mcts-seed", 0, "rollout seed (0 picks one)")
	flags.BoolVar(&o.TieLoss, "tie-loss", false, "score drawn playouts as losses")
	flags.StringVar(&o.Policy, "policy", "random", "rollout policy: random or minimax[:depth]")
	flags.StringVar(&o.Conf, "mcts-conf", "", "JSON-encoded MCTS config")
}

func (o *MCTS) BuildConfig(debug int) (mcts.MCTSConfig, error) {
	cfg := mcts.MCTSConfig{
		Debug:    debug,
		Playouts: o.Playouts,
		Threads:  o.Threads,
		Seed:     o.Seed,
	}
	if o.TieLoss {
		cfg.Ties = mcts.TieLoss
	}
	if o.Conf != "" {
		if err := json.Unmarshal([]byte(o.Conf), &cfg); err != nil {
			return cfg, errors.Wrap(err, "parse mcts conf")
		}
	}
	policy, err := ParsePolicy(o.Policy)
	if err != nil {
		return cfg, err
	}
	cfg.Policy = policy
	return cfg, nil
}

// ParsePolicy maps a rollout policy name to its implementation.
func ParsePolicy(s string) (mcts.PolicyFunc, error) {
	name, arg := Split(s)
	switch name {
	case "", "random":
		return mcts.RandomPolicy, nil
	case "minimax":
		depth := 1
		if arg != "" {
			var err error
			if depth, err = Int(arg); err != nil {
				return nil, errors.Wrapf(err, "policy %q", s)
			}
		}
		return mcts.NewMinimaxPolicy(depth, nil), nil
	}
	return nil, errors.Errorf("unknown rollout policy: %q", s)
}
