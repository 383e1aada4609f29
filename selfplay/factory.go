package selfplay

import (
	"fmt"

	"github.com/reversibot/reversibot/ai"
	"github.com/reversibot/reversibot/ai/mcts"
)

type MinimaxFactory struct {
	Config  ai.MinimaxConfig
	Weights *ai.Weights
}

func (m *MinimaxFactory) GetPlayer(seed uint64) ai.Player {
	cfg := m.Config
	if m.Weights != nil {
		cfg.Evaluate = ai.MakeEvaluator(m.Weights)
	}
	return ai.NewMinimax(cfg)
}

func (m *MinimaxFactory) String() string {
	return fmt.Sprintf("minimax@%d", ai.NewMinimax(m.Config).Config().Depth)
}

type MCTSFactory struct {
	Config mcts.MCTSConfig
}

func (m *MCTSFactory) GetPlayer(seed uint64) ai.Player {
	cfg := m.Config
	cfg.Seed = seed
	return mcts.NewMonteCarlo(cfg)
}

func (m *MCTSFactory) String() string {
	n := m.Config.Playouts
	if n <= 0 {
		n = mcts.NewMonteCarlo(mcts.MCTSConfig{Seed: 1}).Config().Playouts
	}
	return fmt.Sprintf("mcts@%d", n)
}

type RandomFactory struct{}

func (RandomFactory) GetPlayer(seed uint64) ai.Player {
	return ai.NewRandom(seed)
}

func (RandomFactory) String() string {
	return "random"
}
