package mcts

import (
	"github.com/rs/zerolog/log"

	"github.com/reversibot/reversibot/notation"
)

func (mc *MonteCarloAI) logCandidates(cands []Candidate) {
	for _, c := range cands {
		var rate float64
		if c.Playouts > 0 {
			rate = float64(c.Wins) / float64(c.Playouts)
		}
		log.Info().
			Str("move", notation.FormatMove(c.Move)).
			Int("n", c.Playouts).
			Int("w", c.Wins).
			Float64("rate", rate).
			Msg("[mcts] candidate")
	}
}
