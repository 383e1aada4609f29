package mcts

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"github.com/reversibot/reversibot/notation"
	"github.com/reversibot/reversibot/reversi"
)

// TieRule decides how a drawn playout is scored.
type TieRule int

const (
	TieWin TieRule = iota
	TieLoss
)

func (t TieRule) String() string {
	if t == TieLoss {
		return "loss"
	}
	return "win"
}

const defaultPlayouts = 50

type MCTSConfig struct {
	Debug    int
	Playouts int
	Threads  int
	Seed     uint64
	Ties     TieRule

	Policy PolicyFunc `json:"-"`
}

// Candidate is one root move and the playouts run from it.
type Candidate struct {
	Move     reversi.Move
	Wins     int
	Playouts int
}

type Stats struct {
	Playouts int
	Plies    uint64
	Elapsed  time.Duration
}

type MonteCarloAI struct {
	cfg MCTSConfig

	mu sync.Mutex
	r  *rand.Rand
}

func NewMonteCarlo(cfg MCTSConfig) *MonteCarloAI {
	mc := &MonteCarloAI{cfg: cfg}
	if mc.cfg.Playouts <= 0 {
		mc.cfg.Playouts = defaultPlayouts
	}
	if mc.cfg.Threads <= 0 {
		mc.cfg.Threads = 1
	}
	if mc.cfg.Seed == 0 {
		mc.cfg.Seed = uint64(time.Now().UnixNano())
	}
	if mc.cfg.Policy == nil {
		mc.cfg.Policy = RandomPolicy
	}
	mc.r = rand.New(rand.NewSource(mc.cfg.Seed))
	return mc
}

func (mc *MonteCarloAI) Config() MCTSConfig {
	return mc.cfg
}

func (mc *MonteCarloAI) GetMove(ctx context.Context, b *reversi.Board) reversi.Move {
	cands, _ := mc.Analyze(ctx, b)
	return Best(cands)
}

// Best returns the candidate with the most wins, preferring the earliest
// on ties, or reversi.Pass if there are none.
func Best(cands []Candidate) reversi.Move {
	if len(cands) == 0 {
		return reversi.Pass
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Wins > best.Wins {
			best = c
		}
	}
	return best.Move
}

// Analyze runs the configured number of playouts after each legal
// move of the side to move. Candidates are returned in move order. A
// cancelled ctx stops the remaining playouts.
func (mc *MonteCarloAI) Analyze(ctx context.Context, b *reversi.Board) ([]Candidate, Stats) {
	start := time.Now()
	me := b.ToMove()
	if !me.IsPlayer() {
		return nil, Stats{}
	}
	if mv, ok := b.OpeningMove(); ok {
		return []Candidate{{Move: mv}}, Stats{}
	}
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return nil, Stats{}
	}

	seeds := make([]uint64, len(moves))
	mc.mu.Lock()
	for i := range seeds {
		seeds[i] = mc.r.Uint64()
	}
	mc.mu.Unlock()

	cands := make([]Candidate, len(moves))
	plies := make([]uint64, len(moves))
	var grp errgroup.Group
	grp.SetLimit(mc.cfg.Threads)
	for i, mv := range moves {
		cands[i].Move = mv
		grp.Go(func() error {
			child, err := b.Move(mv, me)
			if err != nil {
				return err
			}
			pctx := WithRand(ctx, rand.New(rand.NewSource(seeds[i])))
			for n := 0; n < mc.cfg.Playouts; n++ {
				if ctx.Err() != nil {
					break
				}
				win, p := mc.playout(pctx, child, me)
				cands[i].Playouts++
				plies[i] += p
				if win {
					cands[i].Wins++
				}
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		log.Error().Err(err).Msg("[mcts] apply root move")
	}

	var st Stats
	for i := range cands {
		st.Playouts += cands[i].Playouts
		st.Plies += plies[i]
	}
	st.Elapsed = time.Since(start)
	if mc.cfg.Debug > 0 {
		log.Info().
			Int("playouts", st.Playouts).
			Uint64("plies", st.Plies).
			Dur("time", st.Elapsed).
			Str("move", notation.FormatMove(Best(cands))).
			Msg("[mcts] analyzed")
	}
	if mc.cfg.Debug > 2 {
		mc.logCandidates(cands)
	}
	return cands, st
}

// playout plays b out to the end with the configured policy and
// reports whether me won, along with the number of plies played.
func (mc *MonteCarloAI) playout(ctx context.Context, b *reversi.Board, me reversi.Color) (bool, uint64) {
	var plies uint64
	for {
		mover := b.ToMove()
		if !b.HasMoves(mover) {
			if !b.HasMoves(mover.Flip()) {
				break
			}
			b = b.Pass()
			continue
		}
		next, err := b.Move(mc.cfg.Policy(ctx, b), mover)
		if err != nil {
			if mc.cfg.Debug > 3 {
				log.Debug().Err(err).Msg("[mcts] policy returned a bad move")
			}
			return false, plies
		}
		b = next
		plies++
	}
	switch s := b.Score(me); {
	case s > 0:
		return true, plies
	case s < 0:
		return false, plies
	}
	return mc.cfg.Ties == TieWin, plies
}
