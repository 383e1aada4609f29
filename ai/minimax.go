package ai

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"github.com/reversibot/reversibot/notation"
	"github.com/reversibot/reversibot/reversi"
)

const (
	MaxEval int64 = 1 << 30
	MinEval       = -MaxEval

	defaultDepth = 3
)

type Stats struct {
	Depth     int
	Visited   uint64
	Evaluated uint64
	Terminal  uint64
	Cuts      uint64

	Elapsed time.Duration
}

func (s *Stats) merge(o *Stats) {
	s.Visited += o.Visited
	s.Evaluated += o.Evaluated
	s.Terminal += o.Terminal
	s.Cuts += o.Cuts
}

type MinimaxConfig struct {
	Depth   int
	Debug   int
	Threads int

	// NoPrune disables alpha-beta cutoffs and searches the full tree.
	NoPrune bool

	Evaluate EvaluationFunc `json:"-"`
}

type MinimaxAI struct {
	cfg      MinimaxConfig
	evaluate EvaluationFunc
}

func NewMinimax(cfg MinimaxConfig) *MinimaxAI {
	m := &MinimaxAI{cfg: cfg}
	if m.cfg.Depth <= 0 {
		m.cfg.Depth = defaultDepth
	}
	if m.cfg.Threads <= 0 {
		m.cfg.Threads = 1
	}
	m.evaluate = cfg.Evaluate
	if m.evaluate == nil {
		m.evaluate = DefaultEvaluate
	}
	return m
}

func (m *MinimaxAI) Config() MinimaxConfig {
	return m.cfg
}

func (m *MinimaxAI) GetMove(ctx context.Context, b *reversi.Board) reversi.Move {
	mv, _, _ := m.Analyze(ctx, b)
	return mv
}

// Analyze returns the chosen move, its minimax value from the point of
// view of the side to move, and search statistics. If ctx carries a
// deadline the search deepens one ply at a time and returns the
// deepest completed result.
func (m *MinimaxAI) Analyze(ctx context.Context, b *reversi.Board) (reversi.Move, int64, Stats) {
	start := time.Now()
	me := b.ToMove()
	if !me.IsPlayer() {
		return reversi.Pass, 0, Stats{}
	}
	if mv, ok := b.OpeningMove(); ok {
		return mv, m.evaluate(b, me), Stats{}
	}
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return reversi.Pass, m.evaluate(b, me), Stats{}
	}

	var cancel int32
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			atomic.StoreInt32(&cancel, 1)
		case <-done:
		}
	}()

	first := m.cfg.Depth
	if _, limited := ctx.Deadline(); limited {
		first = 1
	}

	best := moves[0]
	var v int64
	var st Stats
	for depth := first; depth <= m.cfg.Depth; depth++ {
		dstart := time.Now()
		mv, val, dst, ok := m.searchRoot(b, moves, depth, &cancel)
		st.merge(&dst)
		if !ok {
			if m.cfg.Debug > 0 {
				log.Info().Int("depth", depth).Msg("[minimax] time cutoff")
			}
			break
		}
		best, v = mv, val
		st.Depth = depth
		if m.cfg.Debug > 0 {
			log.Info().
				Int("depth", depth).
				Int64("val", v).
				Str("move", notation.FormatMove(best)).
				Dur("time", time.Since(dstart)).
				Uint64("evaluated", dst.Evaluated).
				Uint64("cuts", dst.Cuts).
				Msg("[minimax] deepen")
		}
	}
	st.Elapsed = time.Since(start)
	return best, v, st
}

type searcher struct {
	ai     *MinimaxAI
	root   reversi.Color
	cancel *int32
	st     Stats
}

func (m *MinimaxAI) searchRoot(
	b *reversi.Board,
	moves []reversi.Move,
	depth int,
	cancel *int32) (reversi.Move, int64, Stats, bool) {
	if m.cfg.Threads > 1 {
		return m.searchRootParallel(b, moves, depth, cancel)
	}
	s := &searcher{ai: m, root: b.ToMove(), cancel: cancel}
	α := MinEval - 1
	best := moves[0]
	var bestV int64
	for i, mv := range moves {
		child := mustMove(b, mv, s.root)
		v := s.minimax(child, depth-1, false, α, MaxEval+1)
		if atomic.LoadInt32(cancel) != 0 {
			return best, bestV, s.st, false
		}
		if i == 0 || v > bestV {
			best, bestV = mv, v
		}
		if !m.cfg.NoPrune && v > α {
			α = v
		}
	}
	return best, bestV, s.st, true
}

// searchRootParallel searches each root move with a full window on its
// own goroutine and then picks the best in move order, so the result
// matches the sequential search.
func (m *MinimaxAI) searchRootParallel(
	b *reversi.Board,
	moves []reversi.Move,
	depth int,
	cancel *int32) (reversi.Move, int64, Stats, bool) {
	values := make([]int64, len(moves))
	stats := make([]Stats, len(moves))
	root := b.ToMove()

	var grp errgroup.Group
	grp.SetLimit(m.cfg.Threads)
	for i, mv := range moves {
		grp.Go(func() error {
			s := &searcher{ai: m, root: root, cancel: cancel}
			values[i] = s.minimax(mustMove(b, mv, root), depth-1, false, MinEval-1, MaxEval+1)
			stats[i] = s.st
			return nil
		})
	}
	grp.Wait()

	var st Stats
	for i := range stats {
		st.merge(&stats[i])
	}
	if atomic.LoadInt32(cancel) != 0 {
		return moves[0], 0, st, false
	}
	best, bestV := moves[0], values[0]
	for i := 1; i < len(moves); i++ {
		if values[i] > bestV {
			best, bestV = moves[i], values[i]
		}
	}
	return best, bestV, st, true
}

func (s *searcher) minimax(b *reversi.Board, depth int, maximizing bool, α, β int64) int64 {
	if atomic.LoadInt32(s.cancel) != 0 {
		return 0
	}
	mover := s.root
	if !maximizing {
		mover = s.root.Flip()
	}
	var moves []reversi.Move
	if depth > 0 {
		moves = b.LegalMovesFor(mover)
	}
	if len(moves) == 0 {
		s.st.Evaluated++
		if depth > 0 {
			s.st.Terminal++
		}
		return s.ai.evaluate(b, s.root)
	}

	s.st.Visited++
	prune := !s.ai.cfg.NoPrune
	if maximizing {
		v := MinEval - 1
		for _, m := range moves {
			if cv := s.minimax(mustMove(b, m, mover), depth-1, false, α, β); cv > v {
				v = cv
			}
			if v > α {
				α = v
			}
			if prune && β <= α {
				s.st.Cuts++
				break
			}
		}
		return v
	}
	v := MaxEval + 1
	for _, m := range moves {
		if cv := s.minimax(mustMove(b, m, mover), depth-1, true, α, β); cv < v {
			v = cv
		}
		if v < β {
			β = v
		}
		if prune && β <= α {
			s.st.Cuts++
			break
		}
	}
	return v
}

// mustMove applies a move taken from the board's own legal move list,
// which cannot fail.
func mustMove(b *reversi.Board, m reversi.Move, mover reversi.Color) *reversi.Board {
	next, err := b.Move(m, mover)
	if err != nil {
		panic(err)
	}
	return next
}
