package selfplay

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"github.com/reversibot/reversibot/ai"
	"github.com/reversibot/reversibot/notation"
	"github.com/reversibot/reversibot/reversi"
)

// Factory builds a fresh player for each game.
type Factory interface {
	GetPlayer(seed uint64) ai.Player
	String() string
}

type Config struct {
	Games   int
	Swap    bool
	Threads int
	Seed    uint64
	// Cutoff stops a game after this many placements. Zero plays every
	// game to the end.
	Cutoff int
	Limit  time.Duration

	P1, P2  Factory
	Initial *reversi.Board

	Verbose bool
}

type gameSpec struct {
	i       int
	p1color reversi.Color
	seeds   [2]uint64
}

type Result struct {
	Index   int
	P1Color reversi.Color
	Final   *reversi.Board
	Moves   []reversi.Move
	Cut     bool

	// Indexed by player, not color.
	time  [2]time.Duration
	moves [2]int
}

// Simulate plays c.Games games between c.P1 and c.P2 and tallies the
// results. Games are returned in the order they were scheduled.
func Simulate(ctx context.Context, c *Config) Stats {
	var st Stats
	rc := make(chan Result)
	go startGames(ctx, c, rc)
	for r := range rc {
		if c.Verbose {
			one, two := r.Final.Counts()
			log.Info().
				Int("game", r.Index).
				Int("plies", len(r.Moves)).
				Str("p1", r.P1Color.String()).
				Str("winner", r.Final.Winner().String()).
				Int("one", one).
				Int("two", two).
				Bool("cut", r.Cut).
				Msg("game")
		}
		st.add(&r)
	}
	sort.Slice(st.Games, func(i, j int) bool {
		return st.Games[i].Index < st.Games[j].Index
	})
	return st
}

func startGames(ctx context.Context, c *Config, rc chan<- Result) {
	defer close(rc)
	threads := c.Threads
	if threads <= 0 {
		threads = 1
	}
	r := rand.New(rand.NewSource(c.Seed))
	var grp errgroup.Group
	grp.SetLimit(threads)
	for g := 0; g < c.Games; g++ {
		spec := gameSpec{i: g, p1color: reversi.PlayerOne}
		if c.Swap && g%2 == 1 {
			spec.p1color = reversi.PlayerTwo
		}
		spec.seeds[0], spec.seeds[1] = r.Uint64(), r.Uint64()
		grp.Go(func() error {
			rc <- playGame(ctx, c, spec)
			return nil
		})
	}
	grp.Wait()
}

func playGame(ctx context.Context, c *Config, g gameSpec) Result {
	players := [2]ai.Player{
		c.P1.GetPlayer(g.seeds[0]),
		c.P2.GetPlayer(g.seeds[1]),
	}
	res := Result{Index: g.i, P1Color: g.p1color}
	b := c.Initial
	if b == nil {
		b = reversi.New()
	}
	placed := 0
	for !b.GameOver() {
		if c.Cutoff > 0 && placed >= c.Cutoff {
			res.Cut = true
			break
		}
		if ctx.Err() != nil {
			res.Cut = true
			break
		}
		mover := b.ToMove()
		if !b.HasMoves(mover) {
			b = b.Pass()
			res.Moves = append(res.Moves, reversi.Pass)
			continue
		}
		who := 0
		if mover != g.p1color {
			who = 1
		}
		m, took := timedMove(ctx, c.Limit, players[who], b)
		res.time[who] += took
		res.moves[who]++
		next, err := b.Move(m, mover)
		if err != nil || !b.IsLegal(m, mover) {
			log.Error().
				Err(err).
				Int("game", g.i).
				Str("move", notation.FormatMove(m)).
				Str("board", notation.FormatBoard(b)).
				Msg("illegal move")
			res.Cut = true
			break
		}
		b = next
		placed++
		res.Moves = append(res.Moves, m)
	}
	res.Final = b
	return res
}

func timedMove(ctx context.Context, limit time.Duration, p ai.Player, b *reversi.Board) (reversi.Move, time.Duration) {
	if limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
	}
	start := time.Now()
	m := p.GetMove(ctx, b)
	return m, time.Since(start)
}
