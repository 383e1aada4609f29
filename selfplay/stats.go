package selfplay

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"text/tabwriter"
	"time"

	"github.com/reversibot/reversibot/reversi"
)

type PlayerStats struct {
	Wins    int
	OneWins int
	TwoWins int

	Moves int
	Time  time.Duration
	// Sum over games of this player's final piece count minus the
	// opponent's.
	Margin int
}

func (p *PlayerStats) AvgTime() time.Duration {
	if p.Moves == 0 {
		return 0
	}
	return p.Time / time.Duration(p.Moves)
}

func (p *PlayerStats) merge(o *PlayerStats) {
	p.Wins += o.Wins
	p.OneWins += o.OneWins
	p.TwoWins += o.TwoWins
	p.Moves += o.Moves
	p.Time += o.Time
	p.Margin += o.Margin
}

type Stats struct {
	Players  [2]PlayerStats
	One, Two int
	Ties     int
	Cutoff   int

	Games []Result `json:"-"`
}

// Count is the number of games tallied.
func (s *Stats) Count() int {
	return s.One + s.Two + s.Ties + s.Cutoff
}

// AvgMargin is player i's average final score difference.
func (s *Stats) AvgMargin(i int) float64 {
	n := s.Count()
	if n == 0 {
		return 0
	}
	return float64(s.Players[i].Margin) / float64(n)
}

func (s *Stats) Merge(o *Stats) {
	for i := range s.Players {
		s.Players[i].merge(&o.Players[i])
	}
	s.One += o.One
	s.Two += o.Two
	s.Ties += o.Ties
	s.Cutoff += o.Cutoff
	s.Games = append(s.Games, o.Games...)
}

func (s *Stats) add(r *Result) {
	p1 := r.P1Color
	margin := r.Final.Score(p1)
	s.Players[0].Margin += margin
	s.Players[1].Margin -= margin
	for i := range s.Players {
		s.Players[i].Time += r.time[i]
		s.Players[i].Moves += r.moves[i]
	}
	s.Games = append(s.Games, *r)

	if r.Cut {
		s.Cutoff++
		return
	}
	winner := r.Final.Winner()
	switch winner {
	case reversi.Empty:
		s.Ties++
		return
	case reversi.PlayerOne:
		s.One++
	case reversi.PlayerTwo:
		s.Two++
	}
	pst := &s.Players[0]
	if winner != p1 {
		pst = &s.Players[1]
	}
	pst.Wins++
	if winner == reversi.PlayerOne {
		pst.OneWins++
	} else {
		pst.TwoWins++
	}
}

// WriteTable prints the win grid and per-player averages.
func (s *Stats) WriteTable(out io.Writer, p1, p2 string) {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tone\ttwo\tsum\tavg-time\tavg-margin\n")
	for i, name := range []string{p1, p2} {
		p := &s.Players[i]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%.2f\n",
			name, p.OneWins, p.TwoWins, p.Wins, p.AvgTime(), s.AvgMargin(i))
	}
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\t\t\n", s.One, s.Two, s.One+s.Two)
	tw.Flush()
	fmt.Fprintf(out, "ties=%d cutoff=%d\n", s.Ties, s.Cutoff)
}

func binomprob(k, n int64, p float64) float64 {
	nk := big.NewFloat(0).SetInt(big.NewInt(0).Binomial(n, k))
	nk.Mul(nk, big.NewFloat(math.Pow(p, float64(k))))
	nk.Mul(nk, big.NewFloat(math.Pow(1-p, float64(n-k))))
	f, _ := nk.Float64()
	return f
}

// BinomTest is the one-sided probability of at least succ successes in
// succ+fail trials with success probability p.
func BinomTest(succ, fail int64, p float64) float64 {
	var r float64
	for t := succ; t <= fail+succ; t++ {
		r += binomprob(t, succ+fail, p)
	}
	return r
}
