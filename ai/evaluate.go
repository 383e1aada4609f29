package ai

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/reversibot/reversibot/reversi"
)

type Weights struct {
	Corner   int64
	Edge     int64
	Mobility int64
	Material int64

	// ProbeMobility counts the opponent's mobility after a fixed probe
	// placement instead of on the position itself.
	ProbeMobility bool
}

var DefaultWeights = Weights{
	Corner:   50,
	Edge:     10,
	Mobility: 5,
	Material: 1,
}

// EvaluationFunc scores b from me's point of view. Higher is better
// for me.
type EvaluationFunc func(b *reversi.Board, me reversi.Color) int64

func MakeEvaluator(w *Weights) EvaluationFunc {
	if w == nil {
		w = &DefaultWeights
	}
	ws := *w
	return func(b *reversi.Board, me reversi.Color) int64 {
		return evaluate(&ws, b, me)
	}
}

var DefaultEvaluate = MakeEvaluator(&DefaultWeights)

var corners = [4][2]int{{0, 0}, {0, 7}, {7, 0}, {7, 7}}

func ownership(b *reversi.Board, r, c int, me reversi.Color) int64 {
	switch b.At(r, c) {
	case me:
		return 1
	case me.Flip():
		return -1
	}
	return 0
}

// Corners is the number of corners held by me minus those held by the
// opponent.
func Corners(b *reversi.Board, me reversi.Color) int64 {
	var n int64
	for _, c := range corners {
		n += ownership(b, c[0], c[1], me)
	}
	return n
}

// Edges is the same count over the 28 non-corner edge cells.
func Edges(b *reversi.Board, me reversi.Color) int64 {
	var n int64
	for i := 1; i < reversi.Size-1; i++ {
		n += ownership(b, 0, i, me)
		n += ownership(b, reversi.Size-1, i, me)
		n += ownership(b, i, 0, me)
		n += ownership(b, i, reversi.Size-1, me)
	}
	return n
}

// Mobility is me's legal move count minus the opponent's.
func Mobility(b *reversi.Board, me reversi.Color, probe bool) int64 {
	mine := len(b.LegalMovesFor(me))
	var theirs int
	if probe {
		theirs = len(probeBoard(b, me.Flip()).LegalMovesFor(me.Flip()))
	} else {
		theirs = len(b.LegalMovesFor(me.Flip()))
	}
	return int64(mine - theirs)
}

// probeBoard places a single piece for `who` on the first empty cell,
// without captures. It exists only to hand the opponent a position to
// count moves on.
func probeBoard(b *reversi.Board, who reversi.Color) *reversi.Board {
	for r := 0; r < reversi.Size; r++ {
		for c := 0; c < reversi.Size; c++ {
			if b.At(r, c) != reversi.Empty {
				continue
			}
			grid := b.Grid()
			grid[r][c] = who
			next, err := reversi.FromGrid(grid, who.Flip())
			if err != nil {
				panic(err)
			}
			return next
		}
	}
	return b
}

// Material is the piece differential.
func Material(b *reversi.Board, me reversi.Color) int64 {
	return int64(b.Score(me))
}

func terminal(b *reversi.Board) bool {
	if b.ToMove() == reversi.GameOver {
		return true
	}
	one, two := b.Counts()
	return one+two == 0
}

func evaluate(w *Weights, b *reversi.Board, me reversi.Color) int64 {
	if terminal(b) || !me.IsPlayer() {
		return 0
	}
	return w.Corner*Corners(b, me) +
		w.Edge*Edges(b, me) +
		w.Mobility*Mobility(b, me, w.ProbeMobility) +
		w.Material*Material(b, me)
}

func ExplainScore(w *Weights, out io.Writer, b *reversi.Board, me reversi.Color) {
	tw := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	fmt.Fprintf(tw, "\traw\tweight\tscore\n")
	row := func(name string, raw, weight int64) {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", name, raw, weight, raw*weight)
	}
	if terminal(b) {
		fmt.Fprintf(tw, "terminal\t\t\t0\n")
		tw.Flush()
		return
	}
	row("corners", Corners(b, me), w.Corner)
	row("edges", Edges(b, me), w.Edge)
	row("mobility", Mobility(b, me, w.ProbeMobility), w.Mobility)
	row("material", Material(b, me), w.Material)
	fmt.Fprintf(tw, "total\t\t\t%d\n", evaluate(w, b, me))
	tw.Flush()
}
