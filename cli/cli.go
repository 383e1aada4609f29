package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/muesli/termenv"

	"github.com/reversibot/reversibot/notation"
	"github.com/reversibot/reversibot/reversi"
)

type Player interface {
	GetMove(b *reversi.Board) reversi.Move
}

type Glyphs struct {
	One, Two, Empty string
}

type CLI struct {
	moves []reversi.Move
	b     *reversi.Board

	Initial *reversi.Board
	Glyphs  *Glyphs
	Out     io.Writer
	One     Player
	Two     Player
}

var DefaultGlyphs = Glyphs{
	One:   "1",
	Two:   "2",
	Empty: ".",
}

var UnicodeGlyphs = Glyphs{
	One:   "●",
	Two:   "○",
	Empty: "·",
}

// Play runs a game to completion and returns the final board. A side
// with no legal move passes automatically.
func (c *CLI) Play() *reversi.Board {
	c.moves = nil
	c.b = c.Initial
	if c.b == nil {
		c.b = reversi.New()
	}
	ply := 0
	for {
		c.render()
		if c.b.GameOver() {
			d := c.b.WinDetails()
			fmt.Fprintf(c.Out, "Game Over! ")
			if d.Winner == reversi.Empty {
				fmt.Fprintf(c.Out, "Draw.")
			} else {
				fmt.Fprintf(c.Out, "%s wins.", d.Winner)
			}
			fmt.Fprintf(c.Out, "\npieces: one=%d two=%d\n", d.One, d.Two)
			return c.b
		}
		mover := c.b.ToMove()
		if !c.b.HasMoves(mover) {
			fmt.Fprintf(c.Out, "%s has no move and passes\n", mover)
			c.b = c.b.Pass()
			c.moves = append(c.moves, reversi.Pass)
			continue
		}
		var m reversi.Move
		if mover == reversi.PlayerOne {
			m = c.One.GetMove(c.b)
		} else {
			m = c.Two.GetMove(c.b)
		}
		if !c.b.IsLegal(m, mover) {
			fmt.Fprintln(c.Out, "illegal move:", notation.FormatMove(m))
			continue
		}
		next, e := c.b.Move(m, mover)
		if e != nil {
			fmt.Fprintln(c.Out, "illegal move:", e)
			continue
		}
		ply++
		fmt.Fprintf(c.Out, "%d. %s %s\n", ply, mover, notation.FormatMove(m))
		c.b = next
		c.moves = append(c.moves, m)
	}
}

// Moves returns the moves played so far, with reversi.Pass for
// forfeited turns.
func (c *CLI) Moves() []reversi.Move {
	return c.moves
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.b)
}

func RenderBoard(g *Glyphs, out io.Writer, b *reversi.Board) {
	if g == nil {
		g = &DefaultGlyphs
	}
	term := termenv.NewOutput(out)
	one := term.String(g.One).Foreground(term.Color("1")).Bold().String()
	two := term.String(g.Two).Foreground(term.Color("4")).Bold().String()

	fmt.Fprintln(out)
	if b.ToMove() == reversi.GameOver {
		fmt.Fprintf(out, "[game over]\n")
	} else {
		fmt.Fprintf(out, "[%s to play]\n", b.ToMove())
	}
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	fmt.Fprintf(w, "\t")
	for c := 0; c < reversi.Size; c++ {
		fmt.Fprintf(w, "%c\t", 'a'+c)
	}
	fmt.Fprintf(w, "\n")
	for r := 0; r < reversi.Size; r++ {
		fmt.Fprintf(w, "%d\t", r+1)
		for c := 0; c < reversi.Size; c++ {
			switch b.At(r, c) {
			case reversi.PlayerOne:
				fmt.Fprintf(w, "%s\t", one)
			case reversi.PlayerTwo:
				fmt.Fprintf(w, "%s\t", two)
			default:
				fmt.Fprintf(w, "%s\t", g.Empty)
			}
		}
		fmt.Fprintf(w, "\n")
	}
	w.Flush()
	n1, n2 := b.Counts()
	fmt.Fprintf(out, "pieces: one=%d two=%d\n", n1, n2)
}
