package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/reversibot/reversibot/notation"
	"github.com/reversibot/reversibot/reversi"
)

func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(b *reversi.Board) reversi.Move {
	for {
		fmt.Fprintf(c.out, "%s> ", b.ToMove())
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			panic(err)
		}
		m, err := notation.ParseMove(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "parse error: ", err)
			continue
		}
		return m
	}
}
