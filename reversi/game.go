package reversi

// GameOver reports whether the game has ended: either the host said
// so, or neither player has a legal move.
func (b *Board) GameOver() bool {
	if b.toMove == GameOver {
		return true
	}
	return !b.HasMoves(PlayerOne) && !b.HasMoves(PlayerTwo)
}

// Winner returns the player holding strictly more pieces, or Empty on
// a tie.
func (b *Board) Winner() Color {
	one, two := b.Counts()
	switch {
	case one > two:
		return PlayerOne
	case two > one:
		return PlayerTwo
	default:
		return Empty
	}
}

// Score is c's piece count minus its opponent's.
func (b *Board) Score(c Color) int {
	return b.Count(c) - b.Count(c.Flip())
}

type WinDetails struct {
	Winner Color
	One    int
	Two    int
}

func (b *Board) WinDetails() WinDetails {
	if !b.GameOver() {
		panic("WinDetails on a game not over")
	}
	d := WinDetails{Winner: b.Winner()}
	d.One, d.Two = b.Counts()
	return d
}
