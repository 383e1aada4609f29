package reversi

import "fmt"

// Color is the content of a cell, or whose turn it is.
type Color int8

const (
	Empty     Color = 0
	PlayerOne Color = 1
	PlayerTwo Color = 2

	// GameOver is only valid as a turn value. The host signals the end
	// of a game with it.
	GameOver Color = -1
)

func (c Color) Flip() Color {
	switch c {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return c
}

func (c Color) IsPlayer() bool {
	return c == PlayerOne || c == PlayerTwo
}

func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case PlayerOne:
		return "one"
	case PlayerTwo:
		return "two"
	case GameOver:
		return "over"
	default:
		return fmt.Sprintf("Color(%d)", int8(c))
	}
}
