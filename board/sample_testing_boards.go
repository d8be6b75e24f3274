package board

// This file contains some sample boards, used by tests and the demo command.

// SampleBoard is a diagram representation of a board.
type SampleBoard string

const (
	// DemoBoard is a small endgame: a black wall down the middle, white
	// holding the top left, and two white stones already given up as dead
	// in the bottom right corner.
	DemoBoard SampleBoard = `
..O..
..O..
OOXXX
..X.o
..Xo.
`

	// CapturedCorner has a black stone on the top edge with no liberties,
	// walled in by white. Everything else is white's.
	CapturedCorner SampleBoard = `
.OXO.
.OOO.
.....
.....
.....
`

	// Starved has no empty points at all. Every group is out of liberties,
	// so everything is dead and the whole board is one region bordered by
	// no living stone.
	Starved SampleBoard = `
XOOOX
OXXXO
XOOOX
`

	// Atari has a white group with a single liberty. The heuristic does
	// not read tactics, so it lives and keeps its eye.
	Atari SampleBoard = `
.XO.O
XXOOO
XXXXX
.....
`

	// Split has a column of dame between a black wall and a white wall.
	Split SampleBoard = `
.X.O.
.X.O.
.X.O.
`

	// NineByNine is a 9x9 position at the end of a game.
	NineByNine SampleBoard = `
..X.XO...
.XXXXOO..
XX..XO.O.
.X.XOO...
..XXO.O..
.XXOO.O..
XXOO.....
.XO..O...
.XO......
`

	// NoStones is an empty 5x5 board.
	NoStones SampleBoard = `
.....
.....
.....
.....
.....
`
)

// Board parses the sample into a fresh board.
func (s SampleBoard) Board() *Board {
	return MustParseDiagram(string(s))
}
