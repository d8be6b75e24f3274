package board

import (
	"fmt"
	"os"
	"strings"
)

var (
	ColorSupport = os.Getenv("GOSCORE_DISABLE_COLOR") != "on"
)

// Color is the color of a stone, or of the player a point is scored for.
// Empty doubles as "no stone" and "no score".
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// Opponent returns the other color. The opponent of Empty is Empty.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// ParseColor parses "b", "black", "w", "white" (case-insensitive).
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "b", "black":
		return Black, nil
	case "w", "white":
		return White, nil
	}
	return Empty, fmt.Errorf("unrecognized color %q", s)
}

// Bit flags of the byte-per-cell encoding.
const (
	FlagPresence   byte = 0x1
	FlagColor      byte = 0x2
	FlagDead       byte = 0x4
	FlagScore      byte = 0x8
	FlagScoreColor byte = 0x10
)

// A Cell is one intersection of the board: the stone on it, if any, whether
// that stone is dead, and which color the point is scored for, if any.
type Cell struct {
	Stone Color
	Dead  bool
	Score Color
}

// Present returns true if a stone occupies the cell, dead or alive.
func (c Cell) Present() bool {
	return c.Stone != Empty
}

// Living returns true if a stone occupies the cell and it is not dead.
func (c Cell) Living() bool {
	return c.Stone != Empty && !c.Dead
}

// Vacant returns true if the cell counts as open space for liberties and
// territory: either no stone, or a dead one.
func (c Cell) Vacant() bool {
	return !c.Living()
}

// Flags encodes the cell into its bit-flag byte. A dead flag on an empty
// cell is dropped.
func (c Cell) Flags() byte {
	var f byte
	switch c.Stone {
	case Black:
		f |= FlagPresence
	case White:
		f |= FlagPresence | FlagColor
	}
	if c.Dead && c.Stone != Empty {
		f |= FlagDead
	}
	switch c.Score {
	case Black:
		f |= FlagScore
	case White:
		f |= FlagScore | FlagScoreColor
	}
	return f
}

// CellFromFlags decodes a bit-flag byte. Combinations without meaning are
// normalized rather than rejected: COLOR without PRESENCE is no stone,
// DEAD without PRESENCE is ignored, SCORE_COLOR without SCORE is ignored.
func CellFromFlags(f byte) Cell {
	var c Cell
	if f&FlagPresence != 0 {
		if f&FlagColor != 0 {
			c.Stone = White
		} else {
			c.Stone = Black
		}
		c.Dead = f&FlagDead != 0
	}
	if f&FlagScore != 0 {
		if f&FlagScoreColor != 0 {
			c.Score = White
		} else {
			c.Score = Black
		}
	}
	return c
}

func (c Cell) String() string {
	return fmt.Sprintf("<%v dead=%v score=%v>", c.Stone, c.Dead, c.Score)
}

// Diagram runes.
const (
	EmptyRune      = '.'
	BlackRune      = 'X'
	WhiteRune      = 'O'
	DeadBlackRune  = 'x'
	DeadWhiteRune  = 'o'
	BlackPointRune = '+'
	WhitePointRune = '-'
	// Living stones that score for the other color. The engine never
	// produces these, but a diagram must be able to express any state.
	BlackStoneWhitePointRune = '#'
	WhiteStoneBlackPointRune = '*'
)

// Rune returns the diagram rune for the cell.
func (c Cell) Rune() rune {
	switch c.Stone {
	case Black:
		if c.Dead {
			return DeadBlackRune
		}
		if c.Score == White {
			return BlackStoneWhitePointRune
		}
		return BlackRune
	case White:
		if c.Dead {
			return DeadWhiteRune
		}
		if c.Score == Black {
			return WhiteStoneBlackPointRune
		}
		return WhiteRune
	}
	switch c.Score {
	case Black:
		return BlackPointRune
	case White:
		return WhitePointRune
	}
	return EmptyRune
}

// CellFromRune is the inverse of Rune. Stones parsed from X and O are scored
// for nobody; dead stones keep no score either.
func CellFromRune(r rune) (Cell, error) {
	switch r {
	case EmptyRune:
		return Cell{}, nil
	case BlackRune:
		return Cell{Stone: Black}, nil
	case WhiteRune:
		return Cell{Stone: White}, nil
	case DeadBlackRune:
		return Cell{Stone: Black, Dead: true}, nil
	case DeadWhiteRune:
		return Cell{Stone: White, Dead: true}, nil
	case BlackPointRune:
		return Cell{Score: Black}, nil
	case WhitePointRune:
		return Cell{Score: White}, nil
	case BlackStoneWhitePointRune:
		return Cell{Stone: Black, Score: White}, nil
	case WhiteStoneBlackPointRune:
		return Cell{Stone: White, Score: Black}, nil
	}
	return Cell{}, fmt.Errorf("unrecognized board rune %q", r)
}

func (c Cell) displayString() string {
	repr := string(c.Rune())
	if !ColorSupport {
		return repr
	}
	switch {
	case c.Dead:
		return fmt.Sprintf("\033[90m%s\033[0m", repr)
	case c.Stone == Empty && c.Score == Black:
		return fmt.Sprintf("\033[34m%s\033[0m", repr)
	case c.Stone == Empty && c.Score == White:
		return fmt.Sprintf("\033[33m%s\033[0m", repr)
	}
	return repr
}
