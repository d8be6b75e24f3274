package scoring

import (
	"fmt"
	"math"
	"strconv"

	"github.com/porglezomp/libgoscore/board"
)

// Komi is the compensation added to one color's total. Points may be whole
// or fractional; the engine adds it as given and never rounds. A half point
// rules out a tie.
//
// The zero value is no komi.
type Komi struct {
	Points float64
	Color  board.Color
}

// DefaultKomi is the usual compensation for white under area scoring.
var DefaultKomi = Komi{Points: 6.5, Color: board.White}

// NewKomi validates and builds a komi from configuration values.
func NewKomi(points float64, color string) (Komi, error) {
	if points < 0 || math.IsNaN(points) || math.IsInf(points, 0) {
		return Komi{}, fmt.Errorf("komi must be a non-negative number, got %v", points)
	}
	c, err := board.ParseColor(color)
	if err != nil {
		return Komi{}, fmt.Errorf("komi color: %w", err)
	}
	return Komi{Points: points, Color: c}, nil
}

func (k Komi) String() string {
	if k.Points == 0 || k.Color == board.Empty {
		return "no komi"
	}
	return strconv.FormatFloat(k.Points, 'f', -1, 64) + " for " + k.Color.String()
}

// pointsFor returns the komi owed to color c.
func (k Komi) pointsFor(c board.Color) float64 {
	if c == board.Empty || c != k.Color {
		return 0
	}
	return k.Points
}
