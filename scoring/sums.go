package scoring

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/porglezomp/libgoscore/board"
)

// Result is the outcome of a scored board. Totals are always given
// black first, then white.
type Result struct {
	// Points counted on the board, without komi.
	BlackPoints int
	WhitePoints int
	// Points scored for nobody: dame, and dead stones in dame.
	Neutral int

	Komi Komi
	// Board points plus komi.
	Black float64
	White float64

	// Winner is the color with the strictly greater total, or board.Empty
	// for a tie.
	Winner board.Color
}

// Margin is the winner's total minus the loser's; zero for a tie.
func (r Result) Margin() float64 {
	if r.Black > r.White {
		return r.Black - r.White
	}
	return r.White - r.Black
}

// Spread is white's total minus black's.
func (r Result) Spread() float64 {
	return r.White - r.Black
}

// String renders the result the usual way, e.g. W+7.5 or B+2.
func (r Result) String() string {
	switch r.Winner {
	case board.Black:
		return "B+" + strconv.FormatFloat(r.Margin(), 'f', -1, 64)
	case board.White:
		return "W+" + strconv.FormatFloat(r.Margin(), 'f', -1, 64)
	}
	return "Jigo"
}

// Details lists both totals, black first.
func (r Result) Details() string {
	return fmt.Sprintf("black %d, white %d + %s: %v to %v (%d neutral)",
		r.BlackPoints, r.WhitePoints, r.Komi,
		strconv.FormatFloat(r.Black, 'f', -1, 64),
		strconv.FormatFloat(r.White, 'f', -1, 64), r.Neutral)
}

// ScoreSums adds up the points of a board already processed by ScoreStones,
// adds komi, and picks the winner. It does not modify the board.
func ScoreSums(b *board.Board, komi Komi) Result {
	cells := b.Cells()
	r := Result{
		BlackPoints: lo.CountBy(cells, func(c board.Cell) bool { return c.Score == board.Black }),
		WhitePoints: lo.CountBy(cells, func(c board.Cell) bool { return c.Score == board.White }),
		Komi:        komi,
	}
	r.Neutral = len(cells) - r.BlackPoints - r.WhitePoints
	r.Black = float64(r.BlackPoints) + komi.pointsFor(board.Black)
	r.White = float64(r.WhitePoints) + komi.pointsFor(board.White)

	switch {
	case r.Black > r.White:
		r.Winner = board.Black
	case r.White > r.Black:
		r.Winner = board.White
	default:
		r.Winner = board.Empty
	}
	log.Debug().Int("black", r.BlackPoints).Int("white", r.WhitePoints).
		Stringer("komi", komi).Str("result", r.String()).Msg("score-sums")
	return r
}

// Score runs the whole pipeline on b: guess dead stones, mark territory and
// stones, and add up the totals. b is modified in place.
func Score(b *board.Board, komi Komi) Result {
	GuessDeadStones(b)
	ScoreStones(b)
	return ScoreSums(b, komi)
}
