package scoring

import (
	"testing"

	"github.com/matryer/is"

	"github.com/porglezomp/libgoscore/board"
	"github.com/porglezomp/libgoscore/groups"
)

func TestRandomBoards(t *testing.T) {
	is := is.New(t)
	for i := 0; i < 200; i++ {
		b := board.Random(1+i%13, 1+i%11, 0.6, 0.1)
		pre := b.Copy()

		GuessDeadStones(b)
		for _, g := range groups.FindGroups(b) {
			is.True(g.Liberties > 0)
		}
		for idx, c := range pre.Cells() {
			if c.Dead {
				is.True(b.At(idx).Dead)
			}
			// only dead marks change
			is.Equal(b.At(idx).Stone, c.Stone)
		}

		ScoreStones(b)
		scored := b.Copy()
		ScoreStones(b)
		is.True(b.Equals(scored))

		r := ScoreSums(b, DefaultKomi)
		is.Equal(r.BlackPoints+r.WhitePoints+r.Neutral, b.Len())
		is.Equal(r.White-r.Black, float64(r.WhitePoints-r.BlackPoints)+DefaultKomi.Points)
	}
}
