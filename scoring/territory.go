package scoring

import (
	"github.com/rs/zerolog/log"

	"github.com/porglezomp/libgoscore/board"
	"github.com/porglezomp/libgoscore/groups"
)

// ScoreStones marks every point that scores under area scoring. Each living
// stone scores for its own color. Each region of empty points and dead
// stones scores for its owner if exactly one color borders it, and stays
// neutral (dame) otherwise. Dead stones score only as part of the region
// they fall in.
//
// Scores from an earlier call are cleared first, so the result depends only
// on the stones and dead marks. Call GuessDeadStones (or mark dead stones
// yourself) before this.
func ScoreStones(b *board.Board) {
	b.ClearScores()
	for i, c := range b.Cells() {
		if c.Living() {
			b.SetScore(i, c.Stone)
		}
	}

	neutral := 0
	for _, r := range groups.FindRegions(b) {
		owner := r.Owner()
		if owner == board.Empty {
			neutral += len(r.Cells)
			continue
		}
		for _, idx := range r.Cells {
			b.SetScore(idx, owner)
		}
	}
	log.Debug().Int("neutral", neutral).Msg("score-stones")
}
