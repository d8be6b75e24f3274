package scoring

import (
	"github.com/rs/zerolog/log"

	"github.com/porglezomp/libgoscore/board"
	"github.com/porglezomp/libgoscore/groups"
)

// GuessDeadStones marks stones dead using liberty starvation: any group
// with no liberties is dead. Dead stones count as vacated, so groups are
// recomputed and the process repeats until a pass marks nothing new.
// It returns the number of stones newly marked.
//
// This is a heuristic, not a life-and-death solver. Any group with at least
// one liberty is left alive, so groups that are dead in the ordinary sense
// (but not yet captured) must be marked by the caller beforehand, and seki
// or unsettled shapes are not recognized. Stones already marked dead stay
// dead, and running it twice changes nothing the second time.
func GuessDeadStones(b *board.Board) int {
	// Every pass but the last marks at least one living stone, so there can
	// be at most living+1 passes.
	living := 0
	for _, c := range b.Cells() {
		if c.Living() {
			living++
		}
	}

	marked := 0
	for pass := 0; pass <= living; pass++ {
		newly := 0
		for _, g := range groups.FindGroups(b) {
			if !g.Dead() {
				continue
			}
			for _, s := range g.Stones {
				b.SetDead(s)
			}
			newly += len(g.Stones)
		}
		log.Debug().Int("pass", pass).Int("newly-dead", newly).Msg("guess-dead-stones")
		if newly == 0 {
			break
		}
		marked += newly
	}
	return marked
}
