// Package batch scores many positions at once.
//
// Positions are independent, so each is scored on its own goroutine against
// its own copy of the board. Positions that repeat (same board, same komi)
// are scored once.
package batch

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/porglezomp/libgoscore/board"
	"github.com/porglezomp/libgoscore/cache"
	"github.com/porglezomp/libgoscore/position"
	"github.com/porglezomp/libgoscore/scoring"
	"github.com/porglezomp/libgoscore/stats"
)

// Outcome is the scored form of one position.
type Outcome struct {
	Position *position.Position
	// Scored is a copy of the position's board with dead stones and
	// points marked. The position's own board is left untouched.
	Scored *board.Board
	Result scoring.Result
	// Cached is true if an identical position earlier in the batch (or an
	// earlier batch) was scored already.
	Cached bool
}

type cacheKey struct {
	hash uint64
	komi scoring.Komi
}

type scored struct {
	board  *board.Board
	result scoring.Result
}

// Scorer scores batches of positions. A Scorer remembers every position it
// has scored, across batches.
type Scorer struct {
	workers int
	cache   *cache.Cache[cacheKey, scored]
}

// NewScorer returns a scorer that runs at most workers positions at once.
// A non-positive count means one per CPU.
func NewScorer(workers int) *Scorer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scorer{
		workers: workers,
		cache:   cache.New[cacheKey, scored](),
	}
}

func (s *Scorer) Workers() int {
	return s.workers
}

// CacheStats returns the scorer's cache hits and misses so far.
func (s *Scorer) CacheStats() (hits, misses int) {
	return s.cache.Stats()
}

// ScoreAll scores every position and returns outcomes in the same order.
// It stops early and returns the context's error if ctx is cancelled.
func (s *Scorer) ScoreAll(ctx context.Context, positions []*position.Position) ([]Outcome, error) {
	outcomes := make([]Outcome, len(positions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, p := range positions {
		i, p := i, p
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = s.score(p)
			log.Debug().Str("position", p.Name).Str("result", outcomes[i].Result.String()).
				Bool("cached", outcomes[i].Cached).Msg("scored")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// gctx is always done after Wait; ctx is the caller's.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (s *Scorer) score(p *position.Position) Outcome {
	computed := false
	key := cacheKey{hash: p.Board.Hash(), komi: p.Komi}
	// Scoring cannot fail, so neither can the load.
	sc, _ := s.cache.Load(key, func(cacheKey) (scored, error) {
		computed = true
		b := p.Board.Copy()
		r := scoring.Score(b, p.Komi)
		return scored{board: b, result: r}, nil
	})
	return Outcome{
		Position: p,
		Scored:   sc.board.Copy(),
		Result:   sc.result,
		Cached:   !computed,
	}
}

// Summary aggregates the results of a batch.
type Summary struct {
	Positions int
	BlackWins int
	WhiteWins int
	Jigo      int
	// Spread tracks white's total minus black's over all positions.
	Spread  stats.Running
	spreads []float64
}

// Summarize tallies a batch of outcomes.
func Summarize(outcomes []Outcome) Summary {
	sum := Summary{
		Positions: len(outcomes),
		BlackWins: lo.CountBy(outcomes, func(o Outcome) bool { return o.Result.Winner == board.Black }),
		WhiteWins: lo.CountBy(outcomes, func(o Outcome) bool { return o.Result.Winner == board.White }),
		Jigo:      lo.CountBy(outcomes, func(o Outcome) bool { return o.Result.Winner == board.Empty }),
	}
	for _, o := range outcomes {
		sum.Spread.Push(o.Result.Spread())
		sum.spreads = append(sum.spreads, o.Result.Spread())
	}
	return sum
}

// Histogram buckets the spreads of the batch. ok is false for an empty
// batch.
func (s Summary) Histogram(bins int) (h histogram.Histogram, ok bool) {
	if len(s.spreads) == 0 {
		return h, false
	}
	return histogram.Hist(bins, s.spreads), true
}

// FprintHistogram draws the spread histogram to w, with bars at most width
// characters wide.
func (s Summary) FprintHistogram(w io.Writer, bins, width int) error {
	h, ok := s.Histogram(bins)
	if !ok {
		return nil
	}
	return histogram.Fprint(w, h, histogram.Linear(width))
}

func (s Summary) String() string {
	return fmt.Sprintf("%d positions: black %d, white %d, jigo %d; spread (W-B) %.2f ± %.2f (stdev %.2f)",
		s.Positions, s.BlackWins, s.WhiteWins, s.Jigo,
		s.Spread.Mean(), s.Spread.HalfWidth(95), s.Spread.Stdev())
}
