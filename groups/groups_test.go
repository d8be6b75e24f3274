package groups

import (
	"sort"
	"testing"

	"github.com/matryer/is"

	"github.com/porglezomp/libgoscore/board"
)

func sorted(idxs []int) []int {
	out := append([]int(nil), idxs...)
	sort.Ints(out)
	return out
}

func TestFindGroupsDemo(t *testing.T) {
	is := is.New(t)
	b := board.DemoBoard.Board()
	gs := FindGroups(b)
	is.Equal(len(gs), 3)

	is.Equal(gs[0].Color, board.White)
	is.Equal(sorted(gs[0].Stones), []int{2, 7})
	is.Equal(gs[0].Liberties, 4)

	is.Equal(gs[1].Color, board.White)
	is.Equal(sorted(gs[1].Stones), []int{10, 11})
	is.Equal(gs[1].Liberties, 4)

	is.Equal(gs[2].Color, board.Black)
	is.Equal(sorted(gs[2].Stones), []int{12, 13, 14, 17, 22})
	// the two dead white stones count as liberties
	is.Equal(gs[2].Liberties, 7)
}

func TestFindGroupsCoversEveryLivingStoneOnce(t *testing.T) {
	is := is.New(t)
	for _, sample := range []board.SampleBoard{
		board.DemoBoard, board.CapturedCorner, board.Starved,
		board.Atari, board.Split, board.NineByNine, board.NoStones,
	} {
		b := sample.Board()
		seen := map[int]bool{}
		for _, g := range FindGroups(b) {
			for _, s := range g.Stones {
				is.True(!seen[s])
				is.True(b.At(s).Living())
				is.Equal(b.At(s).Stone, g.Color)
				seen[s] = true
			}
		}
		living := 0
		for i := 0; i < b.Len(); i++ {
			if b.At(i).Living() {
				living++
			}
		}
		is.Equal(len(seen), living)
	}
}

func TestLibertiesCountedOnce(t *testing.T) {
	is := is.New(t)
	// the center point touches all four black stones
	b := board.MustParseDiagram(`
.X.
X.X
.X.
`)
	is.Equal(Liberties(b, b.Index(0, 1)), 3)

	// a connected ring shares the center
	b = board.MustParseDiagram(`
XXX
X.X
XXX
`)
	gs := FindGroups(b)
	is.Equal(len(gs), 1)
	is.Equal(gs[0].Liberties, 1)
	is.Equal(Liberties(b, b.Index(1, 1)), -1)
}

func TestZeroLibertyGroup(t *testing.T) {
	is := is.New(t)
	b := board.CapturedCorner.Board()
	gs := FindGroups(b)
	is.Equal(len(gs), 2)
	// white wall, then the black stone it encloses
	is.Equal(gs[0].Color, board.White)
	is.Equal(len(gs[0].Stones), 5)
	is.True(!gs[0].Dead())
	is.Equal(gs[1].Color, board.Black)
	is.Equal(gs[1].Stones, []int{2})
	is.True(gs[1].Dead())
}

func TestDeadStonesAreVacated(t *testing.T) {
	is := is.New(t)
	b := board.CapturedCorner.Board()
	b.SetDead(2)
	gs := FindGroups(b)
	is.Equal(len(gs), 1)
	// the wall gains the dead stone's point as a liberty
	before := Liberties(board.CapturedCorner.Board(), 1)
	is.Equal(gs[0].Liberties, before+1)
}

func TestFindRegionsDemo(t *testing.T) {
	is := is.New(t)
	b := board.DemoBoard.Board()
	rs := FindRegions(b)
	is.Equal(len(rs), 4)

	is.Equal(sorted(rs[0].Cells), []int{0, 1, 5, 6})
	is.Equal(rs[0].Owner(), board.White)

	is.Equal(sorted(rs[1].Cells), []int{3, 4, 8, 9})
	is.True(rs[1].Borders.Has(board.Black))
	is.True(rs[1].Borders.Has(board.White))
	is.Equal(rs[1].Owner(), board.Empty)

	is.Equal(sorted(rs[2].Cells), []int{15, 16, 20, 21})
	is.Equal(rs[2].Owner(), board.Empty)

	// includes the two dead white stones
	is.Equal(sorted(rs[3].Cells), []int{18, 19, 23, 24})
	is.Equal(rs[3].Owner(), board.Black)
}

func TestFindRegionsEmptyBoard(t *testing.T) {
	is := is.New(t)
	b := board.NoStones.Board()
	rs := FindRegions(b)
	is.Equal(len(rs), 1)
	is.Equal(len(rs[0].Cells), 25)
	is.Equal(rs[0].Borders, Borders(0))
	is.Equal(rs[0].Owner(), board.Empty)
	is.Equal(len(FindGroups(b)), 0)
}

func TestFindRegionsFullBoard(t *testing.T) {
	is := is.New(t)
	b := board.MustParseDiagram("XO\nOX\n")
	is.Equal(len(FindRegions(b)), 0)
	is.Equal(len(FindGroups(b)), 4)
}

func TestLargeBoardDoesNotRecurse(t *testing.T) {
	is := is.New(t)
	// one region of a quarter million cells
	b := board.NewBoard(500, 500)
	rs := FindRegions(b)
	is.Equal(len(rs), 1)
	is.Equal(len(rs[0].Cells), 250000)

	for i := 0; i < b.Len(); i++ {
		b.Set(i, board.Cell{Stone: board.White})
	}
	gs := FindGroups(b)
	is.Equal(len(gs), 1)
	is.Equal(gs[0].Liberties, 0)
}

func BenchmarkFindGroups(b *testing.B) {
	bd := board.NineByNine.Board()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FindGroups(bd)
	}
}

func TestRandomBoardsPartition(t *testing.T) {
	is := is.New(t)
	for i := 0; i < 100; i++ {
		b := board.Random(2+i%9, 2+i%7, 0.5, 0.2)
		seen := make([]int, b.Len())
		for _, g := range FindGroups(b) {
			for _, idx := range g.Stones {
				is.True(b.At(idx).Living())
				is.Equal(b.At(idx).Stone, g.Color)
				seen[idx]++
			}
		}
		for _, r := range FindRegions(b) {
			for _, idx := range r.Cells {
				is.True(b.At(idx).Vacant())
				seen[idx]++
			}
		}
		for _, n := range seen {
			is.Equal(n, 1)
		}
	}
}
