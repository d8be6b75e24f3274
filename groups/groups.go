// Package groups finds connected groups of living stones and the open
// regions between them.
//
// Both searches are flood fills driven by an explicit work list, so stack
// use does not grow with the size of a group or region. Dead stones are
// treated as vacated: they never join a group, they count as liberties, and
// they belong to regions.
package groups

import (
	"github.com/porglezomp/libgoscore/board"
)

// A Group is a maximal set of 4-connected living stones of one color.
type Group struct {
	Color     board.Color
	Stones    []int
	Liberties int
}

// Dead returns true if the group has no liberties.
func (g Group) Dead() bool {
	return g.Liberties == 0
}

// Borders is a set of colors.
type Borders uint8

const (
	BordersBlack Borders = 1 << iota
	BordersWhite
)

func bordersFor(c board.Color) Borders {
	switch c {
	case board.Black:
		return BordersBlack
	case board.White:
		return BordersWhite
	}
	return 0
}

// Has returns true if the set contains c.
func (b Borders) Has(c board.Color) bool {
	return b&bordersFor(c) != 0
}

// A Region is a maximal set of 4-connected cells that are empty or hold a
// dead stone, together with the colors of the living stones around it.
type Region struct {
	Cells   []int
	Borders Borders
}

// Owner returns the single living color that borders the region, or
// board.Empty if it borders both colors or none.
func (r Region) Owner() board.Color {
	switch r.Borders {
	case BordersBlack:
		return board.Black
	case BordersWhite:
		return board.White
	}
	return board.Empty
}

// finder holds the scratch state of one search. It never outlives the call
// that created it.
type finder struct {
	b       *board.Board
	visited []bool
	// marks records which cells were already counted for the current
	// group's liberties; it is keyed by group number to avoid clearing.
	marks []int
	nbuf  []int
}

func newFinder(b *board.Board) *finder {
	marks := make([]int, b.Len())
	for i := range marks {
		marks[i] = -1
	}
	return &finder{
		b:       b,
		visited: make([]bool, b.Len()),
		marks:   marks,
		nbuf:    make([]int, 0, 4),
	}
}

// FindGroups returns every group of living stones on the board. Each living
// stone belongs to exactly one group. Groups are ordered by their lowest
// cell index, and the stones of a group are in visiting order.
func FindGroups(b *board.Board) []Group {
	f := newFinder(b)
	var groups []Group
	for idx := 0; idx < b.Len(); idx++ {
		if f.visited[idx] || !b.At(idx).Living() {
			continue
		}
		groups = append(groups, f.group(idx, len(groups)))
	}
	return groups
}

// group flood fills the group containing start. The Stones slice doubles
// as the work list: everything before i has had its neighbors checked,
// everything from i on is known to be in the group but not yet checked.
func (f *finder) group(start, id int) Group {
	color := f.b.At(start).Stone
	g := Group{Color: color, Stones: []int{start}}
	f.visited[start] = true
	for i := 0; i < len(g.Stones); i++ {
		f.nbuf = f.b.Neighbors(g.Stones[i], f.nbuf[:0])
		for _, n := range f.nbuf {
			c := f.b.At(n)
			switch {
			case c.Vacant():
				if f.marks[n] != id {
					f.marks[n] = id
					g.Liberties++
				}
			case c.Stone == color && !f.visited[n]:
				f.visited[n] = true
				g.Stones = append(g.Stones, n)
			}
		}
	}
	return g
}

// FindRegions returns every region of the board. Each empty or dead cell
// belongs to exactly one region.
func FindRegions(b *board.Board) []Region {
	f := newFinder(b)
	var regions []Region
	for idx := 0; idx < b.Len(); idx++ {
		if f.visited[idx] || b.At(idx).Living() {
			continue
		}
		regions = append(regions, f.region(idx))
	}
	return regions
}

func (f *finder) region(start int) Region {
	r := Region{Cells: []int{start}}
	f.visited[start] = true
	for i := 0; i < len(r.Cells); i++ {
		f.nbuf = f.b.Neighbors(r.Cells[i], f.nbuf[:0])
		for _, n := range f.nbuf {
			c := f.b.At(n)
			if c.Living() {
				r.Borders |= bordersFor(c.Stone)
				continue
			}
			if !f.visited[n] {
				f.visited[n] = true
				r.Cells = append(r.Cells, n)
			}
		}
	}
	return r
}

// Liberties returns the liberty count of the group containing the living
// stone at idx, or -1 if there is no living stone there.
func Liberties(b *board.Board, idx int) int {
	if !b.At(idx).Living() {
		return -1
	}
	return newFinder(b).group(idx, 0).Liberties
}
