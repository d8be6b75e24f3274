package board

import "lukechampine.com/frand"

// Random returns a width x height board where each point holds a stone with
// probability density, black or white with equal odds. Each stone is
// pre-marked dead with probability deadRate.
func Random(width, height int, density, deadRate float64) *Board {
	b := NewBoard(width, height)
	for i := range b.cells {
		if frand.Float64() >= density {
			continue
		}
		stone := Black
		if frand.Intn(2) == 1 {
			stone = White
		}
		b.cells[i] = Cell{Stone: stone, Dead: frand.Float64() < deadRate}
	}
	return b
}
