package board

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
)

// ErrDimensionMismatch is returned when a buffer's length is not
// width * height.
var ErrDimensionMismatch = errors.New("buffer length does not match board dimensions")

// Board stores a one-dimensional, row-major array of cells. Its dimensions
// are fixed for its lifetime.
type Board struct {
	cells  []Cell
	width  int
	height int
}

// NewBoard returns an empty board.
func NewBoard(width, height int) *Board {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("negative board dimensions %dx%d", width, height))
	}
	return &Board{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
}

// FromCells wraps the given cells. The board takes ownership of the slice.
func FromCells(width, height int, cells []Cell) (*Board, error) {
	if width < 0 || height < 0 || len(cells) != width*height {
		return nil, fmt.Errorf("%dx%d board with %d cells: %w",
			width, height, len(cells), ErrDimensionMismatch)
	}
	return &Board{cells: cells, width: width, height: height}, nil
}

// FromFlags decodes a byte-per-cell flag buffer.
func FromFlags(width, height int, data []byte) (*Board, error) {
	if width < 0 || height < 0 || len(data) != width*height {
		return nil, fmt.Errorf("%dx%d board with %d bytes: %w",
			width, height, len(data), ErrDimensionMismatch)
	}
	b := NewBoard(width, height)
	for i, f := range data {
		b.cells[i] = CellFromFlags(f)
	}
	return b, nil
}

// Flags encodes the board into a byte-per-cell flag buffer.
func (b *Board) Flags() []byte {
	data := make([]byte, len(b.cells))
	for i, c := range b.cells {
		data[i] = c.Flags()
	}
	return data
}

// WriteFlags encodes the board into data, which must be exactly Len() long.
// It is the way back into a buffer the caller owns.
func (b *Board) WriteFlags(data []byte) error {
	if len(data) != len(b.cells) {
		return fmt.Errorf("writing %d cells into %d bytes: %w",
			len(b.cells), len(data), ErrDimensionMismatch)
	}
	for i, c := range b.cells {
		data[i] = c.Flags()
	}
	return nil
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// Len is the number of cells, width * height.
func (b *Board) Len() int {
	return len(b.cells)
}

func (b *Board) Index(row, col int) int {
	return row*b.width + col
}

func (b *Board) RowCol(idx int) (int, int) {
	return idx / b.width, idx % b.width
}

func (b *Board) PosExists(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

func (b *Board) Cell(row, col int) Cell {
	return b.cells[row*b.width+col]
}

func (b *Board) SetCell(row, col int, c Cell) {
	b.cells[row*b.width+col] = c
}

// Cells returns the board's cells in row-major order. The slice is the
// board's own storage; callers must not modify it.
func (b *Board) Cells() []Cell {
	return b.cells
}

func (b *Board) At(idx int) Cell {
	return b.cells[idx]
}

func (b *Board) Set(idx int, c Cell) {
	b.cells[idx] = c
}

// SetDead marks the stone at idx dead. It does nothing on an empty cell.
func (b *Board) SetDead(idx int) {
	if b.cells[idx].Stone != Empty {
		b.cells[idx].Dead = true
	}
}

// SetScore sets the color the cell at idx is scored for.
func (b *Board) SetScore(idx int, c Color) {
	b.cells[idx].Score = c
}

// Neighbors appends the indices of the up to four orthogonal neighbors of
// idx to buf and returns it. Passing a reused buf avoids allocating in
// flood fills.
func (b *Board) Neighbors(idx int, buf []int) []int {
	row, col := idx/b.width, idx%b.width
	if row > 0 {
		buf = append(buf, idx-b.width)
	}
	if row < b.height-1 {
		buf = append(buf, idx+b.width)
	}
	if col > 0 {
		buf = append(buf, idx-1)
	}
	if col < b.width-1 {
		buf = append(buf, idx+1)
	}
	return buf
}

// StoneCount returns the number of stones on the board, dead or alive.
func (b *Board) StoneCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Present() {
			n++
		}
	}
	return n
}

// ClearScores removes all scoring marks.
func (b *Board) ClearScores() {
	for i := range b.cells {
		b.cells[i].Score = Empty
	}
}

// ClearDead revives every dead stone.
func (b *Board) ClearDead() {
	for i := range b.cells {
		b.cells[i].Dead = false
	}
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{cells: cells, width: b.width, height: b.height}
}

// CopyFrom copies the cells of another board with the same dimensions.
func (b *Board) CopyFrom(other *Board) {
	if b.width != other.width || b.height != other.height {
		panic(fmt.Sprintf("copying %dx%d board into %dx%d board",
			other.width, other.height, b.width, b.height))
	}
	copy(b.cells, other.cells)
}

// Equals checks the boards for equality. Two boards are equal if they have
// the same dimensions and every cell encodes to the same flags.
func (b *Board) Equals(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		log.Debug().Msgf("dims don't match: %dx%d %dx%d",
			b.width, b.height, other.width, other.height)
		return false
	}
	for i := range b.cells {
		if b.cells[i].Flags() != other.cells[i].Flags() {
			row, col := b.RowCol(i)
			log.Debug().Int("row", row).Int("col", col).
				Stringer("a", b.cells[i]).Stringer("b", other.cells[i]).
				Msg("cells not equal")
			return false
		}
	}
	return true
}

// Hash returns a content hash of the board: dimensions plus the flag
// encoding of every cell.
func (b *Board) Hash() uint64 {
	buf := make([]byte, 16, 16+len(b.cells))
	binary.LittleEndian.PutUint64(buf[0:8], uint64(b.width))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(b.height))
	for _, c := range b.cells {
		buf = append(buf, c.Flags())
	}
	return xxhash.Sum64(buf)
}
