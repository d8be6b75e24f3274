package board

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Column labels skip I, as is customary for Go boards.
const columnLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

var boardPlaintextRegex = regexp.MustCompile(`\|(.+)\|`)

func columnLabel(col int) string {
	if col < len(columnLetters) {
		return string(columnLetters[col])
	}
	return strconv.Itoa(col + 1)
}

// ToDisplayText renders the board as a framed grid with column letters and
// row numbers.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	n := b.width
	sb.WriteString("\n   ")
	for i := 0; i < n; i++ {
		sb.WriteString(columnLabel(i))
		sb.WriteString(" ")
	}
	sb.WriteString("\n")
	sb.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	for i := 0; i < b.height; i++ {
		sb.WriteString(fmt.Sprintf("%2d|", i+1))
		for j := 0; j < n; j++ {
			sb.WriteString(b.Cell(i, j).displayString())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", n*2) + "\n")
	return sb.String()
}

// Diagram renders the board as bare rows of cell runes, one line per row,
// without coloring. ParseDiagram reads it back.
//
// A living stone scored for its own color renders the same as an unscored
// one, so a diagram of a scored board parses back without the stone points;
// re-running the territory scorer restores them.
func (b *Board) Diagram() string {
	var sb strings.Builder
	for i := 0; i < b.height; i++ {
		for j := 0; j < b.width; j++ {
			sb.WriteRune(b.Cell(i, j).Rune())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Diagram()
}

// ParseDiagram builds a board from a text diagram. Rows are lines; blank
// lines and whitespace inside a row are ignored. If any line is framed with
// '|' (as ToDisplayText renders), only the framed part of framed lines is
// read, so uncolored display text can be pasted back in.
func ParseDiagram(text string) (*Board, error) {
	var rows []string
	if strings.Contains(text, "|") {
		for _, m := range boardPlaintextRegex.FindAllStringSubmatch(text, -1) {
			rows = append(rows, m[1])
		}
	} else {
		rows = strings.Split(text, "\n")
	}

	var cells []Cell
	width, height := -1, 0
	for _, row := range rows {
		rowCells := make([]Cell, 0, len(row))
		for _, r := range row {
			if unicode.IsSpace(r) {
				continue
			}
			c, err := CellFromRune(r)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", height+1, err)
			}
			rowCells = append(rowCells, c)
		}
		if len(rowCells) == 0 {
			continue
		}
		if width == -1 {
			width = len(rowCells)
		} else if len(rowCells) != width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d",
				height+1, len(rowCells), width)
		}
		cells = append(cells, rowCells...)
		height++
	}
	if height == 0 {
		return nil, fmt.Errorf("diagram has no rows")
	}
	return FromCells(width, height, cells)
}

// MustParseDiagram is ParseDiagram for fixtures known to be valid.
func MustParseDiagram(text string) *Board {
	b, err := ParseDiagram(text)
	if err != nil {
		panic(err)
	}
	return b
}
