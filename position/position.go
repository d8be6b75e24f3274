// Package position reads positions to score from YAML documents.
//
// A document names the position, optionally overrides komi, and carries
// the board as a text diagram:
//
//	name: demo
//	komi: 6.5
//	komi_color: white
//	board: |
//	  ..O..
//	  OOXXX
//
// A file may hold several documents separated by "---".
package position

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/porglezomp/libgoscore/board"
	"github.com/porglezomp/libgoscore/scoring"
)

type document struct {
	Name      string   `yaml:"name"`
	Komi      *float64 `yaml:"komi"`
	KomiColor string   `yaml:"komi_color"`
	Board     string   `yaml:"board"`
}

// Position is a board to score and the komi to score it with.
type Position struct {
	Name  string
	Komi  scoring.Komi
	Board *board.Board
}

// Parse reads every document in data. Positions without a komi use
// defaultKomi; a komi without a color goes to defaultKomi's color. Unnamed
// positions are named after their source and index.
func Parse(data []byte, source string, defaultKomi scoring.Komi) ([]*Position, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var positions []*Position
	for i := 0; ; i++ {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: document %d: %w", source, i+1, err)
		}
		p, err := fromDocument(doc, defaultKomi)
		if err != nil {
			return nil, fmt.Errorf("%s: document %d: %w", source, i+1, err)
		}
		if p.Name == "" {
			p.Name = fmt.Sprintf("%s#%d", source, i+1)
		}
		positions = append(positions, p)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("%s: no positions", source)
	}
	return positions, nil
}

func fromDocument(doc document, defaultKomi scoring.Komi) (*Position, error) {
	if doc.Board == "" {
		return nil, errors.New("missing board")
	}
	b, err := board.ParseDiagram(doc.Board)
	if err != nil {
		return nil, err
	}
	komi := defaultKomi
	if doc.Komi != nil {
		komi.Points = *doc.Komi
	}
	if doc.KomiColor != "" {
		komi.Color, err = board.ParseColor(doc.KomiColor)
		if err != nil {
			return nil, err
		}
	}
	if komi.Points < 0 || math.IsNaN(komi.Points) || math.IsInf(komi.Points, 0) {
		return nil, fmt.Errorf("komi must be a non-negative number, got %v", komi.Points)
	}
	return &Position{Name: doc.Name, Komi: komi, Board: b}, nil
}

// Load reads the positions in the file at path.
func Load(path string, defaultKomi scoring.Komi) ([]*Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, filepath.Base(path), defaultKomi)
}

// LoadAll reads every file in paths, in order.
func LoadAll(paths []string, defaultKomi scoring.Komi) ([]*Position, error) {
	var all []*Position
	for _, path := range paths {
		ps, err := Load(path, defaultKomi)
		if err != nil {
			return nil, err
		}
		all = append(all, ps...)
	}
	return all, nil
}

// Demo returns the built-in demo position.
func Demo(komi scoring.Komi) *Position {
	return &Position{Name: "demo", Komi: komi, Board: board.DemoBoard.Board()}
}
