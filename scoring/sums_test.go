package scoring

import (
	"testing"

	"github.com/matryer/is"

	"github.com/porglezomp/libgoscore/board"
)

func TestScoreCapturedCorner(t *testing.T) {
	is := is.New(t)
	b := board.CapturedCorner.Board()

	GuessDeadStones(b)
	is.True(b.Cell(0, 2).Dead)

	ScoreStones(b)
	// the dead stone's point goes to white with the rest of the board
	is.Equal(b.Cell(0, 2).Score, board.White)

	r := ScoreSums(b, Komi{Points: 6, Color: board.White})
	is.Equal(r.BlackPoints, 0)
	is.Equal(r.WhitePoints, 25)
	is.Equal(r.White, 31.0)
	is.Equal(r.Winner, board.White)
	is.True(r.White > r.Black)
}

func TestScoreDemo(t *testing.T) {
	is := is.New(t)
	r := Score(board.DemoBoard.Board(), Komi{Points: 6, Color: board.White})
	is.Equal(r.BlackPoints, 9)
	is.Equal(r.WhitePoints, 8)
	is.Equal(r.Neutral, 8)
	is.Equal(r.Black, 9.0)
	is.Equal(r.White, 14.0)
	is.Equal(r.Winner, board.White)
	is.Equal(r.String(), "W+5")
	is.Equal(r.Spread(), 5.0)

	r = Score(board.DemoBoard.Board(), DefaultKomi)
	is.Equal(r.String(), "W+5.5")
}

func TestScoreTable(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		sample  board.SampleBoard
		komi    Komi
		black   int
		white   int
		neutral int
		result  string
	}{
		{board.Atari, DefaultKomi, 14, 6, 0, "B+1.5"},
		{board.Split, Komi{}, 6, 6, 3, "Jigo"},
		{board.Split, DefaultKomi, 6, 6, 3, "W+6.5"},
		{board.Starved, Komi{}, 0, 0, 15, "Jigo"},
		{board.CapturedCorner, Komi{Points: 6, Color: board.White}, 0, 25, 0, "W+31"},
	}
	for _, tc := range cases {
		r := Score(tc.sample.Board(), tc.komi)
		is.Equal(r.BlackPoints, tc.black)
		is.Equal(r.WhitePoints, tc.white)
		is.Equal(r.Neutral, tc.neutral)
		is.Equal(r.String(), tc.result)
	}
}

func TestConservation(t *testing.T) {
	is := is.New(t)
	for _, sample := range allSamples {
		b := sample.Board()
		r := Score(b, DefaultKomi)
		is.Equal(r.BlackPoints+r.WhitePoints+r.Neutral, b.Len())
	}
}

func TestScoreSumsIsReadOnly(t *testing.T) {
	is := is.New(t)
	b := board.NineByNine.Board()
	GuessDeadStones(b)
	ScoreStones(b)
	before := b.Flags()
	ScoreSums(b, DefaultKomi)
	is.Equal(b.Flags(), before)
}

func TestScoreSumsIgnoresUnscoredBoard(t *testing.T) {
	is := is.New(t)
	// nothing is scored until ScoreStones runs
	r := ScoreSums(board.DemoBoard.Board(), Komi{})
	is.Equal(r.BlackPoints, 0)
	is.Equal(r.WhitePoints, 0)
	is.Equal(r.Neutral, 25)
}

func TestTieNeedsStrictlyGreater(t *testing.T) {
	is := is.New(t)
	b := board.Split.Board()
	ScoreStones(b)
	r := ScoreSums(b, Komi{Points: 0, Color: board.White})
	is.Equal(r.Winner, board.Empty)
	is.Equal(r.Margin(), 0.0)
}

func TestNewKomi(t *testing.T) {
	is := is.New(t)
	k, err := NewKomi(7.5, "white")
	is.NoErr(err)
	is.Equal(k, Komi{Points: 7.5, Color: board.White})
	is.Equal(k.String(), "7.5 for white")

	k, err = NewKomi(0, "b")
	is.NoErr(err)
	is.Equal(k.String(), "no komi")

	_, err = NewKomi(-1, "white")
	is.True(err != nil)
	_, err = NewKomi(6.5, "green")
	is.True(err != nil)
}

func TestResultDetails(t *testing.T) {
	is := is.New(t)
	r := Score(board.DemoBoard.Board(), DefaultKomi)
	is.Equal(r.Details(), "black 9, white 8 + 6.5 for white: 9 to 14.5 (8 neutral)")
}

func BenchmarkScore(b *testing.B) {
	src := board.NineByNine.Board()
	bd := src.Copy()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bd.CopyFrom(src)
		Score(bd, DefaultKomi)
	}
}
