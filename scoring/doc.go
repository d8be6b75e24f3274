// Package scoring scores a finished game of Go under area scoring.
//
// Scoring is a pipeline over one board: GuessDeadStones marks captured
// stones still on the board, ScoreStones marks every point that counts and
// for whom, and ScoreSums totals the points and applies komi. Each stage
// leaves its results on the board for the next one. Score runs all three.
//
// Nothing here locks; a board must not be scored from two goroutines at
// once.
package scoring
