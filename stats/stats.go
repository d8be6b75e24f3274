package stats

import "math"

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Running keeps the count, mean and variance of a stream of values using
// Welford's algorithm, without storing the values.
type Running struct {
	n    int
	mean float64
	m2   float64
	min  float64
	max  float64
}

func (s *Running) Push(val float64) {
	s.n++
	if s.n == 1 {
		s.mean, s.m2 = val, 0
		s.min, s.max = val, val
		return
	}
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
	s.min = math.Min(s.min, val)
	s.max = math.Max(s.max, val)
}

func (s *Running) Count() int {
	return s.n
}

func (s *Running) Mean() float64 {
	return s.mean
}

// Variance is the sample variance; zero with fewer than two values.
func (s *Running) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Running) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Running) Min() float64 {
	return s.min
}

func (s *Running) Max() float64 {
	return s.max
}

// StandardError returns the standard error of the mean.
func (s *Running) StandardError() float64 {
	if s.n == 0 {
		return 0.0
	}
	return math.Sqrt(s.Variance() / float64(s.n))
}

// HalfWidth returns the half-width of the confidence interval around the
// mean at the given confidence level, in percent.
func (s *Running) HalfWidth(confidence float64) float64 {
	return ZVal(confidence) * s.StandardError()
}
