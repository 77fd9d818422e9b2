package stat

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// PDF is the theoretical distribution a generator is expected to follow.  Every gonum distuv
// distribution with finite moments satisfies it.
type PDF interface {
	Mean() float64
	Variance() float64
}

var _ PDF = distuv.Poisson{}
var _ PDF = Geometric{}

// Moments are the first two moments of a distribution or a sample
type Moments struct {
	Mean     float64
	Variance float64
}

// StdDev returns the square root of the variance
func (m Moments) StdDev() float64 {
	return math.Sqrt(m.Variance)
}

// Theoretical returns the moments of the distribution
func Theoretical(p PDF) Moments {
	return Moments{Mean: p.Mean(), Variance: p.Variance()}
}

// Geometric is the number of Bernoulli trials up to and including the first success.  gonum has no
// matching distribution.
type Geometric struct {
	P float64
}

func (g Geometric) Mean() float64 {
	return 1.0 / g.P
}

func (g Geometric) Variance() float64 {
	return (1.0 - g.P) / (g.P * g.P)
}
