package rng

import "math"

// Probability returns true with probability p.  A draw equal to p counts as a success, so p = 1 always
// succeeds and p = 0 never does.
func (g *Generator) Probability(p float64) (bool, error) {
	if err := g.checkProbability(p); err != nil {
		return false, err
	}
	return g.Uniform01() <= p, nil
}

func (g *Generator) checkProbability(p float64) error {
	return g.check(p >= 0.0 && p <= 1.0, "probability", "p must be in [0,1]")
}

// Geometric returns the number of Bernoulli trials up to and including the first success
func (g *Generator) Geometric(p float64) (int, error) {
	if err := g.checkGeometric(p); err != nil {
		return -1, err
	}
	return 1 + int(math.Floor(math.Log(1.0-g.Uniform01())/math.Log(1.0-p))), nil
}

// Triangular returns a value in [0,1] from the triangular distribution with mode a
func (g *Generator) Triangular(a float64) (float64, error) {
	if err := g.checkTriangular(a); err != nil {
		return -1.0, err
	}
	u := g.Uniform01()
	if u < a {
		return math.Sqrt(u * a), nil
	}
	return 1.0 - math.Sqrt((1.0-u)*(1.0-a)), nil
}

func (g *Generator) checkGeometric(p float64) error {
	return g.check(p > 0.0 && p < 1.0, "geometric", "p must be in (0,1)")
}

func (g *Generator) checkTriangular(a float64) error {
	return g.check(a >= 0.0 && a <= 1.0, "triangular", "a must be in [0,1]")
}
