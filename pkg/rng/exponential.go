package rng

import "math"

// Exponential returns an exponentially distributed value with rate lambda in [0, +Inf)
func (g *Generator) Exponential(lambda float64) (float64, error) {
	if err := g.checkExponential(lambda); err != nil {
		return -1.0, err
	}
	return g.exponential(lambda), nil
}

func (g *Generator) checkExponential(lambda float64) error {
	return g.check(lambda > 0.0, "exponential", "lambda must be > 0")
}

func (g *Generator) exponential(lambda float64) float64 {
	return -math.Log(1.0-g.Uniform01()) / lambda
}

// Weibull returns a Weibull distributed value with characteristic life m and shape k using inversion
func (g *Generator) Weibull(m, k float64) (float64, error) {
	if err := g.checkWeibull(m, k); err != nil {
		return -1.0, err
	}
	return m * math.Pow(-math.Log(1.0-g.Uniform01()), 1.0/k), nil
}

func (g *Generator) checkWeibull(m, k float64) error {
	return g.check(m > 0.0 && k > 0.0, "weibull", "m and k must be > 0")
}
