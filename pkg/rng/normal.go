package rng

import "math"

// Normal returns a normally distributed value with mean mu and standard deviation sigma using the
// Box-Muller transform
func (g *Generator) Normal(mu, sigma float64) (float64, error) {
	if err := g.checkNormal(sigma); err != nil {
		return -1.0, err
	}
	return g.normal(mu, sigma), nil
}

func (g *Generator) checkNormal(sigma float64) error {
	return g.check(sigma < 0.0 || sigma > 0.0, "normal", "sigma must be != 0")
}

func (g *Generator) normal(mu, sigma float64) float64 {
	// log(0) is undefined
	u1 := 0.0
	for u1 <= 0.0 {
		u1 = g.Uniform01()
	}
	u2 := g.Uniform01()
	r := math.Sqrt(-2.0 * math.Log(u1))
	return mu + sigma*r*math.Cos(2.0*math.Pi*u2)
}

// LogNormal returns exp(X) where X is normal with mean mu and standard deviation sigma
func (g *Generator) LogNormal(mu, sigma float64) (float64, error) {
	if err := g.checkLogNormal(sigma); err != nil {
		return -1.0, err
	}
	return math.Exp(g.normal(mu, sigma)), nil
}

func (g *Generator) checkLogNormal(sigma float64) error {
	return g.check(sigma > 0.0, "lognormal", "sigma must be > 0")
}
