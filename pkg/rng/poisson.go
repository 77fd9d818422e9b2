package rng

import "math"

// poissonEnvelope caches the terms of the rejection envelope for the last mean seen by the generator
type poissonEnvelope struct {
	mean float64
	ok   bool
	g    float64 // exp(-a) below 12, a*ln(a) - lnGamma(a+1) above
	sq   float64
	alxm float64
}

func (e *poissonEnvelope) get(a float64) *poissonEnvelope {
	if e.ok && e.mean == a {
		return e
	}
	e.mean, e.ok = a, true
	if a < 12.0 {
		e.g = math.Exp(-a)
		return e
	}
	e.sq = math.Sqrt(2.0 * a)
	e.alxm = math.Log(a)
	e.g = a*e.alxm - LnGamma(a+1.0)
	return e
}

// Poisson returns a Poisson distributed count with mean a.  Means below 12 use Knuth's multiplication
// method, larger means use rejection from a Lorentzian envelope.  The mean is not validated.
func (g *Generator) Poisson(a float64) int {
	env := g.poisson.get(a)

	if a < 12.0 {
		em := -1
		t := 1.0
		for {
			em++
			t *= g.Uniform01()
			if t <= env.g {
				return em
			}
		}
	}

	for {
		var em, yy float64
		for {
			yy = math.Tan(math.Pi * g.Uniform01())
			em = env.sq*yy + a
			if em >= 0.0 {
				break
			}
		}
		em = math.Floor(em)
		t := 0.9 * (1.0 + yy*yy) * math.Exp(em*env.alxm-LnGamma(em+1.0)-env.g)
		if g.Uniform01() <= t {
			return int(em)
		}
	}
}
