package rng

import "math"

// binomialEnvelope caches the log terms for the last trial count and probability seen by the generator
type binomialEnvelope struct {
	n     int
	nok   bool
	oldg  float64
	prob  float64
	pok   bool
	plog  float64
	pclog float64
}

func (e *binomialEnvelope) get(prob float64, n int) *binomialEnvelope {
	if !e.nok || e.n != n {
		e.n, e.nok = n, true
		e.oldg = LnGamma(float64(n) + 1.0)
	}
	if !e.pok || e.prob != prob {
		e.prob, e.pok = prob, true
		e.plog = math.Log(prob)
		e.pclog = math.Log(1.0 - prob)
	}
	return e
}

// Binomial returns the number of successes in n trials with success probability p, in {0,...,n}.  p
// must be in (0,1).  Small n is simulated directly, a small mean uses Poisson style multiplication and
// everything else uses rejection from a Lorentzian envelope.
func (g *Generator) Binomial(p float64, n int) (int, error) {
	if err := g.checkBinomial(p, n); err != nil {
		return -1, err
	}

	prob := p
	if p > 0.5 {
		prob = 1.0 - p
	}
	am := float64(n) * prob

	var bnl int
	switch {
	case n < 25:
		for j := 0; j < n; j++ {
			if g.Uniform01() < prob {
				bnl++
			}
		}
	case am < 10.0:
		limit := math.Exp(-am)
		t := 1.0
		j := 0
		for ; j <= n; j++ {
			t *= g.Uniform01()
			if t < limit {
				break
			}
		}
		if j > n {
			j = n
		}
		bnl = j
	default:
		bnl = g.binomialRejection(prob, n, am)
	}

	if prob != p {
		bnl = n - bnl
	}
	return bnl, nil
}

func (g *Generator) checkBinomial(p float64, n int) error {
	if err := g.check(p > 0.0 && p < 1.0, "binomial", "p must be in (0,1)"); err != nil {
		return err
	}
	return g.check(n >= 0, "binomial", "n must be >= 0")
}

func (g *Generator) binomialRejection(prob float64, n int, am float64) int {
	env := g.binomial.get(prob, n)
	en := float64(n)
	sq := math.Sqrt(2.0 * am * (1.0 - prob))
	for {
		var em, yy float64
		for {
			yy = math.Tan(math.Pi * g.Uniform01())
			em = sq*yy + am
			if em >= 0.0 && em < en+1.0 {
				break
			}
		}
		em = math.Floor(em)
		t := 1.2 * sq * (1.0 + yy*yy) * math.Exp(env.oldg-LnGamma(em+1.0)-LnGamma(en-em+1.0)+em*env.plog+(en-em)*env.pclog)
		if g.Uniform01() <= t {
			return int(em)
		}
	}
}
