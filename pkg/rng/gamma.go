package rng

import "math"

// Gamma returns a gamma distributed value with shape k and rate b (mean k/b).  Shapes below one use
// the Ahrens-Dieter rejection method, shapes above one use rejection from a Cauchy-like envelope.
// Neither loop is capped.
func (g *Generator) Gamma(k, b float64) (float64, error) {
	if err := g.checkGamma(k, b); err != nil {
		return -1.0, err
	}
	return g.gamma(k, b), nil
}

func (g *Generator) checkGamma(k, b float64) error {
	return g.check(k > 0.0 && b > 0.0, "gamma", "k and b must be > 0")
}

func (g *Generator) gamma(k, b float64) float64 {
	switch {
	case k < 1.0:
		var xx, yy float64
		for {
			xx = math.Pow(g.Uniform01(), 1.0/k)
			yy = math.Pow(g.Uniform01(), 1.0/(1.0-k))
			if xx+yy <= 1.0 {
				break
			}
		}
		xx = xx / (xx + yy)
		return xx * g.exponential(1.0) / b
	case k == 1.0:
		return g.exponential(1.0) / b
	}

	am := k - 1.0
	s := math.Sqrt(2.0*am + 1.0)
	for {
		var yy, avg float64
		for {
			v1, v2 := g.unitDisk()
			yy = v2 / v1
			avg = s*yy + am
			if avg > 0.0 {
				break
			}
		}
		e := (1.0 + yy*yy) * math.Exp(am*math.Log(avg/am)-s*yy)
		if g.Uniform01() <= e {
			return avg / b
		}
	}
}

// unitDisk returns a point drawn uniformly from the unit disk
func (g *Generator) unitDisk() (float64, float64) {
	for {
		v1 := 2.0*g.Uniform01() - 1.0
		v2 := 2.0*g.Uniform01() - 1.0
		if v1*v1+v2*v2 <= 1.0 {
			return v1, v2
		}
	}
}

// Erlang returns the sum of k exponential variates with rate lambda
func (g *Generator) Erlang(k int, lambda float64) (float64, error) {
	if err := g.checkErlang(k, lambda); err != nil {
		return -1.0, err
	}
	return g.gamma(float64(k), lambda), nil
}

func (g *Generator) checkErlang(k int, lambda float64) error {
	return g.check(k > 0 && lambda > 0.0, "erlang", "k and lambda must be > 0")
}

// ChiSquare returns a chi-square distributed value with k degrees of freedom
func (g *Generator) ChiSquare(k int) (float64, error) {
	if err := g.checkChiSquare(k); err != nil {
		return -1.0, err
	}
	return g.gamma(float64(k)/2.0, 0.5), nil
}

func (g *Generator) checkChiSquare(k int) error {
	return g.check(k > 0, "chisquare", "k must be > 0")
}

// Beta returns a beta distributed value in [0,1] built from two gamma variates
func (g *Generator) Beta(a, b float64) (float64, error) {
	if err := g.checkBeta(a, b); err != nil {
		return -1.0, err
	}
	x := g.gamma(a, 1.0)
	y := g.gamma(b, 1.0)
	return x / (x + y), nil
}

func (g *Generator) checkBeta(a, b float64) error {
	return g.check(a > 0.0 && b > 0.0, "beta", "a and b must be > 0")
}

// Student returns a Student's t distributed value with n degrees of freedom
func (g *Generator) Student(n int) (float64, error) {
	if err := g.checkStudent(n); err != nil {
		return -1.0, err
	}
	z := g.normal(0.0, 1.0)
	return z / math.Sqrt(g.gamma(float64(n)/2.0, 0.5)/float64(n)), nil
}

func (g *Generator) checkStudent(n int) error {
	return g.check(n > 0, "student", "n must be > 0")
}

// F returns an F distributed value with n and m degrees of freedom
func (g *Generator) F(n, m int) (float64, error) {
	if err := g.checkF(n, m); err != nil {
		return -1.0, err
	}
	x := g.gamma(float64(n)/2.0, 0.5) / float64(n)
	y := g.gamma(float64(m)/2.0, 0.5) / float64(m)
	return x / y, nil
}

func (g *Generator) checkF(n, m int) error {
	return g.check(n > 0 && m > 0, "f", "n and m must be > 0")
}
