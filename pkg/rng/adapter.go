package rng

import (
	"fmt"
	"sort"
	"strings"
)

var _ RNG = &ExponentialRNG{}
var _ RNG = &GammaRNG{}
var _ RNG = &PoissonRNG{}
var _ RNG = &BinomialRNG{}
var _ RNG = &NormalRNG{}
var _ RNG = &LogNormalRNG{}
var _ RNG = Func(nil)

// ExponentialRNG generates exponentially distributed numbers with a fixed rate
type ExponentialRNG struct {
	lambda float64
	g      *Generator
}

func (r *ExponentialRNG) Rand() float64 {
	return r.g.exponential(r.lambda)
}

// NewExponentialRNG binds an exponential distribution with rate lambda to g
func NewExponentialRNG(g *Generator, lambda float64) (*ExponentialRNG, error) {
	if err := g.checkExponential(lambda); err != nil {
		return nil, err
	}
	return &ExponentialRNG{lambda: lambda, g: g}, nil
}

// GammaRNG generates gamma distributed numbers with shape k and rate b
type GammaRNG struct {
	k float64
	b float64
	g *Generator
}

func (r *GammaRNG) Rand() float64 {
	return r.g.gamma(r.k, r.b)
}

func NewGammaRNG(g *Generator, k float64, b float64) (*GammaRNG, error) {
	if err := g.checkGamma(k, b); err != nil {
		return nil, err
	}
	return &GammaRNG{k: k, b: b, g: g}, nil
}

// PoissonRNG generates Poisson distributed numbers with a fixed mean
type PoissonRNG struct {
	lambda float64
	g      *Generator
}

func (r *PoissonRNG) Rand() float64 {
	return float64(r.g.Poisson(r.lambda))
}

// NewPoissonRNG binds a Poisson distribution with mean lambda to g
func NewPoissonRNG(g *Generator, lambda float64) (*PoissonRNG, error) {
	if err := g.check(lambda > 0.0, "poisson", "lambda must be > 0"); err != nil {
		return nil, err
	}
	return &PoissonRNG{lambda: lambda, g: g}, nil
}

// BinomialRNG generates the number of successes in n trials with success probability p
type BinomialRNG struct {
	p float64
	n int
	g *Generator
}

func (r *BinomialRNG) Rand() float64 {
	v, _ := r.g.Binomial(r.p, r.n)
	return float64(v)
}

func NewBinomialRNG(g *Generator, p float64, n int) (*BinomialRNG, error) {
	if err := g.checkBinomial(p, n); err != nil {
		return nil, err
	}
	return &BinomialRNG{p: p, n: n, g: g}, nil
}

// NormalRNG generates normally distributed numbers with the Box-Muller transform
type NormalRNG struct {
	mu    float64
	sigma float64
	g     *Generator
}

func (r *NormalRNG) Rand() float64 {
	return r.g.normal(r.mu, r.sigma)
}

func NewNormalRNG(g *Generator, mu float64, sigma float64) (*NormalRNG, error) {
	if err := g.checkNormal(sigma); err != nil {
		return nil, err
	}
	return &NormalRNG{mu: mu, sigma: sigma, g: g}, nil
}

// LogNormalRNG generates Log Normal random numbers
type LogNormalRNG struct {
	mean  float64
	stdev float64
	g     *Generator
}

func (r *LogNormalRNG) Rand() float64 {
	v, _ := r.g.LogNormal(r.mean, r.stdev)
	return v
}

// NewLogNormalRNG binds a log-normal distribution to g.  mean and stdev describe the underlying normal.
func NewLogNormalRNG(g *Generator, mean float64, stdev float64) (*LogNormalRNG, error) {
	if err := g.checkLogNormal(stdev); err != nil {
		return nil, err
	}
	return &LogNormalRNG{mean: mean, stdev: stdev, g: g}, nil
}

// Func adapts a sampling closure to the RNG interface
type Func func() float64

func (f Func) Rand() float64 {
	return f()
}

// bind returns next as an RNG once the parameters have passed validation.  Validation never
// draws from the generator.
func bind(err error, next func() float64) (RNG, error) {
	if err != nil {
		return nil, err
	}
	return Func(next), nil
}

// builder binds a distribution with a fixed number of parameters to a generator
type builder struct {
	params int
	build  func(g *Generator, p []float64) (RNG, error)
}

var distributions = map[string]builder{
	"uniform": {2, func(g *Generator, p []float64) (RNG, error) {
		return bind(g.checkUniform(p[0], p[1]), func() float64 { v, _ := g.Uniform(p[0], p[1]); return v })
	}},
	"uniform_int": {1, func(g *Generator, p []float64) (RNG, error) {
		return bind(g.checkUniformInt(int(p[0])), func() float64 { v, _ := g.UniformInt(int(p[0])); return float64(v) })
	}},
	"exponential": {1, func(g *Generator, p []float64) (RNG, error) {
		r, err := NewExponentialRNG(g, p[0])
		if err != nil {
			return nil, err
		}
		return r, nil
	}},
	"erlang": {2, func(g *Generator, p []float64) (RNG, error) {
		return bind(g.checkErlang(int(p[0]), p[1]), func() float64 { v, _ := g.Erlang(int(p[0]), p[1]); return v })
	}},
	"gamma": {2, func(g *Generator, p []float64) (RNG, error) {
		r, err := NewGammaRNG(g, p[0], p[1])
		if err != nil {
			return nil, err
		}
		return r, nil
	}},
	"normal": {2, func(g *Generator, p []float64) (RNG, error) {
		r, err := NewNormalRNG(g, p[0], p[1])
		if err != nil {
			return nil, err
		}
		return r, nil
	}},
	"lognormal": {2, func(g *Generator, p []float64) (RNG, error) {
		r, err := NewLogNormalRNG(g, p[0], p[1])
		if err != nil {
			return nil, err
		}
		return r, nil
	}},
	"chisquare": {1, func(g *Generator, p []float64) (RNG, error) {
		return bind(g.checkChiSquare(int(p[0])), func() float64 { v, _ := g.ChiSquare(int(p[0])); return v })
	}},
	"beta": {2, func(g *Generator, p []float64) (RNG, error) {
		return bind(g.checkBeta(p[0], p[1]), func() float64 { v, _ := g.Beta(p[0], p[1]); return v })
	}},
	"student": {1, func(g *Generator, p []float64) (RNG, error) {
		return bind(g.checkStudent(int(p[0])), func() float64 { v, _ := g.Student(int(p[0])); return v })
	}},
	"f": {2, func(g *Generator, p []float64) (RNG, error) {
		return bind(g.checkF(int(p[0]), int(p[1])), func() float64 { v, _ := g.F(int(p[0]), int(p[1])); return v })
	}},
	"weibull": {2, func(g *Generator, p []float64) (RNG, error) {
		return bind(g.checkWeibull(p[0], p[1]), func() float64 { v, _ := g.Weibull(p[0], p[1]); return v })
	}},
	"poisson": {1, func(g *Generator, p []float64) (RNG, error) {
		r, err := NewPoissonRNG(g, p[0])
		if err != nil {
			return nil, err
		}
		return r, nil
	}},
	"geometric": {1, func(g *Generator, p []float64) (RNG, error) {
		return bind(g.checkGeometric(p[0]), func() float64 { v, _ := g.Geometric(p[0]); return float64(v) })
	}},
	"binomial": {2, func(g *Generator, p []float64) (RNG, error) {
		r, err := NewBinomialRNG(g, p[0], int(p[1]))
		if err != nil {
			return nil, err
		}
		return r, nil
	}},
	"triangular": {1, func(g *Generator, p []float64) (RNG, error) {
		return bind(g.checkTriangular(p[0]), func() float64 { v, _ := g.Triangular(p[0]); return v })
	}},
	"probability": {1, func(g *Generator, p []float64) (RNG, error) {
		return bind(g.checkProbability(p[0]), func() float64 {
			if ok, _ := g.Probability(p[0]); ok {
				return 1.0
			}
			return 0.0
		})
	}},
}

// Distributions returns the names accepted by NewRNG in sorted order
func Distributions() []string {
	out := make([]string, 0, len(distributions))
	for name := range distributions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// NewRNG binds the named distribution and its parameters to g without drawing from it.  Parameters are
// given in the order of the matching Generator method, e.g. binomial takes (p, n).  Integer parameters
// are truncated.
func NewRNG(g *Generator, name string, params ...float64) (RNG, error) {
	b, ok := distributions[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown distribution %q, expected one of %s", name, strings.Join(Distributions(), ", "))
	}
	if len(params) != b.params {
		return nil, fmt.Errorf("distribution %s takes %d parameters, got %d", name, b.params, len(params))
	}
	p := make([]float64, len(params))
	copy(p, params)
	return b.build(g, p)
}

// Method names the sampling branch the generator takes for a distribution and its parameters, such as
// "rejection" for a Poisson mean of 12 or more.  Distributions with a single method return "".
func Method(name string, params ...float64) string {
	switch strings.ToLower(name) {
	case "gamma":
		if len(params) < 1 {
			return ""
		}
		return gammaMethod(params[0])
	case "erlang":
		if len(params) < 1 {
			return ""
		}
		return gammaMethod(float64(int(params[0])))
	case "chisquare":
		if len(params) < 1 {
			return ""
		}
		return gammaMethod(float64(int(params[0])) / 2.0)
	case "poisson":
		if len(params) < 1 {
			return ""
		}
		if params[0] < 12.0 {
			return "multiplication"
		}
		return "rejection"
	case "binomial":
		if len(params) < 2 {
			return ""
		}
		prob, n := params[0], int(params[1])
		if prob > 0.5 {
			prob = 1.0 - prob
		}
		switch {
		case n < 25:
			return "direct"
		case float64(n)*prob < 10.0:
			return "multiplication"
		default:
			return "rejection"
		}
	}
	return ""
}

func gammaMethod(k float64) string {
	switch {
	case k < 1.0:
		return "ahrens_dieter"
	case k == 1.0:
		return "exponential"
	default:
		return "rejection"
	}
}
