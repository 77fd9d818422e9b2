package rng

import (
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Generator produces variates from several probability distributions on top of a seeded PCG
// uniform source.  A Generator owns its state and is not safe for concurrent use.  Use one generator
// per goroutine or guard every call with a mutex.
type Generator struct {
	seed uint64
	r    *rand.Rand
	log  zerolog.Logger

	poisson  poissonEnvelope
	binomial binomialEnvelope
}

// Option configures a new Generator
type Option func(g *Generator)

// WithSeed seeds the generator with an explicit value to get a reproducible sequence of variates
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithLogger replaces the diagnostic logger that receives invalid argument reports.  Use zerolog.Nop()
// to silence them.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) {
		g.log = l
	}
}

// New returns a generator seeded from the wall clock unless WithSeed is given
func New(opts ...Option) *Generator {
	g := &Generator{
		seed: GenerateSeed(),
		log:  zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("component", "rng").Logger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.r = rand.New(rand.NewSource(g.seed))
	return g
}

// Seed returns the seed used to initialize the generator
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Uniform01 returns a uniformly distributed value in [0,1)
func (g *Generator) Uniform01() float64 {
	return g.r.Float64()
}

// Float64 is Uniform01 under the name used by math/rand style sources
func (g *Generator) Float64() float64 {
	return g.Uniform01()
}

// Uniform returns a uniformly distributed value in [a,b).  If a >= b, or either bound is NaN, it
// returns -1.0 and an InvalidArgumentError.
func (g *Generator) Uniform(a, b float64) (float64, error) {
	if err := g.checkUniform(a, b); err != nil {
		return -1.0, err
	}
	return g.Uniform01()*(b-a) + a, nil
}

func (g *Generator) checkUniform(a, b float64) error {
	return g.check(a < b, "uniform", "b must be greater than a")
}

// UniformInt returns a uniformly distributed integer in [0,b)
func (g *Generator) UniformInt(b int) (int, error) {
	if err := g.checkUniformInt(b); err != nil {
		return -1, err
	}
	return int(g.Uniform01() * float64(b)), nil
}

func (g *Generator) checkUniformInt(b int) error {
	return g.check(b > 0, "uniform_int", "b must be > 0")
}
