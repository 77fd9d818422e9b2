package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	g := quiet(100)
	mean := sampleMean(100000, func() float64 {
		v, err := g.Exponential(2.0)
		require.NoError(t, err)
		require.True(t, v >= 0.0)
		return v
	})
	assert.InEpsilon(t, 0.5, mean, 0.05)

	v, err := g.Exponential(0.0)
	assert.Equal(t, -1.0, v)
	assert.True(t, IsInvalidArgument(err))
}

func TestGamma(t *testing.T) {
	tt := []struct {
		name string
		k    float64
		b    float64
	}{
		{name: "k<1", k: 0.5, b: 1.0},
		{name: "k=1 matches exponential", k: 1.0, b: 2.0},
		{name: "k>1", k: 3.0, b: 2.0},
		{name: "k just above 1", k: 1.2, b: 0.5},
		{name: "large k", k: 40.0, b: 4.0},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			g := quiet(200)
			mean := sampleMean(100000, func() float64 {
				v, err := g.Gamma(tc.k, tc.b)
				require.NoError(t, err)
				require.True(t, v >= 0.0)
				return v
			})
			assert.InEpsilon(t, tc.k/tc.b, mean, 0.05)
		})
	}
}

func TestGammaInvalid(t *testing.T) {
	g := quiet(1)
	for _, p := range [][2]float64{{0, 1}, {-1, 1}, {1, 0}, {2, -3}} {
		v, err := g.Gamma(p[0], p[1])
		assert.Equal(t, -1.0, v)
		assert.True(t, IsInvalidArgument(err))
	}
}

func TestPoisson(t *testing.T) {
	for _, a := range []float64{0.5, 5.0, 11.9, 12.0, 25.0, 140.0} {
		g := quiet(300)
		mean := sampleMean(50000, func() float64 {
			v := g.Poisson(a)
			require.True(t, v >= 0)
			return float64(v)
		})
		assert.InEpsilon(t, a, mean, 0.05, "mean %f", a)
	}
}

func TestPoissonEnvelopeCache(t *testing.T) {
	fresh := (&poissonEnvelope{}).get(20.0)
	cached := &poissonEnvelope{}
	cached.get(20.0)
	cached.get(3.0)
	cached.get(45.0)
	cached.get(20.0)
	assert.Equal(t, *fresh, *cached)

	fb := (&binomialEnvelope{}).get(0.3, 100)
	cb := &binomialEnvelope{}
	cb.get(0.2, 100)
	cb.get(0.3, 60)
	cb.get(0.3, 100)
	assert.Equal(t, *fb, *cb)
}

func TestBinomial(t *testing.T) {
	tt := []struct {
		name string
		p    float64
		n    int
	}{
		{name: "direct", p: 0.3, n: 10},
		{name: "small mean", p: 0.05, n: 100},
		{name: "rejection", p: 0.3, n: 50},
		{name: "flipped", p: 0.7, n: 50},
		{name: "flipped small mean", p: 0.98, n: 200},
		{name: "large", p: 0.45, n: 1000},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			g := quiet(400)
			mean := sampleMean(20000, func() float64 {
				v, err := g.Binomial(tc.p, tc.n)
				require.NoError(t, err)
				require.True(t, v >= 0 && v <= tc.n, "draw %d outside [0, %d]", v, tc.n)
				return float64(v)
			})
			assert.InEpsilon(t, tc.p*float64(tc.n), mean, 0.05)
		})
	}
}

func TestBinomialInvalid(t *testing.T) {
	g := quiet(1)
	for _, p := range []float64{0.0, 1.0, 1.5, -0.2} {
		v, err := g.Binomial(p, 10)
		assert.Equal(t, -1, v)
		assert.True(t, IsInvalidArgument(err))
	}
	v, err := g.Binomial(0.5, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestProbability(t *testing.T) {
	g := quiet(500)
	for i := 0; i < 10000; i++ {
		never, err := g.Probability(0.0)
		require.NoError(t, err)
		require.False(t, never)

		always, err := g.Probability(1.0)
		require.NoError(t, err)
		require.True(t, always)
	}

	hits := 0
	for i := 0; i < 100000; i++ {
		if ok, _ := g.Probability(0.25); ok {
			hits++
		}
	}
	assert.InDelta(t, 0.25, float64(hits)/100000.0, 0.01)

	ok, err := g.Probability(1.1)
	assert.False(t, ok)
	assert.True(t, IsInvalidArgument(err))

	ok, err = g.Probability(math.NaN())
	assert.False(t, ok)
	assert.True(t, IsInvalidArgument(err))
}

func TestGeometric(t *testing.T) {
	g := quiet(600)
	mean := sampleMean(50000, func() float64 {
		v, err := g.Geometric(0.2)
		require.NoError(t, err)
		require.True(t, v >= 1)
		return float64(v)
	})
	assert.InEpsilon(t, 5.0, mean, 0.05)
}

func TestTriangular(t *testing.T) {
	g := quiet(700)
	for _, a := range []float64{0.0, 0.3, 1.0} {
		mean := sampleMean(50000, func() float64 {
			v, err := g.Triangular(a)
			require.NoError(t, err)
			require.True(t, v >= 0.0 && v <= 1.0)
			return v
		})
		assert.InDelta(t, (1.0+a)/3.0, mean, 0.01)
	}
}

func TestNormal(t *testing.T) {
	g := quiet(800)
	n := 10000
	values := make([]float64, n)
	for i := range values {
		v, err := g.Normal(2.5, 1.7)
		require.NoError(t, err)
		values[i] = v
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean = mean / float64(n)
	variance := 0.0
	for _, v := range values {
		variance += math.Pow(v-mean, 2.0)
	}
	variance = variance / float64(n-1)
	assert.InDelta(t, 2.5, mean, 0.05)
	assert.InDelta(t, 1.7, math.Sqrt(variance), 0.05)

	_, err := g.Normal(0, 0)
	assert.True(t, IsInvalidArgument(err))
}

func TestDerivedDistributions(t *testing.T) {
	tt := []struct {
		name string
		exp  float64
		draw func(g *Generator) (float64, error)
	}{
		{name: "erlang", exp: 1.5, draw: func(g *Generator) (float64, error) { return g.Erlang(3, 2.0) }},
		{name: "chisquare", exp: 4.0, draw: func(g *Generator) (float64, error) { return g.ChiSquare(4) }},
		{name: "beta", exp: 2.0 / 7.0, draw: func(g *Generator) (float64, error) { return g.Beta(2.0, 5.0) }},
		{name: "student", exp: 0.0, draw: func(g *Generator) (float64, error) { return g.Student(10) }},
		{name: "f", exp: 10.0 / 8.0, draw: func(g *Generator) (float64, error) { return g.F(5, 10) }},
		{name: "weibull", exp: 2.0 * math.Gamma(1.5), draw: func(g *Generator) (float64, error) { return g.Weibull(2.0, 2.0) }},
		{name: "lognormal", exp: math.Exp(0.125), draw: func(g *Generator) (float64, error) { return g.LogNormal(0.0, 0.5) }},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			g := quiet(900)
			mean := sampleMean(100000, func() float64 {
				v, err := tc.draw(g)
				require.NoError(t, err)
				return v
			})
			assert.InDelta(t, tc.exp, mean, 0.05*math.Max(tc.exp, 0.2))
		})
	}
}
