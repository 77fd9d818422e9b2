package stat

import (
	"math"
	"testing"

	"github.com/BTBurke/rngen/pkg/metric"
	"github.com/BTBurke/rngen/pkg/rng"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestEmpirical(t *testing.T) {
	m := Empirical([]float64{1.0, 1.0, 1.0, 2.0, 2.0, 2.0})
	assert.Equal(t, 1.5, m.Mean)
	assert.InDelta(t, 0.3, m.Variance, 1e-12)

	one := Empirical([]float64{4.0})
	assert.Equal(t, Moments{Mean: 4.0}, one)
}

func TestGeometricMoments(t *testing.T) {
	m := Theoretical(Geometric{P: 0.25})
	assert.Equal(t, 4.0, m.Mean)
	assert.Equal(t, 12.0, m.Variance)
	assert.InDelta(t, math.Sqrt(12.0), m.StdDev(), 1e-12)
}

func TestTolerance(t *testing.T) {
	tol := Tolerance{Relative: 0.05, Sigma: 3.0}
	tt := []struct {
		name string
		m    Moments
		n    int
		mean float64
		vari float64
	}{
		{name: "relative wins", m: Moments{Mean: 10, Variance: 4}, n: 10000, mean: 0.5, vari: 0.2},
		{name: "zero mean uses standard error", m: Moments{Mean: 0, Variance: 1}, n: 100, mean: 0.3, vari: 3.0 * math.Sqrt(2.0/99.0)},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.mean, tol.MeanBound(tc.m, tc.n), 1e-9)
			assert.InDelta(t, tc.vari, tol.VarianceBound(tc.m, tc.n), 1e-9)
		})
	}
	assert.True(t, math.IsInf(tol.VarianceBound(Moments{Variance: 1}, 1), 1))
}

func TestCheck(t *testing.T) {
	g := rng.New(rng.WithSeed(17), rng.WithLogger(zerolog.Nop()))
	r, err := rng.NewRNG(g, "exponential", 2.0)
	require.NoError(t, err)

	res, err := Check(metric.ParamName("exponential", "lambda", 2.0), r, distuv.Exponential{Rate: 2.0}, 100000, DefaultTolerance())
	require.NoError(t, err)
	assert.True(t, res.Pass(), "%+v", res)
	assert.Equal(t, "exponential[lambda=2]", res.Name)
	assert.Equal(t, 0.5, res.Theoretical.Mean)
	assert.GreaterOrEqual(t, res.Min, 0.0)
	assert.InDelta(t, math.Sqrt(0.25/100000.0), res.StdErr, 0.0005)
}

func TestCheckDetectsWrongDistribution(t *testing.T) {
	g := rng.New(rng.WithSeed(17), rng.WithLogger(zerolog.Nop()))
	r, err := rng.NewRNG(g, "exponential", 1.0)
	require.NoError(t, err)

	res, err := Check(metric.ParamName("exponential", "lambda", 1.0), r, distuv.Exponential{Rate: 2.0}, 10000, DefaultTolerance())
	require.NoError(t, err)
	assert.False(t, res.Pass())
	assert.False(t, res.MeanPass)
}

func TestCheckInvalidSize(t *testing.T) {
	g := rng.New(rng.WithSeed(1), rng.WithLogger(zerolog.Nop()))
	r, _ := rng.NewRNG(g, "exponential", 1.0)
	_, err := Check(metric.ParamName("exponential"), r, distuv.Exponential{Rate: 1.0}, 0, DefaultTolerance())
	assert.Error(t, err)
}

func TestDefaultSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("moment suite draws several million variates")
	}
	s := &Suite{
		Seed:      20251120,
		N:         100000,
		Tolerance: DefaultTolerance(),
		Cases:     DefaultCases(),
		Log:       zerolog.Nop(),
	}
	results := s.Run()
	require.Len(t, results, len(s.Cases))
	for i, r := range results {
		assert.Equal(t, s.Cases[i].Name.String(), r.Name)
	}
	assert.Empty(t, Failed(results))
}

func TestSuiteReproducible(t *testing.T) {
	cases := []Case{
		NewCase("poisson", []string{"lambda"}, []float64{20.0}, distuv.Poisson{Lambda: 20.0}),
		NewCase("binomial", []string{"p", "n"}, []float64{0.4, 80}, distuv.Binomial{N: 80, P: 0.4}),
	}
	run := func() []Result {
		s := &Suite{Seed: 5, N: 5000, Tolerance: DefaultTolerance(), Cases: cases, Log: zerolog.Nop()}
		return s.Run()
	}
	assert.Equal(t, run(), run())
}

func TestSuiteBuildError(t *testing.T) {
	s := &Suite{
		Seed:      1,
		N:         100,
		Tolerance: DefaultTolerance(),
		Cases:     []Case{NewCase("binomial", []string{"p", "n"}, []float64{1.5, 10}, distuv.Binomial{N: 10, P: 0.5})},
		Log:       zerolog.Nop(),
	}
	results := s.Run()
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	assert.False(t, results[0].Pass())
	assert.Len(t, Failed(results), 1)
}

func TestNewCaseName(t *testing.T) {
	tt := []struct {
		c   Case
		exp string
	}{
		{c: NewCase("poisson", []string{"lambda"}, []float64{30.0}, distuv.Poisson{Lambda: 30.0}), exp: "poisson[lambda=30 @rejection]"},
		{c: NewCase("gamma", []string{"k", "b"}, []float64{0.5, 1.0}, distuv.Gamma{Alpha: 0.5, Beta: 1.0}), exp: "gamma[b=1 k=0.5 @ahrens_dieter]"},
		{c: NewCase("binomial", []string{"p", "n"}, []float64{0.3, 10}, distuv.Binomial{N: 10, P: 0.3}), exp: "binomial[n=10 p=0.3 @direct]"},
		{c: NewCase("normal", []string{"mu", "sigma"}, []float64{2.5, 1.7}, distuv.Normal{Mu: 2.5, Sigma: 1.7}), exp: "normal[mu=2.5 sigma=1.7]"},
	}
	for _, tc := range tt {
		assert.Equal(t, tc.exp, tc.c.Name.String())
	}
}
