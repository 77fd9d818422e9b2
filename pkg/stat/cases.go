package stat

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultCases covers every distribution of the generator with parameters that reach each branch of
// the gamma, Poisson and binomial samplers
func DefaultCases() []Case {
	return []Case{
		NewCase("normal", []string{"mu", "sigma"}, []float64{2.5, 1.7}, distuv.Normal{Mu: 2.5, Sigma: 1.7}),
		NewCase("uniform", []string{"a", "b"}, []float64{1.0, math.E}, distuv.Uniform{Min: 1.0, Max: math.E}),
		NewCase("exponential", []string{"lambda"}, []float64{2.0}, distuv.Exponential{Rate: 2.0}),
		NewCase("gamma", []string{"k", "b"}, []float64{0.5, 1.0}, distuv.Gamma{Alpha: 0.5, Beta: 1.0}),
		NewCase("gamma", []string{"k", "b"}, []float64{1.0, 2.0}, distuv.Gamma{Alpha: 1.0, Beta: 2.0}),
		NewCase("gamma", []string{"k", "b"}, []float64{3.0, 2.0}, distuv.Gamma{Alpha: 3.0, Beta: 2.0}),
		NewCase("erlang", []string{"k", "lambda"}, []float64{3, 2.0}, distuv.Gamma{Alpha: 3.0, Beta: 2.0}),
		NewCase("poisson", []string{"lambda"}, []float64{5.0}, distuv.Poisson{Lambda: 5.0}),
		NewCase("poisson", []string{"lambda"}, []float64{30.0}, distuv.Poisson{Lambda: 30.0}),
		NewCase("binomial", []string{"p", "n"}, []float64{0.3, 10}, distuv.Binomial{N: 10, P: 0.3}),
		NewCase("binomial", []string{"p", "n"}, []float64{0.01, 200}, distuv.Binomial{N: 200, P: 0.01}),
		NewCase("binomial", []string{"p", "n"}, []float64{0.3, 50}, distuv.Binomial{N: 50, P: 0.3}),
		NewCase("binomial", []string{"p", "n"}, []float64{0.7, 50}, distuv.Binomial{N: 50, P: 0.7}),
		NewCase("lognormal", []string{"mu", "sigma"}, []float64{0.0, 0.5}, distuv.LogNormal{Mu: 0.0, Sigma: 0.5}),
		NewCase("chisquare", []string{"k"}, []float64{4}, distuv.ChiSquared{K: 4}),
		NewCase("beta", []string{"a", "b"}, []float64{2.0, 5.0}, distuv.Beta{Alpha: 2.0, Beta: 5.0}),
		NewCase("student", []string{"n"}, []float64{10}, distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 10}),
		NewCase("f", []string{"n", "m"}, []float64{5, 20}, distuv.F{D1: 5, D2: 20}),
		NewCase("weibull", []string{"m", "k"}, []float64{2.0, 1.5}, distuv.Weibull{K: 1.5, Lambda: 2.0}),
		NewCase("geometric", []string{"p"}, []float64{0.2}, Geometric{P: 0.2}),
		NewCase("triangular", []string{"a"}, []float64{0.3}, distuv.NewTriangle(0, 1, 0.3, nil)),
		NewCase("probability", []string{"p"}, []float64{0.25}, distuv.Bernoulli{P: 0.25}),
	}
}
