// Package integrate estimates definite integrals by Monte Carlo sampling and compares the estimates
// with a deterministic midpoint rule reference.
package integrate

import (
	"fmt"
	"math"
	"sort"

	"github.com/BTBurke/rngen/pkg/rng"
	"github.com/rs/zerolog"
)

// Midpoint approximates the integral of f over [a,b] with the midpoint rule using steps rectangles
func Midpoint(f func(float64) float64, a, b float64, steps int) (float64, error) {
	if steps <= 0 {
		return 0.0, fmt.Errorf("steps must be greater than 0")
	}
	dx := (b - a) / float64(steps)
	sum := 0.0
	for i := 0; i < steps; i++ {
		x := a + (float64(i)+0.5)*dx
		sum += f(x) * dx
	}
	return sum, nil
}

// MonteCarlo estimates the integral of f over [a,b] by splitting the interval at n uniformly drawn
// points and summing width * f(midpoint) over the resulting n+1 rectangles.  With n = 0 it is a
// single midpoint rectangle.
func MonteCarlo(f func(float64) float64, a, b float64, n int, u rng.Uniform) (float64, error) {
	if n < 0 {
		return 0.0, fmt.Errorf("n must be non-negative")
	}
	edges := make([]float64, 0, n+2)
	edges = append(edges, a)
	for i := 0; i < n; i++ {
		p, err := u.Uniform(a, b)
		if err != nil {
			return 0.0, fmt.Errorf("unable to draw partition point: %v", err)
		}
		edges = append(edges, p)
	}
	sort.Float64s(edges[1:])
	edges = append(edges, b)

	sum := 0.0
	for i := 0; i < len(edges)-1; i++ {
		left, right := edges[i], edges[i+1]
		sum += (right - left) * f((left+right)/2.0)
	}
	return sum, nil
}

// Estimate is a Monte Carlo estimate compared to the reference integral
type Estimate struct {
	N      int
	Value  float64
	AbsErr float64
	// RelErr is in percent and is +Inf when the reference is zero
	RelErr float64
}

// Report is the reference integral and the Monte Carlo estimates for each sample size
type Report struct {
	A         float64
	B         float64
	Reference float64
	Estimates []Estimate
}

// Run computes the reference integral and one estimate per sample size.  With a seed every estimate
// starts from a freshly seeded generator, so the estimate for each n is reproducible on its own.
// Without one a single clock seeded generator is shared by all estimates.
func Run(f func(float64) float64, cfg Config, log zerolog.Logger) (*Report, error) {
	if cfg.A >= cfg.B {
		return nil, fmt.Errorf("interval [%g, %g] is empty", cfg.A, cfg.B)
	}
	ref, err := Midpoint(f, cfg.A, cfg.B, cfg.Steps)
	if err != nil {
		return nil, fmt.Errorf("unable to compute reference integral: %v", err)
	}
	log.Debug().Float64("reference", ref).Int("steps", cfg.Steps).Msg("reference integral")

	r := &Report{A: cfg.A, B: cfg.B, Reference: ref}
	shared := rng.New(rng.WithLogger(log))
	for _, n := range cfg.Sizes {
		g := shared
		if cfg.Seeded {
			g = rng.New(rng.WithSeed(cfg.Seed), rng.WithLogger(log))
		}
		est, err := MonteCarlo(f, cfg.A, cfg.B, n, g)
		if err != nil {
			return nil, fmt.Errorf("unable to estimate integral with n=%d: %v", n, err)
		}
		abs := math.Abs(ref - est)
		rel := math.Inf(1)
		if ref != 0.0 {
			rel = abs / math.Abs(ref) * 100.0
		}
		r.Estimates = append(r.Estimates, Estimate{N: n, Value: est, AbsErr: abs, RelErr: rel})
		log.Debug().Int("n", n).Uint64("seed", g.Seed()).Float64("estimate", est).Msg("monte carlo estimate")
	}
	return r, nil
}
