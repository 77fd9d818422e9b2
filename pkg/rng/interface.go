package rng

// RNG is a random number generator bound to a single distribution
type RNG interface {
	Rand() float64
}

// Uniform draws uniformly distributed values in [a, b)
type Uniform interface {
	Uniform(a, b float64) (float64, error)
}

var _ Uniform = &Generator{}
