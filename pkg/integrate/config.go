package integrate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Config controls the interval, the reference resolution and the Monte Carlo sample sizes
type Config struct {
	A      float64
	B      float64
	Steps  int
	Sizes  []int
	Seed   uint64
	Seeded bool
}

type ConfigOption func(c *Config) error

// NewConfig returns the defaults (interval [1, e], 200000 reference steps, n = 10, 50, 100) with the
// options applied.  Every failing option is reported.
func NewConfig(options ...ConfigOption) (Config, []error) {
	c := Config{
		A:     1.0,
		B:     math.E,
		Steps: 200000,
		Sizes: []int{10, 50, 100},
	}

	var errors []error
	for _, option := range options {
		if err := option(&c); err != nil {
			errors = append(errors, err)
		}
	}
	if c.A >= c.B {
		errors = append(errors, fmt.Errorf("interval start %g must be less than end %g", c.A, c.B))
	}
	if len(errors) > 0 {
		return Config{}, errors
	}
	return c, nil
}

func Interval(a, b string) ConfigOption {
	return func(c *Config) error {
		av, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("could not convert interval start %q to a number", a)
		}
		bv, err := strconv.ParseFloat(b, 64)
		if err != nil {
			return fmt.Errorf("could not convert interval end %q to a number", b)
		}
		c.A, c.B = av, bv
		return nil
	}
}

func Steps(steps string) ConfigOption {
	return func(c *Config) error {
		s, err := strconv.Atoi(steps)
		if err != nil || s <= 0 {
			return fmt.Errorf("steps must be a positive integer, got %q", steps)
		}
		c.Steps = s
		return nil
	}
}

// Sizes sets the Monte Carlo sample sizes from a comma separated list such as "10,50,100"
func Sizes(list string) ConfigOption {
	return func(c *Config) error {
		var sizes []int
		for _, f := range strings.Split(list, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			n, err := strconv.Atoi(f)
			if err != nil || n < 0 {
				return fmt.Errorf("sample size must be a non-negative integer, got %q", f)
			}
			sizes = append(sizes, n)
		}
		if len(sizes) == 0 {
			return fmt.Errorf("at least one sample size is required")
		}
		c.Sizes = sizes
		return nil
	}
}

// Seed makes every estimate reproducible.  An empty value keeps the clock seeded default.
func Seed(seed string) ConfigOption {
	return func(c *Config) error {
		if seed == "" {
			return nil
		}
		s, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("could not convert seed %q to an unsigned integer", seed)
		}
		c.Seed, c.Seeded = s, true
		return nil
	}
}
