package stat

import "math"

// Tolerance bounds how far an empirical moment may stray from its theoretical value.  The bound is
// the larger of a fraction of the theoretical value and a multiple of the standard error of the
// estimate, so moments equal to zero can still be tested.
type Tolerance struct {
	Relative float64
	Sigma    float64
}

// DefaultTolerance accepts a 5% relative error, or four standard errors when that is wider
func DefaultTolerance() Tolerance {
	return Tolerance{Relative: 0.05, Sigma: 4.0}
}

// MeanBound returns the allowed absolute error of the sample mean of n draws
func (t Tolerance) MeanBound(m Moments, n int) float64 {
	se := math.Sqrt(m.Variance / float64(n))
	return math.Max(t.Relative*math.Abs(m.Mean), t.Sigma*se)
}

// VarianceBound returns the allowed absolute error of the unbiased sample variance of n draws.  The
// standard error assumes normal kurtosis.
func (t Tolerance) VarianceBound(m Moments, n int) float64 {
	if n < 2 {
		return math.Inf(1)
	}
	se := m.Variance * math.Sqrt(2.0/float64(n-1))
	return math.Max(t.Relative*m.Variance, t.Sigma*se)
}
