package stat

import (
	"fmt"
	"math"

	"github.com/BTBurke/rngen/pkg/metric"
	"github.com/BTBurke/rngen/pkg/rng"
	gstat "gonum.org/v1/gonum/stat"
)

// batchSize is the number of draws averaged into one batch mean
const batchSize = 100

// Result is the outcome of comparing n draws of a generator against the theoretical moments of
// its distribution
type Result struct {
	Name        string
	N           int
	Theoretical Moments
	Empirical   Moments
	Min         float64
	Max         float64
	// StdErr is the standard error of the mean estimated from batch means
	StdErr   float64
	MeanErr  float64
	VarErr   float64
	MeanPass bool
	VarPass  bool
	Err      error
}

// Pass is true when both moments are within tolerance
func (r Result) Pass() bool {
	return r.Err == nil && r.MeanPass && r.VarPass
}

// Empirical returns the sample mean and the unbiased sample variance
func Empirical(values []float64) Moments {
	if len(values) < 2 {
		return Moments{Mean: metric.SampleAverage(values)}
	}
	mean, variance := gstat.MeanVariance(values, nil)
	return Moments{Mean: mean, Variance: variance}
}

// Check draws n values from r and compares their moments with pdf
func Check(name metric.Name, r rng.RNG, pdf PDF, n int, tol Tolerance) (Result, error) {
	series, err := metric.NewSeries(n, metric.WithName(name))
	if err != nil {
		return Result{}, fmt.Errorf("unable to check %s: %v", name, err)
	}
	batches := n / batchSize
	if batches < 1 {
		batches = 1
	}
	means, err := metric.NewBatchedSeries(batches, batchSize, metric.SampleAverage)
	if err != nil {
		return Result{}, fmt.Errorf("unable to check %s: %v", name, err)
	}

	recorders := []metric.SeriesRecorder{series, means}
	for i := 0; i < n; i++ {
		v := r.Rand()
		for _, rec := range recorders {
			rec.Record(v)
		}
	}

	values := series.Values()
	res := Result{
		Name:        series.Name(),
		N:           n,
		Theoretical: Theoretical(pdf),
		Empirical:   Empirical(values),
		Min:         metric.SampleMin(values),
		Max:         metric.SampleMax(values),
	}
	if bm := means.Values(); len(bm) > 1 {
		res.StdErr = gstat.StdDev(bm, nil) / math.Sqrt(float64(len(bm)))
	}
	res.MeanErr = math.Abs(res.Empirical.Mean - res.Theoretical.Mean)
	res.VarErr = math.Abs(res.Empirical.Variance - res.Theoretical.Variance)
	res.MeanPass = res.MeanErr <= tol.MeanBound(res.Theoretical, n)
	res.VarPass = res.VarErr <= tol.VarianceBound(res.Theoretical, n)
	return res, nil
}
