package metric

import (
	"fmt"
	"math"
)

var _ SeriesRecorder = &BatchedSeries{}

// BatchedSeries collapses every size consecutive draws into one value using transform (for example
// SampleAverage for batch means) and keeps the results in a Series.  Draws of an incomplete batch
// are held back until the batch fills.
type BatchedSeries struct {
	s         *Series
	size      int
	obs       []float64
	transform func([]float64) float64
}

func NewBatchedSeries(capacity int, size int, transform func([]float64) float64, opts ...SeriesOption) (*BatchedSeries, error) {
	s, err := NewSeries(capacity, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create batched series: %v", err)
	}
	if size <= 0 {
		return nil, fmt.Errorf("batched series size must be greater than zero")
	}
	return &BatchedSeries{
		s:         s,
		size:      size,
		obs:       make([]float64, 0, size),
		transform: transform,
	}, nil
}

func (b *BatchedSeries) Record(v float64) {
	b.obs = append(b.obs, v)
	if len(b.obs) == b.size {
		b.s.Record(b.transform(b.obs))
		b.obs = b.obs[:0]
	}
}

// Values returns the transformed batches
func (b *BatchedSeries) Values() []float64 {
	return b.s.Values()
}

// Count returns the number of completed batches
func (b *BatchedSeries) Count() int {
	return b.s.Count()
}

func (b *BatchedSeries) Capacity() int {
	return b.s.Capacity()
}

func (b *BatchedSeries) Name() string {
	return b.s.Name()
}

func SampleAverage(obs []float64) float64 {
	if len(obs) == 0 {
		return 0.0
	}
	return SampleSum(obs) / float64(len(obs))
}

func SampleMin(obs []float64) float64 {
	if len(obs) == 0 {
		return 0.0
	}
	min := obs[0]
	for _, o := range obs {
		min = math.Min(min, o)
	}
	return min
}

func SampleMax(obs []float64) float64 {
	if len(obs) == 0 {
		return 0.0
	}
	max := obs[0]
	for _, o := range obs {
		max = math.Max(max, o)
	}
	return max
}

func SampleSum(obs []float64) float64 {
	sum := 0.0
	for _, o := range obs {
		sum += o
	}
	return sum
}
