package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesRecord(t *testing.T) {
	tt := []struct {
		name     string
		capacity int
		obs      []float64
		exp      []float64
	}{
		{name: "underfill", capacity: 5, obs: []float64{1, 2, 3}, exp: []float64{1, 2, 3}},
		{name: "fill", capacity: 5, obs: []float64{1, 2, 3, 4, 5}, exp: []float64{1, 2, 3, 4, 5}},
		{name: "overfill", capacity: 3, obs: []float64{1, 2, 3, 4, 5}, exp: []float64{3, 4, 5}},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := NewSeries(tc.capacity)
			for _, o := range tc.obs {
				s.Record(o)
			}
			assert.Equal(t, tc.exp, s.Values())
			assert.Equal(t, len(tc.obs), s.Count())
		})
	}
}

func TestSeriesRecorders(t *testing.T) {
	s, err := NewSeries(6, WithName(ParamName("poisson", "lambda", 2.0)))
	require.NoError(t, err)
	b, err := NewBatchedSeries(4, 2, SampleSum, WithName(ParamName("poisson", "lambda", 2.0)))
	require.NoError(t, err)

	for _, rec := range []SeriesRecorder{s, b} {
		for _, v := range []float64{1, 2, 3, 4} {
			rec.Record(v)
		}
		assert.Equal(t, "poisson[lambda=2]", rec.Name())
	}
	assert.Equal(t, []float64{1, 2, 3, 4}, s.Values())
	assert.Equal(t, 6, s.Capacity())
	assert.Equal(t, []float64{3, 7}, b.Values())
	assert.Equal(t, 4, b.Capacity())
}

func TestSeriesErrors(t *testing.T) {
	_, err := NewSeries(0)
	assert.Error(t, err)
	_, err = NewSeries(3, WithName(Name{}))
	assert.Error(t, err)
}

func TestBatchedSeries(t *testing.T) {
	b, err := NewBatchedSeries(10, 3, SampleAverage)
	require.NoError(t, err)
	for _, v := range []float64{1, 2, 3, 4, 5, 6, 7} {
		b.Record(v)
	}
	assert.Equal(t, []float64{2, 5}, b.Values())
	assert.Equal(t, 2, b.Count())

	_, err = NewBatchedSeries(10, 0, SampleAverage)
	assert.Error(t, err)
}

func TestSampleSummaries(t *testing.T) {
	obs := []float64{3, -1, 4, 1, 5}
	assert.Equal(t, 12.0, SampleSum(obs))
	assert.Equal(t, 2.4, SampleAverage(obs))
	assert.Equal(t, -1.0, SampleMin(obs))
	assert.Equal(t, 5.0, SampleMax(obs))
	assert.Equal(t, 0.0, SampleAverage(nil))
}
