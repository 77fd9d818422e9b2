package metric

import "fmt"

// SeriesRecorder records variates and exposes the retained window of them
type SeriesRecorder interface {
	Record(v float64)
	Values() []float64
	Count() int
	Capacity() int
	Name() string
}

var _ SeriesRecorder = &Series{}

// Series is a fixed capacity ring buffer that retains the most recent draws of a generator
type Series struct {
	name   Name
	count  int
	values []float64
}

type SeriesOption func(s *Series) error

// Values returns a copy of the retained values from oldest to most recent.  Unfilled slots are not
// returned.
func (s *Series) Values() []float64 {
	if s.count < len(s.values) {
		out := make([]float64, s.count)
		copy(out, s.values[:s.count])
		return out
	}
	out := make([]float64, 0, len(s.values))
	oldest := s.nextIndex()
	return append(append(out, s.values[oldest:]...), s.values[:oldest]...)
}

// Record adds a new draw to the series, overwriting the oldest one when full
func (s *Series) Record(v float64) {
	s.values[s.nextIndex()] = v
	s.count++
}

// nextIndex returns the slot that the next draw is written to
func (s *Series) nextIndex() int {
	return s.count % len(s.values)
}

// Count returns the total number of draws recorded, including overwritten ones
func (s *Series) Count() int {
	return s.count
}

func (s *Series) Capacity() int {
	return len(s.values)
}

func (s *Series) Name() string {
	return s.name.String()
}

// NewSeries creates a new series with a capacity of cap
func NewSeries(cap int, opts ...SeriesOption) (*Series, error) {
	if cap <= 0 {
		return nil, fmt.Errorf("series must be initialized with a capacity >= 1")
	}

	s := &Series{
		values: make([]float64, cap),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// WithName labels the series with a distribution name and its parameters
func WithName(n Name) SeriesOption {
	return func(s *Series) error {
		if n.name == "" {
			return fmt.Errorf("series name must be the non-empty string")
		}
		s.name = n
		return nil
	}
}
