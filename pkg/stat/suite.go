package stat

import (
	"fmt"
	"sync"
	"time"

	"github.com/BTBurke/rngen/pkg/metric"
	"github.com/BTBurke/rngen/pkg/rng"
	"github.com/rs/zerolog"
)

// Case binds a distribution under test to the theoretical distribution it should follow
type Case struct {
	Name  metric.Name
	PDF   PDF
	Build func(g *rng.Generator) (rng.RNG, error)
}

// NewCase builds a case for one of the distributions known to rng.NewRNG.  Parameter keys label the
// case and are given in the same order as params.  The sampling method, when the distribution has
// more than one, is added as an annotation such as poisson[lambda=30 @rejection].
func NewCase(dist string, keys []string, params []float64, pdf PDF) Case {
	kv := make([]interface{}, 0, 2*len(keys))
	for i, k := range keys {
		if i < len(params) {
			kv = append(kv, k, params[i])
		}
	}
	name := metric.ParamName(dist, kv...)
	if m := rng.Method(dist, params...); m != "" {
		name.AddAnnotation(m)
	}
	return Case{
		Name: name,
		PDF:  pdf,
		Build: func(g *rng.Generator) (rng.RNG, error) {
			return rng.NewRNG(g, dist, params...)
		},
	}
}

// Suite checks a set of cases concurrently.  Each case gets its own generator seeded with
// Seed plus the index of the case, so results are reproducible regardless of scheduling.
type Suite struct {
	Seed      uint64
	N         int
	Tolerance Tolerance
	Cases     []Case
	Log       zerolog.Logger
}

type results struct {
	mu  sync.Mutex
	val []Result
}

func (r *results) record(i int, res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val[i] = res
}

// Run executes every case and returns the results in case order
func (s *Suite) Run() []Result {
	res := &results{val: make([]Result, len(s.Cases))}
	var wg sync.WaitGroup
	for i, c := range s.Cases {
		wg.Add(1)
		go func(i int, c Case) {
			defer wg.Done()
			res.record(i, s.run(i, c))
		}(i, c)
	}
	wg.Wait()
	return res.val
}

func (s *Suite) run(i int, c Case) Result {
	start := time.Now()
	g := rng.New(rng.WithSeed(s.Seed+uint64(i)), rng.WithLogger(s.Log))
	r, err := c.Build(g)
	if err != nil {
		return Result{Name: c.Name.String(), N: s.N, Err: fmt.Errorf("unable to build %s: %v", c.Name, err)}
	}
	out, err := Check(c.Name, r, c.PDF, s.N, s.Tolerance)
	if err != nil {
		return Result{Name: c.Name.String(), N: s.N, Err: err}
	}
	s.Log.Debug().Str("case", out.Name).Dur("elapsed", time.Since(start)).Bool("pass", out.Pass()).Msg("checked")
	return out
}

// Failed returns the results that did not pass
func Failed(rs []Result) []Result {
	var out []Result
	for _, r := range rs {
		if !r.Pass() {
			out = append(out, r)
		}
	}
	return out
}
