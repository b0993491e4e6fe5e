package solver

import (
	"context"
	"sync"

	"github.com/san-kum/heatsim/internal/diffuse"
)

// Ensemble runs the same initial profile across a set of diffusivity
// values in parallel, one goroutine per alpha. Metrics hold per-run
// state, so each run gets a fresh set from the factory.
type Ensemble struct {
	alphas     []float64
	metricsFor func() []Metric
}

func NewEnsemble(alphas []float64, metricsFor func() []Metric) *Ensemble {
	return &Ensemble{alphas: alphas, metricsFor: metricsFor}
}

// Run returns one result per alpha, in the order given. Any failing
// run fails the whole sweep.
func (e *Ensemble) Run(ctx context.Context, u0 diffuse.Profile, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(e.alphas))
	errs := make([]error, len(e.alphas))

	var wg sync.WaitGroup
	for i, alpha := range e.alphas {
		wg.Add(1)
		go func(idx int, alpha float64) {
			defer wg.Done()

			cfgCopy := cfg
			cfgCopy.Grid.Alpha = alpha

			s := New()
			if e.metricsFor != nil {
				for _, m := range e.metricsFor() {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx, u0, cfgCopy)
		}(i, alpha)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
