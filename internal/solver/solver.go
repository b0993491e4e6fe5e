package solver

import (
	"context"
	"fmt"

	"github.com/san-kum/heatsim/internal/diffuse"
)

// Metric accumulates a scalar summary over the profiles of a march.
type Metric interface {
	Name() string
	Observe(u diffuse.Profile, t float64)
	Value() float64
	Reset()
}

// Observer is notified of every time level, including the initial one.
type Observer interface {
	OnStep(u diffuse.Profile, t float64)
}

// Config selects the grid and the execution strategy of a run.
type Config struct {
	Grid    diffuse.Grid
	Workers int  // goroutines for the interior update; <= 1 runs serially
	Record  bool // keep every intermediate profile in the result
}

// Result collects the outcome of a march. Profiles and Times are only
// populated when Config.Record is set; Final always holds the profile
// at tmax.
type Result struct {
	Final      diffuse.Profile
	Profiles   []diffuse.Profile
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
	Ratio      float64
}

// Solver drives the FTCS march and fans observations out to metrics
// and observers. Not safe for concurrent use; Ensemble builds a fresh
// Solver per goroutine.
type Solver struct {
	metrics   []Metric
	observers []Observer
}

func New() *Solver {
	return &Solver{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Solver) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Solver) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run marches u0 to cfg.Grid.Tmax. An unstable step aborts immediately
// with the step's error; nothing partial is returned. u0 is never
// mutated.
func (s *Solver) Run(ctx context.Context, u0 diffuse.Profile, cfg Config) (*Result, error) {
	g := cfg.Grid
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if len(u0) != g.Nx {
		return nil, fmt.Errorf("%w: profile has %d nodes, grid expects %d", diffuse.ErrBadGrid, len(u0), g.Nx)
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{
		Metrics: make(map[string]float64),
		Ratio:   g.Ratio(),
	}
	if cfg.Record {
		result.Profiles = make([]diffuse.Profile, 0, g.Nt)
		result.Times = make([]float64, 0, g.Nt)
	}

	u := u0.Clone()
	t := 0.0
	s.observe(u, t)
	if cfg.Record {
		result.Profiles = append(result.Profiles, u.Clone())
		result.Times = append(result.Times, t)
	}

	dx, dt := g.Dx(), g.Dt()
	for step := 0; step < g.Nt-1; step++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		next, err := diffuse.StepParallel(u, dx, dt, g.Alpha, cfg.Workers)
		if err != nil {
			return nil, err
		}

		u = next
		t += dt
		result.StepsTaken++

		s.observe(u, t)
		if cfg.Record {
			result.Profiles = append(result.Profiles, u.Clone())
			result.Times = append(result.Times, t)
		}
	}

	result.Final = u
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Solver) observe(u diffuse.Profile, t float64) {
	for _, m := range s.metrics {
		m.Observe(u, t)
	}
	for _, o := range s.observers {
		o.OnStep(u, t)
	}
}
