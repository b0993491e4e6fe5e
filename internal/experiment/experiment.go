// Package experiment binds a configuration to an initial-condition
// generator, a solver and the default metrics, so the CLI and tests
// can run a named setup in one call.
package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/diffuse"
	"github.com/san-kum/heatsim/internal/solver"
)

type Experiment struct {
	cfg     *config.Config
	initial diffuse.Profile
	solver  *solver.Solver
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup resolves the configured profile generator and prepares the
// solver with the default metrics.
func (e *Experiment) Setup(registry *Registry) error {
	gen, err := registry.Get(e.cfg.Profile)
	if err != nil {
		return err
	}

	g := e.cfg.Grid()
	if err := g.Validate(); err != nil {
		return err
	}

	e.initial = gen(e.cfg.Nx, e.cfg.Length, e.cfg.Init)
	e.solver = solver.New()
	for _, m := range DefaultMetrics(g) {
		e.solver.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*solver.Result, error) {
	if e.solver == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	cfg := solver.Config{
		Grid:    e.cfg.Grid(),
		Workers: e.cfg.Workers,
		Record:  true,
	}
	return e.solver.Run(ctx, e.initial, cfg)
}

// Initial returns the generated initial profile; valid after Setup.
func (e *Experiment) Initial() diffuse.Profile {
	return e.initial
}

// Solver exposes the underlying solver for adding observers.
func (e *Experiment) Solver() *solver.Solver {
	return e.solver
}
