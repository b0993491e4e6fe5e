package experiment

import (
	"fmt"
	"math"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/diffuse"
	"github.com/san-kum/heatsim/internal/metrics"
	"github.com/san-kum/heatsim/internal/solver"
)

// Generator builds an initial temperature profile for a grid. The
// returned profile has exactly nx nodes with the boundary values from
// init baked into nodes 0 and nx-1.
type Generator func(nx int, L float64, init config.InitConfig) diffuse.Profile

type Registry struct {
	generators map[string]Generator
}

func NewRegistry() *Registry {
	r := &Registry{generators: make(map[string]Generator)}

	r.generators["sine"] = func(nx int, L float64, init config.InitConfig) diffuse.Profile {
		amp := init.Amplitude
		if amp == 0 {
			amp = 1
		}
		u := boundaries(nx, init)
		xs := diffuse.Linspace(0, L, nx)
		for i := 1; i < nx-1; i++ {
			u[i] = amp * math.Sin(math.Pi*xs[i]/L)
		}
		return u
	}

	r.generators["pulse"] = func(nx int, L float64, init config.InitConfig) diffuse.Profile {
		u := boundaries(nx, init)
		xs := diffuse.Linspace(0, L, nx)
		for i := 1; i < nx-1; i++ {
			if math.Abs(xs[i]-init.Center) <= init.Width/2 {
				u[i] = init.Amplitude
			}
		}
		return u
	}

	r.generators["flat"] = func(nx int, L float64, init config.InitConfig) diffuse.Profile {
		u := boundaries(nx, init)
		for i := 1; i < nx-1; i++ {
			u[i] = init.Amplitude
		}
		return u
	}

	r.generators["ramp"] = func(nx int, L float64, init config.InitConfig) diffuse.Profile {
		// Linear between the boundary values: the steady state of the
		// Dirichlet problem, so a march should leave it nearly unchanged.
		u := boundaries(nx, init)
		for i := 1; i < nx-1; i++ {
			u[i] = init.Left + (init.Right-init.Left)*float64(i)/float64(nx-1)
		}
		return u
	}

	return r
}

func boundaries(nx int, init config.InitConfig) diffuse.Profile {
	u := make(diffuse.Profile, nx)
	u[0] = init.Left
	u[nx-1] = init.Right
	return u
}

func (r *Registry) Get(name string) (Generator, error) {
	gen, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile: %s", name)
	}
	return gen, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	return names
}

// DefaultMetrics returns the standard metric set for a run on grid g.
func DefaultMetrics(g diffuse.Grid) []solver.Metric {
	return []solver.Metric{
		metrics.NewTotalHeat(g.Dx()),
		metrics.NewPeakTemperature(),
		metrics.NewBoundaryDrift(),
	}
}
