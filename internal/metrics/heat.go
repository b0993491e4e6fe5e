// Package metrics provides scalar summaries of a diffusion run,
// collected through the solver's Metric hook.
package metrics

import (
	"math"

	"github.com/san-kum/heatsim/internal/diffuse"
)

// TotalHeat tracks the trapezoid-rule integral of the profile over the
// domain. For fixed zero boundaries it decays monotonically; its final
// value is a cheap conservation check against the analytic solution.
type TotalHeat struct {
	name string
	dx   float64
	last float64
}

func NewTotalHeat(dx float64) *TotalHeat {
	return &TotalHeat{name: "total_heat", dx: dx}
}

func (m *TotalHeat) Name() string { return m.name }

func (m *TotalHeat) Observe(u diffuse.Profile, t float64) {
	if len(u) < 2 {
		return
	}
	sum := 0.5 * (u[0] + u[len(u)-1])
	for _, v := range u[1 : len(u)-1] {
		sum += v
	}
	m.last = sum * m.dx
}

func (m *TotalHeat) Value() float64 { return m.last }
func (m *TotalHeat) Reset()         { m.last = 0 }

// PeakTemperature records the largest absolute node value seen across
// the whole march.
type PeakTemperature struct {
	name string
	peak float64
}

func NewPeakTemperature() *PeakTemperature {
	return &PeakTemperature{name: "peak_temperature"}
}

func (m *PeakTemperature) Name() string { return m.name }

func (m *PeakTemperature) Observe(u diffuse.Profile, t float64) {
	for _, v := range u {
		if math.Abs(v) > m.peak {
			m.peak = math.Abs(v)
		}
	}
}

func (m *PeakTemperature) Value() float64 { return m.peak }
func (m *PeakTemperature) Reset()         { m.peak = 0 }
