package metrics

import (
	"math"

	"github.com/san-kum/heatsim/internal/diffuse"
)

// BoundaryDrift measures the largest deviation of either boundary node
// from its value at the first observation. Dirichlet boundaries are
// fixed by construction, so any nonzero drift flags a broken stencil.
type BoundaryDrift struct {
	name     string
	seeded   bool
	left     float64
	right    float64
	maxDrift float64
}

func NewBoundaryDrift() *BoundaryDrift {
	return &BoundaryDrift{name: "boundary_drift"}
}

func (m *BoundaryDrift) Name() string { return m.name }

func (m *BoundaryDrift) Observe(u diffuse.Profile, t float64) {
	if len(u) == 0 {
		return
	}
	if !m.seeded {
		m.left = u[0]
		m.right = u[len(u)-1]
		m.seeded = true
		return
	}
	drift := math.Max(math.Abs(u[0]-m.left), math.Abs(u[len(u)-1]-m.right))
	if drift > m.maxDrift {
		m.maxDrift = drift
	}
}

func (m *BoundaryDrift) Value() float64 { return m.maxDrift }

func (m *BoundaryDrift) Reset() {
	m.seeded = false
	m.left = 0
	m.right = 0
	m.maxDrift = 0
}
