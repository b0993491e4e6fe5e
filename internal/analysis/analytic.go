// Package analysis compares numerical diffusion profiles with the
// closed-form solution of the lowest sine mode, the standard accuracy
// benchmark for the FTCS scheme on a rod with zero-valued ends.
package analysis

import (
	"math"

	"github.com/san-kum/heatsim/internal/diffuse"
)

// SineMode evaluates the analytic solution
// u(x,t) = sin(pi x / L) * exp(-alpha t (pi/L)^2) for a rod of length
// L with zero Dirichlet boundaries and a sine initial condition.
func SineMode(x, t, alpha, L float64) float64 {
	return math.Sin(math.Pi*x/L) * math.Exp(-t*alpha*math.Pow(math.Pi/L, 2))
}

// SineProfile samples the sine initial condition on nx nodes. The
// boundary nodes are forced to exactly zero.
func SineProfile(nx int, L float64) diffuse.Profile {
	u := make(diffuse.Profile, nx)
	xs := diffuse.Linspace(0, L, nx)
	for i := 1; i < nx-1; i++ {
		u[i] = math.Sin(math.Pi * xs[i] / L)
	}
	return u
}

// AnalyticAt samples the analytic sine-mode solution at time t on the
// nodes of g.
func AnalyticAt(g diffuse.Grid, t float64) diffuse.Profile {
	u := make(diffuse.Profile, g.Nx)
	xs := g.Nodes()
	for i := 1; i < g.Nx-1; i++ {
		u[i] = SineMode(xs[i], t, g.Alpha, g.Length)
	}
	return u
}

// MaxAbsError returns the largest nodewise |got - want|.
func MaxAbsError(got, want diffuse.Profile) float64 {
	maxErr := 0.0
	for i := range got {
		if i >= len(want) {
			break
		}
		if e := math.Abs(got[i] - want[i]); e > maxErr {
			maxErr = e
		}
	}
	return maxErr
}

// L2Error returns the root-mean-square nodewise error.
func L2Error(got, want diffuse.Profile) float64 {
	if len(got) == 0 {
		return 0
	}
	sum := 0.0
	n := len(got)
	if len(want) < n {
		n = len(want)
	}
	for i := 0; i < n; i++ {
		d := got[i] - want[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(n))
}

// TheoreticalDecayRate returns the decay constant alpha*(pi/L)^2 of
// the lowest sine mode.
func TheoreticalDecayRate(alpha, L float64) float64 {
	return alpha * math.Pow(math.Pi/L, 2)
}

// ObservedDecayRate fits an exponential to the peak amplitude over the
// march: ln(peak0/peakT)/tmax. Returns 0 when the fit is undefined.
func ObservedDecayRate(peak0, peakT, tmax float64) float64 {
	if peak0 <= 0 || peakT <= 0 || tmax <= 0 {
		return 0
	}
	return math.Log(peak0/peakT) / tmax
}
