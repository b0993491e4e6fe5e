package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/heatsim/internal/diffuse"
)

func TestSineModeInitial(t *testing.T) {
	// At t=0 the mode is the plain sine.
	if math.Abs(SineMode(0.5, 0, 0.01, 1)-1) > 1e-12 {
		t.Errorf("expected 1 at midpoint, got %f", SineMode(0.5, 0, 0.01, 1))
	}
	if math.Abs(SineMode(0, 0, 0.01, 1)) > 1e-12 {
		t.Error("expected 0 at left boundary")
	}
}

func TestSineProfileBoundaries(t *testing.T) {
	u := SineProfile(20, 2)

	if u[0] != 0 || u[19] != 0 {
		t.Errorf("boundaries must be exactly zero, got %g / %g", u[0], u[19])
	}
	if u[10] <= 0 {
		t.Error("interior should be positive")
	}
}

func TestAnalyticAtMatchesHeat(t *testing.T) {
	g := diffuse.Grid{Nx: 20, Nt: 10, Length: 1, Alpha: 0.01, Tmax: 0.5}
	u0 := SineProfile(g.Nx, g.Length)

	got, err := diffuse.Heat(u0, g.Nt, g.Nx, g.Alpha, g.Length, g.Tmax)
	if err != nil {
		t.Fatalf("heat failed: %v", err)
	}

	want := AnalyticAt(g, g.Tmax)
	if e := MaxAbsError(got, want); e > 1e-2 {
		t.Errorf("numerical solution too far from analytic: %g", e)
	}
}

func TestMaxAbsError(t *testing.T) {
	got := diffuse.Profile{0, 1, 2}
	want := diffuse.Profile{0, 1.5, 1.9}

	if e := MaxAbsError(got, want); math.Abs(e-0.5) > 1e-12 {
		t.Errorf("expected 0.5, got %f", e)
	}
	if e := MaxAbsError(got, got); e != 0 {
		t.Errorf("expected 0 for identical profiles, got %f", e)
	}
}

func TestL2Error(t *testing.T) {
	got := diffuse.Profile{1, 1}
	want := diffuse.Profile{0, 0}

	if e := L2Error(got, want); math.Abs(e-1) > 1e-12 {
		t.Errorf("expected 1, got %f", e)
	}
}

func TestDecayRates(t *testing.T) {
	alpha, L, tmax := 0.01, 1.0, 0.5

	want := TheoreticalDecayRate(alpha, L)

	peak0 := 1.0
	peakT := math.Exp(-want * tmax)
	got := ObservedDecayRate(peak0, peakT, tmax)

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected rate %f, got %f", want, got)
	}

	if ObservedDecayRate(0, 1, 1) != 0 {
		t.Error("expected 0 for degenerate inputs")
	}
}
