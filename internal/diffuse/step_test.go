package diffuse

import (
	"errors"
	"math"
	"testing"
)

func TestStepExact(t *testing.T) {
	u := Profile{0, 1, 1, 0}

	out, err := Step(u, 0.04, 0.02, 0.01)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}

	want := Profile{0, 0.875, 0.875, 0}
	if !out.Equal(want) {
		t.Errorf("expected %v, got %v", want, out)
	}
}

func TestStepInstability(t *testing.T) {
	u := Profile{0, 1, 1, 0}

	out, err := Step(u, 0.04, 0.02, 0.1)
	if err == nil {
		t.Fatal("expected instability error, got nil")
	}
	if out != nil {
		t.Errorf("expected no output on unstable step, got %v", out)
	}

	if !errors.Is(err, ErrUnstable) {
		t.Errorf("expected ErrUnstable, got %v", err)
	}

	var ie *InstabilityError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InstabilityError, got %T", err)
	}
	if math.Abs(ie.R-1.25) > 1e-12 {
		t.Errorf("expected r=1.25, got %f", ie.R)
	}
}

func TestStepBoundariesFixed(t *testing.T) {
	u := Profile{3.5, 10, 20, 30, -1.25}

	out, err := Step(u, 0.1, 0.1, 0.01)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}

	if out[0] != u[0] || out[len(out)-1] != u[len(u)-1] {
		t.Errorf("boundaries changed: got %v from %v", out, u)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	u := Profile{0, 1, 2, 1, 0}
	saved := u.Clone()

	if _, err := Step(u, 0.1, 0.1, 0.01); err != nil {
		t.Fatalf("step failed: %v", err)
	}

	if !u.Equal(saved) {
		t.Errorf("input mutated: %v, was %v", u, saved)
	}
}

func TestStepTooFewNodes(t *testing.T) {
	_, err := Step(Profile{0, 1}, 0.1, 0.1, 0.01)
	if !errors.Is(err, ErrBadGrid) {
		t.Errorf("expected ErrBadGrid, got %v", err)
	}
}

func TestStepAtStabilityBound(t *testing.T) {
	// r == 0.5 exactly is still stable.
	u := Profile{0, 1, 1, 0}

	out, err := Step(u, 1, 0.5, 1)
	if err != nil {
		t.Fatalf("step at r=0.5 failed: %v", err)
	}

	// With r=0.5 the (1-2r) term vanishes: each interior node becomes
	// the mean of its neighbors.
	want := Profile{0, 0.5, 0.5, 0}
	if !out.Equal(want) {
		t.Errorf("expected %v, got %v", want, out)
	}
}

func TestHeatConvergence(t *testing.T) {
	tests := []struct {
		name string
		L    float64
		tmax float64
	}{
		{"unit domain", 1, 0.5},
		{"long domain", 2, 0.5},
		{"long march", 1, 1},
	}

	nt, nx, alpha := 10, 20, 0.01

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := Linspace(0, tt.L, nx)

			u0 := make(Profile, nx)
			for i := 1; i < nx-1; i++ {
				u0[i] = math.Sin(math.Pi * xs[i] / tt.L)
			}

			got, err := Heat(u0, nt, nx, alpha, tt.L, tt.tmax)
			if err != nil {
				t.Fatalf("heat failed: %v", err)
			}

			decay := math.Exp(-tt.tmax * alpha * math.Pow(math.Pi/tt.L, 2))
			for i, x := range xs {
				want := math.Sin(math.Pi*x/tt.L) * decay
				if i == 0 || i == nx-1 {
					want = 0
				}
				if math.Abs(got[i]-want) > 1e-2 {
					t.Errorf("node %d: expected %.4f, got %.4f", i, want, got[i])
				}
			}
		})
	}
}

func TestHeatBoundariesFixed(t *testing.T) {
	nx := 11
	u0 := make(Profile, nx)
	u0[0] = 100
	u0[nx-1] = -50
	for i := 1; i < nx-1; i++ {
		u0[i] = 20
	}

	got, err := Heat(u0, 50, nx, 0.01, 1, 1)
	if err != nil {
		t.Fatalf("heat failed: %v", err)
	}

	if got[0] != 100 || got[nx-1] != -50 {
		t.Errorf("boundaries changed: got %.2f / %.2f", got[0], got[nx-1])
	}
}

func TestHeatSingleTimeLevel(t *testing.T) {
	// nt == 1 is a zero-step march: the result is the initial profile.
	u0 := Profile{1, 2, 3, 4, 5}
	saved := u0.Clone()

	got, err := Heat(u0, 1, 5, 0.01, 1, 1)
	if err != nil {
		t.Fatalf("heat failed: %v", err)
	}

	if !got.Equal(saved) {
		t.Errorf("expected initial profile %v, got %v", saved, got)
	}
	if !u0.Equal(saved) {
		t.Errorf("input mutated: %v", u0)
	}
	if &got[0] == &u0[0] {
		t.Error("expected a fresh slice, got the input")
	}
}

func TestHeatDoesNotMutateInput(t *testing.T) {
	u0 := Profile{0, 5, 9, 5, 0}
	saved := u0.Clone()

	if _, err := Heat(u0, 20, 5, 0.01, 1, 0.5); err != nil {
		t.Fatalf("heat failed: %v", err)
	}

	if !u0.Equal(saved) {
		t.Errorf("input mutated: %v, was %v", u0, saved)
	}
}

func TestHeatPropagatesInstability(t *testing.T) {
	u0 := Profile{0, 1, 1, 0}

	// dx = 1/3, dt = 1, alpha = 0.1 -> r = 0.9
	got, err := Heat(u0, 2, 4, 0.1, 1, 1)
	if got != nil {
		t.Errorf("expected no partial result, got %v", got)
	}
	if !errors.Is(err, ErrUnstable) {
		t.Errorf("expected ErrUnstable, got %v", err)
	}
}

func TestHeatValidation(t *testing.T) {
	u := Profile{0, 1, 0}

	tests := []struct {
		name  string
		u     Profile
		nt    int
		nx    int
		alpha float64
		L     float64
		tmax  float64
		want  error
	}{
		{"too few nodes", Profile{0, 1}, 10, 2, 0.01, 1, 1, ErrBadGrid},
		{"zero time levels", u, 0, 3, 0.01, 1, 1, ErrBadGrid},
		{"length mismatch", Profile{0, 1, 1, 0}, 10, 3, 0.01, 1, 1, ErrBadGrid},
		{"zero alpha", u, 10, 3, 0, 1, 1, ErrBadParam},
		{"negative length", u, 10, 3, 0.01, -1, 1, ErrBadParam},
		{"zero tmax", u, 10, 3, 0.01, 1, 0, ErrBadParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Heat(tt.u, tt.nt, tt.nx, tt.alpha, tt.L, tt.tmax)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestStepInto(t *testing.T) {
	u := Profile{0, 1, 1, 0}
	dst := make(Profile, 4)

	if err := StepInto(dst, u, 0.04, 0.02, 0.01); err != nil {
		t.Fatalf("step failed: %v", err)
	}

	want := Profile{0, 0.875, 0.875, 0}
	if !dst.Equal(want) {
		t.Errorf("expected %v, got %v", want, dst)
	}

	if err := StepInto(make(Profile, 3), u, 0.04, 0.02, 0.01); !errors.Is(err, ErrBadGrid) {
		t.Error("expected ErrBadGrid for mismatched dst")
	}
}
