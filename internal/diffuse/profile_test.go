package diffuse

import (
	"math"
	"testing"
)

func TestProfileClone(t *testing.T) {
	p := Profile{1, 2, 3}
	c := p.Clone()

	c[1] = 99
	if p[1] != 2 {
		t.Error("clone shares storage with original")
	}
}

func TestProfileIsValid(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		valid   bool
	}{
		{"normal", Profile{0, 1, 2}, true},
		{"empty", Profile{}, true},
		{"nan", Profile{0, math.NaN(), 2}, false},
		{"positive inf", Profile{0, math.Inf(1), 2}, false},
		{"negative inf", Profile{math.Inf(-1), 1, 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.IsValid(); got != tt.valid {
				t.Errorf("expected %v, got %v", tt.valid, got)
			}
		})
	}
}

func TestProfileNorm(t *testing.T) {
	p := Profile{3, 4}
	if math.Abs(p.Norm()-5) > 1e-12 {
		t.Errorf("expected norm 5, got %f", p.Norm())
	}
}

func TestProfileEqual(t *testing.T) {
	a := Profile{1, 2, 3}

	if !a.Equal(Profile{1, 2, 3}) {
		t.Error("expected equal")
	}
	if a.Equal(Profile{1, 2}) {
		t.Error("length mismatch should not be equal")
	}
	if a.Equal(Profile{1, 2, 4}) {
		t.Error("value mismatch should not be equal")
	}
}

func TestProfilePeak(t *testing.T) {
	p := Profile{1, -7, 3}
	if p.Peak() != 7 {
		t.Errorf("expected peak 7, got %f", p.Peak())
	}
}

func TestProfileMinMax(t *testing.T) {
	p := Profile{2, -1, 5, 0}
	lo, hi := p.MinMax()
	if lo != -1 || hi != 5 {
		t.Errorf("expected [-1, 5], got [%f, %f]", lo, hi)
	}
}
