package diffuse

import (
	"errors"
	"math"
	"testing"
)

func TestStepParallelMatchesSerial(t *testing.T) {
	nx := 201
	u := make(Profile, nx)
	for i := range u {
		u[i] = math.Sin(3 * math.Pi * float64(i) / float64(nx-1))
	}

	dx, dt, alpha := 0.01, 0.001, 0.02

	serial, err := Step(u, dx, dt, alpha)
	if err != nil {
		t.Fatalf("serial step failed: %v", err)
	}

	for _, workers := range []int{2, 4, 7} {
		parallel, err := StepParallel(u, dx, dt, alpha, workers)
		if err != nil {
			t.Fatalf("parallel step (%d workers) failed: %v", workers, err)
		}
		if !parallel.Equal(serial) {
			t.Errorf("%d workers: parallel result differs from serial", workers)
		}
	}
}

func TestStepParallelInstability(t *testing.T) {
	u := make(Profile, 100)
	_, err := StepParallel(u, 0.01, 1, 1, 4)
	if !errors.Is(err, ErrUnstable) {
		t.Errorf("expected ErrUnstable, got %v", err)
	}
}

func TestStepParallelSmallGridFallsBack(t *testing.T) {
	u := Profile{0, 1, 1, 0}

	got, err := StepParallel(u, 0.04, 0.02, 0.01, 8)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}

	want := Profile{0, 0.875, 0.875, 0}
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func BenchmarkStep(b *testing.B) {
	u := make(Profile, 10000)
	for i := range u {
		u[i] = float64(i % 17)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Step(u, 0.01, 0.001, 0.02); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStepParallel(b *testing.B) {
	u := make(Profile, 10000)
	for i := range u {
		u[i] = float64(i % 17)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := StepParallel(u, 0.01, 0.001, 0.02, 4); err != nil {
			b.Fatal(err)
		}
	}
}
