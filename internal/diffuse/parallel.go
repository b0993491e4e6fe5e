package diffuse

import (
	"fmt"
	"sync"
)

// StepParallel is Step with the interior update fanned out over
// workers goroutines. Interior nodes are independent within a step, so
// the result is identical to the serial Step. workers <= 1 falls back
// to the serial path; the parallel path only pays off for large nx.
func StepParallel(u Profile, dx, dt, alpha float64, workers int) (Profile, error) {
	n := len(u)
	if workers <= 1 || n-2 < workers*2 {
		return Step(u, dx, dt, alpha)
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: need at least 3 nodes, got %d", ErrBadGrid, n)
	}
	r := alpha * dt / (dx * dx)
	if r > 0.5 {
		return nil, &InstabilityError{R: r, Dx: dx, Dt: dt, Alpha: alpha}
	}

	out := make(Profile, n)
	out[0] = u[0]
	out[n-1] = u[n-1]

	interior := n - 2
	chunk := (interior + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := 1 + w*chunk
		hi := lo + chunk
		if hi > n-1 {
			hi = n - 1
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				out[i] = r*u[i+1] + (1-2*r)*u[i] + r*u[i-1]
			}
		}(lo, hi)
	}
	wg.Wait()

	return out, nil
}
