package diffuse

import "fmt"

// Step advances u by one FTCS time step and returns a new profile.
// Boundary nodes are copied through untouched; every interior node i
// becomes r*u[i+1] + (1-2r)*u[i] + r*u[i-1] with r = alpha*dt/dx^2,
// reading only pre-step values. If r exceeds 0.5 the step fails with an
// *InstabilityError and performs no computation.
func Step(u Profile, dx, dt, alpha float64) (Profile, error) {
	out := make(Profile, len(u))
	if err := StepInto(out, u, dx, dt, alpha); err != nil {
		return nil, err
	}
	return out, nil
}

// StepInto is Step without the allocation: it writes the advanced
// profile into dst, which must have the same length as u and must not
// alias it. Callers marching many steps can ping-pong two buffers.
func StepInto(dst, u Profile, dx, dt, alpha float64) error {
	n := len(u)
	if n < 3 {
		return fmt.Errorf("%w: need at least 3 nodes, got %d", ErrBadGrid, n)
	}
	if len(dst) != n {
		return fmt.Errorf("%w: dst has %d nodes, profile has %d", ErrBadGrid, len(dst), n)
	}
	r := alpha * dt / (dx * dx)
	if r > 0.5 {
		return &InstabilityError{R: r, Dx: dx, Dt: dt, Alpha: alpha}
	}
	dst[0] = u[0]
	dst[n-1] = u[n-1]
	for i := 1; i < n-1; i++ {
		dst[i] = r*u[i+1] + (1-2*r)*u[i] + r*u[i-1]
	}
	return nil
}

// Heat marches an initial profile to time tmax, applying Step nt-1
// times with dx = L/(nx-1) and dt = tmax/(nt-1) held constant. The
// returned profile is always a fresh slice; u is never mutated. An
// unstable step aborts the march immediately with its error.
//
// Parameters are validated up front: nx >= 3, nt >= 1, positive L,
// alpha and tmax, and len(u) == nx. nt == 1 means zero steps and
// returns a clone of u.
func Heat(u Profile, nt, nx int, alpha, L, tmax float64) (Profile, error) {
	g := Grid{Nx: nx, Nt: nt, Length: L, Alpha: alpha, Tmax: tmax}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if len(u) != nx {
		return nil, fmt.Errorf("%w: profile has %d nodes, grid expects %d", ErrBadGrid, len(u), nx)
	}

	cur := u.Clone()
	if nt == 1 {
		return cur, nil
	}

	dx, dt := g.Dx(), g.Dt()
	for t := 0; t < nt-1; t++ {
		next, err := Step(cur, dx, dt, alpha)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
