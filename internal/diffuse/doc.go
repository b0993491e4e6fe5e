// Package diffuse solves the one-dimensional heat equation with an
// explicit forward-time centered-space (FTCS) finite-difference scheme.
//
// The package defines the fundamental types and the two operations of
// the kernel:
//
//   - [Profile]: temperature values on an ordered grid of nodes
//   - [Grid]: domain and time-march parameters with derived dx, dt
//   - [Step]: one FTCS time step, Dirichlet boundaries held fixed
//   - [Heat]: the full time march from an initial profile to tmax
//
// # Stability
//
// The explicit scheme is stable only while r = alpha*dt/dx^2 <= 0.5.
// [Step] refuses to advance past that bound and returns an
// [*InstabilityError] carrying the offending ratio:
//
//	out, err := diffuse.Step(u, dx, dt, alpha)
//	var ie *diffuse.InstabilityError
//	if errors.As(err, &ie) {
//	    log.Fatalf("reduce dt: r=%.3f", ie.R)
//	}
//
// # Purity
//
// Step and Heat never mutate their input profile. Every step reads only
// pre-step values, so the update is synchronous rather than
// Gauss-Seidel-style.
package diffuse
