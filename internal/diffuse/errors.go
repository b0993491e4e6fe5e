package diffuse

import (
	"errors"
	"fmt"
)

// Domain errors for the heat kernel.
var (
	// ErrUnstable indicates the explicit scheme's stability bound was exceeded.
	ErrUnstable = errors.New("diffuse: explicit scheme unstable")

	// ErrBadGrid indicates a grid with too few nodes or steps, or a
	// profile whose length disagrees with the grid.
	ErrBadGrid = errors.New("diffuse: invalid grid")

	// ErrBadParam indicates a non-positive length, diffusivity or end time.
	ErrBadParam = errors.New("diffuse: parameter out of range")
)

// InstabilityError reports a step whose ratio r = alpha*dt/dx^2
// exceeds the von Neumann bound of 0.5. No output profile is produced.
type InstabilityError struct {
	R     float64
	Dx    float64
	Dt    float64
	Alpha float64
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("diffuse: unstable step: r=%.4f exceeds 0.5 (alpha=%g, dt=%g, dx=%g)",
		e.R, e.Alpha, e.Dt, e.Dx)
}

func (e *InstabilityError) Unwrap() error {
	return ErrUnstable
}
