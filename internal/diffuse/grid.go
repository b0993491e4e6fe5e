package diffuse

import "fmt"

// Grid holds the domain and time-march parameters of a run. Nx counts
// spatial nodes including both boundaries; Nt counts time levels
// including the initial one, so a march performs Nt-1 steps.
type Grid struct {
	Nx     int
	Nt     int
	Length float64
	Alpha  float64
	Tmax   float64
}

// Dx returns the spatial node spacing Length/(Nx-1).
func (g Grid) Dx() float64 {
	return g.Length / float64(g.Nx-1)
}

// Dt returns the time increment Tmax/(Nt-1). A single-level march
// (Nt == 1) takes no steps and has no time increment.
func (g Grid) Dt() float64 {
	if g.Nt < 2 {
		return 0
	}
	return g.Tmax / float64(g.Nt-1)
}

// Ratio returns the stability ratio r = Alpha*Dt/Dx^2.
func (g Grid) Ratio() float64 {
	dx := g.Dx()
	return g.Alpha * g.Dt() / (dx * dx)
}

// MaxStableDt returns the largest time increment for which the explicit
// scheme remains stable on this grid.
func (g Grid) MaxStableDt() float64 {
	dx := g.Dx()
	return 0.5 * dx * dx / g.Alpha
}

func (g Grid) Validate() error {
	if g.Nx < 3 {
		return fmt.Errorf("%w: nx must be >= 3, got %d", ErrBadGrid, g.Nx)
	}
	if g.Nt < 1 {
		return fmt.Errorf("%w: nt must be >= 1, got %d", ErrBadGrid, g.Nt)
	}
	if g.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %g", ErrBadParam, g.Length)
	}
	if g.Alpha <= 0 {
		return fmt.Errorf("%w: alpha must be positive, got %g", ErrBadParam, g.Alpha)
	}
	if g.Tmax <= 0 {
		return fmt.Errorf("%w: tmax must be positive, got %g", ErrBadParam, g.Tmax)
	}
	return nil
}

// Linspace samples n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = start + float64(i)*(stop-start)/float64(n-1)
	}
	return xs
}

// Nodes returns the x coordinate of every grid node.
func (g Grid) Nodes() []float64 {
	return Linspace(0, g.Length, g.Nx)
}
