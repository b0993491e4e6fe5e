package diffuse

import "math"

// Profile holds one temperature value per grid node. Index 0 and
// index len-1 are the Dirichlet boundary nodes.
type Profile []float64

func (p Profile) Clone() Profile {
	c := make(Profile, len(p))
	copy(c, p)
	return c
}

func (p Profile) IsValid() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (p Profile) Norm() float64 {
	sum := 0.0
	for _, v := range p {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (p Profile) Equal(other Profile) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Peak returns the largest absolute value in the profile.
func (p Profile) Peak() float64 {
	peak := 0.0
	for _, v := range p {
		if math.Abs(v) > peak {
			peak = math.Abs(v)
		}
	}
	return peak
}

// MinMax returns the smallest and largest values in the profile.
func (p Profile) MinMax() (float64, float64) {
	if len(p) == 0 {
		return 0, 0
	}
	lo, hi := p[0], p[0]
	for _, v := range p[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
