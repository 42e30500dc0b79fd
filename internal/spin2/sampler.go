// Package spin2 samples the spin-2 projector contraction F2(q,k) over a
// family of probe momenta against a fixed timelike reference vector.
package spin2

import (
	"errors"
	"math"

	"github.com/avetisov/spin2lab/internal/tensor"
)

// DefaultSkipTol is the |k^2| band below which a sweep point is skipped
// before projector construction. Looser than the projector's own 1e-10
// guard; the outer check filters out-of-band points first.
const DefaultSkipTol = 1e-8

// ErrZeroReference indicates a reference vector with vanishing temporal
// component; the check requires a timelike-like q with q0 != 0.
var ErrZeroReference = errors.New("spin2: reference vector needs a nonzero temporal component")

// Sweep enumerates probe momenta k = (omega, kx, ky, kz) with omega and kx
// swept and ky, kz held fixed.
type Sweep struct {
	Q       tensor.Vec4
	Omegas  []float64
	Kxs     []float64
	Ky, Kz  float64
	SkipTol float64
}

// Sample is one retained sweep point.
type Sample struct {
	Omega float64
	Kx    float64
	Ky    float64
	Kz    float64
	K2    float64
	F2    float64
}

// Summary tallies a completed sweep.
type Summary struct {
	Kept     int
	Skipped  int
	Positive int
	Negative int
}

// DefaultSweep returns the sweep used for the paper's sign check.
func DefaultSweep() Sweep {
	return Sweep{
		Q:       tensor.Vec4{1.0, 0, 0, 0},
		Omegas:  []float64{0.5, 1.0, 1.5, 2.0},
		Kxs:     []float64{0.5, 1.0, 1.5},
		SkipTol: DefaultSkipTol,
	}
}

// Run evaluates F2 at every sweep point, omega outer and kx inner. Points
// with |k^2| below the skip tolerance are dropped silently; everything
// else produces exactly one sample. Results are deterministic in the
// sweep inputs.
func (s Sweep) Run() ([]Sample, Summary, error) {
	if s.Q[0] == 0 {
		return nil, Summary{}, ErrZeroReference
	}
	tol := s.SkipTol
	if tol <= 0 {
		tol = DefaultSkipTol
	}

	var (
		out []Sample
		sum Summary
	)
	for _, omega := range s.Omegas {
		for _, kx := range s.Kxs {
			k := tensor.Vec4{omega, kx, s.Ky, s.Kz}
			k2 := tensor.Interval(k)
			if math.Abs(k2) < tol {
				sum.Skipped++
				continue
			}

			p, err := tensor.SpinTwoProjector(k)
			if err != nil {
				if errors.Is(err, tensor.ErrNearNull) {
					sum.Skipped++
					continue
				}
				return nil, Summary{}, err
			}

			f2 := tensor.Contract(p, tensor.SourceTensor(s.Q, k))
			out = append(out, Sample{
				Omega: omega,
				Kx:    kx,
				Ky:    s.Ky,
				Kz:    s.Kz,
				K2:    k2,
				F2:    f2,
			})

			sum.Kept++
			switch {
			case f2 > 0:
				sum.Positive++
			case f2 < 0:
				sum.Negative++
			}
		}
	}
	return out, sum, nil
}
