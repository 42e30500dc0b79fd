// Package band scans a 2D grid in (P'(X0), P''(X0)) and evaluates the
// healthy-band stability conditions
//
//	Z_s = P'(X0) > 0           (gradient stability)
//	Z_t = P'(X0) + 2 X0 P''(X0) > 0   (ghost stability)
//	c_s^2 = Z_s / Z_t          (defined for ghost-stable points)
//
// X0 is a fixed positive background scale; no specific P(X) is assumed.
package band

import "math"

// Scan is a dense Cartesian grid over (Pprime, P2prime).
type Scan struct {
	PprimeMin, PprimeMax, PprimeStep    float64
	P2primeMin, P2primeMax, P2primeStep float64
	X0                                  float64
}

// Point is one grid record. Cs2 carries a value only when Cs2Valid; the
// ratio is left out of the dataset for ghost-unstable points.
type Point struct {
	Pprime   float64
	P2prime  float64
	Zs       float64
	Zt       float64
	Cs2      float64
	Cs2Valid bool
	GhostOK  bool
	GradOK   bool
}

// Stable reports whether the point lies in the healthy band.
func (p Point) Stable() bool { return p.GhostOK && p.GradOK }

// DefaultScan returns the grid used in the paper: both derivatives swept
// over [-2, 2] at step 0.1 with X0 = 1.
func DefaultScan() Scan {
	return Scan{
		PprimeMin: -2.0, PprimeMax: 2.0, PprimeStep: 0.1,
		P2primeMin: -2.0, P2primeMax: 2.0, P2primeStep: 0.1,
		X0: 1.0,
	}
}

func steps(min, max, step float64) int {
	if step <= 0 || max < min {
		return 0
	}
	return int(math.Round((max-min)/step)) + 1
}

// Counts returns the grid dimensions: Pprime values (outer loop) and
// P2prime values (inner loop).
func (s Scan) Counts() (int, int) {
	return steps(s.PprimeMin, s.PprimeMax, s.PprimeStep),
		steps(s.P2primeMin, s.P2primeMax, s.P2primeStep)
}

// Run evaluates every grid point in outer-Pprime, inner-P2prime order.
// Grid values step as min + i*step rather than by accumulation, so the
// endpoints are included exactly once regardless of float drift. Every
// point is recorded; no skipping.
func (s Scan) Run() []Point {
	ni, nj := s.Counts()
	pts := make([]Point, 0, ni*nj)
	for i := 0; i < ni; i++ {
		pp := s.PprimeMin + float64(i)*s.PprimeStep
		for j := 0; j < nj; j++ {
			p2 := s.P2primeMin + float64(j)*s.P2primeStep

			zs := pp
			zt := pp + 2.0*s.X0*p2
			pt := Point{
				Pprime:  pp,
				P2prime: p2,
				Zs:      zs,
				Zt:      zt,
				GhostOK: zt > 0,
				GradOK:  zs > 0,
			}
			if pt.GhostOK {
				pt.Cs2 = zs / zt
				pt.Cs2Valid = true
			}
			pts = append(pts, pt)
		}
	}
	return pts
}
