// Package report consumes the two datasets and produces summary
// statistics, LaTeX tables, and scatter figures.
package report

import (
	"math"

	"github.com/avetisov/spin2lab/internal/band"
	"github.com/avetisov/spin2lab/internal/spin2"
)

// ZeroTol is the |F2| band counted as numerically zero in the summary.
const ZeroTol = 1e-12

// F2Stats summarizes the sweep dataset.
type F2Stats struct {
	Total int
	NPos  int
	NNeg  int
	NZero int
	Min   float64
	Max   float64
}

// BandStats summarizes the healthy-band dataset.
type BandStats struct {
	Total      int
	Stable     int
	FracStable float64
}

// SummarizeF2 tallies signs and extrema over the samples. Min and Max are
// NaN for an empty dataset.
func SummarizeF2(samples []spin2.Sample) F2Stats {
	st := F2Stats{
		Total: len(samples),
		Min:   math.NaN(),
		Max:   math.NaN(),
	}
	for i, s := range samples {
		if s.F2 > 0 {
			st.NPos++
		}
		if s.F2 < 0 {
			st.NNeg++
		}
		if math.Abs(s.F2) < ZeroTol {
			st.NZero++
		}
		if i == 0 || s.F2 < st.Min {
			st.Min = s.F2
		}
		if i == 0 || s.F2 > st.Max {
			st.Max = s.F2
		}
	}
	return st
}

// SummarizeBand counts stable grid points. The stable and unstable
// classes are disjoint and cover the whole grid.
func SummarizeBand(points []band.Point) BandStats {
	st := BandStats{Total: len(points), FracStable: math.NaN()}
	for _, p := range points {
		if p.Stable() {
			st.Stable++
		}
	}
	if st.Total > 0 {
		st.FracStable = float64(st.Stable) / float64(st.Total)
	}
	return st
}
