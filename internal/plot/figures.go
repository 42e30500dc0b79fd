package plot

import (
	"errors"
	"image/color"

	"github.com/avetisov/spin2lab/internal/band"
	"github.com/avetisov/spin2lab/internal/spin2"
)

// ErrEmptyDataset indicates there is nothing to plot.
var ErrEmptyDataset = errors.New("plot: empty dataset")

var (
	frameColor    = color.RGBA{60, 60, 60, 255}
	axisColor     = color.RGBA{150, 150, 150, 255}
	stableColor   = color.RGBA{30, 140, 70, 255}
	unstableColor = color.RGBA{190, 190, 200, 255}
	sampleColor   = color.RGBA{40, 90, 180, 255}
)

// HealthyBand renders the stability scatter: Pprime on the x-axis and
// Zt = Pprime + 2 X0 P2prime on the y-axis, healthy-band points drawn on
// top of the unstable background.
func HealthyBand(points []band.Point, x0 float64, path string) error {
	if len(points) == 0 {
		return ErrEmptyDataset
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Pprime
		ys[i] = p.Pprime + 2.0*x0*p.P2prime
	}

	r := NewRaster(defaultWidth, defaultHeight)
	r.SetWindow(window(xs, ys))
	r.Frame(frameColor)
	r.DashedHLine(0, axisColor)
	r.DashedVLine(0, axisColor)

	for i, p := range points {
		if !p.Stable() {
			r.Dot(xs[i], ys[i], 2, unstableColor)
		}
	}
	for i, p := range points {
		if p.Stable() {
			r.Dot(xs[i], ys[i], 2, stableColor)
		}
	}
	return r.WritePNG(path)
}

// F2VsK2 renders the contraction samples against k^2.
func F2VsK2(samples []spin2.Sample, path string) error {
	if len(samples) == 0 {
		return ErrEmptyDataset
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.K2
		ys[i] = s.F2
	}

	r := NewRaster(defaultWidth, defaultHeight)
	r.SetWindow(window(xs, ys))
	r.Frame(frameColor)
	r.DashedHLine(0, axisColor)

	for i := range samples {
		r.Dot(xs[i], ys[i], 4, sampleColor)
	}
	return r.WritePNG(path)
}
