package plot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/avetisov/spin2lab/internal/band"
	"github.com/avetisov/spin2lab/internal/spin2"
)

// BandASCII draws the healthy-band scatter as a framed terminal plot:
// '.' for unstable points, 'o' for points inside the healthy band.
func BandASCII(points []band.Point, x0 float64, width, height int) string {
	if len(points) == 0 {
		return "(no data)"
	}
	if width <= 0 {
		width = 70
	}
	if height <= 0 {
		height = 20
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Pprime
		ys[i] = p.Pprime + 2.0*x0*p.P2prime
	}
	xmin, xmax, ymin, ymax := window(xs, ys)

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	mark := func(i int, c rune) {
		px := int(float64(width-1) * (xs[i] - xmin) / (xmax - xmin))
		py := int(float64(height-1) * (ys[i] - ymin) / (ymax - ymin))
		py = height - 1 - py
		if px >= 0 && px < width && py >= 0 && py < height {
			canvas[py][px] = c
		}
	}
	for i, p := range points {
		if !p.Stable() {
			mark(i, '.')
		}
	}
	for i, p := range points {
		if p.Stable() {
			mark(i, 'o')
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "  %.2f ┌%s┐\n", ymax, strings.Repeat("─", width))
	for i := range canvas {
		if i == height/2 {
			fmt.Fprintf(&sb, "  %.2f │", (ymax+ymin)/2)
		} else {
			sb.WriteString("       │")
		}
		sb.WriteString(string(canvas[i]))
		sb.WriteString("│\n")
	}
	fmt.Fprintf(&sb, "  %.2f └%s┘\n", ymin, strings.Repeat("─", width))
	fmt.Fprintf(&sb, "       %.2f%s%.2f\n", xmin, strings.Repeat(" ", max(1, width-12)), xmax)
	sb.WriteString("\nLegend: o = healthy band, . = unstable\n")
	return sb.String()
}

// F2ASCII plots F2 against k^2 as a line graph over the samples sorted
// by k^2.
func F2ASCII(samples []spin2.Sample, width, height int) string {
	if len(samples) == 0 {
		return "(no data)"
	}
	if width <= 0 {
		width = 70
	}
	if height <= 0 {
		height = 12
	}

	sorted := make([]spin2.Sample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].K2 < sorted[j].K2 })

	data := make([]float64, len(sorted))
	for i, s := range sorted {
		data[i] = s.F2
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("F2 ordered by k^2"),
	)
}
