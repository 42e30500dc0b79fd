// Package plot renders the scatter figures as PNG files and provides
// terminal previews of both datasets.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	margin        = 60
	dashLen       = 6
)

// Raster is a fixed-size scatter canvas with a data-space window mapped
// onto the pixel area inside the margins.
type Raster struct {
	img                    *image.RGBA
	w, h                   int
	xmin, xmax, ymin, ymax float64
}

func NewRaster(w, h int) *Raster {
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return &Raster{img: img, w: w, h: h, xmin: 0, xmax: 1, ymin: 0, ymax: 1}
}

// SetWindow fixes the data-space window. Zero-extent ranges are widened
// so a degenerate dataset still maps somewhere visible.
func (r *Raster) SetWindow(xmin, xmax, ymin, ymax float64) {
	if xmax-xmin == 0 {
		xmin -= 0.5
		xmax += 0.5
	}
	if ymax-ymin == 0 {
		ymin -= 0.5
		ymax += 0.5
	}
	r.xmin, r.xmax, r.ymin, r.ymax = xmin, xmax, ymin, ymax
}

func (r *Raster) px(x float64) int {
	return margin + int(float64(r.w-2*margin)*(x-r.xmin)/(r.xmax-r.xmin))
}

func (r *Raster) py(y float64) int {
	// Pixel rows grow downward.
	return r.h - margin - int(float64(r.h-2*margin)*(y-r.ymin)/(r.ymax-r.ymin))
}

func (r *Raster) set(x, y int, c color.Color) {
	if x >= 0 && x < r.w && y >= 0 && y < r.h {
		r.img.Set(x, y, c)
	}
}

// Frame draws the plot-area border.
func (r *Raster) Frame(c color.Color) {
	for x := margin; x <= r.w-margin; x++ {
		r.set(x, margin, c)
		r.set(x, r.h-margin, c)
	}
	for y := margin; y <= r.h-margin; y++ {
		r.set(margin, y, c)
		r.set(r.w-margin, y, c)
	}
}

// DashedHLine draws a dashed horizontal line at data-space y, clipped to
// the plot area.
func (r *Raster) DashedHLine(y float64, c color.Color) {
	if y < r.ymin || y > r.ymax {
		return
	}
	py := r.py(y)
	for x := margin; x <= r.w-margin; x++ {
		if (x/dashLen)%2 == 0 {
			r.set(x, py, c)
		}
	}
}

// DashedVLine draws a dashed vertical line at data-space x.
func (r *Raster) DashedVLine(x float64, c color.Color) {
	if x < r.xmin || x > r.xmax {
		return
	}
	px := r.px(x)
	for y := margin; y <= r.h-margin; y++ {
		if (y/dashLen)%2 == 0 {
			r.set(px, y, c)
		}
	}
}

// Dot plots a filled disc at data-space (x, y).
func (r *Raster) Dot(x, y float64, radius int, c color.Color) {
	cx, cy := r.px(x), r.py(y)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				r.set(cx+dx, cy+dy, c)
			}
		}
	}
}

// WritePNG encodes the canvas to path.
func (r *Raster) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, r.img); err != nil {
		return fmt.Errorf("plot: encode %s: %w", path, err)
	}
	return nil
}

// window returns the data bounds of xs/ys padded by 10% on each side.
func window(xs, ys []float64) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = xs[0], xs[0]
	ymin, ymax = ys[0], ys[0]
	for i := range xs {
		if xs[i] < xmin {
			xmin = xs[i]
		}
		if xs[i] > xmax {
			xmax = xs[i]
		}
		if ys[i] < ymin {
			ymin = ys[i]
		}
		if ys[i] > ymax {
			ymax = ys[i]
		}
	}
	xr, yr := xmax-xmin, ymax-ymin
	if xr == 0 {
		xr = 1
	}
	if yr == 0 {
		yr = 1
	}
	return xmin - xr*0.1, xmax + xr*0.1, ymin - yr*0.1, ymax + yr*0.1
}
