package plot

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avetisov/spin2lab/internal/band"
	"github.com/avetisov/spin2lab/internal/spin2"
)

func decodePNG(t *testing.T, path string) (w, h int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestHealthyBandFigure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "band.png")
	if err := HealthyBand(band.DefaultScan().Run(), 1.0, path); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	w, h := decodePNG(t, path)
	if w != defaultWidth || h != defaultHeight {
		t.Errorf("figure size %dx%d, want %dx%d", w, h, defaultWidth, defaultHeight)
	}
}

func TestF2Figure(t *testing.T) {
	samples, _, err := spin2.DefaultSweep().Run()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "f2.png")
	if err := F2VsK2(samples, path); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if w, h := decodePNG(t, path); w == 0 || h == 0 {
		t.Error("empty figure")
	}
}

func TestEmptyDatasets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.png")
	if err := HealthyBand(nil, 1.0, path); err != ErrEmptyDataset {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
	if err := F2VsK2(nil, path); err != ErrEmptyDataset {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestWindowPadding(t *testing.T) {
	xmin, xmax, ymin, ymax := window([]float64{0, 10}, []float64{-5, 5})
	if xmin != -1 || xmax != 11 {
		t.Errorf("x window (%v,%v), want (-1,11)", xmin, xmax)
	}
	if ymin != -6 || ymax != 6 {
		t.Errorf("y window (%v,%v), want (-6,6)", ymin, ymax)
	}

	// Degenerate extent still widens.
	xmin, xmax, _, _ = window([]float64{3, 3}, []float64{1, 2})
	if xmax <= xmin {
		t.Errorf("degenerate x window not widened: (%v,%v)", xmin, xmax)
	}
}

func TestBandASCII(t *testing.T) {
	out := BandASCII(band.DefaultScan().Run(), 1.0, 60, 16)
	if !strings.Contains(out, "o") {
		t.Error("expected healthy-band markers in preview")
	}
	if !strings.Contains(out, ".") {
		t.Error("expected unstable markers in preview")
	}
	if !strings.Contains(out, "Legend") {
		t.Error("expected legend line")
	}
}

func TestF2ASCII(t *testing.T) {
	samples, _, err := spin2.DefaultSweep().Run()
	if err != nil {
		t.Fatal(err)
	}
	out := F2ASCII(samples, 60, 10)
	if out == "" || out == "(no data)" {
		t.Errorf("expected a graph, got %q", out)
	}
	if F2ASCII(nil, 60, 10) != "(no data)" {
		t.Error("expected placeholder for empty input")
	}
}
