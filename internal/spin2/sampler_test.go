package spin2

import (
	"math"
	"testing"

	"github.com/avetisov/spin2lab/internal/tensor"
)

func TestDefaultSweep(t *testing.T) {
	samples, sum, err := DefaultSweep().Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 4x3 grid with three null points: (0.5,0.5), (1.0,1.0), (1.5,1.5).
	if len(samples) != 9 {
		t.Fatalf("expected 9 samples, got %d", len(samples))
	}
	if sum.Kept != 9 || sum.Skipped != 3 {
		t.Errorf("expected kept=9 skipped=3, got kept=%d skipped=%d", sum.Kept, sum.Skipped)
	}
	if sum.Positive != 9 || sum.Negative != 0 {
		t.Errorf("expected all samples positive, got pos=%d neg=%d", sum.Positive, sum.Negative)
	}

	for _, s := range samples {
		if math.IsNaN(s.F2) || math.IsInf(s.F2, 0) {
			t.Errorf("non-finite F2 at omega=%v kx=%v", s.Omega, s.Kx)
		}
		if math.Abs(s.K2) < DefaultSkipTol {
			t.Errorf("near-null point not skipped: omega=%v kx=%v k2=%v", s.Omega, s.Kx, s.K2)
		}
	}
}

func TestRunSkipsNullVector(t *testing.T) {
	sw := Sweep{
		Q:      tensor.Vec4{1.0, 0, 0, 0},
		Omegas: []float64{1.0},
		Kxs:    []float64{1.0}, // k^2 = -1 + 1 = 0
	}
	samples, sum, err := sw.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("expected null point to be skipped, got %d samples", len(samples))
	}
	if sum.Skipped != 1 {
		t.Errorf("expected skipped=1, got %d", sum.Skipped)
	}
}

func TestRunTimelikeValue(t *testing.T) {
	sw := Sweep{
		Q:      tensor.Vec4{1.0, 0, 0, 0},
		Omegas: []float64{2.0},
		Kxs:    []float64{1.0},
	}
	samples, _, err := sw.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}

	s := samples[0]
	if math.Abs(s.K2-(-3.0)) > 1e-12 {
		t.Errorf("expected k2 = -3, got %v", s.K2)
	}
	if math.Abs(s.F2-128.0/27.0) > 1e-12 {
		t.Errorf("expected F2 = 128/27, got %v", s.F2)
	}
}

func TestRunZeroReference(t *testing.T) {
	sw := Sweep{
		Q:      tensor.Vec4{0, 1.0, 0, 0},
		Omegas: []float64{2.0},
		Kxs:    []float64{1.0},
	}
	if _, _, err := sw.Run(); err != ErrZeroReference {
		t.Errorf("expected ErrZeroReference, got %v", err)
	}
}

func TestRunDeterministic(t *testing.T) {
	a, _, err := DefaultSweep().Run()
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := DefaultSweep().Run()
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("sample %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
