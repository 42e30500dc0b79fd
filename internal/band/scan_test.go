package band

import (
	"math"
	"testing"
)

func TestCountsDefault(t *testing.T) {
	ni, nj := DefaultScan().Counts()
	if ni != 41 || nj != 41 {
		t.Fatalf("expected 41x41 grid, got %dx%d", ni, nj)
	}
}

func TestRunDenseGrid(t *testing.T) {
	pts := DefaultScan().Run()
	if len(pts) != 1681 {
		t.Fatalf("expected 1681 grid points, got %d", len(pts))
	}

	// Endpoints must be included.
	first, last := pts[0], pts[len(pts)-1]
	if math.Abs(first.Pprime-(-2.0)) > 1e-9 || math.Abs(first.P2prime-(-2.0)) > 1e-9 {
		t.Errorf("first point not at grid min: %+v", first)
	}
	if math.Abs(last.Pprime-2.0) > 1e-9 || math.Abs(last.P2prime-2.0) > 1e-9 {
		t.Errorf("last point not at grid max: %+v", last)
	}
}

func TestRunPredicates(t *testing.T) {
	s := DefaultScan()
	for _, p := range s.Run() {
		if p.GhostOK != (p.Zt > 0) {
			t.Fatalf("ghost_ok mismatch at (%v,%v): Zt=%v", p.Pprime, p.P2prime, p.Zt)
		}
		if p.GradOK != (p.Zs > 0) {
			t.Fatalf("grad_ok mismatch at (%v,%v): Zs=%v", p.Pprime, p.P2prime, p.Zs)
		}
		if p.Cs2Valid != p.GhostOK {
			t.Fatalf("cs2 must be present iff ghost_ok at (%v,%v)", p.Pprime, p.P2prime)
		}
		if p.Cs2Valid && math.Abs(p.Cs2-p.Zs/p.Zt) > 1e-12 {
			t.Fatalf("cs2 != Zs/Zt at (%v,%v): %v", p.Pprime, p.P2prime, p.Cs2)
		}
		if math.Abs(p.Zs-p.Pprime) > 1e-12 {
			t.Fatalf("Zs != Pprime at (%v,%v)", p.Pprime, p.P2prime)
		}
		if math.Abs(p.Zt-(p.Pprime+2.0*s.X0*p.P2prime)) > 1e-12 {
			t.Fatalf("Zt mismatch at (%v,%v)", p.Pprime, p.P2prime)
		}
	}
}

func TestRunStableCount(t *testing.T) {
	stable := 0
	for _, p := range DefaultScan().Run() {
		if p.Stable() {
			stable++
		}
	}
	if stable != 518 {
		t.Errorf("expected 518 stable points on the default grid, got %d", stable)
	}
}

func TestStepsEdgeCases(t *testing.T) {
	tests := []struct {
		min, max, step float64
		want           int
	}{
		{0, 1, 0.5, 3},
		{0, 1, 1, 2},
		{0, 0, 0.1, 1},
		{1, 0, 0.1, 0},
		{0, 1, 0, 0},
		{-2, 2, 0.1, 41},
	}
	for _, tt := range tests {
		if got := steps(tt.min, tt.max, tt.step); got != tt.want {
			t.Errorf("steps(%v, %v, %v) = %d, want %d", tt.min, tt.max, tt.step, got, tt.want)
		}
	}
}

func TestRunDegenerateScan(t *testing.T) {
	s := Scan{
		PprimeMin: 1.0, PprimeMax: 1.0, PprimeStep: 0.1,
		P2primeMin: 0.5, P2primeMax: 0.5, P2primeStep: 0.1,
		X0: 2.0,
	}
	pts := s.Run()
	if len(pts) != 1 {
		t.Fatalf("expected single point, got %d", len(pts))
	}
	p := pts[0]
	if math.Abs(p.Zt-3.0) > 1e-12 {
		t.Errorf("Zt = %v, want 3 (Zs + 2*X0*P2prime)", p.Zt)
	}
	if !p.Stable() || !p.Cs2Valid {
		t.Errorf("point should be stable with valid cs2: %+v", p)
	}
	if math.Abs(p.Cs2-1.0/3.0) > 1e-12 {
		t.Errorf("cs2 = %v, want 1/3", p.Cs2)
	}
}
