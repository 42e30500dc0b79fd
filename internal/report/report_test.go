package report

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avetisov/spin2lab/internal/band"
	"github.com/avetisov/spin2lab/internal/spin2"
	"github.com/avetisov/spin2lab/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dir := t.TempDir()
	s := store.New(filepath.Join(dir, "data"), filepath.Join(dir, "figures"), filepath.Join(dir, "results"))
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestGeneratorRun(t *testing.T) {
	st := newTestStore(t)

	samples, _, err := spin2.DefaultSweep().Run()
	if err != nil {
		t.Fatal(err)
	}
	if err := st.WriteSamples(samples); err != nil {
		t.Fatal(err)
	}
	if err := st.WritePoints(band.DefaultScan().Run()); err != nil {
		t.Fatal(err)
	}

	g := &Generator{Store: st, X0: 1.0}
	if err := g.Run(); err != nil {
		t.Fatalf("report run failed: %v", err)
	}

	// Both figures decode as PNG.
	for _, path := range []string{st.BandFigurePath(), st.F2FigurePath()} {
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("figure not written: %v", err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("figure %s is not valid PNG: %v", path, err)
		}
		if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
			t.Errorf("figure %s has empty bounds", path)
		}
	}

	// Both tables carry the expected aggregates.
	bandTex, err := os.ReadFile(st.BandTablePath())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(bandTex), "Total grid points & 1681") {
		t.Errorf("band table missing grid total:\n%s", bandTex)
	}
	f2Tex, err := os.ReadFile(st.F2TablePath())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(f2Tex), "Total samples & 9") {
		t.Errorf("F2 table missing sample total:\n%s", f2Tex)
	}
}

func TestGeneratorMissingInput(t *testing.T) {
	st := newTestStore(t)
	g := &Generator{Store: st, X0: 1.0}
	if err := g.Run(); err == nil {
		t.Error("expected error when datasets are missing")
	}
}

func TestGeneratorMalformedInput(t *testing.T) {
	st := newTestStore(t)
	if err := os.WriteFile(st.BandPath(), []byte("bogus\n"), 0644); err != nil {
		t.Fatal(err)
	}
	g := &Generator{Store: st, X0: 1.0}
	if err := g.Run(); err == nil {
		t.Error("expected error for malformed band dataset")
	}
}
