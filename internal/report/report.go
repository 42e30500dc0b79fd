package report

import (
	"fmt"
	"os"

	"github.com/avetisov/spin2lab/internal/plot"
	"github.com/avetisov/spin2lab/internal/store"
)

// Generator turns the two datasets into figures and tables. A missing or
// malformed input file aborts the whole run; there is no partial output
// recovery.
type Generator struct {
	Store *store.Store
	X0    float64
}

// Run loads both datasets and writes both figures and both tables.
func (g *Generator) Run() error {
	if err := g.Store.Init(); err != nil {
		return err
	}

	points, err := g.Store.ReadPoints()
	if err != nil {
		return fmt.Errorf("report: load healthy-band scan: %w", err)
	}
	if err := plot.HealthyBand(points, g.X0, g.Store.BandFigurePath()); err != nil {
		return fmt.Errorf("report: healthy-band figure: %w", err)
	}
	bandTex := BandTable(SummarizeBand(points))
	if err := os.WriteFile(g.Store.BandTablePath(), []byte(bandTex), 0644); err != nil {
		return fmt.Errorf("report: healthy-band table: %w", err)
	}

	samples, err := g.Store.ReadSamples()
	if err != nil {
		return fmt.Errorf("report: load spin-2 samples: %w", err)
	}
	if err := plot.F2VsK2(samples, g.Store.F2FigurePath()); err != nil {
		return fmt.Errorf("report: F2 figure: %w", err)
	}
	f2Tex := F2Table(SummarizeF2(samples))
	if err := os.WriteFile(g.Store.F2TablePath(), []byte(f2Tex), 0644); err != nil {
		return fmt.Errorf("report: F2 table: %w", err)
	}

	return nil
}
