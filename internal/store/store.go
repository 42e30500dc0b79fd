// Package store reads and writes the flat CSV datasets exchanged between
// the sampler, the scanner, and the report stage, and bootstraps the
// output directories.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dataset file names under the data directory.
const (
	SamplesFile = "spin2_F2_samples.csv"
	BandFile    = "healthy_band_scan.csv"
)

// Figure and table file names.
const (
	BandFigureFile = "fig_healthy_band_scan.png"
	F2FigureFile   = "fig_spin2_F2_vs_k2.png"
	BandTableFile  = "table_healthy_band_stats.tex"
	F2TableFile    = "table_spin2_F2_stats.tex"
)

type Store struct {
	DataDir   string
	FigureDir string
	ResultDir string
}

func New(data, figures, results string) *Store {
	return &Store{DataDir: data, FigureDir: figures, ResultDir: results}
}

// Init creates the output directories.
func (s *Store) Init() error {
	for _, dir := range []string{s.DataDir, s.FigureDir, s.ResultDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("store: create %s: %w", dir, err)
		}
	}
	return nil
}

func (s *Store) SamplesPath() string { return filepath.Join(s.DataDir, SamplesFile) }
func (s *Store) BandPath() string    { return filepath.Join(s.DataDir, BandFile) }

func (s *Store) BandFigurePath() string { return filepath.Join(s.FigureDir, BandFigureFile) }
func (s *Store) F2FigurePath() string   { return filepath.Join(s.FigureDir, F2FigureFile) }

func (s *Store) BandTablePath() string { return filepath.Join(s.ResultDir, BandTableFile) }
func (s *Store) F2TablePath() string   { return filepath.Join(s.ResultDir, F2TableFile) }
