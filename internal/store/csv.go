package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/avetisov/spin2lab/internal/band"
	"github.com/avetisov/spin2lab/internal/spin2"
)

var (
	sampleHeader = []string{"omega", "kx", "ky", "kz", "k2", "F2"}
	bandHeader   = []string{"Pprime", "P2prime", "Zs", "Zt", "cs2", "ghost_ok", "grad_ok"}
)

// WriteSamples writes the F2 sweep dataset, one row per retained sample,
// in sweep order.
func (s *Store) WriteSamples(samples []spin2.Sample) error {
	f, err := os.Create(s.SamplesPath())
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(sampleHeader); err != nil {
		return err
	}
	for _, sm := range samples {
		row := []string{
			formatFloat(sm.Omega),
			formatFloat(sm.Kx),
			formatFloat(sm.Ky),
			formatFloat(sm.Kz),
			formatFloat(sm.K2),
			formatFloat(sm.F2),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadSamples loads the F2 sweep dataset, validating the header.
func (s *Store) ReadSamples() ([]spin2.Sample, error) {
	rows, err := readCSV(s.SamplesPath(), sampleHeader)
	if err != nil {
		return nil, err
	}

	samples := make([]spin2.Sample, 0, len(rows))
	for i, row := range rows {
		vals, err := parseFloats(row)
		if err != nil {
			return nil, fmt.Errorf("store: %s row %d: %w", SamplesFile, i+2, err)
		}
		samples = append(samples, spin2.Sample{
			Omega: vals[0], Kx: vals[1], Ky: vals[2], Kz: vals[3],
			K2: vals[4], F2: vals[5],
		})
	}
	return samples, nil
}

// WritePoints writes the healthy-band dataset in grid order. Values keep
// the fixed three-decimal format; cs2 is empty for ghost-unstable points
// and the flags are 0/1.
func (s *Store) WritePoints(points []band.Point) error {
	f, err := os.Create(s.BandPath())
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(bandHeader); err != nil {
		return err
	}
	for _, p := range points {
		cs2 := ""
		if p.Cs2Valid {
			cs2 = strconv.FormatFloat(p.Cs2, 'f', 3, 64)
		}
		row := []string{
			strconv.FormatFloat(p.Pprime, 'f', 3, 64),
			strconv.FormatFloat(p.P2prime, 'f', 3, 64),
			strconv.FormatFloat(p.Zs, 'f', 3, 64),
			strconv.FormatFloat(p.Zt, 'f', 3, 64),
			cs2,
			formatFlag(p.GhostOK),
			formatFlag(p.GradOK),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadPoints loads the healthy-band dataset, validating the header.
func (s *Store) ReadPoints() ([]band.Point, error) {
	rows, err := readCSV(s.BandPath(), bandHeader)
	if err != nil {
		return nil, err
	}

	points := make([]band.Point, 0, len(rows))
	for i, row := range rows {
		vals, err := parseFloats(row[:4])
		if err != nil {
			return nil, fmt.Errorf("store: %s row %d: %w", BandFile, i+2, err)
		}
		p := band.Point{Pprime: vals[0], P2prime: vals[1], Zs: vals[2], Zt: vals[3]}

		if row[4] != "" {
			cs2, err := strconv.ParseFloat(row[4], 64)
			if err != nil {
				return nil, fmt.Errorf("store: %s row %d: cs2: %w", BandFile, i+2, err)
			}
			p.Cs2 = cs2
			p.Cs2Valid = true
		}

		if p.GhostOK, err = parseFlag(row[5]); err != nil {
			return nil, fmt.Errorf("store: %s row %d: ghost_ok: %w", BandFile, i+2, err)
		}
		if p.GradOK, err = parseFlag(row[6]); err != nil {
			return nil, fmt.Errorf("store: %s row %d: grad_ok: %w", BandFile, i+2, err)
		}
		points = append(points, p)
	}
	return points, nil
}

func readCSV(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("store: %s: missing header row", path)
	}
	if len(records[0]) != len(header) {
		return nil, fmt.Errorf("store: %s: expected %d columns, got %d", path, len(header), len(records[0]))
	}
	for i, name := range header {
		if records[0][i] != name {
			return nil, fmt.Errorf("store: %s: column %d is %q, want %q", path, i, records[0][i], name)
		}
	}
	return records[1:], nil
}

func parseFloats(fields []string) ([]float64, error) {
	vals := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseFlag(field string) (bool, error) {
	switch field {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return false, fmt.Errorf("flag must be 0 or 1, got %q", field)
}
