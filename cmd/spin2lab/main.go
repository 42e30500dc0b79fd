package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avetisov/spin2lab/internal/band"
	"github.com/avetisov/spin2lab/internal/config"
	"github.com/avetisov/spin2lab/internal/explore"
	"github.com/avetisov/spin2lab/internal/plot"
	"github.com/avetisov/spin2lab/internal/report"
	"github.com/avetisov/spin2lab/internal/spin2"
	"github.com/avetisov/spin2lab/internal/store"
	"github.com/avetisov/spin2lab/internal/tensor"
)

var (
	configFile string
	preset     string
	dataDir    string
	figDir     string
	resDir     string

	// Sweep overrides
	q0 float64
	ky float64
	kz float64

	// Scan overrides
	x0     float64
	ppMin  float64
	ppMax  float64
	ppStep float64
	p2Min  float64
	p2Max  float64
	p2Step float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spin2lab",
		Short: "numerical checks for the spin-2 projector and the healthy band",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&figDir, "figures", config.DefaultFigDir, "figures directory")
	rootCmd.PersistentFlags().StringVar(&resDir, "results", config.DefaultResDir, "results directory")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "sample the spin-2 contraction F2(q,k) over the momentum sweep",
		RunE:  runSample,
	}
	sampleCmd.Flags().Float64Var(&q0, "q0", config.DefaultQ0, "temporal component of the reference vector")
	sampleCmd.Flags().Float64Var(&ky, "ky", 0.0, "fixed ky component")
	sampleCmd.Flags().Float64Var(&kz, "kz", 0.0, "fixed kz component")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "scan the (P', P'') grid for healthy-band stability",
		RunE:  runScan,
	}
	addScanFlags(scanCmd)

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "generate figures and LaTeX tables from the datasets",
		RunE:  runReport,
	}
	reportCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "background scale X0")

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "run sample, scan and report in sequence",
		RunE:  runAll,
	}
	addScanFlags(allCmd)
	allCmd.Flags().Float64Var(&q0, "q0", config.DefaultQ0, "temporal component of the reference vector")
	allCmd.Flags().Float64Var(&ky, "ky", 0.0, "fixed ky component")
	allCmd.Flags().Float64Var(&kz, "kz", 0.0, "fixed kz component")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "terminal preview of both datasets",
		RunE:  runPreview,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactively browse the healthy-band grid",
		RunE:  runExplore,
	}
	addScanFlags(exploreCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(sampleCmd, scanCmd, reportCmd, allCmd, previewCmd, exploreCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "background scale X0")
	cmd.Flags().Float64Var(&ppMin, "pprime-min", config.DefaultGridMin, "P' range minimum")
	cmd.Flags().Float64Var(&ppMax, "pprime-max", config.DefaultGridMax, "P' range maximum")
	cmd.Flags().Float64Var(&ppStep, "pprime-step", config.DefaultStep, "P' range step")
	cmd.Flags().Float64Var(&p2Min, "p2prime-min", config.DefaultGridMin, "P'' range minimum")
	cmd.Flags().Float64Var(&p2Max, "p2prime-max", config.DefaultGridMax, "P'' range maximum")
	cmd.Flags().Float64Var(&p2Step, "p2prime-step", config.DefaultStep, "P'' range step")
}

// loadConfig resolves the run parameters: preset, then config file, then
// CLI flags on top (flags win only when actually set).
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("q0") {
		cfg.Sweep.Q0 = q0
	}
	if flags.Changed("ky") {
		cfg.Sweep.Ky = ky
	}
	if flags.Changed("kz") {
		cfg.Sweep.Kz = kz
	}
	if flags.Changed("x0") {
		cfg.Scan.X0 = x0
	}
	if flags.Changed("pprime-min") {
		cfg.Scan.Pprime.Min = ppMin
	}
	if flags.Changed("pprime-max") {
		cfg.Scan.Pprime.Max = ppMax
	}
	if flags.Changed("pprime-step") {
		cfg.Scan.Pprime.Step = ppStep
	}
	if flags.Changed("p2prime-min") {
		cfg.Scan.P2prime.Min = p2Min
	}
	if flags.Changed("p2prime-max") {
		cfg.Scan.P2prime.Max = p2Max
	}
	if flags.Changed("p2prime-step") {
		cfg.Scan.P2prime.Step = p2Step
	}
	if flags.Changed("data") {
		cfg.Paths.Data = dataDir
	}
	if flags.Changed("figures") {
		cfg.Paths.Figures = figDir
	}
	if flags.Changed("results") {
		cfg.Paths.Results = resDir
	}
	return cfg, nil
}

func newStore(cfg *config.Config) *store.Store {
	return store.New(cfg.Paths.Data, cfg.Paths.Figures, cfg.Paths.Results)
}

func sweepFromConfig(cfg *config.Config) spin2.Sweep {
	return spin2.Sweep{
		Q:       tensor.Vec4{cfg.Sweep.Q0, 0, 0, 0},
		Omegas:  cfg.Sweep.Omegas,
		Kxs:     cfg.Sweep.Kxs,
		Ky:      cfg.Sweep.Ky,
		Kz:      cfg.Sweep.Kz,
		SkipTol: cfg.Sweep.SkipTol,
	}
}

func scanFromConfig(cfg *config.Config) band.Scan {
	return band.Scan{
		PprimeMin: cfg.Scan.Pprime.Min, PprimeMax: cfg.Scan.Pprime.Max, PprimeStep: cfg.Scan.Pprime.Step,
		P2primeMin: cfg.Scan.P2prime.Min, P2primeMax: cfg.Scan.P2prime.Max, P2primeStep: cfg.Scan.P2prime.Step,
		X0: cfg.Scan.X0,
	}
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := newStore(cfg)
	if err := st.Init(); err != nil {
		return err
	}

	samples, sum, err := sweepFromConfig(cfg).Run()
	if err != nil {
		return err
	}
	if err := st.WriteSamples(samples); err != nil {
		return err
	}

	fmt.Printf("wrote %d spin-2 projector samples to %s (%d skipped)\n",
		sum.Kept, st.SamplesPath(), sum.Skipped)
	fmt.Printf("F2>0 in %d samples, F2<0 in %d samples\n", sum.Positive, sum.Negative)
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := newStore(cfg)
	if err := st.Init(); err != nil {
		return err
	}

	points := scanFromConfig(cfg).Run()
	if err := st.WritePoints(points); err != nil {
		return err
	}

	fmt.Printf("written healthy-band scan to %s (%d points)\n", st.BandPath(), len(points))
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := newStore(cfg)

	gen := &report.Generator{Store: st, X0: cfg.Scan.X0}
	if err := gen.Run(); err != nil {
		return err
	}

	fmt.Printf("wrote healthy band figure to %s\n", st.BandFigurePath())
	fmt.Printf("wrote healthy band stats table to %s\n", st.BandTablePath())
	fmt.Printf("wrote spin-2 F2 figure to %s\n", st.F2FigurePath())
	fmt.Printf("wrote spin-2 F2 stats table to %s\n", st.F2TablePath())
	return nil
}

func runAll(cmd *cobra.Command, args []string) error {
	if err := runSample(cmd, args); err != nil {
		return err
	}
	if err := runScan(cmd, args); err != nil {
		return err
	}
	if err := runReport(cmd, args); err != nil {
		return err
	}
	fmt.Println("all figures and tables generated")
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := newStore(cfg)

	points, err := st.ReadPoints()
	if err != nil {
		return err
	}
	fmt.Println("healthy band scan:")
	fmt.Println(plot.BandASCII(points, cfg.Scan.X0, 70, 20))

	bandStats := report.SummarizeBand(points)
	fmt.Printf("%d of %d grid points stable (%.1f%%)\n\n",
		bandStats.Stable, bandStats.Total, 100*bandStats.FracStable)

	samples, err := st.ReadSamples()
	if err != nil {
		return err
	}
	fmt.Println(plot.F2ASCII(samples, 70, 12))
	fmt.Println()

	f2Stats := report.SummarizeF2(samples)
	fmt.Printf("%d samples: %d positive, %d negative, min %.6g, max %.6g\n",
		f2Stats.Total, f2Stats.NPos, f2Stats.NNeg, f2Stats.Min, f2Stats.Max)
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return explore.Run(scanFromConfig(cfg))
}
