package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/heatsim/internal/analysis"
	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/diffuse"
	"github.com/san-kum/heatsim/internal/experiment"
	"github.com/san-kum/heatsim/internal/export"
	"github.com/san-kum/heatsim/internal/solver"
	"github.com/san-kum/heatsim/internal/storage"
	"github.com/san-kum/heatsim/internal/tui"
)

var (
	dataDir string
	nx      int
	nt      int
	alpha   float64
	length  float64
	tmax    float64
	workers int
	// Initial condition shape
	amplitude float64
	left      float64
	right     float64
	center    float64
	width     float64
	// Config file and preset
	configFile string
	preset     string
	// Compare/sweep parameters
	resolutions []int
	alphas      []float64
	// Export target
	outFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "heatsim",
		Short: "one-dimensional heat equation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".heatsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [profile]",
		Short: "run a diffusion march",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addGridFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run profiles",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run profiles to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render run profiles to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default <run_id>.svg)")

	presetsCmd := &cobra.Command{
		Use:   "presets [profile]",
		Short: "list available presets for a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for profile: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare grid resolutions against the analytic sine solution",
		RunE:  compareResolutions,
	}
	compareCmd.Flags().IntSliceVar(&resolutions, "nx", []int{10, 20, 40, 80}, "node counts to compare")
	compareCmd.Flags().IntVar(&nt, "nt", 0, "time levels (0 = derive a stable count per grid)")
	compareCmd.Flags().Float64Var(&alpha, "alpha", config.DefaultAlpha, "diffusivity")
	compareCmd.Flags().Float64Var(&length, "length", config.DefaultLength, "domain length")
	compareCmd.Flags().Float64Var(&tmax, "tmax", 0.5, "end time")

	sweepCmd := &cobra.Command{
		Use:   "sweep [profile]",
		Short: "sweep diffusivity values in parallel",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepAlphas,
	}
	addGridFlags(sweepCmd)
	sweepCmd.Flags().Float64SliceVar(&alphas, "alphas", []float64{0.005, 0.01, 0.02}, "diffusivity values")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the stencil march",
		RunE:  benchMarch,
	}

	liveCmd := &cobra.Command{
		Use:   "live [profile]",
		Short: "watch the march live in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addGridFlags(liveCmd)
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd,
		exportSVGCmd, presetsCmd, compareCmd, sweepCmd, benchCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&nx, "nx", config.DefaultNx, "number of spatial nodes")
	cmd.Flags().IntVar(&nt, "nt", config.DefaultNt, "number of time levels")
	cmd.Flags().Float64Var(&alpha, "alpha", config.DefaultAlpha, "thermal diffusivity")
	cmd.Flags().Float64Var(&length, "length", config.DefaultLength, "domain length")
	cmd.Flags().Float64Var(&tmax, "tmax", config.DefaultTmax, "end time")
	cmd.Flags().IntVar(&workers, "workers", 0, "goroutines for the interior update")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1.0, "initial amplitude")
	cmd.Flags().Float64Var(&left, "left", 0, "left boundary value")
	cmd.Flags().Float64Var(&right, "right", 0, "right boundary value")
	cmd.Flags().Float64Var(&center, "center", 0.5, "pulse center")
	cmd.Flags().Float64Var(&width, "width", 0.25, "pulse width")
}

// buildConfig merges preset, config file and flags, flags winning.
func buildConfig(cmd *cobra.Command, profile string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Profile = profile

	if preset != "" {
		p := config.GetPreset(profile, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(profile))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Profile = profile
	}

	if cmd.Flags().Changed("nx") {
		cfg.Nx = nx
	}
	if cmd.Flags().Changed("nt") {
		cfg.Nt = nt
	}
	if cmd.Flags().Changed("alpha") {
		cfg.Alpha = alpha
	}
	if cmd.Flags().Changed("length") {
		cfg.Length = length
	}
	if cmd.Flags().Changed("tmax") {
		cfg.Tmax = tmax
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("amplitude") {
		cfg.Init.Amplitude = amplitude
	}
	if cmd.Flags().Changed("left") {
		cfg.Init.Left = left
	}
	if cmd.Flags().Changed("right") {
		cfg.Init.Right = right
	}
	if cmd.Flags().Changed("center") {
		cfg.Init.Center = center
	}
	if cmd.Flags().Changed("width") {
		cfg.Init.Width = width
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	g := cfg.Grid()
	if r := g.Ratio(); r > 0.5 {
		return fmt.Errorf("unstable parameters: r=%.4f > 0.5 (max stable dt=%.6f, configured dt=%.6f)",
			r, g.MaxStableDt(), g.Dt())
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(experiment.NewRegistry()); err != nil {
		return err
	}

	fmt.Printf("running %s march (nx=%d nt=%d r=%.4f)...\n", cfg.Profile, cfg.Nx, cfg.Nt, g.Ratio())
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROFILE\tTIME\tNX\tNT\tALPHA\tTMAX\tR")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.4f\t%.2fs\t%.4f\n",
			run.ID,
			run.Profile,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Nx,
			run.Nt,
			run.Alpha,
			run.Tmax,
			run.Ratio,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	profiles, times, err := st.LoadProfiles(runID)
	if err != nil {
		return err
	}

	if len(profiles) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("profile: %s\n", meta.Profile)
	fmt.Printf("time levels: %d\n\n", len(profiles))

	snapshots := []struct {
		label string
		index int
	}{
		{"initial", 0},
		{"midway", len(profiles) / 2},
		{"final", len(profiles) - 1},
	}

	for _, snap := range snapshots {
		caption := fmt.Sprintf("%s profile (t=%.3fs)", snap.label, times[snap.index])
		graph := asciigraph.Plot(profiles[snap.index],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	peaks := make([]float64, len(profiles))
	for i, p := range profiles {
		peaks[i] = p.Peak()
	}
	graph := asciigraph.Plot(peaks,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("peak temperature vs time"),
	)
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	profiles, times, err := st.LoadProfiles(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if len(profiles) == 0 {
		return nil
	}

	header := []string{"time"}
	for i := range profiles[0] {
		header = append(header, fmt.Sprintf("u%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, p := range profiles {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, v := range p {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	profiles, times, err := st.LoadProfiles(runID)
	if err != nil {
		return err
	}

	if outFile == "" {
		return export.WriteJSON(os.Stdout, meta, profiles, times)
	}
	return export.ExportJSON(outFile, meta, profiles, times)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	profiles, _, err := st.LoadProfiles(runID)
	if err != nil {
		return err
	}

	if len(profiles) == 0 {
		return fmt.Errorf("no data to render")
	}

	// Initial, quarter, half, three-quarter and final snapshots.
	picks := []int{0, len(profiles) / 4, len(profiles) / 2, 3 * len(profiles) / 4, len(profiles) - 1}
	selected := make([]diffuse.Profile, 0, len(picks))
	seen := make(map[int]bool)
	for _, i := range picks {
		if !seen[i] {
			selected = append(selected, profiles[i])
			seen[i] = true
		}
	}

	path := outFile
	if path == "" {
		path = runID + ".svg"
	}
	if err := export.ExportSVG(path, selected, 800, 400); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}

func compareResolutions(cmd *cobra.Command, args []string) error {
	fmt.Printf("comparing against analytic sine solution (alpha=%.4f L=%.2f tmax=%.2f)\n\n",
		alpha, length, tmax)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NX\tNT\tDX\tDT\tR\tMAX ERR\tL2 ERR")

	for _, n := range resolutions {
		steps := nt
		if steps == 0 {
			// Pick a step count that keeps r comfortably inside the bound.
			g := diffuse.Grid{Nx: n, Nt: 2, Length: length, Alpha: alpha, Tmax: tmax}
			steps = int(tmax/(0.25*g.MaxStableDt())) + 2
		}

		g := diffuse.Grid{Nx: n, Nt: steps, Length: length, Alpha: alpha, Tmax: tmax}
		u0 := analysis.SineProfile(n, length)

		got, err := diffuse.Heat(u0, g.Nt, g.Nx, g.Alpha, g.Length, g.Tmax)
		if err != nil {
			return fmt.Errorf("nx=%d: %w", n, err)
		}

		want := analysis.AnalyticAt(g, tmax)
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.6f\t%.4f\t%.2e\t%.2e\n",
			n, steps, g.Dx(), g.Dt(), g.Ratio(),
			analysis.MaxAbsError(got, want), analysis.L2Error(got, want))
	}

	return w.Flush()
}

func sweepAlphas(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	gen, err := registry.Get(cfg.Profile)
	if err != nil {
		return err
	}
	u0 := gen(cfg.Nx, cfg.Length, cfg.Init)

	g := cfg.Grid()
	ensemble := solver.NewEnsemble(alphas, func() []solver.Metric {
		return experiment.DefaultMetrics(g)
	})

	results, err := ensemble.Run(context.Background(), u0, solver.Config{
		Grid:    g,
		Workers: cfg.Workers,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALPHA\tR\tDECAY RATE\tFINAL PEAK\tFINAL HEAT")

	for i, result := range results {
		a := alphas[i]
		rate := analysis.ObservedDecayRate(u0.Peak(), result.Final.Peak(), cfg.Tmax)
		fmt.Fprintf(w, "%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			a, result.Ratio, rate,
			result.Final.Peak(), result.Metrics["total_heat"])
	}

	return w.Flush()
}

func benchMarch(cmd *cobra.Command, args []string) error {
	sizes := []int{100, 1000, 10000}
	stepCounts := []int{100, 1000}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NX\tSTEPS\tTIME\tSTEPS/SEC")

	for _, n := range sizes {
		for _, steps := range stepCounts {
			u := make(diffuse.Profile, n)
			for i := 1; i < n-1; i++ {
				u[i] = 1
			}

			g := diffuse.Grid{Nx: n, Nt: steps + 1, Length: 1, Alpha: 0.01, Tmax: 1}
			dt := 0.25 * g.MaxStableDt()

			// Ping-pong two buffers to time the kernel itself.
			cur, next := u.Clone(), make(diffuse.Profile, n)
			start := time.Now()
			for s := 0; s < steps; s++ {
				if err := diffuse.StepInto(next, cur, g.Dx(), dt, g.Alpha); err != nil {
					return err
				}
				cur, next = next, cur
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n",
				n, steps, elapsed, float64(steps)/elapsed.Seconds())
		}
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	g := cfg.Grid()
	if err := g.Validate(); err != nil {
		return err
	}
	if g.Ratio() > 0.5 {
		return fmt.Errorf("unstable parameters: r=%.4f > 0.5", g.Ratio())
	}

	registry := experiment.NewRegistry()
	gen, err := registry.Get(cfg.Profile)
	if err != nil {
		return err
	}

	return tui.RunLive(cfg, gen(cfg.Nx, cfg.Length, cfg.Init))
}
