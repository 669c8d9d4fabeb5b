package main

import (
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/vibelab/internal/analysis"
	"github.com/san-kum/vibelab/internal/beam"
	"github.com/san-kum/vibelab/internal/config"
	"github.com/san-kum/vibelab/internal/export"
	"github.com/san-kum/vibelab/internal/sdof"
	"github.com/san-kum/vibelab/internal/store"
	"github.com/san-kum/vibelab/internal/tui"
	"github.com/san-kum/vibelab/internal/vibe"
)

var (
	dataDir string

	// Oscillator
	mass      float64
	damping   float64
	stiffness float64
	x0        float64
	v0        float64
	maxTime   float64
	solver    string

	// Forcing
	forceAmp  float64
	driveFreq float64

	// Sweeps
	zetaList string
	rmin     float64
	rmax     float64
	// Rotating unbalance
	unbalMass  float64
	unbalEcc   float64
	normalized bool

	// Beam
	boundary  string
	modeCount int
	modeList  string
	npoints   int
	xin       float64
	xout      float64
	fmin      float64
	fmax      float64
	modalZeta float64

	// Spectrum
	natFreq float64

	// Outputs
	configFile string
	preset     string
	pngOut     string
	phaseOut   string
	xlsxOut    string
	saveRun    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vibelab",
		Short: "mechanical vibration lab",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".vibelab", "data directory")

	freeCmd := &cobra.Command{
		Use:   "free",
		Short: "free response of a damped oscillator",
		RunE:  runFree,
	}
	addOscillatorFlags(freeCmd)
	freeCmd.Flags().StringVar(&solver, "solver", "rk45", "solver (euler, rk4, rk45, analytical)")
	freeCmd.Flags().StringVar(&pngOut, "png", "", "write displacement plot to file")
	freeCmd.Flags().StringVar(&phaseOut, "phase", "", "write phase portrait to file")
	freeCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")

	forcedCmd := &cobra.Command{
		Use:   "forced",
		Short: "harmonically forced response",
		RunE:  runForced,
	}
	addOscillatorFlags(forcedCmd)
	forcedCmd.Flags().Float64Var(&forceAmp, "f0", 1.0, "force amplitude")
	forcedCmd.Flags().Float64Var(&driveFreq, "wdr", 2.0, "drive frequency (rad/s)")
	forcedCmd.Flags().StringVar(&solver, "solver", "rk45", "solver (rk45, analytical)")
	forcedCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")

	impulseCmd := &cobra.Command{
		Use:   "impulse",
		Short: "impulse response",
		RunE:  runImpulse,
	}
	addOscillatorFlags(impulseCmd)
	impulseCmd.Flags().Float64Var(&forceAmp, "f0", 1.0, "impulse magnitude")

	stepCmd := &cobra.Command{
		Use:   "step",
		Short: "step response",
		RunE:  runStep,
	}
	addOscillatorFlags(stepCmd)
	stepCmd.Flags().Float64Var(&forceAmp, "f0", 1.0, "step magnitude")

	sweepCmd := &cobra.Command{
		Use:   "sweep [steady|transmissibility|unbalance]",
		Short: "frequency-ratio sweeps over damping ratios",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&zetaList, "zetas", "0.1,0.25,0.5", "damping ratios")
	sweepCmd.Flags().Float64Var(&rmin, "rmin", 0, "lowest frequency ratio")
	sweepCmd.Flags().Float64Var(&rmax, "rmax", 2, "highest frequency ratio")
	sweepCmd.Flags().Float64Var(&mass, "mass", 1, "total mass (unbalance)")
	sweepCmd.Flags().Float64Var(&unbalMass, "m0", 0.5, "unbalanced mass")
	sweepCmd.Flags().Float64Var(&unbalEcc, "ecc", 0.1, "eccentricity (unbalance)")
	sweepCmd.Flags().BoolVar(&normalized, "normalized", true, "normalize unbalance amplitude")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "ramp-input response spectrum",
		RunE:  runSpectrum,
	}
	spectrumCmd.Flags().Float64Var(&natFreq, "freq", 10, "natural frequency (Hz)")
	spectrumCmd.Flags().StringVar(&pngOut, "png", "", "write spectrum plot to file")

	modesCmd := &cobra.Command{
		Use:   "modes",
		Short: "beam natural frequencies and mode shapes",
		RunE:  runModes,
	}
	addBeamFlags(modesCmd)
	modesCmd.Flags().IntVar(&modeCount, "count", 4, "number of modes")
	modesCmd.Flags().StringVar(&modeList, "indices", "", "explicit mode indices (overrides --count)")
	modesCmd.Flags().IntVar(&npoints, "points", 200, "shape sample points")
	modesCmd.Flags().StringVar(&pngOut, "png", "", "write mode shapes to file")
	modesCmd.Flags().StringVar(&xlsxOut, "xlsx", "", "write workbook")

	frfCmd := &cobra.Command{
		Use:   "frf",
		Short: "beam frequency response between two points",
		RunE:  runFRF,
	}
	addBeamFlags(frfCmd)
	frfCmd.Flags().Float64Var(&xin, "xin", config.DefaultProbe, "drive point (m)")
	frfCmd.Flags().Float64Var(&xout, "xout", config.DefaultProbe, "response point (m)")
	frfCmd.Flags().Float64Var(&fmin, "fmin", 0, "lowest frequency (Hz)")
	frfCmd.Flags().Float64Var(&fmax, "fmax", config.DefaultFmax, "highest frequency (Hz)")
	frfCmd.Flags().Float64Var(&modalZeta, "zeta", config.DefaultZeta, "modal damping ratio")
	frfCmd.Flags().StringVar(&pngOut, "png", "", "write magnitude plot to file")
	frfCmd.Flags().StringVar(&phaseOut, "phase", "", "write phase plot to file")
	frfCmd.Flags().StringVar(&xlsxOut, "xlsx", "", "write workbook")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "animate beam mode shapes in the terminal",
		RunE:  runAnimate,
	}
	addBeamFlags(animateCmd)
	animateCmd.Flags().IntVar(&modeCount, "count", 4, "number of modes")
	animateCmd.Flags().IntVar(&npoints, "points", 200, "shape sample points")

	presetsCmd := &cobra.Command{
		Use:   "presets [group]",
		Short: "list preset configurations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	rootCmd.AddCommand(freeCmd, forcedCmd, impulseCmd, stepCmd, sweepCmd,
		spectrumCmd, modesCmd, frfCmd, animateCmd, presetsCmd,
		listCmd, plotCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addOscillatorFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "mass")
	cmd.Flags().Float64Var(&damping, "damping", config.DefaultDamping, "damping coefficient")
	cmd.Flags().Float64Var(&stiffness, "stiffness", config.DefaultStiffness, "stiffness")
	cmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial displacement")
	cmd.Flags().Float64Var(&v0, "v0", config.DefaultV0, "initial velocity")
	cmd.Flags().Float64Var(&maxTime, "time", config.DefaultMaxTime, "duration (s)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "oscillator preset")
}

func addBeamFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&boundary, "boundary", beam.ClampedFree.String(), "boundary condition")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "beam preset")
}

// loadOscillator resolves preset/config/flags into a validated system.
func loadOscillator(cmd *cobra.Command) (vibe.Oscillator, vibe.InitialConditions, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset("oscillator", preset)
		if p == nil {
			return vibe.Oscillator{}, vibe.InitialConditions{}, fmt.Errorf("unknown oscillator preset %q", preset)
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return vibe.Oscillator{}, vibe.InitialConditions{}, err
		}
		cfg = loaded
	}

	// Explicit flags override preset and file values.
	override := func(name string, dst *float64, val float64) {
		if cmd.Flags().Changed(name) {
			*dst = val
		}
	}
	override("mass", &cfg.Oscillator.Mass, mass)
	override("damping", &cfg.Oscillator.Damping, damping)
	override("stiffness", &cfg.Oscillator.Stiffness, stiffness)
	override("x0", &cfg.Oscillator.X0, x0)
	override("v0", &cfg.Oscillator.V0, v0)
	override("time", &cfg.Oscillator.MaxTime, maxTime)
	maxTime = cfg.Oscillator.MaxTime

	osc, err := cfg.GetOscillator()
	return osc, cfg.GetInitialConditions(), err
}

func loadBeam(cmd *cobra.Command) (beam.Params, beam.Boundary, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset("beam", preset)
		if p == nil {
			return beam.Params{}, 0, fmt.Errorf("unknown beam preset %q", preset)
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return beam.Params{}, 0, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("boundary") {
		cfg.Beam.Boundary = boundary
	}
	if !cmd.Flags().Changed("xin") && cfg.FRF.Xin != 0 {
		xin = cfg.FRF.Xin
	}
	if !cmd.Flags().Changed("xout") && cfg.FRF.Xout != 0 {
		xout = cfg.FRF.Xout
	}
	return cfg.GetBeam()
}

func printSummary(osc vibe.Oscillator) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "omega\t%.6f rad/s\n", osc.Omega())
	fmt.Fprintf(w, "zeta\t%.6f\n", osc.Zeta())
	if osc.Zeta() < 1 {
		fmt.Fprintf(w, "omega_d\t%.6f rad/s\n", osc.OmegaD())
	}
	fmt.Fprintf(w, "regime\t%s\n", osc.Regime())
	w.Flush()
	fmt.Println()
}

func plotSeries(data []float64, caption string) {
	graph := asciigraph.Plot(downsample(data, 800),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	fmt.Println()
}

// numericVelocity differentiates a sampled displacement by central
// differences, for solvers that only return displacement.
func numericVelocity(t, x []float64) []float64 {
	v := make([]float64, len(x))
	if len(x) < 2 {
		return v
	}
	v[0] = (x[1] - x[0]) / (t[1] - t[0])
	for i := 1; i < len(x)-1; i++ {
		v[i] = (x[i+1] - x[i-1]) / (t[i+1] - t[i-1])
	}
	last := len(x) - 1
	v[last] = (x[last] - x[last-1]) / (t[last] - t[last-1])
	return v
}

// downsample keeps terminal plots responsive for long runs.
func downsample(data []float64, maxLen int) []float64 {
	if len(data) <= maxLen {
		return data
	}
	out := make([]float64, maxLen)
	for i := range out {
		out[i] = data[i*len(data)/maxLen]
	}
	return out
}

func persistRun(kind string, osc vibe.Oscillator, ts *vibe.TimeSeries) error {
	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	params := map[string]float64{
		"mass":      osc.M,
		"damping":   osc.C,
		"stiffness": osc.K,
	}
	id, err := st.Save(kind, solver, params, ts)
	if err != nil {
		return err
	}
	fmt.Printf("saved run %s\n", id)
	return nil
}

func runFree(cmd *cobra.Command, args []string) error {
	osc, ic, err := loadOscillator(cmd)
	if err != nil {
		return err
	}
	printSummary(osc)

	const dt = 0.01
	steps := int(maxTime / dt)

	var ts *vibe.TimeSeries
	pngDone := false
	switch solver {
	case "euler":
		ts, err = sdof.EulerSeries(osc, ic, steps, dt)
	case "rk4":
		ts, err = sdof.RK4Series(osc, ic, steps, dt)
	case "analytical":
		tt, x, v, aerr := sdof.Analytical(osc, ic, steps, dt)
		if aerr != nil {
			return aerr
		}
		ts = &vibe.TimeSeries{Times: tt, X: x, V: v}
	default:
		var res *sdof.FreeResult
		res, err = sdof.Free(osc, ic, maxTime)
		if err == nil {
			ts = &res.TimeSeries
			if pngOut != "" {
				if err := export.SaveFreeResponse(pngOut, res); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", pngOut)
				pngDone = true
			}
		}
	}
	if err != nil {
		return err
	}

	plotSeries(ts.X, "displacement")
	if est, ok := analysis.EstimateZeta(ts); ok {
		fmt.Printf("zeta from log decrement: %.4f\n\n", est)
	}
	if pngOut != "" && !pngDone {
		if err := export.SaveXY(pngOut, "Displacement vs Time", "Time (s)", "Displacement", ts.Times, ts.X); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngOut)
	}
	if phaseOut != "" {
		if err := export.SavePhasePortrait(phaseOut, ts); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", phaseOut)
	}
	if saveRun {
		return persistRun("free", osc, ts)
	}
	return nil
}

func runForced(cmd *cobra.Command, args []string) error {
	osc, ic, err := loadOscillator(cmd)
	if err != nil {
		return err
	}
	printSummary(osc)

	var ts *vibe.TimeSeries
	if solver == "analytical" {
		tt, x, err := sdof.ForcedAnalytical(osc.M, osc.K, ic, driveFreq, forceAmp, maxTime)
		if err != nil {
			return err
		}
		ts = &vibe.TimeSeries{Times: tt, X: x, V: numericVelocity(tt, x)}
	} else {
		ts, err = sdof.Forced(osc, ic, forceAmp, driveFreq, maxTime)
		if err != nil {
			return err
		}
	}

	plotSeries(ts.X, fmt.Sprintf("forced response, wdr=%.3f rad/s", driveFreq))
	if saveRun {
		return persistRun("forced", osc, ts)
	}
	return nil
}

func runImpulse(cmd *cobra.Command, args []string) error {
	osc, _, err := loadOscillator(cmd)
	if err != nil {
		return err
	}
	printSummary(osc)

	_, x, err := sdof.ImpulseResponse(osc, forceAmp, maxTime)
	if err != nil {
		return err
	}
	plotSeries(x, "impulse response")
	return nil
}

func runStep(cmd *cobra.Command, args []string) error {
	osc, _, err := loadOscillator(cmd)
	if err != nil {
		return err
	}
	printSummary(osc)

	_, x, err := sdof.StepResponse(osc, forceAmp, maxTime)
	if err != nil {
		return err
	}
	plotSeries(x, fmt.Sprintf("step response, static deflection %.4f", forceAmp/osc.K))
	return nil
}

func parseZetas(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	zetas := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing damping ratio %q: %w", p, err)
		}
		zetas = append(zetas, v)
	}
	return zetas, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	zetas, err := parseZetas(zetaList)
	if err != nil {
		return err
	}

	magnitudes := func(rows [][]complex128) [][]float64 {
		out := make([][]float64, len(rows))
		for i, row := range rows {
			out[i] = make([]float64, len(row))
			for j, v := range row {
				out[i][j] = cmplx.Abs(v)
			}
		}
		return out
	}

	var curves [][]float64
	var caption string
	switch args[0] {
	case "steady":
		_, amp, err := sdof.SteadyState(zetas, rmin, rmax)
		if err != nil {
			return err
		}
		curves, caption = magnitudes(amp), "normalized amplitude |X/delta|"
	case "transmissibility":
		_, disp, _, err := sdof.Transmissibility(zetas, rmin, rmax)
		if err != nil {
			return err
		}
		curves, caption = disp, "displacement transmissibility"
	case "unbalance":
		_, amp, err := sdof.RotatingUnbalance(mass, unbalMass, unbalEcc, zetas, rmin, rmax, normalized)
		if err != nil {
			return err
		}
		curves, caption = magnitudes(amp), "unbalance response"
	default:
		return fmt.Errorf("unknown sweep %q (want steady, transmissibility, or unbalance)", args[0])
	}

	for i, row := range curves {
		plotSeries(row, fmt.Sprintf("%s, zeta=%.3g, r in [%.2g, %.2g]", caption, zetas[i], rmin, rmax))
	}
	return nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	tt, rs, err := analysis.ResponseSpectrum(natFreq)
	if err != nil {
		return err
	}
	plotSeries(rs, fmt.Sprintf("response spectrum, f=%.3g Hz, rise time up to %.3g s", natFreq, tt[len(tt)-1]))

	if pngOut != "" {
		if err := export.SaveXY(pngOut, "Response Spectrum", "Rise time (s)", "(xk/F0)max", tt, rs); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngOut)
	}
	return nil
}

func parseIndices(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	indices := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parsing mode index %q: %w", p, err)
		}
		indices = append(indices, n)
	}
	return indices, nil
}

func runModes(cmd *cobra.Command, args []string) error {
	p, bc, err := loadBeam(cmd)
	if err != nil {
		return err
	}

	indices := beam.ModeIndices(modeCount)
	if modeList != "" {
		if indices, err = parseIndices(modeList); err != nil {
			return err
		}
	}

	res, err := beam.Modes(p, bc, indices, npoints)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "mode\tbeta\tomega (rad/s)\tfreq (Hz)")
	for _, m := range res.Modes {
		fmt.Fprintf(w, "%d\t%.6f\t%.3f\t%.3f\n", m.Index, m.Beta, m.Omega, m.Omega/(2*math.Pi))
	}
	w.Flush()
	fmt.Println()

	for _, m := range res.Modes {
		plotSeries(m.Shape, fmt.Sprintf("mode %d shape, %s", m.Index, bc))
	}

	if pngOut != "" {
		if err := export.SaveModeShapes(pngOut, res); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngOut)
	}
	if xlsxOut != "" {
		if err := store.ExportModesXLSX(xlsxOut, res); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", xlsxOut)
	}
	return nil
}

func runFRF(cmd *cobra.Command, args []string) error {
	p, bc, err := loadBeam(cmd)
	if err != nil {
		return err
	}

	frf, err := beam.AssembleFRF(p, bc, xin, xout, fmin, fmax, modalZeta)
	if err != nil {
		return err
	}

	fmt.Printf("%d modes cover [%g, %g] Hz:\n", len(frf.ModeFreqs), fmin, fmax)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "mode\tfreq (Hz)")
	for i, f := range frf.ModeFreqs {
		fmt.Fprintf(w, "%d\t%.3f\n", i+1, f)
	}
	w.Flush()
	fmt.Println()

	db := make([]float64, len(frf.Sum))
	for i, v := range frf.Sum {
		db[i] = 20 * math.Log10(cmplx.Abs(v))
	}
	plotSeries(db, fmt.Sprintf("receptance (dB), %s, xin=%.3g m, xout=%.3g m", bc, xin, xout))

	if pngOut != "" {
		if err := export.SaveFRFMagnitude(pngOut, frf); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngOut)
	}
	if phaseOut != "" {
		if err := export.SaveFRFPhase(phaseOut, frf); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", phaseOut)
	}
	if xlsxOut != "" {
		if err := store.ExportFRFXLSX(xlsxOut, frf); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", xlsxOut)
	}
	return nil
}

func runAnimate(cmd *cobra.Command, args []string) error {
	p, bc, err := loadBeam(cmd)
	if err != nil {
		return err
	}
	res, err := beam.Modes(p, bc, beam.ModeIndices(modeCount), npoints)
	if err != nil {
		return err
	}
	return tui.RunAnimation(res, bc)
}

func listPresets(cmd *cobra.Command, args []string) error {
	groups := []string{"oscillator", "beam"}
	if len(args) == 1 {
		groups = args
	}
	for _, g := range groups {
		names := config.ListPresets(g)
		if names == nil {
			return fmt.Errorf("unknown preset group %q", g)
		}
		fmt.Printf("%s:\n", g)
		for _, n := range names {
			fmt.Printf("  %s\n", n)
		}
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("no runs")
			return nil
		}
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "run\tkind\tsolver\tsteps")
	for _, id := range runs {
		meta, err := st.Load(id)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", meta.ID, meta.Kind, meta.Solver, meta.Steps)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	ts, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	plotSeries(ts.X, fmt.Sprintf("run %s displacement", args[0]))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	ts, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return store.ExportJSONStdout(meta.Kind, meta.Solver, meta.Params, ts)
}
