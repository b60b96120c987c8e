package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/attractor/internal/analysis"
	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/export"
	"github.com/san-kum/attractor/internal/integrators"
	"github.com/san-kum/attractor/internal/ode"
	"github.com/san-kum/attractor/internal/sim"
	"github.com/san-kum/attractor/internal/storage"
	"github.com/san-kum/attractor/internal/viz"
)

var (
	dataDir    string
	dt         float64
	steps      int
	method     string
	paramsFlag string
	initFlag   string
	configFile string
	preset     string
	plane      string
	variable   string
	first      int
	outFile    string
	perturb    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "attractor",
		Short: "strange attractor trajectory lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".attractor", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [type]",
		Short: "compute and store a trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrajectory,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size")
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of iterations")
	runCmd.Flags().StringVar(&method, "method", integrators.MethodEuler, "integration method (euler|runge-kutta)")
	runCmd.Flags().StringVar(&paramsFlag, "params", "", "comma-separated attractor parameters")
	runCmd.Flags().StringVar(&initFlag, "init", "", "comma-separated initial coordinates x,y,z")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live [type]",
		Short: "animate a trajectory in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size")
	liveCmd.Flags().StringVar(&method, "method", integrators.MethodRungeKutta, "integration method (euler|runge-kutta)")
	liveCmd.Flags().StringVar(&paramsFlag, "params", "", "comma-separated attractor parameters")
	liveCmd.Flags().StringVar(&initFlag, "init", "", "comma-separated initial coordinates x,y,z")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run (projection + variables)",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plane, "plane", "xoz", "projection plane (xoy|xoz|yoz)")

	projectionCmd := &cobra.Command{
		Use:   "projection [run_id]",
		Short: "plot a 2D projection of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  projectionPlot,
	}
	projectionCmd.Flags().StringVar(&plane, "plane", "xoy", "projection plane (xoy|xoz|yoz)")

	variableCmd := &cobra.Command{
		Use:   "variable [run_id]",
		Short: "plot one coordinate against the iteration index",
		Args:  cobra.ExactArgs(1),
		RunE:  variablePlot,
	}
	variableCmd.Flags().StringVar(&variable, "var", "x", "variable to plot (x|y|z)")
	variableCmd.Flags().IntVar(&first, "first", 0, "plot only the first N iterations (0 = all)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outFile, "out", "", "output path (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output path (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run projection as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&plane, "plane", "xoz", "projection plane (xoy|xoz|yoz)")
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output path (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [type]",
		Short: "list available presets for an attractor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for attractor: %s\n", args[0])
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
		Use:   "compare [type]",
		Short: "compare euler and runge-kutta accuracy on the same trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  compareMethods,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size")
	compareCmd.Flags().IntVar(&steps, "steps", 1000, "number of iterations")
	compareCmd.Flags().StringVar(&paramsFlag, "params", "", "comma-separated attractor parameters")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov [type]",
		Short: "estimate the largest lyapunov exponent",
		Args:  cobra.ExactArgs(1),
		RunE:  lyapunovEstimate,
	}
	lyapunovCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size")
	lyapunovCmd.Flags().IntVar(&steps, "steps", 50000, "number of iterations")
	lyapunovCmd.Flags().StringVar(&paramsFlag, "params", "", "comma-separated attractor parameters")
	lyapunovCmd.Flags().Float64Var(&perturb, "perturbation", 1e-8, "initial trajectory separation")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&variable, "var", "x", "variable to analyze (x|y|z)")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, projectionCmd, variableCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, compareCmd, lyapunovCmd, analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseFloats parses a comma-separated list like "10,28,2.667".
func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", p, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// resolveParams falls back to the type's classic parameter set when the
// flag is empty; arity of an explicit list is validated by the session.
func resolveParams(typ attractor.Type, flag string) ([]float64, error) {
	params, err := parseFloats(flag)
	if err != nil {
		return nil, err
	}
	if params == nil {
		params = typ.DefaultParams()
	}
	return params, nil
}

func newSession(typ string) (*sim.Session, []float64, error) {
	t, err := attractor.Parse(typ)
	if err != nil {
		return nil, nil, err
	}

	params, err := resolveParams(t, paramsFlag)
	if err != nil {
		return nil, nil, err
	}

	init, err := parseFloats(initFlag)
	if err != nil {
		return nil, nil, err
	}

	session, err := sim.New(typ, dt, steps, method, init...)
	if err != nil {
		return nil, nil, err
	}
	return session, params, nil
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	typ := args[0]

	if preset != "" {
		cfg := config.GetPreset(typ, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(typ))
		}
		if err := applyConfig(cmd, cfg); err != nil {
			return err
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		typ = cfg.Attractor
		if err := applyConfig(cmd, cfg); err != nil {
			return err
		}
	}

	session, params, err := newSession(typ)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("computing %s trajectory (%s, dt=%g, steps=%d)...\n", typ, method, dt, steps)
	start := time.Now()

	traj, err := session.Calculate(params)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(session.Config(), params, traj)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("states: %d\n", traj.Len())
	last := traj.Last()
	fmt.Printf("final state: (%.6f, %.6f, %.6f)\n", last[0], last[1], last[2])
	if !last.IsValid() {
		fmt.Println("warning: trajectory diverged; try a smaller dt or runge-kutta")
	}

	return nil
}

// applyConfig copies file/preset values for flags the user did not set.
// A present but malformed init is an error, not a silent fallback.
func applyConfig(cmd *cobra.Command, cfg *config.Config) error {
	if !cmd.Flags().Changed("dt") && cfg.Dt > 0 {
		dt = cfg.Dt
	}
	if !cmd.Flags().Changed("steps") && cfg.Steps > 0 {
		steps = cfg.Steps
	}
	if !cmd.Flags().Changed("method") && cfg.Method != "" {
		method = cfg.Method
	}
	if !cmd.Flags().Changed("params") && len(cfg.Params) > 0 {
		strs := make([]string, len(cfg.Params))
		for i, p := range cfg.Params {
			strs[i] = strconv.FormatFloat(p, 'g', -1, 64)
		}
		paramsFlag = strings.Join(strs, ",")
	}
	if !cmd.Flags().Changed("init") && len(cfg.Init) > 0 {
		if len(cfg.Init) != 3 {
			return fmt.Errorf("%w: got %d", ode.ErrBadInitState, len(cfg.Init))
		}
		coordStrs := make([]string, 3)
		for i, p := range cfg.Init {
			coordStrs[i] = strconv.FormatFloat(p, 'g', -1, 64)
		}
		initFlag = strings.Join(coordStrs, ",")
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	session, params, err := newSession(args[0])
	if err != nil {
		return err
	}

	sys, err := session.System(params)
	if err != nil {
		return err
	}

	cfg := session.Config()
	return viz.Run(string(cfg.Type), sys, session.Stepper(), cfg.Init, cfg.Dt)
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
	fmt.Fprintln(w, "ID\tATTRACTOR\tTIME\tDT\tSTEPS\tMETHOD\tPARAMS")

	for _, run := range runs {
		params := make([]string, len(run.Params))
		for i, p := range run.Params {
			params[i] = strconv.FormatFloat(p, 'g', 6, 64)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4f\t%d\t%s\t%s\n",
			run.ID,
			run.Attractor,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dt,
			run.Steps,
			run.Method,
			strings.Join(params, ","),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("attractor: %s\n", meta.Attractor)
	fmt.Printf("samples: %d\n\n", traj.Len())

	proj, err := viz.ProjectionPlot(traj, viz.Plane(plane), 80, 24)
	if err != nil {
		return err
	}
	fmt.Println(proj)

	for _, v := range []string{"x", "y", "z"} {
		graph, err := viz.VariablePlot(traj, v, 0)
		if err != nil {
			return err
		}
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func projectionPlot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	out, err := viz.ProjectionPlot(traj, viz.Plane(plane), 80, 24)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func variablePlot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	out, err := viz.VariablePlot(traj, variable, first)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func outWriter() (io.WriteCloser, error) {
	if outFile == "" {
		return os.Stdout, nil
	}
	return os.Create(outFile)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	out, err := outWriter()
	if err != nil {
		return err
	}
	if out != os.Stdout {
		defer out.Close()
	}

	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}
	row := make([]string, 3)
	for i := 0; i < traj.Len(); i++ {
		s := traj.At(i)
		for j, val := range s {
			row[j] = strconv.FormatFloat(val, 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	states := make([][3]float64, traj.Len())
	for i := 0; i < traj.Len(); i++ {
		states[i] = traj.At(i)
	}

	out, err := outWriter()
	if err != nil {
		return err
	}
	if out != os.Stdout {
		defer out.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		*storage.RunMetadata
		States [][3]float64 `json:"states"`
	}{meta, states})
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	svg, err := export.TrajectoryToSVG(traj, viz.Plane(plane), 1200, 900, "#00ff88")
	if err != nil {
		return err
	}

	out, err := outWriter()
	if err != nil {
		return err
	}
	if out != os.Stdout {
		defer out.Close()
	}

	_, err = io.WriteString(out, svg)
	return err
}

func compareMethods(cmd *cobra.Command, args []string) error {
	typ, err := attractor.Parse(args[0])
	if err != nil {
		return err
	}

	params, err := resolveParams(typ, paramsFlag)
	if err != nil {
		return err
	}

	// Reference: runge-kutta at a quarter of the step size.
	refSession, err := sim.New(string(typ), dt/4, steps*4, integrators.MethodRungeKutta)
	if err != nil {
		return err
	}
	ref, err := refSession.Calculate(params)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tFINAL ERROR\tTIME")

	for _, m := range integrators.Methods() {
		session, err := sim.New(string(typ), dt, steps, m)
		if err != nil {
			return err
		}

		start := time.Now()
		traj, err := session.Calculate(params)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		errNorm := traj.Last().Sub(ref.Last()).Norm()
		fmt.Fprintf(w, "%s\t%.6e\t%v\n", m, errNorm, elapsed)
	}

	return w.Flush()
}

func lyapunovEstimate(cmd *cobra.Command, args []string) error {
	typ, err := attractor.Parse(args[0])
	if err != nil {
		return err
	}

	params, err := resolveParams(typ, paramsFlag)
	if err != nil {
		return err
	}

	sys, err := attractor.New(typ, params)
	if err != nil {
		return err
	}

	lambda := analysis.LyapunovExponent(sys, integrators.NewRK4(), sim.DefaultInit, dt, steps, perturb)

	fmt.Printf("largest lyapunov exponent: %.6f\n", lambda)
	if lambda > 0 {
		fmt.Println("positive exponent: trajectories diverge exponentially (chaos)")
	} else {
		fmt.Println("non-positive exponent: no chaos for these parameters")
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if traj.Len() == 0 {
		return fmt.Errorf("no data")
	}

	axis, err := viz.AxisIndex(variable)
	if err != nil {
		return err
	}

	fmt.Printf("frequency analysis: %s (%s)\n\n", meta.ID, variable)

	ps := analysis.PowerSpectrum(traj.Column(axis))
	fmt.Println(viz.SpectrumPlot(ps, fmt.Sprintf("power spectrum (%s)", variable)))
	fmt.Println()

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}

	window := float64(traj.Len()-1) * meta.Dt
	if window > 0 && maxIdx > 0 {
		freq := float64(maxIdx) / window
		fmt.Printf("dominant frequency: %.3f hz\n", freq)
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	} else {
		fmt.Println("no dominant frequency (flat or constant signal)")
	}

	return nil
}
