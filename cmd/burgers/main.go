package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/burgers2d/internal/config"
	"github.com/san-kum/burgers2d/internal/sweep"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string

	// solver
	lenX, lenY, simTime, nu float64
	nx, ny, nt              int

	// animation
	frames         int
	tStart, tEnd   float64
	fps, workers   int
	width, height  int
	elev, azim     float64
	zMin, zMax     float64
	format, output string

	addr       string
	jsonOut    string
	svgOut     string
	wireOut    string
	sweepFile  string
	sweepRange sweep.Sweep
)

// main registers the commands and exits with status 1 when one fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "burgers",
		Short:         "2D coupled Burgers' equation solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".burgers", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or ini)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve once and store the run",
		RunE:  runSolve,
	}
	addSolverFlags(solveCmd)
	solveCmd.Flags().Float64Var(&nu, "nu", 0.5, "viscosity")
	solveCmd.Flags().StringVar(&jsonOut, "json", "", "also export the solution as JSON")
	solveCmd.Flags().StringVar(&wireOut, "wireframe", "", "also write a wireframe SVG")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "render the surface over time to a GIF or AVI",
		RunE:  runAnimate,
	}
	addSolverFlags(animateCmd)
	addAnimationFlags(animateCmd)
	animateCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width")
	animateCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height")
	animateCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "gif or mjpeg")
	animateCmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutput, "output file")
	animateCmd.Flags().IntVar(&workers, "workers", 0, "concurrent frame solves (0 = all CPUs)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal viewer",
		RunE:  runLive,
	}
	addSolverFlags(liveCmd)
	addAnimationFlags(liveCmd)

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot centreline profiles of one solve",
		RunE:  runProfile,
	}
	addSolverFlags(profileCmd)
	profileCmd.Flags().Float64Var(&nu, "nu", 0.5, "viscosity")
	profileCmd.Flags().StringVar(&svgOut, "svg", "", "also write the x profile as SVG")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "solve across a range of one parameter",
		RunE:  runSweep,
	}
	addSolverFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&nu, "nu", 0.5, "viscosity")
	sweepCmd.Flags().StringVar(&sweepFile, "file", "", "sweep definition (yaml)")
	sweepCmd.Flags().StringVar(&sweepRange.Param, "param", "nu", "parameter to vary (l, m, t, nu, nx, ny, nt)")
	sweepCmd.Flags().Float64Var(&sweepRange.Min, "min", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepRange.Max, "max", 0.5, "last value")
	sweepCmd.Flags().IntVar(&sweepRange.Steps, "steps", 6, "number of values")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id] [path]",
		Short: "export a run's field to CSV",
		Args:  cobra.ExactArgs(2),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id] [path]",
		Short: "export a run's grid and field to JSON",
		Args:  cobra.ExactArgs(2),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	stabilityCmd := &cobra.Command{
		Use:   "stability",
		Short: "check the time step against the explicit scheme limits",
		RunE:  runStability,
	}
	addSolverFlags(stabilityCmd)
	stabilityCmd.Flags().Float64Var(&nu, "nu", 0.5, "viscosity")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "stream frames over a websocket",
		RunE:  runServe,
	}
	addSolverFlags(serveCmd)
	addAnimationFlags(serveCmd)
	serveCmd.Flags().StringVar(&addr, "addr", ":9000", "listen address")
	serveCmd.Flags().IntVar(&workers, "workers", 0, "concurrent frame solves (0 = all CPUs)")

	rootCmd.AddCommand(solveCmd, animateCmd, liveCmd, profileCmd, listCmd, showCmd,
		exportCSVCmd, exportJSONCmd, presetsCmd, stabilityCmd, serveCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addSolverFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&lenX, "l", 2, "domain length along x")
	cmd.Flags().Float64Var(&lenY, "m", 2, "domain length along y")
	cmd.Flags().Float64Var(&simTime, "t", 0, "simulated time")
	cmd.Flags().IntVar(&nx, "nx", 40, "grid points along x")
	cmd.Flags().IntVar(&ny, "ny", 40, "grid points along y")
	cmd.Flags().IntVar(&nt, "nt", 2500, "time steps")
}

// addAnimationFlags binds --nu to the animation viscosity.
func addAnimationFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&nu, "nu", config.DefaultAnimNu, "viscosity")
	cmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames")
	cmd.Flags().Float64Var(&tStart, "t-start", config.DefaultTStart, "first frame time")
	cmd.Flags().Float64Var(&tEnd, "t-end", config.DefaultTEnd, "last frame time")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	cmd.Flags().Float64Var(&elev, "elev", config.DefaultElev, "view elevation in degrees")
	cmd.Flags().Float64Var(&azim, "azim", config.DefaultAzim, "view azimuth in degrees")
	cmd.Flags().Float64Var(&zMin, "z-min", config.DefaultZMin, "lower u limit")
	cmd.Flags().Float64Var(&zMax, "z-max", config.DefaultZMax, "upper u limit")
}

// resolveConfig layers defaults, then a preset or config file, then any
// flags set on the command line, and applies the log level.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	applyFlags(cmd, cfg)

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") || level == "" {
		level = logLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)

	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	s, a := &cfg.Solver, &cfg.Animation

	setFloat := func(name string, dst *float64, v float64) {
		if f.Lookup(name) != nil && f.Changed(name) {
			*dst = v
		}
	}
	setInt := func(name string, dst *int, v int) {
		if f.Lookup(name) != nil && f.Changed(name) {
			*dst = v
		}
	}
	setString := func(name string, dst *string, v string) {
		if f.Lookup(name) != nil && f.Changed(name) {
			*dst = v
		}
	}

	setFloat("l", &s.L, lenX)
	setFloat("m", &s.M, lenY)
	setFloat("t", &s.T, simTime)
	setInt("nx", &s.Nx, nx)
	setInt("ny", &s.Ny, ny)
	setInt("nt", &s.Nt, nt)

	// --nu is the animation viscosity wherever animation flags exist.
	if f.Lookup("frames") != nil {
		setFloat("nu", &a.Nu, nu)
	} else {
		setFloat("nu", &s.Nu, nu)
	}

	setInt("frames", &a.Frames, frames)
	setFloat("t-start", &a.TStart, tStart)
	setFloat("t-end", &a.TEnd, tEnd)
	setInt("fps", &a.FPS, fps)
	setInt("workers", &a.Workers, workers)
	setInt("width", &a.Width, width)
	setInt("height", &a.Height, height)
	setFloat("elev", &a.Elev, elev)
	setFloat("azim", &a.Azim, azim)
	setFloat("z-min", &a.ZMin, zMin)
	setFloat("z-max", &a.ZMax, zMax)
	setString("format", &a.Format, format)
	setString("output", &a.Output, output)
}
