package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/burgers2d/internal/animation"
	"github.com/san-kum/burgers2d/internal/burgers"
	"github.com/san-kum/burgers2d/internal/config"
	"github.com/san-kum/burgers2d/internal/metrics"
	"github.com/san-kum/burgers2d/internal/render"
	"github.com/san-kum/burgers2d/internal/server"
	"github.com/san-kum/burgers2d/internal/storage"
	"github.com/san-kum/burgers2d/internal/sweep"
	"github.com/san-kum/burgers2d/internal/tui"
)

// checkParams rejects invalid parameters and warns when the time step
// breaks the explicit scheme's limits.
func checkParams(p burgers.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if rep := p.Stability(); !rep.Stable {
		log.WithFields(log.Fields{
			"t":         p.T,
			"nu":        p.Nu,
			"nt":        p.Nt,
			"diffusion": rep.DiffusionX + rep.DiffusionY,
			"courant":   rep.CourantX + rep.CourantY,
			"min_nt":    burgers.MinSteps(p),
		}).Warn("time step exceeds the stability limit; the solution may blow up")
	}
	return nil
}

// animationParams is the solver configuration at the last frame.
func animationParams(cfg *config.Config) burgers.Params {
	p := cfg.Solver.Params()
	p.T, p.Nu = cfg.Animation.TEnd, cfg.Animation.Nu
	return p
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p := cfg.Solver.Params()
	if err := checkParams(p); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("solving %dx%d grid to t=%g (nu=%g, %d steps)...\n", p.Nx, p.Ny, p.T, p.Nu, p.Nt)
	start := time.Now()

	sol, err := burgers.Solve(p)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	stats := metrics.Collect(sol.U, metrics.Defaults()...)
	if stats["finite"] < 1 {
		log.WithField("finite", stats["finite"]).Warn("solution contains non-finite values")
	}

	if jsonOut != "" {
		if err := storage.ExportJSON(jsonOut, storage.NewSnapshot(sol, stats)); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", jsonOut)
	}

	if wireOut != "" {
		c := render.NewCanvas(80, 30)
		cam := render.NewCamera(cfg.Animation.Elev, cfg.Animation.Azim)
		render.DrawWireframe(c, cam, sol, cfg.Animation.ZMin, cfg.Animation.ZMax)
		if err := os.WriteFile(wireOut, []byte(render.CanvasToSVG(c, 4)), 0644); err != nil {
			return err
		}
		fmt.Printf("wireframe written to %s\n", wireOut)
	}

	// The run is stored only once every requested output is written.
	runID, err := st.Save(sol, stats)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	printMetrics(stats)
	return nil
}

func printMetrics(stats map[string]float64) {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, stats[name])
	}
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	a := cfg.Animation
	if err := checkParams(animationParams(cfg)); err != nil {
		return err
	}

	surface := render.NewSurface(a.Width, a.Height, a.ZMin, a.ZMax)
	surface.Camera = render.NewCamera(a.Elev, a.Azim)

	rec, err := render.NewRecorder(a.Format, a.Output, surface, float64(a.FPS))
	if err != nil {
		return err
	}

	d := animation.NewDriver(cfg.Solver.Params(), a.Nu)
	if a.Workers > 0 {
		d.Workers = a.Workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.WithFields(log.Fields{
		"frames": a.Frames,
		"nu":     a.Nu,
		"format": a.Format,
		"output": a.Output,
	}).Info("rendering animation")
	start := time.Now()

	times := animation.Timeline(a.TStart, a.TEnd, a.Frames)
	if err := d.Run(ctx, times, rec); err != nil {
		rec.Close()
		return err
	}
	if err := rec.Close(); err != nil {
		return err
	}

	log.WithField("elapsed", time.Since(start)).Info("animation written")
	fmt.Println("Done")
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	a := cfg.Animation
	if err := checkParams(animationParams(cfg)); err != nil {
		return err
	}

	return tui.Run(tui.Options{
		Base:   cfg.Solver.Params(),
		Nu:     a.Nu,
		TStart: a.TStart,
		TEnd:   a.TEnd,
		Frames: a.Frames,
		FPS:    float64(a.FPS),
		ZMin:   a.ZMin,
		ZMax:   a.ZMax,
		Elev:   a.Elev,
		Azim:   a.Azim,
	})
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p := cfg.Solver.Params()
	if err := checkParams(p); err != nil {
		return err
	}

	sol, err := burgers.Solve(p)
	if err != nil {
		return err
	}

	fmt.Printf("t=%g nu=%g grid %dx%d\n\n", p.T, p.Nu, p.Nx, p.Ny)
	if err := plotProfiles(sol.U); err != nil {
		return err
	}

	if svgOut != "" {
		svg := render.ProfileToSVG(sol.X(), sol.U.Row(sol.U.Rows()/2), 800, 400, "#cc4778")
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("profile written to %s\n", svgOut)
	}
	return nil
}

// plotProfiles prints u along x at the middle y index and along y at the
// middle x index.
func plotProfiles(u *burgers.Field) error {
	if !u.IsFinite() {
		return fmt.Errorf("field has non-finite values; nothing to plot")
	}

	fmt.Println(asciigraph.Plot(u.Row(u.Rows()/2),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("u along x at y = M/2"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(u.Col(u.Cols()/2),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("u along y at x = L/2"),
	))
	fmt.Println()
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
	fmt.Fprintln(w, "ID\tTIME\tT\tNU\tGRID\tNT\tMAX")

	for _, run := range runs {
		p := run.Params
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%dx%d\t%d\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			p.T,
			p.Nu,
			p.Nx, p.Ny,
			p.Nt,
			run.Metrics["max"],
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}
	fmt.Println()

	_, field, err := st.LoadField(args[0])
	if err != nil {
		return err
	}
	return plotProfiles(field)
}

func loadSolution(runID string) (*burgers.Solution, *storage.RunMetadata, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	grid, field, err := st.LoadField(runID)
	if err != nil {
		return nil, nil, err
	}
	return &burgers.Solution{Params: meta.Params, Grid: grid, U: field}, meta, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	sol, _, err := loadSolution(args[0])
	if err != nil {
		return err
	}
	if err := storage.WriteFieldCSV(args[1], sol); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", args[1])
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	sol, meta, err := loadSolution(args[0])
	if err != nil {
		return err
	}
	if err := storage.ExportJSON(args[1], storage.NewSnapshot(sol, meta.Metrics)); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", args[1])
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGRID\tNT\tNU\tFRAMES\tT\tOUTPUT")
	for _, name := range config.ListPresets() {
		c := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%g\t%d\t%g..%g\t%s\n",
			name,
			c.Solver.Nx, c.Solver.Ny,
			c.Solver.Nt,
			c.Animation.Nu,
			c.Animation.Frames,
			c.Animation.TStart, c.Animation.TEnd,
			c.Animation.Output,
		)
	}
	return w.Flush()
}

func runStability(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	report := func(label string, p burgers.Params) {
		rep := p.Stability()
		status := "stable"
		if !rep.Stable {
			status = "UNSTABLE"
		}
		fmt.Printf("%s (t=%g, nu=%g, nt=%d): %s\n", label, p.T, p.Nu, p.Nt, status)
		fmt.Printf("  diffusion  %.4f + %.4f = %.4f (limit %g)\n",
			rep.DiffusionX, rep.DiffusionY, rep.DiffusionX+rep.DiffusionY, burgers.MaxDiffusion)
		fmt.Printf("  courant    %.4f + %.4f = %.4f (limit %g)\n",
			rep.CourantX, rep.CourantY, rep.CourantX+rep.CourantY, burgers.MaxCourant)
		fmt.Printf("  minimum nt %d\n", burgers.MinSteps(p))
	}

	report("solve", cfg.Solver.Params())
	fmt.Println()
	report("animation", animationParams(cfg))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	base, s := cfg.Solver.Params(), sweepRange

	if sweepFile != "" {
		f, err := sweep.Load(sweepFile)
		if err != nil {
			return fmt.Errorf("failed to load sweep: %w", err)
		}
		base, s = f.Base, f.Sweep
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := sweep.Run(ctx, base, s)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tMAX\tMIN\tMEAN\tFINITE\tSTEP\n", strings.ToUpper(s.Param))
	for _, r := range results {
		step := "stable"
		if !r.Stable {
			step = "unstable"
		}
		fmt.Fprintf(w, "%g\t%.4f\t%.4f\t%.4f\t%.3f\t%s\n",
			r.Value, r.Metrics["max"], r.Metrics["min"], r.Metrics["mean"], r.Metrics["finite"], step)
	}
	return w.Flush()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	a := cfg.Animation
	if err := checkParams(animationParams(cfg)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return server.NewServer(addr, server.Settings{
		Base:    cfg.Solver.Params(),
		Nu:      a.Nu,
		TStart:  a.TStart,
		TEnd:    a.TEnd,
		Workers: a.Workers,
	}).Serve(ctx)
}
