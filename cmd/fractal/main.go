// fractal renders an escape-time fractal on this machine. A render cut
// short by --budget or an interrupt can be saved with --state and continued
// by running the same command again.
package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	fractal "github.com/LegalizeAdulthood/iterated-dynamics-sub025"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/bailout"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/engine"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/orbit"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/precision"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/worklist"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/render"
)

type flags struct {
	formula     string
	region      string
	corners     []string
	params      []float64
	width       int
	height      int
	maxIter     int
	test        string
	periodicity int
	mode        string
	symmetry    string
	precision   string
	colors      int
	workers     int
	budget      time.Duration
	state       string
	out         string
	verbose     bool
}

func mainCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "fractal",
		Short: "Render an escape-time fractal to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			return run(cmd.Context(), f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.formula, "formula", "mandel", "fractal formula")
	fl.StringVar(&f.region, "region", "", fmt.Sprintf("landmark to render, one of %v", fractal.RegionNames()))
	fl.StringSliceVar(&f.corners, "window", nil, "xmin,xmax,ymin,ymax of the window as decimals")
	fl.Float64SliceVar(&f.params, "params", nil, "formula parameters")
	fl.IntVar(&f.width, "width", 640, "image width")
	fl.IntVar(&f.height, "height", 480, "image height")
	fl.IntVar(&f.maxIter, "maxiter", engine.DefaultMaxIter, "iteration limit")
	fl.StringVar(&f.test, "bailout", "mod", "bailout test")
	fl.IntVar(&f.periodicity, "periodicity", 1, "periodicity checking level, 0 disables it")
	fl.StringVar(&f.mode, "mode", "one", "calculation mode: one, two or trace")
	fl.StringVar(&f.symmetry, "symmetry", "auto", "symmetry: auto, none or xaxis")
	fl.StringVar(&f.precision, "precision", "", "force an arithmetic: native, extended, bignum or bigflt")
	fl.IntVar(&f.colors, "colors", engine.DefaultColors, "palette size")
	fl.IntVar(&f.workers, "workers", 0, "goroutines; 0 uses every CPU")
	fl.DurationVar(&f.budget, "budget", 0, "stop after this long; 0 runs to the end")
	fl.StringVar(&f.state, "state", "", "file an unfinished render is saved to and resumed from")
	fl.StringVarP(&f.out, "out", "o", "fractal.png", "output PNG file")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log engine progress")
	return cmd
}

func configFor(f flags) (engine.Config, error) {
	kind, err := orbit.ParseKind(f.formula)
	if err != nil {
		return engine.Config{}, err
	}
	cfg, err := engine.ConfigFor(kind)
	if err != nil {
		return cfg, err
	}
	switch {
	case len(f.corners) == 4:
		if cfg.Window, err = precision.ParseWindow(f.corners[0], f.corners[1], f.corners[2], f.corners[3]); err != nil {
			return cfg, err
		}
	case len(f.corners) != 0:
		return cfg, fmt.Errorf("--window takes 4 values, got %d", len(f.corners))
	case f.region != "":
		region, err := fractal.LookupRegion(f.region)
		if err != nil {
			return cfg, err
		}
		cfg.Window = region.Window()
	}
	if len(f.params) > len(cfg.Params) {
		return cfg, fmt.Errorf("--params takes at most %d values", len(cfg.Params))
	}
	copy(cfg.Params[:], f.params)
	if cfg.Test, err = bailout.ParseTest(f.test); err != nil {
		return cfg, err
	}
	if cfg.Mode, err = engine.ParseMode(f.mode); err != nil {
		return cfg, err
	}
	if cfg.Symmetry, err = engine.ParseSymmetry(f.symmetry); err != nil {
		return cfg, err
	}
	if f.precision != "" {
		cfg.ForcePrecision = true
		if cfg.Precision, err = precision.ParseKind(f.precision); err != nil {
			return cfg, err
		}
	}
	cfg.Width, cfg.Height = f.width, f.height
	cfg.MaxIter = f.maxIter
	cfg.Periodicity = f.periodicity
	cfg.Colors = f.colors
	return cfg, cfg.Validate()
}

func run(ctx context.Context, f flags) error {
	cfg, err := configFor(f)
	if err != nil {
		return err
	}
	var opts []engine.Option
	if f.verbose {
		opts = append(opts, engine.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	e, err := openEngine(cfg, opts, f.state)
	if err != nil {
		return err
	}
	log.Printf("rendering %v %dx%d with %v arithmetic", cfg.Formula, cfg.Width, cfg.Height, e.Precision())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	if f.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.budget)
		defer cancel()
	}
	start := time.Now()
	if err := e.RunParallel(ctx, f.workers); err != nil {
		return err
	}
	log.Printf("%v after %v", e.Status(), time.Since(start).Round(time.Millisecond))
	for _, w := range e.Warnings() {
		log.Printf("warning: %s", w)
	}

	if err := savePNG(f.out, cfg, e.Grid()); err != nil {
		return err
	}
	switch {
	case e.Status() == engine.Done && f.state != "":
		if err := os.Remove(f.state); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	case e.Status() == engine.Suspended && f.state != "":
		if err := saveState(f.state, e); err != nil {
			return err
		}
		log.Printf("unfinished render saved to %q; run again to continue", f.state)
	case e.Status() == engine.Suspended:
		log.Printf("render stopped early; pass --state to keep the progress")
	}
	return nil
}

// openEngine builds the engine for cfg, continuing the render saved in
// state when there is one. A state file that cannot be continued is logged,
// removed, and the render starts over.
func openEngine(cfg engine.Config, opts []engine.Option, state string) (*engine.Engine, error) {
	if state == "" {
		return engine.New(cfg, opts...)
	}
	e, err := resumeFrom(cfg, opts, state)
	switch {
	case err == nil:
		log.Printf("resuming from %q", state)
		return e, nil
	case errors.Is(err, fs.ErrNotExist):
	case staleState(err):
		log.Printf("discarding %q: %v", state, err)
		if err := os.Remove(state); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return engine.New(cfg, opts...)
}

func resumeFrom(cfg engine.Config, opts []engine.Option, state string) (*engine.Engine, error) {
	grid, blob, err := loadState(state)
	if err != nil {
		return nil, err
	}
	opts = append(opts[:len(opts):len(opts)], engine.WithGrid(grid))
	e, err := engine.New(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", state, err)
	}
	if err := e.Resume(blob); err != nil {
		return nil, fmt.Errorf("%s: %w", state, err)
	}
	return e, nil
}

// staleErrors are the ways a state file can belong to another render.
var staleErrors = []error{
	errStateVersion,
	engine.ErrResumeVersion,
	engine.ErrResumeMismatch,
	engine.ErrBounds,
	engine.ErrGridSize,
	worklist.ErrTruncated,
	worklist.ErrTrailing,
}

func staleState(err error) bool {
	for _, target := range staleErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func savePNG(name string, cfg engine.Config, g *engine.Grid) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(out, render.PaletteFor(cfg).Image(g)); err != nil {
		out.Close()
		return err
	}
	log.Printf("image saved to %q", name)
	return out.Close()
}

// stateVersion tags state files: the grid followed by the engine's resume
// blob.
const stateVersion = 1

var errStateVersion = errors.New("unsupported state version")

func saveState(name string, e *engine.Engine) error {
	blob, err := e.Suspend()
	if err != nil {
		return err
	}
	w := worklist.NewWriter(stateVersion)
	e.Grid().Encode(w)
	w.Raw(blob)
	return os.WriteFile(name, w.Bytes(), 0o644)
}

func loadState(name string) (*engine.Grid, []byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, nil, err
	}
	r := worklist.NewReader(data)
	if v := r.Version(); r.Err() == nil && v != stateVersion {
		return nil, nil, fmt.Errorf("%s: %w %d", name, errStateVersion, v)
	}
	grid, err := engine.DecodeGrid(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	return grid, r.Rest(), nil
}

func main() {
	if err := mainCmd().ExecuteContext(context.Background()); err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
