// Package engine drives an escape-time calculation over an image: it picks
// the arithmetic, walks the work list in one of the calculation modes,
// plots colours into a grid and can stop and later resume at any pixel.
package engine

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math/big"
	"runtime"
	"sync"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/bailout"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/orbit"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/precision"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/worklist"
)

// Status is where an Engine is in its life.
type Status int

const (
	Idle Status = iota
	Running
	// Suspended engines hold unfinished work; Run continues it and Suspend
	// saves it.
	Suspended
	Done
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Suspended:
		return "suspended"
	case Done:
		return "done"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

var (
	ErrBounds  = errors.New("engine: bounds outside the image")
	ErrRunning = errors.New("engine: calculation is running")
)

// PixelSink receives every colour plotted. RunParallel calls it from
// several goroutines at once.
type PixelSink interface {
	SetPixel(x, y, color int)
}

// SinkFunc adapts a function to PixelSink.
type SinkFunc func(x, y, color int)

func (f SinkFunc) SetPixel(x, y, color int) { f(x, y, color) }

// Option customises an Engine.
type Option func(*Engine)

func WithSink(s PixelSink) Option { return func(e *Engine) { e.sink = s } }

// WithPoll installs a function asked between pixels, and every few thousand
// iterations inside long orbits, whether to stop. A stopped calculation is
// Suspended and continues exactly where it stopped.
func WithPoll(poll func() bool) Option { return func(e *Engine) { e.poll = poll } }

// WithOrbitHook installs a function that sees every sample of every orbit
// calculated on the first worker.
func WithOrbitHook(hook func(complex128)) Option { return func(e *Engine) { e.hook = hook } }

func WithLogger(l *slog.Logger) Option { return func(e *Engine) { e.log = l } }

// WithGrid plots into g instead of a new grid. g must cover the bounds and
// hold only zeros there when a calculation starts afresh.
func WithGrid(g *Grid) Option { return func(e *Engine) { e.grid = g } }

// WithBounds restricts the calculation to the pixels of r.
func WithBounds(r image.Rectangle) Option { return func(e *Engine) { e.bounds = r } }

// axis is where the real axis crosses the image.
type axis struct {
	on  bool
	row int
	// between is set when the axis lies between row and row+1.
	between bool
}

// Engine runs one calculation.
type Engine struct {
	cfg    Config
	prec   precision.Context
	bounds image.Rectangle
	axis   axis
	grid   *Grid
	sink   PixelSink
	poll   func() bool
	hook   func(complex128)
	log    *slog.Logger
	calc   pixelCalc

	pollMu sync.Mutex

	mu       sync.Mutex
	status   Status
	list     *worklist.List
	points   map[image.Point]resumePoint
	warnings []string
}

// New prepares a calculation of cfg.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	full := image.Rect(0, 0, cfg.Width, cfg.Height)
	e := &Engine{
		cfg:    cfg,
		bounds: full,
		log:    nopLogger(),
		points: make(map[image.Point]resumePoint),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.bounds.Empty() || !e.bounds.In(full) {
		return nil, fmt.Errorf("%w: %v not in %v", ErrBounds, e.bounds, full)
	}
	if e.grid == nil {
		e.grid = NewGrid(e.bounds)
	} else if !e.bounds.In(e.grid.Rect) {
		return nil, fmt.Errorf("%w: grid %v does not cover %v", ErrBounds, e.grid.Rect, e.bounds)
	}

	prec, err := precision.ForWindow(cfg.Window, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.ForcePrecision {
		prec = precision.NewContext(cfg.Precision, prec.Digits)
	}
	if info, _ := orbit.Describe(cfg.Formula); !info.Arbitrary && prec.Kind != precision.Native {
		e.warnf("%v runs on float64 only, the window wants %d digits", cfg.Formula, prec.Digits)
		prec = precision.NewContext(precision.Native, prec.Digits)
	}
	e.prec = prec

	dx, dy := cfg.Window.Delta(cfg.Width, cfg.Height)
	delta := new(big.Float).Abs(dx)
	if ady := new(big.Float).Abs(dy); ady.Cmp(delta) < 0 {
		delta = ady
	}
	if e.calc, err = newPixelCalc(prec, &e.cfg, e.bounds, delta); err != nil {
		return nil, err
	}
	if e.hook != nil {
		e.calc.setHook(e.hook)
	}
	e.axis = e.findAxis()
	e.log.Debug("engine ready", "precision", prec.String(), "bounds", e.bounds, "symmetry", e.axis.on)
	return e, nil
}

func (e *Engine) findAxis() axis {
	cfg := &e.cfg
	switch cfg.Symmetry {
	case SymmetryNone:
		return axis{}
	case SymmetryAuto:
		if !orbit.Symmetric(cfg.Formula, cfg.Params) || cfg.Test == bailout.ManhattanRotated {
			return axis{}
		}
	}
	w := cfg.Window
	if w.YMin.Sign() == w.YMax.Sign() {
		return axis{}
	}
	span := new(big.Float).SetPrec(precision.WindowPrec).Sub(w.YMax, w.YMin)
	frac, _ := new(big.Float).SetPrec(precision.WindowPrec).Quo(w.YMax, span).Float64()
	ft := frac*float64(cfg.Height-1) + 0.25
	row := int(ft)
	return axis{on: true, row: row, between: ft-float64(row) >= 0.5}
}

// Config returns the configuration the engine runs.
func (e *Engine) Config() Config { return e.cfg }

// Precision returns the arithmetic the engine picked.
func (e *Engine) Precision() precision.Context { return e.prec }

// Bounds returns the rectangle being calculated.
func (e *Engine) Bounds() image.Rectangle { return e.bounds }

// Grid returns the grid colours are plotted into.
func (e *Engine) Grid() *Grid { return e.grid }

func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Warnings returns what went wrong without stopping the calculation.
func (e *Engine) Warnings() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.warnings...)
}

// WorkList returns the unfinished work of a suspended engine.
func (e *Engine) WorkList() []worklist.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status == Running || e.list == nil {
		return nil
	}
	return e.list.Entries()
}

func (e *Engine) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	e.log.Warn(msg)
	e.mu.Lock()
	e.warnings = append(e.warnings, msg)
	e.mu.Unlock()
}

func (e *Engine) put(x, y, color int) {
	e.grid.Set(x, y, color)
	if e.sink != nil {
		e.sink.SetPixel(x, y, color)
	}
}

// stopRequested polls ctx and the caller's poll function.
func (e *Engine) stopRequested(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	if e.poll == nil {
		return false
	}
	e.pollMu.Lock()
	defer e.pollMu.Unlock()
	return e.poll()
}

func (e *Engine) takePoint(p image.Point) (resumePoint, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	rp, ok := e.points[p]
	delete(e.points, p)
	return rp, ok
}

func (e *Engine) savePoint(p image.Point, rp resumePoint) {
	e.mu.Lock()
	e.points[p] = rp
	e.mu.Unlock()
}

// listCap is the capacity of a work list that must hold n entries.
func (e *Engine) listCap(n int) int {
	if e.cfg.WorkListCap <= 0 {
		return 0
	}
	return max(e.cfg.WorkListCap, n)
}

var errDone = errors.New("engine: done")

// begin moves the engine to Running, seeding the work list on the first
// run.
func (e *Engine) begin() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.status {
	case Running:
		return ErrRunning
	case Done:
		return errDone
	case Idle:
		e.list = worklist.New(e.cfg.WorkListCap)
		if err := e.list.Add(worklist.FromRect(e.bounds, 0, 0)); err != nil {
			return err
		}
	}
	e.status = Running
	return nil
}

func (e *Engine) end(stopped bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if stopped || e.list.Len() > 0 {
		e.status = Suspended
		e.log.Info("calculation suspended", "entries", e.list.Len())
		return
	}
	e.status = Done
	clear(e.points)
	e.log.Info("calculation done", "bounds", e.bounds)
}

// Run calculates on the calling goroutine until the work list is empty or
// ctx or the poll function stops it. Stopping is not an error: the engine
// is then Suspended and a later Run continues. Run on a finished engine
// returns nil at once.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.begin(); err != nil {
		if errors.Is(err, errDone) {
			return nil
		}
		return err
	}
	w := e.newWorker(e.calc, func() bool { return e.stopRequested(ctx) })
	q := listQueue{e.list}
	stopped := false
	for !stopped {
		ent, ok := e.list.Pop()
		if !ok {
			break
		}
		e.log.Debug("work entry", "rect", ent.Rect(), "pass", ent.Pass)
		stopped = w.perform(q, ent)
	}
	e.end(stopped)
	return nil
}

// RunParallel is Run spread over workers goroutines, or one per CPU when
// workers is not positive. Unfinished entries are cut into tiles first.
func (e *Engine) RunParallel(ctx context.Context, workers int) error {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if err := e.begin(); err != nil {
		if errors.Is(err, errDone) {
			return nil
		}
		return err
	}
	s := newScheduler(e, e.list.Entries())
	halt := func() bool {
		if s.halted.Load() {
			return true
		}
		if e.stopRequested(ctx) {
			s.halted.Store(true)
			return true
		}
		return false
	}

	ws := make([]*worker, workers)
	for i := range ws {
		calc := e.calc
		if i > 0 {
			var err error
			if calc, err = e.calc.clone(); err != nil {
				e.end(true)
				return err
			}
		}
		ws[i] = e.newWorker(calc, halt)
	}
	var wg sync.WaitGroup
	for _, w := range ws {
		wg.Go(func() { s.render(w) })
	}
	wg.Wait()

	left := s.remaining()
	list, err := worklist.FromEntries(e.listCap(len(left)), left)
	if err != nil {
		e.end(true)
		return fmt.Errorf("collecting unfinished work: %w", err)
	}
	e.mu.Lock()
	e.list = list
	e.mu.Unlock()
	e.end(s.halted.Load())
	return nil
}
