package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/bailout"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/orbit"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/period"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/precision"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/trace"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/worklist"
)

// Mode is the order pixels are calculated in.
type Mode int

const (
	// OnePass calculates every pixel row by row.
	OnePass Mode = iota
	// TwoPass first calculates every other pixel of every other row and
	// paints 2x2 blocks, then calculates the rest.
	TwoPass
	// BoundaryTrace walks the outline of uniform regions and fills them.
	BoundaryTrace
)

var modeNames = [...]string{"one", "two", "trace"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode maps "one", "two" or "trace" to a Mode.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrMode, s)
}

// Symmetry selects whether rows mirrored about the real axis are copied
// instead of calculated.
type Symmetry int

const (
	// SymmetryAuto mirrors when the formula and its parameters allow it.
	SymmetryAuto Symmetry = iota
	SymmetryNone
	// SymmetryXAxis always mirrors about the real axis.
	SymmetryXAxis
)

var symmetryNames = [...]string{"auto", "none", "xaxis"}

func (s Symmetry) String() string {
	if s < 0 || int(s) >= len(symmetryNames) {
		return fmt.Sprintf("Symmetry(%d)", int(s))
	}
	return symmetryNames[s]
}

// ParseSymmetry maps "auto", "none" or "xaxis" to a Symmetry.
func ParseSymmetry(s string) (Symmetry, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range symmetryNames {
		if n == s {
			return Symmetry(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrSymmetry, s)
}

const (
	// InsideMaxIter colours inside pixels with the iteration limit.
	InsideMaxIter = -1
	// OutsideIter colours escaped pixels with their iteration count.
	OutsideIter = -1

	DefaultMaxIter       = 150
	DefaultColors        = 256
	DefaultCheckInterval = 80
	DefaultTileSize      = 64
)

var (
	ErrMaxIter  = errors.New("engine: iteration limit must be positive")
	ErrLimit    = errors.New("engine: bailout limit must be positive")
	ErrMode     = errors.New("engine: unknown calculation mode")
	ErrSymmetry = errors.New("engine: unknown symmetry")
	ErrColors   = errors.New("engine: colour count must not be negative")
)

// Config is everything a calculation reads. It is not changed once the
// calculation starts.
type Config struct {
	Width, Height int
	Window        precision.Window

	Formula orbit.Kind
	Params  [4]float64
	Power   int
	MaxIter int
	// Limit is the bailout limit compared against squared magnitudes.
	Limit float64
	Test  bailout.Test

	// Periodicity is the periodicity check level; 0 turns checking off and
	// a negative level paints caught pixels in period.PeriodColor.
	Periodicity int
	// PeriodReset is the first iteration checked after a reset; 0 picks
	// period.ResetThreshold.
	PeriodReset int

	Mode     Mode
	Symmetry Symmetry

	// InsideColor and OutsideColor fix the colour of inside and escaped
	// pixels; InsideMaxIter and OutsideIter use iteration counts instead.
	InsideColor  int
	OutsideColor int
	// FillColor, when positive, paints regions filled by boundary tracing.
	FillColor int
	// Colors folds colours into 1..Colors-1; 0 keeps them unreduced.
	Colors int

	// ForcePrecision uses Precision instead of the arithmetic the window
	// needs.
	ForcePrecision bool
	Precision      precision.Kind

	// PollEvery is the number of iterations between polls inside an orbit.
	PollEvery int
	// CheckInterval is the number of iterations of finished pixels between
	// polls at pixel boundaries.
	CheckInterval int
	// WorkListCap bounds the work list of a sequential run.
	WorkListCap int
	// TileSize is the edge of the tiles a parallel run hands out.
	TileSize int
	// TraceSteps bounds each outline walk; 0 picks a budget from the area.
	TraceSteps int
}

// DefaultConfig returns the classic Mandelbrot view.
func DefaultConfig() Config {
	return Config{
		Width:         640,
		Height:        480,
		Window:        precision.NewWindow(-2.5, 1.5, -1.5, 1.5),
		Formula:       orbit.Mandel,
		MaxIter:       DefaultMaxIter,
		Limit:         4,
		Test:          bailout.Mod,
		Periodicity:   1,
		Mode:          OnePass,
		Symmetry:      SymmetryAuto,
		InsideColor:   InsideMaxIter,
		OutsideColor:  OutsideIter,
		Colors:        DefaultColors,
		PollEvery:     orbit.DefaultPollEvery,
		CheckInterval: DefaultCheckInterval,
		WorkListCap:   worklist.DefaultCapacity,
		TileSize:      DefaultTileSize,
	}
}

// ConfigFor returns DefaultConfig with the parameters, power and limit k is
// usually drawn with.
func ConfigFor(k orbit.Kind) (Config, error) {
	info, err := orbit.Describe(k)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	cfg.Formula = k
	cfg.Params = info.Params
	cfg.Power = info.Power
	if info.Limit > 0 {
		cfg.Limit = info.Limit
	}
	switch k {
	case orbit.Julia, orbit.JuliaPower, orbit.Lambda, orbit.LambdaSine, orbit.Newton:
		cfg.Window = precision.NewWindow(-2, 2, -1.5, 1.5)
	}
	return cfg, nil
}

// Validate reports the first problem with c.
func (c *Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return precision.ErrImageSize
	}
	if err := c.Window.Validate(); err != nil {
		return err
	}
	info, err := orbit.Describe(c.Formula)
	if err != nil {
		return err
	}
	if c.MaxIter < 1 {
		return fmt.Errorf("%w: %d", ErrMaxIter, c.MaxIter)
	}
	if !info.OwnBailout && !(c.Limit > 0) {
		return fmt.Errorf("%w: %v", ErrLimit, c.Limit)
	}
	if _, err := bailout.For[float64](c.Test); err != nil {
		return err
	}
	if c.Mode < OnePass || c.Mode > BoundaryTrace {
		return fmt.Errorf("%w: %d", ErrMode, int(c.Mode))
	}
	if c.Symmetry < SymmetryAuto || c.Symmetry > SymmetryXAxis {
		return fmt.Errorf("%w: %d", ErrSymmetry, int(c.Symmetry))
	}
	if c.Colors < 0 {
		return fmt.Errorf("%w: %d", ErrColors, c.Colors)
	}
	if c.Mode == BoundaryTrace {
		if err := trace.CheckColors(c.InsideColor, c.OutsideColor, c.Colors); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) orbitConfig() orbit.Config {
	return orbit.Config{
		Kind:    c.Formula,
		Params:  c.Params,
		Power:   c.Power,
		Test:    c.Test,
		Limit:   c.Limit,
		MaxIter: c.MaxIter,
	}
}

func (c *Config) periodConfig() period.Config {
	return period.Config{Check: c.Periodicity, MaxIter: c.MaxIter, Reset: c.PeriodReset}
}

// color maps the outcome of an orbit to the colour plotted for it.
func (c *Config) color(r orbit.Result) int {
	var it int
	switch {
	case r.Escaped && c.OutsideColor >= 0:
		it = c.OutsideColor
	case r.Escaped:
		it = r.Iterations
	case r.Periodic && c.Periodicity < 0:
		it = period.PeriodColor
	case c.InsideColor >= 0:
		it = c.InsideColor
	default:
		it = c.MaxIter
	}
	color := it
	if c.Colors > 0 && it >= c.Colors {
		// Colour 0 only comes from explicit inside or outside colours.
		if c.Colors < 16 {
			color = it & (c.Colors - 1)
		} else {
			color = (it-1)%(c.Colors-1) + 1
		}
	}
	if color <= 0 && c.Mode == BoundaryTrace {
		color = 1
	}
	return color
}

// InsideIndex is the colour plotted for pixels that never escape.
func (c *Config) InsideIndex() int {
	return c.color(orbit.Result{Iterations: c.MaxIter})
}
