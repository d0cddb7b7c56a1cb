// Package period short-circuits interior pixels by noticing that an orbit
// has fallen into a cycle.
//
// Samples are saved on an exponentially growing schedule and every other
// sample is compared with the last one saved. A sample within the
// close-enough distance of the saved one only nominates a cycle: the orbit
// is caught when, one cycle later, it is back on the nominated sample bit
// for bit. The arithmetic is deterministic, so such an orbit repeats
// forever and would never have escaped.
//
// Checking for a pixel only starts once the iteration counter passes a
// threshold carried over from the previous pixel in scan order.
package period

import (
	"math"
	"math/big"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/precision"
)

const (
	// ResetThreshold is where checking starts for the first pixel after a
	// reset (a new row, or a finished trace).
	ResetThreshold = 255
	// LegacyResetThreshold is the reset threshold of older releases.
	LegacyResetThreshold = 250
	// PeriodColor marks caught pixels when the check level is negative.
	PeriodColor = 7
	// escapeSlack is added to the escape iteration of the previous pixel
	// to get the threshold for the next.
	escapeSlack = 10
)

// Config is the detector part of a calculation's parameters.
type Config struct {
	// Check is the periodicity level. Zero disables checking. Its
	// magnitude sets how close two samples must be; a negative level
	// also asks for caught pixels to be drawn in PeriodColor.
	Check int
	// MaxIter is the iteration limit of the calculation.
	MaxIter int
	// Reset is the threshold after a reset; zero means ResetThreshold.
	Reset int
}

// Constants returns the first save mask and the number of saves between
// widenings of the mask for a calculation of maxIter iterations.
func Constants(maxIter int) (firstSavedAnd, nextSavedIncr int) {
	digits := 0
	for n := maxIter; n >= 10; n /= 10 {
		digits++
	}
	nextSavedIncr = max(4, digits)
	return 2*nextSavedIncr + 1, nextSavedIncr
}

// State is what a detector carries from one pixel to the next.
type State struct {
	Threshold int
	Reset     bool
}

// Detector watches one orbit at a time. A Detector is not safe for
// concurrent use; parallel workers each own one.
type Detector[T any] struct {
	a           precision.Arith[T]
	cfg         Config
	firstAnd    int
	nextIncr    int
	closeEnough T
	saved       precision.Complex[T]
	// aux is formula state besides the sample that must repeat too.
	aux *precision.Complex[T]

	// nominee is the sample a cycle was nominated at and nomineeAux the
	// matching aux value.
	nominee    precision.Complex[T]
	nomineeAux precision.Complex[T]

	state State

	// per pixel
	active    int
	savedAnd  int
	savedIncr int
	savedIter int
	// confirmAt is the iteration a nominated cycle is checked at, 0 when
	// none is pending.
	confirmAt int
	nominated int
	caught    bool
	cycleLen  int
}

// New returns a detector whose close-enough distance is deltaMin scaled
// down by 2**|cfg.Check|. deltaMin is the smaller pixel spacing of the
// window.
func New[T any](a precision.Arith[T], cfg Config, deltaMin *big.Float) *Detector[T] {
	if cfg.Reset == 0 {
		cfg.Reset = ResetThreshold
	}
	d := &Detector[T]{
		a:          a,
		cfg:        cfg,
		saved:      precision.NewComplex(a),
		nominee:    precision.NewComplex(a),
		nomineeAux: precision.NewComplex(a),
		state:      State{Reset: true},
	}
	d.firstAnd, d.nextIncr = Constants(cfg.MaxIter)
	check := cfg.Check
	if check < 0 {
		check = -check
	}
	d.closeEnough = a.Shift(a.New(), a.FromBig(a.New(), deltaMin), -check)
	return d
}

// Track makes aux part of what must repeat before a cycle is confirmed. It
// is for formulas whose next sample depends on more than the current one;
// aux is read at every Observe.
func (d *Detector[T]) Track(aux *precision.Complex[T]) { d.aux = aux }

// Enabled reports whether the detector ever checks.
func (d *Detector[T]) Enabled() bool { return d.cfg.Check != 0 }

// ResetRow makes the next pixel start checking late again.
func (d *Detector[T]) ResetRow() { d.state.Reset = true }

// State returns the state carried to the next pixel.
func (d *Detector[T]) State() State { return d.state }

// Restore replaces the carried state, for resuming a calculation.
func (d *Detector[T]) Restore(s State) { d.state = s }

// Begin prepares for a new pixel. It does not change the carried state, so
// a pixel abandoned before Finish leaves the detector as it was. Until the
// pixel saves a sample of its own it is compared with the origin.
func (d *Detector[T]) Begin() {
	d.active = d.state.Threshold
	switch {
	case d.cfg.Check == 0:
		d.active = math.MaxInt
	case d.state.Reset:
		d.active = d.cfg.Reset
	}
	d.active = max(d.active, d.firstAnd)
	d.savedAnd = d.firstAnd
	d.savedIncr = 1
	d.savedIter = 0
	d.saved = precision.ComplexFromFloats(d.a, d.saved, 0, 0)
	d.confirmAt = 0
	d.caught = false
	d.cycleLen = -1
}

// Observe looks at the sample produced at iteration iter and reports
// whether the orbit has been caught in a cycle.
func (d *Detector[T]) Observe(iter int, z precision.Complex[T]) bool {
	if iter <= d.active {
		return false
	}
	a := d.a
	if d.confirmAt == iter {
		d.confirmAt = 0
		if d.repeats(z) {
			d.caught = true
			d.cycleLen = iter - d.nominated
			return true
		}
	}
	if iter&d.savedAnd == 0 {
		d.savedIter = iter
		d.saved = precision.SetComplex(a, d.saved, z)
		d.savedIncr--
		if d.savedIncr == 0 {
			d.savedAnd = d.savedAnd<<1 + 1
			d.savedIncr = d.nextIncr
		}
		return false
	}
	if d.confirmAt != 0 || !d.near(z) {
		return false
	}
	d.nominated = iter
	d.confirmAt = iter + (iter - d.savedIter)
	d.nominee = precision.SetComplex(a, d.nominee, z)
	if d.aux != nil {
		d.nomineeAux = precision.SetComplex(a, d.nomineeAux, *d.aux)
	}
	return false
}

// near reports whether z is within the close-enough distance of the saved
// sample on both axes.
func (d *Detector[T]) near(z precision.Complex[T]) bool {
	a := d.a
	m := a.Mark()
	defer a.Release(m)
	diff := a.Abs(a.Temp(), a.Sub(a.Temp(), d.saved.X, z.X))
	if a.Cmp(diff, d.closeEnough) >= 0 {
		return false
	}
	diff = a.Sub(diff, d.saved.Y, z.Y)
	diff = a.Abs(diff, diff)
	return a.Cmp(diff, d.closeEnough) < 0
}

// repeats reports whether z and the tracked state are exactly where they
// were when the cycle was nominated.
func (d *Detector[T]) repeats(z precision.Complex[T]) bool {
	a := d.a
	if a.Cmp(z.X, d.nominee.X) != 0 || a.Cmp(z.Y, d.nominee.Y) != 0 {
		return false
	}
	if d.aux == nil {
		return true
	}
	return a.Cmp(d.aux.X, d.nomineeAux.X) == 0 && a.Cmp(d.aux.Y, d.nomineeAux.Y) == 0
}

// Finish records the iteration the pixel ended on. An inside pixel makes
// the next one check from the start, an escaped one from just past its own
// escape iteration.
func (d *Detector[T]) Finish(iter int) {
	d.state.Reset = false
	if iter >= d.cfg.MaxIter {
		d.state.Threshold = 0
	} else {
		d.state.Threshold = iter + escapeSlack
	}
}

// Start is the iteration after which the current pixel is checked.
func (d *Detector[T]) Start() int { return d.active }

// Caught reports whether the last pixel was cut short.
func (d *Detector[T]) Caught() bool { return d.caught }

// CycleLen is the distance between the repeating samples of the last
// caught pixel, or -1.
func (d *Detector[T]) CycleLen() int { return d.cycleLen }

// MarkPeriodic reports whether the last pixel should be drawn in
// PeriodColor.
func (d *Detector[T]) MarkPeriodic() bool { return d.cfg.Check < 0 && d.caught }
