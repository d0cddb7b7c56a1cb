package engine

import (
	"fmt"
	"image"
	"math/big"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/orbit"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/period"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/precision"
)

// pixelCalc runs the orbit of one pixel at a time. It hides the arithmetic
// a calculation picked; every goroutine owns its own.
type pixelCalc interface {
	run(x, y int) orbit.Result
	resetRow()
	periodState() period.State
	restorePeriod(period.State)
	setPoll(n int, poll func() bool)
	setHook(hook func(complex128))
	clone() (pixelCalc, error)
}

type calc[T any] struct {
	a      precision.Arith[T]
	oc     orbit.Config
	pc     period.Config
	delta  *big.Float
	origin image.Point
	// xs and ys are the coordinates of the columns and rows of the
	// calculated rectangle. Clones share them read-only.
	xs, ys []T
	it     *orbit.Iterator[T]
	det    *period.Detector[T]
}

func newCalc[T any](a precision.Arith[T], oc orbit.Config, pc period.Config, delta *big.Float, origin image.Point, xs, ys []T) (*calc[T], error) {
	it, err := orbit.NewIterator(a, oc, period.New(a, pc, delta))
	if err != nil {
		return nil, err
	}
	return &calc[T]{
		a: a, oc: oc, pc: pc, delta: delta, origin: origin,
		xs: xs, ys: ys, it: it, det: it.Detector(),
	}, nil
}

func buildCalc[T any](a precision.Arith[T], cfg *Config, bounds image.Rectangle, delta *big.Float) (pixelCalc, error) {
	xs := make([]T, bounds.Dx())
	for i := range xs {
		xs[i] = a.FromBig(a.New(), cfg.Window.Column(bounds.Min.X+i, cfg.Width))
	}
	ys := make([]T, bounds.Dy())
	for i := range ys {
		ys[i] = a.FromBig(a.New(), cfg.Window.Row(bounds.Min.Y+i, cfg.Height))
	}
	c, err := newCalc(a, cfg.orbitConfig(), cfg.periodConfig(), delta, bounds.Min, xs, ys)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// newPixelCalc builds the calculator for pc over bounds.
func newPixelCalc(pc precision.Context, cfg *Config, bounds image.Rectangle, delta *big.Float) (pixelCalc, error) {
	switch pc.Kind {
	case precision.Native:
		return buildCalc[float64](precision.Float64{}, cfg, bounds, delta)
	case precision.Extended, precision.BigFloat:
		return buildCalc[*big.Float](pc.Float(), cfg, bounds, delta)
	case precision.BigInt:
		return buildCalc[*big.Int](pc.Fixed(), cfg, bounds, delta)
	}
	return nil, fmt.Errorf("engine: no calculator for %v", pc.Kind)
}

func (c *calc[T]) run(x, y int) orbit.Result {
	return c.it.Run(precision.Complex[T]{X: c.xs[x-c.origin.X], Y: c.ys[y-c.origin.Y]})
}

func (c *calc[T]) resetRow() {
	if c.det != nil {
		c.det.ResetRow()
	}
}

func (c *calc[T]) periodState() period.State {
	if c.det == nil {
		return period.State{Reset: true}
	}
	return c.det.State()
}

func (c *calc[T]) restorePeriod(s period.State) {
	if c.det != nil {
		c.det.Restore(s)
	}
}

func (c *calc[T]) setPoll(n int, poll func() bool) { c.it.SetPoll(n, poll) }

func (c *calc[T]) setHook(hook func(complex128)) { c.it.SetOrbitHook(hook) }

func (c *calc[T]) clone() (pixelCalc, error) {
	d, err := newCalc(c.a.Clone(), c.oc, c.pc, c.delta, c.origin, c.xs, c.ys)
	if err != nil {
		return nil, err
	}
	return d, nil
}
