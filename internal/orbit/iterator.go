package orbit

import (
	"fmt"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/bailout"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/period"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/precision"
)

// DefaultPollEvery is how many iterations pass between two polls inside a
// pixel.
const DefaultPollEvery = 2048

// Config selects and parameterises a formula.
type Config struct {
	Kind    Kind
	Params  [4]float64
	Power   int
	Test    bailout.Test
	Limit   float64
	MaxIter int
}

// Result is the outcome of one orbit.
type Result struct {
	// Iterations is the counter when the orbit stopped. An escaped orbit
	// never reports 0; an inside one reports MaxIter.
	Iterations int
	Escaped    bool
	// Periodic is set when the periodicity detector cut the orbit short.
	Periodic bool
	CycleLen int
	// Final is the last sample computed, rounded to complex128.
	Final complex128
	// Interrupted is set when a poll asked to stop. Nothing else in the
	// result is meaningful then.
	Interrupted bool
}

// Iterator runs orbits of one formula. It keeps its scratch between pixels
// and is not safe for concurrent use.
type Iterator[T any] struct {
	a       precision.Arith[T]
	cfg     Config
	info    Info
	step    Step[T]
	bail    bailout.Predicate[T]
	st      *State[T]
	p01     precision.Complex[T]
	maxIter int

	period    *period.Detector[T]
	poll      func() bool
	pollEvery int
	hook      func(complex128)
}

// NewIterator builds an iterator. det may be nil to run without
// periodicity checking.
func NewIterator[T any](a precision.Arith[T], cfg Config, det *period.Detector[T]) (*Iterator[T], error) {
	info, err := Describe(cfg.Kind)
	if err != nil {
		return nil, err
	}
	step, err := StepFor[T](cfg.Kind)
	if err != nil {
		return nil, err
	}
	bail, err := bailout.For[T](cfg.Test)
	if err != nil {
		return nil, err
	}
	if info.Power != 0 && cfg.Power < 2 {
		return nil, fmt.Errorf("%w: %d", ErrPower, cfg.Power)
	}
	if !info.Periodicity {
		det = nil
	}
	it := &Iterator[T]{
		a:         a,
		cfg:       cfg,
		info:      info,
		step:      step,
		bail:      bail,
		st:        NewState(a),
		p01:       precision.ComplexFromFloats(a, precision.NewComplex(a), cfg.Params[0], cfg.Params[1]),
		maxIter:   cfg.MaxIter,
		period:    det,
		pollEvery: DefaultPollEvery,
	}
	if det != nil {
		switch cfg.Kind {
		case Spider:
			det.Track(&it.st.Drift)
		case Quaternion:
			det.Track(&it.st.Q)
		}
	}
	it.st.Limit = a.FromFloat(it.st.Limit, cfg.Limit)
	it.st.Power = cfg.Power
	it.st.K = precision.ComplexFromFloats(a, it.st.K, cfg.Params[2], cfg.Params[3])
	return it, nil
}

// SetPoll installs a hook consulted every n iterations; a true return
// abandons the pixel.
func (it *Iterator[T]) SetPoll(n int, poll func() bool) {
	if n <= 0 {
		n = DefaultPollEvery
	}
	it.pollEvery = n
	it.poll = poll
}

// SetOrbitHook installs a hook that sees every sample of every orbit.
func (it *Iterator[T]) SetOrbitHook(hook func(complex128)) {
	it.hook = hook
}

// Detector returns the periodicity detector, or nil.
func (it *Iterator[T]) Detector() *period.Detector[T] { return it.period }

// begin forms the first sample for pixel.
func (it *Iterator[T]) begin(pixel precision.Complex[T]) {
	a, s := it.a, it.st
	switch it.info.start {
	case startMandel:
		s.C = precision.SetComplex(a, s.C, pixel)
		s.Drift = precision.SetComplex(a, s.Drift, pixel)
		s.Old.X = a.Add(s.Old.X, pixel.X, it.p01.X)
		s.Old.Y = a.Add(s.Old.Y, pixel.Y, it.p01.Y)
	case startJulia:
		s.C = precision.SetComplex(a, s.C, it.p01)
		s.Old = precision.SetComplex(a, s.Old, pixel)
	case startQuaternion:
		s.C = precision.SetComplex(a, s.C, pixel)
		s.Old = precision.ComplexFromFloats(a, s.Old, 0, 0)
		s.Q = precision.ComplexFromFloats(a, s.Q, 0, 0)
	}
	s.Sq.Update(a, s.Old)
}

// Run iterates the orbit of pixel.
func (it *Iterator[T]) Run(pixel precision.Complex[T]) Result {
	a, s := it.a, it.st
	m := a.Mark()
	defer a.Release(m)
	a.ClearOverflow()
	it.begin(pixel)
	if it.period != nil {
		it.period.Begin()
	}

	var res Result
	iter := it.info.FirstIter
	for {
		iter++
		if iter >= it.maxIter {
			break
		}
		if it.poll != nil && iter%it.pollEvery == 0 && it.poll() {
			return Result{Interrupted: true}
		}
		stopped := it.step(a, s)
		escaped := stopped || a.Overflow() || !it.info.OwnBailout && it.bail(a, s.New, s.Sq, s.Limit)
		// A formula that stops on the incoming sample leaves no new one.
		if it.hook != nil && !(stopped && it.info.checksOld) {
			x, y := precision.Floats(a, s.New)
			it.hook(complex(x, y))
		}
		if escaped {
			res.Escaped = true
			break
		}
		if it.period != nil && it.period.Observe(iter, s.New) {
			res.Periodic = true
			res.CycleLen = it.period.CycleLen()
			iter = it.maxIter - 1
		}
		s.Old, s.New = s.New, s.Old
	}

	last := s.Old
	if res.Escaped && !it.info.checksOld {
		last = s.New
	}
	x, y := precision.Floats(a, last)
	res.Final = complex(x, y)
	if it.period != nil {
		it.period.Finish(iter)
	}
	if res.Escaped && iter == 0 {
		iter = 1
	}
	res.Iterations = iter
	return res
}
