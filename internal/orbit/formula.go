package orbit

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/bailout"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/precision"
)

// State is the scratch of one orbit. Steps read Old and write New; the
// iterator swaps them after every step that did not stop the orbit.
type State[T any] struct {
	Old, New precision.Complex[T]
	// C is the additive constant: the pixel for Mandelbrot-like formulas,
	// the parameter for Julia-like ones.
	C precision.Complex[T]
	// Drift is the moving constant of Spider.
	Drift precision.Complex[T]
	// Q holds the third and fourth components of a quaternion orbit and K
	// the matching constant components.
	Q, K precision.Complex[T]
	// Sq holds the squares of Old when a step starts.
	Sq    *bailout.Squares[T]
	Limit T
	Power int
}

// NewState allocates a state.
func NewState[T any](a precision.Arith[T]) *State[T] {
	return &State[T]{
		Old:   precision.NewComplex(a),
		New:   precision.NewComplex(a),
		C:     precision.NewComplex(a),
		Drift: precision.NewComplex(a),
		Q:     precision.NewComplex(a),
		K:     precision.NewComplex(a),
		Sq:    bailout.NewSquares(a),
		Limit: a.New(),
	}
}

// Step computes s.New from s.Old. It returns true when the formula itself
// stops the orbit.
type Step[T any] func(a precision.Arith[T], s *State[T]) bool

// StepFor returns the step of k for arithmetic over T.
func StepFor[T any](k Kind) (Step[T], error) {
	switch k {
	case Mandel, Julia:
		return quadStep[T], nil
	case MandelPower, JuliaPower:
		return powerStep[T], nil
	case BurningShip:
		return burningShipStep[T], nil
	case Lambda:
		return lambdaStep[T], nil
	case Spider:
		return spiderStep[T], nil
	case Quaternion:
		return quaternionStep[T], nil
	}
	var native Step[float64]
	switch k {
	case LambdaSine:
		native = lambdaSineStep
	case Newton:
		native = newtonStep
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	if step, ok := any(native).(Step[T]); ok {
		return step, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrNativeOnly, k)
}

// mul sets dst to x*y. dst may alias x or y.
func mul[T any](a precision.Arith[T], dst, x, y precision.Complex[T]) precision.Complex[T] {
	m := a.Mark()
	defer a.Release(m)
	re := a.Sub(a.Temp(), a.Mul(a.Temp(), x.X, y.X), a.Mul(a.Temp(), x.Y, y.Y))
	im := a.Add(a.Temp(), a.Mul(a.Temp(), x.X, y.Y), a.Mul(a.Temp(), x.Y, y.X))
	dst.X = a.Set(dst.X, re)
	dst.Y = a.Set(dst.Y, im)
	return dst
}

// pow sets dst to z**n for n >= 1 by repeated squaring. dst must not alias z.
func pow[T any](a precision.Arith[T], dst, z precision.Complex[T], n int) precision.Complex[T] {
	m := a.Mark()
	defer a.Release(m)
	base := precision.SetComplex(a, precision.TempComplex(a), z)
	dst = precision.ComplexFromFloats(a, dst, 1, 0)
	for {
		if n&1 != 0 {
			dst = mul(a, dst, dst, base)
		}
		n >>= 1
		if n == 0 {
			return dst
		}
		base = mul(a, base, base, base)
	}
}

// quadStep is z² + c using the squares left by the bailout test.
func quadStep[T any](a precision.Arith[T], s *State[T]) bool {
	m := a.Mark()
	defer a.Release(m)
	s.New.X = a.Add(s.New.X, a.Sub(a.Temp(), s.Sq.X2, s.Sq.Y2), s.C.X)
	xy := a.Mul(a.Temp(), s.Old.X, s.Old.Y)
	s.New.Y = a.Add(s.New.Y, a.Shift(xy, xy, 1), s.C.Y)
	return false
}

func powerStep[T any](a precision.Arith[T], s *State[T]) bool {
	s.New = pow(a, s.New, s.Old, s.Power)
	s.New.X = a.Add(s.New.X, s.New.X, s.C.X)
	s.New.Y = a.Add(s.New.Y, s.New.Y, s.C.Y)
	return false
}

// burningShipStep is (|x| + i|y|)² with the imaginary part of c
// subtracted, so the ship sails upright.
func burningShipStep[T any](a precision.Arith[T], s *State[T]) bool {
	m := a.Mark()
	defer a.Release(m)
	s.New.X = a.Add(s.New.X, a.Sub(a.Temp(), s.Sq.X2, s.Sq.Y2), s.C.X)
	xy := a.Mul(a.Temp(), s.Old.X, s.Old.Y)
	xy = a.Abs(xy, xy)
	s.New.Y = a.Sub(s.New.Y, a.Shift(xy, xy, 1), s.C.Y)
	return false
}

// lambdaStep is c·z·(1-z).
func lambdaStep[T any](a precision.Arith[T], s *State[T]) bool {
	m := a.Mark()
	defer a.Release(m)
	// t = z - z² = (x - x² + y²) + i(y - 2xy)
	tx := a.Add(a.Temp(), a.Sub(a.Temp(), s.Old.X, s.Sq.X2), s.Sq.Y2)
	xy := a.Mul(a.Temp(), s.Old.X, s.Old.Y)
	ty := a.Sub(a.Temp(), s.Old.Y, a.Shift(xy, xy, 1))
	s.New = mul(a, s.New, s.C, precision.Complex[T]{X: tx, Y: ty})
	return false
}

// spiderStep is z² + c followed by c = c/2 + z.
func spiderStep[T any](a precision.Arith[T], s *State[T]) bool {
	m := a.Mark()
	defer a.Release(m)
	s.New.X = a.Add(s.New.X, a.Sub(a.Temp(), s.Sq.X2, s.Sq.Y2), s.Drift.X)
	xy := a.Mul(a.Temp(), s.Old.X, s.Old.Y)
	s.New.Y = a.Add(s.New.Y, a.Shift(xy, xy, 1), s.Drift.Y)
	s.Drift.X = a.Add(s.Drift.X, a.Shift(s.Drift.X, s.Drift.X, -1), s.New.X)
	s.Drift.Y = a.Add(s.Drift.Y, a.Shift(s.Drift.Y, s.Drift.Y, -1), s.New.Y)
	return false
}

// quaternionStep squares the quaternion (Old.X, Old.Y, Q.X, Q.Y) and adds
// (C.X, C.Y, K.X, K.Y). The orbit stops once the modulus of the incoming
// quaternion passes the limit.
func quaternionStep[T any](a precision.Arith[T], s *State[T]) bool {
	m := a.Mark()
	defer a.Release(m)
	a0, a1, a2, a3 := s.Old.X, s.Old.Y, s.Q.X, s.Q.Y
	s0 := a.Sqr(a.Temp(), a0)
	rest := a.Add(a.Temp(), a.Sqr(a.Temp(), a1), a.Sqr(a.Temp(), a2))
	rest = a.Add(rest, rest, a.Sqr(a.Temp(), a3))
	if a.Cmp(a.Add(a.Temp(), s0, rest), s.Limit) > 0 {
		return true
	}
	a02 := a.Shift(a.Temp(), a0, 1)
	s.New.X = a.Add(s.New.X, a.Sub(a.Temp(), s0, rest), s.C.X)
	s.New.Y = a.Add(s.New.Y, a.Mul(a.Temp(), a02, a1), s.C.Y)
	n2 := a.Add(a.Temp(), a.Mul(a.Temp(), a02, a2), s.K.X)
	n3 := a.Add(a.Temp(), a.Mul(a.Temp(), a02, a3), s.K.Y)
	s.Q.X = a.Set(s.Q.X, n2)
	s.Q.Y = a.Set(s.Q.Y, n3)
	return false
}

// lambdaSineStep is c·sin(z). It stops once |Im z| reaches the square root
// of the limit, past which sin grows exponentially.
func lambdaSineStep(_ precision.Arith[float64], s *State[float64]) bool {
	if math.Abs(s.Old.Y) >= math.Sqrt(s.Limit) {
		return true
	}
	w := complex(s.C.X, s.C.Y) * cmplx.Sin(complex(s.Old.X, s.Old.Y))
	s.New.X, s.New.Y = real(w), imag(w)
	return false
}

const (
	newtonThreshold = 0.001
	// newtonSentinel replaces a sample whose next Newton step would divide
	// by a vanishing derivative.
	newtonSentinel = math.MaxFloat32
	// fltMin is the smallest normal float32.
	fltMin = 0x1p-126
)

// newtonStep applies Newton's method to zⁿ - 1. It stops when z is close
// to a root, or when the derivative underflows, in which case New holds a
// large sentinel rather than an infinity.
func newtonStep(_ precision.Arith[float64], s *State[float64]) bool {
	n := s.Power
	z := complex(s.Old.X, s.Old.Y)
	zn1 := intPow(z, n-1)
	zn := zn1 * z
	if d := zn - 1; real(d)*real(d)+imag(d)*imag(d) < newtonThreshold {
		s.New.X, s.New.Y = real(zn), imag(zn)
		return true
	}
	den := real(zn1)*real(zn1) + imag(zn1)*imag(zn1)
	if den < fltMin {
		s.New.X, s.New.Y = newtonSentinel, newtonSentinel
		return true
	}
	k := float64(n-1) / float64(n)
	num := complex(k*real(zn)+1/float64(n), k*imag(zn))
	w := num * complex(real(zn1), -imag(zn1)) / complex(den, 0)
	s.New.X, s.New.Y = real(w), imag(w)
	return false
}

func intPow(z complex128, n int) complex128 {
	r := complex(1, 0)
	for ; n > 0; n >>= 1 {
		if n&1 != 0 {
			r *= z
		}
		z *= z
	}
	return r
}
