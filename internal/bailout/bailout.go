// Package bailout holds the escape tests. Each test is written once against
// precision.Arith so every arithmetic makes the same decision on the same
// sample.
package bailout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/precision"
)

// Test selects an escape test.
type Test int

const (
	// Mod escapes when |z|² reaches the limit.
	Mod Test = iota
	// Real escapes when x² reaches the limit.
	Real
	// Imag escapes when y² reaches the limit.
	Imag
	// Or escapes when either x² or y² reaches the limit.
	Or
	// And escapes when both x² and y² reach the limit.
	And
	// Manhattan escapes when (|x|+|y|)² reaches the limit.
	Manhattan
	// ManhattanRotated escapes when (x+y)² reaches the limit.
	ManhattanRotated
)

var names = [...]string{
	Mod:              "mod",
	Real:             "real",
	Imag:             "imag",
	Or:               "or",
	And:              "and",
	Manhattan:        "manh",
	ManhattanRotated: "manr",
}

// ErrUnknownTest is returned for a test name or value outside the set.
var ErrUnknownTest = errors.New("bailout: unknown test")

func (t Test) String() string {
	if t < 0 || int(t) >= len(names) {
		return fmt.Sprintf("Test(%d)", int(t))
	}
	return names[t]
}

// Tests lists every test in declaration order.
func Tests() []Test {
	return []Test{Mod, Real, Imag, Or, And, Manhattan, ManhattanRotated}
}

// ParseTest maps a name as printed by String back to its Test.
func ParseTest(s string) (Test, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return Test(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTest, s)
}

// Squares is the per-pixel scratch a test leaves behind: the squared
// components of the tested sample and its squared modulus. Formulas read
// them on the next step instead of squaring again.
type Squares[T any] struct {
	X2, Y2, Mag T
}

// NewSquares allocates persistent squares.
func NewSquares[T any](a precision.Arith[T]) *Squares[T] {
	return &Squares[T]{X2: a.New(), Y2: a.New(), Mag: a.New()}
}

// Update sets sq to the squares of z.
func (sq *Squares[T]) Update(a precision.Arith[T], z precision.Complex[T]) {
	sq.X2 = a.Sqr(sq.X2, z.X)
	sq.Y2 = a.Sqr(sq.Y2, z.Y)
	sq.Mag = a.Add(sq.Mag, sq.X2, sq.Y2)
}

// Predicate updates sq from z and reports whether z escaped. An overflow
// raised by the arithmetic counts as escape.
type Predicate[T any] func(a precision.Arith[T], z precision.Complex[T], sq *Squares[T], limit T) bool

// For returns the predicate for t.
func For[T any](t Test) (Predicate[T], error) {
	switch t {
	case Mod:
		return modTest[T], nil
	case Real:
		return realTest[T], nil
	case Imag:
		return imagTest[T], nil
	case Or:
		return orTest[T], nil
	case And:
		return andTest[T], nil
	case Manhattan:
		return manhattanTest[T], nil
	case ManhattanRotated:
		return manhattanRotatedTest[T], nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownTest, int(t))
}

func modTest[T any](a precision.Arith[T], z precision.Complex[T], sq *Squares[T], limit T) bool {
	sq.Update(a, z)
	return a.Overflow() || a.Cmp(sq.Mag, limit) >= 0
}

func realTest[T any](a precision.Arith[T], z precision.Complex[T], sq *Squares[T], limit T) bool {
	sq.Update(a, z)
	return a.Overflow() || a.Cmp(sq.X2, limit) >= 0
}

func imagTest[T any](a precision.Arith[T], z precision.Complex[T], sq *Squares[T], limit T) bool {
	sq.Update(a, z)
	return a.Overflow() || a.Cmp(sq.Y2, limit) >= 0
}

func orTest[T any](a precision.Arith[T], z precision.Complex[T], sq *Squares[T], limit T) bool {
	sq.Update(a, z)
	return a.Overflow() || a.Cmp(sq.X2, limit) >= 0 || a.Cmp(sq.Y2, limit) >= 0
}

func andTest[T any](a precision.Arith[T], z precision.Complex[T], sq *Squares[T], limit T) bool {
	sq.Update(a, z)
	return a.Overflow() || a.Cmp(sq.X2, limit) >= 0 && a.Cmp(sq.Y2, limit) >= 0
}

func manhattanTest[T any](a precision.Arith[T], z precision.Complex[T], sq *Squares[T], limit T) bool {
	sq.Update(a, z)
	m := a.Mark()
	defer a.Release(m)
	s := a.Abs(a.Temp(), z.X)
	s = a.Add(s, s, a.Abs(a.Temp(), z.Y))
	s = a.Sqr(s, s)
	return a.Overflow() || a.Cmp(s, limit) >= 0
}

func manhattanRotatedTest[T any](a precision.Arith[T], z precision.Complex[T], sq *Squares[T], limit T) bool {
	sq.Update(a, z)
	m := a.Mark()
	defer a.Release(m)
	s := a.Add(a.Temp(), z.X, z.Y)
	s = a.Sqr(s, s)
	return a.Overflow() || a.Cmp(s, limit) >= 0
}
