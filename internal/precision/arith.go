// Package precision hides how the coordinates of the complex plane are
// represented. A calculation picks one Kind when it starts, from the number
// of decimal digits its window needs, and every formula and bailout test is
// written once against the generic Arith contract.
package precision

import (
	"fmt"
	"math/big"
)

// Kind names one arithmetic strategy.
type Kind int

const (
	// Native is float64.
	Native Kind = iota
	// Extended is a binary float with a 64 bit mantissa, the same mantissa
	// width as the x87 long double.
	Extended
	// BigInt is fixed-point arithmetic on arbitrary-precision integers.
	BigInt
	// BigFloat is arbitrary-precision binary floating point.
	BigFloat
)

func (k Kind) String() string {
	switch k {
	case Native:
		return "native"
	case Extended:
		return "extended"
	case BigInt:
		return "bignum"
	case BigFloat:
		return "bigflt"
	}
	return "unknown"
}

// Arith is arithmetic over values of type T.
//
// Every operation writes its result to dst and returns it. Pointer
// representations update dst in place and may alias dst with an operand;
// value representations ignore dst and return the result, so callers always
// store the return value.
type Arith[T any] interface {
	Kind() Kind

	// New allocates a value that outlives any scope.
	New() T
	// Temp allocates a zero value from the scratch arena. It is recycled
	// by the Release of any mark taken before it.
	Temp() T
	Mark() int
	Release(mark int)

	FromFloat(dst T, f float64) T
	FromBig(dst T, f *big.Float) T
	Float(a T) float64

	Set(dst, a T) T
	Add(dst, a, b T) T
	Sub(dst, a, b T) T
	Mul(dst, a, b T) T
	Sqr(dst, a T) T
	MulInt(dst, a T, n int) T
	// Shift multiplies a by 2**n.
	Shift(dst, a T, n int) T
	Neg(dst, a T) T
	Abs(dst, a T) T

	Cmp(a, b T) int
	Sign(a T) int

	// Overflow reports whether any result since the last ClearOverflow
	// left the representable range.
	Overflow() bool
	ClearOverflow()

	// Clone returns an arithmetic with the same parameters and its own
	// scratch arena, for use on another goroutine.
	Clone() Arith[T]
}

// Complex is a point of the complex plane in some representation.
type Complex[T any] struct {
	X, Y T
}

// NewComplex allocates a persistent zero complex value.
func NewComplex[T any](a Arith[T]) Complex[T] {
	return Complex[T]{X: a.New(), Y: a.New()}
}

// TempComplex allocates a complex value from the scratch arena.
func TempComplex[T any](a Arith[T]) Complex[T] {
	return Complex[T]{X: a.Temp(), Y: a.Temp()}
}

// SetComplex copies src into dst and returns dst.
func SetComplex[T any](a Arith[T], dst, src Complex[T]) Complex[T] {
	dst.X = a.Set(dst.X, src.X)
	dst.Y = a.Set(dst.Y, src.Y)
	return dst
}

// ComplexFromFloats sets dst to x+iy.
func ComplexFromFloats[T any](a Arith[T], dst Complex[T], x, y float64) Complex[T] {
	dst.X = a.FromFloat(dst.X, x)
	dst.Y = a.FromFloat(dst.Y, y)
	return dst
}

// Floats converts z to float64 components.
func Floats[T any](a Arith[T], z Complex[T]) (float64, float64) {
	return a.Float(z.X), a.Float(z.Y)
}

// ParseKind maps a name printed by Kind.String back to the Kind.
func ParseKind(s string) (Kind, error) {
	for k := Native; k <= BigFloat; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("precision: unknown arithmetic %q", s)
}
