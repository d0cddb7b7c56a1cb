package precision

import (
	"math"
	"math/big"
)

// Float64 is the Native arithmetic. It has no scratch storage.
type Float64 struct{}

var _ Arith[float64] = Float64{}

func (Float64) Kind() Kind { return Native }
func (Float64) New() float64 { return 0 }
func (Float64) Temp() float64 { return 0 }
func (Float64) Mark() int { return 0 }
func (Float64) Release(int) {}
func (Float64) Overflow() bool { return false }
func (Float64) ClearOverflow() {}
func (Float64) Clone() Arith[float64] { return Float64{} }

func (Float64) FromFloat(_ float64, f float64) float64 { return f }

func (Float64) FromBig(_ float64, f *big.Float) float64 {
	v, _ := f.Float64()
	return v
}

func (Float64) Float(a float64) float64 { return a }

func (Float64) Set(_, a float64) float64 { return a }
func (Float64) Add(_, a, b float64) float64 { return a + b }
func (Float64) Sub(_, a, b float64) float64 { return a - b }
func (Float64) Mul(_, a, b float64) float64 { return a * b }
func (Float64) Sqr(_, a float64) float64 { return a * a }
func (Float64) MulInt(_, a float64, n int) float64 { return a * float64(n) }
func (Float64) Shift(_, a float64, n int) float64 { return math.Ldexp(a, n) }
func (Float64) Neg(_, a float64) float64 { return -a }
func (Float64) Abs(_, a float64) float64 { return math.Abs(a) }

func (Float64) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (Float64) Sign(a float64) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}
