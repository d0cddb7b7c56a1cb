package precision

import "math/big"

// IntBits is the number of integer bits a fixed-point value may use before
// the overflow flag is raised.
const IntBits = 32

// Fixed is fixed-point arithmetic: a value v is stored as the integer
// v * 2**frac.
type Fixed struct {
	frac     uint
	limit    *big.Int
	arena    *Arena[big.Int]
	overflow bool
}

var _ Arith[*big.Int] = (*Fixed)(nil)

// NewFixed returns a fixed-point arithmetic with frac fraction bits.
func NewFixed(frac uint) *Fixed {
	return &Fixed{
		frac:  frac,
		limit: new(big.Int).Lsh(big.NewInt(1), frac+IntBits),
		arena: &Arena[big.Int]{},
	}
}

// FracBits is the number of fraction bits.
func (f *Fixed) FracBits() uint { return f.frac }

func (f *Fixed) Kind() Kind { return BigInt }

func (f *Fixed) New() *big.Int { return new(big.Int) }

func (f *Fixed) Temp() *big.Int {
	return f.arena.Alloc().SetInt64(0)
}

func (f *Fixed) Mark() int { return f.arena.Mark() }
func (f *Fixed) Release(mark int) { f.arena.Release(mark) }
func (f *Fixed) Overflow() bool { return f.overflow }
func (f *Fixed) ClearOverflow() { f.overflow = false }
func (f *Fixed) Clone() Arith[*big.Int] { return NewFixed(f.frac) }

func (f *Fixed) check(z *big.Int) *big.Int {
	if z.CmpAbs(f.limit) >= 0 {
		f.overflow = true
	}
	return z
}

func (f *Fixed) FromFloat(dst *big.Int, v float64) *big.Int {
	x := new(big.Float).SetFloat64(v)
	return f.FromBig(dst, x)
}

// FromBig truncates the bits of v below 2**-frac.
func (f *Fixed) FromBig(dst *big.Int, v *big.Float) *big.Int {
	x := new(big.Float).SetPrec(v.Prec()).SetMantExp(v, int(f.frac))
	x.Int(dst)
	return f.check(dst)
}

func (f *Fixed) Float(a *big.Int) float64 {
	x := new(big.Float).SetInt(a)
	v, _ := x.SetMantExp(x, -int(f.frac)).Float64()
	return v
}

// Big converts a to a big.Float without loss.
func (f *Fixed) Big(a *big.Int) *big.Float {
	x := new(big.Float).SetPrec(uint(a.BitLen()) + 64).SetInt(a)
	return x.SetMantExp(x, -int(f.frac))
}

func (f *Fixed) Set(dst, a *big.Int) *big.Int {
	return dst.Set(a)
}

func (f *Fixed) Add(dst, a, b *big.Int) *big.Int {
	return f.check(dst.Add(a, b))
}

func (f *Fixed) Sub(dst, a, b *big.Int) *big.Int {
	return f.check(dst.Sub(a, b))
}

func (f *Fixed) Mul(dst, a, b *big.Int) *big.Int {
	dst.Mul(a, b)
	return f.check(dst.Rsh(dst, f.frac))
}

func (f *Fixed) Sqr(dst, a *big.Int) *big.Int {
	return f.Mul(dst, a, a)
}

func (f *Fixed) MulInt(dst, a *big.Int, n int) *big.Int {
	m := f.Mark()
	t := f.Temp()
	t.SetInt64(int64(n))
	dst.Mul(a, t)
	f.Release(m)
	return f.check(dst)
}

func (f *Fixed) Shift(dst, a *big.Int, n int) *big.Int {
	if n >= 0 {
		return f.check(dst.Lsh(a, uint(n)))
	}
	return dst.Rsh(a, uint(-n))
}

func (f *Fixed) Neg(dst, a *big.Int) *big.Int {
	return dst.Neg(a)
}

func (f *Fixed) Abs(dst, a *big.Int) *big.Int {
	return dst.Abs(a)
}

func (f *Fixed) Cmp(a, b *big.Int) int { return a.Cmp(b) }
func (f *Fixed) Sign(a *big.Int) int { return a.Sign() }
