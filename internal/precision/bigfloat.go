package precision

import "math/big"

// BigFloatArith is binary floating point of a fixed mantissa width. It
// backs both Extended (64 bits) and BigFloat (width from the digits needed).
type BigFloatArith struct {
	kind     Kind
	prec     uint
	arena    *Arena[big.Float]
	overflow bool
}

var _ Arith[*big.Float] = (*BigFloatArith)(nil)

// NewBigFloat returns a float arithmetic with prec mantissa bits reporting
// itself as kind.
func NewBigFloat(kind Kind, prec uint) *BigFloatArith {
	return &BigFloatArith{kind: kind, prec: prec, arena: &Arena[big.Float]{}}
}

// Prec is the mantissa width in bits.
func (b *BigFloatArith) Prec() uint { return b.prec }

func (b *BigFloatArith) Kind() Kind { return b.kind }

func (b *BigFloatArith) New() *big.Float {
	return new(big.Float).SetPrec(b.prec)
}

func (b *BigFloatArith) Temp() *big.Float {
	x := b.arena.Alloc()
	x.SetPrec(b.prec)
	x.SetInt64(0)
	return x
}

func (b *BigFloatArith) Mark() int { return b.arena.Mark() }
func (b *BigFloatArith) Release(mark int) { b.arena.Release(mark) }
func (b *BigFloatArith) Overflow() bool { return b.overflow }
func (b *BigFloatArith) ClearOverflow() { b.overflow = false }
func (b *BigFloatArith) Clone() Arith[*big.Float] { return NewBigFloat(b.kind, b.prec) }

func (b *BigFloatArith) check(z *big.Float) *big.Float {
	if z.IsInf() {
		b.overflow = true
	}
	return z
}

func (b *BigFloatArith) FromFloat(dst *big.Float, f float64) *big.Float {
	return b.check(dst.SetFloat64(f))
}

func (b *BigFloatArith) FromBig(dst *big.Float, f *big.Float) *big.Float {
	return dst.Set(f)
}

func (b *BigFloatArith) Float(a *big.Float) float64 {
	v, _ := a.Float64()
	return v
}

func (b *BigFloatArith) Set(dst, a *big.Float) *big.Float {
	return dst.Set(a)
}

func (b *BigFloatArith) Add(dst, x, y *big.Float) *big.Float {
	return b.check(dst.Add(x, y))
}

func (b *BigFloatArith) Sub(dst, x, y *big.Float) *big.Float {
	return b.check(dst.Sub(x, y))
}

func (b *BigFloatArith) Mul(dst, x, y *big.Float) *big.Float {
	return b.check(dst.Mul(x, y))
}

func (b *BigFloatArith) Sqr(dst, x *big.Float) *big.Float {
	return b.check(dst.Mul(x, x))
}

func (b *BigFloatArith) MulInt(dst, x *big.Float, n int) *big.Float {
	m := b.Mark()
	t := b.Temp()
	t.SetInt64(int64(n))
	dst.Mul(x, t)
	b.Release(m)
	return b.check(dst)
}

func (b *BigFloatArith) Shift(dst, x *big.Float, n int) *big.Float {
	return b.check(dst.SetMantExp(x, n))
}

func (b *BigFloatArith) Neg(dst, x *big.Float) *big.Float {
	return dst.Neg(x)
}

func (b *BigFloatArith) Abs(dst, x *big.Float) *big.Float {
	return dst.Abs(x)
}

func (b *BigFloatArith) Cmp(x, y *big.Float) int { return x.Cmp(y) }
func (b *BigFloatArith) Sign(x *big.Float) int { return x.Sign() }
