package precision

import (
	"math/big"
	"testing"
)

func TestArenaDiscipline(t *testing.T) {
	var a Arena[big.Int]
	outer := a.Mark()
	x := a.Alloc()
	inner := a.Mark()
	y := a.Alloc()
	a.Alloc()
	if got := a.InUse(); got != 3 {
		t.Fatalf("InUse() = %d, want 3", got)
	}
	a.Release(inner)
	if got := a.InUse(); got != 1 {
		t.Fatalf("InUse() after inner release = %d, want 1", got)
	}
	if z := a.Alloc(); z != y {
		t.Errorf("slot not reused after release")
	}
	a.Release(outer)
	if z := a.Alloc(); z != x {
		t.Errorf("outer slot not reused after release")
	}
}

func TestArenaReleaseAboveTopPanics(t *testing.T) {
	var a Arena[big.Float]
	a.Alloc()
	defer func() {
		if recover() == nil {
			t.Errorf("Release(5) did not panic")
		}
	}()
	a.Release(5)
}

func TestSelect(t *testing.T) {
	tests := []struct {
		digits int
		want   Kind
	}{
		{3, Native},
		{16, Native},
		{17, Extended},
		{19, Extended},
		{20, BigInt},
		{100, BigInt},
		{101, BigFloat},
	}
	for _, tc := range tests {
		if got := Select(tc.digits); got != tc.want {
			t.Errorf("Select(%d) = %v, want %v", tc.digits, got, tc.want)
		}
	}
}

func TestDigits(t *testing.T) {
	w := NewWindow(-2, 1, -1.5, 1.5)
	if got := w.Digits(640, 480); got != 4 {
		t.Errorf("Digits() = %d, want 4", got)
	}
	if got := NewWindow(-2, 2, -2, 2).Digits(3, 3); got != 3 {
		t.Errorf("Digits() of a coarse window = %d, want 3", got)
	}

	deep, err := ParseWindow("0", "3e-16", "0", "1")
	if err != nil {
		t.Fatal(err)
	}
	ctx, err := ForWindow(deep, 101, 101)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Digits != 19 || ctx.Kind != Extended {
		t.Errorf("ForWindow() = %v, want 19 digits Extended", ctx)
	}
}

func TestForWindowErrors(t *testing.T) {
	if _, err := ForWindow(NewWindow(1, 1, 0, 1), 10, 10); err != ErrEmptyWindow {
		t.Errorf("flat window: err = %v, want %v", err, ErrEmptyWindow)
	}
	if _, err := ForWindow(NewWindow(0, 1, 0, 1), 1, 10); err != ErrImageSize {
		t.Errorf("one column: err = %v, want %v", err, ErrImageSize)
	}
	if _, err := ParseWindow("0", "x", "0", "1"); err == nil {
		t.Errorf("ParseWindow accepted a bad corner")
	}
}

func TestWindowMapping(t *testing.T) {
	w := NewWindow(-2, 2, -1, 1)
	if got, _ := w.Column(2, 5).Float64(); got != 0 {
		t.Errorf("Column(2, 5) = %v, want 0", got)
	}
	if got, _ := w.Row(0, 3).Float64(); got != 1 {
		t.Errorf("Row(0, 3) = %v, want 1", got)
	}
	if got, _ := w.Row(2, 3).Float64(); got != -1 {
		t.Errorf("Row(2, 3) = %v, want -1", got)
	}
}

func TestFixedArithmetic(t *testing.T) {
	f := NewFixed(64)
	a := f.FromFloat(f.New(), 2.5)
	b := f.FromFloat(f.New(), -1.5)
	z := f.New()

	if got := f.Float(f.Mul(z, a, b)); got != -3.75 {
		t.Errorf("2.5 * -1.5 = %v, want -3.75", got)
	}
	if got := f.Float(f.Add(z, a, b)); got != 1 {
		t.Errorf("2.5 + -1.5 = %v, want 1", got)
	}
	if got := f.Float(f.Shift(z, a, -1)); got != 1.25 {
		t.Errorf("2.5 / 2 = %v, want 1.25", got)
	}
	if got := f.Float(f.MulInt(z, b, 3)); got != -4.5 {
		t.Errorf("-1.5 * 3 = %v, want -4.5", got)
	}
	if f.Overflow() {
		t.Errorf("overflow raised on small values")
	}

	huge := f.FromFloat(f.New(), 1<<31)
	f.Sqr(z, huge)
	if !f.Overflow() {
		t.Errorf("2**31 squared did not overflow")
	}
	f.ClearOverflow()
	if f.Overflow() {
		t.Errorf("ClearOverflow left the flag set")
	}
}

func TestBigFloatTempsAreScoped(t *testing.T) {
	b := NewBigFloat(BigFloat, 200)
	m := b.Mark()
	x := b.Temp()
	b.FromFloat(x, 3)
	b.MulInt(x, x, 7)
	if got := b.Float(x); got != 21 {
		t.Errorf("3 * 7 = %v, want 21", got)
	}
	if got := x.Prec(); got != 200 {
		t.Errorf("temp precision = %d, want 200", got)
	}
	b.Release(m)
	if y := b.Temp(); y != x || y.Sign() != 0 {
		t.Errorf("Temp() after release did not hand back the zeroed slot")
	}
}

func TestArithAgree(t *testing.T) {
	inputs := []float64{0.5, -0.75, 1.25, 3, -2}
	ext := NewBigFloat(Extended, ExtendedBits)
	fix := NewFixed(96)
	for _, x := range inputs {
		for _, y := range inputs {
			want := Float64{}.Sub(0, Float64{}.Sqr(0, x), Float64{}.Mul(0, x, y))
			ex := ext.FromFloat(ext.New(), x)
			ey := ext.FromFloat(ext.New(), y)
			e := ext.Sub(ext.New(), ext.Sqr(ext.New(), ex), ext.Mul(ext.New(), ex, ey))
			if got := ext.Float(e); got != want {
				t.Errorf("extended x²-xy(%v, %v) = %v, want %v", x, y, got, want)
			}
			fx := fix.FromFloat(fix.New(), x)
			fy := fix.FromFloat(fix.New(), y)
			r := fix.Sub(fix.New(), fix.Sqr(fix.New(), fx), fix.Mul(fix.New(), fx, fy))
			if got := fix.Float(r); got != want {
				t.Errorf("fixed x²-xy(%v, %v) = %v, want %v", x, y, got, want)
			}
		}
	}
}
