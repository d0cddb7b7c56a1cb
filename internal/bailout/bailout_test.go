package bailout

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/precision"
)

// decisions lists, per sample, whether each test in Tests() order escapes
// for a limit of 4.
var decisions = []struct {
	x, y float64
	want []bool
}{
	{0, 0, []bool{false, false, false, false, false, false, false}},
	{1.5, 1.5, []bool{true, false, false, false, false, true, true}},
	{2, -2, []bool{true, true, true, true, true, true, false}},
	{2, 0, []bool{true, true, false, true, false, true, true}},
	{-0.5, 1.875, []bool{false, false, false, false, false, true, false}},
	{-1.5, -1.5, []bool{true, false, false, false, false, true, true}},
}

func escapes[T any](t *testing.T, a precision.Arith[T]) {
	t.Helper()
	limit := a.FromFloat(a.New(), 4)
	sq := NewSquares(a)
	for _, d := range decisions {
		z := precision.ComplexFromFloats(a, precision.NewComplex(a), d.x, d.y)
		var got []bool
		for _, test := range Tests() {
			p, err := For[T](test)
			if err != nil {
				t.Fatal(err)
			}
			got = append(got, p(a, z, sq, limit))
		}
		if diff := cmp.Diff(d.want, got); diff != "" {
			t.Errorf("%v: (%v, %v) decisions mismatch (-want +got):\n%s", a.Kind(), d.x, d.y, diff)
		}
		if mag, want := a.Float(sq.Mag), d.x*d.x+d.y*d.y; mag != want {
			t.Errorf("%v: |(%v, %v)|² = %v, want %v", a.Kind(), d.x, d.y, mag, want)
		}
	}
}

func TestPredicatesAgreeAcrossPrecision(t *testing.T) {
	escapes[float64](t, precision.Float64{})
	escapes[*big.Float](t, precision.NewBigFloat(precision.Extended, precision.ExtendedBits))
	escapes[*big.Float](t, precision.NewBigFloat(precision.BigFloat, 400))
	escapes[*big.Int](t, precision.NewFixed(128))
}

func TestOverflowEscapes(t *testing.T) {
	var a precision.Arith[*big.Int] = precision.NewFixed(32)
	limit := a.FromFloat(a.New(), 4)
	z := precision.ComplexFromFloats(a, precision.NewComplex(a), 0.5, 1<<20)
	p, _ := For[*big.Int](Real)
	if !p(a, z, NewSquares(a), limit) {
		t.Errorf("overflowing sample did not escape")
	}
}

func TestScratchReleased(t *testing.T) {
	var a precision.Arith[*big.Float] = precision.NewBigFloat(precision.BigFloat, 128)
	limit := a.FromFloat(a.New(), 4)
	z := precision.ComplexFromFloats(a, precision.NewComplex(a), 1, 1)
	sq := NewSquares(a)
	for _, test := range Tests() {
		p, _ := For[*big.Float](test)
		before := a.Mark()
		p(a, z, sq, limit)
		if after := a.Mark(); after != before {
			t.Errorf("%v left %d scratch values allocated", test, after-before)
		}
	}
}

func TestParseTest(t *testing.T) {
	for _, test := range Tests() {
		got, err := ParseTest(test.String())
		if err != nil || got != test {
			t.Errorf("ParseTest(%q) = %v, %v", test.String(), got, err)
		}
	}
	if got, err := ParseTest(" MANR "); err != nil || got != ManhattanRotated {
		t.Errorf("ParseTest(\" MANR \") = %v, %v", got, err)
	}
	if _, err := ParseTest("bogus"); !errors.Is(err, ErrUnknownTest) {
		t.Errorf("ParseTest(bogus) error = %v, want %v", err, ErrUnknownTest)
	}
	if _, err := For[float64](Test(42)); !errors.Is(err, ErrUnknownTest) {
		t.Errorf("For(42) error = %v, want %v", err, ErrUnknownTest)
	}
}
