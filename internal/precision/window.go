package precision

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// Digit limits for Select.
const (
	// NativeDigits is the most digits float64 distinguishes (DBL_DIG+1).
	NativeDigits = 16
	// ExtendedDigits is the most digits a 64 bit mantissa distinguishes.
	ExtendedDigits = 19
	// FixedDigits is the most digits served by fixed-point arithmetic.
	FixedDigits = 100
)

// ExtendedBits is the mantissa width of the Extended kind.
const ExtendedBits = 64

// WindowPrec is the mantissa width used for window corners.
const WindowPrec = 1024

var (
	ErrEmptyWindow = errors.New("precision: window has no area")
	ErrImageSize   = errors.New("precision: image needs at least 2x2 pixels")
)

// Window is the rectangle of the complex plane mapped onto the image. Row 0
// of the image is YMax.
type Window struct {
	XMin, XMax, YMin, YMax *big.Float
}

// NewWindow returns a window with the given float64 corners.
func NewWindow(xmin, xmax, ymin, ymax float64) Window {
	f := func(v float64) *big.Float { return new(big.Float).SetPrec(WindowPrec).SetFloat64(v) }
	return Window{XMin: f(xmin), XMax: f(xmax), YMin: f(ymin), YMax: f(ymax)}
}

// ParseWindow parses decimal corners so deep zooms keep every digit.
func ParseWindow(xmin, xmax, ymin, ymax string) (Window, error) {
	var w Window
	for _, c := range []struct {
		dst **big.Float
		s   string
	}{{&w.XMin, xmin}, {&w.XMax, xmax}, {&w.YMin, ymin}, {&w.YMax, ymax}} {
		v, _, err := big.ParseFloat(c.s, 10, WindowPrec, big.ToNearestEven)
		if err != nil {
			return Window{}, fmt.Errorf("parsing corner %q: %w", c.s, err)
		}
		*c.dst = v
	}
	return w, nil
}

// Floats returns the corners rounded to float64.
func (w Window) Floats() (xmin, xmax, ymin, ymax float64) {
	xmin, _ = w.XMin.Float64()
	xmax, _ = w.XMax.Float64()
	ymin, _ = w.YMin.Float64()
	ymax, _ = w.YMax.Float64()
	return
}

// Validate checks that the window has positive extent in both axes.
func (w Window) Validate() error {
	if w.XMin == nil || w.XMax == nil || w.YMin == nil || w.YMax == nil {
		return ErrEmptyWindow
	}
	if w.XMax.Cmp(w.XMin) <= 0 || w.YMax.Cmp(w.YMin) <= 0 {
		return ErrEmptyWindow
	}
	return nil
}

// Delta returns the distance between adjacent pixel centres in each axis.
func (w Window) Delta(width, height int) (dx, dy *big.Float) {
	dx = new(big.Float).SetPrec(WindowPrec).Sub(w.XMax, w.XMin)
	dx.Quo(dx, new(big.Float).SetInt64(int64(width-1)))
	dy = new(big.Float).SetPrec(WindowPrec).Sub(w.YMax, w.YMin)
	dy.Quo(dy, new(big.Float).SetInt64(int64(height-1)))
	return dx, dy
}

// Column returns the real coordinate of pixel column col.
func (w Window) Column(col, width int) *big.Float {
	dx, _ := w.Delta(width, 2)
	x := new(big.Float).SetPrec(WindowPrec).Mul(dx, new(big.Float).SetInt64(int64(col)))
	return x.Add(x, w.XMin)
}

// Row returns the imaginary coordinate of pixel row row.
func (w Window) Row(row, height int) *big.Float {
	_, dy := w.Delta(2, height)
	y := new(big.Float).SetPrec(WindowPrec).Mul(dy, new(big.Float).SetInt64(int64(row)))
	return y.Sub(w.YMax, y)
}

// Digits returns the number of significant decimal digits needed to tell
// adjacent pixels apart, never less than 3. It returns -1 when the pixels
// coincide.
func (w Window) Digits(width, height int) int {
	dx, dy := w.Delta(width, height)
	del := new(big.Float).Abs(dx)
	if ady := new(big.Float).Abs(dy); ady.Cmp(del) < 0 {
		del = ady
	}
	if del.Sign() == 0 {
		return -1
	}
	one := big.NewFloat(1)
	ten := big.NewFloat(10)
	digits := 1
	for del.Cmp(one) < 0 {
		digits++
		del.Mul(del, ten)
	}
	return max(3, digits)
}

// Select picks the cheapest arithmetic that carries digits decimal digits.
func Select(digits int) Kind {
	switch {
	case digits <= NativeDigits:
		return Native
	case digits <= ExtendedDigits:
		return Extended
	case digits <= FixedDigits:
		return BigInt
	}
	return BigFloat
}

// Context is the arithmetic chosen for one calculation.
type Context struct {
	Kind   Kind
	Digits int
	// Bits is the mantissa width for float kinds and the number of
	// fraction bits for BigInt.
	Bits uint
}

// NewContext sizes kind for digits decimal digits.
func NewContext(kind Kind, digits int) Context {
	bits := uint(math.Ceil(float64(max(digits, 3))*math.Log2(10))) + 32
	switch kind {
	case Native:
		bits = 53
	case Extended:
		bits = ExtendedBits
	}
	return Context{Kind: kind, Digits: digits, Bits: bits}
}

// ForWindow selects the arithmetic for rendering w at width x height.
func ForWindow(w Window, width, height int) (Context, error) {
	if width < 2 || height < 2 {
		return Context{}, ErrImageSize
	}
	if err := w.Validate(); err != nil {
		return Context{}, err
	}
	d := w.Digits(width, height)
	if d < 0 {
		return Context{}, ErrEmptyWindow
	}
	return NewContext(Select(d), d), nil
}

// Float returns the binary float arithmetic for an Extended or BigFloat
// context.
func (c Context) Float() *BigFloatArith {
	return NewBigFloat(c.Kind, c.Bits)
}

// Fixed returns the fixed-point arithmetic for a BigInt context.
func (c Context) Fixed() *Fixed {
	return NewFixed(c.Bits)
}

func (c Context) String() string {
	return fmt.Sprintf("%s/%d digits/%d bits", c.Kind, c.Digits, c.Bits)
}
