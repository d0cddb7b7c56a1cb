// Package orbit iterates escape-time formulas over a chosen arithmetic.
package orbit

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects a formula. The set is closed; StepFor is the only place that
// maps a Kind to code.
type Kind int

const (
	// Mandel is z² + c with c the pixel.
	Mandel Kind = iota
	// Julia is z² + c with z starting at the pixel.
	Julia
	// MandelPower is zⁿ + c with c the pixel.
	MandelPower
	// JuliaPower is zⁿ + c with z starting at the pixel.
	JuliaPower
	// BurningShip folds both components to their absolute value before
	// squaring.
	BurningShip
	// Lambda is λz(1-z).
	Lambda
	// Spider is z² + c where c drifts towards the orbit.
	Spider
	// Quaternion is the quaternion Mandelbrot set.
	Quaternion
	// LambdaSine is λ·sin(z).
	LambdaSine
	// Newton finds the roots of zⁿ - 1.
	Newton
)

// start is how the first sample of a pixel is formed.
type start int

const (
	// z = pixel + (p0, p1), c = pixel
	startMandel start = iota
	// z = pixel, c = (p0, p1)
	startJulia
	// z = 0 with the pixel and (p2, p3) as the four constant components
	startQuaternion
)

// Info describes a formula.
type Info struct {
	Name string
	// Arbitrary is set when the formula runs on every arithmetic. Other
	// formulas only run on float64.
	Arbitrary bool
	// OwnBailout is set when the formula decides escape itself and the
	// configured bailout test is not consulted.
	OwnBailout bool
	// Periodicity is cleared for formulas whose attractors are not
	// cycles worth detecting.
	Periodicity bool
	// XAxis is set when the image is symmetric about the real axis as
	// long as the parameters are real.
	XAxis bool
	// FirstIter is the counter value before the first iteration.
	FirstIter int
	Params    [4]float64
	Power     int
	Limit     float64

	start start
	// checksOld is set when the formula's own bailout looks at the
	// incoming sample, leaving New unset on escape.
	checksOld bool
}

var infos = [...]Info{
	Mandel: {
		Name: "mandel", Arbitrary: true, Periodicity: true, XAxis: true,
		Limit: 4, start: startMandel,
	},
	Julia: {
		Name: "julia", Arbitrary: true, Periodicity: true,
		FirstIter: -1, Params: [4]float64{0.3, 0.6}, Limit: 4, start: startJulia,
	},
	MandelPower: {
		Name: "manzpowr", Arbitrary: true, Periodicity: true, XAxis: true,
		Power: 3, Limit: 4, start: startMandel,
	},
	JuliaPower: {
		Name: "julzpowr", Arbitrary: true, Periodicity: true,
		Params: [4]float64{0.3, 0.6}, Power: 3, Limit: 4, start: startJulia,
	},
	BurningShip: {
		Name: "burning-ship", Arbitrary: true, Periodicity: true,
		Limit: 4, start: startMandel,
	},
	Lambda: {
		Name: "lambda", Arbitrary: true, Periodicity: true,
		Params: [4]float64{0.85, 0.6}, Limit: 4, start: startJulia,
	},
	Spider: {
		Name: "spider", Arbitrary: true, Periodicity: true, XAxis: true,
		Limit: 4, start: startMandel,
	},
	Quaternion: {
		Name: "quat", Arbitrary: true, OwnBailout: true, Periodicity: true, XAxis: true,
		Limit: 4, start: startQuaternion, checksOld: true,
	},
	LambdaSine: {
		Name: "lambdasine", OwnBailout: true, Periodicity: true,
		Params: [4]float64{1, 0.4}, Limit: 50, start: startJulia, checksOld: true,
	},
	Newton: {
		Name: "newton", OwnBailout: true, XAxis: true,
		Power: 3, start: startJulia,
	},
}

var (
	ErrUnknownKind = errors.New("orbit: unknown formula")
	ErrNativeOnly  = errors.New("orbit: formula needs float64 arithmetic")
	ErrPower       = errors.New("orbit: power must be at least 2")
)

// Kinds lists every formula.
func Kinds() []Kind {
	ks := make([]Kind, len(infos))
	for i := range infos {
		ks[i] = Kind(i)
	}
	return ks
}

// Describe returns the description of k.
func Describe(k Kind) (Info, error) {
	if k < 0 || int(k) >= len(infos) {
		return Info{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return infos[k], nil
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(infos) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return infos[k].Name
}

// ParseKind maps a formula name back to its Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, info := range infos {
		if info.Name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Symmetric reports whether k with params renders symmetric about the
// real axis.
func Symmetric(k Kind, params [4]float64) bool {
	info, err := Describe(k)
	if err != nil || !info.XAxis {
		return false
	}
	switch info.start {
	case startMandel:
		return params[1] == 0
	case startQuaternion:
		return true
	}
	// Newton's roots of unity are mirrored about the real axis.
	return k == Newton
}
