package orbit

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/bailout"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/period"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/precision"
)

func mandelConfig(maxIter int) Config {
	return Config{Kind: Mandel, Test: bailout.Mod, Limit: 4, MaxIter: maxIter}
}

func runNative(t *testing.T, cfg Config, x, y float64) Result {
	t.Helper()
	it, err := NewIterator[float64](precision.Float64{}, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	return it.Run(precision.Complex[float64]{X: x, Y: y})
}

func TestMandelLandmarks(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		iters   int
		escaped bool
	}{
		{"origin", 0, 0, 100, false},
		{"far corner", 2, 2, 1, true},
		{"half diagonal", 0.5, 0.5, 4, true},
		{"cusp", 0.25, 0, 100, false},
		{"period two bulb", -1, 0, 100, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := runNative(t, mandelConfig(100), tc.x, tc.y)
			if got.Iterations != tc.iters || got.Escaped != tc.escaped {
				t.Errorf("Run(%v, %v) = %d iterations escaped=%v, want %d escaped=%v",
					tc.x, tc.y, got.Iterations, got.Escaped, tc.iters, tc.escaped)
			}
		})
	}
}

func TestFinalSample(t *testing.T) {
	got := runNative(t, mandelConfig(100), 0.5, 0.5)
	if want := complex(3.28515625, 1.34375); got.Final != want {
		t.Errorf("Final = %v, want %v", got.Final, want)
	}
}

func TestOrbitHook(t *testing.T) {
	it, err := NewIterator[float64](precision.Float64{}, mandelConfig(100), nil)
	if err != nil {
		t.Fatal(err)
	}
	var seen []complex128
	it.SetOrbitHook(func(z complex128) { seen = append(seen, z) })
	it.Run(precision.Complex[float64]{X: 0.5, Y: 0.5})
	// The escaping sample is seen too.
	want := []complex128{complex(0.5, 1), complex(-0.25, 1.5), complex(-1.6875, -0.25), complex(3.28515625, 1.34375)}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("orbit mismatch (-want +got):\n%s", diff)
	}
}

func TestJuliaCountsFromMinusOne(t *testing.T) {
	cfg := Config{Kind: Julia, Test: bailout.Mod, Limit: 4, MaxIter: 50}
	// (2, 0) escapes on the very first step, which is counted as 1.
	if got := runNative(t, cfg, 2, 0); got.Iterations != 1 || !got.Escaped {
		t.Errorf("Run(2, 0) = %+v, want escape at 1", got)
	}
	cfg.Params = [4]float64{-1, 0}
	if got := runNative(t, cfg, 0.5, 0.5); got.Iterations != 2 || !got.Escaped {
		t.Errorf("Run(0.5, 0.5) = %+v, want escape at 2", got)
	}
}

func TestPollInterrupts(t *testing.T) {
	det := period.New[float64](precision.Float64{}, period.Config{Check: 1, MaxIter: 1000}, big.NewFloat(1e-3))
	it, err := NewIterator[float64](precision.Float64{}, mandelConfig(1000), det)
	if err != nil {
		t.Fatal(err)
	}
	polls := 0
	it.SetPoll(16, func() bool {
		polls++
		return polls == 3
	})
	before := det.State()
	got := it.Run(precision.Complex[float64]{X: -0.1, Y: 0.1})
	if !got.Interrupted {
		t.Fatalf("Run() = %+v, want interrupted", got)
	}
	if after := det.State(); after != before {
		t.Errorf("interrupted pixel changed detector state from %+v to %+v", before, after)
	}
	got = it.Run(precision.Complex[float64]{X: -0.1, Y: 0.1})
	if got.Interrupted || got.Escaped || got.Iterations != 1000 {
		t.Errorf("second Run() = %+v, want inside", got)
	}
}

func TestPeriodicityShortCircuit(t *testing.T) {
	det := period.New[float64](precision.Float64{}, period.Config{Check: 1, MaxIter: 1000}, big.NewFloat(1e-3))
	det.Restore(period.State{})
	it, err := NewIterator[float64](precision.Float64{}, mandelConfig(1000), det)
	if err != nil {
		t.Fatal(err)
	}
	got := it.Run(precision.Complex[float64]{X: -1, Y: 0})
	if !got.Periodic || got.Escaped || got.Iterations != 1000 {
		t.Errorf("Run(-1, 0) = %+v, want periodic inside", got)
	}
	// -1 alternates between 0 and -1, so a match is an even distance.
	if got.CycleLen%2 != 0 {
		t.Errorf("CycleLen = %d, want an even distance", got.CycleLen)
	}
}

func TestNewtonRootsAndSentinel(t *testing.T) {
	cfg := Config{Kind: Newton, Power: 3, MaxIter: 100}
	if got := runNative(t, cfg, 1, 0); !got.Escaped || got.Iterations != 1 {
		t.Errorf("Run(1, 0) = %+v, want converged at 1", got)
	}
	got := runNative(t, cfg, 0, 0)
	if !got.Escaped || real(got.Final) != math.MaxFloat32 {
		t.Errorf("Run(0, 0) = %+v, want stop with sentinel", got)
	}
	got = runNative(t, cfg, -0.5, 0.8)
	if !got.Escaped || got.Iterations >= 100 {
		t.Errorf("Run(-0.5, 0.8) = %+v, want convergence", got)
	}
}

func TestNativeOnly(t *testing.T) {
	for _, k := range []Kind{LambdaSine, Newton} {
		if _, err := StepFor[*big.Float](k); !errors.Is(err, ErrNativeOnly) {
			t.Errorf("StepFor[*big.Float](%v) error = %v, want %v", k, err, ErrNativeOnly)
		}
		if _, err := StepFor[float64](k); err != nil {
			t.Errorf("StepFor[float64](%v) error = %v", k, err)
		}
	}
	for _, k := range Kinds() {
		info, _ := Describe(k)
		_, err := StepFor[*big.Int](k)
		if info.Arbitrary != (err == nil) {
			t.Errorf("%v: Arbitrary = %v but StepFor error = %v", k, info.Arbitrary, err)
		}
	}
}

func TestPowerValidated(t *testing.T) {
	cfg := Config{Kind: MandelPower, Power: 1, Limit: 4, MaxIter: 10}
	if _, err := NewIterator[float64](precision.Float64{}, cfg, nil); !errors.Is(err, ErrPower) {
		t.Errorf("NewIterator() error = %v, want %v", err, ErrPower)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("nope"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(nope) error = %v", err)
	}
}

func TestSymmetric(t *testing.T) {
	tests := []struct {
		k      Kind
		params [4]float64
		want   bool
	}{
		{Mandel, [4]float64{}, true},
		{Mandel, [4]float64{0, 0.1}, false},
		{Julia, [4]float64{0.3, 0}, false},
		{BurningShip, [4]float64{}, false},
		{Quaternion, [4]float64{}, true},
		{Newton, [4]float64{}, true},
	}
	for _, tc := range tests {
		if got := Symmetric(tc.k, tc.params); got != tc.want {
			t.Errorf("Symmetric(%v, %v) = %v, want %v", tc.k, tc.params, got, tc.want)
		}
	}
}

var crossPixels = [][2]float64{
	{2, 2}, {0.5, 0.5}, {-1, 0}, {0, 0}, {-0.25, 0.25},
	{1.5, -0.5}, {-2, 0.25}, {0.25, 0}, {-0.75, 0.5}, {0.375, -0.625},
}

var crossConfigs = []Config{
	{Kind: Mandel, Limit: 4},
	{Kind: Julia, Limit: 4},
	{Kind: Julia, Params: [4]float64{-1, 0}, Limit: 4},
	{Kind: MandelPower, Power: 3, Limit: 4},
	{Kind: BurningShip, Limit: 4},
	{Kind: Lambda, Params: [4]float64{1, 0}, Limit: 4},
	{Kind: Spider, Limit: 4},
	{Kind: Quaternion, Limit: 4},
}

type outcome struct {
	Iterations int
	Escaped    bool
}

func outcomes[T any](t *testing.T, a precision.Arith[T], cfg Config) []outcome {
	t.Helper()
	it, err := NewIterator(a, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	pixel := precision.NewComplex(a)
	var out []outcome
	for _, p := range crossPixels {
		pixel = precision.ComplexFromFloats(a, pixel, p[0], p[1])
		r := it.Run(pixel)
		out = append(out, outcome{r.Iterations, r.Escaped})
	}
	return out
}

func TestCrossPrecision(t *testing.T) {
	for _, cfg := range crossConfigs {
		cfg.MaxIter = 50
		cfg.Test = bailout.Mod
		want := outcomes[float64](t, precision.Float64{}, cfg)
		got := map[string][]outcome{
			"extended": outcomes[*big.Float](t, precision.NewBigFloat(precision.Extended, precision.ExtendedBits), cfg),
			"bigflt":   outcomes[*big.Float](t, precision.NewBigFloat(precision.BigFloat, 200), cfg),
			"bignum":   outcomes[*big.Int](t, precision.NewFixed(128), cfg),
		}
		for name, g := range got {
			if diff := cmp.Diff(want, g); diff != "" {
				t.Errorf("%v params %v: %s differs from native (-want +got):\n%s", cfg.Kind, cfg.Params, name, diff)
			}
		}
	}
}

func TestScratchBalanced(t *testing.T) {
	var a precision.Arith[*big.Float] = precision.NewBigFloat(precision.BigFloat, 160)
	for _, cfg := range crossConfigs {
		cfg.MaxIter = 50
		it, err := NewIterator(a, cfg, nil)
		if err != nil {
			t.Fatal(err)
		}
		before := a.Mark()
		it.Run(precision.ComplexFromFloats(a, precision.NewComplex(a), -0.75, 0.5))
		if after := a.Mark(); after != before {
			t.Errorf("%v leaked %d scratch values", cfg.Kind, after-before)
		}
	}
}

func TestPeriodicityKeepsEscapes(t *testing.T) {
	var a precision.Arith[float64] = precision.Float64{}
	for _, cfg := range crossConfigs {
		cfg.MaxIter = 500
		cfg.Test = bailout.Mod
		plain, err := NewIterator(a, cfg, nil)
		if err != nil {
			t.Fatal(err)
		}
		// A coarse close-enough distance nominates plenty of cycles that
		// are not there.
		det := period.New(a, period.Config{Check: 1, MaxIter: cfg.MaxIter}, big.NewFloat(0.1))
		checked, err := NewIterator(a, cfg, det)
		if err != nil {
			t.Fatal(err)
		}
		var want, got []outcome
		for y := range 30 {
			det.ResetRow()
			for x := range 40 {
				pixel := precision.Complex[float64]{X: -2.5 + float64(x)*0.1, Y: -1.5 + float64(y)*0.1}
				r := plain.Run(pixel)
				want = append(want, outcome{r.Iterations, r.Escaped})
				r = checked.Run(pixel)
				got = append(got, outcome{r.Iterations, r.Escaped})
			}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%v: periodicity changed results (-off +on):\n%s", cfg.Kind, diff)
		}
	}
}
