package trace

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// gridSurface paints colours from a function and counts every write.
type gridSurface struct {
	t      *testing.T
	bounds image.Rectangle
	w      int
	colors func(x, y int) int
	grid   []int
	writes []int
	// every nth call to Compute is interrupted when every > 0.
	every, calls int
	computed     int
}

func newSurface(t *testing.T, w, h int, bounds image.Rectangle, colors func(x, y int) int) *gridSurface {
	return &gridSurface{t: t, bounds: bounds, w: w, colors: colors, grid: make([]int, w*h), writes: make([]int, w*h)}
}

func (s *gridSurface) at(x, y int) int {
	if !image.Pt(x, y).In(s.bounds) {
		s.t.Fatalf("pixel (%d, %d) outside %v touched", x, y, s.bounds)
	}
	return y*s.w + x
}

func (s *gridSurface) Color(x, y int) int { return s.grid[s.at(x, y)] }

func (s *gridSurface) Compute(x, y int) (int, bool) {
	s.calls++
	if s.every > 0 && s.calls%s.every == 0 {
		return 0, false
	}
	i := s.at(x, y)
	s.grid[i] = s.colors(x, y)
	s.writes[i]++
	s.computed++
	return s.grid[i], true
}

func (s *gridSurface) FillRow(y, left, right, color int) {
	for x := left; x <= right; x++ {
		i := s.at(x, y)
		if s.grid[i] != Background {
			s.t.Errorf("fill overwrote (%d, %d)", x, y)
		}
		s.grid[i] = color
		s.writes[i]++
	}
}

func (s *gridSurface) ResetPeriodicity() {}

// run traces bounds to completion, resuming after every interruption.
func run(t *testing.T, s *gridSurface, opts Options) (filled, interrupts int) {
	t.Helper()
	cur := Start(s.bounds)
	for {
		out, err := Trace(s, s.bounds, cur, opts)
		if err != nil {
			t.Fatal(err)
		}
		filled += out.Filled
		if !out.Interrupted {
			return filled, interrupts
		}
		cur = out.At
		interrupts++
	}
}

// Colourings without islands: no region of one colour encloses another.
var patterns = []struct {
	name   string
	colors func(x, y int) int
}{
	{"stripes", func(x, y int) int { return 1 + x/5 }},
	{"diagonal", func(x, y int) int { return 1 + (x+y)/6 }},
	{"bands", func(x, y int) int { return 1 + max(x, y)/4 }},
	{"corner disc", func(x, y int) int {
		if x*x+y*y < 144 {
			return 2
		}
		return 1
	}},
	{"half plane", func(x, y int) int {
		if x+2*y < 30 {
			return 1
		}
		return 2
	}},
}

func TestMatchesExhaustive(t *testing.T) {
	const w, h = 40, 30
	full := image.Rect(0, 0, w, h)
	for _, p := range patterns {
		for _, every := range []int{0, 7, 13, 50} {
			s := newSurface(t, w, h, full, p.colors)
			s.every = every
			filled, interrupts := run(t, s, Options{})

			want := make([]int, w*h)
			for y := range h {
				for x := range w {
					want[y*w+x] = p.colors(x, y)
				}
			}
			if diff := cmp.Diff(want, s.grid); diff != "" {
				t.Errorf("%s every %d: grid differs from exhaustive (-want +got):\n%s", p.name, every, diff)
			}
			for i, n := range s.writes {
				if n != 1 {
					t.Errorf("%s every %d: pixel (%d, %d) written %d times", p.name, every, i%w, i/w, n)
					break
				}
			}
			if filled == 0 || s.computed+filled != w*h {
				t.Errorf("%s every %d: computed %d filled %d", p.name, every, s.computed, filled)
			}
			if every > 0 && interrupts == 0 {
				t.Errorf("%s every %d: never interrupted", p.name, every)
			}
		}
	}
}

func TestStaysInBounds(t *testing.T) {
	const w, h = 40, 30
	bounds := image.Rect(5, 3, 35, 25)
	for _, p := range patterns {
		s := newSurface(t, w, h, bounds, p.colors)
		s.every = 11
		run(t, s, Options{})
		for y := range h {
			for x := range w {
				want := 0
				if image.Pt(x, y).In(bounds) {
					want = p.colors(x, y)
				}
				if got := s.grid[y*w+x]; got != want {
					t.Fatalf("%s: (%d, %d) = %d, want %d", p.name, x, y, got, want)
				}
			}
		}
	}
}

func TestFillColor(t *testing.T) {
	const w, h = 40, 30
	s := newSurface(t, w, h, image.Rect(0, 0, w, h), patterns[0].colors)
	filled, _ := run(t, s, Options{FillColor: 99})
	n := 0
	for _, c := range s.grid {
		if c == 99 {
			n++
		}
	}
	if n == 0 || n != filled {
		t.Errorf("%d pixels in fill colour, %d filled", n, filled)
	}
}

func TestWalkLimit(t *testing.T) {
	s := newSurface(t, 40, 30, image.Rect(0, 0, 40, 30), patterns[0].colors)
	_, err := Trace(s, s.bounds, Start(s.bounds), Options{MaxSteps: 3})
	if !errors.Is(err, ErrWalkLimit) {
		t.Errorf("Trace() error = %v, want %v", err, ErrWalkLimit)
	}
}

func TestCheckColors(t *testing.T) {
	tests := []struct {
		inside, outside, colors int
		want                    error
	}{
		{100, 1, 0, nil},
		{100, 1, 256, nil},
		{0, 1, 256, ErrBackgroundColor},
		{100, 0, 256, ErrBackgroundColor},
		{100, 1, 8, ErrFewColors},
	}
	for _, tc := range tests {
		if err := CheckColors(tc.inside, tc.outside, tc.colors); !errors.Is(err, tc.want) {
			t.Errorf("CheckColors(%d, %d, %d) = %v, want %v", tc.inside, tc.outside, tc.colors, err, tc.want)
		}
	}
}
