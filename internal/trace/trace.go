// Package trace fills uniform regions of an image by walking their outline
// instead of calculating every pixel inside.
//
// Rows are scanned top to bottom. When a freshly calculated pixel has the
// same colour as the one calculated before it on the row, the outline of
// that colour is walked clockwise from there, calculating each pixel the
// walk looks at. An outline with more than three steps is walked a second
// time and every row it crosses heading south (or west, unless it just came
// from the east) is filled leftwards across pixels not yet calculated. This
// is exact only when no region of one colour encloses a region of another.
package trace

import (
	"errors"
	"fmt"
	"image"
)

// Background is the colour of a pixel not calculated yet.
const Background = 0

// MinColors is the smallest palette size tracing works with.
const MinColors = 16

var (
	ErrBackgroundColor = errors.New("trace: inside and outside colours must not be 0")
	ErrFewColors       = errors.New("trace: needs at least 16 colours")
	// ErrWalkLimit aborts a walk that ran past its step budget. The pixels
	// already written stay valid; the rest of the region can be calculated
	// pixel by pixel.
	ErrWalkLimit = errors.New("trace: outline walk exceeded its step budget")
)

// CheckColors reports whether a calculation with the given colours can be
// traced. colors of 0 means iteration counts are used unreduced.
func CheckColors(inside, outside, colors int) error {
	if inside == Background || outside == Background {
		return ErrBackgroundColor
	}
	if colors > 0 && colors < MinColors {
		return fmt.Errorf("%w: %d", ErrFewColors, colors)
	}
	return nil
}

// Surface is the image being traced.
type Surface interface {
	// Color returns the colour already at (x, y), or Background.
	Color(x, y int) int
	// Compute calculates and plots (x, y). ok is false when the
	// calculation was interrupted, leaving the pixel unplotted.
	Compute(x, y int) (color int, ok bool)
	// FillRow plots color on row y from left to right inclusive.
	FillRow(y, left, right, color int)
	// ResetPeriodicity makes the next calculated pixel start periodicity
	// checking late, as at the start of a row.
	ResetPeriodicity()
}

// Cursor is where a trace starts or stopped.
type Cursor struct {
	Col, Row int
	// Trail is the colour of the last pixel calculated on Row before Col.
	Trail int
	// Pending is set when Col, Row was calculated but the walk that
	// started there was interrupted; the walk is redone on resume.
	Pending bool
}

// Start returns the cursor for a fresh trace of bounds.
func Start(bounds image.Rectangle) Cursor {
	return Cursor{Col: bounds.Min.X, Row: bounds.Min.Y, Trail: Background}
}

// Options tune a trace.
type Options struct {
	// FillColor, when positive, is plotted instead of the outline colour.
	FillColor int
	// MaxSteps bounds each walk. Zero picks a budget from the area.
	MaxSteps int
}

// Outcome reports how a trace ended.
type Outcome struct {
	// Interrupted is set when a calculation was interrupted; At is where
	// to resume.
	Interrupted bool
	At          Cursor
	// Computed counts pixels calculated, Filled pixels filled.
	Computed, Filled int
}

type direction int

const (
	north direction = iota
	east
	south
	west
)

func advance(d direction, inc int) direction {
	return direction((int(d) + inc) & 3)
}

func (d direction) step(col, row int) (int, int) {
	switch d {
	case north:
		return col, row - 1
	case east:
		return col + 1, row
	case south:
		return col, row + 1
	}
	return col - 1, row
}

type tracer struct {
	s        Surface
	b        image.Rectangle
	fill     int
	maxSteps int
	out      Outcome
}

// inside reports whether the pixel at (col, row) may be used by a walk that
// started on row top.
func (t *tracer) inside(col, row, top int) bool {
	return row >= top && row < t.b.Max.Y && col >= t.b.Min.X && col < t.b.Max.X
}

// Trace traces the rows of bounds from the cursor on. Pixels outside bounds
// are never read or written.
func Trace(s Surface, bounds image.Rectangle, from Cursor, opts Options) (Outcome, error) {
	t := &tracer{s: s, b: bounds, fill: opts.FillColor, maxSteps: opts.MaxSteps}
	if t.maxSteps <= 0 {
		t.maxSteps = 8*bounds.Dx()*bounds.Dy() + 64
	}
	for row := from.Row; row < bounds.Max.Y; row++ {
		col, trail := bounds.Min.X, Background
		pending := false
		if row == from.Row {
			col, trail, pending = from.Col, from.Trail, from.Pending
		}
		if col == bounds.Min.X && !pending {
			s.ResetPeriodicity()
		}
		for ; col < bounds.Max.X; col++ {
			var color int
			switch {
			case pending:
				color = s.Color(col, row)
				pending = false
			case s.Color(col, row) != Background:
				continue
			default:
				var ok bool
				color, ok = s.Compute(col, row)
				if !ok {
					t.out.Interrupted = true
					t.out.At = Cursor{Col: col, Row: row, Trail: trail}
					return t.out, nil
				}
				t.out.Computed++
			}
			if color != trail {
				trail = color
				continue
			}
			at := Cursor{Col: col, Row: row, Trail: trail, Pending: true}
			matches, ok, err := t.outline(col, row, color)
			if err != nil {
				return t.out, err
			}
			if !ok {
				t.out.Interrupted = true
				t.out.At = at
				return t.out, nil
			}
			if matches > 3 {
				if err := t.fillInside(col, row, color); err != nil {
					return t.out, err
				}
			}
			s.ResetPeriodicity()
			trail = Background
		}
	}
	return t.out, nil
}

// outline walks the outline of color clockwise from (col, row), calculating
// the pixels it looks at. It returns the number of steps taken along the
// outline, capped at 4.
func (t *tracer) outline(col, row, color int) (matches int, ok bool, err error) {
	tc, tr := col, row
	going, coming := east, west
	for steps := 0; ; steps++ {
		if steps > t.maxSteps {
			return matches, true, fmt.Errorf("%w: from (%d, %d)", ErrWalkLimit, col, row)
		}
		c, r := going.step(tc, tr)
		more := true
		if t.inside(c, r, row) {
			got := t.s.Color(c, r)
			if got == Background {
				var computed bool
				got, computed = t.s.Compute(c, r)
				if !computed {
					return matches, false, nil
				}
				t.out.Computed++
			}
			if got == color {
				matches = min(matches+1, 4)
				tc, tr = c, r
				going = advance(going, -1)
				coming = advance(going, -1)
			} else {
				going = advance(going, 1)
				more = going != coming || matches > 0
			}
		} else {
			going = advance(going, 1)
			more = going != coming || matches > 0
		}
		if !more || (c == col && r == row) {
			return matches, true, nil
		}
	}
}

// fillInside walks the outline of color again and fills leftwards from it.
func (t *tracer) fillInside(col, row, color int) error {
	fill := color
	if t.fill > 0 {
		fill = t.fill
	}
	tc, tr := col, row
	going, coming := east, west
	steps := 0
	for {
		found := false
		for {
			if steps++; steps > t.maxSteps {
				return fmt.Errorf("%w: filling from (%d, %d)", ErrWalkLimit, col, row)
			}
			c, r := going.step(tc, tr)
			if t.inside(c, r, row) && t.s.Color(c, r) == color {
				if going == south || (going == west && coming != east) {
					t.fillLeft(c, r, color, fill)
				}
				tc, tr = c, r
				going = advance(going, -1)
				coming = advance(going, -1)
				found = true
				break
			}
			going = advance(going, 1)
			if going == coming {
				break
			}
		}
		if !found {
			// The way back always matches.
			tc, tr = going.step(tc, tr)
			going = advance(going, -1)
			coming = advance(going, -1)
		}
		if tc == col && tr == row {
			return nil
		}
	}
}

// fillLeft skips the outline pixels left of (col, row) and fills the run of
// uncalculated pixels behind them.
func (t *tracer) fillLeft(col, row, color, fill int) {
	right := col - 1
	for right >= t.b.Min.X && t.s.Color(right, row) == color {
		right--
	}
	if right < t.b.Min.X || t.s.Color(right, row) != Background {
		return
	}
	left := right
	for left > t.b.Min.X && t.s.Color(left-1, row) == Background {
		left--
	}
	t.s.FillRow(row, left, right, fill)
	t.out.Filled += right - left + 1
}
