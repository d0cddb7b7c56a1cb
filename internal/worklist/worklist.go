// Package worklist keeps the rectangles of an image that still need to be
// calculated.
//
// Bounds are inclusive. An entry whose XBegin/YBegin differ from its start
// was interrupted part way: rows above YBegin are done, and so are the
// columns left of XBegin on row YBegin.
package worklist

import (
	"errors"
	"fmt"
	"image"
	"slices"
)

// DefaultCapacity is how many entries a calculation keeps at most.
const DefaultCapacity = 12

var (
	ErrFull  = errors.New("worklist: list is full")
	ErrEmpty = errors.New("worklist: entry covers no pixels")
)

// Entry is one rectangle of work.
type Entry struct {
	XStart, XStop, XBegin int
	YStart, YStop, YBegin int
	Pass                  int
	Sym                   int
}

// FromRect returns a fresh entry covering r.
func FromRect(r image.Rectangle, pass, sym int) Entry {
	return Entry{
		XStart: r.Min.X, XStop: r.Max.X - 1, XBegin: r.Min.X,
		YStart: r.Min.Y, YStop: r.Max.Y - 1, YBegin: r.Min.Y,
		Pass: pass, Sym: sym,
	}
}

// Rect returns the half-open rectangle covered by e.
func (e Entry) Rect() image.Rectangle {
	return image.Rect(e.XStart, e.YStart, e.XStop+1, e.YStop+1)
}

// Fresh reports whether nothing of e has been calculated yet.
func (e Entry) Fresh() bool {
	return e.XBegin == e.XStart && e.YBegin == e.YStart
}

func (e Entry) validate() error {
	if e.XStart > e.XStop || e.YStart > e.YStop {
		return fmt.Errorf("%w: %+v", ErrEmpty, e)
	}
	return nil
}

// List is an ordered set of entries. The zero value is not usable; use New.
type List struct {
	entries  []Entry
	capacity int
}

// New returns an empty list holding at most capacity entries. A capacity of
// zero or less means no limit.
func New(capacity int) *List {
	return &List{capacity: capacity}
}

// FromEntries builds a tidied list from entries.
func FromEntries(capacity int, entries []Entry) (*List, error) {
	if capacity > 0 && len(entries) > capacity {
		return nil, fmt.Errorf("%w: %d entries, capacity %d", ErrFull, len(entries), capacity)
	}
	for _, e := range entries {
		if err := e.validate(); err != nil {
			return nil, err
		}
	}
	l := &List{entries: slices.Clone(entries), capacity: capacity}
	l.Tidy()
	return l, nil
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// Cap returns the capacity the list was created with.
func (l *List) Cap() int { return l.capacity }

// Entries returns a copy of the entries in order.
func (l *List) Entries() []Entry { return slices.Clone(l.entries) }

// Add appends e and tidies the list. A full list is left untouched.
func (l *List) Add(e Entry) error {
	if err := e.validate(); err != nil {
		return err
	}
	if l.capacity > 0 && len(l.entries) >= l.capacity {
		return ErrFull
	}
	l.entries = append(l.entries, e)
	l.Tidy()
	return nil
}

// Pop removes and returns the first entry.
func (l *List) Pop() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	e := l.entries[0]
	l.entries = slices.Delete(l.entries, 0, 1)
	return e, true
}

// Tidy merges entries that can be merged without changing what they cover
// and sorts the rest by pass, then top row, then left column.
func (l *List) Tidy() {
	for {
		j := l.combine()
		if j < 0 {
			break
		}
		l.entries = slices.Delete(l.entries, j, j+1)
	}
	slices.SortStableFunc(l.entries, func(a, b Entry) int {
		if a.Pass != b.Pass {
			return a.Pass - b.Pass
		}
		if a.YStart != b.YStart {
			return a.YStart - b.YStart
		}
		return a.XStart - b.XStart
	})
}

// combine merges one pair of entries into the earlier of the two and
// returns the index of the later, or -1 when nothing merges. Only entries
// with untouched rows take part, and the later one must be fresh.
func (l *List) combine() int {
	es := l.entries
	for i := range es {
		a := &es[i]
		if a.YStart != a.YBegin {
			continue
		}
		for j := i + 1; j < len(es); j++ {
			b := es[j]
			if b.Sym != a.Sym || b.Pass != a.Pass || !b.Fresh() {
				continue
			}
			if a.XStart == b.XStart && a.XBegin == b.XBegin && a.XStop == b.XStop {
				switch {
				case a.YStop+1 == b.YStart:
					a.YStop = b.YStop
					return j
				case b.YStop+1 == a.YStart:
					a.YStart, a.YBegin = b.YStart, b.YBegin
					return j
				}
			}
			if a.YStart == b.YStart && a.YBegin == b.YBegin && a.YStop == b.YStop {
				switch {
				case a.XStop+1 == b.XStart:
					a.XStop = b.XStop
					return j
				case b.XStop+1 == a.XStart:
					a.XStart, a.XBegin = b.XStart, b.XBegin
					return j
				}
			}
		}
	}
	return -1
}

// Split cuts r into tiles of at most tileW x tileH pixels, row by row.
// Tiles on the right and bottom edges are smaller when r does not divide.
func Split(r image.Rectangle, tileW, tileH, pass, sym int) []Entry {
	if tileW <= 0 || tileH <= 0 {
		panic("worklist: tile dimensions must be positive")
	}
	var tiles []Entry
	for y := r.Min.Y; y < r.Max.Y; y += tileH {
		y1 := min(y+tileH, r.Max.Y)
		for x := r.Min.X; x < r.Max.X; x += tileW {
			x1 := min(x+tileW, r.Max.X)
			tiles = append(tiles, FromRect(image.Rect(x, y, x1, y1), pass, sym))
		}
	}
	return tiles
}
