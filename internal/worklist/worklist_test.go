package worklist

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tile(x0, x1, y0, y1 int) Entry {
	return Entry{XStart: x0, XStop: x1, XBegin: x0, YStart: y0, YStop: y1, YBegin: y0}
}

func TestTidyMergesAdjacent(t *testing.T) {
	l := New(DefaultCapacity)
	for _, e := range []Entry{tile(0, 31, 40, 50), tile(32, 63, 0, 31), tile(0, 31, 0, 31)} {
		if err := l.Add(e); err != nil {
			t.Fatal(err)
		}
	}
	want := []Entry{tile(0, 63, 0, 31), tile(0, 31, 40, 50)}
	if diff := cmp.Diff(want, l.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestTidyMergeRules(t *testing.T) {
	interrupted := tile(0, 9, 10, 19)
	interrupted.XBegin = 4
	interrupted.YBegin = 12

	tests := []struct {
		name string
		in   []Entry
		want []Entry
	}{
		{
			name: "vertical",
			in:   []Entry{tile(0, 9, 10, 19), tile(0, 9, 0, 9)},
			want: []Entry{tile(0, 9, 0, 19)},
		},
		{
			name: "different pass",
			in:   []Entry{tile(0, 9, 0, 9), {XStart: 10, XStop: 19, XBegin: 10, YStop: 9, Pass: 1}},
			want: []Entry{tile(0, 9, 0, 9), {XStart: 10, XStop: 19, XBegin: 10, YStop: 9, Pass: 1}},
		},
		{
			name: "different symmetry",
			in:   []Entry{tile(0, 9, 0, 9), {XStart: 10, XStop: 19, XBegin: 10, YStop: 9, Sym: 1}},
			want: []Entry{tile(0, 9, 0, 9), {XStart: 10, XStop: 19, XBegin: 10, YStop: 9, Sym: 1}},
		},
		{
			name: "misaligned",
			in:   []Entry{tile(0, 9, 0, 9), tile(10, 19, 0, 8)},
			want: []Entry{tile(0, 9, 0, 9), tile(10, 19, 0, 8)},
		},
		{
			name: "gap",
			in:   []Entry{tile(0, 9, 0, 9), tile(11, 19, 0, 9)},
			want: []Entry{tile(0, 9, 0, 9), tile(11, 19, 0, 9)},
		},
		{
			name: "interrupted stays apart",
			in:   []Entry{tile(0, 9, 0, 9), interrupted},
			want: []Entry{tile(0, 9, 0, 9), interrupted},
		},
		{
			name: "sorted by pass then row then column",
			in: []Entry{
				{XStart: 0, XStop: 3, YStart: 0, YStop: 3, Pass: 1},
				tile(20, 29, 5, 9),
				tile(0, 9, 5, 9),
			},
			want: []Entry{
				tile(0, 9, 5, 9),
				tile(20, 29, 5, 9),
				{XStart: 0, XStop: 3, YStart: 0, YStop: 3, Pass: 1},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := FromEntries(DefaultCapacity, tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, l.Entries()); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// cover counts how many entries cover each pixel.
func cover(es []Entry) map[image.Point]int {
	m := make(map[image.Point]int)
	for _, e := range es {
		r := e.Rect()
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				m[image.Pt(x, y)]++
			}
		}
	}
	return m
}

func TestTidyIdempotentAndCovering(t *testing.T) {
	in := Split(image.Rect(0, 0, 40, 30), 8, 8, 0, 0)
	in = append(in, FromRect(image.Rect(50, 0, 60, 5), 1, 0))
	l, err := FromEntries(0, in)
	if err != nil {
		t.Fatal(err)
	}
	once := l.Entries()
	if len(once) >= len(in) {
		t.Errorf("tidy left %d of %d entries", len(once), len(in))
	}
	l.Tidy()
	if diff := cmp.Diff(once, l.Entries()); diff != "" {
		t.Errorf("second tidy changed the list (-once +twice):\n%s", diff)
	}
	if diff := cmp.Diff(cover(in), cover(once)); diff != "" {
		t.Errorf("coverage changed (-before +after):\n%s", diff)
	}
}

func TestAddFull(t *testing.T) {
	l := New(DefaultCapacity)
	for i := range DefaultCapacity {
		if err := l.Add(tile(0, 9, 2*i, 2*i)); err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
	}
	if err := l.Add(tile(0, 9, 100, 100)); !errors.Is(err, ErrFull) {
		t.Errorf("Add() on a full list error = %v, want %v", err, ErrFull)
	}
	if l.Len() != DefaultCapacity {
		t.Errorf("Len() = %d after a failed add", l.Len())
	}
	if err := l.Add(tile(5, 1, 0, 0)); !errors.Is(err, ErrEmpty) {
		t.Errorf("Add(empty) error = %v, want %v", err, ErrEmpty)
	}
}

func TestPop(t *testing.T) {
	l, err := FromEntries(0, []Entry{tile(0, 1, 5, 5), tile(0, 1, 0, 0)})
	if err != nil {
		t.Fatal(err)
	}
	var got []Entry
	for {
		e, ok := l.Pop()
		if !ok {
			break
		}
		got = append(got, e)
	}
	if diff := cmp.Diff([]Entry{tile(0, 1, 0, 0), tile(0, 1, 5, 5)}, got); diff != "" {
		t.Errorf("pop order mismatch (-want +got):\n%s", diff)
	}
}

func TestSplit(t *testing.T) {
	got := Split(image.Rect(10, 20, 110, 70), 64, 32, 0, 0)
	want := []image.Rectangle{
		image.Rect(10, 20, 74, 52),
		image.Rect(74, 20, 110, 52),
		image.Rect(10, 52, 74, 70),
		image.Rect(74, 52, 110, 70),
	}
	var rects []image.Rectangle
	for _, e := range got {
		rects = append(rects, e.Rect())
	}
	if diff := cmp.Diff(want, rects); diff != "" {
		t.Errorf("tiles mismatch (-want +got):\n%s", diff)
	}
}
