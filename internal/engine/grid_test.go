package engine

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/worklist"
)

func TestGridOutside(t *testing.T) {
	g := NewGrid(image.Rect(2, 3, 5, 5))
	g.Set(4, 4, 9)
	g.Set(5, 4, 9)
	g.Set(1, 3, 9)
	if got := g.At(4, 4); got != 9 {
		t.Errorf("At(4, 4) = %d, want 9", got)
	}
	if got := g.At(5, 4); got != 0 {
		t.Errorf("At(5, 4) = %d, want 0", got)
	}
	want := []int{0, 0, 0, 0, 0, 9}
	if diff := cmp.Diff(want, g.Pix); diff != "" {
		t.Errorf("Pix mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeGrid(t *testing.T) {
	g := NewGrid(image.Rect(1, 1, 4, 3))
	for i := range g.Pix {
		g.Pix[i] = i * 3
	}
	w := worklist.NewWriter(1)
	g.Encode(w)
	blob := w.Bytes()

	got, err := DecodeGrid(worklist.NewReader(blob))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(g, got); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}

	if _, err := DecodeGrid(worklist.NewReader(blob[:len(blob)-1])); !errors.Is(err, worklist.ErrTruncated) {
		t.Errorf("DecodeGrid(truncated) error = %v, want %v", err, worklist.ErrTruncated)
	}

	w = worklist.NewWriter(1)
	for _, v := range []int{0, 0, 1 << 20, 1 << 20} {
		w.Int(v)
	}
	if _, err := DecodeGrid(worklist.NewReader(w.Bytes())); !errors.Is(err, ErrGridSize) {
		t.Errorf("DecodeGrid(huge) error = %v, want %v", err, ErrGridSize)
	}
}
