package engine

import (
	"errors"
	"fmt"
	"image"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/worklist"
)

// maxGridPixels bounds grids read back from saved state.
const maxGridPixels = 1 << 28

var ErrGridSize = errors.New("engine: grid size out of range")

// Grid holds one colour per pixel of Rect. Colour 0 marks a pixel that has
// not been calculated yet.
type Grid struct {
	Rect image.Rectangle
	Pix  []int
}

// NewGrid returns an empty grid over r.
func NewGrid(r image.Rectangle) *Grid {
	return &Grid{Rect: r, Pix: make([]int, r.Dx()*r.Dy())}
}

func (g *Grid) offset(x, y int) int {
	return (y-g.Rect.Min.Y)*g.Rect.Dx() + (x - g.Rect.Min.X)
}

// At returns the colour at (x, y), or 0 outside the grid.
func (g *Grid) At(x, y int) int {
	if !(image.Point{x, y}.In(g.Rect)) {
		return 0
	}
	return g.Pix[g.offset(x, y)]
}

// Set stores the colour at (x, y). Points outside the grid are ignored.
func (g *Grid) Set(x, y, color int) {
	if !(image.Point{x, y}.In(g.Rect)) {
		return
	}
	g.Pix[g.offset(x, y)] = color
}

// Encode appends the grid to w.
func (g *Grid) Encode(w *worklist.Writer) {
	w.Int(g.Rect.Min.X)
	w.Int(g.Rect.Min.Y)
	w.Int(g.Rect.Max.X)
	w.Int(g.Rect.Max.Y)
	for _, c := range g.Pix {
		w.Int(c)
	}
}

// DecodeGrid reads a grid written by Encode.
func DecodeGrid(r *worklist.Reader) (*Grid, error) {
	rect := image.Rect(r.Int(), r.Int(), r.Int(), r.Int())
	if err := r.Err(); err != nil {
		return nil, err
	}
	if rect.Empty() || rect.Dx() > maxGridPixels || rect.Dy() > maxGridPixels/rect.Dx() {
		return nil, fmt.Errorf("%w: %v", ErrGridSize, rect)
	}
	g := NewGrid(rect)
	for i := range g.Pix {
		g.Pix[i] = r.Int()
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
