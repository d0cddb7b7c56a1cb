package render

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	fractal "github.com/LegalizeAdulthood/iterated-dynamics-sub025"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/engine"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/precision"
)

func smallConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Width, cfg.Height = 40, 30
	cfg.Window = precision.NewWindow(-2, 1, -1.2, 1.2)
	cfg.MaxIter = 100
	return cfg
}

func TestTilesMatchWholeImage(t *testing.T) {
	cfg := smallConfig()
	e, err := engine.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	whole := e.Grid()

	var seen []image.Rectangle
	imp := RendererImpl{Workers: 2, OnTileRender: func(r image.Rectangle) { seen = append(seen, r) }}
	job := fractal.NewJob(cfg)
	for _, tile := range []image.Rectangle{image.Rect(0, 0, 16, 16), image.Rect(16, 10, 40, 30)} {
		res, err := imp.RenderTile(job, tile)
		if err != nil {
			t.Fatal(err)
		}
		if res.Tile != tile || len(res.Colors) != tile.Dx()*tile.Dy() {
			t.Fatalf("RenderTile(%v) returned %v with %d colours", tile, res.Tile, len(res.Colors))
		}
		for y := tile.Min.Y; y < tile.Max.Y; y++ {
			for x := tile.Min.X; x < tile.Max.X; x++ {
				if got, want := res.At(x, y), whole.At(x, y); got != want {
					t.Errorf("pixel (%d, %d) = %d, want %d", x, y, got, want)
				}
			}
		}
	}
	if len(seen) != 2 {
		t.Errorf("OnTileRender called %d times, want 2", len(seen))
	}
}

func TestRenderTileOutside(t *testing.T) {
	_, err := RendererImpl{}.RenderTile(fractal.NewJob(smallConfig()), image.Rect(30, 20, 50, 40))
	if err == nil {
		t.Errorf("RenderTile() of a tile past the image succeeded")
	}
}

func TestPalette(t *testing.T) {
	p := NewPalette(16, 100)
	tests := []struct {
		index int
		want  color.RGBA
	}{
		{0, black},
		{100, black},
		{1, p.Colors[1]},
		{17, p.Colors[1]},
	}
	for _, tc := range tests {
		if got := p.RGBA(tc.index); got != tc.want {
			t.Errorf("RGBA(%d) = %v, want %v", tc.index, got, tc.want)
		}
	}
	if got := hsv(0, 1, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("hsv(0, 1, 1) = %v, want red", got)
	}

	g := engine.NewGrid(image.Rect(1, 1, 3, 2))
	g.Pix = []int{0, 1}
	img := p.Image(g)
	want := []color.RGBA{black, p.Colors[1]}
	got := []color.RGBA{img.RGBAAt(1, 1), img.RGBAAt(2, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Image() mismatch (-want +got):\n%s", diff)
	}
}
