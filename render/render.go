// Package render calculates tiles for the distributed renderer and paints
// colour indices as RGBA.
package render

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	fractal "github.com/LegalizeAdulthood/iterated-dynamics-sub025"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/engine"
)

// RendererImpl renders tiles on the local CPUs.
type RendererImpl struct {
	// OnTileRender is called before a tile is calculated.
	OnTileRender func(tile image.Rectangle)
	// Workers is the number of goroutines per tile; 0 uses every CPU.
	Workers int
	Logger  *slog.Logger
}

var _ fractal.Renderer = RendererImpl{}

// RenderTile implements fractal.Renderer.
func (imp RendererImpl) RenderTile(job fractal.Job, tile image.Rectangle) (fractal.TileResult, error) {
	if imp.OnTileRender != nil {
		imp.OnTileRender(tile)
	}
	cfg, err := job.Config()
	if err != nil {
		return fractal.TileResult{}, err
	}
	opts := []engine.Option{engine.WithBounds(tile)}
	if imp.Logger != nil {
		opts = append(opts, engine.WithLogger(imp.Logger))
	}
	e, err := engine.New(cfg, opts...)
	if err != nil {
		return fractal.TileResult{}, fmt.Errorf("tile %v: %w", tile, err)
	}
	if err := e.RunParallel(context.Background(), imp.Workers); err != nil {
		return fractal.TileResult{}, fmt.Errorf("tile %v: %w", tile, err)
	}
	return fractal.TileResult{Tile: tile, Colors: e.Grid().Pix, Warnings: e.Warnings()}, nil
}
