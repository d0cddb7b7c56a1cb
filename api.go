// Package fractal is the network surface of the distributed renderer: the
// services a server and its workers offer each other, and the job they
// share. The irpc stubs for the interfaces below live in api_irpc.go.
package fractal

import (
	"fmt"
	"image"
	"slices"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/bailout"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/engine"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/orbit"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/precision"
)

//go:generate go run github.com/marben/irpc/cmd/irpc api.go

// ImageProvider hands out the finished image.
type ImageProvider interface {
	GetImage() (image.RGBA, error)
}

// Renderer calculates one tile of a job. Every connected worker offers one.
type Renderer interface {
	RenderTile(job Job, tile image.Rectangle) (TileResult, error)
}

// TileProvider reports rendering progress tile by tile.
type TileProvider interface {
	FullImageDimensions() (int, int, error)
	TotalTilesCount() (int, error)
	FinishedTiles() (map[image.Rectangle]struct{}, error)
	GetTileImg(tile image.Rectangle) (*image.RGBA, error)
	WorkersCount() (int, error)
}

// Job is an engine configuration in a form that travels over the wire.
// Window corners are decimal strings so deep zooms keep every digit.
type Job struct {
	Width, Height          int
	Xmin, Xmax, Ymin, Ymax string
	Formula                string
	Params                 []float64
	Power                  int
	MaxIter                int
	Limit                  float64
	Test                   string
	Periodicity            int
	Mode                   string
	Symmetry               string
	InsideColor            int
	OutsideColor           int
	Colors                 int
	// Precision forces an arithmetic; empty picks one from the window.
	Precision string
}

// TileResult holds the colours of a tile in row-major order.
type TileResult struct {
	Tile     image.Rectangle
	Colors   []int
	Warnings []string
}

// At returns the colour of (x, y), which must lie in the tile.
func (r TileResult) At(x, y int) int {
	return r.Colors[(y-r.Tile.Min.Y)*r.Tile.Dx()+x-r.Tile.Min.X]
}

// NewJob describes cfg. Settings that only matter to a local run, such as
// polling and tiling, are left out.
func NewJob(cfg engine.Config) Job {
	j := Job{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Xmin:         cfg.Window.XMin.Text('g', -1),
		Xmax:         cfg.Window.XMax.Text('g', -1),
		Ymin:         cfg.Window.YMin.Text('g', -1),
		Ymax:         cfg.Window.YMax.Text('g', -1),
		Formula:      cfg.Formula.String(),
		Params:       slices.Clone(cfg.Params[:]),
		Power:        cfg.Power,
		MaxIter:      cfg.MaxIter,
		Limit:        cfg.Limit,
		Test:         cfg.Test.String(),
		Periodicity:  cfg.Periodicity,
		Mode:         cfg.Mode.String(),
		Symmetry:     cfg.Symmetry.String(),
		InsideColor:  cfg.InsideColor,
		OutsideColor: cfg.OutsideColor,
		Colors:       cfg.Colors,
	}
	if cfg.ForcePrecision {
		j.Precision = cfg.Precision.String()
	}
	return j
}

// Config turns j back into a validated engine configuration.
func (j Job) Config() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	var err error
	if cfg.Window, err = precision.ParseWindow(j.Xmin, j.Xmax, j.Ymin, j.Ymax); err != nil {
		return cfg, fmt.Errorf("job window: %w", err)
	}
	if cfg.Formula, err = orbit.ParseKind(j.Formula); err != nil {
		return cfg, err
	}
	if cfg.Test, err = bailout.ParseTest(j.Test); err != nil {
		return cfg, err
	}
	if cfg.Mode, err = engine.ParseMode(j.Mode); err != nil {
		return cfg, err
	}
	if cfg.Symmetry, err = engine.ParseSymmetry(j.Symmetry); err != nil {
		return cfg, err
	}
	if len(j.Params) > len(cfg.Params) {
		return cfg, fmt.Errorf("job has %d parameters, at most %d are used", len(j.Params), len(cfg.Params))
	}
	copy(cfg.Params[:], j.Params)
	if j.Precision != "" {
		cfg.ForcePrecision = true
		if cfg.Precision, err = precision.ParseKind(j.Precision); err != nil {
			return cfg, err
		}
	}
	cfg.Width, cfg.Height = j.Width, j.Height
	cfg.Power = j.Power
	cfg.MaxIter = j.MaxIter
	cfg.Limit = j.Limit
	cfg.Periodicity = j.Periodicity
	cfg.InsideColor = j.InsideColor
	cfg.OutsideColor = j.OutsideColor
	cfg.Colors = j.Colors
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("job: %w", err)
	}
	return cfg, nil
}
