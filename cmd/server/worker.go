package main

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"log"
	"sync"

	fractal "github.com/LegalizeAdulthood/iterated-dynamics-sub025"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/worklist"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/render"
)

// imgWorkScheduler hands the tiles of one job to every connected renderer
// and stitches the results into a single image.
type imgWorkScheduler struct {
	workers int
	job     fractal.Job
	palette render.Palette
	img     *image.RGBA

	ctx       context.Context
	ctxCancel context.CancelFunc

	totalPixels    int
	finishedPixels int
	totalTiles     int

	unstarted []image.Rectangle
	inProcess map[image.Rectangle]struct{}
	done      map[image.Rectangle]struct{}
	m         sync.Mutex
}

func newImgWorkScheduler(job fractal.Job, palette render.Palette, tileSize int) *imgWorkScheduler {
	img := image.NewRGBA(image.Rect(0, 0, job.Width, job.Height))
	var tiles []image.Rectangle
	for _, ent := range worklist.Split(img.Bounds(), tileSize, tileSize, 0, 0) {
		tiles = append(tiles, ent.Rect())
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &imgWorkScheduler{
		job:         job,
		palette:     palette,
		img:         img,
		unstarted:   tiles,
		inProcess:   make(map[image.Rectangle]struct{}),
		done:        make(map[image.Rectangle]struct{}),
		totalPixels: job.Width * job.Height,
		totalTiles:  len(tiles),
		ctx:         ctx,
		ctxCancel:   cancel,
	}
}

func (iws *imgWorkScheduler) popTile() (tile image.Rectangle, found bool) {
	iws.m.Lock()
	defer iws.m.Unlock()

	// Get unstarted tile
	if len(iws.unstarted) > 0 {
		tile = iws.unstarted[0]
		iws.unstarted = iws.unstarted[1:]

		// Move popped tile to currently processed tiles
		iws.inProcess[tile] = struct{}{}
		return tile, true
	}

	// If there is no unstarted tile, we work again on a started one
	for tile = range iws.inProcess {
		return tile, true
	}

	return image.Rectangle{}, false
}

// GetImage implements fractal.ImageProvider. It blocks until every tile is
// done.
func (iws *imgWorkScheduler) GetImage() (image.RGBA, error) {
	<-iws.ctx.Done()
	iws.m.Lock()
	defer iws.m.Unlock()
	return *iws.img, nil
}

// FullImageDimensions implements fractal.TileProvider.
func (iws *imgWorkScheduler) FullImageDimensions() (int, int, error) {
	return iws.job.Width, iws.job.Height, nil
}

// TotalTilesCount implements fractal.TileProvider.
func (iws *imgWorkScheduler) TotalTilesCount() (int, error) {
	return iws.totalTiles, nil
}

// FinishedTiles implements fractal.TileProvider.
func (iws *imgWorkScheduler) FinishedTiles() (map[image.Rectangle]struct{}, error) {
	iws.m.Lock()
	defer iws.m.Unlock()
	done := make(map[image.Rectangle]struct{}, len(iws.done))
	for t := range iws.done {
		done[t] = struct{}{}
	}
	return done, nil
}

// GetTileImg implements fractal.TileProvider.
func (iws *imgWorkScheduler) GetTileImg(tile image.Rectangle) (*image.RGBA, error) {
	iws.m.Lock()
	defer iws.m.Unlock()
	if _, ok := iws.done[tile]; !ok {
		return nil, fmt.Errorf("tile %v is not finished", tile)
	}
	tileImg := image.NewRGBA(tile)
	draw.Draw(tileImg, tile, iws.img, tile.Min, draw.Src)
	return tileImg, nil
}

// WorkersCount implements fractal.TileProvider.
func (iws *imgWorkScheduler) WorkersCount() (int, error) {
	iws.m.Lock()
	defer iws.m.Unlock()
	return iws.workers, nil
}

func (iws *imgWorkScheduler) finished() float32 {
	iws.m.Lock()
	defer iws.m.Unlock()
	return float32(iws.finishedPixels) / float32(iws.totalPixels)
}

func (iws *imgWorkScheduler) tileFinished(res fractal.TileResult) error {
	rect := res.Tile
	if len(res.Colors) != rect.Dx()*rect.Dy() {
		return fmt.Errorf("tile %v came back with %d colours", rect, len(res.Colors))
	}
	for _, w := range res.Warnings {
		log.Printf("tile %v: %s", rect, w)
	}

	iws.m.Lock()
	_, found := iws.inProcess[rect]
	if found {
		iws.palette.Draw(iws.img, rect, res.Colors)
		iws.finishedPixels += rect.Dx() * rect.Dy()
		iws.done[rect] = struct{}{}
		delete(iws.inProcess, rect)
	}
	if len(iws.unstarted) == 0 && len(iws.inProcess) == 0 {
		iws.ctxCancel()
	}
	iws.m.Unlock()

	log.Printf("finished: %f", iws.finished())
	return nil
}

func (iws *imgWorkScheduler) incActiveWorker() {
	iws.m.Lock()
	iws.workers++
	w := iws.workers
	iws.m.Unlock()

	log.Printf("workers: %d", w)
}

func (iws *imgWorkScheduler) decActiveWorkers() {
	iws.m.Lock()
	iws.workers--
	w := iws.workers
	iws.m.Unlock()

	log.Printf("workers: %d", w)
}

// render renders unfinished tiles on the provided Renderer until none are
// left. It can be called from multiple goroutines in parallel; a renderer
// that fails is dropped and its tile stays in process for the others.
func (iws *imgWorkScheduler) render(renderer fractal.Renderer) error {
	iws.incActiveWorker()
	defer iws.decActiveWorkers()

	for {
		tile, found := iws.popTile()
		if !found {
			return nil
		}
		res, err := renderer.RenderTile(iws.job, tile)
		if err != nil {
			return fmt.Errorf("render of tile %v: %w", tile, err)
		}
		if err := iws.tileFinished(res); err != nil {
			return err
		}
	}
}
