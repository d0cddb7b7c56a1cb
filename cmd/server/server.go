package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"

	"github.com/marben/irpc"
	"github.com/spf13/cobra"

	fractal "github.com/LegalizeAdulthood/iterated-dynamics-sub025"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/engine"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/orbit"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/render"
)

type serverFlags struct {
	region   string
	formula  string
	mode     string
	width    int
	height   int
	maxIter  int
	tileSize int
	tcpAddr  string
	httpPort int
}

// main is the entry point for the fractal server.
// Note: All rendering is performed by connected workers; the server only coordinates and distributes work.
func main() {
	if err := mainCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func mainCmd() *cobra.Command {
	var f serverFlags
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Distribute the tiles of one fractal over connected workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.region, "region", "seahorse", "landmark to render")
	fl.StringVar(&f.formula, "formula", "mandel", "fractal formula")
	fl.StringVar(&f.mode, "mode", "one", "calculation mode: one, two or trace")
	fl.IntVar(&f.width, "width", 1920, "image width")
	fl.IntVar(&f.height, "height", 1080, "image height")
	fl.IntVar(&f.maxIter, "maxiter", 1000, "iteration limit")
	fl.IntVar(&f.tileSize, "tile", 64, "tile edge in pixels")
	fl.StringVar(&f.tcpAddr, "tcp", ":8081", "tcp listen address")
	fl.IntVar(&f.httpPort, "http", 8080, "http port for the websocket endpoint")
	return cmd
}

func jobFor(f serverFlags) (fractal.Job, engine.Config, error) {
	kind, err := orbit.ParseKind(f.formula)
	if err != nil {
		return fractal.Job{}, engine.Config{}, err
	}
	cfg, err := engine.ConfigFor(kind)
	if err != nil {
		return fractal.Job{}, engine.Config{}, err
	}
	region, err := fractal.LookupRegion(f.region)
	if err != nil {
		return fractal.Job{}, engine.Config{}, err
	}
	if cfg.Mode, err = engine.ParseMode(f.mode); err != nil {
		return fractal.Job{}, engine.Config{}, err
	}
	cfg.Window = region.Window()
	cfg.Width, cfg.Height = f.width, f.height
	cfg.MaxIter = f.maxIter
	if err := cfg.Validate(); err != nil {
		return fractal.Job{}, engine.Config{}, err
	}
	if f.tileSize < 1 {
		return fractal.Job{}, engine.Config{}, fmt.Errorf("tile size %d is not positive", f.tileSize)
	}
	return fractal.NewJob(cfg), cfg, nil
}

func run(ctx context.Context, f serverFlags) error {
	job, cfg, err := jobFor(f)
	if err != nil {
		return err
	}
	imgWorkScheduler := newImgWorkScheduler(job, render.PaletteFor(cfg), f.tileSize)

	// imageProviderIrpcService hands the finished image to workers that ask for it.
	// tileProviderIrpcService reports progress tile by tile.
	// Both are backed by the one scheduler so every client shares the same work.
	imageProviderIrpcService := fractal.NewImageProviderIrpcService(imgWorkScheduler)
	tileProviderIrpcService := fractal.NewTileProviderIrpcService(imgWorkScheduler)

	// irpc server with onConnect hook to plug clients into rendering
	irpcServer := irpc.NewServer(irpc.WithOnConnect(func(ep *irpc.Endpoint) {
		go func() {
			log.Printf("got connection from: %s", ep.RemoteAddr())

			// Each client provides a fractal.Renderer we use to render tiles of the full image
			rendererIrpcClient, err := fractal.NewRendererIrpcClient(ep)
			if err != nil {
				log.Printf("err: new Rendering client: %v", err)
				return
			}
			if err := imgWorkScheduler.render(rendererIrpcClient); err != nil {
				log.Printf("err: render on client %q: %v", ep.RemoteAddr(), err)
			}
		}()
	}))
	irpcServer.AddService(imageProviderIrpcService, tileProviderIrpcService)

	// TCP
	log.Printf("tcp listening on %s", f.tcpAddr)
	tcpListener, err := net.Listen("tcp", f.tcpAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener, httpServer := webServer(ctx, f.httpPort, imgWorkScheduler)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil {
			log.Fatalf("httpServer: %v", err)
		}
	}()

	// irpcServer can serve multiple listeners. In this case both tcp and websocket
	go func() {
		if err := irpcServer.Serve(tcpListener); err != nil {
			log.Fatalf("server.Serve tcp: %v", err)
		}
	}()
	go func() {
		if err := irpcServer.Serve(websocketListener); err != nil {
			log.Fatalf("server.Serve ws: %v", err)
		}
	}()

	log.Printf("%v server waiting for tcp and websocket connections, %d tiles", cfg.Formula, imgWorkScheduler.totalTiles)
	<-imgWorkScheduler.ctx.Done()
	log.Printf("image complete; serving it until interrupted")
	select {}
}
