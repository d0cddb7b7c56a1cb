// main.go is a worker for the distributed fractal renderer.
// It connects to the server, renders the tiles it is handed, and saves the finished image as a PNG file.

package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"net"
	"os"

	"github.com/coder/websocket"
	"github.com/marben/irpc"
	"github.com/spf13/cobra"

	fractal "github.com/LegalizeAdulthood/iterated-dynamics-sub025"
	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/render"
)

type workerFlags struct {
	addr    string
	ws      string
	out     string
	workers int
}

// main is the entry point for the worker.
// Note: All rendering is performed by workers; the server only coordinates and distributes work.
func main() {
	if err := mainCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func mainCmd() *cobra.Command {
	var f workerFlags
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Render tiles for a fractal server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.addr, "addr", ":8081", "tcp address of the server")
	fl.StringVar(&f.ws, "ws", "", "websocket url of the server, used instead of --addr")
	fl.StringVar(&f.out, "out", "fractal.png", "file the finished image is saved to")
	fl.IntVar(&f.workers, "workers", 0, "goroutines per tile; 0 uses every CPU")
	return cmd
}

// dial connects over tcp, or over a websocket when a url is given.
func dial(ctx context.Context, f workerFlags) (io.ReadWriteCloser, error) {
	if f.ws != "" {
		c, _, err := websocket.Dial(ctx, f.ws, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", f.ws, err)
		}
		return websocket.NetConn(ctx, c, websocket.MessageBinary), nil
	}
	conn, err := net.Dial("tcp", f.addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	return conn, nil
}

// run connects to the server, renders until the image is done, and saves it.
func run(ctx context.Context, f workerFlags) error {
	log.Printf("Connecting to fractal server...")
	conn, err := dial(ctx, f)
	if err != nil {
		return err
	}
	defer conn.Close()

	// The renderer service is called by the server to render tiles using our CPU
	renderer := render.RendererImpl{
		Workers:      f.workers,
		OnTileRender: func(tile image.Rectangle) { log.Printf("Rendering tile: %s", tile) },
	}
	rendererService := fractal.NewRendererIrpcService(renderer)
	ep := irpc.NewEndpoint(conn, irpc.WithEndpointServices(rendererService))

	client, err := fractal.NewImageProviderIrpcClient(ep)
	if err != nil {
		return fmt.Errorf("failed to create ImageProvider client: %w", err)
	}

	log.Printf("Requesting fully rendered image from server...")
	img, err := client.GetImage()
	if err != nil {
		return fmt.Errorf("client.GetImage: %w", err)
	}

	log.Printf("Saving rendered image to %q...", f.out)
	if err := savePNG(f.out, &img); err != nil {
		return err
	}
	log.Printf("Fully rendered image saved to %q", f.out)
	return nil
}

func savePNG(name string, img image.Image) error {
	out, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return out.Close()
}
