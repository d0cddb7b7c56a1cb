package fractal

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/marben/irpc"
)

// localEndpoints connects two irpc endpoints over a loopback tcp connection.
func localEndpoints(t *testing.T) (local, remote *irpc.Endpoint) {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	accepted := make(chan net.Conn, 1)
	go func() {
		conn, _ := l.Accept()
		accepted <- conn
	}()
	dialed, err := net.Dial("tcp", l.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	conn := <-accepted
	if conn == nil {
		dialed.Close()
		t.Fatal("accept failed")
	}
	local, remote = irpc.NewEndpoint(dialed), irpc.NewEndpoint(conn)
	t.Cleanup(func() {
		local.Close()
		remote.Close()
	})
	return local, remote
}

type echoRenderer struct{}

func (echoRenderer) RenderTile(job Job, tile image.Rectangle) (TileResult, error) {
	if job.Formula == "" {
		return TileResult{}, errors.New("job has no formula")
	}
	return TileResult{
		Tile:     tile,
		Colors:   []int{job.MaxIter, job.Width, len(job.Params)},
		Warnings: []string{job.Formula, job.Xmin, job.Precision},
	}, nil
}

func TestRendererOverIrpc(t *testing.T) {
	local, remote := localEndpoints(t)
	remote.RegisterService(NewRendererIrpcService(echoRenderer{}))
	c, err := NewRendererIrpcClient(local)
	if err != nil {
		t.Fatal(err)
	}

	tile := image.Rect(64, 32, 128, 64)
	job := Job{
		Width: 640, Height: 480,
		Xmin: "-0.74350000000000000000001", Xmax: "-0.742", Ymin: "0.131", Ymax: "0.1325",
		Formula: "julia", Params: []float64{0.3, 0.6}, MaxIter: 1500, Limit: 4,
		Precision: "bigint",
	}
	tests := []struct {
		name    string
		job     Job
		want    TileResult
		wantErr string
	}{
		{
			name: "tile",
			job:  job,
			want: TileResult{
				Tile:     tile,
				Colors:   []int{1500, 640, 2},
				Warnings: []string{"julia", "-0.74350000000000000000001", "bigint"},
			},
		},
		{name: "remote error", job: Job{Width: 1}, wantErr: "job has no formula"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.RenderTile(tt.job, tile)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("RenderTile() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tile result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type fixedProgress struct {
	img  *image.RGBA
	done map[image.Rectangle]struct{}
}

func (p fixedProgress) GetImage() (image.RGBA, error) { return *p.img, nil }

func (p fixedProgress) FullImageDimensions() (int, int, error) {
	return p.img.Rect.Dx(), p.img.Rect.Dy(), nil
}

func (p fixedProgress) TotalTilesCount() (int, error) { return 4, nil }

func (p fixedProgress) FinishedTiles() (map[image.Rectangle]struct{}, error) { return p.done, nil }

func (p fixedProgress) GetTileImg(tile image.Rectangle) (*image.RGBA, error) {
	if _, ok := p.done[tile]; !ok {
		return nil, fmt.Errorf("tile %v is not finished", tile)
	}
	return p.img.SubImage(tile).(*image.RGBA), nil
}

func (p fixedProgress) WorkersCount() (int, error) { return 3, nil }

func TestProgressOverIrpc(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img.SetRGBA(5, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	finished := image.Rect(4, 0, 8, 2)
	p := fixedProgress{img: img, done: map[image.Rectangle]struct{}{finished: {}}}

	local, remote := localEndpoints(t)
	remote.RegisterService(NewImageProviderIrpcService(p), NewTileProviderIrpcService(p))
	images, err := NewImageProviderIrpcClient(local)
	if err != nil {
		t.Fatal(err)
	}
	tiles, err := NewTileProviderIrpcClient(local)
	if err != nil {
		t.Fatal(err)
	}

	gotImg, err := images.GetImage()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(*img, gotImg); diff != "" {
		t.Errorf("image mismatch (-want +got):\n%s", diff)
	}

	w, h, err := tiles.FullImageDimensions()
	if err != nil || w != 8 || h != 4 {
		t.Errorf("FullImageDimensions() = %d, %d, %v, want 8, 4", w, h, err)
	}
	if n, err := tiles.TotalTilesCount(); err != nil || n != 4 {
		t.Errorf("TotalTilesCount() = %d, %v, want 4", n, err)
	}
	if n, err := tiles.WorkersCount(); err != nil || n != 3 {
		t.Errorf("WorkersCount() = %d, %v, want 3", n, err)
	}
	done, err := tiles.FinishedTiles()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p.done, done); diff != "" {
		t.Errorf("finished tiles mismatch (-want +got):\n%s", diff)
	}

	sub, err := tiles.GetTileImg(finished)
	if err != nil {
		t.Fatal(err)
	}
	if got := sub.RGBAAt(5, 1); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("tile pixel = %v", got)
	}
	if sub.Rect != finished {
		t.Errorf("tile bounds = %v, want %v", sub.Rect, finished)
	}

	missing, err := tiles.GetTileImg(image.Rect(0, 2, 4, 4))
	if err == nil || missing != nil {
		t.Errorf("GetTileImg(unfinished) = %v, %v, want an error", missing, err)
	}
}
