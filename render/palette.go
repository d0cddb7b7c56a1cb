package render

import (
	"image"
	"image/color"
	"math"

	"github.com/LegalizeAdulthood/iterated-dynamics-sub025/internal/engine"
)

var black = color.RGBA{A: 255}

// Palette maps colour indices to RGBA. Index 0 and Inside are black.
type Palette struct {
	Colors []color.RGBA
	Inside int
}

// NewPalette spreads n hues over the colour wheel. n of 0 picks 256.
func NewPalette(n, inside int) Palette {
	if n <= 0 {
		n = engine.DefaultColors
	}
	p := Palette{Colors: make([]color.RGBA, n), Inside: inside}
	for i := range p.Colors {
		p.Colors[i] = hsv(math.Mod(float64(i)*0.02, 1.0), 1, 1)
	}
	return p
}

// PaletteFor returns the palette for the colours cfg produces.
func PaletteFor(cfg engine.Config) Palette {
	return NewPalette(cfg.Colors, cfg.InsideIndex())
}

// RGBA returns the colour of index c.
func (p Palette) RGBA(c int) color.RGBA {
	if c <= 0 || c == p.Inside || len(p.Colors) == 0 {
		return black
	}
	return p.Colors[c%len(p.Colors)]
}

// Draw paints the row-major indices pix over r of dst.
func (p Palette) Draw(dst *image.RGBA, r image.Rectangle, pix []int) {
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetRGBA(x, y, p.RGBA(pix[i]))
			i++
		}
	}
}

// Image paints g.
func (p Palette) Image(g *engine.Grid) *image.RGBA {
	img := image.NewRGBA(g.Rect)
	p.Draw(img, g.Rect, g.Pix)
	return img
}

// Simple HSV → RGB
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}
