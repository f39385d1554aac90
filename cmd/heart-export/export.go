package main

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/iburimskiy/particle-heart/internal/config"
	"github.com/iburimskiy/particle-heart/internal/heart"
)

const paletteSize = 16

// gifDelay is FrameDelay in hundredths of a second.
var gifDelay = int(config.FrameDelay.Milliseconds() / 10)

// rampPalette fades from black to c.
func rampPalette(c color.RGBA) color.Palette {
	p := make(color.Palette, paletteSize)
	for i := range p {
		t := float64(i) / (paletteSize - 1)
		p[i] = color.RGBA{
			R: uint8(float64(c.R) * t),
			G: uint8(float64(c.G) * t),
			B: uint8(float64(c.B) * t),
			A: 255,
		}
	}
	return p
}

// renderFrame rasterizes one frame of sprites as filled squares.
func renderFrame(sprites []heart.Sprite, c color.RGBA) (image.Image, error) {
	dc := gg.NewContext(config.CanvasWidth, config.CanvasHeight)
	defer dc.Close()

	dc.ClearWithColor(gg.RGB(0, 0, 0))
	dc.SetColor(c)
	for _, s := range sprites {
		size := float64(s.Size)
		dc.DrawRectangle(s.X, s.Y, size, size)
	}
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// encode writes every cached frame of h as a looping GIF.
func encode(w io.Writer, h *heart.Heart) error {
	pal := rampPalette(h.Color())
	bounds := image.Rect(0, 0, config.CanvasWidth, config.CanvasHeight)

	anim := &gif.GIF{LoopCount: 0}
	for f := range h.Frames() {
		img, err := renderFrame(h.Frame(f), h.Color())
		if err != nil {
			return fmt.Errorf("render frame %d: %w", f, err)
		}
		dst := image.NewPaletted(bounds, pal)
		xdraw.FloydSteinberg.Draw(dst, bounds, img, image.Point{})

		anim.Image = append(anim.Image, dst)
		anim.Delay = append(anim.Delay, gifDelay)
	}
	return gif.EncodeAll(w, anim)
}
