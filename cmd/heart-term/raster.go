package main

import (
	"fmt"

	"github.com/crazy3lf/colorconv"
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-heart/internal/config"
	"github.com/iburimskiy/particle-heart/internal/heart"
)

const (
	shadeLevels = 32
	// Coverage at which a sub-cell reaches full brightness.
	coverageGain = 4.0
)

// raster downsamples the canvas onto terminal cells. Each cell holds two
// vertically stacked sub-cells drawn with an upper half block.
type raster struct {
	cols, rows int
	coverage   []float64
	palette    [shadeLevels]tcell.Color
}

func newRaster(cols, rows int) (*raster, error) {
	r := &raster{}
	for i := range r.palette {
		v := config.HeartValue * float64(i) / (shadeLevels - 1)
		red, green, blue, err := colorconv.HSVToRGB(config.HeartHue, config.HeartSaturation, v)
		if err != nil {
			return nil, fmt.Errorf("shade %d: %w", i, err)
		}
		r.palette[i] = tcell.NewRGBColor(int32(red), int32(green), int32(blue))
	}
	r.resize(cols, rows)
	return r, nil
}

func (r *raster) resize(cols, rows int) {
	r.cols, r.rows = max(cols, 1), max(rows, 1)
	r.coverage = make([]float64, r.cols*r.rows*2)
}

// fill accumulates sprite area per sub-cell, normalized by the sub-cell area.
func (r *raster) fill(sprites []heart.Sprite) {
	clear(r.coverage)

	w := float64(config.CanvasWidth) / float64(r.cols)
	h := float64(config.CanvasHeight) / float64(r.rows*2)
	area := w * h

	for _, s := range sprites {
		x := int(s.X / w)
		y := int(s.Y / h)
		if s.X < 0 || s.Y < 0 || x >= r.cols || y >= r.rows*2 {
			continue
		}
		r.coverage[y*r.cols+x] += float64(s.Size*s.Size) / area
	}
}

// shade maps a sub-cell to a palette index; 0 is black.
func (r *raster) shade(x, sub int) int {
	c := r.coverage[sub*r.cols+x] * coverageGain
	if c <= 0 {
		return 0
	}
	return max(1, int(min(c, 1)*(shadeLevels-1)))
}

func (r *raster) draw(screen tcell.Screen) {
	for y := range r.rows {
		for x := range r.cols {
			top := r.palette[r.shade(x, 2*y)]
			bottom := r.palette[r.shade(x, 2*y+1)]
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(x, y, '▀', nil, style)
		}
	}
}
