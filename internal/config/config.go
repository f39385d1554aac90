package config

import (
	"fmt"
	"image/color"
	"time"

	"github.com/crazy3lf/colorconv"
)

const (
	CanvasWidth  = 640
	CanvasHeight = 480

	CanvasCenterX = CanvasWidth / 2.0
	CanvasCenterY = CanvasHeight / 2.0

	// Image enlargement factor
	ImageEnlarge = 11.0
	HaloEnlarge  = 11.6

	GenerateFrames = 20
	FrameDelay     = 160 * time.Millisecond

	// Point set sizes
	OutlineSamples   = 2000
	EdgeScatterCount = 3
	CenterScatters   = 4000

	// Diffusion intensities
	EdgeBeta   = 0.05
	CenterBeta = 0.17

	// Halo parameters
	HaloJitter = 14

	// Heart color (China Red, #ff2121) in HSV
	HeartHue        = 0.0
	HeartSaturation = 0.87
	HeartValue      = 1.0

	// Heartbeat sound
	SampleRate     = 44100
	ThumpFrequency = 55.0
	ThumpDuration  = 150 * time.Millisecond
	ThumpVolume    = 0.6
)

// HeartColor returns the drawing color shared by every renderer.
func HeartColor() (color.RGBA, error) {
	r, g, b, err := colorconv.HSVToRGB(HeartHue, HeartSaturation, HeartValue)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("heart color: %w", err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
