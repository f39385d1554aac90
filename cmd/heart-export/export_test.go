package main

import (
	"bytes"
	"image/color"
	"image/gif"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/particle-heart/internal/config"
	"github.com/iburimskiy/particle-heart/internal/heart"
)

func TestRampPalette(t *testing.T) {
	c := color.RGBA{R: 255, G: 33, B: 33, A: 255}
	p := rampPalette(c)
	require.Len(t, p, paletteSize)
	assert.Equal(t, color.RGBA{A: 255}, p[0])
	assert.Equal(t, c, p[paletteSize-1])
}

func TestRenderFrame(t *testing.T) {
	c := color.RGBA{R: 255, G: 33, B: 33, A: 255}
	img, err := renderFrame([]heart.Sprite{{X: 100, Y: 100, Size: 3}}, c)
	require.NoError(t, err)
	require.Equal(t, config.CanvasWidth, img.Bounds().Dx())
	require.Equal(t, config.CanvasHeight, img.Bounds().Dy())

	r, _, _, _ := img.At(101, 101).RGBA()
	assert.Greater(t, r>>8, uint32(200))

	r, g, b, _ := img.At(300, 300).RGBA()
	assert.Zero(t, r|g|b)
}

func TestEncode(t *testing.T) {
	h, err := heart.New(heart.WithFrames(3), heart.WithRand(heart.NewRand(5)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, encode(&buf, h))

	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, anim.Image, 3)
	for _, d := range anim.Delay {
		assert.Equal(t, 16, d)
	}
	assert.Equal(t, 0, anim.LoopCount)
}
