package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-heart/internal/config"
	"github.com/iburimskiy/particle-heart/internal/heart"
)

// Beater is notified whenever the animation reaches a pulse peak.
type Beater interface {
	Beat()
}

// Game draws one cached heart frame per FrameDelay.
type Game struct {
	heart *heart.Heart
	color color.RGBA
	sound Beater

	frame   int
	elapsed time.Duration

	// input edge detection
	prevKey map[ebiten.Key]bool
}

// NewGame wraps h. sound may be nil.
func NewGame(h *heart.Heart, sound Beater) *Game {
	return &Game{
		heart:   h,
		color:   h.Color(),
		sound:   sound,
		prevKey: map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// advance adds dt of wall time and steps the frame counter once per
// FrameDelay elapsed.
func (g *Game) advance(dt time.Duration) {
	g.elapsed += dt
	for g.elapsed >= config.FrameDelay {
		g.elapsed -= config.FrameDelay
		g.frame++
		if g.sound != nil && heart.IsBeat(g.frame) {
			g.sound.Beat()
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, s := range g.heart.Frame(g.frame) {
		size := float32(s.Size)
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), size, size, g.color, false)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.CanvasWidth, config.CanvasHeight
}

// Frame is the current frame counter.
func (g *Game) Frame() int { return g.frame }
