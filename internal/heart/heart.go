// Package heart generates the sprite frames of a pulsing particle heart.
//
// A Heart samples the heart curve once into three static point sets,
// then derives one sprite list per animation frame from those sets plus
// a halo that is regenerated with fresh randomness for every frame.
// Frames are replayed cyclically: Frame(n) returns the list stored for
// n modulo the frame count.
package heart

import (
	"errors"
	"image/color"
	"math"

	"github.com/iburimskiy/particle-heart/internal/config"
)

// ErrInvalidFrameCount is returned by New when fewer than one frame is requested.
var ErrInvalidFrameCount = errors.New("heart: frame count must be at least 1")

// Sizes reports the number of points in each static set.
type Sizes struct {
	Outline int
	Edge    int
	Center  int
}

// Total is the number of static sprites drawn every frame.
func (s Sizes) Total() int {
	return s.Outline + s.Edge + s.Center
}

type options struct {
	frames int
	rand   Rand
	center Point
	color  color.RGBA
	lazy   bool

	colorSet bool
}

// Option configures a Heart.
type Option func(*options)

// WithFrames sets the number of cached frames.
func WithFrames(n int) Option {
	return func(o *options) { o.frames = n }
}

// WithRand replaces the random source.
func WithRand(r Rand) Option {
	return func(o *options) { o.rand = r }
}

// WithCenter moves the heart to a different canvas center.
func WithCenter(p Point) Option {
	return func(o *options) { o.center = p }
}

// WithColor sets the color handed to renderers. The generator never reads it.
func WithColor(c color.RGBA) Option {
	return func(o *options) { o.color, o.colorSet = c, true }
}

// WithLazy defers building each frame until it is first queried.
func WithLazy() Option {
	return func(o *options) { o.lazy = true }
}

// Heart owns the static point sets and the frame cache.
type Heart struct {
	rand   Rand
	center Point
	color  color.RGBA

	outline []Point
	edge    []Point
	inner   []Point

	frames    [][]Sprite
	haloCount []int
	built     []bool
}

// New builds the static point sets and, unless WithLazy is given, every
// frame of the animation.
func New(opts ...Option) (*Heart, error) {
	o := options{
		frames: config.GenerateFrames,
		center: Point{X: config.CanvasCenterX, Y: config.CanvasCenterY},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.colorSet {
		c, err := config.HeartColor()
		if err != nil {
			return nil, err
		}
		o.color = c
	}
	if o.frames < 1 {
		return nil, ErrInvalidFrameCount
	}
	if o.rand == nil {
		o.rand = defaultRand()
	}

	h := &Heart{
		rand:      o.rand,
		center:    o.center,
		color:     o.color,
		frames:    make([][]Sprite, o.frames),
		haloCount: make([]int, o.frames),
		built:     make([]bool, o.frames),
	}
	h.build(config.OutlineSamples)

	if !o.lazy {
		for f := range o.frames {
			h.calc(f)
		}
	}
	return h, nil
}

func (h *Heart) build(number int) {
	outline := newPointSet(number)
	for range number {
		// Random t avoids holes along the outline.
		t := uniform(h.rand, 0, 2*math.Pi)
		p := Sample(t, config.ImageEnlarge, h.center)
		outline.add(TruncKey(p).Point())
	}
	h.outline = outline.points

	edge := newPointSet(len(h.outline) * config.EdgeScatterCount)
	for _, p := range h.outline {
		for range config.EdgeScatterCount {
			edge.add(Scatter(h.rand, p, h.center, config.EdgeBeta))
		}
	}
	h.edge = edge.points

	inner := newPointSet(config.CenterScatters)
	for range config.CenterScatters {
		p := h.outline[h.rand.IntN(len(h.outline))]
		inner.add(Scatter(h.rand, p, h.center, config.CenterBeta))
	}
	h.inner = inner.points
}

var haloSizes = [...]int{1, 2, 2}

func (h *Heart) calc(frame int) {
	ratio := ScaleRatio(frame)
	haloRadius := float64(HaloRadius(frame))
	haloNumber := HaloNumber(frame)

	sprites := make([]Sprite, 0, haloNumber+len(h.outline)+len(h.edge)+len(h.inner))

	// Halo
	seen := make(map[Key]struct{}, haloNumber)
	for range haloNumber {
		t := uniform(h.rand, 0, 2*math.Pi)
		k := TruncKey(Sample(t, config.HaloEnlarge, h.center))
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}

		p := Shrink(k.Point(), h.center, haloRadius)
		sprites = append(sprites, Sprite{
			X:    p.X + float64(randInt(h.rand, -config.HaloJitter, config.HaloJitter)),
			Y:    p.Y + float64(randInt(h.rand, -config.HaloJitter, config.HaloJitter)),
			Size: haloSizes[h.rand.IntN(len(haloSizes))],
		})
	}
	h.haloCount[frame] = len(sprites)

	// Outline
	for _, p := range h.outline {
		p = Rescale(h.rand, p, h.center, ratio)
		sprites = append(sprites, Sprite{X: p.X, Y: p.Y, Size: randInt(h.rand, 1, 3)})
	}

	// Inner
	for _, set := range [][]Point{h.edge, h.inner} {
		for _, p := range set {
			p = Rescale(h.rand, p, h.center, ratio)
			sprites = append(sprites, Sprite{X: p.X, Y: p.Y, Size: randInt(h.rand, 1, 2)})
		}
	}

	h.frames[frame] = sprites
	h.built[frame] = true
}

func (h *Heart) index(n int) int {
	i := n % len(h.frames)
	if i < 0 {
		i += len(h.frames)
	}
	return i
}

// Frame returns the sprites for frame counter n. The slice is shared with
// the cache and must not be modified.
func (h *Heart) Frame(n int) []Sprite {
	i := h.index(n)
	if !h.built[i] {
		h.calc(i)
	}
	return h.frames[i]
}

// Frames is the animation period in frames.
func (h *Heart) Frames() int { return len(h.frames) }

// HaloCount is the number of halo sprites at the front of Frame(n).
func (h *Heart) HaloCount(n int) int {
	i := h.index(n)
	if !h.built[i] {
		h.calc(i)
	}
	return h.haloCount[i]
}

// Sizes reports the static set sizes fixed at construction.
func (h *Heart) Sizes() Sizes {
	return Sizes{Outline: len(h.outline), Edge: len(h.edge), Center: len(h.inner)}
}

// Color is the drawing color passed through to renderers.
func (h *Heart) Color() color.RGBA { return h.color }
