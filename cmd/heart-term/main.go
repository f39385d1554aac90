package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-heart/internal/config"
	"github.com/iburimskiy/particle-heart/internal/heart"
)

type viewer struct {
	screen tcell.Screen
	heart  *heart.Heart
	raster *raster
	frame  int
}

func newViewer(screen tcell.Screen, h *heart.Heart) (*viewer, error) {
	cols, rows := screen.Size()
	r, err := newRaster(cols, rows)
	if err != nil {
		return nil, err
	}
	return &viewer{screen: screen, heart: h, raster: r}, nil
}

func (v *viewer) draw() {
	v.raster.fill(v.heart.Frame(v.frame))
	v.raster.draw(v.screen)
	v.screen.Show()
}

// handleInput reports false when the viewer should exit.
func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		v.raster.resize(v.screen.Size())
		v.screen.Sync()
	}
	return true
}

// pollEvents forwards screen events until the screen is finalized or
// quit is closed. done is closed when the forwarding goroutine exits.
func (v *viewer) pollEvents(quit <-chan struct{}, buffer int) (events <-chan tcell.Event, done <-chan struct{}) {
	eventChan := make(chan tcell.Event, buffer)
	doneChan := make(chan struct{})
	go func() {
		defer close(doneChan)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()
	return eventChan, doneChan
}

func (v *viewer) run() {
	ticker := time.NewTicker(config.FrameDelay)
	defer ticker.Stop()

	quit := make(chan struct{})
	defer close(quit)
	eventChan, _ := v.pollEvents(quit, 100)

	v.draw()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			v.frame++
			v.draw()
		}
	}
}

func main() {
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one")
	flag.Parse()

	opts := []heart.Option{}
	if *seed != 0 {
		opts = append(opts, heart.WithRand(heart.NewRand(*seed)))
	}

	start := time.Now()
	h, err := heart.New(opts...)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("built %d frames in %v", h.Frames(), time.Since(start))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	v, err := newViewer(screen, h)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	v.run()
	screen.Fini()
}
