package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-heart/internal/config"
	"github.com/iburimskiy/particle-heart/internal/game"
	"github.com/iburimskiy/particle-heart/internal/heart"
)

func run(mute bool) error {
	start := time.Now()
	h, err := heart.New()
	if err != nil {
		return fmt.Errorf("build heart: %w", err)
	}
	log.Printf("built %d frames in %v", h.Frames(), time.Since(start))

	var sound game.Beater
	if !mute {
		hb, err := game.NewHeartbeat()
		if err != nil {
			log.Printf("audio unavailable, running muted: %v", err)
		} else {
			defer hb.Close()
			sound = hb
		}
	}

	ebiten.SetWindowSize(config.CanvasWidth, config.CanvasHeight)
	ebiten.SetWindowTitle("Heart - Esc/Q: Quit")

	g := game.NewGame(h, sound)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	mute := flag.Bool("mute", false, "disable the heartbeat sound")
	flag.Parse()

	if err := run(*mute); err != nil {
		log.Printf("heart: %v", err)
		_ = zenity.Error(err.Error(), zenity.Title("Heart"))
		os.Exit(1)
	}
}
