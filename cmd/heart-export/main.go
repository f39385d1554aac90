package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"time"

	"github.com/iburimskiy/particle-heart/internal/config"
	"github.com/iburimskiy/particle-heart/internal/heart"
)

func main() {
	out := flag.String("o", "heart.gif", "output GIF path")
	frames := flag.Int("frames", config.GenerateFrames, "number of animation frames")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one")
	flag.Parse()

	opts := []heart.Option{heart.WithFrames(*frames)}
	if *seed != 0 {
		opts = append(opts, heart.WithRand(heart.NewRand(*seed)))
	}

	start := time.Now()
	h, err := heart.New(opts...)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("built %d frames in %v", h.Frames(), time.Since(start))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	w := bufio.NewWriter(f)
	if err := encode(w, h); err != nil {
		f.Close()
		log.Fatalf("Failed to encode: %v", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	log.Printf("Successfully created %s", *out)
}
