//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"starforge/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := app.New(cfg)
	if err != nil {
		log.Fatalf("worldview: %v", err)
	}

	span := (2*cfg.Radius + 1) * cfg.ChunkSize
	ebiten.SetWindowSize(span*cfg.Scale, span*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
