//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"shaderquad/internal/app"
	"shaderquad/internal/core"
	"shaderquad/shaders"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Load(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	core.SetLogger(newLogger(cfg.Debug))

	src, err := cfg.Sources(shaders.Vertex, shaders.Kage)
	if err != nil {
		log.Fatal(err)
	}
	game := app.New(cfg, src)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
