//go:build gl && !ebiten

package main

import (
	"flag"
	"log"

	"shaderquad/internal/app"
	"shaderquad/internal/core"
	"shaderquad/shaders"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Load(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	core.SetLogger(newLogger(cfg.Debug))

	src, err := cfg.Sources(shaders.Vertex, shaders.Fragment)
	if err != nil {
		log.Fatal(err)
	}
	app.RunMobile(cfg, src)
}
