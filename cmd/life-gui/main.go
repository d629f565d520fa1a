//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"agelife/internal/app"
	"agelife/internal/core"
	"agelife/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		def := life.DefaultConfig()
		w, h = def.Width, def.Height
	}

	sim, err := core.NewSim(cfg.Sim, cfg.SimConfig(w, h))
	if err != nil {
		log.Fatal(err)
	}

	console := app.NewConsole(64)
	session := app.NewSession(sim, cfg, log.New(console, "", log.Ltime))
	game := app.New(session, console, cfg.Scale, life.MaxDisplayAge)

	ebiten.SetWindowTitle("Game of life - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w*cfg.Scale+app.HUDWidth, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
