package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"agelife/internal/app"
	"agelife/internal/core"
	_ "agelife/internal/life"
	"agelife/internal/tui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}

	layout := tui.NewLayout(screen.Size())
	if err := layout.Validate(); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	w, h := layout.GridCells()
	if cfg.Width > 0 {
		w = cfg.Width
	}
	if cfg.Height > 0 {
		h = cfg.Height
	}

	sim, err := core.NewSim(cfg.Sim, cfg.SimConfig(w, h))
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	console := app.NewConsole(64)
	logger := log.New(console, "", log.Ltime)
	session := app.NewSession(sim, cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := &tui.Driver{Screen: screen, Session: session, Console: console, TPS: cfg.TPS}
	if err := driver.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
