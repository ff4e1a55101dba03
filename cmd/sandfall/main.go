//go:build ebiten

package main

import (
	"errors"
	"flag"

	"sandfall/internal/app"
	"sandfall/internal/core"
	"sandfall/internal/logging"
	_ "sandfall/internal/sims/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := logging.New(cfg.LogLevel)

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim, ok := factory(cfg.Params).(app.Sandbox)
	if !ok {
		logger.Fatalf("sim %q does not support interactive painting", cfg.Sim)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg, logger)
	size := sim.Size()
	logger.Infof("running %s %dx%d (period %s, params %s)", sim.Name(), size.W, size.H, cfg.Period, cfg.Params)

	ebiten.SetWindowTitle("sandfall - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatalf("%v", err)
	}
}
