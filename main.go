package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/vnc/internal/config"
	"github.com/iburimskiy/vnc/internal/game"
	"github.com/iburimskiy/vnc/internal/log"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		settings = config.Defaults()
	}
	log.Init(settings.LogLevel)
	if err != nil {
		log.Warn("using default settings", "err", err)
	}

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("Virtual Name Card - Drag or tap to flip, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)
	// Pause the simulation while the window is hidden or unfocused.
	ebiten.SetRunnableOnUnfocused(false)

	g := game.New(settings)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game stopped", "err", err)
		panic(err)
	}
}
