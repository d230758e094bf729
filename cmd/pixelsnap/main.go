// Command pixelsnap opens the pixel grid demo in a resizable window.
package main

import (
	"log"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"pixelsnap"
	"pixelsnap/config"
)

func main() {
	cfg := config.Default()
	pixelsnap.SetLogger(slog.Default())

	game, err := pixelsnap.NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.CanvasWidth*cfg.WindowScale, cfg.CanvasHeight*cfg.WindowScale)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
