package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// CanvasData marks the sprite that presents the offscreen canvas and
// holds the image the canvas pass renders into.
type CanvasData struct {
	Image *ebiten.Image
}

var Canvas = donburi.NewComponentType[CanvasData]()
