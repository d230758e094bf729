package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpriteData is a rectangle centered on the entity's transform. With a
// nil Image it draws as a flat quad in Color; with an Image it draws the
// texture stretched to Size, and the transform's rotation applies.
type SpriteData struct {
	Size  math.Vec2
	Color color.NRGBA
	Image *ebiten.Image
}

var Sprite = donburi.NewComponentType[SpriteData]()
