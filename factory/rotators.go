package factory

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"pixelsnap/components"
)

const (
	rotatorSize = 16

	// RotatorSpeed is the spin rate of both markers, radians per second.
	RotatorSpeed = 1.0
)

var (
	rotatorBack  = color.NRGBA{0x1a, 0x2b, 0x4d, 0xff}
	rotatorInner = color.NRGBA{0x00, 0xb3, 0xcc, 0xff}
	rotatorCore  = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

// RotatorImage draws the 16x16 marker texture both rotators share.
func RotatorImage() *ebiten.Image {
	img := ebiten.NewImage(rotatorSize, rotatorSize)
	img.Fill(rotatorBack)
	vector.DrawFilledRect(img, 3, 3, 10, 10, rotatorInner, false)
	vector.DrawFilledRect(img, 6, 6, 4, 4, rotatorCore, false)
	return img
}

// SpawnRotators places one spinning marker per layer. The canvas-layer
// marker rotates in visible pixel steps, the window-layer one rotates
// smoothly at full resolution. img may be nil in headless tests.
func SpawnRotators(ecs *ecs.ECS, img *ebiten.Image) {
	w := ecs.World

	snapped := w.Entry(w.Create(components.Rotate, components.Transform, components.Sprite, components.RenderLayers))
	components.Rotate.SetValue(snapped, components.RotateData{Speed: RotatorSpeed})
	components.Transform.SetValue(snapped, components.TransformData{
		Translation: math.Vec2{X: -40, Y: 20},
		Depth:       2,
	})
	components.Sprite.SetValue(snapped, components.SpriteData{
		Size:  math.Vec2{X: rotatorSize, Y: rotatorSize},
		Image: img,
	})
	components.RenderLayers.SetValue(snapped, components.LayerPixelPerfect)

	smooth := w.Entry(w.Create(components.Rotate, components.Transform, components.Sprite, components.RenderLayers))
	components.Rotate.SetValue(smooth, components.RotateData{Speed: RotatorSpeed})
	components.Transform.SetValue(smooth, components.TransformData{
		Translation: math.Vec2{X: -40, Y: -20},
		Depth:       2,
	})
	components.Sprite.SetValue(smooth, components.SpriteData{
		Size:  math.Vec2{X: rotatorSize, Y: rotatorSize},
		Image: img,
	})
	components.RenderLayers.SetValue(smooth, components.LayerHighRes)
}
