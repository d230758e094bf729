// Package factory spawns the demo scene.
package factory

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"pixelsnap/components"
	"pixelsnap/config"
)

// SpawnCameras creates the two render passes and the sprite bridging
// them: the in-game camera draws the pixel-perfect layer into canvas,
// the canvas entity presents that image on the high-res layer, and the
// outer camera draws the high-res layer into the window.
//
// canvas may be nil in headless tests; spawning and queries still work,
// there is just nothing to composite.
func SpawnCameras(ecs *ecs.ECS, cfg config.Config, canvas *ebiten.Image) {
	w := ecs.World

	inGame := w.Entry(w.Create(components.InGameCamera, components.Camera, components.RenderLayers))
	components.Camera.SetValue(inGame, components.CameraData{
		Order:      -1,
		Scale:      1,
		ClearColor: cfg.CanvasClear,
		Target:     components.TargetCanvas,
	})
	components.RenderLayers.SetValue(inGame, components.LayerPixelPerfect)

	sprite := w.Entry(w.Create(components.Canvas, components.Transform, components.Sprite, components.RenderLayers))
	components.Canvas.SetValue(sprite, components.CanvasData{Image: canvas})
	components.Sprite.SetValue(sprite, components.SpriteData{
		Size:  math.Vec2{X: float64(cfg.CanvasWidth), Y: float64(cfg.CanvasHeight)},
		Image: canvas,
	})
	components.RenderLayers.SetValue(sprite, components.LayerHighRes)

	outer := w.Entry(w.Create(components.OuterCamera, components.Camera, components.RenderLayers))
	components.Camera.SetValue(outer, components.CameraData{
		Order:      0,
		Scale:      1,
		ClearColor: cfg.Letterbox,
		Target:     components.TargetWindow,
	})
	components.RenderLayers.SetValue(outer, components.LayerHighRes)
}
