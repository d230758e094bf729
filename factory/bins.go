package factory

import (
	"fmt"
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"pixelsnap/components"
	"pixelsnap/config"
)

// Bin geometry, in canvas pixels.
const (
	BinWidth   = 80.0
	BinHeight  = 40.0
	BinSpacing = 10.0
	BarHeight  = 20.0
	BarSpacing = 5.0

	BinLabelFontSize = 14
	PercentFontSize  = 10

	binMarginLeft   = 60.0
	binMarginBottom = 40.0
)

var (
	binColor     = color.NRGBA{0x00, 0xb3, 0xcc, 0xe6}
	barBackColor = color.NRGBA{0x00, 0x33, 0x40, 0xcc}
	barFillColor = color.NRGBA{0x00, 0xe6, 0xff, 0xe6}
	binTextColor = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

// SpawnBins builds the bar chart along the bottom of the canvas, one
// bin per entry of cfg.BinFills. Every bin is five entities: the bin
// rectangle, its number label, the bar background, the fill bar sized
// by the bin's fraction and left-aligned inside the background, and the
// percentage text.
func SpawnBins(ecs *ecs.ECS, cfg config.Config) {
	for i, fill := range cfg.BinFills {
		x := -float64(cfg.CanvasWidth)/2 + binMarginLeft + float64(i)*(BinWidth+BinSpacing)
		y := -float64(cfg.CanvasHeight)/2 + BinHeight/2 + binMarginBottom
		barY := y - BinHeight/2 - BarSpacing - BarHeight/2

		e := spawnBinPart(ecs, i, fill, math.Vec2{X: x, Y: y}, 1.0)
		components.Sprite.SetValue(e, components.SpriteData{
			Size:  math.Vec2{X: BinWidth, Y: BinHeight},
			Color: binColor,
		})

		e = spawnBinLabel(ecs, i, fill, math.Vec2{X: x, Y: y}, 1.3)
		components.Label.SetValue(e, components.LabelData{
			Text:  fmt.Sprintf("%02d", i+1),
			Size:  BinLabelFontSize,
			Color: binTextColor,
		})

		e = spawnBinPart(ecs, i, fill, math.Vec2{X: x, Y: barY}, 1.0)
		components.Sprite.SetValue(e, components.SpriteData{
			Size:  math.Vec2{X: BinWidth, Y: BarHeight},
			Color: barBackColor,
		})

		fillWidth := BinWidth * fill
		e = spawnBinPart(ecs, i, fill, math.Vec2{X: x - (BinWidth-fillWidth)/2, Y: barY}, 1.1)
		components.Sprite.SetValue(e, components.SpriteData{
			Size:  math.Vec2{X: fillWidth, Y: BarHeight},
			Color: barFillColor,
		})

		e = spawnBinLabel(ecs, i, fill, math.Vec2{X: x, Y: barY}, 1.2)
		components.Label.SetValue(e, components.LabelData{
			Text:  fmt.Sprintf("%d%%", int(fill*100)),
			Size:  PercentFontSize,
			Color: binTextColor,
		})
	}
}

func spawnBinPart(ecs *ecs.ECS, index int, fill float64, pos math.Vec2, depth float64) *donburi.Entry {
	w := ecs.World
	e := w.Entry(w.Create(components.Bin, components.Transform, components.Sprite, components.RenderLayers))
	components.Bin.SetValue(e, components.BinData{Index: index, Fill: fill})
	components.Transform.SetValue(e, components.TransformData{Translation: pos, Depth: depth})
	components.RenderLayers.SetValue(e, components.LayerPixelPerfect)
	return e
}

func spawnBinLabel(ecs *ecs.ECS, index int, fill float64, pos math.Vec2, depth float64) *donburi.Entry {
	w := ecs.World
	e := w.Entry(w.Create(components.Bin, components.Transform, components.Label, components.RenderLayers))
	components.Bin.SetValue(e, components.BinData{Index: index, Fill: fill})
	components.Transform.SetValue(e, components.TransformData{Translation: pos, Depth: depth})
	components.RenderLayers.SetValue(e, components.LayerPixelPerfect)
	return e
}
