package factory

import (
	"image/color"
	"strconv"

	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"pixelsnap/components"
	"pixelsnap/config"
)

// NumberFontSize is the face size of the digit grid.
const NumberFontSize = 12

var numberColor = color.NRGBA{0xff, 0xff, 0xff, 0xff}

// SpawnNumbers fills the canvas background with the digit grid. Column
// i of every row shows i mod 10, spaced cfg.NumberSpacing apart from
// the bottom-left canvas corner, so the grid deliberately overruns the
// canvas on the right and top.
func SpawnNumbers(ecs *ecs.ECS, cfg config.Config) {
	w := ecs.World
	for j := 0; j < cfg.NumberRows; j++ {
		for i := 0; i < cfg.NumberCols; i++ {
			e := w.Entry(w.Create(components.Number, components.Transform, components.Label, components.RenderLayers))
			components.Number.SetValue(e, components.NumberData{Index: i})
			components.Transform.SetValue(e, components.TransformData{
				Translation: math.Vec2{
					X: -float64(cfg.CanvasWidth)/2 + float64(i)*cfg.NumberSpacing,
					Y: -float64(cfg.CanvasHeight)/2 + float64(j)*cfg.NumberSpacing,
				},
			})
			components.Label.SetValue(e, components.LabelData{
				Text:  strconv.Itoa(i % 10),
				Size:  NumberFontSize,
				Color: numberColor,
			})
			components.RenderLayers.SetValue(e, components.LayerPixelPerfect)
		}
	}
}
