// Package systems holds the per-tick logic and the renderers driving
// the scene.
package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	devents "github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"pixelsnap/components"
	"pixelsnap/events"
)

var outerCameraQuery = donburi.NewQuery(filter.Contains(components.OuterCamera, components.Camera))

// IntegerScale returns the largest whole factor at which the canvas
// still fits the window on both axes. Fractional fits round down so the
// scaled canvas never overruns the window; windows smaller than the
// canvas clamp to 1 and show a centered 1:1 crop.
func IntegerScale(winW, winH, canvasW, canvasH float64) float64 {
	s := math.Floor(math.Min(winW/canvasW, winH/canvasH))
	if s < 1 {
		return 1
	}
	return s
}

// FitCanvas keeps the outer camera's projection snapped to whole canvas
// multiples as the window changes size.
type FitCanvas struct {
	canvasW float64
	canvasH float64
}

// NewFitCanvas subscribes the system to window resize events on w.
func NewFitCanvas(w donburi.World, canvasW, canvasH int) *FitCanvas {
	f := &FitCanvas{canvasW: float64(canvasW), canvasH: float64(canvasH)}
	events.WindowResized.Subscribe(w, f.onResize)
	return f
}

// Update drains the resize events queued since the previous tick in
// arrival order, so the youngest size wins.
func (f *FitCanvas) Update(ecs *ecs.ECS) {
	devents.ProcessAllEvents(ecs.World)
}

func (f *FitCanvas) onResize(w donburi.World, ev events.WindowResizedData) {
	entry, ok := outerCameraQuery.First(w)
	if !ok {
		return
	}
	cam := components.Camera.Get(entry)
	cam.Scale = 1 / IntegerScale(ev.Width, ev.Height, f.canvasW, f.canvasH)
}
