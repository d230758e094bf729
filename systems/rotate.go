package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"pixelsnap/components"
)

var rotateQuery = donburi.NewQuery(filter.Contains(components.Rotate, components.Transform))

// Rotate advances every spinning entity by its speed over one tick.
func Rotate(ecs *ecs.ECS) {
	tps := float64(ebiten.TPS())
	if tps <= 0 {
		return
	}
	dt := 1 / tps
	rotateQuery.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		t.Rotation += components.Rotate.Get(e).Speed * dt
	})
}
