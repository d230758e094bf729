package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData places an entity in world space. The origin sits at the
// canvas center with +Y pointing up, so canvas content spans
// [-w/2, w/2] x [-h/2, h/2].
type TransformData struct {
	Translation math.Vec2

	// Depth orders draws within a render pass. Higher values draw on
	// top; equal values keep spawn order.
	Depth float64

	// Rotation is in radians, counter-clockwise in world space.
	Rotation float64
}

var Transform = donburi.NewComponentType[TransformData]()
