package components

import "github.com/yohamta/donburi"

// RenderLayersData is a bit set of render layers. Renderables carry the
// layers they belong to, cameras the layers they draw; a camera draws an
// entity exactly when the two sets intersect.
type RenderLayersData uint32

const (
	// LayerPixelPerfect holds content drawn into the low-resolution
	// canvas.
	LayerPixelPerfect RenderLayersData = 1 << iota
	// LayerHighRes holds content drawn at window resolution, the
	// canvas sprite included.
	LayerHighRes
)

// Intersects reports whether the two sets share a layer.
func (l RenderLayersData) Intersects(other RenderLayersData) bool {
	return l&other != 0
}

var RenderLayers = donburi.NewComponentType[RenderLayersData]()
