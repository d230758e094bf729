// Package layers fixes the draw order of the registered renderers.
package layers

import "github.com/yohamta/donburi/ecs"

const (
	// Scene runs the camera compositor.
	Scene ecs.LayerID = iota
	// Overlay runs the debug HUD on top of the composed frame.
	Overlay
)
