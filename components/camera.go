package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// TargetID names the surface a camera renders to.
type TargetID int

const (
	// TargetCanvas renders into the offscreen canvas image.
	TargetCanvas TargetID = iota
	// TargetWindow renders into the frame presented to the window.
	TargetWindow
)

// CameraData drives one render pass.
type CameraData struct {
	// Order sorts cameras each frame; lower orders render first.
	Order int

	// Scale is the orthographic projection scale in world units per
	// target pixel. Values below 1 magnify. The window camera holds
	// the reciprocal of the integer canvas scale here.
	Scale float64

	// ClearColor fills the target before the pass draws.
	ClearColor color.NRGBA

	Target TargetID
}

var Camera = donburi.NewComponentType[CameraData]()

// InGameCamera marks the camera that renders scene content into the
// canvas. Its scale stays fixed at 1.
var InGameCamera = donburi.NewTag()

// OuterCamera marks the camera that presents the canvas inside the
// window. Its scale is the only camera field that changes after
// startup, rewritten by the canvas fit system on every resize.
var OuterCamera = donburi.NewTag()
