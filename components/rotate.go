package components

import "github.com/yohamta/donburi"

// RotateData spins an entity's transform at a fixed speed, in radians
// per second.
type RotateData struct {
	Speed float64
}

var Rotate = donburi.NewComponentType[RotateData]()
