// Package events declares the event types exchanged between the game
// shell and the systems.
package events

import "github.com/yohamta/donburi/features/events"

// WindowResizedData carries a new window size in pixels. Published by
// the game shell once per observed size change, on the game loop
// goroutine, and drained in order by the canvas fit system on the next
// update tick.
type WindowResizedData struct {
	Width  float64
	Height float64
}

var WindowResized = events.NewEventType[WindowResizedData]()
