package components

import "github.com/yohamta/donburi"

// NumberData marks one digit of the background grid. Index is the grid
// column; the displayed digit is Index mod 10.
type NumberData struct {
	Index int
}

var Number = donburi.NewComponentType[NumberData]()
