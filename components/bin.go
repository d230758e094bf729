package components

import "github.com/yohamta/donburi"

// BinData marks the elements of one chart bin.
type BinData struct {
	Index int
	// Fill is the bin's fraction in [0, 1].
	Fill float64
}

var Bin = donburi.NewComponentType[BinData]()
