package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// LabelData is a single line of text centered on the entity's transform.
// Size selects the face it is drawn with.
type LabelData struct {
	Text  string
	Size  float64
	Color color.NRGBA
}

var Label = donburi.NewComponentType[LabelData]()
