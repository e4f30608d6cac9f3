package components

import "github.com/yohamta/donburi"

// LabelData is text drawn centred on the entity's Transform.
type LabelData struct {
	Text string
}

var Label = donburi.NewComponentType[LabelData]()
