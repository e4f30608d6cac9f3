package components

import "github.com/yohamta/donburi"

// ReedData is the size of a decorative reed patch centred on its Transform.
type ReedData struct {
	Width, Height float64
}

var Reed = donburi.NewComponentType[ReedData]()
