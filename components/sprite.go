package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData selects a cell of the shared duck sprite sheet.
type SpriteData struct {
	AtlasIndex int
}

var Sprite = donburi.NewComponentType[SpriteData]()
