package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is a world-space (Y-up) position.
type TransformData struct {
	Position math.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()
