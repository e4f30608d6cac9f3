package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MovementData drives the local duck.
type MovementData struct {
	// Intent is the direction the duck wants to move in, length 0..1.
	// Written by the input system.
	Intent math.Vec2

	// MaxSpeed in world units per second.
	MaxSpeed float64
}

var Movement = donburi.NewComponentType[MovementData]()
