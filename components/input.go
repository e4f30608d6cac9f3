package components

import (
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the analog stick, polled once per tick.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Stick    math.Vec2 // left stick after deadzone, Y-up; zero when idle or absent

	// QuackClicked is set by the HUD button and consumed by the input system.
	QuackClicked bool
}

var Input = donburi.NewComponentType[InputData]()
