package systems

import (
	"log"
	"strconv"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/assets"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SoundBank looks up loaded sound effects.
type SoundBank interface {
	Sound(id cfg.SoundID) (*assets.SoundHandle, bool)
}

// NewCrackerSystem applies every crackers_moved event of this tick and plays
// the chewing cue for each.
func NewCrackerSystem(bank SoundBank) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		for _, msg := range GetOrCreateEventQueue(e).CrackersMoved {
			ApplyCrackerMove(e, msg)
			playCrackerCue(e, bank)
		}
	}
}

// ApplyCrackerMove puts the cracker at (X, Y) and its label LabelOffset above
// it showing Points.
func ApplyCrackerMove(e *ecs.ECS, msg messages.CrackersMoved) {
	cracker := factory.EnsureCracker(e)
	pos := math.Vec2{X: msg.X, Y: msg.Y}

	components.Transform.Get(cracker).Position = pos
	if cracker.HasComponent(components.Object) {
		factory.PlaceObject(components.Object.Get(cracker).Object, pos)
	}

	data := components.Cracker.Get(cracker)
	data.Points = msg.Points

	if !e.World.Valid(data.Label) {
		log.Printf("[cracker] label entity missing")
		return
	}
	label := e.World.Entry(data.Label)
	components.Transform.Get(label).Position = math.Vec2{X: msg.X, Y: msg.Y + cfg.Cracker.LabelOffset}
	components.Label.Get(label).Text = strconv.Itoa(msg.Points)
}

// playCrackerCue plays the chewing sound if it has finished loading. A cue
// that arrives before the sound is ready is dropped.
func playCrackerCue(e *ecs.ECS, bank SoundBank) {
	if bank == nil {
		log.Printf("[cracker] no sound bank, skipping chew")
		return
	}
	h, ok := bank.Sound(cfg.SoundCrackerChew)
	if !ok {
		log.Printf("[cracker] chew sound not registered, skipping")
		return
	}
	if !h.IsReady() {
		log.Printf("[cracker] chew sound not loaded yet, skipping")
		return
	}
	PlaySFX(e, cfg.SoundCrackerChew)
}
