package systems

import (
	"log"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/systems/factory"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// NewSessionSystem applies the player events of this tick: joins first, then
// moves, then quacks.
func NewSessionSystem(reg *PlayerRegistry) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		q := GetOrCreateEventQueue(e)
		for _, msg := range q.YouJoined {
			HandleYouJoined(e, reg, msg)
		}
		for _, join := range q.OtherPlayerJoined {
			// Ducks already in the pond when we joined are not announced.
			if HandleOtherPlayerJoined(e, reg, join.OtherPlayerJoined) && !join.FromRoster {
				Noticef(e, "%s waddled into the pond", join.Name)
			}
		}
		for _, msg := range q.OtherPlayerMoved {
			HandleOtherPlayerMoved(e, reg, msg)
		}
		for _, msg := range q.OtherPlayerQuacked {
			HandleOtherPlayerQuacked(e, reg, msg)
		}
	}
}

// HandleYouJoined starts a session: it spawns the local duck and snaps the
// camera onto it. Any previous session is torn down first. The bundled cracker
// is queued as a crackers_moved event by the translator.
func HandleYouJoined(e *ecs.ECS, reg *PlayerRegistry, msg messages.YouJoined) {
	reg.Reset()

	id := esync.NetworkId(msg.PlayerID)
	player := factory.CreateLocalPlayer(e, msg)
	reg.SetLocal(id, player)
	log.Printf("[session] joined as %q (id %d) with %d other ducks", msg.Name, id, len(msg.OtherPlayers))
	Noticef(e, "Welcome to the pond, %s", msg.Name)

	if cfg.Camera.SnapOnJoin {
		if cam, ok := components.Camera.First(e.World); ok {
			components.Camera.Get(cam).Position = components.Transform.Get(player).Position
		}
	}
}

// HandleOtherPlayerJoined spawns a remote duck, or refreshes it when the id is
// already known. Our own id is ignored. It reports whether a duck was spawned.
func HandleOtherPlayerJoined(e *ecs.ECS, reg *PlayerRegistry, msg messages.OtherPlayerJoined) bool {
	id := esync.NetworkId(msg.PlayerID)
	if local, ok := reg.LocalID(); ok && local == id {
		return false
	}

	if entry, ok := reg.Other(id); ok {
		p := components.Player.Get(entry)
		p.Name, p.Color = msg.Name, msg.Color
		pos := math.Vec2{X: msg.X, Y: msg.Y}
		components.Transform.Get(entry).Position = pos
		*components.RemoteMotion.Get(entry) = components.RemoteMotionData{Target: pos}
		return false
	}

	reg.AddOther(id, factory.CreateOtherPlayer(e, msg))
	return true
}

// HandleOtherPlayerMoved starts the duck walking towards its new position.
func HandleOtherPlayerMoved(e *ecs.ECS, reg *PlayerRegistry, msg messages.OtherPlayerMoved) {
	entry, ok := reg.Other(esync.NetworkId(msg.PlayerID))
	if !ok {
		log.Printf("[session] move for unknown duck %d", msg.PlayerID)
		return
	}
	components.RemoteAnimation.Get(entry).SetState(components.RemoteWalking)
	StartGlide(entry, math.Vec2{X: msg.X, Y: msg.Y})
}

// HandleOtherPlayerQuacked plays a quack where the duck is.
func HandleOtherPlayerQuacked(e *ecs.ECS, reg *PlayerRegistry, msg messages.OtherPlayerQuacked) {
	entry, ok := reg.Other(esync.NetworkId(msg.PlayerID))
	if !ok {
		log.Printf("[session] quack from unknown duck %d", msg.PlayerID)
		return
	}
	PlaySpatialSFX(e, cfg.SoundQuack, components.Transform.Get(entry).Position)
}
