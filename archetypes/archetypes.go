package archetypes

import (
	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	LocalPlayer = newArchetype(
		tags.LocalPlayer,
		esync.NetworkIdComponent,
		components.Player,
		components.Transform,
		components.Movement,
		components.Object,
	)
	OtherPlayer = newArchetype(
		tags.OtherPlayer,
		esync.NetworkIdComponent,
		components.Player,
		components.Transform,
		components.RemoteAnimation,
		components.RemoteMotion,
		components.Sprite,
	)
	Cracker = newArchetype(
		tags.Cracker,
		components.Cracker,
		components.Transform,
		components.Object,
	)
	CrackerLabel = newArchetype(
		tags.CrackerLabel,
		components.Transform,
		components.Label,
	)
	Reed = newArchetype(
		tags.Reed,
		components.Transform,
		components.Reed,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
