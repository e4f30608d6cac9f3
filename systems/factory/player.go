package factory

import (
	"github.com/JimLynchCodes/Quackers-Frontend-v3/archetypes"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/gamemath"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// WorldRect returns the configured world bounds.
func WorldRect() gamemath.Rect {
	return gamemath.Rect{
		MinX: cfg.World.MinX,
		MinY: cfg.World.MinY,
		MaxX: cfg.World.MaxX,
		MaxY: cfg.World.MaxY,
	}
}

// CreateLocalPlayer spawns the duck this client controls, clamped into the world.
func CreateLocalPlayer(ecs *ecs.ECS, msg messages.YouJoined) *donburi.Entry {
	player := archetypes.LocalPlayer.Spawn(ecs)

	x, y := WorldRect().Clamp(msg.X, msg.Y)
	pos := math.Vec2{X: x, Y: y}

	esync.NetworkIdComponent.SetValue(player, esync.NetworkId(msg.PlayerID))
	components.Player.SetValue(player, components.PlayerData{
		Name:   msg.Name,
		Color:  msg.Color,
		Points: msg.PlayerPoints,
	})
	components.Transform.SetValue(player, components.TransformData{Position: pos})
	components.Movement.SetValue(player, components.MovementData{
		MaxSpeed: cfg.Movement.MaxSpeed,
	})
	newObject(ecs, player, pos, cfg.Duck.Width, cfg.Duck.Height, tags.ResolvDuck)

	return player
}

// CreateOtherPlayer spawns a remote duck, idling where the server put it.
func CreateOtherPlayer(ecs *ecs.ECS, msg messages.OtherPlayerJoined) *donburi.Entry {
	player := archetypes.OtherPlayer.Spawn(ecs)

	esync.NetworkIdComponent.SetValue(player, esync.NetworkId(msg.PlayerID))
	components.Player.SetValue(player, components.PlayerData{
		Name:  msg.Name,
		Color: msg.Color,
	})
	components.Transform.SetValue(player, components.TransformData{
		Position: math.Vec2{X: msg.X, Y: msg.Y},
	})
	components.RemoteAnimation.SetValue(player, components.NewRemoteAnimation())
	components.Sprite.SetValue(player, components.SpriteData{})

	return player
}
