package factory

import (
	"strconv"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/archetypes"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCracker spawns the shared cracker at the origin together with the
// label showing its points.
func CreateCracker(ecs *ecs.ECS) *donburi.Entry {
	cracker := archetypes.Cracker.Spawn(ecs)
	label := archetypes.CrackerLabel.Spawn(ecs)

	points := cfg.Cracker.StartingPoints
	components.Transform.SetValue(cracker, components.TransformData{})
	components.Cracker.SetValue(cracker, components.CrackerData{
		Points: points,
		Label:  label.Entity(),
	})
	newObject(ecs, cracker, math.Vec2{}, cfg.Cracker.Size, cfg.Cracker.Size, tags.ResolvCracker)

	components.Transform.SetValue(label, components.TransformData{
		Position: math.Vec2{Y: cfg.Cracker.LabelOffset},
	})
	components.Label.SetValue(label, components.LabelData{Text: strconv.Itoa(points)})

	return cracker
}

// EnsureCracker returns the cracker, creating it if the world has none.
func EnsureCracker(ecs *ecs.ECS) *donburi.Entry {
	if e, ok := tags.Cracker.First(ecs.World); ok {
		return e
	}
	return CreateCracker(ecs)
}
