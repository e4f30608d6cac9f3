package factory

import (
	"github.com/JimLynchCodes/Quackers-Frontend-v3/archetypes"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateReed spawns a decorative reed patch covering r (world space).
func CreateReed(ecs *ecs.ECS, r gamemath.Rect) *donburi.Entry {
	reed := archetypes.Reed.Spawn(ecs)
	components.Transform.SetValue(reed, components.TransformData{
		Position: math.Vec2{X: r.MinX + r.Width()/2, Y: r.MinY + r.Height()/2},
	})
	components.Reed.SetValue(reed, components.ReedData{Width: r.Width(), Height: r.Height()})
	return reed
}
