package factory

import (
	"github.com/JimLynchCodes/Quackers-Frontend-v3/archetypes"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const (
	spaceCellSize = 32
	// spacePadding keeps boxes centred on the world edge inside the space.
	spacePadding = 64
)

func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	w := int(cfg.World.MaxX-cfg.World.MinX) + 2*spacePadding
	h := int(cfg.World.MaxY-cfg.World.MinY) + 2*spacePadding
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(w, h, spaceCellSize, spaceCellSize),
	})
	return space
}

// SpacePosition converts a world-space centre into the top-left corner of a
// w by h box in the collision space.
func SpacePosition(pos math.Vec2, w, h float64) (float64, float64) {
	x := pos.X - cfg.World.MinX + spacePadding - w/2
	y := cfg.World.MaxY - pos.Y + spacePadding - h/2
	return x, y
}

// ObjectCentre converts obj back into the world-space centre of its box.
func ObjectCentre(obj *resolv.Object) math.Vec2 {
	return math.Vec2{
		X: obj.X + obj.W/2 + cfg.World.MinX - spacePadding,
		Y: cfg.World.MaxY + spacePadding - obj.Y - obj.H/2,
	}
}

// PlaceObject centres obj on the world position pos.
func PlaceObject(obj *resolv.Object, pos math.Vec2) {
	obj.X, obj.Y = SpacePosition(pos, obj.W, obj.H)
	obj.Update()
}

func newObject(ecs *ecs.ECS, entry *donburi.Entry, pos math.Vec2, w, h float64, tag string) *resolv.Object {
	x, y := SpacePosition(pos, w, h)
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	if s, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(s).Add(obj)
	}
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return obj
}
