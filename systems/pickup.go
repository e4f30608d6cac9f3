package systems

import (
	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/gamemath"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// NewPickupSystem plays the "got it" boing the first time the local duck
// touches the cracker at a given position. The cracker itself is left alone;
// the server decides who scored.
func NewPickupSystem() func(*ecs.ECS) {
	var (
		claimed   bool
		claimedAt math.Vec2
	)
	return func(e *ecs.ECS) {
		player, ok := tags.LocalPlayer.First(e.World)
		if !ok {
			return
		}
		cracker, ok := tags.Cracker.First(e.World)
		if !ok {
			return
		}

		pos := components.Transform.Get(cracker).Position
		if claimed && claimedAt == pos {
			return
		}
		if !touching(player, cracker) {
			return
		}

		claimed, claimedAt = true, pos
		PlaySFX(e, cfg.SoundCrackerGot)
	}
}

func touching(player, cracker *donburi.Entry) bool {
	if !player.HasComponent(components.Object) || !cracker.HasComponent(components.Object) {
		return false
	}
	duck := components.Object.Get(player).Object
	if duck.Space == nil {
		return false
	}
	check := duck.Check(0, 0, tags.ResolvCracker)
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || entry.Entity() != cracker.Entity() {
			continue
		}
		if objectRect(duck).Overlaps(objectRect(obj)) {
			return true
		}
	}
	return false
}

func objectRect(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{MinX: obj.X, MinY: obj.Y, MaxX: obj.X + obj.W, MaxY: obj.Y + obj.H}
}
