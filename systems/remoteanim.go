package systems

import (
	"math/rand"
	"slices"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var animatedDucks = donburi.NewQuery(filter.Contains(
	tags.OtherPlayer,
	components.RemoteAnimation,
	components.Transform,
))

// UpdateRemoteAnimationTimers advances every remote animation by the tick
// duration. Systems that look at Changed must run after it.
func UpdateRemoteAnimationTimers(e *ecs.ECS) {
	delta := TickDelta(e)
	components.RemoteAnimation.Each(e.World, func(entry *donburi.Entry) {
		components.RemoteAnimation.Get(entry).Update(delta)
	})
}

// UpdateRemoteAnimationAtlas copies the animation's sheet index to the sprite.
func UpdateRemoteAnimationAtlas(e *ecs.ECS) {
	animatedDucks.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Sprite) {
			return
		}
		components.Sprite.Get(entry).AtlasIndex = components.RemoteAnimation.Get(entry).AtlasIndex()
	})
}

// ShouldPlayStep reports whether a walking duck just put a foot down.
func ShouldPlayStep(anim *components.RemoteAnimationData) bool {
	if anim.State() != components.RemoteWalking || !anim.Changed() {
		return false
	}
	return slices.Contains(cfg.RemoteAnimation.StepFrames, anim.Frame())
}

// NewStepSoundSystem plays a random footstep, placed at the duck, each time a
// walking duck reaches a step frame. rng picks the clip.
func NewStepSoundSystem(rng *rand.Rand) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		clips := cfg.Sound.StepSounds
		if len(clips) == 0 {
			return
		}
		animatedDucks.Each(e.World, func(entry *donburi.Entry) {
			if !ShouldPlayStep(components.RemoteAnimation.Get(entry)) {
				return
			}
			id := clips[rng.Intn(len(clips))]
			PlaySpatialSFX(e, id, components.Transform.Get(entry).Position)
		})
	}
}
