package systems

import (
	"time"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// FixedDelta is the tick duration at ebiten's current TPS.
func FixedDelta() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 0
	}
	return time.Second / time.Duration(tps)
}

// NewClockSystem publishes the duration of each tick. It must run first.
func NewClockSystem(delta func() time.Duration) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		clock := getOrCreateClock(e)
		clock.Delta = delta()
		clock.Tick++
	}
}

// TickDelta returns the duration of the current tick.
func TickDelta(e *ecs.ECS) time.Duration {
	return getOrCreateClock(e).Delta
}

func getOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
