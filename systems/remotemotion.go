package systems

import (
	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// StartGlide tweens a remote duck from where it is now to target. A glide
// already in progress is replaced, starting from the current position.
func StartGlide(entry *donburi.Entry, target math.Vec2) {
	tr := components.Transform.Get(entry)
	m := components.RemoteMotion.Get(entry)
	m.Target = target

	d := float32(cfg.RemoteAnimation.GlideDuration.Seconds())
	if d <= 0 {
		tr.Position = target
		m.X, m.Y = nil, nil
		return
	}

	m.X = gween.New(float32(tr.Position.X), float32(target.X), d, ease.OutQuad)
	m.Y = gween.New(float32(tr.Position.Y), float32(target.Y), d, ease.OutQuad)
}

// UpdateRemoteMotion advances every glide by the tick duration.
func UpdateRemoteMotion(e *ecs.ECS) {
	dt := float32(TickDelta(e).Seconds())
	components.RemoteMotion.Each(e.World, func(entry *donburi.Entry) {
		m := components.RemoteMotion.Get(entry)
		if !m.Gliding() {
			return
		}

		tr := components.Transform.Get(entry)
		x, doneX := m.X.Update(dt)
		y, doneY := m.Y.Update(dt)
		tr.Position = math.Vec2{X: float64(x), Y: float64(y)}

		if doneX && doneY {
			tr.Position = m.Target
			m.X, m.Y = nil, nil
		}
	})
}
