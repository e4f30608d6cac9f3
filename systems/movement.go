package systems

import (
	"time"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/gamemath"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/systems/factory"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// StepMovement moves pos along intent at maxSpeed for dt and clamps the result
// into bounds per axis. The returned displacement is the raw, unclamped one.
func StepMovement(pos, intent math.Vec2, maxSpeed float64, dt time.Duration, bounds gamemath.Rect) (math.Vec2, math.Vec2) {
	secs := dt.Seconds()
	disp := math.Vec2{
		X: intent.X * maxSpeed * secs,
		Y: intent.Y * maxSpeed * secs,
	}
	x, y := bounds.Clamp(pos.X+disp.X, pos.Y+disp.Y)
	return math.Vec2{X: x, Y: y}, disp
}

// ApplyMovement moves the local duck and the camera by the same displacement
// and queues a MoveRequest for any tick in which the duck tried to move.
func ApplyMovement(e *ecs.ECS) {
	player, ok := tags.LocalPlayer.First(e.World)
	if !ok {
		return
	}

	mv := components.Movement.Get(player)
	tr := components.Transform.Get(player)
	bounds := factory.WorldRect()

	next, disp := StepMovement(tr.Position, mv.Intent, mv.MaxSpeed, TickDelta(e), bounds)
	tr.Position = next
	if player.HasComponent(components.Object) {
		factory.PlaceObject(components.Object.Get(player).Object, next)
	}

	if cam, ok := components.Camera.First(e.World); ok {
		c := components.Camera.Get(cam)
		x, y := bounds.Clamp(c.Position.X+disp.X, c.Position.Y+disp.Y)
		c.Position = math.Vec2{X: x, Y: y}
	}

	if disp.X == 0 && disp.Y == 0 {
		return
	}

	q := GetOrCreateEventQueue(e)
	q.MoveRequests = append(q.MoveRequests, messages.MoveRequest{Dx: disp.X, Dy: disp.Y})
}
