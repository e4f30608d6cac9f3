package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/gamemath"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/systems/factory"
	"github.com/yohamta/donburi/features/math"
)

var testBounds = gamemath.Rect{MinX: -1000, MinY: -1000, MaxX: 1000, MaxY: 1000}

func TestStepMovement(t *testing.T) {
	cases := []struct {
		name     string
		pos      math.Vec2
		intent   math.Vec2
		dt       time.Duration
		wantPos  math.Vec2
		wantDisp math.Vec2
	}{
		{"still", math.Vec2{X: 5, Y: 5}, math.Vec2{}, time.Second, math.Vec2{X: 5, Y: 5}, math.Vec2{}},
		{"right", math.Vec2{}, math.Vec2{X: 1}, 500 * time.Millisecond, math.Vec2{X: 200}, math.Vec2{X: 200}},
		{"down", math.Vec2{}, math.Vec2{Y: -1}, 250 * time.Millisecond, math.Vec2{Y: -100}, math.Vec2{Y: -100}},
		{"clamped", math.Vec2{X: 990}, math.Vec2{X: 1}, time.Second, math.Vec2{X: 1000}, math.Vec2{X: 400}},
		{"clamped per axis", math.Vec2{X: -990, Y: 0}, math.Vec2{X: -0.6, Y: 0.8}, time.Second, math.Vec2{X: -1000, Y: 320}, math.Vec2{X: -240, Y: 320}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos, disp := StepMovement(c.pos, c.intent, 400, c.dt, testBounds)
			if !near(pos, c.wantPos) {
				t.Errorf("pos = %+v, want %+v", pos, c.wantPos)
			}
			if !near(disp, c.wantDisp) {
				t.Errorf("disp = %+v, want %+v", disp, c.wantDisp)
			}
		})
	}
}

func TestStepMovementStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pos := math.Vec2{}
	for i := 0; i < 5000; i++ {
		intent := ComputeIntent([cfg.ActionCount]bool{}, math.Vec2{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1})
		dt := time.Duration(rng.Intn(2000)) * time.Millisecond
		pos, _ = StepMovement(pos, intent, 400, dt, testBounds)
		if !testBounds.Contains(pos.X, pos.Y) {
			t.Fatalf("step %d left the bounds: %+v", i, pos)
		}
	}
}

func TestApplyMovementEmitsOnlyWhenMoving(t *testing.T) {
	e := newTestECS(t)
	factory.CreateCamera(e)
	player := factory.CreateLocalPlayer(e, messages.YouJoined{PlayerID: 1, Name: "me"})

	tick(e, 100*time.Millisecond, ApplyMovement)
	if n := len(GetOrCreateEventQueue(e).MoveRequests); n != 0 {
		t.Fatalf("stationary tick queued %d move requests", n)
	}

	components.Movement.Get(player).Intent = math.Vec2{X: 1}
	tick(e, 100*time.Millisecond, ApplyMovement)

	q := GetOrCreateEventQueue(e)
	if len(q.MoveRequests) != 1 {
		t.Fatalf("got %d move requests, want 1", len(q.MoveRequests))
	}
	if mv := q.MoveRequests[0]; !nearFloat(mv.Dx, 40) || mv.Dy != 0 {
		t.Fatalf("move request = %+v, want dx=40", mv)
	}
	if pos := components.Transform.Get(player).Position; !near(pos, math.Vec2{X: 40}) {
		t.Fatalf("player at %+v", pos)
	}
}

func TestApplyMovementCameraFollowsDisplacement(t *testing.T) {
	e := newTestECS(t)
	cam := factory.CreateCamera(e)
	player := factory.CreateLocalPlayer(e, messages.YouJoined{PlayerID: 1, X: 990})

	components.Camera.Get(cam).Position = math.Vec2{X: 900, Y: 50}
	components.Movement.Get(player).Intent = math.Vec2{X: 1}

	tick(e, 250*time.Millisecond, ApplyMovement)

	if pos := components.Transform.Get(player).Position; pos.X != cfg.World.MaxX {
		t.Fatalf("player x = %v, want clamped to %v", pos.X, cfg.World.MaxX)
	}
	if c := components.Camera.Get(cam).Position; !near(c, math.Vec2{X: 1000, Y: 50}) {
		t.Fatalf("camera = %+v, want (1000, 50)", c)
	}

	// The request carries the raw displacement, not the clamped one
	q := GetOrCreateEventQueue(e)
	if len(q.MoveRequests) != 1 || !nearFloat(q.MoveRequests[0].Dx, 100) {
		t.Fatalf("move requests = %+v, want one with dx=100", q.MoveRequests)
	}
}

func TestOutboundFlush(t *testing.T) {
	e := newTestECS(t)
	q := GetOrCreateEventQueue(e)
	q.MoveRequests = append(q.MoveRequests, messages.MoveRequest{Dx: 1}, messages.MoveRequest{Dy: 2})
	q.QuackRequests = append(q.QuackRequests, messages.QuackRequest{})

	out := &recordingOutbox{}
	NewOutboundSystem(out)(e)

	if len(out.moves) != 2 || out.quacks != 1 {
		t.Fatalf("sent %d moves and %d quacks", len(out.moves), out.quacks)
	}
	if len(q.MoveRequests) != 0 || len(q.QuackRequests) != 0 {
		t.Fatal("outbound queues not emptied")
	}
}

func near(a, b math.Vec2) bool {
	return nearFloat(a.X, b.X) && nearFloat(a.Y, b.Y)
}

func nearFloat(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
