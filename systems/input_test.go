package systems

import (
	"testing"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/gamemath"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/systems/factory"
	"github.com/yohamta/donburi/features/math"
)

func pressed(ids ...cfg.ActionID) [cfg.ActionCount]bool {
	var p [cfg.ActionCount]bool
	for _, id := range ids {
		p[id] = true
	}
	return p
}

func TestComputeIntent(t *testing.T) {
	cases := []struct {
		name  string
		keys  [cfg.ActionCount]bool
		stick math.Vec2
		want  math.Vec2
	}{
		{"nothing", pressed(), math.Vec2{}, math.Vec2{}},
		{"left", pressed(cfg.ActionMoveLeft), math.Vec2{}, math.Vec2{X: -1}},
		{"up is positive y", pressed(cfg.ActionMoveUp), math.Vec2{}, math.Vec2{Y: 1}},
		{"opposites cancel", pressed(cfg.ActionMoveLeft, cfg.ActionMoveRight), math.Vec2{}, math.Vec2{}},
		{"centred stick keeps keys", pressed(cfg.ActionMoveDown), math.Vec2{}, math.Vec2{Y: -1}},
		{"stick overrides keys", pressed(cfg.ActionMoveLeft), math.Vec2{X: 0.5, Y: 0.25}, math.Vec2{X: 0.5, Y: 0.25}},
		{"stick clamped", pressed(), math.Vec2{X: 3, Y: 4}, math.Vec2{X: 0.6, Y: 0.8}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ComputeIntent(c.keys, c.stick); !near(got, c.want) {
				t.Fatalf("intent = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestComputeIntentDiagonalIsUnitLength(t *testing.T) {
	got := ComputeIntent(pressed(cfg.ActionMoveUp, cfg.ActionMoveRight), math.Vec2{})
	if l := gamemath.Length(got.X, got.Y); !nearFloat(l, 1) {
		t.Fatalf("diagonal length = %v", l)
	}
	if !nearFloat(got.X, got.Y) || got.X <= 0 {
		t.Fatalf("diagonal = %+v", got)
	}
}

func TestApplyInputQuack(t *testing.T) {
	e := newTestECS(t)
	factory.CreateLocalPlayer(e, messages.YouJoined{PlayerID: 1})
	input := getOrCreateInput(e)

	input.Current = pressed(cfg.ActionQuack)
	ApplyInput(e)

	// Held, not just pressed.
	input.Previous = input.Current
	ApplyInput(e)

	PressQuack(e)
	ApplyInput(e)

	q := GetOrCreateEventQueue(e)
	if n := len(q.QuackRequests); n != 2 {
		t.Fatalf("%d quack requests, want 2", n)
	}
	quacks := 0
	for _, req := range GetOrCreateAudio(e).PendingSFX {
		if req.ID == cfg.SoundQuack && !req.Spatial {
			quacks++
		}
	}
	if quacks != 2 {
		t.Fatalf("%d local quack sounds, want 2", quacks)
	}
}

func TestApplyInputWritesIntent(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreateLocalPlayer(e, messages.YouJoined{PlayerID: 1})
	input := getOrCreateInput(e)
	input.Current = pressed(cfg.ActionMoveRight)

	ApplyInput(e)

	if got := components.Movement.Get(player).Intent; got != (math.Vec2{X: 1}) {
		t.Fatalf("intent = %+v", got)
	}
}

func TestApplyDeadzone(t *testing.T) {
	if got := applyDeadzone(0.05, 0.05, 0.2); got != (math.Vec2{}) {
		t.Fatalf("inside deadzone gave %+v", got)
	}
	if got := applyDeadzone(0.5, -0.5, 0.2); got != (math.Vec2{X: 0.5, Y: -0.5}) {
		t.Fatalf("outside deadzone gave %+v", got)
	}
}
