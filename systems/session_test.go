package systems

import (
	"testing"
	"time"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/systems/factory"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// deliver runs translation and the session system over envs.
func deliver(t *testing.T, e *ecs.ECS, reg *PlayerRegistry, envs ...messages.Envelope) {
	t.Helper()
	NewEventTranslationSystem(func() []messages.Envelope { return envs })(e)
	NewSessionSystem(reg)(e)
	NewCrackerSystem(fakeBank{})(e)
}

func TestMalformedYouJoinedSpawnsSentinelDuck(t *testing.T) {
	e := newTestECS(t)
	reg := NewPlayerRegistry(e.World)

	deliver(t, e, reg, messages.Envelope{Type: messages.KindYouJoined, Data: []byte(`not json`)})

	local, ok := reg.Local()
	if !ok {
		t.Fatal("no local duck after a malformed you_joined")
	}
	if name := components.Player.Get(local).Name; name != Fallback {
		t.Fatalf("name = %q, want %q", name, Fallback)
	}
	if pos := components.Transform.Get(local).Position; pos != (math.Vec2{}) {
		t.Fatalf("position = %+v, want origin", pos)
	}
	if id, _ := reg.LocalID(); id != 0 {
		t.Fatalf("local id = %d, want 0", id)
	}
}

func TestYouJoinedSpawnsRoster(t *testing.T) {
	e := newTestECS(t)
	reg := NewPlayerRegistry(e.World)

	deliver(t, e, reg, envelope(t, messages.KindYouJoined, messages.YouJoined{
		PlayerID:      9,
		Name:          "me",
		X:             10,
		Y:             -20,
		CrackerX:      50,
		CrackerY:      60,
		CrackerPoints: 4,
		OtherPlayers: []messages.OtherPlayerJoined{
			{PlayerID: 1, Name: "a", X: 1},
			{PlayerID: 2, Name: "b", X: 2},
			{PlayerID: 3, Name: "c", X: 3},
		},
	}))

	if n := reg.OtherCount(); n != 3 {
		t.Fatalf("registered %d other ducks, want 3", n)
	}
	if n := countTagged(e, tags.OtherPlayer); n != 3 {
		t.Fatalf("world has %d other ducks, want 3", n)
	}
	for _, id := range []esync.NetworkId{1, 2, 3} {
		entry, ok := reg.Other(id)
		if !ok {
			t.Fatalf("duck %d missing", id)
		}
		if x := components.Transform.Get(entry).Position.X; x != float64(id) {
			t.Errorf("duck %d at x=%v", id, x)
		}
	}

	local, _ := reg.Local()
	if pos := components.Transform.Get(local).Position; pos != (math.Vec2{X: 10, Y: -20}) {
		t.Fatalf("local duck at %+v", pos)
	}

	cracker, ok := tags.Cracker.First(e.World)
	if !ok {
		t.Fatal("no cracker")
	}
	if pos := components.Transform.Get(cracker).Position; pos != (math.Vec2{X: 50, Y: 60}) {
		t.Fatalf("cracker at %+v", pos)
	}
	if p := components.Cracker.Get(cracker).Points; p != 4 {
		t.Fatalf("cracker points = %d", p)
	}
}

func TestYouJoinedSnapsCamera(t *testing.T) {
	old := cfg.Camera.SnapOnJoin
	cfg.Camera.SnapOnJoin = true
	t.Cleanup(func() { cfg.Camera.SnapOnJoin = old })

	e := newTestECS(t)
	cam := factory.CreateCamera(e)
	reg := NewPlayerRegistry(e.World)

	HandleYouJoined(e, reg, messages.YouJoined{PlayerID: 1, X: 30, Y: 40})

	if pos := components.Camera.Get(cam).Position; pos != (math.Vec2{X: 30, Y: 40}) {
		t.Fatalf("camera at %+v", pos)
	}
}

func TestSecondYouJoinedReplacesSession(t *testing.T) {
	e := newTestECS(t)
	reg := NewPlayerRegistry(e.World)

	HandleYouJoined(e, reg, messages.YouJoined{PlayerID: 1})
	HandleOtherPlayerJoined(e, reg, messages.OtherPlayerJoined{PlayerID: 2})
	HandleYouJoined(e, reg, messages.YouJoined{PlayerID: 5})

	if n := countTagged(e, tags.LocalPlayer); n != 1 {
		t.Fatalf("%d local ducks", n)
	}
	if n := countTagged(e, tags.OtherPlayer); n != 0 {
		t.Fatalf("%d other ducks survived the rejoin", n)
	}
	if id, _ := reg.LocalID(); id != 5 {
		t.Fatalf("local id = %d", id)
	}
}

func TestOtherPlayerJoinedWithOwnIDIsIgnored(t *testing.T) {
	e := newTestECS(t)
	reg := NewPlayerRegistry(e.World)

	HandleYouJoined(e, reg, messages.YouJoined{PlayerID: 4})
	HandleOtherPlayerJoined(e, reg, messages.OtherPlayerJoined{PlayerID: 4, Name: "ghost"})

	if n := countTagged(e, tags.OtherPlayer); n != 0 {
		t.Fatalf("spawned %d ducks for our own id", n)
	}
}

func TestOtherPlayerJoinedTwiceRefreshes(t *testing.T) {
	e := newTestECS(t)
	reg := NewPlayerRegistry(e.World)

	HandleOtherPlayerJoined(e, reg, messages.OtherPlayerJoined{PlayerID: 2, Name: "old", X: 1})
	HandleOtherPlayerJoined(e, reg, messages.OtherPlayerJoined{PlayerID: 2, Name: "new", X: 8})

	if n := countTagged(e, tags.OtherPlayer); n != 1 {
		t.Fatalf("%d ducks, want 1", n)
	}
	entry, _ := reg.Other(2)
	if name := components.Player.Get(entry).Name; name != "new" {
		t.Fatalf("name = %q", name)
	}
	if x := components.Transform.Get(entry).Position.X; x != 8 {
		t.Fatalf("x = %v", x)
	}
}

func TestMoveForUnknownDuckIsIgnored(t *testing.T) {
	e := newTestECS(t)
	reg := NewPlayerRegistry(e.World)

	HandleOtherPlayerMoved(e, reg, messages.OtherPlayerMoved{PlayerID: 42, X: 5, Y: 5})

	if n := countTagged(e, tags.OtherPlayer); n != 0 {
		t.Fatalf("move spawned %d ducks", n)
	}
}

func TestMoveStartsWalkingAndGlides(t *testing.T) {
	e := newTestECS(t)
	reg := NewPlayerRegistry(e.World)
	HandleOtherPlayerJoined(e, reg, messages.OtherPlayerJoined{PlayerID: 2})
	entry, _ := reg.Other(2)

	HandleOtherPlayerMoved(e, reg, messages.OtherPlayerMoved{PlayerID: 2, X: 30, Y: -12})

	if s := components.RemoteAnimation.Get(entry).State(); s != components.RemoteWalking {
		t.Fatalf("state = %v, want walking", s)
	}
	if !components.RemoteMotion.Get(entry).Gliding() {
		t.Fatal("duck is not gliding")
	}

	tick(e, 50*time.Millisecond, UpdateRemoteMotion)
	mid := components.Transform.Get(entry).Position
	if mid.X <= 0 || mid.X >= 30 {
		t.Fatalf("mid-glide x = %v, want between 0 and 30", mid.X)
	}

	for i := 0; i < 3; i++ {
		tick(e, 50*time.Millisecond, UpdateRemoteMotion)
	}
	if pos := components.Transform.Get(entry).Position; pos != (math.Vec2{X: 30, Y: -12}) {
		t.Fatalf("glide ended at %+v", pos)
	}
	if components.RemoteMotion.Get(entry).Gliding() {
		t.Fatal("glide did not finish")
	}
}

func TestRemoteQuackIsSpatial(t *testing.T) {
	e := newTestECS(t)
	reg := NewPlayerRegistry(e.World)
	HandleOtherPlayerJoined(e, reg, messages.OtherPlayerJoined{PlayerID: 2, X: 100, Y: 50})

	HandleOtherPlayerQuacked(e, reg, messages.OtherPlayerQuacked{PlayerID: 2})
	HandleOtherPlayerQuacked(e, reg, messages.OtherPlayerQuacked{PlayerID: 99})

	pending := GetOrCreateAudio(e).PendingSFX
	if len(pending) != 1 {
		t.Fatalf("%d sounds queued, want 1", len(pending))
	}
	req := pending[0]
	if req.ID != cfg.SoundQuack || !req.Spatial || req.Position != (math.Vec2{X: 100, Y: 50}) {
		t.Fatalf("queued %+v", req)
	}
}
