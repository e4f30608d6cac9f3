package systems

import (
	"testing"
	"time"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/assets"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	return ecs.NewECS(donburi.NewWorld())
}

// tick runs one tick of duration d through the given systems.
func tick(e *ecs.ECS, d time.Duration, systems ...func(*ecs.ECS)) {
	NewClockSystem(func() time.Duration { return d })(e)
	for _, s := range systems {
		s(e)
	}
}

type fakeBank map[cfg.SoundID]*assets.SoundHandle

func (b fakeBank) Sound(id cfg.SoundID) (*assets.SoundHandle, bool) {
	h, ok := b[id]
	return h, ok
}

type recordingOutbox struct {
	moves  []messages.MoveRequest
	quacks int
}

func (o *recordingOutbox) SendMove(mv messages.MoveRequest) { o.moves = append(o.moves, mv) }
func (o *recordingOutbox) SendQuack()                       { o.quacks++ }

func pendingSounds(e *ecs.ECS) []cfg.SoundID {
	var ids []cfg.SoundID
	for _, req := range GetOrCreateAudio(e).PendingSFX {
		ids = append(ids, req.ID)
	}
	return ids
}

func countTagged(e *ecs.ECS, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(e.World)
}
