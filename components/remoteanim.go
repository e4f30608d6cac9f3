package components

import (
	"time"

	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/yohamta/donburi"
)

// RemoteAnimationState is the state tag of a remote duck's animation.
type RemoteAnimationState int

const (
	RemoteIdling RemoteAnimationState = iota
	RemoteWalking
)

func (s RemoteAnimationState) String() string {
	switch s {
	case RemoteIdling:
		return "idling"
	case RemoteWalking:
		return "walking"
	}
	return "unknown"
}

// frameTimer is a repeating timer. finished reports whether the interval
// elapsed during the last tick; the remainder carries over.
type frameTimer struct {
	interval time.Duration
	elapsed  time.Duration
	finished bool
}

func (t *frameTimer) tick(delta time.Duration) {
	t.finished = false
	if t.interval <= 0 {
		return
	}
	t.elapsed += delta
	if t.elapsed >= t.interval {
		t.finished = true
		t.elapsed %= t.interval
	}
}

// RemoteAnimationData tracks a remote duck's animation. It is tightly bound to
// the duck sprite sheet: idle frames first, walking frames right after.
type RemoteAnimationData struct {
	timer    frameTimer
	frame    int
	state    RemoteAnimationState
	loops    int
	maxLoops int // 0 = unbounded
}

// NewRemoteAnimation returns an animation at Idling.
func NewRemoteAnimation() RemoteAnimationData {
	return newRemoteAnimationFor(RemoteIdling)
}

func newRemoteAnimationFor(state RemoteAnimationState) RemoteAnimationData {
	def := remoteAnimationDef(state)
	return RemoteAnimationData{
		timer:    frameTimer{interval: def.Interval},
		state:    state,
		maxLoops: def.MaxLoops,
	}
}

func remoteAnimationDef(state RemoteAnimationState) cfg.RemoteAnimationDef {
	if state == RemoteWalking {
		return cfg.RemoteAnimation.Walk
	}
	return cfg.RemoteAnimation.Idle
}

// Update advances the timer. On a frame boundary the frame moves on, a wrap
// to frame 0 counts a loop, and a state with a loop limit that has been
// reached falls back to Idling.
func (a *RemoteAnimationData) Update(delta time.Duration) {
	a.timer.tick(delta)
	if !a.timer.finished {
		return
	}

	a.frame = (a.frame + 1) % remoteAnimationDef(a.state).Frames
	if a.frame != 0 {
		return
	}

	a.loops++
	if a.maxLoops > 0 && a.loops >= a.maxLoops {
		a.SetState(RemoteIdling)
	}
}

// SetState switches to state, resetting timer, frame and loop count. Asking
// for the current state is a no-op.
func (a *RemoteAnimationData) SetState(state RemoteAnimationState) {
	if a.state == state {
		return
	}
	*a = newRemoteAnimationFor(state)
}

// Changed reports whether the animation moved to a new frame this tick.
func (a *RemoteAnimationData) Changed() bool {
	return a.timer.finished
}

// AtlasIndex returns the sprite index in the duck sheet.
func (a *RemoteAnimationData) AtlasIndex() int {
	if a.state == RemoteWalking {
		return cfg.RemoteAnimation.Idle.Frames + a.frame
	}
	return a.frame
}

func (a *RemoteAnimationData) State() RemoteAnimationState { return a.state }
func (a *RemoteAnimationData) Frame() int                  { return a.frame }
func (a *RemoteAnimationData) Loops() int                  { return a.loops }

var RemoteAnimation = donburi.NewComponentType[RemoteAnimationData]()
