package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// RemoteMotionData glides a remote duck towards the last position the server
// reported. Nil tweens mean the duck is at rest on Target.
type RemoteMotionData struct {
	X, Y   *gween.Tween
	Target math.Vec2
}

// Gliding reports whether a glide is in progress.
func (m *RemoteMotionData) Gliding() bool {
	return m.X != nil && m.Y != nil
}

var RemoteMotion = donburi.NewComponentType[RemoteMotionData]()
