package components

import (
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SoundRequest is a one-shot playback queued by a gameplay system.
type SoundRequest struct {
	ID       cfg.SoundID
	Spatial  bool
	Position math.Vec2 // world position of the emitter when Spatial
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	Listener   math.Vec2 // where spatial sounds are heard from
	PendingSFX []SoundRequest
}

var Audio = donburi.NewComponentType[AudioData]()
