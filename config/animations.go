package config

import "time"

// RemoteAnimationDef describes one state of a remote duck's sprite strip.
type RemoteAnimationDef struct {
	Frames   int
	Interval time.Duration // time each frame is shown
	MaxLoops int           // 0 = loop forever
}

// RemoteAnimationConfig holds the two remote duck states and their step timing.
type RemoteAnimationConfig struct {
	Idle RemoteAnimationDef
	Walk RemoteAnimationDef

	// StepFrames are the walking frames where a foot touches the ground.
	StepFrames []int

	// GlideDuration is how long a remote duck takes to reach a moved-to position.
	GlideDuration time.Duration
}

var RemoteAnimation RemoteAnimationConfig

func init() {
	RemoteAnimation = RemoteAnimationConfig{
		Idle:          RemoteAnimationDef{Frames: 2, Interval: 500 * time.Millisecond},
		Walk:          RemoteAnimationDef{Frames: 6, Interval: 50 * time.Millisecond, MaxLoops: 1},
		StepFrames:    []int{2, 5},
		GlideDuration: 100 * time.Millisecond,
	}
}
