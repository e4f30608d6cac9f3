package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Duck sounds
	SoundQuack
	SoundStep1
	SoundStep2
	SoundStep3
	SoundStep4
	// Cracker sounds
	SoundCrackerChew
	SoundCrackerGot
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	// HearingRadius is the distance at which a spatial sound fades to silence.
	HearingRadius float64
	// PanWidth is the horizontal distance that pans a sound fully to one ear.
	PanWidth float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	AssetDir          string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
	StepSounds        []SoundID
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		HearingRadius: 600,
		PanWidth:      400,
	}

	Sound = SoundConfig{
		AssetDir: "assets",
		SFXPaths: map[SoundID]string{
			SoundQuack:       "audio/sound_effects/duck-quack.mp3",
			SoundStep1:       "audio/sound_effects/step1.ogg",
			SoundStep2:       "audio/sound_effects/step2.ogg",
			SoundStep3:       "audio/sound_effects/step3.ogg",
			SoundStep4:       "audio/sound_effects/step4.ogg",
			SoundCrackerChew: "audio/sound_effects/chewing-cracker-sound.wav",
			SoundCrackerGot:  "audio/sound_effects/boing.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundStep1: 0.6,
			SoundStep2: 0.6,
			SoundStep3: 0.6,
			SoundStep4: 0.6,
		},
		StepSounds: []SoundID{SoundStep1, SoundStep2, SoundStep3, SoundStep4},
	}
}
