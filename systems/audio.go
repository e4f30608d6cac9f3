package systems

import (
	"encoding/binary"
	"io/fs"
	"log"
	"math"
	"sync"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/assets"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/gamemath"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/tags"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
	loaderInitOnce     sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// LoadSounds starts decoding every configured sound effect from fsys in the
// background. Later calls return the same loader.
func LoadSounds(fsys fs.FS) *assets.AudioLoader {
	loaderInitOnce.Do(func() {
		globalAudioLoader = assets.NewAudioLoader(fsys, cfg.Audio.SampleRate)
		globalAudioLoader.LoadAll(cfg.Sound.SFXPaths)
	})
	return globalAudioLoader
}

// NewAudioSystem plays the sounds queued this tick. Sounds that are missing
// or still loading are skipped.
func NewAudioSystem(bank SoundBank) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		initGlobalAudio()

		audioData := GetOrCreateAudio(e)
		if player, ok := tags.LocalPlayer.First(e.World); ok {
			audioData.Listener = components.Transform.Get(player).Position
		}

		for _, req := range audioData.PendingSFX {
			playSFX(bank, audioData, req)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

func playSFX(bank SoundBank, audioData *components.AudioData, req components.SoundRequest) {
	if audioData.Muted || audioData.SFXVolume <= 0 || bank == nil {
		return
	}

	h, ok := bank.Sound(req.ID)
	if !ok {
		log.Printf("[audio] sound %d not registered, skipping", req.ID)
		return
	}
	if !h.IsReady() {
		log.Printf("[audio] %s not loaded yet, skipping", h.Path())
		return
	}

	volume := audioData.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[req.ID]; ok {
		volume *= mult
	}

	pcm := h.PCM()
	if req.Spatial {
		gain, pan := SpatialGains(audioData.Listener, req.Position)
		if gain <= 0 {
			return
		}
		volume *= gain
		pcm = PanPCM16(pcm, pan)
	}

	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
}

// SpatialGains returns the volume (0..1) and stereo pan (-1 left .. 1 right)
// of a sound at emitter heard from listener.
func SpatialGains(listener, emitter dmath.Vec2) (volume, pan float64) {
	dx := emitter.X - listener.X
	dy := emitter.Y - listener.Y

	volume = 1
	if r := cfg.Audio.HearingRadius; r > 0 {
		volume = gamemath.Clamp(1-gamemath.Length(dx, dy)/r, 0, 1)
	}
	if w := cfg.Audio.PanWidth; w > 0 {
		pan = gamemath.Clamp(dx/w, -1, 1)
	}
	return volume, pan
}

// PanPCM16 returns interleaved 16-bit little-endian stereo pcm with its
// balance shifted by pan. The far channel is attenuated, the near one kept.
func PanPCM16(pcm []byte, pan float64) []byte {
	if pan == 0 {
		return pcm
	}
	left := math.Min(1, 1-pan)
	right := math.Min(1, 1+pan)

	out := make([]byte, len(pcm))
	copy(out, pcm)
	for i := 0; i+4 <= len(out); i += 4 {
		l := int16(binary.LittleEndian.Uint16(out[i:]))
		r := int16(binary.LittleEndian.Uint16(out[i+2:]))
		binary.LittleEndian.PutUint16(out[i:], uint16(int16(float64(l)*left)))
		binary.LittleEndian.PutUint16(out[i+2:], uint16(int16(float64(r)*right)))
	}
	return out
}

// PlaySFX queues a sound effect heard the same everywhere.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, components.SoundRequest{ID: sound})
}

// PlaySpatialSFX queues a sound effect emitted at pos.
func PlaySpatialSFX(e *ecs.ECS, sound cfg.SoundID, pos dmath.Vec2) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, components.SoundRequest{
		ID:       sound,
		Spatial:  true,
		Position: pos,
	})
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	GetOrCreateAudio(e).SFXVolume = volume
}

// SetMuted silences or restores all sound effects.
func SetMuted(e *ecs.ECS, muted bool) {
	globalMuted = muted
	GetOrCreateAudio(e).Muted = muted
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

func IsMuted() bool {
	return globalMuted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			Muted:      globalMuted,
			PendingSFX: make([]components.SoundRequest, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
