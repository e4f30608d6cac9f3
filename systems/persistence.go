package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings represents the preferences stored on disk. Nothing about the
// pond itself is ever saved; the server owns that.
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
	LastServer string  `json:"lastServer"`
	LastName   string  `json:"lastName"`
}

// SettingsStore is the subset of *gdata.Manager used for preferences.
type SettingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var settingsStore SettingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("[persist] could not initialize persistence: %v", err)
		return err
	}
	settingsStore = m
	return nil
}

// UseSettingsStore replaces the backing store.
func UseSettingsStore(s SettingsStore) {
	settingsStore = s
}

// LoadSettings loads settings from disk. It returns nil when nothing has been
// saved yet or storage is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persist] could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persist] could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persist] could not serialize settings: %v", err)
		return err
	}

	if err := settingsStore.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persist] could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings merges the live audio and window state into the stored
// settings, keeping the remembered connection.
func SaveCurrentSettings() {
	saved, _ := LoadSettings()
	if saved == nil {
		saved = &SavedSettings{}
	}
	saved.SFXVolume = globalSFXVolume
	saved.Muted = globalMuted
	saved.Fullscreen = ebiten.IsFullscreen()
	_ = SaveSettings(saved)
}

// RememberConnection stores the server and name last used to join.
func RememberConnection(server, name string) {
	saved, _ := LoadSettings()
	if saved == nil {
		saved = &SavedSettings{SFXVolume: globalSFXVolume, Muted: globalMuted}
	}
	saved.LastServer = server
	saved.LastName = name
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalSFXVolume = saved.SFXVolume
	globalMuted = saved.Muted
	ebiten.SetFullscreen(saved.Fullscreen)

	if saved.LastServer != "" {
		cfg.Network.ServerURL = saved.LastServer
	}
	if saved.LastName != "" {
		cfg.Network.PlayerName = saved.LastName
	}
}

// UpdateToggles handles the mute and fullscreen keys.
func UpdateToggles(e *ecs.ECS) {
	input := getOrCreateInput(e)
	changed := false

	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		SetMuted(e, !globalMuted)
		changed = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		changed = true
	}

	if changed {
		SaveCurrentSettings()
	}
}
