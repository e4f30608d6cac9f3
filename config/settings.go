package config

import (
	"image/color"
	"time"
)

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains window and preference storage options
type SettingsConfig struct {
	AppName                string // gdata namespace
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// MenuConfig contains pond menu overlay values
type MenuConfig struct {
	Options           []string
	VolumeSteps       []float64
	ItemHeight        float64
	ItemGap           float64
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
}

// NoticeConfig contains the values of the short notices shown at the top of
// the screen, such as a duck joining.
type NoticeConfig struct {
	Duration   time.Duration
	BoxPadding float64
	TopMargin  float64
	BoxColor   color.RGBA
	TextColor  color.RGBA
}

// Settings is the global settings configuration
var Settings SettingsConfig
var Menu MenuConfig
var Notice NoticeConfig

func init() {
	Settings = SettingsConfig{
		AppName: "quackers",
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
	}

	Menu = MenuConfig{
		Options:           []string{"Back to the pond", "Sound", "Mute", "Fullscreen", "Window", "Leave pond"},
		VolumeSteps:       []float64{0, 0.25, 0.5, 0.75, 1},
		ItemHeight:        20,
		ItemGap:           8,
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: Yellow,
	}

	Notice = NoticeConfig{
		Duration:   3 * time.Second,
		BoxPadding: 6,
		TopMargin:  12,
		BoxColor:   BlackOverlay,
		TextColor:  White,
	}
}
