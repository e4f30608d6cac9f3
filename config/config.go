package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; ducks, labels and the cracker share it.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // simulation ticks per second
}

// WorldConfig is the fixed rectangle every position is clamped into.
// World coordinates are Y-up, matching the server.
type WorldConfig struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// MovementConfig contains local player movement values
type MovementConfig struct {
	MaxSpeed float64 // world units per second
}

// CrackerConfig contains shared object (cracker) values
type CrackerConfig struct {
	LabelOffset    float64 // vertical offset of the points label above the cracker
	Size           float64 // side of the cracker square, also its pickup box
	StartingPoints int     // shown before the server says otherwise
}

// DuckConfig contains duck body dimensions
type DuckConfig struct {
	Width       float64
	Height      float64
	LabelOffset float64 // vertical offset of the name label above the body
}

// CameraConfig contains camera values
type CameraConfig struct {
	// SnapOnJoin moves the camera onto the local player when a session starts.
	SnapOnJoin bool
}

// NetworkConfig contains websocket client values
type NetworkConfig struct {
	ServerURL         string
	PlayerName        string
	InboundQueueSize  int
	OutboundQueueSize int
	DialTimeoutSecs   int
}

// PaletteConfig maps server colour names to duck colours
type PaletteConfig struct {
	Colors   map[string]color.RGBA
	Fallback color.RGBA // used for unknown names, including the "error" sentinel
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipConnect bool // connect straight away using Network.ServerURL
	ShowIDs     bool // draw network ids next to ducks
	Colliders   bool // outline every box in the collision space
}

// Global configuration instances
var C *Config
var World WorldConfig
var Movement MovementConfig
var Cracker CrackerConfig
var Duck DuckConfig
var Camera CameraConfig
var Network NetworkConfig
var Palette PaletteConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	PondBlue     = color.RGBA{R: 40, G: 90, B: 140, A: 255}
	ReedGreen    = color.RGBA{R: 60, G: 120, B: 60, A: 255}
	CrackerTan   = color.RGBA{R: 222, G: 184, B: 135, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	World = WorldConfig{
		MinX: -1000,
		MinY: -1000,
		MaxX: 1000,
		MaxY: 1000,
	}

	Movement = MovementConfig{
		MaxSpeed: 400,
	}

	Cracker = CrackerConfig{
		LabelOffset:    22,
		Size:           18,
		StartingPoints: 10,
	}

	Duck = DuckConfig{
		Width:       24,
		Height:      20,
		LabelOffset: 20,
	}

	Camera = CameraConfig{
		SnapOnJoin: true,
	}

	Network = NetworkConfig{
		ServerURL:         "ws://localhost:8080/ws",
		PlayerName:        "duck",
		InboundQueueSize:  256,
		OutboundQueueSize: 64,
		DialTimeoutSecs:   5,
	}

	Palette = PaletteConfig{
		Colors: map[string]color.RGBA{
			"white":  White,
			"yellow": Yellow,
			"orange": Orange,
			"red":    Red,
			"green":  BrightGreen,
			"blue":   Blue,
			"purple": Purple,
			"pink":   Magenta,
		},
		Fallback: Gray,
	}

	Debug = DebugConfig{}
}

// DuckColor returns the palette colour for a server colour name.
func DuckColor(name string) color.RGBA {
	if c, ok := Palette.Colors[name]; ok {
		return c
	}
	return Palette.Fallback
}
