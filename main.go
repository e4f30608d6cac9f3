package main

import (
	"flag"
	"image"
	"log"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/fonts"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/scenes"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewConnectScene(g, "")

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	server := flag.String("server", "", "pond server websocket URL")
	name := flag.String("name", "", "duck name")
	skipConnect := flag.Bool("skip-connect", false, "join straight away without the connect screen")
	showIDs := flag.Bool("show-ids", false, "draw network ids next to ducks")
	colliders := flag.Bool("colliders", false, "outline collision boxes")
	flag.Parse()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Environment beats saved settings, flags beat both
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Could not read .env: %v", err)
	}
	if *server != "" {
		config.Network.ServerURL = *server
	}
	if *name != "" {
		config.Network.PlayerName = *name
	}
	config.Debug.SkipConnect = *skipConnect
	config.Debug.ShowIDs = *showIDs
	config.Debug.Colliders = *colliders

	res := config.Settings.Resolutions[config.Settings.DefaultResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
	ebiten.SetWindowTitle("Quackers")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
