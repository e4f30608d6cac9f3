package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/assets"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/network"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/systems"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/systems/factory"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PondScene is the shared pond: the local duck, the remote ducks and the
// cracker, kept in sync with the server.
type PondScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	registry     *systems.PlayerRegistry
	hud          *ui.HUDUI
	once         sync.Once
}

func NewPondScene(sc SceneChanger, client *network.Client) *PondScene {
	return &PondScene{
		sceneChanger: sc,
		netClient:    client,
	}
}

func (ps *PondScene) Update() {
	ps.once.Do(ps.configure)

	state := ps.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		status := "Disconnected from the pond"
		if err := ps.netClient.LastError(); err != nil {
			status = err.Error()
		}
		log.Printf("[pond] %s, returning to connect screen", status)
		ps.netClient.Disconnect()
		ps.registry.Reset()
		ps.sceneChanger.ChangeScene(NewConnectScene(ps.sceneChanger, status))
		return
	}

	ps.ecsWorld.Update()
	ps.hud.Update()

	if systems.LeaveRequested(ps.ecsWorld) {
		log.Printf("[pond] leaving the pond")
		ps.netClient.Disconnect()
		ps.registry.Reset()
		ps.sceneChanger.ChangeScene(NewConnectScene(ps.sceneChanger, "You left the pond"))
	}
}

func (ps *PondScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ps.ecsWorld == nil {
		return
	}

	ps.ecsWorld.Draw(screen)
	ps.hud.UI.Draw(screen)
}

func (ps *PondScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Println("[pond] failed to load shaders:", err)
	}

	fsys := assetFS()
	bank := systems.LoadSounds(fsys)

	ps.ecsWorld = ecs.NewECS(donburi.NewWorld())
	ps.registry = systems.NewPlayerRegistry(ps.ecsWorld.World)

	systems.SpawnPond(ps.ecsWorld, systems.LoadPond(fsys))
	factory.CreateSpace(ps.ecsWorld)
	factory.CreateCamera(ps.ecsWorld)
	factory.EnsureCracker(ps.ecsWorld)

	ps.hud = ui.NewHUDUI(func() { systems.PressQuack(ps.ecsWorld) })
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Order matters: timers advance before anything reads Changed, and
	// outbound requests are flushed after everything that queues them.
	ps.ecsWorld.AddSystem(systems.NewClockSystem(systems.FixedDelta))
	ps.ecsWorld.AddSystem(systems.NewEventTranslationSystem(ps.netClient.DrainEnvelopes))
	ps.ecsWorld.AddSystem(systems.UpdateInput)
	ps.ecsWorld.AddSystem(systems.UpdatePondMenu)
	ps.ecsWorld.AddSystem(systems.UpdateToggles)
	ps.ecsWorld.AddSystem(systems.NewSessionSystem(ps.registry))
	ps.ecsWorld.AddSystem(systems.ApplyInput)
	ps.ecsWorld.AddSystem(systems.NewCrackerSystem(bank))
	ps.ecsWorld.AddSystem(systems.ApplyMovement)
	ps.ecsWorld.AddSystem(systems.UpdateRemoteMotion)
	ps.ecsWorld.AddSystem(systems.UpdateRemoteAnimationTimers)
	ps.ecsWorld.AddSystem(systems.UpdateRemoteAnimationAtlas)
	ps.ecsWorld.AddSystem(systems.NewStepSoundSystem(rng))
	ps.ecsWorld.AddSystem(systems.NewPickupSystem())
	ps.ecsWorld.AddSystem(systems.UpdateNotice)
	ps.ecsWorld.AddSystem(systems.NewOutboundSystem(ps.netClient))
	ps.ecsWorld.AddSystem(systems.NewAudioSystem(bank))

	ps.ecsWorld.AddRenderer(cfg.Default, systems.DrawPond)
	ps.ecsWorld.AddRenderer(cfg.Default, systems.DrawReeds)
	ps.ecsWorld.AddRenderer(cfg.Default, systems.DrawCracker)
	ps.ecsWorld.AddRenderer(cfg.Default, systems.DrawDucks)
	ps.ecsWorld.AddRenderer(cfg.Default, systems.DrawDebug)
	ps.ecsWorld.AddRenderer(cfg.Default, systems.NewHUDRenderer(func() string {
		return ps.netClient.State().String()
	}))
	ps.ecsWorld.AddRenderer(cfg.Default, systems.DrawNotice)
	ps.ecsWorld.AddRenderer(cfg.Default, systems.DrawPondMenu)
}
