package scenes

import (
	"image/color"
	"strings"
	"sync"

	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/network"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/systems"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ConnectScene asks for a server and a name, then dials.
type ConnectScene struct {
	sceneChanger SceneChanger
	connectUI    *ui.ConnectUI
	netClient    *network.Client
	once         sync.Once

	server, name string
	status       string
}

// NewConnectScene creates the connect screen. status is shown on entry, for
// example why the last session ended.
func NewConnectScene(sc SceneChanger, status string) *ConnectScene {
	return &ConnectScene{sceneChanger: sc, status: status}
}

func (s *ConnectScene) Update() {
	s.once.Do(s.configure)

	s.connectUI.Update()

	if s.netClient == nil {
		return
	}

	switch s.netClient.State() {
	case network.StateConnected:
		systems.RememberConnection(s.server, s.name)
		client := s.netClient
		s.netClient = nil
		s.sceneChanger.ChangeScene(NewPondScene(s.sceneChanger, client))

	case network.StateError:
		errMsg := "Connection failed"
		if err := s.netClient.LastError(); err != nil {
			errMsg = err.Error()
		}
		s.connectUI.SetStatus(errMsg)
		s.connectUI.SetConnecting(false)
		s.netClient.Disconnect()
		s.netClient = nil

	case network.StateConnecting:
		s.connectUI.SetStatus("Connecting...")

	case network.StateDisconnected:
		s.connectUI.SetStatus("Disconnected")
		s.connectUI.SetConnecting(false)
		s.netClient = nil
	}
}

func (s *ConnectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 40, 60, 255})

	if s.connectUI == nil {
		return
	}

	s.connectUI.UI.Draw(screen)
}

func (s *ConnectScene) configure() {
	s.connectUI = ui.NewConnectUI(cfg.Network.ServerURL, cfg.Network.PlayerName, s.onConnect)
	s.connectUI.SetStatus(s.status)

	if cfg.Debug.SkipConnect {
		cfg.Debug.SkipConnect = false
		s.onConnect(cfg.Network.ServerURL, cfg.Network.PlayerName)
	}
}

func (s *ConnectScene) onConnect(server, name string) {
	server = strings.TrimSpace(server)
	if server == "" {
		server = cfg.Network.ServerURL
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = cfg.Network.PlayerName
	}

	if s.netClient != nil {
		s.netClient.Disconnect()
	}

	s.server, s.name = server, name
	s.connectUI.SetStatus("Connecting...")
	s.connectUI.SetConnecting(true)

	s.netClient = network.NewClient()
	s.netClient.Connect(server, name)
}
