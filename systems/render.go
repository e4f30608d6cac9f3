package systems

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/assets"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/fonts"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"golang.org/x/image/font"
)

var (
	duckBody     *ebiten.Image
	duckShaderOp = &ebiten.DrawRectShaderOptions{}
)

// DrawPond fills the background and the pond inside the world bounds.
func DrawPond(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.ReedGreen)

	cam := CameraPosition(e)
	x0, y0 := WorldToScreen(math.Vec2{X: cfg.World.MinX, Y: cfg.World.MaxY}, cam)
	x1, y1 := WorldToScreen(math.Vec2{X: cfg.World.MaxX, Y: cfg.World.MinY}, cam)
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), cfg.PondBlue, false)
}

func DrawReeds(e *ecs.ECS, screen *ebiten.Image) {
	cam := CameraPosition(e)
	tags.Reed.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry).Position
		size := components.Reed.Get(entry)
		x, y := WorldToScreen(pos, cam)
		vector.DrawFilledRect(screen,
			float32(x-size.Width/2), float32(y-size.Height/2),
			float32(size.Width), float32(size.Height),
			cfg.ReedGreen, false)
	})
}

// DrawCracker draws the cracker and its points label.
func DrawCracker(e *ecs.ECS, screen *ebiten.Image) {
	cracker, ok := tags.Cracker.First(e.World)
	if !ok {
		return
	}
	cam := CameraPosition(e)
	x, y := WorldToScreen(components.Transform.Get(cracker).Position, cam)
	s := cfg.Cracker.Size
	vector.DrawFilledRect(screen, float32(x-s/2), float32(y-s/2), float32(s), float32(s), cfg.CrackerTan, false)

	tags.CrackerLabel.Each(e.World, func(entry *donburi.Entry) {
		drawCentredText(screen, components.Label.Get(entry).Text, fonts.Bold.Get(),
			components.Transform.Get(entry).Position, cam, cfg.White)
	})
}

// DrawDucks draws every duck with its name above it. Remote ducks bob with
// their animation frame.
func DrawDucks(e *ecs.ECS, screen *ebiten.Image) {
	cam := CameraPosition(e)
	small := fonts.Small.Get()

	esync.NetworkEntityQuery.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Player) || !entry.HasComponent(components.Transform) {
			return
		}
		player := components.Player.Get(entry)
		pos := components.Transform.Get(entry).Position

		frame := 0
		if entry.HasComponent(components.Sprite) {
			frame = components.Sprite.Get(entry).AtlasIndex
		}
		drawDuck(screen, pos, cam, cfg.DuckColor(player.Color), frame)

		name := player.Name
		if cfg.Debug.ShowIDs {
			if nid := esync.GetNetworkId(entry); nid != nil {
				name += " #" + strconv.Itoa(int(*nid))
			}
		}
		labelPos := math.Vec2{X: pos.X, Y: pos.Y + cfg.Duck.LabelOffset}
		drawCentredText(screen, name, small, labelPos, cam, cfg.White)
	})
}

// drawDuck draws the body for a sheet index: idle frames bob, walking frames
// alternate feet.
func drawDuck(screen *ebiten.Image, pos, cam math.Vec2, c color.RGBA, frame int) {
	w, h := cfg.Duck.Width, cfg.Duck.Height
	x, y := WorldToScreen(pos, cam)
	x -= w / 2
	y -= h / 2

	walking := frame >= cfg.RemoteAnimation.Idle.Frames
	if !walking {
		y -= float64(frame % 2)
	}

	if assets.TintShader != nil {
		if duckBody == nil {
			duckBody = ebiten.NewImage(int(w), int(h))
			duckBody.Fill(cfg.White)
		}
		duckShaderOp.GeoM.Reset()
		duckShaderOp.GeoM.Translate(x, y)
		duckShaderOp.Images[0] = duckBody
		duckShaderOp.Uniforms = map[string]any{
			"Tint": []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1},
		}
		screen.DrawRectShader(int(w), int(h), assets.TintShader, duckShaderOp)
	} else {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
	}

	if walking {
		step := (frame - cfg.RemoteAnimation.Idle.Frames) % 2
		footX := x + w/4 + float64(step)*w/2 - 2
		vector.DrawFilledRect(screen, float32(footX), float32(y+h), 4, 3, cfg.Orange, false)
	}
}

func drawCentredText(screen *ebiten.Image, s string, face font.Face, pos, cam math.Vec2, clr color.Color) {
	x, y := WorldToScreen(pos, cam)
	width := font.MeasureString(face, s).Round()
	text.Draw(screen, s, face, int(x)-width/2, int(y), clr)
}

// NewHUDRenderer draws the player's points and the connection line.
func NewHUDRenderer(status func() string) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		regular := fonts.Regular.Get()

		if player, ok := tags.LocalPlayer.First(e.World); ok {
			pts := components.Player.Get(player).Points
			text.Draw(screen, fmt.Sprintf("Points: %d", pts), regular, 8, 18, cfg.Yellow)
		}

		others := 0
		tags.OtherPlayer.Each(e.World, func(*donburi.Entry) { others++ })
		info := fmt.Sprintf("%s - ducks: %d", status(), others+1)
		text.Draw(screen, info, fonts.Small.Get(), 8, cfg.C.Height-8, cfg.LightGreen)
	}
}
