package systems

import (
	"fmt"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// ShowNotice replaces the current notice with s.
func ShowNotice(e *ecs.ECS, s string) {
	n := getOrCreateNotice(e)
	n.Text = s
	n.Remaining = cfg.Notice.Duration
}

// Noticef is ShowNotice with formatting.
func Noticef(e *ecs.ECS, format string, args ...any) {
	ShowNotice(e, fmt.Sprintf(format, args...))
}

// UpdateNotice counts the current notice down and clears it once expired.
func UpdateNotice(e *ecs.ECS) {
	n := getOrCreateNotice(e)
	if n.Remaining <= 0 {
		return
	}
	n.Remaining -= TickDelta(e)
	if n.Remaining <= 0 {
		n.Remaining = 0
		n.Text = ""
	}
}

// CurrentNotice returns the notice being shown, if any.
func CurrentNotice(e *ecs.ECS) (string, bool) {
	n := getOrCreateNotice(e)
	return n.Text, n.Remaining > 0
}

// DrawNotice renders the current notice at the top centre of the screen.
func DrawNotice(e *ecs.ECS, screen *ebiten.Image) {
	s, ok := CurrentNotice(e)
	if !ok {
		return
	}

	face := fonts.Regular.Get()
	bounds, _ := font.BoundString(face, s)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	padding := cfg.Notice.BoxPadding
	boxW := float64(textWidth) + padding*2
	boxH := float64(textHeight) + padding*2
	boxX := (float64(screen.Bounds().Dx()) - boxW) / 2
	boxY := cfg.Notice.TopMargin

	vector.DrawFilledRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), cfg.Notice.BoxColor, false)
	text.Draw(screen, s, face, int(boxX+padding), int(boxY+padding)+textHeight, cfg.Notice.TextColor)
}

func getOrCreateNotice(e *ecs.ECS) *components.NoticeData {
	entry, ok := components.Notice.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Notice))
	}
	return components.Notice.Get(entry)
}
