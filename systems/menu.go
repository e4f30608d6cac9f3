package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/fonts"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const numMenuOptions = int(components.PondMenuLeave) + 1

// UpdatePondMenu opens and closes the pond menu and applies its options.
// This system should run AFTER UpdateInput but BEFORE ApplyInput.
func UpdatePondMenu(e *ecs.ECS) {
	menu := GetOrCreatePondMenu(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenu).JustPressed {
		if menu.IsOpen {
			closeMenu(menu)
		} else {
			menu.IsOpen = true
			menu.SelectedOption = components.PondMenuResume
		}
		return
	}

	if !menu.IsOpen {
		return
	}

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		navigateMenu(menu, -1)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		navigateMenu(menu, +1)
	}
	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		adjustMenuOption(e, menu, -1)
	}
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		adjustMenuOption(e, menu, +1)
	}
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		selectMenuOption(e, menu)
	}
}

// navigateMenu moves the selection with wrap-around.
func navigateMenu(m *components.PondMenuData, direction int) {
	m.SelectedOption = components.PondMenuOption(
		(int(m.SelectedOption) + direction + numMenuOptions) % numMenuOptions,
	)
}

// adjustMenuOption changes the value of the selected option.
func adjustMenuOption(e *ecs.ECS, m *components.PondMenuData, direction int) {
	switch m.SelectedOption {
	case components.PondMenuSFXVolume:
		SetSFXVolume(e, adjustVolumeStep(GetSFXVolume(), direction))
		// Preview at the new level
		PlaySFX(e, cfg.SoundQuack)
	case components.PondMenuMute:
		SetMuted(e, !IsMuted())
	case components.PondMenuFullscreen:
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	case components.PondMenuResolution:
		cycleResolution(m, direction)
	}
}

func selectMenuOption(e *ecs.ECS, m *components.PondMenuData) {
	switch m.SelectedOption {
	case components.PondMenuResume:
		closeMenu(m)
	case components.PondMenuLeave:
		closeMenu(m)
		m.LeaveRequested = true
	default:
		adjustMenuOption(e, m, +1)
	}
}

func closeMenu(m *components.PondMenuData) {
	m.IsOpen = false
	SaveCurrentSettings()
}

// adjustVolumeStep moves volume to the neighbouring configured step.
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.Menu.VolumeSteps
	if len(steps) == 0 {
		return current
	}
	idx := findClosestStepIndex(current, steps) + direction
	if idx < 0 {
		idx = 0
	}
	if idx >= len(steps) {
		idx = len(steps) - 1
	}
	return steps[idx]
}

func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

func cycleResolution(m *components.PondMenuData, direction int) {
	n := len(cfg.Settings.Resolutions)
	if n == 0 || ebiten.IsFullscreen() {
		return
	}
	m.ResolutionIndex = (m.ResolutionIndex + direction + n) % n
	res := cfg.Settings.Resolutions[m.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
}

// LeaveRequested reports, once, that the player chose to leave the pond.
func LeaveRequested(e *ecs.ECS) bool {
	m := GetOrCreatePondMenu(e)
	leave := m.LeaveRequested
	m.LeaveRequested = false
	return leave
}

// MenuOpen reports whether the pond menu is showing.
func MenuOpen(e *ecs.ECS) bool {
	return GetOrCreatePondMenu(e).IsOpen
}

// DrawPondMenu renders the menu overlay.
func DrawPondMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreatePondMenu(e)
	if !menu.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.OverlayColor, false)

	title := fonts.Title.Get()
	drawScreenCentred(screen, "Pond menu", title, width/2, 48, cfg.Menu.TextColorSelected)

	face := fonts.Bold.Get()
	step := cfg.Menu.ItemHeight + cfg.Menu.ItemGap
	startY := (height - float64(numMenuOptions)*step) / 2

	for i := 0; i < numMenuOptions; i++ {
		opt := components.PondMenuOption(i)
		clr := cfg.Menu.TextColorNormal
		if opt == menu.SelectedOption {
			clr = cfg.Menu.TextColorSelected
		}
		line := menuLabel(opt)
		if value := menuValue(menu, opt); value != "" {
			line += "   " + value
		}
		drawScreenCentred(screen, line, face, width/2, startY+float64(i)*step+cfg.Menu.ItemHeight, clr)
	}

	hint := "Arrows: choose   Left/Right: change   Enter: select   Esc: close"
	drawScreenCentred(screen, hint, fonts.Small.Get(), width/2, height-12, cfg.Menu.TextColorNormal)
}

func menuLabel(opt components.PondMenuOption) string {
	if int(opt) < len(cfg.Menu.Options) {
		return cfg.Menu.Options[opt]
	}
	return ""
}

func menuValue(m *components.PondMenuData, opt components.PondMenuOption) string {
	switch opt {
	case components.PondMenuSFXVolume:
		return formatVolumeBar(GetSFXVolume())
	case components.PondMenuMute:
		return formatToggle(IsMuted())
	case components.PondMenuFullscreen:
		return formatToggle(ebiten.IsFullscreen())
	case components.PondMenuResolution:
		if m.ResolutionIndex < len(cfg.Settings.Resolutions) {
			return cfg.Settings.Resolutions[m.ResolutionIndex].Label
		}
	}
	return ""
}

// formatVolumeBar renders volume as a ten-segment bar with a percentage.
func formatVolumeBar(volume float64) string {
	filled := int(gamemath.Clamp(volume, 0, 1)*10 + 0.5)
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat("|", filled), strings.Repeat(".", 10-filled), int(volume*100+0.5))
}

func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

func drawScreenCentred(screen *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	width := font.MeasureString(face, s).Round()
	text.Draw(screen, s, face, int(x)-width/2, int(y), clr)
}

// GetOrCreatePondMenu returns the singleton PondMenu component, creating if needed.
func GetOrCreatePondMenu(e *ecs.ECS) *components.PondMenuData {
	entry, ok := components.PondMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.PondMenu))
		components.PondMenu.SetValue(entry, components.PondMenuData{
			ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
		})
	}
	return components.PondMenu.Get(entry)
}
