package systems

import (
	"image/color"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/systems/factory"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every box in the collision space when enabled.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Colliders {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}

	cam := CameraPosition(e)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		x, y := WorldToScreen(factory.ObjectCentre(obj), cam)
		x -= obj.W / 2
		y -= obj.H / 2

		// Cull objects outside the viewport
		if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvDuck) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvCracker) {
			c = color.RGBA{255, 0, 0, 255}
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
