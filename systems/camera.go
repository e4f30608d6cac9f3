package systems

import (
	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CameraPosition returns the world point at the centre of the screen.
func CameraPosition(e *ecs.ECS) math.Vec2 {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return math.Vec2{}
	}
	return components.Camera.Get(cameraEntry).Position
}

// WorldToScreen converts a Y-up world position into screen pixels for a
// camera centred on cam.
func WorldToScreen(pos, cam math.Vec2) (float64, float64) {
	x := pos.X - cam.X + float64(config.C.Width)/2
	y := cam.Y - pos.Y + float64(config.C.Height)/2
	return x, y
}
