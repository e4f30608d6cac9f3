package systems

import (
	"github.com/JimLynchCodes/Quackers-Frontend-v3/components"
	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/gamemath"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
	"github.com/JimLynchCodes/Quackers-Frontend-v3/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input singleton.
// Must run BEFORE ApplyInput in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	input.Stick = readStick(gamepadIDs)
}

// readStick returns the first left stick outside the deadzone, Y-up.
func readStick(gamepads []ebiten.GamepadID) math.Vec2 {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if stick := applyDeadzone(h, -v, cfg.Input.AnalogDeadzone); stick != (math.Vec2{}) {
			return stick
		}
	}
	return math.Vec2{}
}

func applyDeadzone(x, y, deadzone float64) math.Vec2 {
	if gamemath.Length(x, y) < deadzone {
		return math.Vec2{}
	}
	return math.Vec2{X: x, Y: y}
}

// ComputeIntent turns the pressed actions and the stick into a direction of
// length at most 1. Opposite keys cancel. A non-zero stick replaces the keys;
// a centred stick leaves them alone.
func ComputeIntent(pressed [cfg.ActionCount]bool, stick math.Vec2) math.Vec2 {
	if stick != (math.Vec2{}) {
		x, y := gamemath.ClampLength(stick.X, stick.Y, 1)
		return math.Vec2{X: x, Y: y}
	}

	var x, y float64
	if pressed[cfg.ActionMoveLeft] {
		x--
	}
	if pressed[cfg.ActionMoveRight] {
		x++
	}
	if pressed[cfg.ActionMoveUp] {
		y++
	}
	if pressed[cfg.ActionMoveDown] {
		y--
	}
	x, y = gamemath.ClampLength(x, y, 1)
	return math.Vec2{X: x, Y: y}
}

// ApplyInput writes the intent of the local duck and handles quacking.
func ApplyInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	clicked := input.QuackClicked
	input.QuackClicked = false

	player, ok := tags.LocalPlayer.First(ecs.World)
	if !ok {
		return
	}

	if MenuOpen(ecs) {
		components.Movement.Get(player).Intent = math.Vec2{}
		return
	}

	components.Movement.Get(player).Intent = ComputeIntent(input.Current, input.Stick)

	if GetAction(input, cfg.ActionQuack).JustPressed || clicked {
		PlaySFX(ecs, cfg.SoundQuack)
		q := GetOrCreateEventQueue(ecs)
		q.QuackRequests = append(q.QuackRequests, messages.QuackRequest{})
	}
}

// PressQuack is called by the HUD button; the quack goes out on the next tick.
func PressQuack(ecs *ecs.ECS) {
	getOrCreateInput(ecs).QuackClicked = true
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
