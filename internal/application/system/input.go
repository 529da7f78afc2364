package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/TeamDev2015/labyLink/internal/infrastructure/config"
)

// gamepadDeadzone ignores stick drift around the centre
const gamepadDeadzone = 0.15

// InputSystem turns keyboard and gamepad state into tilt samples
type InputSystem struct {
	config *config.TiltConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.TiltConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds the current input state
type InputState struct {
	Left, Right, Up, Down bool

	// Stick position in [-1, 1], x to the right, y downward
	StickX, StickY float64

	Restart bool // Replay the same seed
	NewSeed bool // Start over with a fresh seed
	Pause   bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	input := InputState{
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:      ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:    ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		NewSeed: inpututil.IsKeyJustPressed(ebiten.KeyN),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		input.StickX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		input.StickY = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			input.Restart = true
		}
		break
	}

	return input
}

// Tilt converts the input state to a raw tilt sample.
// Tilt x follows the accelerometer convention: positive rolls the ball left.
func (s *InputSystem) Tilt(input InputState) (x, y float64) {
	accel := s.config.KeyAccel

	if input.Left {
		x += accel
	}
	if input.Right {
		x -= accel
	}
	if input.Up {
		y -= accel
	}
	if input.Down {
		y += accel
	}

	if absFloat(input.StickX) > gamepadDeadzone {
		x -= input.StickX * accel
	}
	if absFloat(input.StickY) > gamepadDeadzone {
		y += input.StickY * accel
	}

	return clampFloat(x, accel), clampFloat(y, accel)
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func clampFloat(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
