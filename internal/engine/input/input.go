// Package input handles SDL2 input events for the simulator.
//
// Each frame the caller takes one Snapshot: discrete events (quit, toggles,
// wheel) are edge-triggered from the SDL event queue, while camera movement
// reads the currently-held key state and the relative mouse motion.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// FreeLookButton is the mouse button that enables drag free-look.
const FreeLookButton = sdl.BUTTON_RIGHT

// MouseSensitivity scales relative mouse motion into rotation degrees.
const MouseSensitivity = 0.05

// Snapshot is the per-frame input state consumed by the simulator.
type Snapshot struct {
	// Discrete events drained from the SDL queue this frame.
	Quit         bool
	ResetCamera  bool
	TogglePause  bool
	ToggleOrbits bool
	WheelUp      bool
	WheelDown    bool

	Resized bool
	Width   int
	Height  int

	// Held keys sampled this frame.
	RotateLeft  bool // W: yaw +
	RotateRight bool // S: yaw -
	RotateUp    bool // A: pitch +
	RotateDown  bool // D: pitch -
	ElevateUp   bool // Q
	ElevateDown bool // E
	ZoomIn      bool // = / +
	ZoomOut     bool // -

	// Free-look rotation in degrees, nonzero only while the free-look
	// button is held.
	LookYaw   float32
	LookPitch float32
}

// Input pumps SDL events into per-frame snapshots.
type Input struct{}

// New creates a new input handler.
func New() *Input {
	return &Input{}
}

// Poll drains pending SDL events and samples held keys and mouse state.
func (i *Input) Poll() Snapshot {
	var snap Snapshot

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			snap.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				snap.Resized = true
				snap.Width = int(e.Data1)
				snap.Height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			switch e.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				snap.Quit = true
			case sdl.SCANCODE_R:
				snap.ResetCamera = true
			case sdl.SCANCODE_P:
				snap.TogglePause = true
			case sdl.SCANCODE_O:
				snap.ToggleOrbits = true
			}

		case *sdl.MouseWheelEvent:
			if e.Y > 0 {
				snap.WheelUp = true
			} else if e.Y < 0 {
				snap.WheelDown = true
			}
		}
	}

	keys := sdl.GetKeyboardState()
	snap.RotateLeft = keys[sdl.SCANCODE_W] != 0
	snap.RotateRight = keys[sdl.SCANCODE_S] != 0
	snap.RotateUp = keys[sdl.SCANCODE_A] != 0
	snap.RotateDown = keys[sdl.SCANCODE_D] != 0
	snap.ElevateUp = keys[sdl.SCANCODE_Q] != 0
	snap.ElevateDown = keys[sdl.SCANCODE_E] != 0
	snap.ZoomIn = keys[sdl.SCANCODE_EQUALS] != 0 || keys[sdl.SCANCODE_KP_PLUS] != 0
	snap.ZoomOut = keys[sdl.SCANCODE_MINUS] != 0 || keys[sdl.SCANCODE_KP_MINUS] != 0

	// Relative motion resets every call, so polling each frame keeps the
	// delta scoped to the frame even while the button is up.
	relX, relY, buttons := sdl.GetRelativeMouseState()
	if buttons&sdl.ButtonRMask() != 0 {
		snap.LookYaw = float32(relX) * MouseSensitivity
		snap.LookPitch = -float32(relY) * MouseSensitivity
	}

	return snap
}
