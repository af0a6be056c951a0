// Package sdlinput implements input.State on top of SDL2 events.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/sunlit/internal/engine/input"
	"github.com/Faultbox/sunlit/pkg/math"
)

const rightButton = uint8(sdl.BUTTON_RIGHT)

var scancodes = map[sdl.Scancode]input.Key{
	sdl.Scancode(sdl.SCANCODE_W):      input.KeyW,
	sdl.Scancode(sdl.SCANCODE_A):      input.KeyA,
	sdl.Scancode(sdl.SCANCODE_S):      input.KeyS,
	sdl.Scancode(sdl.SCANCODE_D):      input.KeyD,
	sdl.Scancode(sdl.SCANCODE_Q):      input.KeyQ,
	sdl.Scancode(sdl.SCANCODE_E):      input.KeyE,
	sdl.Scancode(sdl.SCANCODE_Z):      input.KeyZ,
	sdl.Scancode(sdl.SCANCODE_X):      input.KeyX,
	sdl.Scancode(sdl.SCANCODE_LEFT):   input.KeyLeft,
	sdl.Scancode(sdl.SCANCODE_RIGHT):  input.KeyRight,
	sdl.Scancode(sdl.SCANCODE_UP):     input.KeyUp,
	sdl.Scancode(sdl.SCANCODE_DOWN):   input.KeyDown,
	sdl.Scancode(sdl.SCANCODE_ESCAPE): input.KeyEscape,
	sdl.Scancode(sdl.SCANCODE_F12):    input.KeyF12,
}

// Input tracks held keys, the right mouse button and per-frame mouse motion.
type Input struct {
	events      []input.Event
	held        map[input.Key]bool
	rightButton bool
	drag        math.Vec2
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]input.Event, 0, 4),
		held:   make(map[input.Key]bool),
	}
}

// Update polls SDL events for the new frame.
// Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.drag = math.Vec2{}

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.handle(event) {
			quit = true
		}
	}
	return quit
}

// handle applies one SDL event. Returns true on a quit request.
func (i *Input) handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, input.Event{Type: input.EventQuit})
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			i.events = append(i.events, input.Event{
				Type:   input.EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		}

	case *sdl.KeyboardEvent:
		key, ok := scancodes[e.Keysym.Scancode]
		if !ok {
			return false
		}
		if e.Type == sdl.KEYDOWN {
			i.held[key] = true
		} else if e.Type == sdl.KEYUP {
			delete(i.held, key)
		}

	case *sdl.MouseMotionEvent:
		i.drag.X += float32(e.XRel)
		i.drag.Y += float32(e.YRel)

	case *sdl.MouseButtonEvent:
		if e.Button != rightButton {
			return false
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			i.rightButton = true
		} else if e.Type == sdl.MOUSEBUTTONUP {
			i.rightButton = false
		}
	}
	return false
}

// Events returns the window events from the last Update.
func (i *Input) Events() []input.Event {
	return i.events
}

// IsKeyDown implements input.State.
func (i *Input) IsKeyDown(k input.Key) bool {
	return i.held[k]
}

// IsRightButtonPressed implements input.State.
func (i *Input) IsRightButtonPressed() bool {
	return i.rightButton
}

// DragDelta implements input.State.
func (i *Input) DragDelta() math.Vec2 {
	return i.drag
}
