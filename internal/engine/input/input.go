// Package input defines the keyboard and mouse state the scene reads each
// frame, independent of the windowing backend.
package input

import "github.com/Faultbox/sunlit/pkg/math"

// Key identifies a keyboard key.
type Key int

// Keys used by the demo.
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyZ
	KeyX
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
	KeyF12
)

var keyNames = map[Key]string{
	KeyW:      "W",
	KeyA:      "A",
	KeyS:      "S",
	KeyD:      "D",
	KeyQ:      "Q",
	KeyE:      "E",
	KeyZ:      "Z",
	KeyX:      "X",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyEscape: "Escape",
	KeyF12:    "F12",
}

// String returns the key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// State is a read-only view of the input for the current frame.
type State interface {
	// IsKeyDown reports whether the key is currently held.
	IsKeyDown(k Key) bool

	// IsRightButtonPressed reports whether the right mouse button is held.
	IsRightButtonPressed() bool

	// DragDelta returns the mouse movement since the previous frame, in
	// pixels. X is horizontal, Y vertical.
	DragDelta() math.Vec2
}

// Snapshot is a plain State value, used for replaying or faking input.
type Snapshot struct {
	Keys        map[Key]bool
	RightButton bool
	Drag        math.Vec2
}

// NewSnapshot returns a snapshot with the given keys held.
func NewSnapshot(keys ...Key) *Snapshot {
	s := &Snapshot{Keys: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		s.Keys[k] = true
	}
	return s
}

// IsKeyDown implements State.
func (s *Snapshot) IsKeyDown(k Key) bool {
	return s.Keys[k]
}

// IsRightButtonPressed implements State.
func (s *Snapshot) IsRightButtonPressed() bool {
	return s.RightButton
}

// DragDelta implements State.
func (s *Snapshot) DragDelta() math.Vec2 {
	return s.Drag
}

// EventType is a window-level event the host loop reacts to.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
)

// Event represents a processed window event.
type Event struct {
	Type   EventType
	Width  int
	Height int
}
