package demo

import (
	"github.com/Faultbox/sunlit/internal/engine/input"
	"github.com/Faultbox/sunlit/internal/engine/lighting"
	"github.com/Faultbox/sunlit/pkg/math"
)

// Per-frame control constants.
const (
	CameraStep       float32 = 0.05
	MouseSensitivity float32 = 0.2
	LightNudgeStep   float32 = 0.1
)

// Intents is what the player asked for this frame.
type Intents struct {
	// Move holds -1, 0 or 1 per camera axis.
	Move math.Vec3
	// LightNudge is added to the point light position.
	LightNudge math.Vec3
	Angle      lighting.AngleNudge
	// Rotate is set while the right button is held; Drag is the raw delta.
	Rotate bool
	Drag   math.Vec2
}

// axis returns -1 if neg is held, else 1 if pos is held, else 0.
func axis(state input.State, neg, pos input.Key) float32 {
	switch {
	case state.IsKeyDown(neg):
		return -1
	case state.IsKeyDown(pos):
		return 1
	}
	return 0
}

// ReadIntents maps the input state to intents. When both keys of a pair are
// held the first one listed wins.
//
//	W/S     camera forward/back (Z)
//	A/D     camera left/right (X)
//	Q/E     camera down/up (Y)
//	Left    point light Z +0.1, Right Z -0.1, Up X +0.1, Down X -0.1
//	Z/X     sun angle down/up
//	RMB     camera look
func ReadIntents(state input.State) Intents {
	var in Intents

	in.Move = math.Vec3{
		X: axis(state, input.KeyA, input.KeyD),
		Y: axis(state, input.KeyQ, input.KeyE),
		Z: axis(state, input.KeyW, input.KeyS),
	}

	switch {
	case state.IsKeyDown(input.KeyLeft):
		in.LightNudge.Z = LightNudgeStep
	case state.IsKeyDown(input.KeyRight):
		in.LightNudge.Z = -LightNudgeStep
	case state.IsKeyDown(input.KeyUp):
		in.LightNudge.X = LightNudgeStep
	case state.IsKeyDown(input.KeyDown):
		in.LightNudge.X = -LightNudgeStep
	}

	switch {
	case state.IsKeyDown(input.KeyZ):
		in.Angle = lighting.NudgeDown
	case state.IsKeyDown(input.KeyX):
		in.Angle = lighting.NudgeUp
	}

	if state.IsRightButtonPressed() {
		in.Rotate = true
		in.Drag = state.DragDelta()
	}
	return in
}

// Rotation returns the pitch and yaw offsets for the frame. The vertical drag
// drives pitch and the horizontal drag drives yaw.
func (in Intents) Rotation() (pitch, yaw float32) {
	if !in.Rotate {
		return 0, 0
	}
	return in.Drag.Y * MouseSensitivity, in.Drag.X * MouseSensitivity
}
