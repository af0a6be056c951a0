// Package camera provides the free-fly camera used by the scene.
package camera

import (
	gomath "math"

	"github.com/Faultbox/sunlit/pkg/math"
)

// Camera is a free-fly camera. Rotation holds pitch (X), yaw (Y) and roll (Z)
// in degrees.
type Camera struct {
	Position math.Vec3
	Rotation math.Vec3
}

// New creates a camera at the origin looking down -Z.
func New() *Camera {
	return &Camera{}
}

// MovePosition translates the camera along its own axes. offsetZ moves along
// the view direction projected on the ground plane, offsetX strafes, offsetY
// moves straight up or down.
func (c *Camera) MovePosition(offsetX, offsetY, offsetZ float32) {
	yaw := math.Radians(c.Rotation.Y)

	if offsetZ != 0 {
		c.Position.X += float32(gomath.Sin(yaw)) * -1.0 * offsetZ
		c.Position.Z += float32(gomath.Cos(yaw)) * offsetZ
	}
	if offsetX != 0 {
		strafe := yaw - gomath.Pi/2
		c.Position.X += float32(gomath.Sin(strafe)) * -1.0 * offsetX
		c.Position.Z += float32(gomath.Cos(strafe)) * offsetX
	}
	c.Position.Y += offsetY
}

// Move translates by a movement intent scaled by step.
func (c *Camera) Move(intent math.Vec3, step float32) {
	d := intent.Scale(step)
	c.MovePosition(d.X, d.Y, d.Z)
}

// MoveRotation adds the offsets (degrees) to pitch, yaw and roll. Angles are
// not clamped or wrapped.
func (c *Camera) MoveRotation(pitch, yaw, roll float32) {
	c.Rotation.X += pitch
	c.Rotation.Y += yaw
	c.Rotation.Z += roll
}

// ViewMatrix returns the world-to-view transform: rotate by pitch, then yaw,
// then translate by -Position.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.RotateX(math.Radians(c.Rotation.X)).
		Mul(math.RotateY(math.Radians(c.Rotation.Y))).
		Mul(math.Translate(c.Position.Negate()))
}

// Projection holds the perspective parameters.
type Projection struct {
	FOV  float32 // Vertical field of view in degrees
	Near float32
	Far  float32
}

// Matrix returns the projection matrix for a viewport size.
func (p Projection) Matrix(width, height int) math.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(float32(math.Radians(p.FOV)), aspect, p.Near, p.Far)
}
