package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/sunlit/pkg/math"
)

func TestMoveForwardAndLeftAtZeroYaw(t *testing.T) {
	c := New()

	// W + A held: intent (-1, 0, -1)
	c.Move(math.Vec3{X: -1, Z: -1}, 0.05)

	assert.InDelta(t, -0.05, float64(c.Position.X), 1e-6)
	assert.InDelta(t, 0, float64(c.Position.Y), 1e-6)
	assert.InDelta(t, -0.05, float64(c.Position.Z), 1e-6)
	assert.Equal(t, math.Vec3{}, c.Rotation, "moving must not rotate")
}

func TestMoveFollowsYaw(t *testing.T) {
	c := New()
	c.Rotation.Y = 90

	// Forward with yaw 90 moves along +X in world space
	c.MovePosition(0, 0, -1)

	assert.InDelta(t, 1, float64(c.Position.X), 1e-6)
	assert.InDelta(t, 0, float64(c.Position.Z), 1e-6)
}

func TestMoveVerticalIgnoresYaw(t *testing.T) {
	c := New()
	c.Rotation.Y = 37

	c.Move(math.Vec3{Y: 1}, 0.05)
	c.Move(math.Vec3{Y: 1}, 0.05)

	assert.InDelta(t, 0.1, float64(c.Position.Y), 1e-6)
	assert.InDelta(t, 0, float64(c.Position.X), 1e-6)
	assert.InDelta(t, 0, float64(c.Position.Z), 1e-6)
}

func TestZeroIntentIsNoop(t *testing.T) {
	c := New()
	c.Position = math.Vec3{X: 1, Y: 2, Z: 3}

	c.Move(math.Vec3{}, 0.05)

	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, c.Position)
}

func TestMoveRotation(t *testing.T) {
	c := New()

	c.MoveRotation(1, 2, 0)
	c.MoveRotation(1, 2, 0)

	assert.Equal(t, math.Vec3{X: 2, Y: 4, Z: 0}, c.Rotation)
	assert.Equal(t, math.Vec3{}, c.Position)
}

func TestMoveRotationUnclamped(t *testing.T) {
	c := New()

	for i := 0; i < 100; i++ {
		c.MoveRotation(5, 5, 0)
	}

	assert.Equal(t, float32(500), c.Rotation.X)
	assert.Equal(t, float32(500), c.Rotation.Y)
}

func TestViewMatrixAtOrigin(t *testing.T) {
	assert.Equal(t, math.Identity(), New().ViewMatrix())
}

func TestViewMatrixTranslates(t *testing.T) {
	c := New()
	c.Position = math.Vec3{X: 1, Y: 2, Z: 3}

	got := c.ViewMatrix().TransformPoint(math.Vec3{X: 1, Y: 2, Z: 3})

	assert.InDelta(t, 0, float64(got.X), 1e-6)
	assert.InDelta(t, 0, float64(got.Y), 1e-6)
	assert.InDelta(t, 0, float64(got.Z), 1e-6)
}

func TestProjectionMatrix(t *testing.T) {
	p := Projection{FOV: 60, Near: 0.01, Far: 1000}

	m := p.Matrix(1280, 720)

	assert.Equal(t, float32(-1), m[11])
	assert.InDelta(t, float64(m[5])*720/1280, float64(m[0]), 1e-5)

	// A zero height must not divide by zero
	assert.NotPanics(t, func() { p.Matrix(100, 0) })
}
