// Package lighting provides the scene's point and directional lights and the
// day/night cycle that drives the directional light.
package lighting

import (
	"github.com/Faultbox/sunlit/pkg/math"
)

// Attenuation describes how a point light fades with distance:
// 1 / (Constant + Linear*d + Exponent*d*d).
type Attenuation struct {
	Constant float32
	Linear   float32
	Exponent float32
}

// PointLight is an omnidirectional light at a world position.
type PointLight struct {
	Color       math.Vec3 // RGB (0-1 range)
	Position    math.Vec3 // World position
	Intensity   float32
	Attenuation Attenuation
}

// NewPointLight creates a point light with no distance falloff.
func NewPointLight(color, position math.Vec3, intensity float32) *PointLight {
	return &PointLight{
		Color:       clampColor(color),
		Position:    position,
		Intensity:   intensity,
		Attenuation: Attenuation{Constant: 1},
	}
}

// Nudge moves the light by delta.
func (l *PointLight) Nudge(delta math.Vec3) {
	l.Position = l.Position.Add(delta)
}

// DirectionalLight is an infinitely distant light such as the sun.
type DirectionalLight struct {
	Color     math.Vec3
	Direction math.Vec3
	Intensity float32
}

// NewDirectionalLight creates a directional light. The colour is stored as
// given; DayCycle.Apply writes it unclamped each frame as well.
func NewDirectionalLight(color, direction math.Vec3, intensity float32) *DirectionalLight {
	return &DirectionalLight{
		Color:     color,
		Direction: direction,
		Intensity: intensity,
	}
}

// clampColor keeps each channel in the 0-1 range.
func clampColor(c math.Vec3) math.Vec3 {
	return math.Vec3{X: clamp01(c.X), Y: clamp01(c.Y), Z: clamp01(c.Z)}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
