package lighting

import (
	gomath "math"

	"github.com/Faultbox/sunlit/pkg/math"
)

// Day/night constants. Angles are in degrees; 0 is noon, ±90 the horizon.
const (
	InitialAngle  float32 = 180
	AngleStep     float32 = 1.5
	MinAngle      float32 = -90
	MaxAngle      float32 = 90
	TwilightStart float32 = 80
	Horizon       float32 = 90

	// Twilight never drops green/blue below these, so the light warms
	// towards orange instead of going black.
	MinGreen float32 = 0.9
	MinBlue  float32 = 0.5
)

// Mode is the phase of the day derived from the sun angle.
type Mode int

const (
	ModeDaylight Mode = iota
	ModeTwilight
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDaylight:
		return "daylight"
	case ModeTwilight:
		return "twilight"
	default:
		return "unknown"
	}
}

// AngleNudge is a manual request to move the sun.
type AngleNudge int

const (
	NudgeNone AngleNudge = iota
	NudgeDown            // Towards -90
	NudgeUp              // Towards +90
)

// ModeFor returns the phase for a sun angle.
func ModeFor(angle float32) Mode {
	if abs(angle) >= TwilightStart {
		return ModeTwilight
	}
	return ModeDaylight
}

// TwilightFactor maps |angle| 80..90 linearly onto 1..0.
// Angles beyond the horizon give values outside [0,1]; they are not clamped.
func TwilightFactor(angle float32) float32 {
	return 1 - (abs(angle)-TwilightStart)/(Horizon-TwilightStart)
}

// SunDirection returns the X/Y components of the light direction for an
// angle. The sun sweeps the X-Y plane only.
func SunDirection(angle float32) (x, y float32) {
	rad := math.Radians(angle)
	return float32(gomath.Sin(rad)), float32(gomath.Cos(rad))
}

// DayCycle owns the sun angle, the only persistent state behind the
// directional light.
type DayCycle struct {
	Angle float32
}

// NewDayCycle creates a cycle starting at the given angle.
func NewDayCycle(angle float32) *DayCycle {
	return &DayCycle{Angle: angle}
}

// Nudge moves the sun one step. The clamp only applies on the side being
// moved towards, so an out-of-band angle stays out of band until driven in.
func (c *DayCycle) Nudge(n AngleNudge) {
	switch n {
	case NudgeDown:
		c.Angle -= AngleStep
		if c.Angle < MinAngle {
			c.Angle = MinAngle
		}
	case NudgeUp:
		c.Angle += AngleStep
		if c.Angle > MaxAngle {
			c.Angle = MaxAngle
		}
	}
}

// Mode returns the current phase.
func (c *DayCycle) Mode() Mode {
	return ModeFor(c.Angle)
}

// InBand reports whether the angle lies in [MinAngle, MaxAngle].
func (c *DayCycle) InBand() bool {
	return c.Angle >= MinAngle && c.Angle <= MaxAngle
}

// Apply derives the directional light's intensity, colour and direction from
// the angle and returns the phase used. Direction.Z and, in twilight, the red
// channel are left as they are.
func (c *DayCycle) Apply(l *DirectionalLight) Mode {
	mode := c.Mode()
	switch mode {
	case ModeTwilight:
		factor := TwilightFactor(c.Angle)
		l.Intensity = factor
		l.Color.Y = max(factor, MinGreen)
		l.Color.Z = max(factor, MinBlue)
	default:
		l.Intensity = 1
		l.Color = math.Vec3{X: 1, Y: 1, Z: 1}
	}
	l.Direction.X, l.Direction.Y = SunDirection(c.Angle)
	return mode
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
