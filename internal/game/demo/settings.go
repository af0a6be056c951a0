package demo

import (
	"github.com/Faultbox/sunlit/internal/config"
	"github.com/Faultbox/sunlit/internal/engine/lighting"
	"github.com/Faultbox/sunlit/pkg/math"
)

// Settings describes the initial scene.
type Settings struct {
	Model       string
	Texture     string // Optional; the material colour is used when empty
	Reflectance float32
	Scale       float32
	Position    math.Vec3

	InitialLightAngle float32

	PointColor       math.Vec3
	PointPosition    math.Vec3
	PointIntensity   float32
	PointAttenuation lighting.Attenuation

	SunColor     math.Vec3
	SunDirection math.Vec3
	SunIntensity float32
}

// DefaultSettings returns the stock scene: the textured bust at the origin,
// a white point light above it and the sun starting at 180°.
func DefaultSettings() Settings {
	return Settings{
		Model:             "models/tichonov.obj",
		Texture:           "textures/tih.png",
		Reflectance:       1,
		Scale:             1,
		InitialLightAngle: lighting.InitialAngle,
		PointColor:        math.Vec3{X: 1, Y: 1, Z: 1},
		PointPosition:     math.Vec3{Y: 7},
		PointIntensity:    5,
		PointAttenuation:  lighting.Attenuation{Constant: 0, Linear: 0, Exponent: 1},
		SunColor:          math.Vec3{X: 1, Y: 1, Z: 1},
		SunDirection:      math.Vec3{X: -1},
		SunIntensity:      5,
	}
}

// SettingsFromConfig builds scene settings from the scene section.
func SettingsFromConfig(c config.SceneConfig) Settings {
	s := DefaultSettings()
	s.Model = c.Model
	s.Texture = c.Texture
	s.Reflectance = c.Reflectance
	s.Scale = c.Scale
	s.Position = vec3(c.Position)
	s.InitialLightAngle = c.InitialLightAngle

	pl := c.PointLight
	s.PointColor = vec3(pl.Color)
	s.PointPosition = vec3(pl.Position)
	s.PointIntensity = pl.Intensity
	s.PointAttenuation = lighting.Attenuation{
		Constant: pl.Attenuation[0],
		Linear:   pl.Attenuation[1],
		Exponent: pl.Attenuation[2],
	}
	return s
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
