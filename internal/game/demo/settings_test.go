package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/sunlit/internal/config"
	"github.com/Faultbox/sunlit/internal/engine/lighting"
	"github.com/Faultbox/sunlit/pkg/math"
)

func defaultSceneConfig() config.SceneConfig {
	return config.Default().Scene
}

func TestSettingsFromConfigOverrides(t *testing.T) {
	c := defaultSceneConfig()
	c.Model = "models/cube.gltf"
	c.Texture = ""
	c.Position = [3]float32{1, 2, 3}
	c.InitialLightAngle = 45
	c.PointLight.Attenuation = [3]float32{1, 0.5, 0.25}

	s := SettingsFromConfig(c)

	assert.Equal(t, "models/cube.gltf", s.Model)
	assert.Empty(t, s.Texture)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, s.Position)
	assert.Equal(t, float32(45), s.InitialLightAngle)
	assert.Equal(t, lighting.Attenuation{Constant: 1, Linear: 0.5, Exponent: 0.25}, s.PointAttenuation)
	// the sun itself is not configurable
	assert.Equal(t, math.Vec3{X: -1}, s.SunDirection)
}
