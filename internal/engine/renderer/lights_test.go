package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/sunlit/internal/engine/camera"
	"github.com/Faultbox/sunlit/internal/engine/lighting"
	"github.com/Faultbox/sunlit/internal/engine/model"
	"github.com/Faultbox/sunlit/pkg/math"
)

func TestViewLightsTranslatesPointLight(t *testing.T) {
	cam := camera.New()
	cam.Position = math.Vec3{X: 1, Y: 2, Z: 3}
	point := lighting.NewPointLight(math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{Y: 7}, 5)
	dir := lighting.NewDirectionalLight(math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{X: -1}, 5)

	pl, dl := viewLights(cam.ViewMatrix(), point, dir)

	assert.InDelta(t, -1, pl.Position.X, 1e-6)
	assert.InDelta(t, 5, pl.Position.Y, 1e-6)
	assert.InDelta(t, -3, pl.Position.Z, 1e-6)
	// directions ignore translation
	assert.InDelta(t, -1, dl.Direction.X, 1e-6)
	assert.Equal(t, float32(5), pl.Intensity)

	// originals untouched
	assert.Equal(t, math.Vec3{Y: 7}, point.Position)
	assert.Equal(t, math.Vec3{X: -1}, dir.Direction)
}

func TestViewLightsRotatesDirection(t *testing.T) {
	cam := camera.New()
	cam.Rotation.Y = 90

	_, dl := viewLights(cam.ViewMatrix(), nil, lighting.NewDirectionalLight(math.Vec3{X: 1}, math.Vec3{X: 1}, 1))

	assert.InDelta(t, 0, dl.Direction.X, 1e-6)
	assert.InDelta(t, 1, dl.Direction.Z*dl.Direction.Z, 1e-6)
}

func TestInterleave(t *testing.T) {
	data := interleave([]model.Vertex{{
		Position: [3]float32{1, 2, 3},
		TexCoord: [2]float32{4, 5},
		Normal:   [3]float32{6, 7, 8},
	}})

	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8}, data)
	assert.Len(t, data, vertexStride)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, float32(60), cfg.Projection.FOV)
	assert.Equal(t, float32(0.01), cfg.Projection.Near)
	assert.Equal(t, float32(1000), cfg.Projection.Far)
	assert.Equal(t, [3]float32{0.3, 0.3, 0.3}, cfg.Ambient)
	assert.Equal(t, float32(10), cfg.SpecularPower)
}
