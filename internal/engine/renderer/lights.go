package renderer

import (
	"github.com/Faultbox/sunlit/internal/engine/lighting"
	"github.com/Faultbox/sunlit/pkg/math"
)

// viewLights returns copies of the lights with position and direction moved
// into view space. The scene's lights are never modified.
func viewLights(view math.Mat4, point *lighting.PointLight, dir *lighting.DirectionalLight) (lighting.PointLight, lighting.DirectionalLight) {
	var p lighting.PointLight
	if point != nil {
		p = *point
		p.Position = view.TransformPoint(point.Position)
	}
	var d lighting.DirectionalLight
	if dir != nil {
		d = *dir
		d.Direction = view.TransformDirection(dir.Direction)
	}
	return p, d
}

// vec3 converts an RGB triple.
func vec3(c [3]float32) math.Vec3 {
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}
}

// vertexStride is position(3) + texcoord(2) + normal(3) floats.
const vertexStride = 8
