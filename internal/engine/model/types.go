// Package model provides meshes, materials and placed scene items.
package model

import (
	"github.com/Faultbox/sunlit/internal/engine/texture"
	"github.com/Faultbox/sunlit/pkg/math"
)

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return math.Vec3{
		X: (b.Min[0] + b.Max[0]) / 2,
		Y: (b.Min[1] + b.Max[1]) / 2,
		Z: (b.Min[2] + b.Max[2]) / 2,
	}
}

// Handle is a GPU-side resource attached to a mesh by the renderer.
type Handle interface {
	Release()
}

// DefaultColour is used by materials without a texture.
var DefaultColour = [4]float32{1, 1, 1, 1}

// Material describes the surface of a mesh.
type Material struct {
	// Texture is optional; Colour is used when nil.
	Texture     *texture.Texture
	Colour      [4]float32
	Reflectance float32
}

// NewMaterial creates an untextured material with the default colour.
func NewMaterial() Material {
	return Material{Colour: DefaultColour}
}

// IsTextured reports whether the material samples a texture.
func (m Material) IsTextured() bool {
	return m.Texture != nil
}
