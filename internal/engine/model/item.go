package model

import (
	"github.com/Faultbox/sunlit/pkg/math"
)

// Item places a mesh in the world. Rotation is in degrees.
type Item struct {
	Mesh     *Mesh
	Position math.Vec3
	Rotation math.Vec3
	Scale    float32
}

// NewItem creates an item at the origin with unit scale.
func NewItem(mesh *Mesh) *Item {
	return &Item{Mesh: mesh, Scale: 1}
}

// ModelMatrix returns Translate(pos)·Rx·Ry·Rz·Scale. Rotations are applied
// with negated angles so that positive values turn the item the same way the
// camera turns the view.
func (it *Item) ModelMatrix() math.Mat4 {
	return math.Translate(it.Position).
		Mul(math.RotateX(-math.Radians(it.Rotation.X))).
		Mul(math.RotateY(-math.Radians(it.Rotation.Y))).
		Mul(math.RotateZ(-math.Radians(it.Rotation.Z))).
		Mul(math.Scale(it.Scale))
}
