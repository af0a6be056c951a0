package model

import (
	gomath "math"
)

// Mesh holds geometry ready for GPU upload, its material and, once uploaded,
// the GPU handle.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Material Material
	Bounds   Bounds

	handle   Handle
	released bool
}

// NewMesh creates a mesh from vertices and triangle indices and computes its
// bounding box.
func NewMesh(name string, vertices []Vertex, indices []uint32) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
		Material: NewMaterial(),
	}
	m.Bounds = computeBounds(vertices)
	return m
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// ComputeNormals replaces vertex normals with area-weighted face normals
// accumulated per vertex. Degenerate triangles contribute nothing.
func (m *Mesh) ComputeNormals() {
	acc := make([][3]float32, len(m.Vertices))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if int(i0) >= len(m.Vertices) || int(i1) >= len(m.Vertices) || int(i2) >= len(m.Vertices) {
			continue
		}
		v0 := m.Vertices[i0].Position
		v1 := m.Vertices[i1].Position
		v2 := m.Vertices[i2].Position
		e1 := [3]float32{v1[0] - v0[0], v1[1] - v0[1], v1[2] - v0[2]}
		e2 := [3]float32{v2[0] - v0[0], v2[1] - v0[1], v2[2] - v0[2]}
		n := cross(e1, e2)
		if length(n) < 1e-6 {
			continue
		}
		for _, idx := range [3]uint32{i0, i1, i2} {
			acc[idx][0] += n[0]
			acc[idx][1] += n[1]
			acc[idx][2] += n[2]
		}
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = normalize(acc[i])
	}
}

// Attach stores the GPU handle created by the renderer.
func (m *Mesh) Attach(h Handle) {
	if m.handle != nil && m.handle != h {
		m.handle.Release()
	}
	m.handle = h
	m.released = false
}

// Handle returns the attached GPU handle, or nil if not uploaded.
func (m *Mesh) Handle() Handle {
	return m.handle
}

// Cleanup releases the mesh GPU handle and its material texture.
// Calling it again is a no-op.
func (m *Mesh) Cleanup() {
	if m == nil || m.released {
		return
	}
	m.released = true
	if m.handle != nil {
		m.handle.Release()
		m.handle = nil
	}
	m.Material.Texture.Cleanup()
}

func computeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		for k := 0; k < 3; k++ {
			b.Min[k] = min(b.Min[k], v.Position[k])
			b.Max[k] = max(b.Max[k], v.Position[k])
		}
	}
	return b
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func length(v [3]float32) float32 {
	return float32(gomath.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

// normalize falls back to +Y for zero vectors.
func normalize(v [3]float32) [3]float32 {
	l := length(v)
	if l < 1e-6 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
