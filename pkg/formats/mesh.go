// Package formats provides parsers for 3D model file formats.
package formats

// MeshData is an indexed triangle mesh as read from a model file.
// TexCoords and Normals are either nil or the same length as Positions.
type MeshData struct {
	Name      string
	Positions [][3]float32
	TexCoords [][2]float32
	Normals   [][3]float32
	Indices   []uint32

	// BaseColour is the material colour, white when the file defines none.
	BaseColour [4]float32
	// TextureURI is the base colour texture referenced by the file, if any.
	TextureURI string
}

// VertexCount returns the number of unique vertices.
func (m *MeshData) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// HasNormals reports whether the file provided vertex normals.
func (m *MeshData) HasNormals() bool {
	return len(m.Normals) > 0
}

var white = [4]float32{1, 1, 1, 1}
