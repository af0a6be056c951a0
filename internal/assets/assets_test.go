package assets

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sunlit/internal/engine/texture"
	"github.com/Faultbox/sunlit/pkg/formats"
)

const triangleOBJ = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func newManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager()
	m.AddFS(fstest.MapFS{
		"models/tri.obj":   {Data: []byte(triangleOBJ)},
		"models/bad.obj":   {Data: []byte("f 1 2 3\n")},
		"models/tri.fbx":   {Data: []byte("binary")},
		"textures/tih.png": {Data: pngBytes(t, 2, 2)},
	})
	return m
}

func TestLoadStripsLeadingSlash(t *testing.T) {
	m := newManager(t)

	a, err := m.Load("/models/tri.obj")
	require.NoError(t, err)
	b, err := m.Load("models/tri.obj")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	hits, misses := m.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
}

func TestLoadNotFound(t *testing.T) {
	m := newManager(t)

	_, err := m.Load("models/missing.obj")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Load("../outside.obj")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLaterRootWins(t *testing.T) {
	m := newManager(t)
	m.AddFS(fstest.MapFS{"models/tri.obj": {Data: []byte("override")}})

	data, err := m.Load("models/tri.obj")
	require.NoError(t, err)
	assert.Equal(t, "override", string(data))
}

func TestLoadMeshOBJ(t *testing.T) {
	m := newManager(t)

	mesh, err := m.LoadMesh("/models/tri.obj")
	require.NoError(t, err)

	assert.Len(t, mesh.Vertices, 3)
	assert.Equal(t, 1, mesh.TriangleCount())
	// generated since the file has no vn records
	assert.InDelta(t, 1.0, mesh.Vertices[0].Normal[2], 1e-6)
	assert.Nil(t, mesh.Material.Texture)
}

func TestLoadMeshErrors(t *testing.T) {
	m := newManager(t)

	_, err := m.LoadMesh("models/missing.obj")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.LoadMesh("models/bad.obj")
	assert.ErrorIs(t, err, formats.ErrInvalidOBJFace)

	_, err = m.LoadMesh("models/tri.fbx")
	assert.ErrorIs(t, err, ErrUnknownMeshFormat)
}

func TestLoadTextureCached(t *testing.T) {
	m := newManager(t)

	a, err := m.LoadTexture("/textures/tih.png")
	require.NoError(t, err)
	b, err := m.LoadTexture("textures/tih.png")
	require.NoError(t, err)

	assert.Same(t, a, b)
	w, h := a.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
}

func TestLoadTextureDownscalesLarge(t *testing.T) {
	m := NewManager()
	m.AddFS(fstest.MapFS{
		"wide.png": {Data: pngBytes(t, MaxTextureSize*2, 4)},
	})

	tex, err := m.LoadTexture("wide.png")
	require.NoError(t, err)
	w, h := tex.Size()
	assert.Equal(t, MaxTextureSize, w)
	assert.Equal(t, 2, h)
}

func TestLoadTextureErrors(t *testing.T) {
	m := newManager(t)

	_, err := m.LoadTexture("textures/missing.png")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.LoadTexture("models/tri.obj")
	assert.ErrorIs(t, err, texture.ErrUnsupportedFormat)
}

func TestAddDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "models"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models", "tri.obj"), []byte(triangleOBJ), 0o644))

	m := NewManager()
	require.NoError(t, m.AddDir(dir))

	mesh, err := m.LoadMesh("models/tri.obj")
	require.NoError(t, err)
	assert.Len(t, mesh.Indices, 3)

	assert.Error(t, m.AddDir(filepath.Join(dir, "missing")))
	assert.Error(t, m.AddDir(filepath.Join(dir, "models", "tri.obj")))
}

func TestBuildMeshKeepsColour(t *testing.T) {
	md := &formats.MeshData{
		Positions:  [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Normals:    [][3]float32{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}},
		TexCoords:  [][2]float32{{0, 0}, {1, 0}, {0, 1}},
		Indices:    []uint32{0, 1, 2},
		BaseColour: [4]float32{0.2, 0.4, 0.6, 1},
	}

	mesh := BuildMesh(md)
	assert.Equal(t, md.BaseColour, mesh.Material.Colour)
	assert.Equal(t, [3]float32{0, 1, 0}, mesh.Vertices[1].Normal)
	assert.Equal(t, [2]float32{1, 0}, mesh.Vertices[1].TexCoord)
}

func TestClose(t *testing.T) {
	m := newManager(t)
	_, err := m.Load("models/tri.obj")
	require.NoError(t, err)

	m.Close()

	_, err = m.Load("models/tri.obj")
	assert.ErrorIs(t, err, ErrNotFound)
}
