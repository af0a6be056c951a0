// Package assets handles asset loading and caching.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/sunlit/internal/engine/model"
	"github.com/Faultbox/sunlit/internal/engine/texture"
	"github.com/Faultbox/sunlit/internal/logger"
	"github.com/Faultbox/sunlit/pkg/formats"
)

// MaxTextureSize bounds the larger side of loaded textures.
const MaxTextureSize = 4096

var (
	// ErrNotFound is returned when no root contains the requested path.
	ErrNotFound = errors.New("asset not found")
	// ErrUnknownMeshFormat is returned for mesh files with an unrecognised extension.
	ErrUnknownMeshFormat = errors.New("unknown mesh format")
)

// Manager loads assets from a list of roots.
// Roots are searched in reverse order (last added = highest priority).
type Manager struct {
	roots    []fs.FS
	cache    *Cache
	textures map[string]*texture.Texture
	mu       sync.RWMutex
}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{
		cache:    NewCache(),
		textures: make(map[string]*texture.Texture),
	}
}

// AddDir adds a directory on disk as an asset root.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("opening asset root %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset root %s is not a directory", dir)
	}
	m.AddFS(os.DirFS(dir))
	return nil
}

// AddFS adds a file system as an asset root.
func (m *Manager) AddFS(fsys fs.FS) {
	m.mu.Lock()
	m.roots = append(m.roots, fsys)
	m.mu.Unlock()
}

// Load loads a file from the roots. Leading slashes are ignored so that
// "/models/a.obj" and "models/a.obj" name the same asset.
func (m *Manager) Load(name string) ([]byte, error) {
	data, _, err := m.load(name)
	return data, err
}

func (m *Manager) load(name string) ([]byte, fs.FS, error) {
	key, err := normalize(name)
	if err != nil {
		return nil, nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if data, ok := m.cache.Get(key); ok {
		return data, m.rootOf(key), nil
	}

	for i := len(m.roots) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.roots[i], key)
		if err == nil {
			m.cache.Set(key, data)
			return data, m.roots[i], nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("reading %s: %w", key, err)
		}
	}

	return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// rootOf returns the highest priority root holding key. Caller holds mu.
func (m *Manager) rootOf(key string) fs.FS {
	for i := len(m.roots) - 1; i >= 0; i-- {
		if _, err := fs.Stat(m.roots[i], key); err == nil {
			return m.roots[i]
		}
	}
	return nil
}

// LoadMesh loads and parses a mesh. The format is chosen by extension:
// .obj, .gltf or .glb. A base colour texture referenced by a glTF file is
// loaded relative to the mesh.
func (m *Manager) LoadMesh(name string) (*model.Mesh, error) {
	data, root, err := m.load(name)
	if err != nil {
		return nil, err
	}

	var md *formats.MeshData
	switch strings.ToLower(filepath.Ext(name)) {
	case ".obj":
		md, err = formats.ParseOBJ(data)
	case ".gltf", ".glb":
		var sub fs.FS
		if root != nil {
			key, _ := normalize(name)
			sub, _ = fs.Sub(root, path.Dir(key))
		}
		md, err = formats.ParseGLTF(data, sub)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMeshFormat, name)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing mesh %s: %w", name, err)
	}

	mesh := BuildMesh(md)
	if md.TextureURI != "" {
		texPath := path.Join(path.Dir(strings.TrimPrefix(name, "/")), md.TextureURI)
		tex, err := m.LoadTexture(texPath)
		if err != nil {
			logger.Warn("mesh texture unavailable",
				zap.String("mesh", name),
				zap.String("texture", texPath),
				zap.Error(err))
		} else {
			mesh.Material.Texture = tex
		}
	}

	logger.Debug("mesh loaded",
		zap.String("path", name),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()))
	return mesh, nil
}

// LoadTexture loads and decodes a texture. Decoded textures are cached by
// path and shared between callers.
func (m *Manager) LoadTexture(name string) (*texture.Texture, error) {
	key, err := normalize(name)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	tex, ok := m.textures[key]
	m.mu.RUnlock()
	if ok {
		return tex, nil
	}

	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	tex, err = texture.Decode(key, data)
	if err != nil {
		return nil, err
	}
	tex = tex.Resize(MaxTextureSize)

	m.mu.Lock()
	m.textures[key] = tex
	m.mu.Unlock()

	w, h := tex.Size()
	logger.Debug("texture loaded", zap.String("path", key), zap.Int("width", w), zap.Int("height", h))
	return tex, nil
}

// BuildMesh converts parsed mesh data into a model mesh. Normals are
// generated when the file has none.
func BuildMesh(md *formats.MeshData) *model.Mesh {
	vertices := make([]model.Vertex, len(md.Positions))
	for i, p := range md.Positions {
		vertices[i].Position = p
		if i < len(md.Normals) {
			vertices[i].Normal = md.Normals[i]
		}
		if i < len(md.TexCoords) {
			vertices[i].TexCoord = md.TexCoords[i]
		}
	}

	mesh := model.NewMesh(md.Name, vertices, md.Indices)
	mesh.Material.Colour = md.BaseColour
	if !md.HasNormals() {
		mesh.ComputeNormals()
	}
	return mesh
}

// Stats returns byte cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops all roots and cached data. Textures handed out earlier stay
// valid.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.roots = nil
	m.textures = make(map[string]*texture.Texture)
	m.cache.Clear()
}

// normalize turns an asset name into a valid fs.FS path.
func normalize(name string) (string, error) {
	key := path.Clean(strings.TrimLeft(filepath.ToSlash(name), "/"))
	if !fs.ValidPath(key) || key == "." {
		return "", fmt.Errorf("%w: invalid path %q", ErrNotFound, name)
	}
	return key, nil
}

// Cache is a simple in-memory cache for loaded file data.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
