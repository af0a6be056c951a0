// glTF 2.0 mesh reader.
package formats

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// glTF format errors.
var (
	ErrNoGLTFMesh = errors.New("glTF document has no triangle mesh")
)

// ParseGLTF decodes a .gltf or .glb document. External buffers are resolved
// against fsys, which may be nil for self-contained files.
// The triangle primitives of the first mesh are merged into one MeshData.
func ParseGLTF(data []byte, fsys fs.FS) (*MeshData, error) {
	doc := new(gltf.Document)
	var dec *gltf.Decoder
	if fsys != nil {
		dec = gltf.NewDecoderFS(bytes.NewReader(data), fsys)
	} else {
		dec = gltf.NewDecoder(bytes.NewReader(data))
	}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding glTF: %w", err)
	}
	return MeshFromGLTF(doc)
}

// MeshFromGLTF extracts the first mesh of a decoded document.
func MeshFromGLTF(doc *gltf.Document) (*MeshData, error) {
	for _, gm := range doc.Meshes {
		m := &MeshData{Name: gm.Name, BaseColour: white}
		for pi, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			if err := appendPrimitive(doc, m, prim); err != nil {
				return nil, fmt.Errorf("mesh %q primitive %d: %w", gm.Name, pi, err)
			}
			if m.TextureURI == "" && prim.Material != nil {
				applyMaterial(doc, m, *prim.Material)
			}
		}
		if len(m.Indices) > 0 {
			return m, nil
		}
	}
	return nil, ErrNoGLTFMesh
}

func appendPrimitive(doc *gltf.Document, m *MeshData, prim *gltf.Primitive) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return errors.New("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("normals: %w", err)
		}
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("texcoords: %w", err)
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		if indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil); err != nil {
			return fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	base := uint32(len(m.Positions))
	for _, idx := range indices {
		if int(idx) >= len(positions) {
			return fmt.Errorf("index %d out of range [0,%d)", idx, len(positions))
		}
		m.Indices = append(m.Indices, base+idx)
	}

	// Attributes stay aligned with positions across merged primitives.
	hadNormals := m.HasNormals()
	hadUVs := len(m.TexCoords) > 0
	m.Positions = append(m.Positions, positions...)
	m.Normals = mergeAttribute(m.Normals, normals, int(base), len(positions), hadNormals)
	m.TexCoords = mergeAttribute(m.TexCoords, uvs, int(base), len(positions), hadUVs)
	return nil
}

// mergeAttribute appends a primitive attribute, zero-filling whichever side
// lacks it so the result stays parallel to the position list.
func mergeAttribute[T any](dst, src []T, base, count int, hadAny bool) []T {
	if len(src) != count {
		src = nil
	}
	if src == nil && !hadAny {
		return dst
	}
	if !hadAny && base > 0 {
		dst = make([]T, base)
	}
	if src == nil {
		return append(dst, make([]T, count)...)
	}
	return append(dst, src...)
}

func applyMaterial(doc *gltf.Document, m *MeshData, matIdx int) {
	if matIdx < 0 || matIdx >= len(doc.Materials) {
		return
	}
	pbr := doc.Materials[matIdx].PBRMetallicRoughness
	if pbr == nil {
		return
	}
	cf := pbr.BaseColorFactorOrDefault()
	m.BaseColour = [4]float32{float32(cf[0]), float32(cf[1]), float32(cf[2]), float32(cf[3])}

	if pbr.BaseColorTexture == nil {
		return
	}
	ti := pbr.BaseColorTexture.Index
	if ti >= len(doc.Textures) || doc.Textures[ti].Source == nil {
		return
	}
	img := doc.Images[*doc.Textures[ti].Source]
	if img.URI != "" && !img.IsEmbeddedResource() {
		m.TextureURI = img.URI
	}
}
